package entities

import "time"

// PerformanceMetrics holds the four tracked vendor metrics.
//
// Each value is a running figure over its own denominator:
//   - OnTimeDeliveryRate: completed orders delivered on or before the expected date
//   - QualityRatingAvg: purchase orders carrying a quality rating
//   - AverageResponseTime: acknowledged orders, in hours
//   - FulfillmentRate: completed orders over all orders of the vendor
type PerformanceMetrics struct {
	OnTimeDeliveryRate  float64 `json:"on_time_delivery_rate"`
	QualityRatingAvg    float64 `json:"quality_rating_avg"`
	AverageResponseTime float64 `json:"average_response_time"`
	FulfillmentRate     float64 `json:"fulfillment_rate"`
}

// Equal compares field by field; the history ledger only grows when this is false.
func (m PerformanceMetrics) Equal(other PerformanceMetrics) bool {
	return m.OnTimeDeliveryRate == other.OnTimeDeliveryRate &&
		m.QualityRatingAvg == other.QualityRatingAvg &&
		m.AverageResponseTime == other.AverageResponseTime &&
		m.FulfillmentRate == other.FulfillmentRate
}

// Vendor accumulates aggregate performance metrics derived from its purchase orders.
//
// Storage model (DynamoDB):
//   - PK: vendor_code
//
// Metrics are written only by the metrics engine; profile updates leave them untouched.
type Vendor struct {
	VendorCode     string    `json:"vendor_code"`
	Name           string    `json:"name"`
	ContactDetails string    `json:"contact_details"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	PerformanceMetrics
}

// VendorProfileUpdate carries the optional profile fields of a vendor update.
type VendorProfileUpdate struct {
	Name           *string
	ContactDetails *string
	Address        *string
}

func (u VendorProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.ContactDetails == nil && u.Address == nil
}
