package response

import (
	"time"

	"po_tracker/internal/domain/entities"
)

type PerformanceResponse struct {
	OnTimeDeliveryRate  float64 `json:"on_time_delivery_rate"`
	QualityRatingAvg    float64 `json:"quality_rating_avg"`
	AverageResponseTime float64 `json:"average_response_time"`
	FulfillmentRate     float64 `json:"fulfillment_rate"`
}

func FromPerformanceMetrics(m entities.PerformanceMetrics) PerformanceResponse {
	return PerformanceResponse{
		OnTimeDeliveryRate:  m.OnTimeDeliveryRate,
		QualityRatingAvg:    m.QualityRatingAvg,
		AverageResponseTime: m.AverageResponseTime,
		FulfillmentRate:     m.FulfillmentRate,
	}
}

type VendorResponse struct {
	VendorCode     string    `json:"vendor_code"`
	Name           string    `json:"name"`
	ContactDetails string    `json:"contact_details"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	PerformanceResponse
}

func FromVendor(v entities.Vendor) VendorResponse {
	return VendorResponse{
		VendorCode:          v.VendorCode,
		Name:                v.Name,
		ContactDetails:      v.ContactDetails,
		Address:             v.Address,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
		PerformanceResponse: FromPerformanceMetrics(v.PerformanceMetrics),
	}
}

func FromVendors(items []entities.Vendor) []VendorResponse {
	out := make([]VendorResponse, 0, len(items))
	for _, v := range items {
		out = append(out, FromVendor(v))
	}
	return out
}

type PerformanceSnapshotResponse struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`

	PerformanceResponse
}

func FromPerformanceSnapshots(items []entities.PerformanceSnapshot) []PerformanceSnapshotResponse {
	out := make([]PerformanceSnapshotResponse, 0, len(items))
	for _, s := range items {
		out = append(out, PerformanceSnapshotResponse{
			ID:                  s.ID,
			Date:                s.Date,
			PerformanceResponse: FromPerformanceMetrics(s.PerformanceMetrics),
		})
	}
	return out
}
