package entities

import (
	"encoding/json"
	"time"
)

// PurchaseOrderStatus represents where a purchase order is in its lifecycle.
//
// Lifecycle:
//   - pending: created, waiting for the vendor (acknowledgment may or may not be set)
//   - completed: delivered; DeliveryDate holds the actual delivery timestamp

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "pending"
	PurchaseOrderStatusCompleted PurchaseOrderStatus = "completed"
)

// DeliverySLA is the gap between order date and expected delivery date
// assigned at creation time.
const DeliverySLA = 5 * 24 * time.Hour

// PurchaseOrder is the unit of vendor work and the event source for vendor metrics.
//
// Storage model (DynamoDB):
//   - PK: po_number
//   - GSI1 (vendor_code-index): vendor_code
type PurchaseOrder struct {
	PONumber           string              `json:"po_number"`
	VendorCode         string              `json:"vendor_code"`
	OrderDate          time.Time           `json:"order_date"`
	DeliveryDate       time.Time           `json:"delivery_date"`
	Items              json.RawMessage     `json:"items"`
	Quantity           int                 `json:"quantity"`
	Status             PurchaseOrderStatus `json:"status"`
	QualityRating      *float64            `json:"quality_rating,omitempty"`
	IssueDate          time.Time           `json:"issue_date"`
	AcknowledgmentDate *time.Time          `json:"acknowledgment_date,omitempty"`
}

func (p PurchaseOrder) IsAcknowledged() bool {
	return p.AcknowledgmentDate != nil
}

func (p PurchaseOrder) IsCompleted() bool {
	return p.Status == PurchaseOrderStatusCompleted
}

// ResponseTime is the time the vendor took to acknowledge the order.
// Zero when the order has not been acknowledged.
func (p PurchaseOrder) ResponseTime() time.Duration {
	if p.AcknowledgmentDate == nil {
		return 0
	}
	return p.AcknowledgmentDate.Sub(p.OrderDate)
}

// PurchaseOrderFilter narrows List and Count queries. Zero-valued fields do not filter.
type PurchaseOrderFilter struct {
	VendorCode   string
	Status       PurchaseOrderStatus
	Acknowledged bool
	Rated        bool
}

// Matches reports whether p satisfies every set criterion of f.
func (f PurchaseOrderFilter) Matches(p PurchaseOrder) bool {
	if f.VendorCode != "" && p.VendorCode != f.VendorCode {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Acknowledged && p.AcknowledgmentDate == nil {
		return false
	}
	if f.Rated && p.QualityRating == nil {
		return false
	}
	return true
}
