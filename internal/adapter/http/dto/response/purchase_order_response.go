package response

import (
	"encoding/json"
	"time"

	"po_tracker/internal/domain/entities"
)

type PurchaseOrderResponse struct {
	PONumber           string          `json:"po_number"`
	Vendor             string          `json:"vendor"`
	OrderDate          time.Time       `json:"order_date"`
	DeliveryDate       time.Time       `json:"delivery_date"`
	Items              json.RawMessage `json:"items" swaggertype:"object"`
	Quantity           int             `json:"quantity"`
	Status             string          `json:"status"`
	QualityRating      *float64        `json:"quality_rating"`
	IssueDate          time.Time       `json:"issue_date"`
	AcknowledgmentDate *time.Time      `json:"acknowledgment_date"`
}

func FromPurchaseOrder(po entities.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PONumber:           po.PONumber,
		Vendor:             po.VendorCode,
		OrderDate:          po.OrderDate,
		DeliveryDate:       po.DeliveryDate,
		Items:              po.Items,
		Quantity:           po.Quantity,
		Status:             string(po.Status),
		QualityRating:      po.QualityRating,
		IssueDate:          po.IssueDate,
		AcknowledgmentDate: po.AcknowledgmentDate,
	}
}

// PurchaseOrderSummaryResponse is the list view of a purchase order.
type PurchaseOrderSummaryResponse struct {
	PONumber string `json:"po_number"`
	Vendor   string `json:"vendor"`
	Status   string `json:"status"`
}

func FromPurchaseOrders(items []entities.PurchaseOrder) []PurchaseOrderSummaryResponse {
	out := make([]PurchaseOrderSummaryResponse, 0, len(items))
	for _, po := range items {
		out = append(out, PurchaseOrderSummaryResponse{
			PONumber: po.PONumber,
			Vendor:   po.VendorCode,
			Status:   string(po.Status),
		})
	}
	return out
}
