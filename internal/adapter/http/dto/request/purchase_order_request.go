package request

import (
	"encoding/json"
	"strings"

	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase"
)

// CreatePurchaseOrderRequest is the body of POST /v1/purchase_orders.
// Dates and status are server-assigned and not accepted here.
type CreatePurchaseOrderRequest struct {
	PONumber string          `json:"po_number" binding:"omitempty,max=50"`
	Vendor   string          `json:"vendor" binding:"required"`
	Items    json.RawMessage `json:"items" binding:"required"`
	Quantity int             `json:"quantity" binding:"gte=0"`
}

func (r CreatePurchaseOrderRequest) ToInput() usecase.CreatePurchaseOrderInput {
	return usecase.CreatePurchaseOrderInput{
		PONumber:   strings.TrimSpace(r.PONumber),
		VendorCode: strings.TrimSpace(r.Vendor),
		Items:      r.Items,
		Quantity:   r.Quantity,
	}
}

// UpdatePurchaseOrderRequest is the body of PUT /v1/purchase_orders/:po_number.
// Both fields are optional; any update of an acknowledged order completes it.
type UpdatePurchaseOrderRequest struct {
	QualityRating *float64 `json:"quality_rating"`
	Status        *string  `json:"status"`
}

func (r UpdatePurchaseOrderRequest) ToInput() usecase.UpdatePurchaseOrderInput {
	in := usecase.UpdatePurchaseOrderInput{QualityRating: r.QualityRating}
	if r.Status != nil {
		s := entities.PurchaseOrderStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		in.Status = &s
	}
	return in
}
