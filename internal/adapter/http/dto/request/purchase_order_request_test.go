package request

import (
	"encoding/json"
	"testing"

	"po_tracker/internal/domain/entities"
)

func TestCreatePurchaseOrderRequest_ToInput(t *testing.T) {
	r := CreatePurchaseOrderRequest{
		PONumber: " PO001 ",
		Vendor:   " V1 ",
		Items:    json.RawMessage(`[{"sku":"A"}]`),
		Quantity: 4,
	}

	in := r.ToInput()
	if in.PONumber != "PO001" || in.VendorCode != "V1" || in.Quantity != 4 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if string(in.Items) != `[{"sku":"A"}]` {
		t.Fatalf("unexpected items: %s", in.Items)
	}
}

func TestUpdatePurchaseOrderRequest_ToInput(t *testing.T) {
	t.Run("status is normalised", func(t *testing.T) {
		s := " Completed "
		in := UpdatePurchaseOrderRequest{Status: &s}.ToInput()
		if in.Status == nil || *in.Status != entities.PurchaseOrderStatusCompleted {
			t.Fatalf("unexpected status: %v", in.Status)
		}
		if in.QualityRating != nil {
			t.Fatalf("expected no rating")
		}
	})

	t.Run("absent fields stay nil", func(t *testing.T) {
		var r UpdatePurchaseOrderRequest
		if err := json.Unmarshal([]byte(`{"quality_rating":4.5}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		in := r.ToInput()
		if in.Status != nil {
			t.Fatalf("expected nil status")
		}
		if in.QualityRating == nil || *in.QualityRating != 4.5 {
			t.Fatalf("unexpected rating: %v", in.QualityRating)
		}
	})
}
