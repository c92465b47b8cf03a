package response

import (
	"encoding/json"
	"testing"
	"time"

	"po_tracker/internal/domain/entities"
)

func TestFromPurchaseOrder(t *testing.T) {
	now := time.Now().UTC()
	po := entities.PurchaseOrder{
		PONumber:     "PO001",
		VendorCode:   "V1",
		OrderDate:    now,
		DeliveryDate: now.Add(entities.DeliverySLA),
		Items:        json.RawMessage(`[]`),
		Quantity:     1,
		Status:       entities.PurchaseOrderStatusPending,
		IssueDate:    now,
	}

	res := FromPurchaseOrder(po)
	if res.PONumber != "PO001" || res.Vendor != "V1" || res.Status != "pending" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.DeliveryDate.Equal(now.Add(5 * 24 * time.Hour)) {
		t.Fatalf("unexpected delivery date: %v", res.DeliveryDate)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	_ = json.Unmarshal(body, &raw)
	if v, ok := raw["acknowledgment_date"]; !ok || v != nil {
		t.Fatalf("expected explicit null acknowledgment_date, got %v", v)
	}
}

func TestFromPurchaseOrders(t *testing.T) {
	res := FromPurchaseOrders(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", res)
	}
}
