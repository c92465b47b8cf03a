package interfaces

import (
	"context"
	"errors"
	"po_tracker/internal/domain/entities"
)

// ErrDuplicateKey is returned by repositories when a create hits an existing primary key.
var ErrDuplicateKey = errors.New("duplicate key")

// IPurchaseOrderRepository abstracts persistence for PurchaseOrder.
//
// Lookups return a zero-valued PurchaseOrder (empty PONumber) when nothing matches.
// Count backs every denominator used by the metrics engine:
//   - all acknowledged orders (response time)
//   - completed / all orders of a vendor (fulfillment, on-time delivery)
//   - rated orders of a vendor (quality rating)

type IPurchaseOrderRepository interface {
	Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, poNumber string) (entities.PurchaseOrder, error)
	List(ctx context.Context, filter entities.PurchaseOrderFilter) ([]entities.PurchaseOrder, error)
	Update(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	Delete(ctx context.Context, poNumber string) (bool, error)
	Count(ctx context.Context, filter entities.PurchaseOrderFilter) (int64, error)
	DeleteByVendorCode(ctx context.Context, vendorCode string) (int, error)
}
