package interfaces

import (
	"context"
	"po_tracker/internal/domain/entities"
)

// IVendorRepository abstracts persistence for Vendor.
//
// Profile and metric writes are separate so vendor CRUD can never overwrite
// values owned by the metrics engine.

type IVendorRepository interface {
	Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
	GetByCode(ctx context.Context, code string) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
	UpdateProfile(ctx context.Context, code string, update entities.VendorProfileUpdate) (entities.Vendor, error)
	UpdateMetrics(ctx context.Context, code string, metrics entities.PerformanceMetrics) (entities.Vendor, error)
	Delete(ctx context.Context, code string) (bool, error)
}
