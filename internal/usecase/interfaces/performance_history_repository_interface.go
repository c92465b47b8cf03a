package interfaces

import (
	"context"
	"po_tracker/internal/domain/entities"
)

// IPerformanceHistoryRepository is the append-only store of vendor metric snapshots.

type IPerformanceHistoryRepository interface {
	Append(ctx context.Context, s entities.PerformanceSnapshot) error
	ListByVendorCode(ctx context.Context, vendorCode string) ([]entities.PerformanceSnapshot, error)
}
