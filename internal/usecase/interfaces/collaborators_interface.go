package interfaces

import (
	"context"
	"po_tracker/internal/domain/entities"
	"time"
)

// IClock supplies the current time so SLA and response-time math can be tested.
type IClock interface {
	Now() time.Time
}

// IHistorySink observes vendor metric writes. It is best-effort: implementations
// must not fail the operation that triggered the write.
type IHistorySink interface {
	Record(ctx context.Context, vendorCode string, before, after entities.PerformanceMetrics)
}

// IVendorLocker serializes metric read-modify-write cycles per vendor.
// The returned unlock func must be called exactly once.
type IVendorLocker interface {
	Lock(ctx context.Context, vendorCode string) (unlock func(), err error)
}

// IPerformanceObserver receives lifecycle and metric events for monitoring.
type IPerformanceObserver interface {
	TransitionApplied(transition string)
	MetricUpdated(vendorCode string, metric string, value float64)
	HistoryRecordFailed()
}
