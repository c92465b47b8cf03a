package usecase

import (
	"context"
	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HistoryRecorder appends a performance snapshot whenever a metric write
// changes any of the four tracked values.
//
// It replaces per-field change tracking with an explicit before/after diff.
// Append failures are logged and swallowed: losing a snapshot must never fail
// the purchase order operation that caused the write.

type HistoryRecorder struct {
	repo     interfaces.IPerformanceHistoryRepository
	clock    interfaces.IClock
	observer interfaces.IPerformanceObserver
}

var _ interfaces.IHistorySink = (*HistoryRecorder)(nil)

func NewHistoryRecorder(repo interfaces.IPerformanceHistoryRepository, clock interfaces.IClock) *HistoryRecorder {
	return &HistoryRecorder{repo: repo, clock: clock, observer: nopObserver{}}
}

func (r *HistoryRecorder) SetObserver(o interfaces.IPerformanceObserver) {
	if o == nil {
		o = nopObserver{}
	}
	r.observer = o
}

func (r *HistoryRecorder) Record(ctx context.Context, vendorCode string, before, after entities.PerformanceMetrics) {
	if before.Equal(after) {
		return
	}

	s := entities.PerformanceSnapshot{
		ID:                 uuid.NewString(),
		VendorCode:         vendorCode,
		Date:               r.clock.Now(),
		PerformanceMetrics: after,
	}
	if err := r.repo.Append(ctx, s); err != nil {
		zap.L().Warn("[history][recorder] snapshot append failed",
			zap.String("vendor_code", vendorCode),
			zap.String("snapshot_id", s.ID),
			zap.Error(err),
		)
		r.observer.HistoryRecordFailed()
		return
	}
	zap.L().Debug("[history][recorder] snapshot appended",
		zap.String("vendor_code", vendorCode),
		zap.String("snapshot_id", s.ID),
	)
}
