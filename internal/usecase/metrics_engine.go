package usecase

import (
	"context"
	"fmt"
	"po_tracker/internal/domain/entities"
	"po_tracker/internal/domain/performance"
	"po_tracker/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

const (
	MetricAverageResponseTime = "average_response_time"
	MetricFulfillmentRate     = "fulfillment_rate"
	MetricOnTimeDeliveryRate  = "on_time_delivery_rate"
	MetricQualityRatingAvg    = "quality_rating_avg"
)

// ResponseTimeScope selects which acknowledged orders form the denominator of
// the average response time.
type ResponseTimeScope string

const (
	// ResponseTimeScopeGlobal counts acknowledged orders across every vendor.
	// This dilutes one vendor's average with other vendors' volume, but it is
	// the established behavior and is kept as the default.
	ResponseTimeScopeGlobal ResponseTimeScope = "global"
	// ResponseTimeScopeVendor counts only the vendor's own acknowledged orders.
	ResponseTimeScopeVendor ResponseTimeScope = "vendor"

	DefaultResponseTimeScope = ResponseTimeScopeGlobal
)

// IMetricsEngine recomputes one vendor metric from one purchase order transition.
//
// Every operation reads the vendor, applies a fixed formula and persists the
// result immediately; writes are never batched.

type IMetricsEngine interface {
	UpdateAverageResponseTime(ctx context.Context, po entities.PurchaseOrder) error
	UpdateFulfillmentRate(ctx context.Context, po entities.PurchaseOrder) error
	UpdateOnTimeDeliveryRate(ctx context.Context, po entities.PurchaseOrder, expectedDeliveryDate time.Time) error
	UpdateQualityRatingAverage(ctx context.Context, po entities.PurchaseOrder, previousQualityRating *float64) error
}

type MetricsEngine struct {
	poRepo            interfaces.IPurchaseOrderRepository
	vendorRepo        interfaces.IVendorRepository
	history           interfaces.IHistorySink
	observer          interfaces.IPerformanceObserver
	responseTimeScope ResponseTimeScope
}

var _ IMetricsEngine = (*MetricsEngine)(nil)

func NewMetricsEngine(poRepo interfaces.IPurchaseOrderRepository, vendorRepo interfaces.IVendorRepository, history interfaces.IHistorySink) *MetricsEngine {
	return &MetricsEngine{
		poRepo:            poRepo,
		vendorRepo:        vendorRepo,
		history:           history,
		observer:          nopObserver{},
		responseTimeScope: DefaultResponseTimeScope,
	}
}

func (e *MetricsEngine) SetObserver(o interfaces.IPerformanceObserver) {
	if o == nil {
		o = nopObserver{}
	}
	e.observer = o
}

func (e *MetricsEngine) SetResponseTimeScope(scope ResponseTimeScope) {
	e.responseTimeScope = scope
}

func (e *MetricsEngine) UpdateAverageResponseTime(ctx context.Context, po entities.PurchaseOrder) error {
	if !po.IsAcknowledged() {
		return ErrNotAcknowledged
	}

	filter := entities.PurchaseOrderFilter{Acknowledged: true}
	if e.responseTimeScope == ResponseTimeScopeVendor {
		filter.VendorCode = po.VendorCode
	}
	acknowledged, err := e.poRepo.Count(ctx, filter)
	if err != nil {
		return err
	}
	sample := performance.ResponseTimeHours(po.ResponseTime())

	return e.apply(ctx, po.VendorCode, MetricAverageResponseTime, func(m entities.PerformanceMetrics) (entities.PerformanceMetrics, error) {
		avg, err := performance.AverageResponseTime(m.AverageResponseTime, sample, acknowledged)
		if err != nil {
			return m, err
		}
		m.AverageResponseTime = avg
		return m, nil
	}, func(m entities.PerformanceMetrics) float64 { return m.AverageResponseTime })
}

func (e *MetricsEngine) UpdateFulfillmentRate(ctx context.Context, po entities.PurchaseOrder) error {
	completed, err := e.poRepo.Count(ctx, entities.PurchaseOrderFilter{
		VendorCode: po.VendorCode,
		Status:     entities.PurchaseOrderStatusCompleted,
	})
	if err != nil {
		return err
	}
	total, err := e.poRepo.Count(ctx, entities.PurchaseOrderFilter{VendorCode: po.VendorCode})
	if err != nil {
		return err
	}

	return e.apply(ctx, po.VendorCode, MetricFulfillmentRate, func(m entities.PerformanceMetrics) (entities.PerformanceMetrics, error) {
		rate, err := performance.FulfillmentRate(completed, total)
		if err != nil {
			return m, err
		}
		m.FulfillmentRate = rate
		return m, nil
	}, func(m entities.PerformanceMetrics) float64 { return m.FulfillmentRate })
}

func (e *MetricsEngine) UpdateOnTimeDeliveryRate(ctx context.Context, po entities.PurchaseOrder, expectedDeliveryDate time.Time) error {
	completed, err := e.poRepo.Count(ctx, entities.PurchaseOrderFilter{
		VendorCode: po.VendorCode,
		Status:     entities.PurchaseOrderStatusCompleted,
	})
	if err != nil {
		return err
	}

	return e.apply(ctx, po.VendorCode, MetricOnTimeDeliveryRate, func(m entities.PerformanceMetrics) (entities.PerformanceMetrics, error) {
		rate, err := performance.OnTimeDeliveryRate(m.OnTimeDeliveryRate, po.DeliveryDate, expectedDeliveryDate, completed)
		if err != nil {
			return m, err
		}
		m.OnTimeDeliveryRate = rate
		return m, nil
	}, func(m entities.PerformanceMetrics) float64 { return m.OnTimeDeliveryRate })
}

func (e *MetricsEngine) UpdateQualityRatingAverage(ctx context.Context, po entities.PurchaseOrder, previousQualityRating *float64) error {
	rated, err := e.poRepo.Count(ctx, entities.PurchaseOrderFilter{
		VendorCode: po.VendorCode,
		Rated:      true,
	})
	if err != nil {
		return err
	}

	return e.apply(ctx, po.VendorCode, MetricQualityRatingAvg, func(m entities.PerformanceMetrics) (entities.PerformanceMetrics, error) {
		avg, err := performance.QualityRatingAverage(m.QualityRatingAvg, po.QualityRating, previousQualityRating, rated)
		if err != nil {
			return m, err
		}
		m.QualityRatingAvg = avg
		return m, nil
	}, func(m entities.PerformanceMetrics) float64 { return m.QualityRatingAvg })
}

// apply runs one read-compute-write cycle against the vendor record and hands
// the before/after pair to the history sink.
func (e *MetricsEngine) apply(
	ctx context.Context,
	vendorCode string,
	metric string,
	compute func(entities.PerformanceMetrics) (entities.PerformanceMetrics, error),
	value func(entities.PerformanceMetrics) float64,
) error {
	v, err := e.vendorRepo.GetByCode(ctx, vendorCode)
	if err != nil {
		return err
	}
	if v.VendorCode == "" {
		return ErrVendorNotFound
	}

	before := v.PerformanceMetrics
	after, err := compute(before)
	if err != nil {
		zap.L().Error("[metrics][engine] compute failed",
			zap.String("vendor_code", vendorCode),
			zap.String("metric", metric),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", metric, err)
	}

	if _, err := e.vendorRepo.UpdateMetrics(ctx, vendorCode, after); err != nil {
		return err
	}
	zap.L().Debug("[metrics][engine] metric updated",
		zap.String("vendor_code", vendorCode),
		zap.String("metric", metric),
		zap.Float64("before", value(before)),
		zap.Float64("after", value(after)),
	)

	e.observer.MetricUpdated(vendorCode, metric, value(after))
	if e.history != nil {
		e.history.Record(ctx, vendorCode, before, after)
	}
	return nil
}

type nopObserver struct{}

func (nopObserver) TransitionApplied(string)              {}
func (nopObserver) MetricUpdated(string, string, float64) {}
func (nopObserver) HistoryRecordFailed()                  {}
