package routes

import (
	"context"
	"fmt"

	"po_tracker/internal/adapter/http/handlers"
	"po_tracker/internal/adapter/persistence/repository"
	"po_tracker/internal/config"
	"po_tracker/internal/infrastructure/clock"
	"po_tracker/internal/infrastructure/database"
	"po_tracker/internal/infrastructure/lock"
	"po_tracker/internal/infrastructure/telemetry"
	"po_tracker/internal/usecase"
	"po_tracker/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type stores struct {
	purchaseOrders interfaces.IPurchaseOrderRepository
	vendors        interfaces.IVendorRepository
	history        interfaces.IPerformanceHistoryRepository
}

func buildStores(ctx context.Context, cfg *config.Config) (stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		zap.L().Warn("[routes][wiring] using in-memory store; data is lost on restart")
		return stores{
			purchaseOrders: repository.NewPurchaseOrderMemoryRepository(),
			vendors:        repository.NewVendorMemoryRepository(),
			history:        repository.NewPerformanceHistoryMemoryRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return stores{}, err
	}
	return stores{
		purchaseOrders: repository.NewPurchaseOrderDynamoRepository(ddb, cfg.DynamoDB.PurchaseOrdersTable),
		vendors:        repository.NewVendorDynamoRepository(ddb, cfg.DynamoDB.VendorsTable),
		history:        repository.NewPerformanceHistoryDynamoRepository(ddb, cfg.DynamoDB.PerformanceHistoryTable),
	}, nil
}

// buildLocker returns the vendor locker for the configured mode and a func
// releasing its resources.
func buildLocker(ctx context.Context, cfg *config.Config) (interfaces.IVendorLocker, func(), error) {
	switch cfg.Lock.Mode {
	case config.LockModeNone:
		return lock.Nop{}, func() {}, nil
	case config.LockModeRedis:
		rdb, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return lock.NewRedis(rdb, cfg.Lock.TTL), func() { _ = rdb.Close() }, nil
	default:
		return lock.NewLocal(), func() {}, nil
	}
}

// app holds the wired handlers and the cleanup of everything they depend on.
type app struct {
	purchaseOrderHandler *handlers.PurchaseOrderHandler
	vendorHandler        *handlers.VendorHandler
	close                func()
}

func buildApp(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, clk interfaces.IClock) (*app, error) {
	s, err := buildStores(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build stores: %w", err)
	}
	locker, closeLocker, err := buildLocker(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build vendor locker: %w", err)
	}
	if clk == nil {
		clk = clock.System{}
	}

	observer := telemetry.NewObserver(reg)

	recorder := usecase.NewHistoryRecorder(s.history, clk)
	recorder.SetObserver(observer)

	engine := usecase.NewMetricsEngine(s.purchaseOrders, s.vendors, recorder)
	engine.SetObserver(observer)
	engine.SetResponseTimeScope(usecase.ResponseTimeScope(cfg.Metrics.ResponseTimeScope))

	poUseCase := usecase.NewPurchaseOrderUseCase(s.purchaseOrders, s.vendors, engine, clk, locker)
	poUseCase.SetObserver(observer)
	vendorUseCase := usecase.NewVendorUseCase(s.vendors, s.purchaseOrders, s.history, clk)

	zap.L().Info("[routes][wiring] application wired",
		zap.String("store", cfg.Store.Driver),
		zap.String("lock_mode", cfg.Lock.Mode),
		zap.String("response_time_scope", cfg.Metrics.ResponseTimeScope),
	)

	return &app{
		purchaseOrderHandler: handlers.NewPurchaseOrderHandler(poUseCase),
		vendorHandler:        handlers.NewVendorHandler(vendorUseCase),
		close:                closeLocker,
	}, nil
}
