package lock

import (
	"context"
	"errors"
	"time"

	"po_tracker/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	redisKeyPrefix   = "po_tracker:vendor_metrics:"
	redisRetryPeriod = 50 * time.Millisecond
)

// Redis serializes metric writes per vendor across processes with a redislock
// lease. The lease expires after ttl even if the holder crashes.
type Redis struct {
	locker *redislock.Client
	ttl    time.Duration
}

var _ interfaces.IVendorLocker = (*Redis)(nil)

func NewRedis(client redis.UniversalClient, ttl time.Duration) *Redis {
	return &Redis{locker: redislock.New(client), ttl: ttl}
}

func (r *Redis) Lock(ctx context.Context, vendorCode string) (func(), error) {
	key := redisKeyPrefix + vendorCode
	retries := int(r.ttl / redisRetryPeriod)
	if retries < 1 {
		retries = 1
	}

	l, err := r.locker.Obtain(ctx, key, r.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(redisRetryPeriod), retries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		zap.L().Warn("[lock][redis] not obtained", zap.String("vendor_code", vendorCode))
		return nil, ErrLockNotObtained
	}
	if err != nil {
		return nil, err
	}

	return func() {
		// The request context may already be done; release on a fresh one.
		relCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := l.Release(relCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			zap.L().Warn("[lock][redis] release failed", zap.String("vendor_code", vendorCode), zap.Error(err))
		}
	}, nil
}
