package lock

import (
	"context"
	"errors"
	"sync"

	"po_tracker/internal/usecase/interfaces"
)

var ErrLockNotObtained = errors.New("vendor lock not obtained")

// Nop never blocks. It keeps the unsynchronized read-modify-write behavior of
// concurrent metric updates.
type Nop struct{}

var _ interfaces.IVendorLocker = Nop{}

func (Nop) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

// Local serializes callers per vendor code inside one process.
type Local struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.IVendorLocker = (*Local)(nil)

func NewLocal() *Local {
	return &Local{slots: make(map[string]*slot)}
}

func (l *Local) Lock(ctx context.Context, vendorCode string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[vendorCode]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[vendorCode] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(vendorCode, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.release(vendorCode, s)
		})
	}, nil
}

func (l *Local) release(vendorCode string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, vendorCode)
	}
}
