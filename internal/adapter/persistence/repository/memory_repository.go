package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"
)

// PurchaseOrderMemoryRepository keeps purchase orders in process memory.
// It backs STORE_DRIVER=memory and the end-to-end use case tests.
type PurchaseOrderMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.PurchaseOrder
}

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderMemoryRepository)(nil)

func NewPurchaseOrderMemoryRepository() *PurchaseOrderMemoryRepository {
	return &PurchaseOrderMemoryRepository{items: map[string]entities.PurchaseOrder{}}
}

func (r *PurchaseOrderMemoryRepository) Create(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[po.PONumber]; ok {
		return entities.PurchaseOrder{}, interfaces.ErrDuplicateKey
	}
	r.items[po.PONumber] = clonePurchaseOrder(po)
	return clonePurchaseOrder(po), nil
}

func (r *PurchaseOrderMemoryRepository) GetByID(_ context.Context, poNumber string) (entities.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	po, ok := r.items[poNumber]
	if !ok {
		return entities.PurchaseOrder{}, nil
	}
	return clonePurchaseOrder(po), nil
}

func (r *PurchaseOrderMemoryRepository) List(_ context.Context, filter entities.PurchaseOrderFilter) ([]entities.PurchaseOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.PurchaseOrder, 0, len(r.items))
	for _, po := range r.items {
		if filter.Matches(po) {
			out = append(out, clonePurchaseOrder(po))
		}
	}
	sortPurchaseOrders(out)
	return out, nil
}

func (r *PurchaseOrderMemoryRepository) Update(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[po.PONumber]
	if !ok {
		return entities.PurchaseOrder{}, nil
	}
	existing.DeliveryDate = po.DeliveryDate
	existing.Status = po.Status
	existing.QualityRating = cloneFloat(po.QualityRating)
	existing.AcknowledgmentDate = cloneTime(po.AcknowledgmentDate)
	r.items[po.PONumber] = existing
	return clonePurchaseOrder(existing), nil
}

func (r *PurchaseOrderMemoryRepository) Delete(_ context.Context, poNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[poNumber]; !ok {
		return false, nil
	}
	delete(r.items, poNumber)
	return true, nil
}

func (r *PurchaseOrderMemoryRepository) Count(_ context.Context, filter entities.PurchaseOrderFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, po := range r.items {
		if filter.Matches(po) {
			n++
		}
	}
	return n, nil
}

func (r *PurchaseOrderMemoryRepository) DeleteByVendorCode(_ context.Context, vendorCode string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for k, po := range r.items {
		if po.VendorCode == vendorCode {
			delete(r.items, k)
			removed++
		}
	}
	return removed, nil
}

type VendorMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Vendor
}

var _ interfaces.IVendorRepository = (*VendorMemoryRepository)(nil)

func NewVendorMemoryRepository() *VendorMemoryRepository {
	return &VendorMemoryRepository{items: map[string]entities.Vendor{}}
}

func (r *VendorMemoryRepository) Create(_ context.Context, v entities.Vendor) (entities.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[v.VendorCode]; ok {
		return entities.Vendor{}, interfaces.ErrDuplicateKey
	}
	r.items[v.VendorCode] = v
	return v, nil
}

func (r *VendorMemoryRepository) GetByCode(_ context.Context, code string) (entities.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[code], nil
}

func (r *VendorMemoryRepository) List(_ context.Context) ([]entities.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Vendor, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VendorCode < out[j].VendorCode })
	return out, nil
}

func (r *VendorMemoryRepository) UpdateProfile(_ context.Context, code string, update entities.VendorProfileUpdate) (entities.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[code]
	if !ok {
		return entities.Vendor{}, nil
	}
	if update.Name != nil {
		v.Name = *update.Name
	}
	if update.ContactDetails != nil {
		v.ContactDetails = *update.ContactDetails
	}
	if update.Address != nil {
		v.Address = *update.Address
	}
	v.UpdatedAt = time.Now().UTC()
	r.items[code] = v
	return v, nil
}

func (r *VendorMemoryRepository) UpdateMetrics(_ context.Context, code string, m entities.PerformanceMetrics) (entities.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[code]
	if !ok {
		return entities.Vendor{}, nil
	}
	v.PerformanceMetrics = m
	v.UpdatedAt = time.Now().UTC()
	r.items[code] = v
	return v, nil
}

func (r *VendorMemoryRepository) Delete(_ context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[code]; !ok {
		return false, nil
	}
	delete(r.items, code)
	return true, nil
}

type PerformanceHistoryMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]entities.PerformanceSnapshot
}

var _ interfaces.IPerformanceHistoryRepository = (*PerformanceHistoryMemoryRepository)(nil)

func NewPerformanceHistoryMemoryRepository() *PerformanceHistoryMemoryRepository {
	return &PerformanceHistoryMemoryRepository{snapshots: map[string][]entities.PerformanceSnapshot{}}
}

func (r *PerformanceHistoryMemoryRepository) Append(_ context.Context, s entities.PerformanceSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.snapshots[s.VendorCode] {
		if existing.ID == s.ID {
			return interfaces.ErrDuplicateKey
		}
	}
	r.snapshots[s.VendorCode] = append(r.snapshots[s.VendorCode], s)
	return nil
}

func (r *PerformanceHistoryMemoryRepository) ListByVendorCode(_ context.Context, vendorCode string) ([]entities.PerformanceSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.PerformanceSnapshot, len(r.snapshots[vendorCode]))
	copy(out, r.snapshots[vendorCode])
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func clonePurchaseOrder(po entities.PurchaseOrder) entities.PurchaseOrder {
	if po.Items != nil {
		po.Items = append(json.RawMessage(nil), po.Items...)
	}
	po.QualityRating = cloneFloat(po.QualityRating)
	po.AcknowledgmentDate = cloneTime(po.AcknowledgmentDate)
	return po
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
