package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPurchaseOrderNotFound      = errors.New("purchase order not found")
	ErrPurchaseOrderAlreadyExists = errors.New("purchase order already exists")
	ErrVendorReferenceNotFound    = errors.New("referenced vendor does not exist")
	ErrInvalidPONumber            = errors.New("invalid po_number")
	ErrInvalidQuantity            = errors.New("invalid quantity")
	ErrInvalidItems               = errors.New("invalid items")
	ErrInvalidQualityRating       = errors.New("invalid quality_rating")
	ErrInvalidStatus              = errors.New("invalid status")
	ErrAlreadyAcknowledged        = errors.New("purchase order already acknowledged")
	ErrNotAcknowledged            = errors.New("purchase order not acknowledged yet")
)

const maxPONumberLength = 50

const (
	TransitionCreate      = "create"
	TransitionAcknowledge = "acknowledge"
	TransitionUpdate      = "update"
	TransitionComplete    = "complete"
	TransitionDelete      = "delete"
)

// CreatePurchaseOrderInput carries the caller-supplied fields of a new order.
// Dates and status are always assigned by the use case.
type CreatePurchaseOrderInput struct {
	PONumber   string
	VendorCode string
	Items      json.RawMessage
	Quantity   int
}

// UpdatePurchaseOrderInput carries the optional fields of an update.
type UpdatePurchaseOrderInput struct {
	QualityRating *float64
	Status        *entities.PurchaseOrderStatus
}

// IPurchaseOrderUseCase drives the purchase order lifecycle:
//   - Create: pending order with a 5-day delivery SLA
//   - Acknowledge: once only; feeds the average response time
//   - Update: rating and completion; feeds quality, on-time and fulfillment metrics
//   - Delete: no metric is recomputed

type IPurchaseOrderUseCase interface {
	Create(ctx context.Context, in CreatePurchaseOrderInput) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, poNumber string) (entities.PurchaseOrder, error)
	List(ctx context.Context, vendorCode string) ([]entities.PurchaseOrder, error)
	Acknowledge(ctx context.Context, poNumber string) (entities.PurchaseOrder, error)
	Update(ctx context.Context, poNumber string, in UpdatePurchaseOrderInput) (entities.PurchaseOrder, error)
	Delete(ctx context.Context, poNumber string) error
}

type PurchaseOrderUseCase struct {
	repo       interfaces.IPurchaseOrderRepository
	vendorRepo interfaces.IVendorRepository
	engine     IMetricsEngine
	clock      interfaces.IClock
	locker     interfaces.IVendorLocker
	observer   interfaces.IPerformanceObserver
}

var _ IPurchaseOrderUseCase = (*PurchaseOrderUseCase)(nil)

// NewPurchaseOrderUseCase wires the lifecycle controller. locker may be nil,
// in which case concurrent updates against one vendor are not serialized.
func NewPurchaseOrderUseCase(
	repo interfaces.IPurchaseOrderRepository,
	vendorRepo interfaces.IVendorRepository,
	engine IMetricsEngine,
	clock interfaces.IClock,
	locker interfaces.IVendorLocker,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		repo:       repo,
		vendorRepo: vendorRepo,
		engine:     engine,
		clock:      clock,
		locker:     locker,
		observer:   nopObserver{},
	}
}

func (u *PurchaseOrderUseCase) SetObserver(o interfaces.IPerformanceObserver) {
	if o == nil {
		o = nopObserver{}
	}
	u.observer = o
}

func (u *PurchaseOrderUseCase) Create(ctx context.Context, in CreatePurchaseOrderInput) (entities.PurchaseOrder, error) {
	vendorCode, err := normalizeVendorCode(in.VendorCode)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	poNumber := strings.TrimSpace(in.PONumber)
	if poNumber == "" {
		poNumber = uuid.NewString()
	}
	if len(poNumber) > maxPONumberLength {
		return entities.PurchaseOrder{}, ErrInvalidPONumber
	}
	if in.Quantity < 0 {
		return entities.PurchaseOrder{}, ErrInvalidQuantity
	}
	if len(in.Items) == 0 || !json.Valid(in.Items) || string(bytes.TrimSpace(in.Items)) == "null" {
		return entities.PurchaseOrder{}, ErrInvalidItems
	}

	vendor, err := u.vendorRepo.GetByCode(ctx, vendorCode)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if vendor.VendorCode == "" {
		return entities.PurchaseOrder{}, ErrVendorReferenceNotFound
	}

	if existing, err := u.repo.GetByID(ctx, poNumber); err != nil {
		return entities.PurchaseOrder{}, err
	} else if existing.PONumber != "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderAlreadyExists
	}

	now := u.clock.Now()
	po := entities.PurchaseOrder{
		PONumber:     poNumber,
		VendorCode:   vendorCode,
		OrderDate:    now,
		DeliveryDate: now.Add(entities.DeliverySLA),
		Items:        in.Items,
		Quantity:     in.Quantity,
		Status:       entities.PurchaseOrderStatusPending,
		IssueDate:    now,
	}

	created, err := u.repo.Create(ctx, po)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.PurchaseOrder{}, ErrPurchaseOrderAlreadyExists
		}
		return entities.PurchaseOrder{}, err
	}
	u.observer.TransitionApplied(TransitionCreate)
	zap.L().Info("[po][usecase] created",
		zap.String("po_number", created.PONumber),
		zap.String("vendor_code", created.VendorCode),
	)
	return created, nil
}

func (u *PurchaseOrderUseCase) GetByID(ctx context.Context, poNumber string) (entities.PurchaseOrder, error) {
	poNumber = strings.TrimSpace(poNumber)
	if poNumber == "" {
		return entities.PurchaseOrder{}, ErrInvalidPONumber
	}
	return u.load(ctx, poNumber)
}

func (u *PurchaseOrderUseCase) List(ctx context.Context, vendorCode string) ([]entities.PurchaseOrder, error) {
	return u.repo.List(ctx, entities.PurchaseOrderFilter{VendorCode: strings.TrimSpace(vendorCode)})
}

func (u *PurchaseOrderUseCase) Acknowledge(ctx context.Context, poNumber string) (entities.PurchaseOrder, error) {
	poNumber = strings.TrimSpace(poNumber)
	if poNumber == "" {
		return entities.PurchaseOrder{}, ErrInvalidPONumber
	}

	po, unlock, err := u.loadLocked(ctx, poNumber)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	defer unlock()

	if po.IsAcknowledged() {
		return entities.PurchaseOrder{}, ErrAlreadyAcknowledged
	}

	now := u.clock.Now()
	po.AcknowledgmentDate = &now
	updated, err := u.repo.Update(ctx, po)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if updated.PONumber == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}
	u.observer.TransitionApplied(TransitionAcknowledge)
	zap.L().Info("[po][usecase] acknowledged",
		zap.String("po_number", po.PONumber),
		zap.String("vendor_code", po.VendorCode),
		zap.Duration("response_time", po.ResponseTime()),
	)

	if err := u.engine.UpdateAverageResponseTime(ctx, updated); err != nil {
		return entities.PurchaseOrder{}, fmt.Errorf("update average response time: %w", err)
	}
	return updated, nil
}

// Update applies a rating and/or completion to an acknowledged order.
//
// The on-time and fulfillment metrics are recomputed only when the order was
// already completed before this call; the call that first completes the
// order does not trigger them. The quality average is recomputed every time.
func (u *PurchaseOrderUseCase) Update(ctx context.Context, poNumber string, in UpdatePurchaseOrderInput) (entities.PurchaseOrder, error) {
	poNumber = strings.TrimSpace(poNumber)
	if poNumber == "" {
		return entities.PurchaseOrder{}, ErrInvalidPONumber
	}

	po, unlock, err := u.loadLocked(ctx, poNumber)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	defer unlock()

	if !po.IsAcknowledged() {
		return entities.PurchaseOrder{}, ErrNotAcknowledged
	}
	if err := validateUpdate(in); err != nil {
		return entities.PurchaseOrder{}, err
	}

	expectedDeliveryDate := po.DeliveryDate
	previousQualityRating := po.QualityRating

	if in.QualityRating != nil {
		rating := *in.QualityRating
		po.QualityRating = &rating
	}

	justCompleted := false
	if po.Status != entities.PurchaseOrderStatusCompleted {
		po.Status = entities.PurchaseOrderStatusCompleted
		po.DeliveryDate = u.clock.Now()
		justCompleted = true
	}

	updated, err := u.repo.Update(ctx, po)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if updated.PONumber == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}
	if justCompleted {
		u.observer.TransitionApplied(TransitionComplete)
	} else {
		u.observer.TransitionApplied(TransitionUpdate)
	}
	zap.L().Info("[po][usecase] updated",
		zap.String("po_number", updated.PONumber),
		zap.String("vendor_code", updated.VendorCode),
		zap.Bool("just_completed", justCompleted),
		zap.Bool("rating_supplied", in.QualityRating != nil),
	)

	if !justCompleted {
		if err := u.engine.UpdateOnTimeDeliveryRate(ctx, updated, expectedDeliveryDate); err != nil {
			return entities.PurchaseOrder{}, fmt.Errorf("update on-time delivery rate: %w", err)
		}
		if err := u.engine.UpdateFulfillmentRate(ctx, updated); err != nil {
			return entities.PurchaseOrder{}, fmt.Errorf("update fulfillment rate: %w", err)
		}
	}
	if err := u.engine.UpdateQualityRatingAverage(ctx, updated, previousQualityRating); err != nil {
		return entities.PurchaseOrder{}, fmt.Errorf("update quality rating average: %w", err)
	}
	return updated, nil
}

// Delete removes the order. Vendor metrics are not corrected retroactively.
func (u *PurchaseOrderUseCase) Delete(ctx context.Context, poNumber string) error {
	poNumber = strings.TrimSpace(poNumber)
	if poNumber == "" {
		return ErrInvalidPONumber
	}

	deleted, err := u.repo.Delete(ctx, poNumber)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPurchaseOrderNotFound
	}
	u.observer.TransitionApplied(TransitionDelete)
	zap.L().Info("[po][usecase] deleted", zap.String("po_number", poNumber))
	return nil
}

func (u *PurchaseOrderUseCase) load(ctx context.Context, poNumber string) (entities.PurchaseOrder, error) {
	po, err := u.repo.GetByID(ctx, poNumber)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.PONumber == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}
	return po, nil
}

// loadLocked loads the order and, when a locker is configured, takes the
// vendor lock and reloads the order so checks run against the latest state.
func (u *PurchaseOrderUseCase) loadLocked(ctx context.Context, poNumber string) (entities.PurchaseOrder, func(), error) {
	po, err := u.load(ctx, poNumber)
	if err != nil {
		return entities.PurchaseOrder{}, nil, err
	}
	if u.locker == nil {
		return po, func() {}, nil
	}

	unlock, err := u.locker.Lock(ctx, po.VendorCode)
	if err != nil {
		zap.L().Warn("[po][usecase] vendor lock not obtained",
			zap.String("po_number", poNumber),
			zap.String("vendor_code", po.VendorCode),
			zap.Error(err),
		)
		return entities.PurchaseOrder{}, nil, err
	}

	po, err = u.load(ctx, poNumber)
	if err != nil {
		unlock()
		return entities.PurchaseOrder{}, nil, err
	}
	return po, unlock, nil
}

func validateUpdate(in UpdatePurchaseOrderInput) error {
	if in.QualityRating != nil {
		r := *in.QualityRating
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return ErrInvalidQualityRating
		}
	}
	if in.Status != nil && *in.Status != entities.PurchaseOrderStatusCompleted {
		return ErrInvalidStatus
	}
	return nil
}
