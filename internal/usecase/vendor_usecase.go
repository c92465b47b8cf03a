package usecase

import (
	"context"
	"errors"
	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrVendorAlreadyExists  = errors.New("vendor already exists")
	ErrInvalidVendorCode    = errors.New("invalid vendor_code")
	ErrInvalidVendorProfile = errors.New("invalid vendor profile")
	ErrEmptyVendorUpdate    = errors.New("vendor update has no fields")
)

const maxVendorCodeLength = 9

// CreateVendorInput carries the profile of a new vendor. Every field is
// required; metrics always start at zero.
type CreateVendorInput struct {
	VendorCode     string
	Name           string
	ContactDetails string
	Address        string
}

// IVendorUseCase exposes vendor CRUD and read access to performance data.
//
// Metric fields are read-only here; only the metrics engine writes them.

type IVendorUseCase interface {
	Create(ctx context.Context, in CreateVendorInput) (entities.Vendor, error)
	GetByCode(ctx context.Context, code string) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
	UpdateProfile(ctx context.Context, code string, update entities.VendorProfileUpdate) (entities.Vendor, error)
	Delete(ctx context.Context, code string) error
	GetPerformance(ctx context.Context, code string) (entities.PerformanceMetrics, error)
	ListHistory(ctx context.Context, code string) ([]entities.PerformanceSnapshot, error)
}

type VendorUseCase struct {
	repo        interfaces.IVendorRepository
	poRepo      interfaces.IPurchaseOrderRepository
	historyRepo interfaces.IPerformanceHistoryRepository
	clock       interfaces.IClock
}

var _ IVendorUseCase = (*VendorUseCase)(nil)

func NewVendorUseCase(
	repo interfaces.IVendorRepository,
	poRepo interfaces.IPurchaseOrderRepository,
	historyRepo interfaces.IPerformanceHistoryRepository,
	clock interfaces.IClock,
) *VendorUseCase {
	return &VendorUseCase{repo: repo, poRepo: poRepo, historyRepo: historyRepo, clock: clock}
}

func (u *VendorUseCase) Create(ctx context.Context, in CreateVendorInput) (entities.Vendor, error) {
	code, err := normalizeVendorCode(in.VendorCode)
	if err != nil {
		return entities.Vendor{}, err
	}
	name := strings.TrimSpace(in.Name)
	contact := strings.TrimSpace(in.ContactDetails)
	address := strings.TrimSpace(in.Address)
	if name == "" || contact == "" || address == "" {
		return entities.Vendor{}, ErrInvalidVendorProfile
	}

	now := u.clock.Now()
	v := entities.Vendor{
		VendorCode:     code,
		Name:           name,
		ContactDetails: contact,
		Address:        address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Vendor{}, ErrVendorAlreadyExists
		}
		return entities.Vendor{}, err
	}
	zap.L().Info("[vendor][usecase] created", zap.String("vendor_code", created.VendorCode))
	return created, nil
}

func (u *VendorUseCase) GetByCode(ctx context.Context, code string) (entities.Vendor, error) {
	code, err := normalizeVendorCode(code)
	if err != nil {
		return entities.Vendor{}, err
	}

	v, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Vendor{}, err
	}
	if v.VendorCode == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return v, nil
}

func (u *VendorUseCase) List(ctx context.Context) ([]entities.Vendor, error) {
	return u.repo.List(ctx)
}

func (u *VendorUseCase) UpdateProfile(ctx context.Context, code string, update entities.VendorProfileUpdate) (entities.Vendor, error) {
	code, err := normalizeVendorCode(code)
	if err != nil {
		return entities.Vendor{}, err
	}
	if update.IsEmpty() {
		return entities.Vendor{}, ErrEmptyVendorUpdate
	}
	for _, field := range []**string{&update.Name, &update.ContactDetails, &update.Address} {
		if *field == nil {
			continue
		}
		value := strings.TrimSpace(**field)
		if value == "" {
			return entities.Vendor{}, ErrInvalidVendorProfile
		}
		*field = &value
	}

	updated, err := u.repo.UpdateProfile(ctx, code, update)
	if err != nil {
		return entities.Vendor{}, err
	}
	if updated.VendorCode == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return updated, nil
}

// Delete removes the vendor and every purchase order referencing it.
// Performance snapshots are kept.
func (u *VendorUseCase) Delete(ctx context.Context, code string) error {
	code, err := normalizeVendorCode(code)
	if err != nil {
		return err
	}

	v, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if v.VendorCode == "" {
		return ErrVendorNotFound
	}

	removed, err := u.poRepo.DeleteByVendorCode(ctx, code)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVendorNotFound
	}
	zap.L().Info("[vendor][usecase] deleted",
		zap.String("vendor_code", code),
		zap.Int("purchase_orders_removed", removed),
	)
	return nil
}

func (u *VendorUseCase) GetPerformance(ctx context.Context, code string) (entities.PerformanceMetrics, error) {
	v, err := u.GetByCode(ctx, code)
	if err != nil {
		return entities.PerformanceMetrics{}, err
	}
	return v.PerformanceMetrics, nil
}

// ListHistory returns snapshots oldest first. Snapshots of a deleted vendor
// are still returned.
func (u *VendorUseCase) ListHistory(ctx context.Context, code string) ([]entities.PerformanceSnapshot, error) {
	code, err := normalizeVendorCode(code)
	if err != nil {
		return nil, err
	}
	snapshots, err := u.historyRepo.ListByVendorCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = []entities.PerformanceSnapshot{}
	}
	return snapshots, nil
}

func normalizeVendorCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > maxVendorCodeLength {
		return "", ErrInvalidVendorCode
	}
	return code, nil
}
