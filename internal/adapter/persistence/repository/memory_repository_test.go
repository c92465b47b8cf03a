package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"po_tracker/internal/domain/entities"
	"po_tracker/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseOrderMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate create", func(t *testing.T) {
		repo := NewPurchaseOrderMemoryRepository()
		_, err := repo.Create(ctx, samplePurchaseOrder())
		require.NoError(t, err)

		_, err = repo.Create(ctx, samplePurchaseOrder())
		assert.True(t, errors.Is(err, interfaces.ErrDuplicateKey))
	})

	t.Run("count honours every criterion", func(t *testing.T) {
		repo := NewPurchaseOrderMemoryRepository()
		rating := 3.0
		ack := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		a := samplePurchaseOrder()
		b := samplePurchaseOrder()
		b.PONumber = "PO002"
		b.AcknowledgmentDate = &ack
		b.Status = entities.PurchaseOrderStatusCompleted
		b.QualityRating = &rating
		c := samplePurchaseOrder()
		c.PONumber = "PO003"
		c.VendorCode = "V2"
		c.AcknowledgmentDate = &ack
		for _, po := range []entities.PurchaseOrder{a, b, c} {
			_, err := repo.Create(ctx, po)
			require.NoError(t, err)
		}

		n, _ := repo.Count(ctx, entities.PurchaseOrderFilter{Acknowledged: true})
		assert.EqualValues(t, 2, n)
		n, _ = repo.Count(ctx, entities.PurchaseOrderFilter{VendorCode: "V1"})
		assert.EqualValues(t, 2, n)
		n, _ = repo.Count(ctx, entities.PurchaseOrderFilter{VendorCode: "V1", Status: entities.PurchaseOrderStatusCompleted})
		assert.EqualValues(t, 1, n)
		n, _ = repo.Count(ctx, entities.PurchaseOrderFilter{VendorCode: "V1", Rated: true})
		assert.EqualValues(t, 1, n)
	})

	t.Run("returned values do not alias stored state", func(t *testing.T) {
		repo := NewPurchaseOrderMemoryRepository()
		rating := 2.0
		po := samplePurchaseOrder()
		po.QualityRating = &rating
		_, err := repo.Create(ctx, po)
		require.NoError(t, err)

		got, _ := repo.GetByID(ctx, po.PONumber)
		*got.QualityRating = 5
		again, _ := repo.GetByID(ctx, po.PONumber)
		assert.Equal(t, 2.0, *again.QualityRating)
	})

	t.Run("update keeps immutable fields", func(t *testing.T) {
		repo := NewPurchaseOrderMemoryRepository()
		po := samplePurchaseOrder()
		_, err := repo.Create(ctx, po)
		require.NoError(t, err)

		changed := po
		changed.IssueDate = po.IssueDate.Add(time.Hour)
		changed.Status = entities.PurchaseOrderStatusCompleted
		got, err := repo.Update(ctx, changed)
		require.NoError(t, err)
		assert.Equal(t, entities.PurchaseOrderStatusCompleted, got.Status)
		assert.True(t, got.IssueDate.Equal(po.IssueDate))
	})

	t.Run("delete by vendor", func(t *testing.T) {
		repo := NewPurchaseOrderMemoryRepository()
		a := samplePurchaseOrder()
		b := samplePurchaseOrder()
		b.PONumber = "PO002"
		b.VendorCode = "V2"
		_, _ = repo.Create(ctx, a)
		_, _ = repo.Create(ctx, b)

		n, err := repo.DeleteByVendorCode(ctx, "V1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		left, _ := repo.List(ctx, entities.PurchaseOrderFilter{})
		require.Len(t, left, 1)
		assert.Equal(t, "PO002", left[0].PONumber)
	})
}

func TestVendorMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewVendorMemoryRepository()
	_, err := repo.Create(ctx, sampleVendor())
	require.NoError(t, err)

	t.Run("profile update leaves metrics alone", func(t *testing.T) {
		_, err := repo.UpdateMetrics(ctx, "V1", entities.PerformanceMetrics{QualityRatingAvg: 4})
		require.NoError(t, err)

		addr := "2 Side St"
		got, err := repo.UpdateProfile(ctx, "V1", entities.VendorProfileUpdate{Address: &addr})
		require.NoError(t, err)
		assert.Equal(t, "2 Side St", got.Address)
		assert.Equal(t, "Acme", got.Name)
		assert.Equal(t, 4.0, got.QualityRatingAvg)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		got, err := repo.UpdateMetrics(ctx, "V9", entities.PerformanceMetrics{})
		require.NoError(t, err)
		assert.Empty(t, got.VendorCode)

		ok, err := repo.Delete(ctx, "V9")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPerformanceHistoryMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPerformanceHistoryMemoryRepository()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, entities.PerformanceSnapshot{ID: "2", VendorCode: "V1", Date: base.Add(time.Minute)}))
	require.NoError(t, repo.Append(ctx, entities.PerformanceSnapshot{ID: "1", VendorCode: "V1", Date: base}))
	assert.ErrorIs(t, repo.Append(ctx, entities.PerformanceSnapshot{ID: "1", VendorCode: "V1", Date: base}), interfaces.ErrDuplicateKey)

	got, err := repo.ListByVendorCode(ctx, "V1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	none, err := repo.ListByVendorCode(ctx, "V2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
