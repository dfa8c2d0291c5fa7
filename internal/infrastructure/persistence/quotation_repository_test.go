package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/kondaas/quotation-backend/internal/domain/quotation"
	"github.com/kondaas/quotation-backend/internal/domain/settings"
	"github.com/kondaas/quotation-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupQuotationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&quotationRow{})
	require.NoError(t, err)

	return db
}

func testQuotation(id string) quotation.Quotation {
	return quotation.Quotation{
		ID:           id,
		CustomerName: "Ravi Kumar",
		Mobile:       "9876543210",
		Email:        "ravi@example.com",
		Address:      "12, Anna Nagar, Coimbatore",
		DiscomNumber: "TN-04-1234",
		ProductName:  "3kW On-Grid Solar System",
		Date:         "2026-08-28",
		PreparedBy:   "admin",
		Pricing: settings.PricingTier{
			ID:               "p3kw",
			Name:             "3kW Standard Pricing",
			OnGridSystemCost:        decimal.NewFromInt(185000),
			RooftopPlantCost:        decimal.NewFromInt(165000),
			SubsidyAmount:           decimal.NewFromInt(78000),
			TNEBCharges:             decimal.NewFromInt(5000),
			AdditionalMaterialCost:  decimal.NewFromInt(0),
			CustomizedStructureCost: decimal.NewFromInt(0),
		},
		BOMItems: []settings.BOMItem{
			{ID: "b1", Product: "Solar Panel 540Wp", Make: "Premier", Quantity: "6", UOM: "Nos"},
		},
		Terms: []settings.Term{
			{ID: "1", Text: "Structure height will be 1 to 3 feet from floor level.", Enabled: true, Order: 1},
		},
	}
}

func TestGormQuotationRepository_SaveAndFindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty table yields an empty slice", func(t *testing.T) {
		repo := NewGormQuotationRepository(setupQuotationTestDB(t), zap.NewNop())

		quotes, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("round-trips the full quotation payload", func(t *testing.T) {
		repo := NewGormQuotationRepository(setupQuotationTestDB(t), zap.NewNop())
		q := testQuotation("KAPL-1600")

		require.NoError(t, repo.Save(ctx, q))

		quotes, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, q, quotes[0])
	})

	t.Run("saving the same id replaces the row", func(t *testing.T) {
		db := setupQuotationTestDB(t)
		repo := NewGormQuotationRepository(db, zap.NewNop())

		q := testQuotation("KAPL-1600")
		require.NoError(t, repo.Save(ctx, q))

		q.CustomerName = "Meena Devi"
		q.Mobile = "9000000000"
		require.NoError(t, repo.Save(ctx, q))

		var count int64
		require.NoError(t, db.Model(&quotationRow{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		quotes, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "Meena Devi", quotes[0].CustomerName)
	})

	t.Run("denormalizes customer name and details", func(t *testing.T) {
		db := setupQuotationTestDB(t)
		repo := NewGormQuotationRepository(db, zap.NewNop())

		require.NoError(t, repo.Save(ctx, testQuotation("KAPL-1600")))

		var row quotationRow
		require.NoError(t, db.First(&row, "id = ?", "KAPL-1600").Error)
		assert.Equal(t, "Ravi Kumar", row.CustomerName)
		assert.JSONEq(t, `{
			"mobile": "9876543210",
			"email": "ravi@example.com",
			"address": "12, Anna Nagar, Coimbatore",
			"discom": "TN-04-1234"
		}`, string(row.CustomerDetails))
	})

	t.Run("skips rows whose payload no longer decodes and warns", func(t *testing.T) {
		db := setupQuotationTestDB(t)
		core, logs := observer.New(zap.WarnLevel)
		repo := NewGormQuotationRepository(db, zap.New(core))

		require.NoError(t, repo.Save(ctx, testQuotation("KAPL-1600")))
		require.NoError(t, db.Create(&quotationRow{
			ID:        "KAPL-1601",
			Data:      []byte("{corrupt"),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}).Error)

		quotes, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "KAPL-1600", quotes[0].ID)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "KAPL-1601", entries[0].ContextMap()["quotation_id"])
	})
}

func TestGormQuotationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an existing quotation", func(t *testing.T) {
		repo := NewGormQuotationRepository(setupQuotationTestDB(t), zap.NewNop())

		require.NoError(t, repo.Save(ctx, testQuotation("KAPL-1600")))
		require.NoError(t, repo.Delete(ctx, "KAPL-1600"))

		quotes, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		repo := NewGormQuotationRepository(setupQuotationTestDB(t), zap.NewNop())

		err := repo.Delete(ctx, "KAPL-9999")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
