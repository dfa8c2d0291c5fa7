package persistence

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kondaas/quotation-backend/internal/domain/settings"
	"github.com/kondaas/quotation-backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSettingsTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&settingsRow{})
	require.NoError(t, err)

	return db
}

func TestGormSettingsRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found before the first save", func(t *testing.T) {
		repo := NewGormSettingsRepository(setupSettingsTestDB(t))

		doc, err := repo.Load(ctx)

		assert.Nil(t, doc)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("round-trips a full settings value", func(t *testing.T) {
		repo := NewGormSettingsRepository(setupSettingsTestDB(t))
		stored := settings.DefaultCatalog()

		require.NoError(t, repo.Save(ctx, stored))

		doc, err := repo.Load(ctx)
		require.NoError(t, err)

		// With every column populated the merge has nothing to fill in.
		assert.Equal(t, stored, doc.Merge(settings.Settings{}))
	})

	t.Run("leaves NULL columns unset on the document", func(t *testing.T) {
		db := setupSettingsTestDB(t)
		repo := NewGormSettingsRepository(db)

		company, err := json.Marshal(settings.Company{Name: "Acme Solar"})
		require.NoError(t, err)
		require.NoError(t, db.Create(&settingsRow{
			SingletonKey: settingsSingletonKey,
			Company:      company,
		}).Error)

		doc, err := repo.Load(ctx)
		require.NoError(t, err)

		require.NotNil(t, doc.Company)
		assert.Equal(t, "Acme Solar", doc.Company.Name)
		assert.Nil(t, doc.Bank)
		assert.Nil(t, doc.ProductPricing)
		assert.Nil(t, doc.Terms)
		assert.Nil(t, doc.Users)
	})

	t.Run("treats JSON null as absent", func(t *testing.T) {
		db := setupSettingsTestDB(t)
		repo := NewGormSettingsRepository(db)

		require.NoError(t, db.Create(&settingsRow{
			SingletonKey: settingsSingletonKey,
			Company:      []byte("null"),
		}).Error)

		doc, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, doc.Company)
	})

	t.Run("keeps an empty but present list", func(t *testing.T) {
		db := setupSettingsTestDB(t)
		repo := NewGormSettingsRepository(db)

		require.NoError(t, db.Create(&settingsRow{
			SingletonKey: settingsSingletonKey,
			Terms:        []byte("[]"),
		}).Error)

		doc, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, doc.Terms)
		assert.Empty(t, doc.Terms)
	})

	t.Run("fails on an undecodable column", func(t *testing.T) {
		db := setupSettingsTestDB(t)
		repo := NewGormSettingsRepository(db)

		require.NoError(t, db.Create(&settingsRow{
			SingletonKey: settingsSingletonKey,
			Company:      []byte("{not json"),
		}).Error)

		_, err := repo.Load(ctx)
		assert.Error(t, err)
	})
}

func TestGormSettingsRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated saves keep a single row", func(t *testing.T) {
		db := setupSettingsTestDB(t)
		repo := NewGormSettingsRepository(db)

		first := settings.DefaultCatalog()
		require.NoError(t, repo.Save(ctx, first))

		second := settings.DefaultCatalog()
		second.Company.Name = "Renamed Pvt Ltd"
		require.NoError(t, repo.Save(ctx, second))

		var count int64
		require.NoError(t, db.Model(&settingsRow{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		doc, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, doc.Company)
		assert.Equal(t, "Renamed Pvt Ltd", doc.Company.Name)
	})

	t.Run("keeps pricing tiers under the pricing column", func(t *testing.T) {
		db := setupSettingsTestDB(t)
		repo := NewGormSettingsRepository(db)

		require.NoError(t, repo.Save(ctx, settings.DefaultCatalog()))

		var raw string
		row := db.Raw("SELECT pricing FROM app_settings WHERE singleton_key = ?", settingsSingletonKey).Row()
		require.NoError(t, row.Scan(&raw))

		var tiers []settings.PricingTier
		require.NoError(t, json.Unmarshal([]byte(raw), &tiers))
		assert.NotEmpty(t, tiers)
	})
}
