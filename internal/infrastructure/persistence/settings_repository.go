package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kondaas/quotation-backend/internal/domain/settings"
	"github.com/kondaas/quotation-backend/internal/domain/shared"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsSingletonKey is the fixed key of the single app_settings row.
const settingsSingletonKey = "global"

// settingsRow is the persistence model for the settings singleton. Every
// section is stored as its own JSONB column so a row written by an older
// build can simply leave newer columns NULL.
type settingsRow struct {
	SingletonKey        string         `gorm:"column:singleton_key;primaryKey;size:32"`
	Company             datatypes.JSON `gorm:"column:company"`
	Bank                datatypes.JSON `gorm:"column:bank"`
	ProductPricing      datatypes.JSON `gorm:"column:pricing"` // stored name predates the in-memory rename
	Warranty            datatypes.JSON `gorm:"column:warranty"`
	Terms               datatypes.JSON `gorm:"column:terms"`
	BOMTemplates        datatypes.JSON `gorm:"column:bom_templates"`
	ProductDescriptions datatypes.JSON `gorm:"column:product_descriptions"`
	Users               datatypes.JSON `gorm:"column:users"`
	UpdatedAt           time.Time      `gorm:"column:updated_at"`
}

// TableName returns the table name for settingsRow
func (settingsRow) TableName() string {
	return "app_settings"
}

// GormSettingsRepository implements settings.Repository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

var _ settings.Repository = (*GormSettingsRepository)(nil)

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Load reads the settings singleton. Returns shared.ErrNotFound when the row
// has never been written. Columns that are NULL or JSON null stay unset on
// the returned document.
func (r *GormSettingsRepository) Load(ctx context.Context) (*settings.Document, error) {
	var row settingsRow
	if err := r.db.WithContext(ctx).
		First(&row, "singleton_key = ?", settingsSingletonKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	doc := &settings.Document{}
	if present(row.Company) {
		doc.Company = &settings.Company{}
		if err := json.Unmarshal(row.Company, doc.Company); err != nil {
			return nil, fmt.Errorf("failed to decode company settings: %w", err)
		}
	}
	if present(row.Bank) {
		doc.Bank = &settings.Bank{}
		if err := json.Unmarshal(row.Bank, doc.Bank); err != nil {
			return nil, fmt.Errorf("failed to decode bank settings: %w", err)
		}
	}
	if present(row.ProductPricing) {
		if err := json.Unmarshal(row.ProductPricing, &doc.ProductPricing); err != nil {
			return nil, fmt.Errorf("failed to decode product pricing: %w", err)
		}
	}
	if present(row.Warranty) {
		doc.Warranty = &settings.Warranty{}
		if err := json.Unmarshal(row.Warranty, doc.Warranty); err != nil {
			return nil, fmt.Errorf("failed to decode warranty settings: %w", err)
		}
	}
	if present(row.Terms) {
		if err := json.Unmarshal(row.Terms, &doc.Terms); err != nil {
			return nil, fmt.Errorf("failed to decode terms: %w", err)
		}
	}
	if present(row.BOMTemplates) {
		if err := json.Unmarshal(row.BOMTemplates, &doc.BOMTemplates); err != nil {
			return nil, fmt.Errorf("failed to decode bom templates: %w", err)
		}
	}
	if present(row.ProductDescriptions) {
		if err := json.Unmarshal(row.ProductDescriptions, &doc.ProductDescriptions); err != nil {
			return nil, fmt.Errorf("failed to decode product descriptions: %w", err)
		}
	}
	if present(row.Users) {
		if err := json.Unmarshal(row.Users, &doc.Users); err != nil {
			return nil, fmt.Errorf("failed to decode users: %w", err)
		}
	}
	return doc, nil
}

// Save writes the full settings value, creating or replacing the singleton row.
func (r *GormSettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	row := settingsRow{SingletonKey: settingsSingletonKey}

	columns := []struct {
		name string
		dst  *datatypes.JSON
		src  any
	}{
		{"company", &row.Company, s.Company},
		{"bank", &row.Bank, s.Bank},
		{"pricing", &row.ProductPricing, s.ProductPricing},
		{"warranty", &row.Warranty, s.Warranty},
		{"terms", &row.Terms, s.Terms},
		{"bom_templates", &row.BOMTemplates, s.BOMTemplates},
		{"product_descriptions", &row.ProductDescriptions, s.ProductDescriptions},
		{"users", &row.Users, s.Users},
	}
	for _, c := range columns {
		raw, err := json.Marshal(c.src)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", c.name, err)
		}
		*c.dst = raw
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "singleton_key"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}

// present reports whether a JSON column carries a value. NULL columns arrive
// empty and JSON null counts as absent.
func present(raw datatypes.JSON) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}
