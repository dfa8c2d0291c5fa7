package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kondaas/quotation-backend/internal/domain/quotation"
	"github.com/kondaas/quotation-backend/internal/domain/shared"
	"github.com/kondaas/quotation-backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// quotationRow is the persistence model for quotations. The full quotation
// travels verbatim in the data column; customer_name and customer_details are
// denormalized copies kept queryable alongside it.
type quotationRow struct {
	ID              string         `gorm:"primaryKey;size:64"`
	CustomerName    string         `gorm:"column:customer_name"`
	CustomerDetails datatypes.JSON `gorm:"column:customer_details"`
	Data            datatypes.JSON `gorm:"column:data"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
}

// TableName returns the table name for quotationRow
func (quotationRow) TableName() string {
	return "quotations"
}

// GormQuotationRepository implements quotation.Repository using GORM
type GormQuotationRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

var _ quotation.Repository = (*GormQuotationRepository)(nil)

// NewGormQuotationRepository creates a new GormQuotationRepository
func NewGormQuotationRepository(db *gorm.DB, log *zap.Logger) *GormQuotationRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &GormQuotationRepository{db: db, log: log}
}

// FindAll returns every stored quotation in creation order. Rows whose
// payload no longer decodes are skipped rather than failing the whole load.
func (r *GormQuotationRepository) FindAll(ctx context.Context) ([]quotation.Quotation, error) {
	var rows []quotationRow
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	quotes := make([]quotation.Quotation, 0, len(rows))
	for _, row := range rows {
		var q quotation.Quotation
		if err := json.Unmarshal(row.Data, &q); err != nil {
			r.log.Warn("Skipping quotation with undecodable payload",
				zap.String("request_id", logger.GetRequestID(ctx)),
				zap.String("quotation_id", row.ID),
				zap.Error(err),
			)
			continue
		}
		if q.ID == "" {
			q.ID = row.ID
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// Save creates or replaces the quotation row keyed by the quotation's id.
func (r *GormQuotationRepository) Save(ctx context.Context, q quotation.Quotation) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("failed to encode quotation %s: %w", q.ID, err)
	}
	details, err := json.Marshal(q.Details())
	if err != nil {
		return fmt.Errorf("failed to encode customer details for %s: %w", q.ID, err)
	}

	row := quotationRow{
		ID:              q.ID,
		CustomerName:    q.CustomerName,
		CustomerDetails: details,
		Data:            data,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"customer_name", "customer_details", "data", "updated_at"}),
		}).
		Create(&row).Error
}

// Delete removes the quotation with the given id. Returns shared.ErrNotFound
// when no row matches.
func (r *GormQuotationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&quotationRow{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
