package state

import (
	"context"
	"errors"
	"testing"

	"github.com/kondaas/quotation-backend/internal/domain/quotation"
	"github.com/kondaas/quotation-backend/internal/domain/settings"
	"github.com/kondaas/quotation-backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSettingsRepository is a mock implementation of settings.Repository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Load(ctx context.Context) (*settings.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Document), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockQuotationRepository is a mock implementation of quotation.Repository
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindAll(ctx context.Context) ([]quotation.Quotation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]quotation.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) Save(ctx context.Context, q quotation.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuotationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(sr *MockSettingsRepository, qr *MockQuotationRepository) *Service {
	return NewService(sr, qr, settings.DefaultCatalog(), zap.NewNop())
}

func TestLoadState_FirstRun(t *testing.T) {
	sr := new(MockSettingsRepository)
	qr := new(MockQuotationRepository)
	svc := newTestService(sr, qr)

	sr.On("Load", mock.Anything).Return(nil, shared.ErrNotFound)
	sr.On("Save", mock.Anything, settings.DefaultCatalog()).Return(nil)
	qr.On("FindAll", mock.Anything).Return([]quotation.Quotation{}, nil)

	got := svc.LoadState(context.Background())

	assert.Equal(t, settings.DefaultCatalog(), got.Settings)
	assert.NotNil(t, got.Quotations)
	assert.Empty(t, got.Quotations)
	assert.Equal(t, 1506, got.NextID)

	// First run writes the catalog through as the new settings singleton.
	sr.AssertCalled(t, "Save", mock.Anything, settings.DefaultCatalog())
}

func TestLoadState_FirstRunWithExistingQuotations(t *testing.T) {
	sr := new(MockSettingsRepository)
	qr := new(MockQuotationRepository)
	svc := newTestService(sr, qr)

	quotes := []quotation.Quotation{{ID: "KAPL-1520", CustomerName: "Ravi"}}
	sr.On("Load", mock.Anything).Return(nil, shared.ErrNotFound)
	sr.On("Save", mock.Anything, mock.Anything).Return(nil)
	qr.On("FindAll", mock.Anything).Return(quotes, nil)

	got := svc.LoadState(context.Background())

	assert.Equal(t, quotes, got.Quotations)
	assert.Equal(t, 1521, got.NextID)
}

func TestLoadState_PartialSettings(t *testing.T) {
	sr := new(MockSettingsRepository)
	qr := new(MockQuotationRepository)
	svc := newTestService(sr, qr)

	company := settings.Company{Name: "Acme Solar", GSTIN: "33BBBBB1111B2Z6"}
	doc := &settings.Document{Company: &company}
	quotes := []quotation.Quotation{
		{ID: "KAPL-1600"},
		{ID: "TNMNRE1700"},
	}
	sr.On("Load", mock.Anything).Return(doc, nil)
	qr.On("FindAll", mock.Anything).Return(quotes, nil)

	got := svc.LoadState(context.Background())

	defaults := settings.DefaultCatalog()
	assert.Equal(t, company, got.Company)
	assert.Equal(t, defaults.ProductPricing, got.ProductPricing)
	assert.Equal(t, defaults.Terms, got.Terms)
	assert.Equal(t, defaults.Users, got.Users)
	assert.Equal(t, 1701, got.NextID)

	// A present settings row must not trigger a write-through.
	sr.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLoadState_MalformedIdentifiersAreIgnored(t *testing.T) {
	sr := new(MockSettingsRepository)
	qr := new(MockQuotationRepository)
	svc := newTestService(sr, qr)

	sr.On("Load", mock.Anything).Return(&settings.Document{}, nil)
	qr.On("FindAll", mock.Anything).Return([]quotation.Quotation{{ID: "INVALID-XYZ"}}, nil)

	got := svc.LoadState(context.Background())

	assert.Equal(t, 1506, got.NextID)
	assert.Len(t, got.Quotations, 1)
}

func TestLoadState_SettingsReadFailureDegradesToDefaults(t *testing.T) {
	sr := new(MockSettingsRepository)
	qr := new(MockQuotationRepository)
	svc := newTestService(sr, qr)

	sr.On("Load", mock.Anything).Return(nil, errors.New("connection refused"))
	qr.On("FindAll", mock.Anything).Return([]quotation.Quotation{{ID: "KAPL-1600"}}, nil)

	got := svc.LoadState(context.Background())

	assert.Equal(t, settings.DefaultCatalog(), got.Settings)
	assert.Equal(t, 1601, got.NextID)

	// A transport failure is not a first run: the stored row is left alone.
	sr.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestLoadState_TotalBackendFailure(t *testing.T) {
	sr := new(MockSettingsRepository)
	qr := new(MockQuotationRepository)
	svc := newTestService(sr, qr)

	sr.On("Load", mock.Anything).Return(nil, errors.New("connection refused"))
	qr.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	got := svc.LoadState(context.Background())

	assert.Equal(t, settings.DefaultCatalog(), got.Settings)
	assert.NotNil(t, got.Quotations)
	assert.Empty(t, got.Quotations)
	assert.Equal(t, 1506, got.NextID)
}

func TestLoadState_QuotationSnapshotIsKeptVerbatim(t *testing.T) {
	sr := new(MockSettingsRepository)
	qr := new(MockQuotationRepository)

	// Serve a catalog whose pricing disagrees with the stored snapshot.
	defaults := settings.DefaultCatalog()
	defaults.ProductPricing[0].OnGridSystemCost = decimal.NewFromInt(999999)
	svc := NewService(sr, qr, defaults, zap.NewNop())

	snapshot := settings.PricingTier{
		ID:               "p3kw",
		Name:             "3kW Standard Pricing",
		OnGridSystemCost: decimal.NewFromInt(185000),
	}
	quotes := []quotation.Quotation{{ID: "KAPL-1600", Pricing: snapshot}}
	sr.On("Load", mock.Anything).Return(&settings.Document{}, nil)
	qr.On("FindAll", mock.Anything).Return(quotes, nil)

	got := svc.LoadState(context.Background())

	require.Len(t, got.Quotations, 1)
	assert.True(t, got.Quotations[0].Pricing.OnGridSystemCost.Equal(decimal.NewFromInt(185000)))
}

func TestSaveSettings(t *testing.T) {
	t.Run("passes the settings through and returns them", func(t *testing.T) {
		sr := new(MockSettingsRepository)
		qr := new(MockQuotationRepository)
		svc := newTestService(sr, qr)

		cfg := settings.DefaultCatalog()
		sr.On("Save", mock.Anything, cfg).Return(nil)

		saved, err := svc.SaveSettings(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg, saved)
	})

	t.Run("assigns ids to entries that arrived without one", func(t *testing.T) {
		sr := new(MockSettingsRepository)
		qr := new(MockQuotationRepository)
		svc := newTestService(sr, qr)

		cfg := settings.DefaultCatalog()
		cfg.Terms = append(cfg.Terms, settings.Term{Text: "New term.", Enabled: true, Order: 7})
		cfg.BOMTemplates[0].Items = append(cfg.BOMTemplates[0].Items, settings.BOMItem{Product: "AC Cable"})
		sr.On("Save", mock.Anything, mock.Anything).Return(nil)

		saved, err := svc.SaveSettings(context.Background(), cfg)
		require.NoError(t, err)

		assert.NotEmpty(t, saved.Terms[len(saved.Terms)-1].ID)
		items := saved.BOMTemplates[0].Items
		assert.NotEmpty(t, items[len(items)-1].ID)
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		sr := new(MockSettingsRepository)
		qr := new(MockQuotationRepository)
		svc := newTestService(sr, qr)

		sr.On("Save", mock.Anything, mock.Anything).Return(errors.New("write failed"))

		_, err := svc.SaveSettings(context.Background(), settings.DefaultCatalog())
		assert.Error(t, err)
	})
}

func TestSaveQuotation(t *testing.T) {
	t.Run("rejects an empty identifier", func(t *testing.T) {
		sr := new(MockSettingsRepository)
		qr := new(MockQuotationRepository)
		svc := newTestService(sr, qr)

		err := svc.SaveQuotation(context.Background(), quotation.Quotation{})
		assert.Error(t, err)
		qr.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("saves by the quotation's own identifier", func(t *testing.T) {
		sr := new(MockSettingsRepository)
		qr := new(MockQuotationRepository)
		svc := newTestService(sr, qr)

		q := quotation.Quotation{ID: "TNMNRE1506", CustomerName: "Meena"}
		qr.On("Save", mock.Anything, q).Return(nil)

		require.NoError(t, svc.SaveQuotation(context.Background(), q))
		qr.AssertExpectations(t)
	})
}

func TestDeleteQuotation(t *testing.T) {
	sr := new(MockSettingsRepository)
	qr := new(MockQuotationRepository)
	svc := newTestService(sr, qr)

	qr.On("Delete", mock.Anything, "KAPL-1600").Return(nil)
	qr.On("Delete", mock.Anything, "KAPL-9999").Return(shared.ErrNotFound)

	assert.NoError(t, svc.DeleteQuotation(context.Background(), "KAPL-1600"))
	assert.ErrorIs(t, svc.DeleteQuotation(context.Background(), "KAPL-9999"), shared.ErrNotFound)
}
