package state

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/kondaas/quotation-backend/internal/domain/quotation"
	"github.com/kondaas/quotation-backend/internal/domain/settings"
	"github.com/kondaas/quotation-backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service reconciles the backing store against the default catalog and
// fronts all writes to the settings singleton and the quotation collection.
type Service struct {
	settingsRepo  settings.Repository
	quotationRepo quotation.Repository
	defaults      settings.Settings
	logger        *zap.Logger
}

// NewService creates a new state Service. The defaults value is the catalog
// substituted for any field absent in storage; injecting it keeps the
// baseline swappable in tests.
func NewService(
	settingsRepo settings.Repository,
	quotationRepo quotation.Repository,
	defaults settings.Settings,
	logger *zap.Logger,
) *Service {
	return &Service{
		settingsRepo:  settingsRepo,
		quotationRepo: quotationRepo,
		defaults:      defaults,
		logger:        logger,
	}
}

// LoadState fetches the settings singleton and the quotation collection,
// reconciles them against the default catalog and returns one complete
// AppState. It never fails: every storage error degrades to the
// corresponding default value and is logged, so the application always
// starts with a usable state.
func (s *Service) LoadState(ctx context.Context) AppState {
	var (
		doc     *settings.Document
		docErr  error
		quotes  []quotation.Quotation
		quotErr error
	)

	// The two reads are independent; run them concurrently and join.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		doc, docErr = s.settingsRepo.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		quotes, quotErr = s.quotationRepo.FindAll(ctx)
	}()
	wg.Wait()

	if quotErr != nil {
		s.logger.Error("failed to load quotations, continuing with empty collection",
			zap.Error(quotErr))
		quotes = nil
	}
	if quotes == nil {
		quotes = []quotation.Quotation{}
	}

	if docErr != nil {
		if errors.Is(docErr, shared.ErrNotFound) {
			// First run: initialize the store with the catalog. A failed
			// write-through is logged and retried implicitly on the next
			// first-run load.
			if err := s.settingsRepo.Save(ctx, s.defaults); err != nil {
				s.logger.Error("failed to initialize settings with defaults", zap.Error(err))
			}
		} else {
			// Degraded load: serve defaults for this load but leave the
			// stored row alone.
			s.logger.Error("failed to load settings, falling back to defaults",
				zap.Error(docErr))
		}
		doc = nil
	}

	return AppState{
		Settings:   doc.Merge(s.defaults),
		Quotations: quotes,
		NextID:     quotation.NextSequence(quotes),
	}
}

// SaveSettings replaces the settings singleton. Entries posted without an id
// (new terms, BOM templates and items, pricing tiers, product descriptions,
// users) are assigned one before the write. The error is returned to the
// caller rather than swallowed so it can surface the failure.
func (s *Service) SaveSettings(ctx context.Context, cfg settings.Settings) (settings.Settings, error) {
	assignIDs(&cfg)
	if err := s.settingsRepo.Save(ctx, cfg); err != nil {
		s.logger.Error("failed to save settings", zap.Error(err))
		return settings.Settings{}, err
	}
	return cfg, nil
}

// SaveQuotation creates or replaces one quotation row keyed by its own
// identifier.
func (s *Service) SaveQuotation(ctx context.Context, q quotation.Quotation) error {
	if q.ID == "" {
		return shared.NewDomainError("INVALID_INPUT", "Quotation identifier cannot be empty")
	}
	if err := s.quotationRepo.Save(ctx, q); err != nil {
		s.logger.Error("failed to save quotation", zap.String("id", q.ID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteQuotation removes the quotation with the given identifier. Returns
// shared.ErrNotFound when no such quotation exists.
func (s *Service) DeleteQuotation(ctx context.Context, id string) error {
	if err := s.quotationRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("failed to delete quotation", zap.String("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}

// assignIDs fills in a fresh id on every entry that arrived without one
func assignIDs(cfg *settings.Settings) {
	for i := range cfg.ProductPricing {
		if cfg.ProductPricing[i].ID == "" {
			cfg.ProductPricing[i].ID = uuid.NewString()
		}
	}
	for i := range cfg.Terms {
		if cfg.Terms[i].ID == "" {
			cfg.Terms[i].ID = uuid.NewString()
		}
	}
	for i := range cfg.BOMTemplates {
		if cfg.BOMTemplates[i].ID == "" {
			cfg.BOMTemplates[i].ID = uuid.NewString()
		}
		for j := range cfg.BOMTemplates[i].Items {
			if cfg.BOMTemplates[i].Items[j].ID == "" {
				cfg.BOMTemplates[i].Items[j].ID = uuid.NewString()
			}
		}
	}
	for i := range cfg.ProductDescriptions {
		if cfg.ProductDescriptions[i].ID == "" {
			cfg.ProductDescriptions[i].ID = uuid.NewString()
		}
	}
	for i := range cfg.Users {
		if cfg.Users[i].ID == "" {
			cfg.Users[i].ID = uuid.NewString()
		}
	}
}
