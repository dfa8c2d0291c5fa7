package quotation

import "context"

// Repository defines the interface for quotation persistence
type Repository interface {
	// FindAll returns every stored quotation, reconstructed from the row's
	// embedded payload
	FindAll(ctx context.Context) ([]Quotation, error)

	// Save creates or replaces the quotation row keyed by the quotation's
	// own identifier. Saving the same identifier twice overwrites.
	Save(ctx context.Context, q Quotation) error

	// Delete removes the quotation with the given identifier. Returns
	// shared.ErrNotFound when no such row exists.
	Delete(ctx context.Context, id string) error
}
