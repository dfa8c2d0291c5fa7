package settings

import "context"

// Repository defines the interface for settings singleton persistence
type Repository interface {
	// Load fetches the settings singleton. Returns shared.ErrNotFound when
	// no settings row exists, which callers must treat as a first-run
	// condition rather than a failure.
	Load(ctx context.Context) (*Document, error)

	// Save replaces the settings singleton with the given complete value
	Save(ctx context.Context, s Settings) error
}
