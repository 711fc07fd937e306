package ports

import (
	"context"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
)

// Catalog defines the port for reading the topic catalog
type Catalog interface {
	// Topics returns every topic in catalog order
	Topics(ctx context.Context) ([]domain.Topic, error)

	// Get retrieves a topic by its exact name
	Get(ctx context.Context, name string) (*domain.Topic, error)
}

// DetailRenderer defines the port for turning a detail template into output
type DetailRenderer interface {
	// Render returns the presentation of the detail view
	Render(detail domain.Detail) (string, error)
}

// Clipboard defines the port for the system clipboard
type Clipboard interface {
	// WriteAll replaces the clipboard contents
	WriteAll(text string) error
}
