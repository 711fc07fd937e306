package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
)

// DefaultWordWrap is used when no terminal width is known
const DefaultWordWrap = 80

// TerminalRenderer implements the DetailRenderer port with glamour
type TerminalRenderer struct {
	renderer *glamour.TermRenderer
}

// NewTerminalRenderer creates a glamour renderer for the given color theme
// ("auto", "dark", "light" or "notty") wrapping at width columns
func NewTerminalRenderer(theme string, width int) (*TerminalRenderer, error) {
	if width <= 0 {
		width = DefaultWordWrap
	}

	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	switch theme {
	case "dark", "light", "notty":
		options = append(options, glamour.WithStandardStyle(theme))
	default:
		options = append(options, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return &TerminalRenderer{renderer: r}, nil
}

// Render renders the detail template for the terminal
func (r *TerminalRenderer) Render(detail domain.Detail) (string, error) {
	out, err := r.renderer.Render(detail.Markdown())
	if err != nil {
		return "", fmt.Errorf("failed to render detail: %w", err)
	}
	return out, nil
}
