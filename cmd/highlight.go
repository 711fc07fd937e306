package cmd

import (
	"strings"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
	"github.com/kamal-hamza/hb-cli/pkg/ui"
)

// renderHighlight renders text with every occurrence of query emphasised
func renderHighlight(text, query string) string {
	var b strings.Builder
	for _, seg := range domain.Highlight(text, query) {
		if seg.Match {
			b.WriteString(ui.StyleHighlight.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
