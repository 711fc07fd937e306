package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/kamal-hamza/hb-cli/internal/core/domain"
)

// HTMLRenderer implements the DetailRenderer port with goldmark
type HTMLRenderer struct {
	md goldmark.Markdown

	// Standalone wraps the fragment in a complete HTML document
	Standalone bool
}

// NewHTMLRenderer creates a markdown to HTML renderer
func NewHTMLRenderer(standalone bool) *HTMLRenderer {
	return &HTMLRenderer{
		md:         goldmark.New(goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps())),
		Standalone: standalone,
	}
}

// Render converts the detail template to HTML
func (r *HTMLRenderer) Render(detail domain.Detail) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(detail.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("failed to convert detail to html: %w", err)
	}

	if !r.Standalone {
		return buf.String(), nil
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`, html.EscapeString(detail.Name), buf.String()), nil
}
