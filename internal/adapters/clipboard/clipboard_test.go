package clipboard

import (
	"errors"
	"testing"

	"github.com/atotto/clipboard"

	"github.com/kamal-hamza/hb-cli/internal/core/ports"
)

var _ ports.Clipboard = (*SystemClipboard)(nil)

func TestSystemClipboard_Unsupported(t *testing.T) {
	original := clipboard.Unsupported
	clipboard.Unsupported = true
	defer func() { clipboard.Unsupported = original }()

	err := NewSystemClipboard().WriteAll("sections/foundation/index.html")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
