package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// SystemClipboard implements the Clipboard port with the OS clipboard
type SystemClipboard struct{}

// NewSystemClipboard creates a new system clipboard adapter
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// WriteAll replaces the clipboard contents
func (c *SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
