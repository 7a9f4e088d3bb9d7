package cli

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-note-vault/internal/app"
)

// Clipboard receives copied secrets.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// NewSystemClipboard returns the desktop clipboard.
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", app.ErrClipboard)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", app.ErrClipboard, err)
	}
	return nil
}
