package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into terminal output.
type Renderer func(markdown string) (string, error)

// NewRenderer returns a glamour-backed renderer. The style follows the
// terminal background. With plain set, markdown is returned unchanged, which
// is what pipes and tests want.
func NewRenderer(plain bool) (Renderer, error) {
	if plain {
		return func(markdown string) (string, error) { return markdown, nil }, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render, nil
}
