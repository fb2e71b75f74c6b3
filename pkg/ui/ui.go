// Package ui picks the renderer for a command's output.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/output"
	"github.com/arthur-debert/hostboi/pkg/ui/json"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result (*types.FavoritesResult,
	// *types.MutationResult)
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved against out when it is an *os.File.
func NewRenderer(format Format, out io.Writer, noColor bool) (Renderer, error) {
	if format == FormatAuto {
		file, _ := out.(*os.File)
		format = Resolve(format, file, noColor)
	}

	switch format {
	case FormatTerminal:
		return output.NewRenderer(out, noColor)
	case FormatText:
		return output.NewRenderer(out, true)
	case FormatJSON:
		return json.New(out)
	default:
		return nil, errors.Newf(errors.ErrInvalidArgument, "unknown format: %v", format)
	}
}
