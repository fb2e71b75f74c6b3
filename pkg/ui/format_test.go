package ui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{name: "auto", input: "auto", expected: ui.FormatAuto},
		{name: "empty string as auto", input: "", expected: ui.FormatAuto},
		{name: "term", input: "term", expected: ui.FormatTerminal},
		{name: "terminal", input: "terminal", expected: ui.FormatTerminal},
		{name: "text", input: "text", expected: ui.FormatText},
		{name: "plain", input: "plain", expected: ui.FormatText},
		{name: "json", input: "json", expected: ui.FormatJSON},
		{name: "mixed case", input: " Json ", expected: ui.FormatJSON},
		{name: "invalid", input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
				assert.Contains(t, err.Error(), "unknown format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFormatText(t *testing.T) {
	text, err := ui.FormatJSON.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "json", string(text))

	var f ui.Format
	require.NoError(t, f.UnmarshalText([]byte("text")))
	assert.Equal(t, ui.FormatText, f)
	assert.Error(t, f.UnmarshalText([]byte("xml")))
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(file))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, nil, false))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatTerminal, nil, true))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatTerminal, nil, false))
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, nil, true))
}
