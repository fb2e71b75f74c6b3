package hosts

import (
	"os"
	"testing"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantLines  []string
		wantEnding string
		// wantBytes is the saved content when it differs from content
		wantBytes string
	}{
		{
			name:       "empty file",
			content:    "",
			wantLines:  []string{""},
			wantEnding: LF,
		},
		{
			name:       "trailing newline",
			content:    "a\nb\n",
			wantLines:  []string{"a", "b", ""},
			wantEnding: LF,
		},
		{
			name:       "no trailing newline",
			content:    "a\nb",
			wantLines:  []string{"a", "b"},
			wantEnding: LF,
		},
		{
			name:       "crlf",
			content:    "a\r\nb\r\n",
			wantLines:  []string{"a", "b", ""},
			wantEnding: CRLF,
		},
		{
			name:       "mostly crlf with a stray lf",
			content:    "a\r\nb\r\nc\n",
			wantLines:  []string{"a", "b", "c", ""},
			wantEnding: CRLF,
			wantBytes:  "a\r\nb\r\nc\r\n",
		},
		{
			name:       "mostly lf with a stray crlf",
			content:    "a\r\nb\nc\n",
			wantLines:  []string{"a", "b", "c", ""},
			wantEnding: LF,
			wantBytes:  "a\nb\nc\n",
		},
		{
			name:       "tie goes to crlf",
			content:    "a\r\nb\n",
			wantLines:  []string{"a", "b", ""},
			wantEnding: CRLF,
			wantBytes:  "a\r\nb\r\n",
		},
		{
			name:       "carriage return without newline is content",
			content:    "a\nb\r",
			wantLines:  []string{"a", "b\r"},
			wantEnding: LF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.content))
			assert.Equal(t, tt.wantLines, doc.Lines)
			assert.Equal(t, tt.wantEnding, doc.LineEnding)
			want := tt.wantBytes
			if want == "" {
				want = tt.content
			}
			assert.Equal(t, want, string(doc.Bytes()))
		})
	}
}

func TestDocumentClone(t *testing.T) {
	doc := Parse([]byte("a\nb"))
	clone := doc.Clone()
	clone.Lines[0] = "changed"
	assert.Equal(t, "a", doc.Lines[0])
}

func TestLoadSave(t *testing.T) {
	base := afero.NewMemMapFs()
	fs := filesystem.NewAferoFS(base)
	require.NoError(t, base.MkdirAll("/etc", 0755))
	require.NoError(t, afero.WriteFile(base, "/etc/hosts", []byte("127.0.0.1 localhost\n"), 0600))

	doc, err := Load(fs, "/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1 localhost", ""}, doc.Lines)

	doc.Lines[0] = "127.0.0.1 localhost box"
	require.NoError(t, Save(fs, "/etc/hosts", doc))

	content, err := afero.ReadFile(base, "/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1 localhost box\n", string(content))

	info, err := base.Stat("/etc/hosts")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "permissions are kept")
}

func TestLoad_Missing(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	_, err := Load(fs, "/etc/hosts")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReadFail))
	assert.Equal(t, "/etc/hosts", errors.GetErrorDetails(err)["path"])
}

func TestSave_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/etc", 0755))
	require.NoError(t, afero.WriteFile(base, "/etc/hosts", []byte("x"), 0644))
	fs := filesystem.NewAferoFS(afero.NewReadOnlyFs(base))

	err := Save(fs, "/etc/hosts", Parse([]byte("y")))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWriteFail))
}
