package hosts

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/types"
)

const defaultFileMode fs.FileMode = 0644

// Line endings understood by Parse.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// Document is a hosts file as an ordered sequence of lines. A trailing
// newline in the file shows up as a final empty line.
type Document struct {
	Lines      []string
	LineEnding string
}

// Parse splits raw file content into lines. The document takes the line
// ending used by most line breaks, CRLF on a tie, and its lines carry no
// '\r' from a line break, so a file with a stray ending is normalized on
// save.
func Parse(content []byte) *Document {
	text := string(content)
	breaks := strings.Count(text, LF)
	crlf := strings.Count(text, CRLF)

	ending := LF
	if crlf > 0 && 2*crlf >= breaks {
		ending = CRLF
	}

	lines := strings.Split(text, LF)
	for i := 0; i < len(lines)-1; i++ {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return &Document{
		Lines:      lines,
		LineEnding: ending,
	}
}

// Bytes joins the lines back into file content.
func (d *Document) Bytes() []byte {
	ending := d.LineEnding
	if ending == "" {
		ending = LF
	}
	return []byte(strings.Join(d.Lines, ending))
}

// Clone returns a copy that shares nothing with d.
func (d *Document) Clone() *Document {
	lines := make([]string, len(d.Lines))
	copy(lines, d.Lines)
	return &Document{Lines: lines, LineEnding: d.LineEnding}
}

// Load reads the hosts file at path.
func Load(fsys types.FS, path string) (*Document, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrReadFail, "failed to read hosts file").
			WithDetail("path", path)
	}
	return Parse(content), nil
}

// Save writes doc to path, keeping the file's current permissions.
func Save(fsys types.FS, path string, doc *Document) error {
	mode := defaultFileMode
	if info, err := fsys.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := fsys.WriteFile(path, doc.Bytes(), mode); err != nil {
		return errors.Wrap(err, errors.ErrWriteFail, "failed to write hosts").
			WithDetail("path", path)
	}
	return nil
}
