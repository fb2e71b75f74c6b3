package output

import (
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/logging"
	"github.com/arthur-debert/hostboi/pkg/output/styles"
	"github.com/arthur-debert/hostboi/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Renderer writes command results for people, through Go templates and
// lipgloss styles.
//
// Templates call {{style "Name" text}} for every styled fragment. With
// noColor set, style returns the text unchanged, which is how the plain
// text format is produced from the same templates.
type Renderer struct {
	templates *template.Template
	writer    io.Writer
	noColor   bool
	lg        *lipgloss.Renderer
}

// NewRenderer creates a new Renderer instance.
func NewRenderer(w io.Writer, noColor bool) (*Renderer, error) {
	log := logging.GetLogger("output.Renderer")

	r := &Renderer{
		writer:  w,
		noColor: noColor,
		lg:      lipgloss.NewRenderer(w),
	}

	log.Debug().
		Bool("noColor", noColor).
		Str("NO_COLOR_env", os.Getenv("NO_COLOR")).
		Str("colorProfile", fmt.Sprintf("%v", r.lg.ColorProfile())).
		Msg("Creating renderer with color settings")

	tmpl, err := template.New("output").Funcs(template.FuncMap{
		"style":    r.style,
		"diff":     r.diff,
		"favorite": favoriteLabel,
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.templates = tmpl
	return r, nil
}

// RenderResult dispatches on the result type.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.FavoritesResult:
		return r.execute("favorites.tmpl", v)
	case *types.MutationResult:
		return r.execute("mutation.tmpl", mutationView{
			MutationResult: v,
			Summary:        summary(v),
			ShowChanges:    v.Operation != types.OperationRestore,
		})
	default:
		_, err := fmt.Fprintf(r.writer, "%+v\n", result)
		return err
	}
}

// RenderError renders an error message with appropriate styling
func (r *Renderer) RenderError(err error) error {
	var b strings.Builder
	b.WriteString(r.style("Error", "Error:") + " " + err.Error() + "\n")

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %s %v\n", r.style("Muted", k+":"), details[k]))
	}

	_, writeErr := io.WriteString(r.writer, b.String())
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.writer, r.style("Info", msg))
	return err
}

func (r *Renderer) execute(name string, data interface{}) error {
	log := logging.GetLogger("output.Renderer")
	if err := r.templates.ExecuteTemplate(r.writer, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	log.Trace().Str("template", name).Msg("Template executed")
	return nil
}

func (r *Renderer) style(name, text string) string {
	if r.noColor {
		return text
	}
	return r.lg.NewStyle().Inherit(styles.GetStyle(name)).Render(text)
}

// diff colors a unified diff line by line.
func (r *Renderer) diff(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		body := strings.TrimRight(line, "\r\n")
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			body = r.style("DiffHeader", body)
		case strings.HasPrefix(body, "@@"):
			body = r.style("DiffHunk", body)
		case strings.HasPrefix(body, "+"):
			body = r.style("DiffAdded", body)
		case strings.HasPrefix(body, "-"):
			body = r.style("DiffRemoved", body)
		}
		b.WriteString(body + "\n")
	}
	return b.String()
}

type mutationView struct {
	*types.MutationResult
	Summary     string
	ShowChanges bool
}

func summary(m *types.MutationResult) string {
	verb := func(done, planned string) string {
		if m.DryRun {
			return planned
		}
		return done
	}
	switch m.Operation {
	case types.OperationSwap:
		return fmt.Sprintf("%s box %s in", verb("Swapped to", "Would swap to"), m.Target)
	case types.OperationFavorite:
		return fmt.Sprintf("%s favorite %s in", verb("Selected", "Would select"), m.Target)
	case types.OperationRestore:
		return verb("Restored backup to", "Would restore backup to")
	default:
		return verb("Updated", "Would update")
	}
}

func favoriteLabel(name string) string {
	if name == "" {
		return "(empty name)"
	}
	return name
}
