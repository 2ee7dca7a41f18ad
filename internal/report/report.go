package report

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/envscan/internal/ui"
	"github.com/vvka-141/envscan/pkg/envscan"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted --output values.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: unknown output format %q (expected text, json or yaml)", envscan.ErrInvalidConfig, s)
}

type pathsDocument struct {
	Files []string `json:"files" yaml:"files"`
}

type valuesDocument struct {
	Variable string               `json:"variable" yaml:"variable"`
	Values   []envscan.ValueEntry `json:"values" yaml:"values"`
}

// Reporter renders finder and extractor results to a writer.
type Reporter struct {
	out    io.Writer
	format Format
	styles ui.Styles
}

// New creates a Reporter writing to out. Color applies to text output only.
func New(out io.Writer, format Format, color bool) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
		styles: ui.NewStyles(ui.NewRenderer(out, color)),
	}
}

// Paths renders candidate file paths. Text output is streamed one path per
// line as the walk produces them; structured formats are written once the
// walk completes.
func (r *Reporter) Paths(files iter.Seq[envscan.CandidateFile]) error {
	if r.format == FormatText {
		for file := range files {
			if _, err := fmt.Fprintln(r.out, r.styles.Path.Render(file.Path)); err != nil {
				return fmt.Errorf("failed to write path: %w", err)
			}
		}
		return nil
	}

	doc := pathsDocument{Files: []string{}}
	for file := range files {
		doc.Files = append(doc.Files, file.Path)
	}
	return r.encode(doc)
}

// Values renders the value index for variable. In text mode an empty index
// produces a notice instead of an empty table.
func (r *Reporter) Values(variable string, index *envscan.ValueIndex) error {
	if r.format != FormatText {
		return r.encode(valuesDocument{
			Variable: variable,
			Values:   index.Entries(),
		})
	}

	if index.IsEmpty() {
		_, err := fmt.Fprintln(r.out, r.styles.Notice.Render("No values found for variable: "+variable))
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Border).
		Headers("Value", "Files").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Header
			case col == 0:
				return r.styles.Value
			default:
				return r.styles.File
			}
		})

	for _, entry := range index.Entries() {
		t.Row(entry.Value, strings.Join(entry.Files, "\n"))
	}

	if _, err := fmt.Fprintln(r.out, "Values for variable: "+r.styles.Title.Render(variable)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.out, t.Render())
	return err
}

func (r *Reporter) encode(doc interface{}) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: unsupported output format %q", envscan.ErrInvalidConfig, r.format)
}
