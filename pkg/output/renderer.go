package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/patsub/pkg/errors"
	"github.com/arthur-debert/patsub/pkg/logging"
	"github.com/arthur-debert/patsub/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes rules, summaries and errors in one concrete format.
type Renderer struct {
	writer io.Writer
	format Format
	styles *styles.Registry
}

// NewRenderer creates a renderer for w. FormatAuto is treated as
// FormatText; callers resolve it against the real device first.
func NewRenderer(w io.Writer, format Format) *Renderer {
	if format == FormatAuto {
		format = FormatText
	}

	logger := logging.GetLogger("output.Renderer")
	logger.Debug().
		Str("format", format.String()).
		Msg("Creating renderer")

	return &Renderer{
		writer: w,
		format: format,
		styles: styles.Default(lipgloss.NewRenderer(w)),
	}
}

// Format returns the renderer's format.
func (r *Renderer) Format() Format {
	return r.format
}

type rulesDocument struct {
	Rules []RuleView `json:"rules" yaml:"rules" toml:"rules"`
}

type errorDocument struct {
	Error ErrorView `json:"error" yaml:"error" toml:"error"`
}

// RenderRules writes the rule list.
func (r *Renderer) RenderRules(views []RuleView) error {
	switch r.format {
	case FormatTerminal:
		return r.rulesTable(views)
	case FormatText:
		for _, v := range views {
			if _, err := fmt.Fprintf(r.writer, "%d\t%s\t%s\t%s\n", v.Index, v.Pattern, v.Replacement, v.Flags); err != nil {
				return errors.Wrap(err, errors.ErrOutput, "failed to write rules")
			}
		}
		return nil
	default:
		if views == nil {
			views = []RuleView{}
		}
		return r.encode(rulesDocument{Rules: views})
	}
}

func (r *Renderer) rulesTable(views []RuleView) error {
	data := pterm.TableData{{"#", "Pattern", "Replacement", "Flags"}}
	for _, v := range views {
		data = append(data, []string{
			strconv.Itoa(v.Index),
			v.Pattern,
			v.Replacement,
			r.styles.Render("Flags", v.Flags),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to render rules table")
	}
	if _, err := fmt.Fprintln(r.writer, table); err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to write rules")
	}
	return nil
}

// RenderSummary writes the outcome of a successful check.
func (r *Renderer) RenderSummary(s Summary) error {
	var err error
	switch r.format {
	case FormatTerminal:
		_, err = fmt.Fprintf(r.writer, "%s %s %s\n",
			r.styles.Render("Success", "ok"),
			s.Source,
			r.styles.Render("Muted", fmt.Sprintf("(%d rules)", s.Rules)))
	case FormatText:
		_, err = fmt.Fprintf(r.writer, "ok: %s: %d rules\n", s.Source, s.Rules)
	default:
		return r.encode(s)
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to write summary")
	}
	return nil
}

// RenderError writes err. Row errors show the cause, the line number and
// the raw line so the table can be fixed without opening it.
func (r *Renderer) RenderError(err error) error {
	view := NewErrorView(err)

	var werr error
	switch r.format {
	case FormatTerminal:
		_, werr = io.WriteString(r.writer, r.styledError(view))
	case FormatText:
		_, werr = io.WriteString(r.writer, plainError(view))
	default:
		return r.encode(errorDocument{Error: view})
	}
	if werr != nil {
		return errors.Wrap(werr, errors.ErrOutput, "failed to write error")
	}
	return nil
}

func plainError(view ErrorView) string {
	if view.Line == 0 {
		return "error: " + view.Message + "\n"
	}
	return fmt.Sprintf("error: %s\n%s\n\n line %d:\n%s\n", view.Message, view.Cause, view.Line, view.Raw)
}

func (r *Renderer) styledError(view ErrorView) string {
	var b strings.Builder
	b.WriteString(r.styles.Render("Error", "error:"))
	b.WriteString(" ")
	b.WriteString(view.Message)
	b.WriteString("\n")
	if view.Line == 0 {
		return b.String()
	}
	b.WriteString(r.styles.Render("Cause", view.Cause))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Render("LineNumber", fmt.Sprintf(" line %d:", view.Line)))
	b.WriteString("\n")
	b.WriteString(r.styles.Render("Raw", view.Raw))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) encode(v interface{}) error {
	var err error
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = gotoml.NewEncoder(r.writer).Encode(v)
	default:
		return errors.Newf(errors.ErrInternal, "format %s cannot encode documents", r.format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutput, "failed to encode %s", r.format)
	}
	return nil
}
