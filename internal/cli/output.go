package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/formtree/internal/presentation/tui"
	"github.com/aretw0/formtree/pkg/domain"
	"golang.org/x/term"
)

// Output formats.
const (
	FormatAuto   = "auto"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// printer writes command results either as JSON documents or as
// terminal-rendered markdown.
type printer struct {
	w      io.Writer
	pretty bool
	render func(string) (string, error)
}

func newPrinter(format string, w io.Writer) (*printer, error) {
	p := &printer{w: w}
	switch format {
	case FormatJSON:
	case FormatPretty:
		p.pretty = true
	case FormatAuto, "":
		p.pretty = isTerminal(w)
	default:
		return nil, fmt.Errorf("unknown format %q (expected auto, json or pretty)", format)
	}

	if p.pretty && isTerminal(w) {
		render, err := tui.NewRenderer(80)
		if err != nil {
			return nil, err
		}
		p.render = render
	}
	return p, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// JSON writes v as an indented JSON document.
func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Markdown writes md, rendered for the terminal when possible.
func (p *printer) Markdown(md string) error {
	if p.render != nil {
		rendered, err := p.render(md)
		if err == nil {
			md = rendered
		}
	}
	_, err := fmt.Fprint(p.w, md)
	return err
}

// Text writes s unchanged.
func (p *printer) Text(s string) error {
	_, err := fmt.Fprint(p.w, s)
	return err
}

// result is the JSON document written by validate and submit.
type result struct {
	Valid  bool                `json:"valid"`
	Value  map[string]any      `json:"value,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func newResult(value map[string]any, errs domain.MapViolations) result {
	r := result{Valid: errs.Empty(), Value: value}
	if !r.Valid {
		r.Errors = domain.Flatten("", errs)
	}
	return r
}
