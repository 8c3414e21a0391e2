package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/formtree"
	"github.com/aretw0/formtree/internal/presentation/graph"
	"github.com/aretw0/formtree/internal/presentation/report"
	"github.com/aretw0/formtree/internal/presentation/tui"
	"github.com/aretw0/formtree/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrViolations is returned when the data does not satisfy the definition.
// The violations themselves have already been written to the output.
var ErrViolations = errors.New("data has violations")

// Inspect views.
const (
	ViewOutline = "outline"
	ViewMermaid = "mermaid"
	ViewJSON    = "json"
	ViewYAML    = "yaml"
)

// Validate runs every validator against the data and reports the result.
func Validate(ctx context.Context, opts Options) (err error) {
	s, err := open(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	form, err := s.form()
	if err != nil {
		return err
	}
	errs, err := form.Validate(ctx)
	if err != nil {
		return err
	}

	if err := s.printResult(newResult(nil, errs), "Data is valid"); err != nil {
		return err
	}
	if !errs.Empty() {
		return ErrViolations
	}
	return nil
}

// Normalize prints the data after it went through the form, with every
// field present in its normalized form.
func Normalize(ctx context.Context, opts Options) (err error) {
	s, err := open(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	form, err := s.form()
	if err != nil {
		return err
	}
	value := form.Value()

	if !s.out.pretty {
		return s.out.JSON(value)
	}
	md, err := report.Value("Normalized", value)
	if err != nil {
		return err
	}
	return s.out.Markdown(md)
}

// Submit validates the data and, when valid, prints the filtered output.
func Submit(ctx context.Context, opts Options) (err error) {
	s, err := open(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	form, err := s.form()
	if err != nil {
		return err
	}
	out, err := form.Submit(ctx)
	if err != nil && !errors.Is(err, formtree.ErrInvalid) {
		return err
	}

	if err := s.printResult(newResult(out, form.Errors()), "Submitted"); err != nil {
		return err
	}
	if err != nil {
		return ErrViolations
	}
	return nil
}

// Inspect prints the definition in the requested view. When data is given,
// the mermaid view highlights the fields it violates.
func Inspect(ctx context.Context, opts Options, view string) (err error) {
	s, err := open(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	switch view {
	case ViewOutline, "":
		if !s.out.pretty {
			return s.out.Text(report.Definition(s.def))
		}
		return s.out.Markdown(report.Definition(s.def))
	case ViewMermaid:
		overlay, err := s.overlay(ctx)
		if err != nil {
			return err
		}
		return s.out.Text(graph.GenerateMermaid(s.def, overlay))
	case ViewJSON:
		return s.out.JSON(s.def)
	case ViewYAML:
		data, err := yaml.Marshal(s.def)
		if err != nil {
			return fmt.Errorf("failed to encode definition: %w", err)
		}
		return s.out.Text(string(data))
	default:
		return fmt.Errorf("unknown view %q (expected outline, mermaid, json or yaml)", view)
	}
}

func (s *session) overlay(ctx context.Context) (*graph.GraphOverlay, error) {
	if s.opts.DataPath == "" {
		return nil, nil
	}
	form, err := s.form()
	if err != nil {
		return nil, err
	}
	errs, err := form.Validate(ctx)
	if err != nil {
		return nil, err
	}
	return &graph.GraphOverlay{
		Invalid: domain.SortedPaths(domain.Flatten("", errs)),
	}, nil
}

func (s *session) printResult(r result, okText string) error {
	if !s.out.pretty {
		return s.out.JSON(r)
	}

	if r.Valid {
		if err := s.out.Text(tui.Status(okText, true) + "\n"); err != nil {
			return err
		}
		if r.Value == nil {
			return nil
		}
		md, err := report.Value("Output", r.Value)
		if err != nil {
			return err
		}
		return s.out.Markdown(md)
	}

	if err := s.out.Text(tui.Status(ErrViolations.Error(), false) + "\n"); err != nil {
		return err
	}
	return s.out.Markdown(report.Violations(flatToTree(r.Errors)))
}

// flatToTree wraps flattened violations so report.Violations can list them.
func flatToTree(flat map[string][]string) domain.MapViolations {
	tree := make(domain.MapViolations, len(flat))
	for path, msgs := range flat {
		tree[path] = domain.Messages(msgs)
	}
	return tree
}
