package formtree

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/fields"
)

// ErrAborted is returned by Runner.Run when input ends, or the user quits,
// before the form could be submitted.
var ErrAborted = errors.New("form filling aborted")

// Runner fills a Form from line-oriented input, prompting for every field.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer transforms markdown before it is written to the output.
// This allows for terminal rendering without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner. Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{}
}

// Run prompts for every top-level field, then submits. While the submit is
// rejected it reports the violations and prompts again for the failing
// fields only. Entering "quit" or closing the input returns ErrAborted.
func (r *Runner) Run(ctx context.Context, form *Form) (map[string]any, error) {
	if r.Input == nil {
		return nil, fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return nil, fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	s := &session{runner: r, lines: bufio.NewReader(r.Input)}
	if !r.Headless {
		fmt.Fprintln(r.Output, "--- formtree ---")
	}

	keys := form.Shape().Keys()
	for {
		for _, key := range keys {
			node, _ := form.Shape().Field(key)
			if err := s.fill(node, form.MustField(key), key); err != nil {
				return nil, err
			}
		}

		out, err := form.Submit(ctx)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, ErrInvalid) {
			return nil, err
		}

		r.report(form.Errors())
		keys = keys[:0:0]
		for _, key := range form.Shape().Keys() {
			if _, failed := form.Errors()[key]; failed {
				keys = append(keys, key)
			}
		}
	}
}

func (r *Runner) report(errs domain.MapViolations) {
	flat := domain.Flatten("", errs)
	var b strings.Builder
	b.WriteString("### Please fix the following\n\n")
	for _, path := range domain.SortedPaths(flat) {
		for _, msg := range flat[path] {
			fmt.Fprintf(&b, "- **%s**: %s\n", path, msg)
		}
	}

	output := b.String()
	if r.Renderer != nil {
		if rendered, err := r.Renderer(output); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(r.Output, strings.TrimSpace(output))
}

type session struct {
	runner *Runner
	lines  *bufio.Reader
}

func (s *session) prompt(label string, current any) (string, error) {
	if !s.runner.Headless {
		if domain.Truthy(current) {
			fmt.Fprintf(s.runner.Output, "%s [%v]: ", label, current)
		} else {
			fmt.Fprintf(s.runner.Output, "%s: ", label)
		}
	}

	text, err := s.lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && text != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("input error: %w", err)
	}

	input := strings.TrimSpace(text)
	if input == "quit" || input == "exit" {
		return "", ErrAborted
	}
	return input, nil
}

func (s *session) confirm(label string, current bool) (bool, error) {
	hint := "y/N"
	if current {
		hint = "Y/n"
	}
	input, err := s.prompt(fmt.Sprintf("%s (%s)", label, hint), nil)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "":
		return current, nil
	case "y", "yes", "true", "1":
		return true, nil
	}
	return false, nil
}

// fill walks node and its accessor together. Empty answers keep the
// current value.
func (s *session) fill(node fields.Node, acc fields.Accessor, label string) error {
	switch n := node.(type) {
	case *fields.ShapeNode:
		shape := acc.(*fields.ShapeAccessor)
		for _, key := range n.Keys() {
			child, _ := n.Field(key)
			sub, err := shape.MethodsFor(key)
			if err != nil {
				return err
			}
			if err := s.fill(child, sub, sub.Name()); err != nil {
				return err
			}
		}
		return nil

	case *fields.CollectionNode:
		return s.fillCollection(n, acc.(*fields.CollectionAccessor), label)

	case *fields.ToggleNode:
		props, err := acc.Props()
		if err != nil {
			return err
		}
		checked, err := s.confirm(label, props.Checked)
		if err != nil {
			return err
		}
		if checked != props.Checked {
			props.OnChange(props.Value)
		}
		return nil

	case *fields.RadioNode:
		input, err := s.prompt(label, nil)
		if err != nil || input == "" {
			return err
		}
		props, err := acc.Props(input)
		if err != nil {
			return err
		}
		props.OnChange(input)
		return nil
	}

	props, err := acc.Props()
	if err != nil {
		return err
	}
	input, err := s.prompt(label, props.Value)
	if err != nil || input == "" {
		return err
	}
	props.OnChange(input)
	return nil
}

// fillCollection rebuilds a collection element by element. Simple elements
// are read one per line until an empty line; other elements are added while
// the user confirms. Existing elements past the last answer are removed.
func (s *session) fillCollection(n *fields.CollectionNode, acc *fields.CollectionAccessor, label string) error {
	existing := acc.Length()
	_, simple := n.Child().(*fields.SimpleNode)

	if !s.runner.Headless {
		fmt.Fprintf(s.runner.Output, "%s (%d entries, empty line to finish)\n", label, existing)
	}

	i := 0
	for ; ; i++ {
		name := domain.ChildName(label, i)
		if !simple {
			more, err := s.confirm("add "+name, false)
			if err != nil {
				return err
			}
			if !more {
				break
			}
			if i >= existing {
				acc.Add()
			}
			if err := s.fill(n.Child(), acc.Index(i), name); err != nil {
				return err
			}
			continue
		}

		input, err := s.prompt(name, nil)
		if err != nil {
			return err
		}
		if input == "" {
			break
		}
		if i >= existing {
			acc.Add()
		}
		props, err := acc.Props(i)
		if err != nil {
			return err
		}
		props.OnChange(input)
	}

	for j := existing - 1; j >= i; j-- {
		acc.Remove(j)
	}
	return nil
}
