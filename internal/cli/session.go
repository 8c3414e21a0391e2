package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/formtree"
	"github.com/aretw0/formtree/internal/logging"
	"github.com/aretw0/formtree/internal/metrics"
	"github.com/aretw0/formtree/pkg/domain"
	"github.com/aretw0/formtree/pkg/fields"
	"github.com/aretw0/formtree/pkg/registry"
	"github.com/aretw0/formtree/pkg/schema"
)

// Options configures one command invocation.
type Options struct {
	DefPath  string // Definition file (.yaml, .yml or .json)
	DataPath string // Data file; "-" reads YAML or JSON from Stdin; empty means no data
	Format   string // Output format: auto, json or pretty
	Metrics  bool   // Dump Prometheus metrics to Stderr when done
	Debug    bool   // Debug logging to Stderr
	Strict   bool   // Reject data that does not match the definition structure

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Format == "" {
		o.Format = FormatAuto
	}
	return o
}

// session holds everything loaded for one command.
type session struct {
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Collector
	def     *schema.Definition
	shape   *fields.ShapeNode
	data    map[string]any
	out     *printer
}

func open(opts Options) (*session, error) {
	opts = opts.withDefaults()
	s := &session{
		opts:   opts,
		logger: createLogger(opts.Stderr, opts.Debug),
	}

	out, err := newPrinter(opts.Format, opts.Stdout)
	if err != nil {
		return nil, err
	}
	s.out = out

	if opts.DefPath == "" {
		return nil, fmt.Errorf("a definition file is required (use --def)")
	}
	shape, def, err := schema.Load(opts.DefPath, registry.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to load definition %s: %w", opts.DefPath, err)
	}
	s.def, s.shape = def, shape
	s.logger.Debug("definition loaded", "path", opts.DefPath, "fields", len(shape.Keys()))

	s.data, err = readData(opts.DataPath, opts.Stdin)
	if err != nil {
		return nil, err
	}
	if opts.Strict {
		if err := schema.CheckData(def.Fields, s.data); err != nil {
			return nil, fmt.Errorf("data does not match definition: %w", err)
		}
	}

	if opts.Metrics {
		s.metrics = metrics.New()
	}
	return s, nil
}

// form creates a form over the loaded definition and data.
func (s *session) form(extra ...formtree.Option) (*formtree.Form, error) {
	hooks := createDebugHooks(s.logger)
	if s.metrics != nil {
		hooks = hooks.Merge(s.metrics.Hooks())
	}

	opts := []formtree.Option{
		formtree.WithLogger(s.logger),
		formtree.WithHooks(hooks),
		formtree.WithInitialData(s.data),
	}
	return formtree.New(s.shape, append(opts, extra...)...)
}

// close dumps the metrics, when enabled.
func (s *session) close() error {
	if s.metrics == nil {
		return nil
	}
	return s.metrics.Write(s.opts.Stderr)
}

func readData(path string, stdin io.Reader) (map[string]any, error) {
	switch path {
	case "":
		return map[string]any{}, nil
	case "-":
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read data from stdin: %w", err)
		}
		// YAML is a superset of JSON.
		return schema.DecodeData(raw, schema.FormatYAML)
	}

	format, err := schema.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	return schema.DecodeData(raw, format)
}

// createLogger configures the application logger.
// Logs go to w (Stderr) to keep Stdout for command output.
func createLogger(w io.Writer, debug bool) *slog.Logger {
	return logging.NewWriter(w, logging.Level(debug))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnUpdate: func(ctx context.Context, e *domain.UpdateEvent) {
			logger.Debug("Updates Flushed", "form", e.FormID, "applied", e.Applied, "changed", len(e.Changed))
		},
		OnValidate: func(ctx context.Context, e *domain.ValidateEvent) {
			if e.Violations != nil {
				logger.Debug("Field Invalid", "form", e.FormID, "field", e.Field)
			}
		},
		OnSubmit: func(ctx context.Context, e *domain.SubmitEvent) {
			logger.Debug("Submit", "form", e.FormID, "accepted", e.Accepted)
		},
	}
}
