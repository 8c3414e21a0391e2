package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/aretw0/formtree"
	"github.com/aretw0/formtree/internal/presentation/report"
	"github.com/aretw0/formtree/internal/presentation/tui"
)

// Fill prompts for every field, starting from the loaded data, until the
// form can be submitted. The submitted output is printed at the end.
// Interrupting (Ctrl+C), typing "quit" or closing the input exits cleanly.
func Fill(ctx context.Context, opts Options, headless bool) (err error) {
	s, err := open(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, s.close()) }()

	form, err := s.form()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	runner := formtree.NewRunner()
	runner.Input = NewInterruptibleReader(s.opts.Stdin, ctx.Done())
	runner.Output = s.opts.Stdout
	runner.Headless = headless
	if !headless && isTerminal(s.opts.Stdout) {
		tui.PrintBanner(s.opts.Stdout)
		if render, err := tui.NewRenderer(80); err == nil {
			runner.Renderer = render
		}
	}

	out, err := runner.Run(ctx, form)
	if err != nil {
		if isInterrupted(err) {
			s.logger.Debug("fill aborted", "form", form.ID())
			if !headless {
				fmt.Fprintln(s.opts.Stdout, "\nBye!")
			}
			return nil
		}
		return err
	}

	if !s.out.pretty {
		return s.out.JSON(out)
	}
	md, err := report.Value("Output", out)
	if err != nil {
		return err
	}
	return s.out.Markdown(md)
}

var errInterrupted = errors.New("interrupted")

// InterruptibleReader wraps an io.Reader (like os.Stdin) and checks for a cancellation signal.
type InterruptibleReader struct {
	base   io.Reader
	cancel <-chan struct{}
}

func NewInterruptibleReader(base io.Reader, cancel <-chan struct{}) *InterruptibleReader {
	return &InterruptibleReader{
		base:   base,
		cancel: cancel,
	}
}

func (r *InterruptibleReader) Read(p []byte) (n int, err error) {
	// Check before blocking
	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}

	n, err = r.base.Read(p)

	// Check after returning
	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}
	return n, err
}

func isInterrupted(err error) bool {
	return errors.Is(err, errInterrupted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, formtree.ErrAborted)
}
