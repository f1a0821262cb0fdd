// Package playground sequences the pure invoice core with the
// generation engine: validate, generate with a bounded wait, save the
// artifact, and report typed status transitions to an observer.
package playground

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/model"
	"github.com/rezonia/invoice-playground/internal/preset"
)

// DefaultWait bounds how long a run waits for the engine before the
// operation is reported as timed out.
const DefaultWait = 30 * time.Second

// DefaultPacing is the delay between presets in RunAll, long enough
// for observers to see each status settle.
const DefaultPacing = 500 * time.Millisecond

// Runner drives playground operations against a generation engine
type Runner struct {
	engine *craft.Engine
	outDir string
	wait   time.Duration
	pacing time.Duration

	mu       sync.Mutex
	status   model.Status
	observer func(model.Status)
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithOutputDir sets where generated artifacts are saved
func WithOutputDir(dir string) RunnerOption {
	return func(r *Runner) { r.outDir = dir }
}

// WithWait overrides the generation wait budget
func WithWait(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.wait = d
		}
	}
}

// WithPacing overrides the delay between presets in RunAll
func WithPacing(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d >= 0 {
			r.pacing = d
		}
	}
}

// WithObserver registers a status observer. Transitions are delivered
// in order, one at a time.
func WithObserver(fn func(model.Status)) RunnerOption {
	return func(r *Runner) { r.observer = fn }
}

// NewRunner creates a playground runner around an engine
func NewRunner(engine *craft.Engine, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine: engine,
		outDir: ".",
		wait:   DefaultWait,
		pacing: DefaultPacing,
		status: model.Idle(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Status returns the last reported status
func (r *Runner) Status() model.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Reset returns the runner to the idle state
func (r *Runner) Reset() {
	r.setStatus(model.Idle())
}

func (r *Runner) setStatus(s model.Status) {
	r.mu.Lock()
	r.status = s
	observer := r.observer
	r.mu.Unlock()
	if observer != nil {
		observer(s)
	}
}

// Result is the outcome of a successful run
type Result struct {
	Artifact *craft.Artifact
	// Path is where the artifact was saved, empty for dry runs
	Path string
}

// Run validates the invoice, generates the PDF within the wait budget
// and saves it to the output directory. Any failure is converted to an
// error status; the returned error carries the same message.
func (r *Runner) Run(ctx context.Context, inv *model.Invoice, opts *model.RenderOptions) (*Result, error) {
	r.setStatus(model.Validating("Validating invoice..."))
	if err := invoice.Validate(inv); err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return nil, err
	}

	r.setStatus(model.Generating("Generating PDF..."))
	artifact, err := r.awaitGenerate(ctx, inv, opts)
	if err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return nil, err
	}

	path, err := r.save(artifact)
	if err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return nil, err
	}

	r.setStatus(model.Success(fmt.Sprintf("Generated %s (%d bytes)", artifact.Filename, len(artifact.Data))))
	return &Result{Artifact: artifact, Path: path}, nil
}

// awaitGenerate races the engine call against the wait budget. On
// timeout the engine call is NOT cancelled; it keeps running and its
// late result is discarded. The timeout only bounds how long the
// caller waits.
func (r *Runner) awaitGenerate(ctx context.Context, inv *model.Invoice, opts *model.RenderOptions) (*craft.Artifact, error) {
	type outcome struct {
		artifact *craft.Artifact
		err      error
	}
	done := make(chan outcome, 1)

	go func() {
		artifact, err := r.engine.Generate(context.WithoutCancel(ctx), inv, opts)
		done <- outcome{artifact, err}
	}()

	timer := time.NewTimer(r.wait)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.artifact, out.err
	case <-ctx.Done():
		return nil, model.NewGenerateError("generate", "interrupted", ctx.Err())
	case <-timer.C:
		return nil, model.NewGenerateError("generate", fmt.Sprintf("generation timed out after %s", r.wait), nil)
	}
}

// Preview renders the HTML preview with the same status policy as Run
func (r *Runner) Preview(inv *model.Invoice, opts craft.PreviewOptions) (string, error) {
	r.setStatus(model.Validating("Validating invoice..."))
	if err := invoice.Validate(inv); err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return "", err
	}

	r.setStatus(model.Generating("Generating HTML preview..."))
	html, err := r.engine.PreviewHTML(inv, opts)
	if err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return "", err
	}

	r.setStatus(model.Success("HTML preview generated"))
	return html, nil
}

// Export validates, encodes in the requested format and saves the
// result to the output directory
func (r *Runner) Export(ctx context.Context, inv *model.Invoice, opts craft.ExportOptions) (*Result, error) {
	r.setStatus(model.Validating("Validating invoice..."))
	if err := invoice.Validate(inv); err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return nil, err
	}

	r.setStatus(model.Generating(fmt.Sprintf("Exporting as %s...", opts.Format)))
	export, err := r.engine.Export(ctx, inv, opts)
	if err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return nil, err
	}

	artifact := &craft.Artifact{Data: export.Data, Filename: export.Filename, MIMEType: export.MIMEType}
	path, err := r.save(artifact)
	if err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return nil, err
	}

	r.setStatus(model.Success(fmt.Sprintf("Exported %s", export.Filename)))
	return &Result{Artifact: artifact, Path: path}, nil
}

// RunBatch generates a batch, saving every successful artifact and
// reporting progress through the status observer
func (r *Runner) RunBatch(ctx context.Context, invoices []*model.Invoice, concurrency int) (*craft.BatchResult, error) {
	r.setStatus(model.Generating(fmt.Sprintf("Batch: generating %d invoices...", len(invoices))))

	result, err := r.engine.GenerateBatch(ctx, invoices, craft.BatchOptions{
		Concurrency: concurrency,
		OnProgress: func(completed, total int) {
			r.setStatus(model.Generating(fmt.Sprintf("Batch: %d/%d", completed, total)))
		},
	})
	if err != nil {
		r.setStatus(model.ErrorStatus(err.Error()))
		return nil, err
	}

	for _, item := range result.Successes {
		if _, err := r.save(item.Artifact); err != nil {
			r.setStatus(model.ErrorStatus(err.Error()))
			return nil, err
		}
	}

	r.setStatus(model.Success(fmt.Sprintf("Batch complete: %d successful, %d failed",
		result.Summary.Successful, result.Summary.Failed)))
	return result, nil
}

// RunAll runs the given presets one at a time with a fixed delay
// between them so each status transition is observable. Pacing is a
// presentation choice, not a correctness requirement; a failing preset
// does not stop the remaining ones.
func (r *Runner) RunAll(ctx context.Context, presets []preset.Preset) (succeeded, failed int, err error) {
	for i, p := range presets {
		if err := ctx.Err(); err != nil {
			return succeeded, failed, err
		}
		if i > 0 && r.pacing > 0 {
			select {
			case <-time.After(r.pacing):
			case <-ctx.Done():
				return succeeded, failed, ctx.Err()
			}
		}

		inv := p.Invoice
		opts := p.Options
		if _, err := r.Run(ctx, &inv, &opts); err != nil {
			failed++
			continue
		}
		succeeded++
	}
	return succeeded, failed, nil
}
