package craft

import (
	"context"
	"fmt"
	"sync"

	dec "github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/model"
)

// BatchOptions bounds a batch run and wires its callbacks. Callbacks
// are invoked from worker goroutines, one at a time.
type BatchOptions struct {
	// Concurrency limits parallel renders; values < 1 mean 2.
	Concurrency int
	OnProgress  func(completed, total int)
	OnError     func(index int, err error)
}

// BatchItem pairs a generated artifact with its input position
type BatchItem struct {
	Index    int       `json:"index"`
	Artifact *Artifact `json:"artifact"`
}

// BatchSummary counts batch outcomes
type BatchSummary struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BatchResult is the outcome of a batch generation run
type BatchResult struct {
	Successes []BatchItem  `json:"successes"`
	Summary   BatchSummary `json:"summary"`
}

const defaultBatchConcurrency = 2

// GenerateBatch renders multiple invoices with a bounded worker pool.
// Each invoice is validated before rendering, the same check every
// single-invoice surface applies. Individual failures are reported
// through OnError and counted in the summary; they never abort the
// remaining items. Context cancellation stops items that have not
// started yet.
func (e *Engine) GenerateBatch(ctx context.Context, invoices []*model.Invoice, opts BatchOptions) (*BatchResult, error) {
	limit := opts.Concurrency
	if limit < 1 {
		limit = defaultBatchConcurrency
	}

	total := len(invoices)
	artifacts := make([]*Artifact, total)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		completed int
		failed    int
	)
	sem := make(chan struct{}, limit)

	for i, inv := range invoices {
		if err := ctx.Err(); err != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)

		go func(idx int, inv *model.Invoice) {
			defer wg.Done()
			defer func() { <-sem }()

			var artifact *Artifact
			err := invoice.Validate(inv)
			if err == nil {
				artifact, err = e.Generate(ctx, inv, nil)
			}

			mu.Lock()
			defer mu.Unlock()
			completed++
			if err != nil {
				failed++
				if opts.OnError != nil {
					opts.OnError(idx, err)
				}
			} else {
				artifacts[idx] = artifact
			}
			if opts.OnProgress != nil {
				opts.OnProgress(completed, total)
			}
		}(i, inv)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, model.NewGenerateError("batch", "batch run interrupted", err)
	}

	result := &BatchResult{Successes: []BatchItem{}}
	for i, artifact := range artifacts {
		if artifact != nil {
			result.Successes = append(result.Successes, BatchItem{Index: i, Artifact: artifact})
		}
	}
	result.Summary = BatchSummary{Successful: len(result.Successes), Failed: failed}
	return result, nil
}

// TestBatch builds n sample invoices for batch demonstrations
func TestBatch(n int) []*model.Invoice {
	invoices := make([]*model.Invoice, 0, n)
	for i := 1; i <= n; i++ {
		invoices = append(invoices, &model.Invoice{
			From:          model.Contact{Name: "Batch Test Company"},
			To:            model.Contact{Name: fmt.Sprintf("Batch Customer %d", i)},
			InvoiceNumber: fmt.Sprintf("INV-BATCH-%03d", i),
			InvoiceDate:   "2024-01-15",
			Currency:      "USD",
			Items: []model.InvoiceItem{
				{
					Description: fmt.Sprintf("Batch Service %d", i),
					Quantity:    dec.FromInt(int64(i)),
					UnitPrice:   dec.FromInt(100),
					TaxRate:     dec.FromFloat(0.08),
				},
			},
		})
	}
	return invoices
}
