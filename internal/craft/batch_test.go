package craft_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/model"
)

func TestGenerateBatch(t *testing.T) {
	engine := craft.NewEngine()

	result, err := engine.GenerateBatch(context.Background(), craft.TestBatch(5), craft.BatchOptions{
		Concurrency: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Summary.Successful)
	assert.Equal(t, 0, result.Summary.Failed)
	require.Len(t, result.Successes, 5)

	// Successes carry their input positions and distinct filenames.
	seen := map[string]bool{}
	for _, item := range result.Successes {
		require.NotNil(t, item.Artifact)
		assert.NotEmpty(t, item.Artifact.Data)
		seen[item.Artifact.Filename] = true
	}
	assert.Len(t, seen, 5)
}

func TestGenerateBatch_ProgressReported(t *testing.T) {
	engine := craft.NewEngine()

	var mu sync.Mutex
	var progress []int

	_, err := engine.GenerateBatch(context.Background(), craft.TestBatch(4), craft.BatchOptions{
		Concurrency: 2,
		OnProgress: func(completed, total int) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 4, total)
			progress = append(progress, completed)
		},
	})
	require.NoError(t, err)

	// Callbacks are serialized, so the counter is strictly increasing.
	require.Len(t, progress, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, progress)
}

func TestGenerateBatch_FailuresDoNotAbort(t *testing.T) {
	// A plugin that rejects one invoice; the rest still render.
	engine := craft.NewEngine(craft.WithPlugins(craft.Plugin{
		Name: "rejector",
		BeforeRender: func(inv *model.Invoice) error {
			if inv.InvoiceNumber == "INV-BATCH-002" {
				return assert.AnError
			}
			return nil
		},
	}))

	var mu sync.Mutex
	failures := map[int]error{}

	result, err := engine.GenerateBatch(context.Background(), craft.TestBatch(3), craft.BatchOptions{
		OnError: func(index int, err error) {
			mu.Lock()
			defer mu.Unlock()
			failures[index] = err
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.Successful)
	assert.Equal(t, 1, result.Summary.Failed)

	require.Len(t, failures, 1)
	require.Contains(t, failures, 1)
	require.ErrorIs(t, failures[1], assert.AnError)
}

func TestGenerateBatch_InvalidInvoiceRejected(t *testing.T) {
	engine := craft.NewEngine()

	invoices := craft.TestBatch(3)
	invoices[1].Items[0].Quantity = decimal.Zero
	invoices[1].Items[0].UnitPrice = decimal.NewFromInt(-5)

	var mu sync.Mutex
	failures := map[int]error{}

	result, err := engine.GenerateBatch(context.Background(), invoices, craft.BatchOptions{
		OnError: func(index int, err error) {
			mu.Lock()
			defer mu.Unlock()
			failures[index] = err
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Summary.Successful)
	assert.Equal(t, 1, result.Summary.Failed)

	// The bad invoice never reaches the renderer and produces no artifact.
	for _, item := range result.Successes {
		assert.NotEqual(t, 1, item.Index)
	}

	require.Len(t, failures, 1)
	require.Contains(t, failures, 1)

	var verr *model.ValidationError
	require.ErrorAs(t, failures[1], &verr)
	assert.EqualError(t, failures[1], "Item 1: Quantity must be greater than 0")
}

func TestGenerateBatch_CancelledContext(t *testing.T) {
	engine := craft.NewEngine()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.GenerateBatch(ctx, craft.TestBatch(3), craft.BatchOptions{})
	require.Error(t, err)

	var gerr *model.GenerateError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "batch", gerr.Op)
}

func TestGenerateBatch_Empty(t *testing.T) {
	engine := craft.NewEngine()

	result, err := engine.GenerateBatch(context.Background(), nil, craft.BatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Summary.Successful)
	assert.Equal(t, 0, result.Summary.Failed)
	assert.Empty(t, result.Successes)
}

func TestTestBatch(t *testing.T) {
	invoices := craft.TestBatch(3)

	require.Len(t, invoices, 3)
	assert.Equal(t, "INV-BATCH-001", invoices[0].InvoiceNumber)
	assert.Equal(t, "INV-BATCH-003", invoices[2].InvoiceNumber)
	assert.True(t, invoices[1].Items[0].Quantity.Equal(decimal.NewFromInt(2)))
}
