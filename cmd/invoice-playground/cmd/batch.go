package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/model"
)

var (
	batchCount       int
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Generate a batch of invoices",
	Long: `Generate multiple invoices with a bounded worker pool.

With file arguments, each JSON file is one batch item. Without
arguments, --count sample invoices are generated instead. Individual
failures are reported and counted; they never abort the batch.

Examples:
  invoice-playground batch --count 5 --concurrency 2
  invoice-playground batch a.json b.json c.json -o downloads`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchCount, "count", 5, "Number of sample invoices when no files are given")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 2, "Parallel generation limit")
}

func runBatch(cmd *cobra.Command, args []string) error {
	var invoices []*model.Invoice
	if len(args) > 0 {
		for _, file := range args {
			doc, err := readDocumentFile(file)
			if err != nil {
				return err
			}
			invoices = append(invoices, &doc.Invoice)
		}
	} else {
		if batchCount < 1 {
			return fmt.Errorf("--count must be positive")
		}
		invoices = craft.TestBatch(batchCount)
	}

	printVerbose("Batch of %d invoices, concurrency %d\n", len(invoices), batchConcurrency)

	runner := newRunner()
	result, err := runner.RunBatch(context.Background(), invoices, batchConcurrency)
	if err != nil {
		return err
	}

	if result.Summary.Failed > 0 {
		return fmt.Errorf("batch finished with %d failed invoices", result.Summary.Failed)
	}
	return nil
}
