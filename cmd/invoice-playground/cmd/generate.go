package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/model"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate an invoice PDF",
	Long: `Generate a PDF from an invoice JSON file.

The file may hold a bare invoice object or a complete configuration
{"invoice": {...}, "options": {...}}. The invoice is validated first;
the first violated rule aborts generation. The PDF lands in the output
directory.

Examples:
  invoice-playground generate invoice.json
  invoice-playground generate invoice.json --template creative --brand-color '#059669'
  invoice-playground generate invoice.json --plugins -o downloads`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	doc, err := readDocumentFile(args[0])
	if err != nil {
		return err
	}

	opts := mergeOptions(doc.Options)

	runner := newRunner()
	result, err := runner.Run(context.Background(), &doc.Invoice, &opts)
	if err != nil {
		return err
	}

	printVerbose("Saved %s\n", result.Path)
	return nil
}

// readDocumentFile loads an invoice or complete configuration JSON
// file
func readDocumentFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := model.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// mergeOptions overlays the global flag defaults onto file-supplied
// render options; file values win
func mergeOptions(fromFile model.RenderOptions) model.RenderOptions {
	merged := fromFile
	defaults := defaultOptions()
	if merged.LayoutStyle == "" {
		merged.LayoutStyle = defaults.LayoutStyle
	}
	if merged.BrandColor == "" {
		merged.BrandColor = defaults.BrandColor
	}
	return merged
}
