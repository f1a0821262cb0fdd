package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/craft"
)

var (
	previewTheme string
	previewOut   string
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render an HTML preview",
	Long: `Render an invoice JSON file as a standalone HTML document.

The markup goes to stdout unless --out names a file.

Examples:
  invoice-playground preview invoice.json > invoice.html
  invoice-playground preview invoice.json --theme dark --out preview.html`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewTheme, "theme", "light", "Preview theme (light, dark)")
	previewCmd.Flags().StringVar(&previewOut, "out", "", "Write the markup to this file instead of stdout")
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := readDocumentFile(args[0])
	if err != nil {
		return err
	}

	opts := mergeOptions(doc.Options)

	html, err := newRunner().Preview(&doc.Invoice, craft.PreviewOptions{
		Theme:         previewTheme,
		Responsive:    true,
		IncludeStyles: true,
		BrandColor:    opts.BrandColor,
		Labels:        opts.Labels,
	})
	if err != nil {
		return err
	}

	if previewOut == "" {
		fmt.Print(html)
		return nil
	}
	if err := os.WriteFile(previewOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", previewOut, err)
	}
	printVerbose("Saved %s\n", previewOut)
	return nil
}
