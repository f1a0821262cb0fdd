package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/craft"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export an invoice as pdf, html, json or csv",
	Long: `Export an invoice JSON file in one of the supported encodings.
The result lands in the output directory.

Examples:
  invoice-playground export invoice.json --export-format csv
  invoice-playground export invoice.json --export-format html -o downloads`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "export-format", "pdf", "Export format (pdf, html, json, csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := craft.ParseExportFormat(exportFormat)
	if err != nil {
		return err
	}

	doc, err := readDocumentFile(args[0])
	if err != nil {
		return err
	}
	opts := mergeOptions(doc.Options)

	runner := newRunner()
	result, err := runner.Export(context.Background(), &doc.Invoice, craft.ExportOptions{
		Format:        format,
		BrandColor:    opts.BrandColor,
		LayoutStyle:   opts.LayoutStyle,
		Labels:        opts.Labels,
		IncludeStyles: true,
	})
	if err != nil {
		return err
	}

	printVerbose("Saved %s\n", result.Path)
	return nil
}
