package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/craft"
	"github.com/rezonia/invoice-playground/internal/model"
	"github.com/rezonia/invoice-playground/internal/playground"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	outputDir    string
	waitBudget   time.Duration
	templateName string
	brandColor   string
	usePlugins   bool
)

var rootCmd = &cobra.Command{
	Use:   "invoice-playground",
	Short: "Interactive playground for the invoice generation engine",
	Long: `Invoice Playground drives the invoice generation engine from the
command line: render PDFs, preview HTML, export JSON/CSV, run preset
demonstrations, and batch-generate documents.

Supports:
  - PDF generation with built-in templates (default, modern, minimal, creative)
  - HTML preview and pdf/html/json/csv export
  - Fail-fast and accumulated validation
  - Preset demonstration invoices, including user YAML preset packs
  - Bounded-concurrency batch generation
  - A plugin hook pipeline with built-in plugins

Examples:
  # Generate a PDF from an invoice JSON file
  invoice-playground generate invoice.json

  # Generate the detailed preset with the modern template
  invoice-playground presets run detailed --template modern

  # Validate an invoice
  invoice-playground validate invoice.json --strict

  # Export as CSV
  invoice-playground export invoice.json --export-format csv`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format for reports (json, table)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory for generated files (env: PLAYGROUND_OUTPUT_DIR)")
	rootCmd.PersistentFlags().DurationVar(&waitBudget, "timeout", playground.DefaultWait, "How long to wait for generation before giving up")
	rootCmd.PersistentFlags().StringVar(&templateName, "template", "", "Default template (default, modern, minimal, creative) (env: PLAYGROUND_TEMPLATE)")
	rootCmd.PersistentFlags().StringVar(&brandColor, "brand-color", "", "Default brand color, e.g. #2563eb (env: PLAYGROUND_BRAND_COLOR)")
	rootCmd.PersistentFlags().BoolVar(&usePlugins, "plugins", false, "Run the built-in plugins before rendering")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if outputDir == "." {
		if dir := os.Getenv("PLAYGROUND_OUTPUT_DIR"); dir != "" {
			outputDir = dir
		}
	}
	if templateName == "" {
		templateName = os.Getenv("PLAYGROUND_TEMPLATE")
	}
	if brandColor == "" {
		brandColor = os.Getenv("PLAYGROUND_BRAND_COLOR")
	}
}

// defaultOptions assembles the render options implied by the global
// flags
func defaultOptions() model.RenderOptions {
	return model.RenderOptions{
		LayoutStyle: model.LayoutStyle(templateName),
		BrandColor:  brandColor,
	}
}

// newEngine builds the generation engine configured by the global
// flags
func newEngine() *craft.Engine {
	opts := []craft.Option{craft.WithDefaults(defaultOptions())}
	if usePlugins {
		opts = append(opts, craft.WithPlugins(craft.BuiltInPlugins()...))
	}
	return craft.NewEngine(opts...)
}

// newRunner builds a playground runner that reports status transitions
// on stdout
func newRunner() *playground.Runner {
	return playground.NewRunner(newEngine(),
		playground.WithOutputDir(outputDir),
		playground.WithWait(waitBudget),
		playground.WithObserver(printStatus),
	)
}

func printStatus(s model.Status) {
	switch s.Kind {
	case model.StatusIdle:
		return
	case model.StatusSuccess:
		fmt.Printf("✓ %s\n", s.Message)
	case model.StatusError:
		fmt.Printf("✗ %s\n", s.Message)
	default:
		fmt.Printf("  %s\n", s.Message)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
