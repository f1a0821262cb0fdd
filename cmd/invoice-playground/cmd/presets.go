package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/decimal"
	"github.com/rezonia/invoice-playground/internal/invoice"
	"github.com/rezonia/invoice-playground/internal/preset"
)

var presetFile string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List and run the demonstration presets",
	Long: `Work with the playground's canned invoices.

The built-in presets cover the basic case, a fully populated invoice,
Spanish labels, a long item list, and layout edge cases. User preset
packs can be loaded from YAML files with --file.

Examples:
  invoice-playground presets
  invoice-playground presets run detailed
  invoice-playground presets run-all -o downloads
  invoice-playground presets run custom --file mypresets.yaml`,
	RunE: runPresetsList,
}

var presetsRunCmd = &cobra.Command{
	Use:   "run [key]",
	Short: "Generate a single preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsRun,
}

var presetsRunAllCmd = &cobra.Command{
	Use:   "run-all",
	Short: "Generate every preset, one at a time",
	RunE:  runPresetsRunAll,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsRunCmd)
	presetsCmd.AddCommand(presetsRunAllCmd)

	presetsCmd.PersistentFlags().StringVar(&presetFile, "file", "", "Additional preset pack (YAML)")
}

// allPresets returns the built-in presets plus any user pack
func allPresets() ([]preset.Preset, error) {
	presets := preset.All()
	if presetFile != "" {
		loaded, err := preset.LoadFile(presetFile)
		if err != nil {
			return nil, err
		}
		presets = append(presets, loaded...)
	}
	return presets, nil
}

func findPreset(key string) (preset.Preset, error) {
	presets, err := allPresets()
	if err != nil {
		return preset.Preset{}, err
	}
	for _, p := range presets {
		if p.Key == key {
			return p, nil
		}
	}
	return preset.Preset{}, fmt.Errorf("unknown preset %q", key)
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	presets, err := allPresets()
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(presets)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tITEMS\tTOTAL")
	for _, p := range presets {
		totals := invoice.CalculateTotals(&p.Invoice)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s %s\n",
			p.Key, p.Name, len(p.Invoice.Items), decimal.Display(totals.Total), p.Invoice.Currency)
	}
	return w.Flush()
}

func runPresetsRun(cmd *cobra.Command, args []string) error {
	p, err := findPreset(args[0])
	if err != nil {
		return err
	}

	opts := mergeOptions(p.Options)

	runner := newRunner()
	result, err := runner.Run(context.Background(), &p.Invoice, &opts)
	if err != nil {
		return err
	}

	printVerbose("Saved %s\n", result.Path)
	return nil
}

func runPresetsRunAll(cmd *cobra.Command, args []string) error {
	presets, err := allPresets()
	if err != nil {
		return err
	}

	runner := newRunner()
	succeeded, failed, err := runner.RunAll(context.Background(), presets)
	if err != nil {
		return err
	}

	fmt.Printf("Presets complete: %d successful, %d failed\n", succeeded, failed)
	if failed > 0 {
		return fmt.Errorf("%d presets failed", failed)
	}
	return nil
}
