package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-playground/internal/invoice"
)

var strictValidation bool

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice files",
	Long: `Validate one or more invoice JSON files.

Two rule sets run on each file:
  - fail-fast: the submission gate, reporting only the first violation
  - report: the accumulated rule set with advisory warnings

Examples:
  invoice-playground validate invoice.json
  invoice-playground validate *.json --strict
  invoice-playground validate invoice.json -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&strictValidation, "strict", false, "Require the recommended fields too (addresses, email, due date, currency)")
}

// FileValidation holds the validation outcome for a single file
type FileValidation struct {
	File       string   `json:"file"`
	Valid      bool     `json:"valid"`
	FirstError string   `json:"first_error,omitempty"`
	Errors     []string `json:"errors,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	engine := newEngine()
	results := make([]*FileValidation, 0, len(args))
	allValid := true

	for _, file := range args {
		printVerbose("Validating: %s\n", file)
		result := &FileValidation{File: file, Valid: true}
		results = append(results, result)

		doc, err := readDocumentFile(file)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
			allValid = false
			continue
		}

		report := engine.ValidateInvoice(&doc.Invoice)
		if strictValidation {
			report = engine.ValidateInvoiceStrict(&doc.Invoice)
		}
		result.Errors = report.Errors
		result.Warnings = report.Warnings
		result.Valid = report.Valid

		if err := invoice.Validate(&doc.Invoice); err != nil {
			result.FirstError = err.Error()
			result.Valid = false
		}

		if !result.Valid {
			allValid = false
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.File)
			} else {
				fmt.Printf("✗ %s: INVALID\n", r.File)
				for _, e := range r.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}
			for _, w := range r.Warnings {
				fmt.Printf("  ⚠ %s\n", w)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}
	return nil
}
