package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/schema"
)

// PrintAdaptationResult outputs one adaptation report, dispatching based on
// the output format configured.
func PrintAdaptationResult(result *schema.AdaptationResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAdaptationCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAdaptationReport(w, result, cfg, fmtFloat, duration)
		}, "Wrote report")
	}
}

// writeAdaptationCSV writes a single-row summary of the rewrite.
func writeAdaptationCSV(w io.Writer, result *schema.AdaptationResult, fmtFloat func(float64) string) error {
	header := []string{"style", "similarity", "rules_applied", "original", "adapted"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		return csvWriter.Write([]string{
			string(result.Analysis.TargetStyle),
			fmtFloat(result.Analysis.Similarity),
			strings.Join(result.AppliedRules, "|"),
			result.Original,
			result.Adapted,
		})
	})
}

// writeAdaptationReport generates the human-readable before/after report.
func writeAdaptationReport(w io.Writer, result *schema.AdaptationResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Adaptation toward %q\n\n", result.Analysis.TargetStyle); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Original:\n%s\n\nAdapted:\n%s\n\n", result.Original, result.Adapted); err != nil {
		return err
	}

	if len(result.AppliedRules) > 0 {
		if _, err := fmt.Fprintln(w, "Applied rules:"); err != nil {
			return err
		}
		for i, rule := range result.AppliedRules {
			if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, rule); err != nil {
				return err
			}
		}
	} else {
		if _, err := fmt.Fprintln(w, "No rules applied; the text already fits the style gates."); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nOriginal similarity: %s (%s)\n",
		fmtFloat(result.Analysis.Similarity), contract.GetColorLabel(result.Analysis.Similarity)); err != nil {
		return err
	}

	if cfg.Detail {
		if err := writeStatisticsBlock(w, result.Analysis, fmtFloat); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nAdaptation completed in %v\n", duration)
	return err
}
