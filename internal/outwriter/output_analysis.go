package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/schema"
)

// PrintAnalysisResult outputs one analysis report, dispatching based on the
// output format configured.
func PrintAnalysisResult(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisReport(w, result, cfg, fmtFloat, duration)
		}, "Wrote report")
	}
}

// writeAnalysisCSV writes one deviation row per metric plus a closing
// similarity row, so a report stays a single flat table.
func writeAnalysisCSV(w io.Writer, result *schema.AnalysisResult, fmtFloat func(float64) string) error {
	header := []string{
		"metric", "current", "target", "absolute_diff",
		"relative_diff", "within_tolerance", "tolerance", "weight",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, key := range schema.AllMetricKeys {
			d, ok := result.Deviations[key]
			if !ok {
				continue
			}
			rec := []string{
				string(key),
				fmtFloat(d.Current),
				fmtFloat(d.Target),
				fmtFloat(d.AbsoluteDiff),
				fmtFloat(d.RelativeDiff),
				boolMark(d.WithinTolerance),
				fmtFloat(d.Tolerance),
				fmtFloat(d.Weight),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return csvWriter.Write([]string{
			"similarity", fmtFloat(result.Similarity), "", "", "",
			contract.GetPlainLabel(result.Similarity), "", "",
		})
	})
}

// writeAnalysisReport generates the human-readable report.
func writeAnalysisReport(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	source := result.SourcePath
	if source == "" {
		source = "inline text"
	}
	if _, err := fmt.Fprintf(w, "Style analysis of %s against %q\n\n", source, result.TargetStyle); err != nil {
		return err
	}

	if err := writeMetricTable(w, result, cfg, fmtFloat); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Similarity: %s (%s)\n",
		fmtFloat(result.Similarity), contract.GetColorLabel(result.Similarity)); err != nil {
		return err
	}

	if len(result.Recommendations) > 0 {
		if _, err := fmt.Fprintln(w, "\nRecommendations:"); err != nil {
			return err
		}
		for i, rec := range result.Recommendations {
			if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, rec); err != nil {
				return err
			}
		}
	}

	if cfg.Detail {
		if err := writeStatisticsBlock(w, result, fmtFloat); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nAnalysis completed in %v\n", duration)
	return err
}

// writeMetricTable renders the per-metric deviation table.
func writeMetricTable(w io.Writer, result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Metric", "Current", "Target", "Tolerance", "Status"}
	if cfg.Explain {
		headers = append(headers, "AbsDiff", "RelDiff", "Weight")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, key := range schema.AllMetricKeys {
		d, ok := result.Deviations[key]
		if !ok {
			continue
		}
		status := contract.OkColor.Sprint("ok")
		if !d.WithinTolerance {
			status = contract.WarnColor.Sprint("off")
		}
		row := []string{
			schema.MetricDisplayName(key),
			fmtFloat(d.Current),
			fmtFloat(d.Target),
			fmtFloat(d.Tolerance),
			status,
		}
		if cfg.Explain {
			row = append(row,
				fmtFloat(d.AbsoluteDiff),
				fmtFloat(d.RelativeDiff),
				fmtFloat(d.Weight),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeStatisticsBlock renders the raw counting statistics plus the POS
// frequency breakdown, largest share first.
func writeStatisticsBlock(w io.Writer, result *schema.AnalysisResult, fmtFloat func(float64) string) error {
	stats := result.Statistics
	if stats == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\nText statistics:\n"); err != nil {
		return err
	}
	lines := []string{
		fmt.Sprintf("  Characters: %d", stats.TotalCharacters),
	}
	if stats.Encoding != "" {
		lines = append(lines, fmt.Sprintf("  Encoding: %s", stats.Encoding))
	}
	lines = append(lines,
		fmt.Sprintf("  Words: %d (unique: %d)", stats.TotalWords, stats.UniqueWords),
		fmt.Sprintf("  Sentences: %d", stats.TotalSentences),
		fmt.Sprintf("  Avg word length: %s", fmtFloat(stats.AvgWordLength)),
		fmt.Sprintf("  Avg sentence length: %s", fmtFloat(stats.AvgSentenceLen)),
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if len(result.Metrics.POSFrequency) > 0 {
		if _, err := fmt.Fprintln(w, "  Part-of-speech shares:"); err != nil {
			return err
		}
		type posShare struct {
			tag   schema.POSTag
			share float64
		}
		shares := make([]posShare, 0, len(result.Metrics.POSFrequency))
		for tag, share := range result.Metrics.POSFrequency {
			shares = append(shares, posShare{tag, share})
		}
		sort.Slice(shares, func(i, j int) bool {
			if shares[i].share != shares[j].share {
				return shares[i].share > shares[j].share
			}
			return shares[i].tag < shares[j].tag
		})
		for _, s := range shares {
			if _, err := fmt.Fprintf(w, "    %s: %s\n", s.tag, fmtFloat(s.share)); err != nil {
				return err
			}
		}
	}
	return nil
}
