package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/schema"
)

// historyTimeFormat keeps recorded timestamps compact in tables and CSV.
const historyTimeFormat = "2006-01-02 15:04:05"

// PrintHistoryRuns outputs recorded analysis runs, dispatching based on the
// output format configured.
func PrintHistoryRuns(runs []schema.HistoryRun, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, runs, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, runs, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeHistoryCSV writes one row per recorded run.
func writeHistoryCSV(w io.Writer, runs []schema.HistoryRun, fmtFloat func(float64) string) error {
	header := []string{
		"run_id", "analyzed_at", "source", "style", "similarity",
		"lexical_diversity", "formality_score", "readability_index",
		"sentence_length_avg", "word_length_avg",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range runs {
			rec := []string{
				strconv.FormatInt(r.RunID, 10),
				r.AnalyzedAt.Format(historyTimeFormat),
				r.SourcePath,
				string(r.Style),
				fmtFloat(r.Similarity),
				fmtFloat(r.LexicalDiversity),
				fmtFloat(r.FormalityScore),
				fmtFloat(r.ReadabilityIndex),
				fmtFloat(r.SentenceLengthAvg),
				fmtFloat(r.WordLengthAvg),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeHistoryTable renders the recorded runs, newest first.
func writeHistoryTable(w io.Writer, runs []schema.HistoryRun, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Analyzed", "Source", "Style", "Similarity", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, r := range runs {
		source := r.SourcePath
		if source == "" {
			source = "inline"
		}
		data = append(data, []string{
			strconv.FormatInt(r.RunID, 10),
			r.AnalyzedAt.Format(historyTimeFormat),
			contract.Truncate(source, nameWidth),
			string(r.Style),
			fmtFloat(r.Similarity),
			contract.GetColorLabel(r.Similarity),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d runs\n", len(runs))
	return err
}

// PrintHistoryStatus outputs the history store summary.
func PrintHistoryStatus(status schema.HistoryStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Backend: %s\n", status.Backend); err != nil {
			return err
		}
		if status.Location != "" {
			if _, err := fmt.Fprintf(w, "Location: %s\n", status.Location); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "Recorded runs: %d\n", status.TotalRuns)
		return err
	}, "Wrote status")
}
