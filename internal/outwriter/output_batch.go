package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/schema"
)

// PrintBatchResults outputs ranked batch entries, dispatching based on the
// output format configured.
func PrintBatchResults(entries []schema.BatchEntry, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchJSON(w, entries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchCSV(w, entries, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(w, entries, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeBatchJSON writes batch entries with rank and label attached.
func writeBatchJSON(w io.Writer, entries []schema.BatchEntry) error {
	type jsonBatchEntry struct {
		Rank  int    `json:"rank"`
		Label string `json:"label,omitempty"`
		schema.BatchEntry
	}

	output := make([]jsonBatchEntry, len(entries))
	for i, e := range entries {
		output[i] = jsonBatchEntry{Rank: i + 1, BatchEntry: e}
		if e.Result != nil {
			output[i].Label = contract.GetPlainLabel(e.Result.Similarity)
		}
	}
	return writeJSON(w, output)
}

// writeBatchCSV writes one row per analyzed file.
func writeBatchCSV(w io.Writer, entries []schema.BatchEntry, fmtFloat func(float64) string) error {
	header := []string{
		"rank", "file", "similarity", "label",
		"lexical_diversity", "formality_score", "readability_index",
		"sentence_length_avg", "word_length_avg", "error",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, e := range entries {
			rec := []string{strconv.Itoa(i + 1), e.Name}
			if e.Result != nil {
				m := e.Result.Metrics
				rec = append(rec,
					fmtFloat(e.Result.Similarity),
					contract.GetPlainLabel(e.Result.Similarity),
					fmtFloat(m.LexicalDiversity),
					fmtFloat(m.FormalityScore),
					fmtFloat(m.ReadabilityIndex),
					fmtFloat(m.SentenceLengthAvg),
					fmtFloat(m.WordLengthAvg),
					"",
				)
			} else {
				rec = append(rec, "", "", "", "", "", "", "", e.Err)
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeBatchTable generates and writes the human-readable ranking table.
func writeBatchTable(w io.Writer, entries []schema.BatchEntry, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	headers := []string{"Rank", "File", "Similarity", "Label"}
	if cfg.Detail {
		headers = append(headers, "LexDiv", "Formality", "Readability", "SentLen", "WordLen")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var failed int
	var data [][]string
	for i, e := range entries {
		row := []string{strconv.Itoa(i + 1), contract.Truncate(e.Name, nameWidth)}
		if e.Result != nil {
			row = append(row,
				fmtFloat(e.Result.Similarity),
				contract.GetColorLabel(e.Result.Similarity),
			)
			if cfg.Detail {
				m := e.Result.Metrics
				row = append(row,
					fmtFloat(m.LexicalDiversity),
					fmtFloat(m.FormalityScore),
					fmtFloat(m.ReadabilityIndex),
					fmtFloat(m.SentenceLengthAvg),
					fmtFloat(m.WordLengthAvg),
				)
			}
		} else {
			failed++
			row = append(row, "-", contract.WarnColor.Sprint("error"))
			if cfg.Detail {
				row = append(row, "-", "-", "-", "-", "-")
			}
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, e := range entries {
		if e.Result == nil {
			if _, err := fmt.Fprintf(w, "Failed %s: %s\n", e.Name, e.Err); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "Showing %d files (%d failed)\n", len(entries), failed); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Batch completed in %v with %d workers\n", duration, cfg.Workers)
	return err
}
