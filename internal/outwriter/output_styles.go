package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/schema"
)

// PrintStyles outputs the configured style profile table, dispatching based
// on the output format configured.
func PrintStyles(cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, cfg.Profiles)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStylesCSV(w, cfg, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStylesTable(w, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeStylesCSV writes one row per style and metric.
func writeStylesCSV(w io.Writer, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"style", "metric", "target", "weight", "tolerance"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, style := range schema.AllStyles {
			profile, ok := cfg.Profiles[style]
			if !ok {
				continue
			}
			for _, key := range schema.AllMetricKeys {
				target, ok := profile.TargetMetrics[key]
				if !ok {
					continue
				}
				rec := []string{
					string(style),
					string(key),
					fmtFloat(target.Target),
					fmtFloat(target.Weight),
					fmtFloat(target.Tolerance),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeStylesTable renders one target table per style, preceded by its
// description.
func writeStylesTable(w io.Writer, cfg *contract.Config, fmtFloat func(float64) string) error {
	for _, style := range schema.AllStyles {
		profile, ok := cfg.Profiles[style]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", style, profile.Description); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Metric", "Target", "Weight", "Tolerance"})
		table.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, key := range schema.AllMetricKeys {
			target, ok := profile.TargetMetrics[key]
			if !ok {
				continue
			}
			data = append(data, []string{
				schema.MetricDisplayName(key),
				fmtFloat(target.Target),
				fmtFloat(target.Weight),
				fmtFloat(target.Tolerance),
			})
		}

		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
