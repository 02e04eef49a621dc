package iocache

import (
	"errors"
	"fmt"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of recorded runs to a Parquet file.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no analysis data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)

	// Retrieve all recorded runs
	runs, err := store.RecentRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis runs: %w", err)
	}

	// Convert and write to Parquet
	parquetRuns := parquet.ConvertHistoryRuns(runs)
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteHistoryRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write analysis runs: %w", err)
	}
	fmt.Printf("Exported %d analysis runs to: %s\n", len(parquetRuns), runsFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
