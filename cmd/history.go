package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/internal/iocache"
	"github.com/texttuner/texttuner/internal/outwriter"
	"github.com/texttuner/texttuner/schema"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need store access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	connStr := viper.GetString("history-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	store, err := iocache.NewHistoryStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}
	historyStore = store

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	cfg.Precision = viper.GetInt("precision")
	if cfg.Precision <= 0 {
		cfg.Precision = contract.DefaultPrecision
	}
	cfg.ResultLimit = viper.GetInt("limit")
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = contract.DefaultResultLimit
	}

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This specialized setup does NOT open the store or create tables, allowing
// migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	connStr := viper.GetString("history-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = iocache.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on analysis run tracking.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by analysis commands. This avoids input and
// profile processing for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded analysis runs and exports",
	Long: `Manage the history of recorded analysis runs.

When enabled, texttuner records every analysis run, storing:
- Run metadata (timestamp, source file, target style)
- The similarity score against the chosen profile
- All five style metric values

This enables tracking how a document converges on a style over successive
edits, and data export for analytics tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recent analysis runs
  status  - Show run tracking statistics
  export  - Export runs to Parquet for analytics
  clear   - Remove all recorded runs
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  texttuner history status

  # Export for analysis in pandas/DuckDB
  texttuner history export --output-file texttuner-data`,
}

// historyListCmd shows recent analysis runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent analysis runs, newest first",
	Long: `List recorded analysis runs with their style, similarity and label.

Examples:
  # Show the most recent runs
  texttuner history list

  # Show the last 5 runs as JSON
  texttuner history list --limit 5 --output json`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer closeHistoryStore()
		runs, err := historyStore.RecentRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Failed to list analysis runs", err)
		}
		if err := outwriter.PrintHistoryRuns(runs, cfg); err != nil {
			contract.LogFatal("Failed to print analysis runs", err)
		}
	},
}

// historyStatusCmd shows run tracking status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show the backend type, storage location and number of recorded runs.

Use this to:
- Verify run tracking is enabled and working
- Check database connection health
- Monitor data accumulation over time

Examples:
  # Check run tracking status
  texttuner history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer closeHistoryStore()
		status, err := historyStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		if err := outwriter.PrintHistoryStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to print history status", err)
		}
	},
}

// historyClearCmd clears the recorded runs.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded analysis runs",
	Long: `Delete every recorded analysis run from the history store.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  texttuner history export --output-file backup
  texttuner history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer closeHistoryStore()
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear history data", err)
		}
		fmt.Println("History data cleared successfully.")
	},
}

// historyExportCmd exports recorded runs to a Parquet file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all recorded analysis runs to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all recorded runs
  texttuner history export --output-file texttuner-data

  # Use with DuckDB for analysis
  texttuner history export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer closeHistoryStore()
		if err := iocache.ExecuteHistoryExport(historyStore, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history data", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  texttuner history migrate

  # Migrate to specific version
  texttuner history migrate --target-version 1

  # Rollback to previous version
  texttuner history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
