// Package iocache persists analysis runs across invocations. It backs the
// history commands with sqlite by default and optionally mysql or postgres.
package iocache

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/texttuner/texttuner/schema"
)

// historyRunsTable is the table holding one row per recorded analysis.
const historyRunsTable = "texttuner_runs"

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// validateTableName ensures the name is a safe SQL identifier. It guards the
// fmt.Sprintf-built queries against injection through table names.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !tableNameRe.MatchString(name) {
		return fmt.Errorf("invalid table name: %s", name)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("%q", name)
	}
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history
// storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".texttuner_history.db"
	}
	return filepath.Join(homeDir, ".texttuner_history.db")
}
