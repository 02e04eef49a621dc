// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/texttuner/texttuner/schema"
)

// HistoryStore defines the interface for tracking analysis runs.
// This allows the persistence layer to be mocked for testing.
type HistoryStore interface {
	// RecordRun stores one completed analysis and returns its unique ID.
	RecordRun(result *schema.AnalysisResult) (int64, error)

	// RecentRuns returns up to limit runs, newest first. A limit of zero
	// or below returns all recorded runs.
	RecentRuns(limit int) ([]schema.HistoryRun, error)

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// Clear removes all recorded runs.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}
