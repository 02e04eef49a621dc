// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/texttuner/texttuner/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for file names and text
// previews in table output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (rank, similarity, label) plus
	// table borders, separators and padding.
	baseWidth := 35
	if cfg.Detail {
		baseWidth += 45 // per-metric value columns
	}

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}
