package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Similarity label constants.
const (
	ExcellentValue = "Excellent" // Text already reads in the target style
	GoodValue      = "Good"      // Close to target, minor edits needed
	FairValue      = "Fair"      // Noticeable deviation
	PoorValue      = "Poor"      // Far from the target style
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold)
	GoodColor      = color.New(color.FgCyan)
	FairColor      = color.New(color.FgYellow)
	PoorColor      = color.New(color.FgRed, color.Bold)

	OkColor   = color.New(color.FgGreen)
	WarnColor = color.New(color.FgYellow)
)

// GetPlainLabel returns a plain text label for a similarity score in [0,1].
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(similarity float64) string {
	switch {
	case similarity >= 0.85:
		return ExcellentValue
	case similarity >= 0.65:
		return GoodValue
	case similarity >= 0.4:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored similarity label for console output.
func GetColorLabel(similarity float64) string {
	text := GetPlainLabel(similarity)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// Truncate shortens a string for table display, keeping the tail, which
// carries the file name in path-like values.
func Truncate(s string, maxLen int) string {
	if maxLen <= 3 || len([]rune(s)) <= maxLen {
		return s
	}
	runes := []rune(s)
	return "..." + string(runes[len(runes)-maxLen+3:])
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}
