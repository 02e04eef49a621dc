package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/texttuner/texttuner/internal/contract"
	"github.com/texttuner/texttuner/internal/outwriter"
	"github.com/texttuner/texttuner/internal/textio"
	"github.com/texttuner/texttuner/schema"
)

// ExecutorFunc defines the function signature for executing the different
// analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error

// ExecuteAnalyze runs a single-text analysis and prints the report.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()

	result, err := GetAnalysisResult(ctx, cfg)
	if err != nil {
		return err
	}

	recordRun(store, result)
	return outwriter.PrintAnalysisResult(result, cfg, time.Since(start))
}

// ExecuteAdapt rewrites the input toward the target style and prints the
// original, the adapted text and the analysis of the original.
func ExecuteAdapt(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()

	result, err := GetAdaptationResult(ctx, cfg)
	if err != nil {
		return err
	}

	recordRun(store, result.Analysis)
	return outwriter.PrintAdaptationResult(result, cfg, time.Since(start))
}

// ExecuteBatch analyzes every .txt file under cfg.InputPath in parallel and
// prints the per-file results ranked by similarity.
func ExecuteBatch(ctx context.Context, cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()

	if cfg.InputPath == "" {
		return errors.New("batch mode requires a directory argument")
	}
	files, err := textio.FindTextFiles(cfg.InputPath)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt files found in %s", cfg.InputPath)
	}

	analyzer, cleanup, err := NewAnalyzerFromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	entries := analyzeFiles(ctx, cfg, analyzer, files)
	for _, entry := range entries {
		if entry.Result != nil {
			recordRun(store, entry.Result)
		}
	}

	ranked := rankBatchEntries(entries, cfg.ResultLimit)
	return outwriter.PrintBatchResults(ranked, cfg, time.Since(start))
}

// ExecuteStyles prints the configured style profile table.
func ExecuteStyles(_ context.Context, cfg *contract.Config, _ contract.HistoryStore) error {
	return outwriter.PrintStyles(cfg)
}

// analyzeFiles processes all files in parallel using a worker pool.
func analyzeFiles(ctx context.Context, cfg *contract.Config, analyzer *Analyzer, files []string) []schema.BatchEntry {
	fileCh := make(chan string, len(files))
	entryCh := make(chan schema.BatchEntry, len(files))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for f := range fileCh {
				select {
				case <-ctx.Done():
					entryCh <- schema.BatchEntry{Name: filepath.Base(f), Err: ctx.Err().Error()}
					continue
				default:
				}
				entryCh <- analyzeOneFile(cfg, analyzer, f)
			}
		})
	}

	for _, f := range files {
		fileCh <- f
	}
	close(fileCh)

	wg.Wait()
	close(entryCh)

	entries := make([]schema.BatchEntry, 0, len(files))
	for e := range entryCh {
		entries = append(entries, e)
	}
	return entries
}

// analyzeOneFile reads and analyzes a single batch file. Failures become
// error entries instead of aborting the whole batch.
func analyzeOneFile(cfg *contract.Config, analyzer *Analyzer, path string) schema.BatchEntry {
	name := filepath.Base(path)

	text, err := textio.ReadTextFile(path, cfg.MaxFileSizeMB)
	if err != nil {
		return schema.BatchEntry{Name: name, Err: err.Error()}
	}

	result, err := buildAnalysisResult(analyzer, cfg, text, path)
	if err != nil {
		return schema.BatchEntry{Name: name, Err: err.Error()}
	}
	return schema.BatchEntry{Name: name, Result: result}
}

// rankBatchEntries sorts successful entries by similarity, best first, with
// failed entries at the end, and truncates to the result limit.
func rankBatchEntries(entries []schema.BatchEntry, limit int) []schema.BatchEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if (a.Result == nil) != (b.Result == nil) {
			return a.Result != nil
		}
		if a.Result == nil {
			return a.Name < b.Name
		}
		if a.Result.Similarity != b.Result.Similarity {
			return a.Result.Similarity > b.Result.Similarity
		}
		return a.Name < b.Name
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// buildAnalysisResult runs the full pipeline for one text: metrics,
// deviation scoring, similarity and recommendations.
func buildAnalysisResult(analyzer *Analyzer, cfg *contract.Config, text, sourcePath string) (*schema.AnalysisResult, error) {
	profile, err := cfg.Profile(string(cfg.TargetStyle))
	if err != nil {
		return nil, err
	}

	metrics, err := analyzer.Analyze(text)
	if err != nil {
		if sourcePath != "" {
			return nil, fmt.Errorf("%s: %w", sourcePath, err)
		}
		return nil, err
	}

	deviations, similarity := ScoreDeviations(metrics, profile)

	result := &schema.AnalysisResult{
		Text:            text,
		SourcePath:      sourcePath,
		TargetStyle:     profile.Name,
		Metrics:         metrics,
		Deviations:      deviations,
		Similarity:      similarity,
		Recommendations: Recommend(metrics, profile),
		AnalyzedAt:      time.Now(),
	}
	if cfg.Detail {
		result.Statistics = analyzer.Statistics(text)
		if sourcePath != "" {
			// Best-effort: an undetectable encoding just leaves the field empty.
			if enc, err := textio.DetectEncoding(sourcePath); err == nil {
				result.Statistics.Encoding = enc
			}
		}
	}
	return result, nil
}

// resolveInputText picks between inline --text and a file argument.
func resolveInputText(cfg *contract.Config) (text, sourcePath string, err error) {
	if cfg.Text != "" {
		return cfg.Text, "", nil
	}
	if cfg.InputPath != "" {
		text, err := textio.ReadTextFile(cfg.InputPath, cfg.MaxFileSizeMB)
		if err != nil {
			return "", "", err
		}
		return text, cfg.InputPath, nil
	}
	return "", "", errors.New("no input: pass a file argument or --text")
}

// recordRun persists one analysis to the history store. Persistence is
// best-effort: failures are logged and never abort the command.
func recordRun(store contract.HistoryStore, result *schema.AnalysisResult) {
	if store == nil {
		return
	}
	if _, err := store.RecordRun(result); err != nil {
		contract.LogWarn("Failed to record analysis run", err)
	}
}
