package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/docoutline/internal/heading"
	"github.com/dgallion1/docoutline/internal/parser"
)

// Worker processes a single document job.
type Worker struct {
	log        *slog.Logger
	opts       heading.Options
	stats      *AnalysisStats
	docTimeout time.Duration
	outputDir  string
}

func NewWorker(log *slog.Logger, opts heading.Options, stats *AnalysisStats, docTimeout time.Duration, outputDir string) *Worker {
	return &Worker{
		log:        log,
		opts:       opts,
		stats:      stats,
		docTimeout: docTimeout,
		outputDir:  outputDir,
	}
}

// Process runs the full extraction pipeline for a job. One degenerate
// document never fails a batch: every job resolves on its own.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	docCtx, cancel := context.WithTimeout(ctx, w.docTimeout)
	defer cancel()

	// Phase 1: Parse and analyze.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, w.opts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	started := time.Now()
	result, err := p.Parse(docCtx, bytes.NewReader(job.FileData()), job.Filename)
	w.stats.Record(time.Since(started).Milliseconds())
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.SetResult(result)
	log.Info("outline extracted",
		"headings", len(result.Outline),
		"title_found", result.Title != "",
		"duration_ms", time.Since(started).Milliseconds(),
	)

	// Phase 2: Optional output sink.
	if w.outputDir != "" {
		job.SetStatus(StatusWriting, "writing")
		if err := w.writeResult(job); err != nil {
			log.Error("output write failed", "error", err)
			job.AddError(fmt.Sprintf("write: %s", err))
			job.SetStatus(StatusFailed, "writing")
			return
		}
	}

	job.SetStatus(StatusCompleted, "done")
}

// writeResult writes the outline as <doc_id>.json into the output directory.
func (w *Worker) writeResult(job *Job) error {
	data, err := json.MarshalIndent(job.Result(), "", "    ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(w.outputDir, job.DocID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
