package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/doclens/internal/analyzer"
	"github.com/dgallion1/doclens/internal/parser"
	"github.com/dgallion1/doclens/internal/resultstore"
)

// Worker processes a single analysis job.
type Worker struct {
	engine *analyzer.Engine
	rs     *resultstore.Client
	log    *slog.Logger
	stats  *AnalysisStats
}

func NewWorker(engine *analyzer.Engine, rs *resultstore.Client, log *slog.Logger, stats *AnalysisStats) *Worker {
	return &Worker{
		engine: engine,
		rs:     rs,
		log:    log,
		stats:  stats,
	}
}

// Process runs the full analysis pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	started := time.Now()

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	phaseStart := time.Now()
	text := job.rawText
	title := job.Title
	if text == "" && len(job.fileData) > 0 {
		p, err := parser.ForFile(job.Filename)
		if err != nil {
			log.Error("unsupported format", "error", err)
			job.AddError(err.Error())
			job.SetStatus(StatusFailed, "parsing")
			return
		}
		doc, err := p.Parse(bytes.NewReader(job.fileData), job.Filename)
		if err != nil {
			log.Error("parse failed", "error", err)
			job.AddError(fmt.Sprintf("parse: %s", err))
			job.SetStatus(StatusFailed, "parsing")
			return
		}
		text = doc.Text
		if title == "" {
			title = doc.Title
		}
	}
	if strings.TrimSpace(text) == "" {
		job.AddError("no analyzable content")
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if title != "" {
		job.Title = title
	}
	job.ContentHash = ContentHashHex([]byte(text))
	w.recordPhase("parsing", phaseStart)

	// Phase 2: Analyze
	job.SetStatus(StatusAnalyzing, "analyzing")
	phaseStart = time.Now()
	select {
	case <-ctx.Done():
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "analyzing")
		return
	default:
	}
	report := w.engine.Analyze(text, job.Options())
	w.recordPhase("analyzing", phaseStart)
	job.SetReport(report)
	job.SetProgress(len(report.Sections), len(report.Issues), len(report.Suggestions))
	log.Info("analysis complete",
		"sections", len(report.Sections),
		"issues", len(report.Issues),
		"score", report.Assessment.OverallScore)

	// Phase 3: Store
	if w.rs != nil {
		job.SetStatus(StatusStoring, "storing")
		phaseStart = time.Now()
		if err := w.publishReport(ctx, job, report, log); err != nil {
			log.Error("report publish failed", "error", err)
			job.AddError(fmt.Sprintf("store: %s", err))
			job.SetStatus(StatusFailed, "storing")
			return
		}
		w.recordPhase("storing", phaseStart)
	}

	if w.stats != nil {
		w.stats.Record(time.Since(started).Milliseconds())
	}
	job.SetStatus(StatusCompleted, "done")
}

func (w *Worker) recordPhase(phase string, started time.Time) {
	if w.stats != nil {
		w.stats.RecordPhase(phase, time.Since(started).Milliseconds())
	}
}

// publishReport writes the report to the result store, retrying transient failures.
func (w *Worker) publishReport(ctx context.Context, job *Job, report *analyzer.Report, log *slog.Logger) error {
	req := resultstore.ReportRequest{
		JobID:      job.ID,
		Filename:   job.Filename,
		Title:      job.Title,
		Report:     report,
		FinishedAt: time.Now().Format(time.RFC3339),
	}
	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		lastErr = w.rs.PutReport(ctx, job.ID, req)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		log.Warn("retryable store error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
