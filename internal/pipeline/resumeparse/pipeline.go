package resumeparse

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
	"github.com/joseph-ayodele/onboarding-agent/internal/export"
	"github.com/joseph-ayodele/onboarding-agent/internal/extract"
	"github.com/joseph-ayodele/onboarding-agent/internal/flatten"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm"
)

// Config holds output and model settings for the resume stage.
type Config struct {
	OutputDir   string
	Temperature float32
	XLSX        bool // also write a .xlsx copy next to the CSV
	SchemaCheck bool // log (never fail) when the model JSON drifts from the expected shape
}

// Pipeline turns a resume document into a parsed candidate file.
type Pipeline struct {
	Logger        *slog.Logger
	Cfg           Config
	TextExtractor extract.TextExtractor
	Model         llm.Completer
	Now           func() time.Time
}

// NewPipeline fills in a default logger and output directory.
func NewPipeline(logger *slog.Logger, cfg Config, tx extract.TextExtractor, model llm.Completer) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &Pipeline{Logger: logger, Cfg: cfg, TextExtractor: tx, Model: model, Now: time.Now}
}

// Parse runs extraction, the model call and JSON recovery, returning the
// flattened record without writing anything.
func (p *Pipeline) Parse(ctx context.Context, path string) (entity.FlatRecord, error) {
	ctx, runID := common.EnsureRunID(ctx)
	log := p.Logger.With("run_id", runID)

	log.Info("resumeparse.extract_text", "path", path)
	res, err := p.TextExtractor.Extract(ctx, path)
	if err != nil {
		return entity.FlatRecord{}, fmt.Errorf("extract text: %w", err)
	}
	if res.Text == "" {
		log.Warn("resumeparse.empty_text", "path", path, "warnings", res.Warnings)
	}

	log.Info("resumeparse.model_call", "chars", len(res.Text))
	raw, err := p.Model.Complete(ctx, llm.ResumeRequest(res.Text, p.Cfg.Temperature))
	if err != nil {
		return entity.FlatRecord{}, fmt.Errorf("model call: %w", err)
	}
	log.Debug("resumeparse.raw_output", "content", raw)

	doc, span, err := llm.ExtractObject(raw)
	if err != nil {
		log.Error("llm.extract.span_failed", "error", err, "content", raw)
		return entity.FlatRecord{}, err
	}
	if p.Cfg.SchemaCheck {
		llm.SchemaCheck(log, "candidate", llm.CandidateJSONSchema(), span)
	}

	rec := entity.CandidateFromValue(doc)
	return flatten.Record(rec), nil
}

// Run parses the resume at path and writes parsed_resume_<ts>.csv, returning its path.
func (p *Pipeline) Run(ctx context.Context, path string) (string, error) {
	ctx, runID := common.EnsureRunID(ctx)
	start := time.Now()

	flat, err := p.Parse(ctx, path)
	if err != nil {
		p.Logger.Error("resumeparse.failed", "run_id", runID, "path", path, "error", err)
		return "", err
	}

	var siblings []string
	if p.Cfg.XLSX {
		siblings = append(siblings, ".xlsx")
	}
	out := export.UniquePath(p.Cfg.OutputDir, p.Now(), export.ResumeFileName, siblings...)
	if err := export.WriteCandidate(out, flat); err != nil {
		return "", common.WrapError(err, "save parsed resume")
	}
	if p.Cfg.XLSX {
		xlsxPath := export.SiblingPath(out, ".xlsx")
		if err := export.WriteXLSX(xlsxPath, "Candidate", flat.Header(), [][]string{flat.Row()}); err != nil {
			// no partial success: drop the CSV we just wrote
			err = errors.Join(err, removeIfExists(out))
			return "", common.WrapError(err, "save parsed resume workbook")
		}
	}

	p.Logger.Info("resumeparse.ok",
		"run_id", runID,
		"output", out,
		"name", flat.Name,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
