package taskplan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
	"github.com/joseph-ayodele/onboarding-agent/internal/export"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm"
	"github.com/joseph-ayodele/onboarding-agent/internal/planner"
)

// Config holds output and model settings for the task-planning stage.
type Config struct {
	OutputDir   string
	Temperature float32
	XLSX        bool
	SchemaCheck bool
}

// Pipeline turns a parsed resume and a start date into a dated task plan.
type Pipeline struct {
	Logger *slog.Logger
	Cfg    Config
	Model  llm.Completer
	Now    func() time.Time
}

// NewPipeline fills in a default logger and output directory.
func NewPipeline(logger *slog.Logger, cfg Config, model llm.Completer) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &Pipeline{Logger: logger, Cfg: cfg, Model: model, Now: time.Now}
}

// Plan reads the parsed resume, asks the model for tasks and resolves every
// due date. Nothing is written.
func (p *Pipeline) Plan(ctx context.Context, resumeCSV, startDate string) (entity.TaskPlan, error) {
	ctx, runID := common.EnsureRunID(ctx)
	log := p.Logger.With("run_id", runID)

	// fail on a bad start date before spending a model call
	if _, err := planner.ParseStartDate(startDate); err != nil {
		return nil, err
	}
	startDate = strings.TrimSpace(startDate)

	log.Info("taskplan.read_resume", "path", resumeCSV)
	flat, err := export.ReadCandidate(resumeCSV)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	summary := planner.Summarize(flat)
	log.Info("taskplan.detected_role", "job_title", summary.JobTitle)

	raw, err := p.Model.Complete(ctx, llm.TaskPlanRequest(summary, startDate, p.Cfg.Temperature))
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}
	log.Debug("taskplan.raw_output", "content", raw)

	doc, span, err := llm.ExtractArray(raw)
	if err != nil {
		log.Error("llm.extract.span_failed", "error", err, "content", raw)
		return nil, err
	}
	if p.Cfg.SchemaCheck {
		llm.SchemaCheck(log, "task_plan", llm.TaskPlanJSONSchema(), span)
	}

	plan, err := planner.BuildPlan(doc, startDate)
	if err != nil {
		var se *common.StructuredExtractionError
		if errors.As(err, &se) && se.Raw == "" {
			se.Raw = raw
		}
		log.Error("taskplan.build_failed", "error", err, "content", raw)
		return nil, err
	}
	return plan, nil
}

// Run generates the plan and writes task_plan_<ts>.txt, returning its path.
func (p *Pipeline) Run(ctx context.Context, resumeCSV, startDate string) (string, error) {
	ctx, runID := common.EnsureRunID(ctx)
	start := time.Now()

	plan, err := p.Plan(ctx, resumeCSV, startDate)
	if err != nil {
		p.Logger.Error("taskplan.failed", "run_id", runID, "path", resumeCSV, "error", err)
		return "", err
	}

	var siblings []string
	if p.Cfg.XLSX {
		siblings = append(siblings, ".xlsx")
	}
	out := export.UniquePath(p.Cfg.OutputDir, p.Now(), export.TaskPlanFileName, siblings...)
	if err := export.WriteTaskPlan(out, plan); err != nil {
		return "", common.WrapError(err, "save task plan")
	}
	if p.Cfg.XLSX {
		xlsxPath := export.SiblingPath(out, ".xlsx")
		if err := export.WriteXLSX(xlsxPath, "Tasks", entity.TaskHeader(), plan.Rows()); err != nil {
			if rmErr := os.Remove(out); rmErr != nil && !os.IsNotExist(rmErr) {
				err = errors.Join(err, rmErr)
			}
			return "", common.WrapError(err, "save task plan workbook")
		}
	}

	p.Logger.Info("taskplan.ok",
		"run_id", runID,
		"output", out,
		"tasks", len(plan),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
