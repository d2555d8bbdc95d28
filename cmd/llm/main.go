package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/extract"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm/providers"
	"github.com/joseph-ayodele/onboarding-agent/internal/pipeline/resumeparse"
)

// runllm parses the same resume several times without writing output and
// reports how often the model answered with usable JSON.
func main() {
	times := pflag.IntP("times", "n", 10, "number of parse attempts")
	pause := pflag.Duration("pause", 750*time.Millisecond, "sleep between attempts")
	pflag.Parse()

	_ = common.LoadEnvFile()
	cfg, err := common.LoadConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(2)
	}
	logger := common.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	if pflag.NArg() < 1 {
		logger.Error("usage: runllm [--times N] <resume.pdf|resume.docx>")
		os.Exit(2)
	}
	path := pflag.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	model, err := providers.New(ctx, cfg.LLM, logger)
	if err != nil {
		logger.Error("model", "error", err)
		os.Exit(2)
	}
	p := resumeparse.NewPipeline(logger, resumeparse.Config{
		Temperature: cfg.LLM.ResumeTemperature,
		SchemaCheck: cfg.Output.SchemaCheck,
	}, extract.NewExtractor(logger), model)

	base := filepath.Base(path)
	var ok, noJSON, other int
	for i := 1; i <= *times; i++ {
		runCtx, cancelRun := context.WithTimeout(ctx, 2*time.Minute)
		runCtx = common.WithRunID(runCtx, uuid.New().String())
		start := time.Now()
		logger.Info("probe.run.start", "iter", i, "basename", base)

		rec, err := p.Parse(runCtx, path)
		cancelRun()

		switch {
		case err == nil:
			ok++
			logger.Info("probe.run.ok", "iter", i, "name", rec.Name, "elapsed_ms", time.Since(start).Milliseconds())
		case errors.Is(err, common.ErrStructuredExtraction):
			noJSON++
			logger.Warn("probe.run.no_json", "iter", i, "err", err)
		default:
			other++
			logger.Error("probe.run.error", "iter", i, "err", err)
			if errors.Is(err, common.ErrUnsupportedFormat) || errors.Is(err, os.ErrNotExist) {
				os.Exit(1)
			}
		}

		if i < *times {
			time.Sleep(*pause)
		}
	}

	logger.Info("done", "basename", base, "times", *times, "ok", ok, "no_json", noJSON, "errors", other)
	if ok == 0 {
		os.Exit(1)
	}
}
