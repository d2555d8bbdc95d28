package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/joseph-ayodele/onboarding-agent/internal/cli"
	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/extract"
	"github.com/joseph-ayodele/onboarding-agent/internal/llm/providers"
	"github.com/joseph-ayodele/onboarding-agent/internal/pipeline/resumeparse"
)

func main() {
	var (
		file    = pflag.StringP("file", "f", "", "path to the resume (PDF or DOCX)")
		outDir  = pflag.StringP("out", "o", "", "output directory (default OUTPUT_DIR or .)")
		xlsx    = pflag.Bool("xlsx", false, "also write an .xlsx copy of the result")
		envFile = pflag.String("env", ".env", "dotenv file to load before reading the environment")
	)
	pflag.Parse()

	if err := common.LoadEnvFile(*envFile); err != nil {
		cli.PrintError("Error: load %s: %v\n", *envFile, err)
		os.Exit(2)
	}
	cfg, err := common.LoadConfig()
	if err != nil {
		cli.PrintError("Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		cli.PrintError("Error: %v\n", err)
		os.Exit(2)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *xlsx {
		cfg.Output.XLSX = true
	}

	logger := common.NewLogger(cfg.Log, os.Stderr)

	fmt.Println("=== Resume Parser Agent ===")
	path := *file
	if path == "" && pflag.NArg() > 0 {
		path = pflag.Arg(0)
	}
	path, err = cli.NewPrompter(os.Stdin, os.Stdout).ValueOr(path, "Enter the path to the resume (PDF or DOCX): ")
	if err != nil {
		cli.PrintError("Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := providers.New(ctx, cfg.LLM, logger)
	if err != nil {
		cli.PrintError("Error: %v\n", err)
		os.Exit(2)
	}

	p := resumeparse.NewPipeline(logger, resumeparse.Config{
		OutputDir:   cfg.Output.Dir,
		Temperature: cfg.LLM.ResumeTemperature,
		XLSX:        cfg.Output.XLSX,
		SchemaCheck: cfg.Output.SchemaCheck,
	}, extract.NewExtractor(logger), model)

	out, err := p.Run(ctx, path)
	if err != nil {
		var se *common.StructuredExtractionError
		if errors.As(err, &se) {
			cli.PrintError("Raw model output was:\n%s\n", se.Raw)
		}
		cli.PrintError("\nError: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nResume successfully parsed and saved to: %s\n", out)
}
