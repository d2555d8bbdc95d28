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
	"github.com/joseph-ayodele/onboarding-agent/internal/llm/providers"
	"github.com/joseph-ayodele/onboarding-agent/internal/pipeline/taskplan"
)

func main() {
	var (
		resume  = pflag.StringP("resume", "r", "", "path to a parsed resume CSV (parsed_resume_*.csv)")
		start   = pflag.StringP("start", "s", "", "employee start date YYYY-MM-DD")
		outDir  = pflag.StringP("out", "o", "", "output directory (default OUTPUT_DIR or .)")
		xlsx    = pflag.Bool("xlsx", false, "also write an .xlsx copy of the plan")
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

	fmt.Println("=== Task Planner Agent ===")
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	resumePath, err := prompter.ValueOr(*resume, "Enter the path to the parsed resume CSV file: ")
	if err != nil {
		cli.PrintError("Error: %v\n", err)
		os.Exit(2)
	}
	startDate, err := prompter.ValueOr(*start, "Enter the employee's start date (YYYY-MM-DD): ")
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

	p := taskplan.NewPipeline(logger, taskplan.Config{
		OutputDir:   cfg.Output.Dir,
		Temperature: cfg.LLM.PlanTemperature,
		XLSX:        cfg.Output.XLSX,
		SchemaCheck: cfg.Output.SchemaCheck,
	}, model)

	out, err := p.Run(ctx, resumePath, startDate)
	if err != nil {
		var se *common.StructuredExtractionError
		if errors.As(err, &se) {
			cli.PrintError("Raw model output was:\n%s\n", se.Raw)
		}
		cli.PrintError("\nError: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nTask plan saved to: %s\n", out)
}
