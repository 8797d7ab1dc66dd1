package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/meenmo/bondcalc/curve"
	"github.com/meenmo/bondcalc/internal/apperr"
	"github.com/meenmo/bondcalc/internal/cli"
	"github.com/meenmo/bondcalc/internal/report"
	"github.com/meenmo/bondcalc/internal/request"
	"github.com/meenmo/bondcalc/logger"
)

type curveOutput struct {
	TaskID    string              `json:"task_id,omitempty"`
	Spot      []report.SpotRow    `json:"spot,omitempty"`
	Forwards  []report.ForwardRow `json:"forwards,omitempty"`
	Error     string              `json:"error,omitempty"`
	ErrorCode string              `json:"error_code,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	configPath := flag.String("config", "", "TOML config path (defaults if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: curveanalysis [-config <path>] -input <path>")
		fmt.Fprintln(os.Stderr, "Bootstrap spot rates from par yields and derive implied forward rates.")
		return
	}

	cfg, err := cli.Setup(*configPath)
	if err != nil {
		exitError(apperr.Wrap(apperr.ErrInvalidInput, err))
	}
	defer logger.Sync()
	log := logger.Get()

	path := strings.TrimSpace(*inputPath)
	if path == "" && cli.StdinIsTerminal() {
		fmt.Fprintln(os.Stderr, "Usage: curveanalysis [-config <path>] -input <path>")
		os.Exit(2)
	}

	raw, err := cli.ReadInput(path, os.Stdin)
	if err != nil {
		exitError(apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("read input: %w", err)))
	}

	inputs, isArray, err := cli.ParseInputs[request.CurveRequest](raw)
	if err != nil {
		exitError(apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("parse JSON: %w", err)))
	}

	rep := report.New(cfg.Output.Precision)
	hadError := false
	outputs := make([]curveOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in, rep)
		if err != nil {
			hadError = true
			ae := apperr.FromError(err)
			log.Warnw("curve task failed", "task_id", in.TaskID, "code", ae.Code, "error", ae.Message)
			outputs = append(outputs, curveOutput{TaskID: in.TaskID, Error: ae.Message, ErrorCode: ae.Code})
			continue
		}
		outputs = append(outputs, *out)
	}

	if err := cli.WriteOutputs(os.Stdout, outputs, isArray); err != nil {
		exitError(apperr.Wrap(apperr.ErrInternal, err))
	}
	if hadError {
		logger.Sync()
		os.Exit(1)
	}
}

func process(in request.CurveRequest, rep report.Reporter) (*curveOutput, error) {
	par, err := in.ToCurve()
	if err != nil {
		return nil, err
	}
	analysis, err := curve.Analyze(par)
	if err != nil {
		return nil, err
	}
	tables := rep.Curve(analysis)
	return &curveOutput{
		TaskID:   in.TaskID,
		Spot:     tables.Spot,
		Forwards: tables.Forwards,
	}, nil
}

func exitError(err *apperr.AppError) {
	fmt.Fprintln(os.Stderr, err.Error())
	_ = cli.WriteOutputs(os.Stdout, []curveOutput{{Error: err.Message, ErrorCode: err.Code}}, false)
	os.Exit(1)
}
