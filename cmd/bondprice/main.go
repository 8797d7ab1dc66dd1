package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/meenmo/bondcalc/bond"
	"github.com/meenmo/bondcalc/internal/apperr"
	"github.com/meenmo/bondcalc/internal/cli"
	"github.com/meenmo/bondcalc/internal/report"
	"github.com/meenmo/bondcalc/internal/request"
	"github.com/meenmo/bondcalc/logger"
)

type priceOutput struct {
	TaskID     string          `json:"task_id,omitempty"`
	Mode       string          `json:"mode,omitempty"`
	YieldRate  float64         `json:"yield_rate,omitempty"`
	Iterations int             `json:"iterations,omitempty"`
	Result     *report.Pricing `json:"result,omitempty"`
	Error      string          `json:"error,omitempty"`
	ErrorCode  string          `json:"error_code,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	configPath := flag.String("config", "", "TOML config path (defaults if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: bondprice [-config <path>] -input <path>")
		fmt.Fprintln(os.Stderr, "Price a bond between coupon dates, or solve its yield when clean_price is given.")
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
		fmt.Fprintln(os.Stderr, "Usage: bondprice [-config <path>] -input <path>")
		os.Exit(2)
	}

	raw, err := cli.ReadInput(path, os.Stdin)
	if err != nil {
		exitError(apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("read input: %w", err)))
	}

	inputs, isArray, err := cli.ParseInputs[request.BondRequest](raw)
	if err != nil {
		exitError(apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("parse JSON: %w", err)))
	}

	rep := report.New(cfg.Output.Precision)
	outputs := processAll(inputs, rep, cfg.Batch.Workers)

	hadError := false
	for _, out := range outputs {
		if out.Error != "" {
			hadError = true
			log.Warnw("bond task failed", "task_id", out.TaskID, "code", out.ErrorCode, "error", out.Error)
		}
	}
	log.Debugw("bond tasks processed", "count", len(outputs), "failed", hadError)

	if err := cli.WriteOutputs(os.Stdout, outputs, isArray); err != nil {
		exitError(apperr.Wrap(apperr.ErrInternal, err))
	}
	if hadError {
		logger.Sync()
		os.Exit(1)
	}
}

// processAll prices every input on a bounded worker pool. Each task writes
// only its own slot, and failures are reported per task.
func processAll(inputs []request.BondRequest, rep report.Reporter, workers int) []priceOutput {
	outputs := make([]priceOutput, len(inputs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			out, err := process(in, rep)
			if err != nil {
				ae := apperr.FromError(err)
				outputs[i] = priceOutput{TaskID: in.TaskID, Error: ae.Message, ErrorCode: ae.Code}
				return nil
			}
			outputs[i] = *out
			return nil
		})
	}
	_ = g.Wait()
	return outputs
}

func process(in request.BondRequest, rep report.Reporter) (*priceOutput, error) {
	b, err := in.ToBond()
	if err != nil {
		return nil, err
	}

	if in.CleanPrice != nil {
		yr, err := bond.SolveYield(b, *in.CleanPrice)
		if err != nil {
			return nil, err
		}
		pricing := rep.Pricing(yr.Valuation)
		return &priceOutput{
			TaskID:     in.TaskID,
			Mode:       "yield",
			YieldRate:  yr.Yield,
			Iterations: yr.Iterations,
			Result:     &pricing,
		}, nil
	}

	res, err := bond.Calculate(b)
	if err != nil {
		return nil, err
	}
	pricing := rep.Pricing(res)
	return &priceOutput{
		TaskID:    in.TaskID,
		Mode:      "price",
		YieldRate: b.YieldRate,
		Result:    &pricing,
	}, nil
}

func exitError(err *apperr.AppError) {
	fmt.Fprintln(os.Stderr, err.Error())
	_ = cli.WriteOutputs(os.Stdout, []priceOutput{{Error: err.Message, ErrorCode: err.Code}}, false)
	os.Exit(1)
}
