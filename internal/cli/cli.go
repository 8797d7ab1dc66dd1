// Package cli holds the JSON input/output plumbing shared by the
// command-line tools.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/meenmo/bondcalc/config"
	"github.com/meenmo/bondcalc/logger"
)

// Setup loads and validates the configuration, activates its solver
// parameters and initializes the logger.
func Setup(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	config.SetSolver(cfg.Solver)
	logger.Init(cfg.Env, cfg.LogLevel)
	decimal.MarshalJSONWithoutQuotes = true
	return cfg, nil
}

// ReadInput reads path, or stdin when path is empty.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

// StdinIsTerminal reports whether nothing is being piped into the process.
func StdinIsTerminal() bool {
	stat, err := os.Stdin.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) != 0
}

// ParseInputs decodes either a single JSON object or a non-empty array of
// objects. isArray reports which shape was given so output can mirror it.
func ParseInputs[T any](raw []byte) (inputs []T, isArray bool, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input T
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []T{input}, false, nil
}

// WriteOutputs prints outputs as a JSON array, or its only element when the
// input was a single object.
func WriteOutputs[T any](w io.Writer, outputs []T, isArray bool) error {
	var (
		b   []byte
		err error
	)
	if isArray {
		b, err = json.Marshal(outputs)
	} else {
		b, err = json.Marshal(outputs[0])
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
