// Package trainconfig loads a training run's configuration from an HCL
// file, the same "parse, decode, apply defaults, Validate()" shape the
// teacher uses for its server configuration, retargeted from
// server/table/bot blocks to a single training-run block.
package trainconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdemcfr/solver"
)

// Config is the top-level shape of a training-run HCL file.
type Config struct {
	Training TrainingBlock `hcl:"training,block"`
}

// TrainingBlock mirrors solver.TrainingConfig's fields, as HCL attributes.
type TrainingBlock struct {
	Seats             int    `hcl:"seats,optional"`
	StartingStack     int    `hcl:"starting_stack,optional"`
	RakeNum           int    `hcl:"rake_num,optional"`
	RakeDen           int    `hcl:"rake_den,optional"`
	ActionAbstraction string `hcl:"action_abstraction,optional"`
	CardAbstraction   string `hcl:"card_abstraction,optional"`
	Workers           int    `hcl:"workers,optional"`
	Iterations        int    `hcl:"iterations,optional"`
	Seed              int64  `hcl:"seed,optional"`
}

// Default returns a Config whose Training block matches
// solver.DefaultTrainingConfig().
func Default() *Config {
	d := solver.DefaultTrainingConfig()
	return &Config{Training: TrainingBlock{
		Seats:             d.Seats,
		StartingStack:     d.StartingStack,
		RakeNum:           d.RakeNum,
		RakeDen:           d.RakeDen,
		ActionAbstraction: d.Abstraction.Action.String(),
		CardAbstraction:   d.Abstraction.Card.String(),
		Workers:           d.Workers,
		Iterations:        d.Iterations,
		Seed:              d.Seed,
	}}
}

// Load reads and decodes an HCL training configuration from filename. A
// missing file is not an error: it yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("trainconfig: parse %s: %s", filename, diags.Error())
	}

	cfg := Default()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("trainconfig: decode %s: %s", filename, diags.Error())
	}
	return cfg, nil
}

// ToTrainingConfig converts the decoded HCL block into a
// solver.TrainingConfig, resolving the abstraction kind names.
func (c *Config) ToTrainingConfig() (solver.TrainingConfig, error) {
	aa, err := parseActionAbstraction(c.Training.ActionAbstraction)
	if err != nil {
		return solver.TrainingConfig{}, err
	}
	ca, err := parseCardAbstraction(c.Training.CardAbstraction)
	if err != nil {
		return solver.TrainingConfig{}, err
	}

	cfg := solver.TrainingConfig{
		Seats:         c.Training.Seats,
		StartingStack: c.Training.StartingStack,
		RakeNum:       c.Training.RakeNum,
		RakeDen:       c.Training.RakeDen,
		Abstraction:   solver.AbstractionConfig{Action: aa, Card: ca},
		Workers:       c.Training.Workers,
		Iterations:    c.Training.Iterations,
		Seed:          c.Training.Seed,
	}
	if err := cfg.Validate(); err != nil {
		return solver.TrainingConfig{}, err
	}
	return cfg, nil
}

func parseActionAbstraction(name string) (solver.ActionAbstractionKind, error) {
	switch name {
	case "", "simple-preflop":
		return solver.ActionSimplePreflop, nil
	case "noop":
		return solver.ActionNoop, nil
	default:
		return 0, fmt.Errorf("trainconfig: unknown action_abstraction %q", name)
	}
}

func parseCardAbstraction(name string) (solver.CardAbstractionKind, error) {
	switch name {
	case "", "range-169":
		return solver.CardRange169, nil
	case "suit-normalized-pf-flop":
		return solver.CardSuitNormalized, nil
	default:
		return 0, fmt.Errorf("trainconfig: unknown card_abstraction %q", name)
	}
}
