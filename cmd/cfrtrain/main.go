package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdemcfr/card"
	"github.com/lox/holdemcfr/equity"
	"github.com/lox/holdemcfr/internal/trainconfig"
	"github.com/lox/holdemcfr/solver"
)

var cli struct {
	Debug bool `help:"enable debug logging"`

	Train  TrainCmd  `cmd:"" help:"run external-sampling CFR training"`
	Eval   EvalCmd   `cmd:"" help:"report diagnostics for a training configuration's tree"`
	Equity EquityCmd `cmd:"" help:"compute exact equity between hands"`
}

type TrainCmd struct {
	Config string `help:"path to an HCL training configuration" default:"cfrtrain.hcl"`
}

type EvalCmd struct {
	Config string `help:"path to an HCL training configuration" default:"cfrtrain.hcl"`
}

type EquityCmd struct {
	Hands []string `arg:"" help:"two or more hands, e.g. AsAh Td9d"`
	Board string   `help:"board cards already dealt, e.g. 2c7d9h"`
}

var logger *log.Logger

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("cfrtrain"),
		kong.Description("No-limit hold'em CFR training and analysis tooling"),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger = log.New(os.Stderr)
	logger.SetLevel(level)

	err := ctx.Run(context.Background())
	ctx.FatalIfErrorf(err)
}

// Run loads cmd.Config, builds the tree and tables, and runs every
// worker's iteration budget to completion.
func (cmd *TrainCmd) Run(ctx context.Context) error {
	fc, err := trainconfig.Load(cmd.Config)
	if err != nil {
		return err
	}
	cfg, err := fc.ToTrainingConfig()
	if err != nil {
		return err
	}

	logger.Info("building tree and tables",
		"seats", cfg.Seats,
		"action_abstraction", cfg.Abstraction.Action,
		"card_abstraction", cfg.Abstraction.Card,
	)
	trainer, err := solver.NewTrainer(cfg)
	if err != nil {
		return fmt.Errorf("build trainer: %w", err)
	}

	size := solver.ComputeTreeSize(trainer.Root())
	logger.Info("tree built", "infosets", size.Infosets, "terminals", size.Terminals)

	logger.Info("training started", "workers", cfg.Workers, "iterations_per_worker", cfg.Iterations)
	if err := trainer.Run(ctx); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	stats := solver.ComputeRegretStats(trainer.Root(), trainer.Tables())
	logger.Info("training finished", "regret_sum", stats.Sum, "regret_min", stats.Min, "regret_max", stats.Max)
	return nil
}

// Run loads cmd.Config and reports the shape of the tree it implies,
// without running any CFR iterations.
func (cmd *EvalCmd) Run(ctx context.Context) error {
	fc, err := trainconfig.Load(cmd.Config)
	if err != nil {
		return err
	}
	cfg, err := fc.ToTrainingConfig()
	if err != nil {
		return err
	}
	cfg.Iterations = 1
	cfg.Workers = 1

	trainer, err := solver.NewTrainer(cfg)
	if err != nil {
		return fmt.Errorf("build trainer: %w", err)
	}

	size := solver.ComputeTreeSize(trainer.Root())
	logger.Info("tree shape", "infosets", size.Infosets, "terminals", size.Terminals)
	fmt.Printf("infosets=%d terminals=%d\n", size.Infosets, size.Terminals)
	return nil
}

// Run computes exact equity among cmd.Hands on cmd.Board and prints each
// hand's share.
func (cmd *EquityCmd) Run(ctx context.Context) error {
	if len(cmd.Hands) < 2 {
		return fmt.Errorf("equity: need at least 2 hands")
	}

	hands := make([]card.Hand, len(cmd.Hands))
	for i, s := range cmd.Hands {
		h, err := card.ParseHand(s)
		if err != nil {
			return fmt.Errorf("equity: parsing hand %q: %w", s, err)
		}
		hands[i] = h
	}

	var board card.CardSet
	if cmd.Board != "" {
		b, err := card.ParseCardSet(cmd.Board)
		if err != nil {
			return fmt.Errorf("equity: parsing board %q: %w", cmd.Board, err)
		}
		board = b
	}

	results, err := equity.Enumerate(ctx, hands, board)
	if err != nil {
		return fmt.Errorf("equity: %w", err)
	}

	for i, h := range hands {
		r := results[i]
		fmt.Printf("%s: %.2f%% (wins=%d ties=%d of %d boards)\n", h, r.Equity()*100, r.Wins, r.Ties, r.Total)
	}
	return nil
}
