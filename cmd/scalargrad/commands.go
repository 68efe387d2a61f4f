package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/config"
	"github.com/born-ml/scalargrad/internal/train"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "scalargrad",
		Short:        "Scalar reverse-mode automatic differentiation",
		Long:         `scalargrad trains small feed-forward networks built from scalar neurons and prints computation graphs.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(newTrainCmd(opts), newGraphCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scalargrad %s\n", version)
		},
	}
}

type trainOptions struct {
	configPath string
	epochs     int
	lr         float64
	optimizer  string
	seed       uint64
}

func newTrainCmd(root *rootOptions) *cobra.Command {
	opts := &trainOptions{}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a network from a YAML config (or the built-in example)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), root.logLevel, root.logFormat)
			if err != nil {
				return err
			}
			cfg, err := loadTrainConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runTrain(cmd, cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML training config")
	cmd.Flags().IntVar(&opts.epochs, "epochs", 0, "override the number of epochs")
	cmd.Flags().Float64Var(&opts.lr, "lr", 0, "override the learning rate")
	cmd.Flags().StringVar(&opts.optimizer, "optimizer", "", "override the optimizer: sgd or adam")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "override the initialization seed")
	return cmd
}

// loadTrainConfig reads the config file, if any, and applies flags that were
// set explicitly.
func loadTrainConfig(cmd *cobra.Command, opts *trainOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("epochs") {
		cfg.Epochs = opts.epochs
	}
	if flags.Changed("lr") {
		cfg.Optimizer.LR = opts.lr
	}
	if flags.Changed("optimizer") {
		cfg.Optimizer.Name = opts.optimizer
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTrain(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	run, err := train.Build(cfg, train.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("training started",
		slog.Int("parameters", len(run.Model.Parameters())),
		slog.Int("samples", len(cfg.Data)),
		slog.Int("epochs", cfg.Epochs),
		slog.String("optimizer", cfg.Optimizer.Name),
	)

	history, err := run.Trainer.Fit(cmd.Context(), cfg.Data, cfg.Epochs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "final loss: %.6f\n", history[len(history)-1])
	for _, s := range cfg.Data {
		pred, err := run.Trainer.Predict(s.Input)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "input=%v target=%v prediction=%s\n", s.Input, s.Target, formatFloats(pred))
	}
	return nil
}

type graphOptions struct {
	x, w, b float64
}

func newGraphCmd() *cobra.Command {
	opts := &graphOptions{}
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the graph and gradients of tanh(w*x + b)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := autodiff.NewGraph()
			x := g.NewValue(opts.x, autodiff.WithLabel("x"))
			w := g.NewValue(opts.w, autodiff.WithLabel("w"))
			b := g.NewValue(opts.b, autodiff.WithLabel("b"))

			y := w.Mul(x).Add(b).Tanh()
			y.Backward()
			return y.WriteTree(cmd.OutOrStdout(), true)
		},
	}
	cmd.Flags().Float64Var(&opts.x, "x", 0.5, "input value")
	cmd.Flags().Float64Var(&opts.w, "w", 2, "weight value")
	cmd.Flags().Float64Var(&opts.b, "b", 1, "bias value")
	return cmd
}

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%.4f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}
