// Package train runs the forward/backward/step training loop.
package train

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/config"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/born-ml/scalargrad/internal/optim"
)

// ErrNoData reports a training run without samples.
var ErrNoData = errors.New("no training data")

// Trainer fits a model held in a graph. Parameters must be created before the
// Trainer; every epoch's forward graph is discarded once the step is applied.
type Trainer struct {
	graph     *autodiff.Graph
	model     nn.Module
	optimizer optim.Optimizer
	logger    *slog.Logger
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Trainer) {
		t.logger = l
	}
}

// NewTrainer creates a trainer for model, whose parameters live in g.
func NewTrainer(g *autodiff.Graph, model nn.Module, optimizer optim.Optimizer, opts ...Option) *Trainer {
	t := &Trainer{
		graph:     g,
		model:     model,
		optimizer: optimizer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Step runs one full-batch step: forward over every sample, mean squared
// error over all outputs, backward, and an optimizer update. It returns the
// loss before the update.
func (t *Trainer) Step(data []config.Sample) (float64, error) {
	if len(data) == 0 {
		return 0, ErrNoData
	}
	mark := t.graph.Checkpoint()
	defer t.graph.Rollback(mark)

	var (
		targets []float64
		preds   []autodiff.Value
	)
	for i, s := range data {
		out, err := t.model.Forward(nn.Inputs(t.graph, s.Input))
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		targets = append(targets, s.Target...)
		preds = append(preds, out...)
	}

	t.optimizer.ZeroGrad()
	loss, err := nn.MSELoss(targets, preds)
	if err != nil {
		return 0, err
	}
	loss.Backward()
	t.optimizer.Step()
	return loss.Data(), nil
}

// Fit runs epochs steps and returns the loss of each. It stops early with the
// context's error when ctx is done.
func (t *Trainer) Fit(ctx context.Context, data []config.Sample, epochs int) ([]float64, error) {
	history := make([]float64, 0, epochs)
	for epoch := range epochs {
		if err := ctx.Err(); err != nil {
			return history, err
		}
		loss, err := t.Step(data)
		if err != nil {
			return history, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		history = append(history, loss)
		t.logger.Info("epoch complete",
			slog.Int("epoch", epoch),
			slog.Float64("loss", loss),
			slog.Float64("lr", t.optimizer.LR()),
		)
	}
	return history, nil
}

// Predict returns the model outputs for input without keeping any graph
// nodes.
func (t *Trainer) Predict(input []float64) ([]float64, error) {
	mark := t.graph.Checkpoint()
	defer t.graph.Rollback(mark)

	out, err := t.model.Forward(nn.Inputs(t.graph, input))
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(out))
	for i, v := range out {
		res[i] = v.Data()
	}
	return res, nil
}

// Run holds everything built from a configuration.
type Run struct {
	Graph     *autodiff.Graph
	Model     *nn.MLP
	Optimizer optim.Optimizer
	Trainer   *Trainer
}

// Build creates the graph, model, optimizer and trainer described by cfg.
func Build(cfg *config.Config, opts ...Option) (*Run, error) {
	activation, err := nn.ParseActivation(cfg.Model.Activation)
	if err != nil {
		return nil, err
	}

	g := autodiff.NewGraph()
	//nolint:gosec // weight initialization is not security-critical
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	model, err := nn.NewMLP(g, cfg.Model.Inputs, cfg.Model.Layers, activation, rng)
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	optimizer, err := NewOptimizer(cfg.Optimizer, model.Parameters())
	if err != nil {
		return nil, err
	}
	return &Run{
		Graph:     g,
		Model:     model,
		Optimizer: optimizer,
		Trainer:   NewTrainer(g, model, optimizer, opts...),
	}, nil
}

// NewOptimizer creates the optimizer selected by cfg over params.
func NewOptimizer(cfg config.OptimizerConfig, params []autodiff.Value) (optim.Optimizer, error) {
	switch cfg.Name {
	case "sgd", "":
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum}), nil
	case "adam":
		return optim.NewAdam(params, optim.AdamConfig{
			LR:    cfg.LR,
			Betas: [2]float64{cfg.Beta1, cfg.Beta2},
			Eps:   cfg.Eps,
		}), nil
	default:
		return nil, fmt.Errorf("optimizer %q: %w", cfg.Name, config.ErrInvalid)
	}
}
