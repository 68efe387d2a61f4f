package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/born-ml/scalargrad/internal/config"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{4, 4, 1}, cfg.Model.Layers)
	assert.Len(t, cfg.Data, 4)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
model:
  inputs: 2
  layers: [3, 1]
  activation: relu
optimizer:
  name: adam
  lr: 0.01
epochs: 5
data:
  - input: [0, 1]
    target: [1]
  - input: [1, 0]
    target: [1]
`))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Model.Inputs)
	assert.Equal(t, []int{3, 1}, cfg.Model.Layers)
	assert.Equal(t, "relu", cfg.Model.Activation)
	assert.Equal(t, "adam", cfg.Optimizer.Name)
	assert.Equal(t, 0.01, cfg.Optimizer.LR)
	assert.Equal(t, 5, cfg.Epochs)
	assert.Equal(t, uint64(42), cfg.Seed, "seed keeps its default")
	require.Len(t, cfg.Data, 2)
	assert.Equal(t, []float64{1, 0}, cfg.Data[1].Input)
}

// TestParse_EmptyActivation checks that an empty activation is accepted and
// maps to the identity, as nn.ParseActivation does.
func TestParse_EmptyActivation(t *testing.T) {
	cfg, err := config.Parse([]byte(`model: {inputs: 3, layers: [1], activation: ""}`))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Model.Activation)

	act, err := nn.ParseActivation(cfg.Model.Activation)
	require.NoError(t, err)
	assert.Equal(t, nn.Identity, act)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero epochs":       "epochs: 0",
		"unknown optimizer": "optimizer: {name: rmsprop, lr: 0.1}",
		"negative lr":       "optimizer: {name: sgd, lr: -1}",
		"momentum too big":  "optimizer: {name: sgd, lr: 0.1, momentum: 1}",
		"bad activation":    "model: {inputs: 3, layers: [1], activation: gelu}",
		"empty layer":       "model: {inputs: 3, layers: [4, 0], activation: tanh}",
		"input size":        "data: [{input: [1, 2], target: [1]}]",
		"target size":       "data: [{input: [1, 2, 3], target: [1, 2]}]",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("epochs: [1"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epochs: 3\nseed: 7\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Epochs)
	assert.Equal(t, uint64(7), cfg.Seed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
