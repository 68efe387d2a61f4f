package nn

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

// Identity applies no activation.
const Identity ops.Op = 0

// ParseActivation maps a name ("tanh", "relu", "exp", "identity") to an
// activation.
func ParseActivation(name string) (ops.Op, error) {
	if name == "" || name == "identity" {
		return Identity, nil
	}
	op, err := ops.Parse(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrActivation, err)
	}
	if err := checkActivation(op); err != nil {
		return 0, err
	}
	return op, nil
}

func checkActivation(act ops.Op) error {
	if act == Identity || (act.Valid() && act.Arity() == 1) {
		return nil
	}
	return fmt.Errorf("%s: %w", act, ErrActivation)
}

func activate(v autodiff.Value, act ops.Op) (autodiff.Value, error) {
	if act == Identity {
		return v, nil
	}
	return v.Apply(act)
}
