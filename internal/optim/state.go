package optim

import (
	"fmt"

	"github.com/born-ml/adamw/internal/tensor"
)

// StateDict returns the optimizer state for checkpointing.
//
// Per parameter that has received at least one update, the dictionary holds
// its moment buffers and step count:
//
//	"group{g}.exp_avg.{i}"    -> first moment tensor
//	"group{g}.exp_avg_sq.{i}" -> second moment tensor
//	"group{g}.step.{i}"       -> int64 scalar tensor
//
// The returned moment tensors are deep copies; serializing them to disk is
// the caller's concern.
func (a *AdamW[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)

	for gi := range a.groups {
		for pi, st := range a.state[gi] {
			if st == nil {
				continue // Parameter never received a gradient
			}

			stateDict[stateKey(gi, "exp_avg", pi)] = st.expAvg.Raw().Clone()
			stateDict[stateKey(gi, "exp_avg_sq", pi)] = st.expAvgSq.Raw().Clone()

			stepRaw, err := tensor.NewRaw(tensor.Shape{1}, tensor.Int64, a.backend.Device())
			if err != nil {
				panic(fmt.Sprintf("state dict: %v", err))
			}
			stepRaw.AsInt64()[0] = st.step
			stateDict[stateKey(gi, "step", pi)] = stepRaw
		}
	}

	return stateDict
}

// LoadStateDict restores optimizer state from a checkpoint produced by
// StateDict against the same group/parameter structure.
//
// Parameters with no entries keep lazily-initialized state (they behave as if
// never updated). Moment tensors are copied in, so later updates never mutate
// the caller's dictionary. Returns an error if a stored tensor's shape does
// not match its parameter.
func (a *AdamW[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	for gi, group := range a.groups {
		for pi, param := range group.Params {
			expAvgRaw, ok := stateDict[stateKey(gi, "exp_avg", pi)]
			if !ok {
				a.state[gi][pi] = nil
				continue
			}

			expAvgSqRaw, ok := stateDict[stateKey(gi, "exp_avg_sq", pi)]
			if !ok {
				return fmt.Errorf("state dict: missing %q", stateKey(gi, "exp_avg_sq", pi))
			}
			stepRaw, ok := stateDict[stateKey(gi, "step", pi)]
			if !ok {
				return fmt.Errorf("state dict: missing %q", stateKey(gi, "step", pi))
			}

			paramShape := param.Tensor().Shape()
			if !expAvgRaw.Shape().Equal(paramShape) {
				return fmt.Errorf("state dict: exp_avg shape mismatch for group %d parameter %d: expected %v, got %v",
					gi, pi, paramShape, expAvgRaw.Shape())
			}
			if !expAvgSqRaw.Shape().Equal(paramShape) {
				return fmt.Errorf("state dict: exp_avg_sq shape mismatch for group %d parameter %d: expected %v, got %v",
					gi, pi, paramShape, expAvgSqRaw.Shape())
			}

			a.state[gi][pi] = &adamState[B]{
				step:     stepRaw.AsInt64()[0],
				expAvg:   tensor.New[float32, B](expAvgRaw.Clone(), a.backend),
				expAvgSq: tensor.New[float32, B](expAvgSqRaw.Clone(), a.backend),
			}
		}
	}

	return nil
}

// stateKey builds a state dictionary key for one parameter's entry.
func stateKey(group int, kind string, param int) string {
	return fmt.Sprintf("group%d.%s.%d", group, kind, param)
}
