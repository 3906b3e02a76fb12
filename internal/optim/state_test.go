package optim_test

import (
	"testing"

	"github.com/born-ml/adamw/internal/backend/cpu"
	"github.com/born-ml/adamw/internal/nn"
	"github.com/born-ml/adamw/internal/optim"
	"github.com/born-ml/adamw/internal/tensor"
)

// trainGrad produces a deterministic gradient for step s.
func trainGrad(s int) []float32 {
	return []float32{0.1 * float32(s), -0.05, 0.2 / float32(s)}
}

// TestStateDict_RoundTripResumesTraining checks that exporting state after k
// steps and importing it into a fresh optimizer reproduces uninterrupted
// training exactly.
func TestStateDict_RoundTripResumesTraining(t *testing.T) {
	backend := cpu.New()
	config := optim.DefaultAdamWConfig()
	config.WeightDecay = 0.01

	// Uninterrupted run: 5 steps.
	full := newParam(t, backend, "x", 1.0, 2.0, 3.0)
	optFull, err := optim.NewAdamW([]*nn.Parameter[*cpu.CPUBackend]{full}, config, backend)
	if err != nil {
		t.Fatalf("NewAdamW: %v", err)
	}
	for s := 1; s <= 5; s++ {
		attachGrad(t, full, backend, trainGrad(s)...)
		if _, err := optFull.Step(nil); err != nil {
			t.Fatalf("full run step %d: %v", s, err)
		}
	}

	// Checkpointed run: 3 steps, export, resume in a fresh optimizer.
	part := newParam(t, backend, "x", 1.0, 2.0, 3.0)
	optPart, err := optim.NewAdamW([]*nn.Parameter[*cpu.CPUBackend]{part}, config, backend)
	if err != nil {
		t.Fatalf("NewAdamW: %v", err)
	}
	for s := 1; s <= 3; s++ {
		attachGrad(t, part, backend, trainGrad(s)...)
		if _, err := optPart.Step(nil); err != nil {
			t.Fatalf("partial run step %d: %v", s, err)
		}
	}
	checkpoint := optPart.StateDict()

	// "Restart": new parameter holding the checkpointed values, new optimizer.
	resumedValues := make([]float32, 3)
	copy(resumedValues, part.Tensor().Raw().AsFloat32())
	resumed := newParam(t, backend, "x", resumedValues...)

	optResumed, err := optim.NewAdamW([]*nn.Parameter[*cpu.CPUBackend]{resumed}, config, backend)
	if err != nil {
		t.Fatalf("NewAdamW: %v", err)
	}
	if err := optResumed.LoadStateDict(checkpoint); err != nil {
		t.Fatalf("LoadStateDict: %v", err)
	}
	if got := optResumed.StepCount(resumed); got != 3 {
		t.Errorf("restored step count: got %d, want 3", got)
	}

	for s := 4; s <= 5; s++ {
		attachGrad(t, resumed, backend, trainGrad(s)...)
		if _, err := optResumed.Step(nil); err != nil {
			t.Fatalf("resumed run step %d: %v", s, err)
		}
	}

	want := full.Tensor().Raw().AsFloat32()
	got := resumed.Tensor().Raw().AsFloat32()
	for i := range want {
		if !floatEqual(got[i], want[i], 1e-7) {
			t.Errorf("element %d: resumed %.9f, uninterrupted %.9f", i, got[i], want[i])
		}
	}
}

// TestStateDict_SkipsUntouchedParameters tests that parameters without state
// have no entries, and loading such a dict leaves them lazily initialized.
func TestStateDict_SkipsUntouchedParameters(t *testing.T) {
	backend := cpu.New()
	updated := newParam(t, backend, "updated", 1.0)
	untouched := newParam(t, backend, "untouched", 2.0)

	opt, err := optim.NewAdamW([]*nn.Parameter[*cpu.CPUBackend]{updated, untouched}, optim.DefaultAdamWConfig(), backend)
	if err != nil {
		t.Fatalf("NewAdamW: %v", err)
	}

	attachGrad(t, updated, backend, 0.5)
	if _, err := opt.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}

	dict := opt.StateDict()
	if len(dict) != 3 {
		t.Errorf("dict entries: got %d, want 3 (exp_avg, exp_avg_sq, step)", len(dict))
	}
	if _, ok := dict["group0.exp_avg.1"]; ok {
		t.Error("untouched parameter should have no state entry")
	}

	fresh, err := optim.NewAdamW([]*nn.Parameter[*cpu.CPUBackend]{updated, untouched}, optim.DefaultAdamWConfig(), backend)
	if err != nil {
		t.Fatalf("NewAdamW: %v", err)
	}
	if err := fresh.LoadStateDict(dict); err != nil {
		t.Fatalf("LoadStateDict: %v", err)
	}
	if got := fresh.StepCount(untouched); got != 0 {
		t.Errorf("untouched step count after load: got %d, want 0", got)
	}
}

// TestStateDict_ExportIsIsolated tests that mutating the optimizer after
// export does not change the exported tensors.
func TestStateDict_ExportIsIsolated(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, backend, "x", 1.0)

	opt, err := optim.NewAdamW([]*nn.Parameter[*cpu.CPUBackend]{param}, optim.DefaultAdamWConfig(), backend)
	if err != nil {
		t.Fatalf("NewAdamW: %v", err)
	}

	attachGrad(t, param, backend, 0.5)
	if _, err := opt.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}

	dict := opt.StateDict()
	before := dict["group0.exp_avg.0"].AsFloat32()[0]

	attachGrad(t, param, backend, 0.5)
	if _, err := opt.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}

	after := dict["group0.exp_avg.0"].AsFloat32()[0]
	if before != after {
		t.Errorf("exported state mutated by later updates: %f -> %f", before, after)
	}
}

// TestLoadStateDict_ShapeMismatch tests that a stored moment with the wrong
// shape is rejected.
func TestLoadStateDict_ShapeMismatch(t *testing.T) {
	backend := cpu.New()
	param := newParam(t, backend, "x", 1.0, 2.0)

	opt, err := optim.NewAdamW([]*nn.Parameter[*cpu.CPUBackend]{param}, optim.DefaultAdamWConfig(), backend)
	if err != nil {
		t.Fatalf("NewAdamW: %v", err)
	}

	wrong, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, backend.Device())
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	wrongSq, err := tensor.NewRaw(tensor.Shape{3}, tensor.Float32, backend.Device())
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	step, err := tensor.NewRaw(tensor.Shape{1}, tensor.Int64, backend.Device())
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	step.AsInt64()[0] = 1

	dict := map[string]*tensor.RawTensor{
		"group0.exp_avg.0":    wrong,
		"group0.exp_avg_sq.0": wrongSq,
		"group0.step.0":       step,
	}

	if err := opt.LoadStateDict(dict); err == nil {
		t.Error("LoadStateDict should reject mismatched shapes")
	}
}
