package nn_test

import (
	"testing"

	"github.com/born-ml/adamw/internal/backend/cpu"
	"github.com/born-ml/adamw/internal/nn"
	"github.com/born-ml/adamw/internal/tensor"
)

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	backend := cpu.New()

	// Create a parameter
	data, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	param := nn.NewParameter("test_param", data)

	// Test Name
	if param.Name() != "test_param" {
		t.Errorf("Name() = %s, want test_param", param.Name())
	}

	// Test Tensor
	if param.Tensor() != data {
		t.Error("Tensor() should return the original tensor")
	}

	// Test Grad (initially nil)
	if param.Grad() != nil {
		t.Error("Grad() should initially be nil")
	}

	// Test SetGrad
	grad, _ := tensor.FromSlice([]float32{0.1, 0.2, 0.3}, tensor.Shape{3}, backend)
	param.SetGrad(grad)
	if param.Grad() != grad {
		t.Error("SetGrad() should set the gradient")
	}

	// Test ZeroGrad
	param.ZeroGrad()
	if param.Grad() != nil {
		t.Error("ZeroGrad() should clear the gradient")
	}
}

// TestParameter_SparseGrad tests that a sparse gradient can be attached; it is
// up to consumers to reject it.
func TestParameter_SparseGrad(t *testing.T) {
	backend := cpu.New()

	data, _ := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2}, backend)
	param := nn.NewParameter("embedding", data)

	raw, err := tensor.NewRawCOO(tensor.Shape{2}, []int{1}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRawCOO: %v", err)
	}
	param.SetGrad(tensor.New[float32](raw, backend))

	if param.Grad() == nil {
		t.Fatal("sparse gradient should be attached")
	}
	if !param.Grad().Raw().IsSparse() {
		t.Error("gradient should keep its sparse layout")
	}
}
