// Package cpu implements the CPU compute backend for the adamw library.
//
// Float32 kernels are hand-rolled loops; float64 kernels delegate to gonum's
// vector primitives.
package cpu

import (
	"fmt"

	"github.com/born-ml/adamw/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newBinaryResult("add", a, b)

	switch a.DType() {
	case tensor.Float32:
		addFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		addFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s", a.DType()))
	}

	return result
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newBinaryResult("sub", a, b)

	switch a.DType() {
	case tensor.Float32:
		subFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		subFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("sub: unsupported dtype %s", a.DType()))
	}

	return result
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newBinaryResult("mul", a, b)

	switch a.DType() {
	case tensor.Float32:
		mulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		mulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %s", a.DType()))
	}

	return result
}

// Div performs element-wise division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newBinaryResult("div", a, b)

	switch a.DType() {
	case tensor.Float32:
		divFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		divFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("div: unsupported dtype %s", a.DType()))
	}

	return result
}

// newBinaryResult validates operands and allocates the result tensor for a
// same-shape binary operation.
func (cpu *CPUBackend) newBinaryResult(op string, a, b *tensor.RawTensor) *tensor.RawTensor {
	requireDense(op, a, b)

	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch: %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// requireDense panics when any operand uses a sparse layout.
func requireDense(op string, ts ...*tensor.RawTensor) {
	for _, t := range ts {
		if t.IsSparse() {
			panic(fmt.Sprintf("%s: %s layout not supported (dense only)", op, t.Layout()))
		}
	}
}
