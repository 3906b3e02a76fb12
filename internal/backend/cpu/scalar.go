package cpu

import (
	"fmt"

	"github.com/born-ml/adamw/internal/tensor"

	"gonum.org/v1/gonum/floats"
)

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	requireDense("add_scalar", x)

	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("add_scalar: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		c := toFloat64("add_scalar", scalar)
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = v + float32(c)
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		copy(dst, x.AsFloat64())
		floats.AddConst(toFloat64("add_scalar", scalar), dst)
	default:
		panic(fmt.Sprintf("add_scalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	requireDense("mul_scalar", x)

	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mul_scalar: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		c := toFloat64("mul_scalar", scalar)
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = v * float32(c)
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		copy(dst, x.AsFloat64())
		floats.Scale(toFloat64("mul_scalar", scalar), dst)
	default:
		panic(fmt.Sprintf("mul_scalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// toFloat64 converts a scalar argument to float64.
func toFloat64(op string, scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	case int64:
		return float64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", op, scalar))
	}
}
