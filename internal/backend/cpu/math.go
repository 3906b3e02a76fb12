package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/adamw/internal/tensor"
)

// Sqrt computes the element-wise square root.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	requireDense("sqrt", x)

	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sqrt: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(math.Sqrt(float64(v)))
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = math.Sqrt(v)
		}
	default:
		panic(fmt.Sprintf("sqrt: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Square computes the element-wise square: x * x.
func (cpu *CPUBackend) Square(x *tensor.RawTensor) *tensor.RawTensor {
	requireDense("square", x)

	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("square: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = v * v
		}
	case tensor.Float64:
		mulFloat64(result.AsFloat64(), x.AsFloat64(), x.AsFloat64())
	default:
		panic(fmt.Sprintf("square: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}
