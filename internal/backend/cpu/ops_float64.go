package cpu

import "gonum.org/v1/gonum/floats"

// Float64 element-wise kernels, delegated to gonum's vector primitives.

func addFloat64(dst, a, b []float64) {
	floats.AddTo(dst, a, b)
}

func subFloat64(dst, a, b []float64) {
	floats.SubTo(dst, a, b)
}

func mulFloat64(dst, a, b []float64) {
	floats.MulTo(dst, a, b)
}

func divFloat64(dst, a, b []float64) {
	floats.DivTo(dst, a, b)
}
