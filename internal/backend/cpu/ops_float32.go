package cpu

// Float32 element-wise kernels. gonum has no float32 surface, so these stay
// plain loops; the compiler vectorizes the simple forms.

func addFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}
