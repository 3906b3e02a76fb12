package tensor

// Backend defines the interface a compute backend must implement for the
// element-wise arithmetic this library performs. Backends operate on dense
// tensors only; an optimizer update never needs broadcasting because every
// tensor in one parameter's update shares that parameter's shape.
type Backend interface {
	// Element-wise binary operations. Operands must share a shape.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Element-wise unary operations.
	Sqrt(x *RawTensor) *RawTensor   // Square root.
	Square(x *RawTensor) *RawTensor // x * x.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}
