package tensor

import (
	"fmt"
	"unsafe"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices. This library is CPU-only: an optimizer step is a
// synchronous pass over externally owned buffers, with no device transfer.
const (
	CPU Device = iota
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// Layout describes how a tensor's elements are stored.
type Layout int

// Supported storage layouts.
const (
	// Dense stores every element explicitly in row-major order.
	Dense Layout = iota
	// SparseCOO stores only nonzero elements as (flat index, value) pairs.
	SparseCOO
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case Dense:
		return "dense"
	case SparseCOO:
		return "sparse-coo"
	default:
		return "unknown"
	}
}

// RawTensor is the low-level tensor representation: a flat buffer plus shape,
// stride, dtype, device and layout metadata.
//
// Dense tensors expose their elements through the zero-copy typed views
// (AsFloat32, AsFloat64, AsInt64). Sparse tensors expose only their stored
// values through the same views, with the corresponding flat indices available
// via Indices().
type RawTensor struct {
	data    []byte
	shape   Shape
	stride  []int
	dtype   DataType
	device  Device
	layout  Layout
	indices []int // Flat element indices of stored values; nil for dense.
}

// NewRaw creates a new dense RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()

	return &RawTensor{
		data:   make([]byte, numElements*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
		layout: Dense,
	}, nil
}

// NewRawCOO creates a sparse RawTensor in coordinate format. indices are flat
// row-major element positions; the value buffer holds one stored element per
// index and is zero-initialized (fill it through the typed views).
//
// Sparse tensors exist so that gradients produced by sparse-aware collaborators
// can be represented and rejected by consumers that require dense storage.
func NewRawCOO(shape Shape, indices []int, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	for _, idx := range indices {
		if idx < 0 || idx >= numElements {
			return nil, fmt.Errorf("sparse index %d out of range for shape %v", idx, shape)
		}
	}

	stored := make([]int, len(indices))
	copy(stored, indices)

	return &RawTensor{
		data:    make([]byte, len(indices)*dtype.Size()),
		shape:   shape.Clone(),
		stride:  shape.ComputeStrides(),
		dtype:   dtype,
		device:  device,
		layout:  SparseCOO,
		indices: stored,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// Layout returns the tensor's storage layout.
func (r *RawTensor) Layout() Layout {
	return r.layout
}

// IsSparse reports whether the tensor uses a sparse storage layout.
func (r *RawTensor) IsSparse() bool {
	return r.layout != Dense
}

// Indices returns the flat element indices of the stored values.
// Returns nil for dense tensors.
func (r *RawTensor) Indices() []int {
	return r.indices
}

// NumElements returns the total number of logical elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// NumStored returns the number of explicitly stored elements:
// NumElements for dense tensors, the number of indices for sparse ones.
func (r *RawTensor) NumStored() int {
	if r.IsSparse() {
		return len(r.indices)
	}
	return r.NumElements()
}

// ByteSize returns the stored memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return len(r.data)
}

// AsFloat32 interprets the stored values as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumStored()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumStored())
}

// AsFloat64 interprets the stored values as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumStored()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumStored())
}

// AsInt64 interprets the stored values as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	if len(r.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumStored()
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), r.NumStored())
}

// Clone creates a deep copy of the RawTensor. The copy owns its own buffer;
// mutations of one tensor never affect the other.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)

	var indices []int
	if r.indices != nil {
		indices = make([]int, len(r.indices))
		copy(indices, r.indices)
	}

	stride := make([]int, len(r.stride))
	copy(stride, r.stride)

	return &RawTensor{
		data:    data,
		shape:   r.shape.Clone(),
		stride:  stride,
		dtype:   r.dtype,
		device:  r.device,
		layout:  r.layout,
		indices: indices,
	}
}
