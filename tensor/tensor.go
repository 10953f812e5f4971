// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor defines the dense float32 array at the core of Helix:
// shape-checked storage, lazy gradient buffers, and the non-owning
// back-link to the operation node that produced a tensor.
//
// A Tensor never owns its creator, and a creator never owns its inputs
// (see package graph for the arena that actually owns intermediates).
// This break in the natural tensor-knows-creator / creator-knows-input
// cycle is what lets a cleared arena release a whole forward pass's
// intermediates in one step.
package tensor

// Operation is the contract every kernel's graph node satisfies: given
// the tensor it produced (whose Grad now holds the upstream gradient),
// compute and accumulate the local contribution into each input that
// requires it, then recursively continue the walk.
//
// Implementations live in package ops; Tensor only needs the interface
// to hold a back-reference without importing ops (which imports
// tensor), which would be a cycle.
type Operation interface {
	// Backward receives the tensor this operation produced. output.Grad
	// is non-empty (the upstream gradient) by the time Backward is
	// invoked.
	Backward(output *Tensor) error
	// Inputs returns the non-owning references to the tensors that fed
	// this operation, in call order.
	Inputs() []*Tensor
	// Name is a short human-readable kernel name, e.g. "add", "matmul".
	Name() string
}

// Tensor is a dense row-major array of 32-bit floats with an optional
// gradient buffer and a non-owning back-link to its creator.
type Tensor struct {
	shape        Shape
	data         []float32
	requiresGrad bool
	grad         []float32 // lazily allocated; nil means "implicitly zero"
	creator      Operation // nil for leaves
}

// NewLeaf constructs a leaf tensor (no creator) with the given shape
// and requires-grad flag. data is copied; its length must equal
// shape.Numel().
func NewLeaf(shape Shape, data []float32, requiresGrad bool) (*Tensor, error) {
	n := shape.Numel()
	if len(data) != n {
		return nil, newError(ShapeMismatch, "data length %d does not match shape %s (numel %d)", len(data), shape, n)
	}
	buf := make([]float32, n)
	copy(buf, data)
	return &Tensor{shape: shape.Clone(), data: buf, requiresGrad: requiresGrad}, nil
}

// NewZeros constructs a leaf tensor of the given shape filled with
// zeros.
func NewZeros(shape Shape, requiresGrad bool) *Tensor {
	return &Tensor{shape: shape.Clone(), data: make([]float32, shape.Numel()), requiresGrad: requiresGrad}
}

// NewIntermediate constructs a non-leaf tensor produced by op. Kernels
// call this and then register the result (and op) with a graph.Arena;
// Tensor itself does not know about arenas.
//
// The creator is recorded only when requiresGrad is true, so a
// computed-but-not-tracked result never holds a dangling back-link
// into an operation the arena was never asked to own.
func NewIntermediate(shape Shape, data []float32, requiresGrad bool, op Operation) *Tensor {
	t := &Tensor{shape: shape.Clone(), data: data, requiresGrad: requiresGrad}
	if requiresGrad {
		t.creator = op
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape { return t.shape }

// Data returns the underlying flat storage. Callers may write through
// this slice (e.g. an optimizer updating parameter data in place).
func (t *Tensor) Data() []float32 { return t.data }

// RequiresGrad reports whether this tensor participates in gradient
// accumulation.
func (t *Tensor) RequiresGrad() bool { return t.requiresGrad }

// Grad returns the gradient buffer, or nil if no gradient has been
// written yet (implicitly zero).
func (t *Tensor) Grad() []float32 { return t.grad }

// Creator returns the operation that produced this tensor, or nil for
// a leaf.
func (t *Tensor) Creator() Operation { return t.creator }

// SetCreator assigns the producing operation. Kernels call this (via
// NewIntermediate, normally) rather than callers. Assigning a creator
// to a tensor that does not require grad is a caller error.
func (t *Tensor) SetCreator(op Operation) {
	if !t.requiresGrad {
		panic("tensor: SetCreator on a tensor with requiresGrad=false")
	}
	t.creator = op
}

// ZeroGrad fills the gradient buffer with zeros, allocating it first if
// absent. Idempotent and a no-op for tensors that do not require grad.
func (t *Tensor) ZeroGrad() {
	if !t.requiresGrad {
		return
	}
	if t.grad == nil {
		t.grad = make([]float32, len(t.data))
		return
	}
	for i := range t.grad {
		t.grad[i] = 0
	}
}

// AccumulateGrad adds contribution element-wise into this tensor's
// gradient buffer, allocating a zero-filled buffer first if absent.
// Gradients always sum across branches; this is never an assignment.
func (t *Tensor) AccumulateGrad(contribution []float32) {
	if !t.requiresGrad {
		return
	}
	if t.grad == nil {
		t.grad = make([]float32, len(t.data))
	}
	for i, v := range contribution {
		t.grad[i] += v
	}
}

// Detach produces a new leaf tensor with an independent copy of the
// data and requiresGrad=false. It never shares storage with its
// source.
func (t *Tensor) Detach() *Tensor {
	buf := make([]float32, len(t.data))
	copy(buf, t.data)
	return &Tensor{shape: t.shape.Clone(), data: buf}
}

// Dispatch continues the backward walk from input: skip if input has
// no resolvable creator (leaf, or a dropped reference), and skip if
// input's creator is the operation currently executing (the
// self-dispatch guard that prevents re-entering the same node on one
// call path).
//
// A nil input is the expired-reference case: non-fatal, the affected
// branch is simply skipped so the rest of the walk can still update
// reachable leaves.
func Dispatch(current Operation, input *Tensor) error {
	if input == nil {
		return nil
	}
	creator := input.creator
	if creator == nil {
		return nil
	}
	if creator == current {
		return nil
	}
	return creator.Backward(input)
}
