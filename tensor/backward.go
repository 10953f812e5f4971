// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backward is the entry point of the backward pass. It may only be
// called on a scalar tensor (exactly one element) that requires grad;
// any other shape, or a tensor with requiresGrad=false, is a fatal,
// structured error rather than a panic.
//
// Seeding: if this tensor's gradient buffer is empty, it is seeded to
// [1.0] (∂L/∂L = 1). If the caller has already written a gradient
// (re-entrant backward into the same root), the seed is added to it,
// consistent with the rest of the engine always accumulating rather
// than assigning.
func (t *Tensor) Backward() error {
	if !t.shape.IsScalar() {
		return newError(NonScalarBackwardRoot, "backward: root shape %s is not scalar", t.shape)
	}
	if !t.requiresGrad {
		return newError(BackwardOnLeafRequiringNoGrad, "backward: root does not require grad")
	}

	t.AccumulateGrad([]float32{1.0})

	if t.creator == nil {
		return nil
	}
	return t.creator.Backward(t)
}
