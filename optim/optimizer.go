// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim implements plain gradient descent and Adam. Both
// consume the flat parameter list a
// module's Parameters() returns and mutate tensor.Tensor.Data() in
// place using the tensor's Grad() buffer. Neither zeros gradients
// itself — the caller (or the module tree) must call ZeroGrad before
// the next forward.
package optim

import "github.com/helix-ml/helix/tensor"

// Optimizer is the interface both SGD and Adam satisfy.
type Optimizer interface {
	// Step applies one gradient update to every parameter.
	Step()
	// LR returns the current learning rate.
	LR() float32
}

// clip bounds g element-wise to [-bound, bound], preserving sign.
func clip(g, bound float32) float32 {
	if g > bound {
		return bound
	}
	if g < -bound {
		return -bound
	}
	return g
}

// eligible reports whether a parameter participates in this step:
// requires grad and has a non-empty gradient buffer.
func eligible(p *tensor.Tensor) bool {
	return p.RequiresGrad() && len(p.Grad()) != 0
}
