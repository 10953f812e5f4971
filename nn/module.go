// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn implements the composable forward building blocks: a
// linear transform, a ReLU activation, a sequential container, and the
// Sigmoid and Tanh activations. Every module threads the graph.Arena
// explicitly through Forward.
package nn

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// Module is the contract every building block in this package
// satisfies: forward under an arena, a flat parameter list, zeroing
// those parameters' gradients, and a human-readable name.
type Module interface {
	// Forward computes this module's output from input, registering
	// any intermediates it produces with g.
	Forward(g *graph.Arena, input *tensor.Tensor) (*tensor.Tensor, error)
	// Parameters returns the flat list of leaf tensors this module (and
	// any sub-modules) owns.
	Parameters() []*tensor.Tensor
	// ZeroGrad zeroes every parameter's gradient buffer.
	ZeroGrad()
	// Name is a short human-readable module name, e.g. "linear", "relu".
	Name() string
}
