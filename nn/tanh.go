// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/ops"
	"github.com/helix-ml/helix/tensor"
)

// Tanh is a parameter-less activation module wrapping ops.Tanh.
type Tanh struct{}

// NewTanh constructs a Tanh module.
func NewTanh() *Tanh { return &Tanh{} }

// Forward applies ops.Tanh.
func (t *Tanh) Forward(g *graph.Arena, input *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.Tanh(g, input)
}

// Parameters returns nil: Tanh has no trainable parameters.
func (t *Tanh) Parameters() []*tensor.Tensor { return nil }

// ZeroGrad is a no-op.
func (t *Tanh) ZeroGrad() {}

// Name returns "tanh".
func (t *Tanh) Name() string { return "tanh" }
