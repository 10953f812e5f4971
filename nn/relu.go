// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/ops"
	"github.com/helix-ml/helix/tensor"
)

// ReLU is a parameter-less activation module wrapping the ops.ReLU
// kernel.
type ReLU struct{}

// NewReLU constructs a ReLU module.
func NewReLU() *ReLU { return &ReLU{} }

// Forward applies ops.ReLU.
func (r *ReLU) Forward(g *graph.Arena, input *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.ReLU(g, input)
}

// Parameters returns nil: ReLU has no trainable parameters.
func (r *ReLU) Parameters() []*tensor.Tensor { return nil }

// ZeroGrad is a no-op.
func (r *ReLU) ZeroGrad() {}

// Name returns "relu".
func (r *ReLU) Name() string { return "relu" }
