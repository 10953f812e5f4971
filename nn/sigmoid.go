// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/ops"
	"github.com/helix-ml/helix/tensor"
)

// Sigmoid is a parameter-less activation module wrapping ops.Sigmoid.
type Sigmoid struct{}

// NewSigmoid constructs a Sigmoid module.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

// Forward applies ops.Sigmoid.
func (s *Sigmoid) Forward(g *graph.Arena, input *tensor.Tensor) (*tensor.Tensor, error) {
	return ops.Sigmoid(g, input)
}

// Parameters returns nil: Sigmoid has no trainable parameters.
func (s *Sigmoid) Parameters() []*tensor.Tensor { return nil }

// ZeroGrad is a no-op.
func (s *Sigmoid) ZeroGrad() {}

// Name returns "sigmoid".
func (s *Sigmoid) Name() string { return "sigmoid" }
