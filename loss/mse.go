// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss implements reduction kernels expressed as sub-graphs of
// package ops, rather than as fused operation nodes, so their backward
// numerics are definitionally identical to composing the primitive
// kernels by hand.
package loss

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/ops"
	"github.com/helix-ml/helix/tensor"
)

// MSE computes mean((prediction - target)^2) as the sub-graph
// sub -> pow(·, 2) -> mean, and returns the resulting scalar tensor.
// Its RequiresGrad reflects whether either input required gradients,
// by construction of the underlying ops.
func MSE(g *graph.Arena, prediction, target *tensor.Tensor) (*tensor.Tensor, error) {
	diff, err := ops.Sub(g, prediction, target)
	if err != nil {
		return nil, err
	}
	squared, err := ops.Pow(g, diff, 2)
	if err != nil {
		return nil, err
	}
	return ops.Mean(g, squared)
}
