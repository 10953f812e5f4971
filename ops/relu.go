// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// ReLUOp represents the rectified-linear activation: output = max(0, x).
// It holds a non-owning reference to its input.
type ReLUOp struct {
	x *tensor.Tensor
}

// ReLU computes max(0, x) element-wise and registers the result and
// its operation node with g.
func ReLU(g *graph.Arena, x *tensor.Tensor) (*tensor.Tensor, error) {
	xd := x.Data()
	data := make([]float32, len(xd))
	for i, v := range xd {
		if v > 0 {
			data[i] = v
		}
	}

	op := &ReLUOp{x: x}
	out := tensor.NewIntermediate(x.Shape(), data, x.RequiresGrad(), op)
	if x.RequiresGrad() {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward passes the upstream gradient through where x > 0 and zero
// elsewhere; at exactly zero the gradient is zero.
func (op *ReLUOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	if op.x.RequiresGrad() {
		xd := op.x.Data()
		contrib := make([]float32, len(upstream))
		for i, v := range xd {
			if v > 0 {
				contrib[i] = upstream[i]
			}
		}
		op.x.AccumulateGrad(contrib)
	}
	return tensor.Dispatch(op, op.x)
}

// Inputs returns [x].
func (op *ReLUOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.x} }

// Name returns "relu".
func (op *ReLUOp) Name() string { return "relu" }
