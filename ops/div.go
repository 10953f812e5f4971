// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// DivOp represents element-wise division by a constant scalar:
// output[i] = x[i] / c.
type DivOp struct {
	x *tensor.Tensor
	c float32
}

// DivScalar computes x / c and registers the result and its operation
// node with g. A zero divisor is a fatal error.
func DivScalar(g *graph.Arena, x *tensor.Tensor, c float32) (*tensor.Tensor, error) {
	if c == 0 {
		return nil, &tensor.Error{Kind: tensor.DivisionByZero, Msg: "div: divisor is zero"}
	}
	xd := x.Data()
	data := make([]float32, len(xd))
	for i, v := range xd {
		data[i] = v / c
	}

	op := &DivOp{x: x, c: c}
	out := tensor.NewIntermediate(x.Shape(), data, x.RequiresGrad(), op)
	if x.RequiresGrad() {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward: ∂(x/c)/∂x = 1/c.
func (op *DivOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	if op.x.RequiresGrad() {
		contrib := make([]float32, len(upstream))
		for i, v := range upstream {
			contrib[i] = v / op.c
		}
		op.x.AccumulateGrad(contrib)
	}
	return tensor.Dispatch(op, op.x)
}

// Inputs returns [x].
func (op *DivOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.x} }

// Name returns "div".
func (op *DivOp) Name() string { return "div" }
