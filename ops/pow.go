// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"math"

	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// PowOp represents an element-wise power: output[i] = x[i]^e.
type PowOp struct {
	x *tensor.Tensor
	e float32
}

// Pow computes x^e element-wise and registers the result and its
// operation node with g.
func Pow(g *graph.Arena, x *tensor.Tensor, e float32) (*tensor.Tensor, error) {
	xd := x.Data()
	data := make([]float32, len(xd))
	for i, v := range xd {
		data[i] = float32(math.Pow(float64(v), float64(e)))
	}

	op := &PowOp{x: x, e: e}
	out := tensor.NewIntermediate(x.Shape(), data, x.RequiresGrad(), op)
	if x.RequiresGrad() {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward: ∂(x^e)/∂x = e·x^(e-1), scaled by the upstream gradient
// element-wise.
func (op *PowOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	if op.x.RequiresGrad() {
		xd := op.x.Data()
		contrib := make([]float32, len(upstream))
		for i, v := range xd {
			local := op.e * float32(math.Pow(float64(v), float64(op.e-1)))
			contrib[i] = local * upstream[i]
		}
		op.x.AccumulateGrad(contrib)
	}
	return tensor.Dispatch(op, op.x)
}

// Inputs returns [x].
func (op *PowOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.x} }

// Name returns "pow".
func (op *PowOp) Name() string { return "pow" }
