// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"math"

	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// TanhOp represents the hyperbolic tangent activation, built in the
// same shape as ReLU.
type TanhOp struct {
	x      *tensor.Tensor
	output []float32 // cached forward output, needed by backward
}

// Tanh computes tanh(x) element-wise and registers the result and its
// operation node with g.
func Tanh(g *graph.Arena, x *tensor.Tensor) (*tensor.Tensor, error) {
	xd := x.Data()
	data := make([]float32, len(xd))
	for i, v := range xd {
		data[i] = float32(math.Tanh(float64(v)))
	}

	op := &TanhOp{x: x, output: data}
	out := tensor.NewIntermediate(x.Shape(), data, x.RequiresGrad(), op)
	if x.RequiresGrad() {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward: d(tanh(x))/dx = 1 - tanh(x)^2, scaled by the upstream
// gradient.
func (op *TanhOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	if op.x.RequiresGrad() {
		contrib := make([]float32, len(upstream))
		for i, t := range op.output {
			contrib[i] = upstream[i] * (1 - t*t)
		}
		op.x.AccumulateGrad(contrib)
	}
	return tensor.Dispatch(op, op.x)
}

// Inputs returns [x].
func (op *TanhOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.x} }

// Name returns "tanh".
func (op *TanhOp) Name() string { return "tanh" }
