// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"math"

	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// SigmoidOp represents the logistic sigmoid: output = 1/(1+e^-x),
// built in the same shape as ReLU.
type SigmoidOp struct {
	x      *tensor.Tensor
	output []float32 // cached forward output, needed by backward
}

// Sigmoid computes the logistic sigmoid element-wise and registers the
// result and its operation node with g.
func Sigmoid(g *graph.Arena, x *tensor.Tensor) (*tensor.Tensor, error) {
	xd := x.Data()
	data := make([]float32, len(xd))
	for i, v := range xd {
		data[i] = float32(1.0 / (1.0 + math.Exp(-float64(v))))
	}

	op := &SigmoidOp{x: x, output: data}
	out := tensor.NewIntermediate(x.Shape(), data, x.RequiresGrad(), op)
	if x.RequiresGrad() {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward: d(sigmoid(x))/dx = sigmoid(x)·(1-sigmoid(x)), scaled by the
// upstream gradient.
func (op *SigmoidOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	if op.x.RequiresGrad() {
		contrib := make([]float32, len(upstream))
		for i, s := range op.output {
			contrib[i] = upstream[i] * s * (1 - s)
		}
		op.x.AccumulateGrad(contrib)
	}
	return tensor.Dispatch(op, op.x)
}

// Inputs returns [x].
func (op *SigmoidOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.x} }

// Name returns "sigmoid".
func (op *SigmoidOp) Name() string { return "sigmoid" }
