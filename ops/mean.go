// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// MeanOp reduces any-shape tensor to a scalar equal to the arithmetic
// mean of its elements.
type MeanOp struct {
	x     *tensor.Tensor
	count int
}

// Mean computes the arithmetic mean of x's elements as a shape-[1]
// tensor, and registers the result and its operation node with g.
func Mean(g *graph.Arena, x *tensor.Tensor) (*tensor.Tensor, error) {
	xd := x.Data()
	var sum float32
	for _, v := range xd {
		sum += v
	}
	mean := sum / float32(len(xd))

	op := &MeanOp{x: x, count: len(xd)}
	out := tensor.NewIntermediate(tensor.Shape{1}, []float32{mean}, x.RequiresGrad(), op)
	if x.RequiresGrad() {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward: each input element receives upstream[0]/count added to
// its gradient.
func (op *MeanOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	if op.x.RequiresGrad() {
		share := upstream[0] / float32(op.count)
		contrib := make([]float32, op.count)
		for i := range contrib {
			contrib[i] = share
		}
		op.x.AccumulateGrad(contrib)
	}
	return tensor.Dispatch(op, op.x)
}

// Inputs returns [x].
func (op *MeanOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.x} }

// Name returns "mean".
func (op *MeanOp) Name() string { return "mean" }
