// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// AddOp represents element-wise addition: output = a + b, with the
// rank-two/rank-one broadcast case supported.
type AddOp struct {
	a, b *tensor.Tensor
}

// Add computes a + b and registers the result and its operation node
// with g.
func Add(g *graph.Arena, a, b *tensor.Tensor) (*tensor.Tensor, error) {
	outShape, err := broadcastShape(a.Shape(), b.Shape(), "add")
	if err != nil {
		return nil, err
	}
	n := outShape.Numel()
	data := make([]float32, n)
	ad, bd := a.Data(), b.Data()
	for i := 0; i < n; i++ {
		data[i] = elementAt(ad, a.Shape(), outShape, i) + elementAt(bd, b.Shape(), outShape, i)
	}

	requiresGrad := a.RequiresGrad() || b.RequiresGrad()
	op := &AddOp{a: a, b: b}
	out := tensor.NewIntermediate(outShape, data, requiresGrad, op)
	if requiresGrad {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward distributes the upstream gradient unchanged to both inputs
// (∂(a+b)/∂a = ∂(a+b)/∂b = 1), summing across the broadcast dimension
// for whichever input was the replicated rank-one operand.
func (op *AddOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	if op.a.RequiresGrad() {
		op.a.AccumulateGrad(reduceToShape(upstream, output.Shape(), op.a.Shape()))
	}
	if op.b.RequiresGrad() {
		op.b.AccumulateGrad(reduceToShape(upstream, output.Shape(), op.b.Shape()))
	}
	if err := tensor.Dispatch(op, op.a); err != nil {
		return err
	}
	return tensor.Dispatch(op, op.b)
}

// Inputs returns [a, b].
func (op *AddOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }

// Name returns "add".
func (op *AddOp) Name() string { return "add" }
