// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// SubOp represents element-wise subtraction: output = a - b, with the
// rank-two/rank-one broadcast case supported.
type SubOp struct {
	a, b *tensor.Tensor
}

// Sub computes a - b and registers the result and its operation node
// with g.
func Sub(g *graph.Arena, a, b *tensor.Tensor) (*tensor.Tensor, error) {
	outShape, err := broadcastShape(a.Shape(), b.Shape(), "sub")
	if err != nil {
		return nil, err
	}
	n := outShape.Numel()
	data := make([]float32, n)
	ad, bd := a.Data(), b.Data()
	for i := 0; i < n; i++ {
		data[i] = elementAt(ad, a.Shape(), outShape, i) - elementAt(bd, b.Shape(), outShape, i)
	}

	requiresGrad := a.RequiresGrad() || b.RequiresGrad()
	op := &SubOp{a: a, b: b}
	out := tensor.NewIntermediate(outShape, data, requiresGrad, op)
	if requiresGrad {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward: ∂(a-b)/∂a = +1, ∂(a-b)/∂b = -1, with the broadcast-sum
// rule applied to whichever input was the replicated rank-one operand.
func (op *SubOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	if op.a.RequiresGrad() {
		op.a.AccumulateGrad(reduceToShape(upstream, output.Shape(), op.a.Shape()))
	}
	if op.b.RequiresGrad() {
		negated := make([]float32, len(upstream))
		for i, v := range upstream {
			negated[i] = -v
		}
		op.b.AccumulateGrad(reduceToShape(negated, output.Shape(), op.b.Shape()))
	}
	if err := tensor.Dispatch(op, op.a); err != nil {
		return err
	}
	return tensor.Dispatch(op, op.b)
}

// Inputs returns [a, b].
func (op *SubOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }

// Name returns "sub".
func (op *SubOp) Name() string { return "sub" }
