// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// MulOp represents element-wise multiplication: output = a * b, with
// the rank-two/rank-one broadcast case supported.
type MulOp struct {
	a, b *tensor.Tensor
}

// Mul computes a * b and registers the result and its operation node
// with g.
func Mul(g *graph.Arena, a, b *tensor.Tensor) (*tensor.Tensor, error) {
	outShape, err := broadcastShape(a.Shape(), b.Shape(), "mul")
	if err != nil {
		return nil, err
	}
	n := outShape.Numel()
	data := make([]float32, n)
	ad, bd := a.Data(), b.Data()
	for i := 0; i < n; i++ {
		data[i] = elementAt(ad, a.Shape(), outShape, i) * elementAt(bd, b.Shape(), outShape, i)
	}

	requiresGrad := a.RequiresGrad() || b.RequiresGrad()
	op := &MulOp{a: a, b: b}
	out := tensor.NewIntermediate(outShape, data, requiresGrad, op)
	if requiresGrad {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward: ∂(a·b)/∂a = b, ∂(a·b)/∂b = a, each scaled by the upstream
// gradient, with the broadcast-sum rule applied where one operand was
// a replicated rank-one bias.
func (op *MulOp) Backward(output *tensor.Tensor) error {
	upstream := output.Grad()
	outShape := output.Shape()
	ad, bd := op.a.Data(), op.b.Data()

	if op.a.RequiresGrad() {
		contrib := make([]float32, len(upstream))
		for i := range contrib {
			contrib[i] = upstream[i] * elementAt(bd, op.b.Shape(), outShape, i)
		}
		op.a.AccumulateGrad(reduceToShape(contrib, outShape, op.a.Shape()))
	}
	if op.b.RequiresGrad() {
		contrib := make([]float32, len(upstream))
		for i := range contrib {
			contrib[i] = upstream[i] * elementAt(ad, op.a.Shape(), outShape, i)
		}
		op.b.AccumulateGrad(reduceToShape(contrib, outShape, op.b.Shape()))
	}
	if err := tensor.Dispatch(op, op.a); err != nil {
		return err
	}
	return tensor.Dispatch(op, op.b)
}

// Inputs returns [a, b].
func (op *MulOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }

// Name returns "mul".
func (op *MulOp) Name() string { return "mul" }
