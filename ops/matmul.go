// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// MatMulOp represents matrix multiplication: output = a × b, a m×k, b
// k×n, output m×n.
type MatMulOp struct {
	a, b *tensor.Tensor
	m, k, n int
}

// MatMul multiplies a (m×k) by b (k×n) using gonum's dense contraction
// and registers the result and its operation node with g. Both inputs
// must be rank two with matching inner dimensions; anything else is a
// fatal ShapeMismatch.
func MatMul(g *graph.Arena, a, b *tensor.Tensor) (*tensor.Tensor, error) {
	as, bs := a.Shape(), b.Shape()
	if len(as) != 2 || len(bs) != 2 || as[1] != bs[0] {
		return nil, &tensor.Error{Kind: tensor.ShapeMismatch, Msg: "matmul: incompatible shapes " + as.String() + " and " + bs.String()}
	}
	m, k, n := as[0], as[1], bs[1]

	ad := toFloat64(a.Data())
	bd := toFloat64(b.Data())
	am := mat.NewDense(m, k, ad)
	bm := mat.NewDense(k, n, bd)
	var outm mat.Dense
	outm.Mul(am, bm)

	data := toFloat32(outm.RawMatrix().Data)

	requiresGrad := a.RequiresGrad() || b.RequiresGrad()
	op := &MatMulOp{a: a, b: b, m: m, k: k, n: n}
	out := tensor.NewIntermediate(tensor.Shape{m, n}, data, requiresGrad, op)
	if requiresGrad {
		g.AddTensor(out)
		g.AddOp(op)
	}
	return out, nil
}

// Backward: ∂/∂a = upstream × bᵀ (m×k), ∂/∂b = aᵀ × upstream (k×n).
func (op *MatMulOp) Backward(output *tensor.Tensor) error {
	upstream := mat.NewDense(op.m, op.n, toFloat64(output.Grad()))

	if op.a.RequiresGrad() {
		bm := mat.NewDense(op.k, op.n, toFloat64(op.b.Data()))
		var gradA mat.Dense
		gradA.Mul(upstream, bm.T())
		op.a.AccumulateGrad(toFloat32(gradA.RawMatrix().Data))
	}
	if op.b.RequiresGrad() {
		am := mat.NewDense(op.m, op.k, toFloat64(op.a.Data()))
		var gradB mat.Dense
		gradB.Mul(am.T(), upstream)
		op.b.AccumulateGrad(toFloat32(gradB.RawMatrix().Data))
	}
	if err := tensor.Dispatch(op, op.a); err != nil {
		return err
	}
	return tensor.Dispatch(op, op.b)
}

// Inputs returns [a, b].
func (op *MatMulOp) Inputs() []*tensor.Tensor { return []*tensor.Tensor{op.a, op.b} }

// Name returns "matmul".
func (op *MatMulOp) Name() string { return "matmul" }

func toFloat64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

func toFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
