// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/ops"
	"github.com/helix-ml/helix/tensor"
)

// Linear owns weight ([in, out]) and bias ([out]) leaf parameters and
// computes matmul(input, weight) + bias with the bias broadcast along
// the batch dimension.
type Linear struct {
	in, out int
	weight  *tensor.Tensor
	bias    *tensor.Tensor
}

// NewLinear constructs a Linear layer. Weights are He-initialized
// scaled by sqrt(2/in); bias starts at zero.
func NewLinear(in, out int) *Linear {
	return &Linear{
		in:     in,
		out:    out,
		weight: heInit(tensor.Shape{in, out}, in),
		bias:   zerosLeaf(tensor.Shape{out}, true),
	}
}

// Forward computes matmul(input, weight) + bias.
func (l *Linear) Forward(g *graph.Arena, input *tensor.Tensor) (*tensor.Tensor, error) {
	h, err := ops.MatMul(g, input, l.weight)
	if err != nil {
		return nil, err
	}
	return ops.Add(g, h, l.bias)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*tensor.Tensor {
	return []*tensor.Tensor{l.weight, l.bias}
}

// ZeroGrad zeroes weight and bias gradients.
func (l *Linear) ZeroGrad() {
	l.weight.ZeroGrad()
	l.bias.ZeroGrad()
}

// Name returns "linear".
func (l *Linear) Name() string { return "linear" }

// Weight returns the weight parameter.
func (l *Linear) Weight() *tensor.Tensor { return l.weight }

// Bias returns the bias parameter.
func (l *Linear) Bias() *tensor.Tensor { return l.bias }
