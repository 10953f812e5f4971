// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/tensor"
)

// Sequential threads a tensor through an ordered list of sub-modules,
// concatenating their parameter lists and dispatching ZeroGrad to each.
type Sequential struct {
	modules []Module
}

// NewSequential constructs a Sequential container from modules, in
// forward order.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward threads input through each sub-module in order, returning
// the last module's output or the first error encountered.
func (s *Sequential) Forward(g *graph.Arena, input *tensor.Tensor) (*tensor.Tensor, error) {
	out := input
	for _, m := range s.modules {
		var err error
		out, err = m.Forward(g, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Parameters returns the concatenation of every sub-module's
// parameter list, in module order.
func (s *Sequential) Parameters() []*tensor.Tensor {
	var params []*tensor.Tensor
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// ZeroGrad dispatches ZeroGrad to every sub-module.
func (s *Sequential) ZeroGrad() {
	for _, m := range s.modules {
		m.ZeroGrad()
	}
}

// Name returns "sequential".
func (s *Sequential) Name() string { return "sequential" }

// Len returns the number of sub-modules.
func (s *Sequential) Len() int { return len(s.modules) }

// At returns the sub-module at index, panicking if out of bounds.
func (s *Sequential) At(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("nn: Sequential.At index out of bounds")
	}
	return s.modules[index]
}
