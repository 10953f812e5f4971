// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph implements the process-wide arena that owns every
// intermediate tensor and operation node produced while a computation
// graph is being built.
//
// A Tensor never owns its creator and an Operation never owns its
// inputs (package tensor); the arena is the single place ownership
// actually lives for anything that is not a leaf. Clearing the arena
// releases a whole forward+backward+optimizer window's intermediates
// in one step, breaking the natural tensor-knows-creator /
// creator-knows-input cycle.
package graph

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/helix-ml/helix/tensor"
)

// Arena owns the non-leaf tensors and operation nodes produced since
// the last Clear. The design permits multiple independent arenas (for
// example one per training goroutine); a single instance conceptually
// process-wide is used per training loop in this repository.
type Arena struct {
	tensors []*tensor.Tensor
	ops     []tensor.Operation
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{}
}

// AddTensor registers a non-leaf tensor as owned by the arena. Every
// kernel that produces a graph-tracked result calls this once for its
// output.
func (a *Arena) AddTensor(t *tensor.Tensor) {
	a.tensors = append(a.tensors, t)
}

// AddOp registers an operation node as owned by the arena. Every
// kernel that produces a graph-tracked result calls this once for the
// node it constructs.
func (a *Arena) AddOp(op tensor.Operation) {
	a.ops = append(a.ops, op)
}

// Len reports how many intermediate tensors are currently held.
func (a *Arena) Len() int {
	return len(a.tensors)
}

// Clear drops every tensor and operation registered since the last
// Clear. It must be called exactly once per training iteration, after
// the optimizer step — gradients live on parameter leaves outside the
// arena, so clearing intermediates never loses them, but clearing
// before the optimizer step would sever the gradient chain mid-walk.
func (a *Arena) Clear() {
	a.tensors = nil
	a.ops = nil
}

// DOT renders the currently held intermediates as a directed graph in
// Graphviz DOT format, for offline debugging/visualization. It is
// never on the hot path of forward, backward, or the optimizer step.
func (a *Arena) DOT() string {
	g := dot.NewGraph(dot.Directed)
	ids := make(map[*tensor.Tensor]dot.Node, len(a.tensors))

	nodeFor := func(t *tensor.Tensor) dot.Node {
		if n, ok := ids[t]; ok {
			return n
		}
		n := g.Node(fmt.Sprintf("t%p", t)).Label(fmt.Sprintf("%v", t.Shape()))
		ids[t] = n
		return n
	}

	for _, op := range a.ops {
		var out *tensor.Tensor
		for _, t := range a.tensors {
			if t.Creator() == op {
				out = t
				break
			}
		}
		if out == nil {
			continue
		}
		dst := nodeFor(out)
		for _, in := range op.Inputs() {
			src := nodeFor(in)
			g.Edge(src, dst, op.Name())
		}
	}
	return g.String()
}
