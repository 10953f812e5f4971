// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/loss"
	"github.com/helix-ml/helix/nn"
	"github.com/helix-ml/helix/optim"
	"github.com/helix-ml/helix/tensor"
)

// TestArenaLifecycle exercises the full forward -> loss -> backward ->
// optimizer.step -> module.zero_grad -> arena.clear cycle: afterward
// the arena is empty and parameters retain updated data and zeroed
// gradients.
func TestArenaLifecycle(t *testing.T) {
	lin := nn.NewLinear(2, 1)
	opt := optim.NewSGD(lin.Parameters(), 0.1)

	g := graph.New()
	x, err := tensor.NewLeaf(tensor.Shape{2, 2}, []float32{1, 2, 3, 4}, false)
	require.NoError(t, err)
	target, err := tensor.NewLeaf(tensor.Shape{2, 1}, []float32{0, 0}, false)
	require.NoError(t, err)

	pred, err := lin.Forward(g, x)
	require.NoError(t, err)
	require.Greater(t, g.Len(), 0)

	l, err := loss.MSE(g, pred, target)
	require.NoError(t, err)
	require.NoError(t, l.Backward())

	opt.Step()
	lin.ZeroGrad()
	g.Clear()

	require.Equal(t, 0, g.Len())
	require.Equal(t, []float32{0, 0}, lin.Weight().Grad())
	require.Equal(t, []float32{0}, lin.Bias().Grad())
	// data was updated in place by the optimizer and survives the clear.
	require.NotEqual(t, []float32{0, 0}, lin.Weight().Data())
}

func TestArenaDOTRendersEdgesForLiveIntermediates(t *testing.T) {
	g := graph.New()
	a, err := tensor.NewLeaf(tensor.Shape{2}, []float32{1, 2}, true)
	require.NoError(t, err)
	b, err := tensor.NewLeaf(tensor.Shape{2}, []float32{3, 4}, true)
	require.NoError(t, err)

	_, err = loss.MSE(g, a, b)
	require.NoError(t, err)

	dot := g.DOT()
	require.True(t, strings.Contains(dot, "digraph"))
	require.True(t, strings.Contains(dot, "->"))
}
