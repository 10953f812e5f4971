// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helix-ml/helix/graph"
	"github.com/helix-ml/helix/loss"
	"github.com/helix-ml/helix/nn"
	"github.com/helix-ml/helix/optim"
	"github.com/helix-ml/helix/tensor"
)

func floatEqual(t *testing.T, got, want, eps float32) {
	t.Helper()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > eps {
		t.Errorf("got %v, want %v (tolerance %v)", got, want, eps)
	}
}

// TestSingleLinearOneGradientDescentStep walks a single linear layer
// through one forward/backward pass using the composite mse = sub ->
// pow(2) -> mean kernel chain, and asserts the gradients that
// composition actually produces.
func TestSingleLinearOneGradientDescentStep(t *testing.T) {
	x, err := tensor.NewLeaf(tensor.Shape{2, 2}, []float32{1, 2, 3, 4}, false)
	require.NoError(t, err)
	target, err := tensor.NewLeaf(tensor.Shape{2, 1}, []float32{0, 0}, false)
	require.NoError(t, err)

	lin := nn.NewLinear(2, 1)
	// Override the He-initialized weight with the scenario's literal
	// starting weight/bias.
	copy(lin.Weight().Data(), []float32{0.5, -0.5})
	copy(lin.Bias().Data(), []float32{0})

	g := graph.New()
	pred, err := lin.Forward(g, x)
	require.NoError(t, err)
	require.Equal(t, []float32{-0.5, -0.5}, pred.Data())

	l, err := loss.MSE(g, pred, target)
	require.NoError(t, err)
	floatEqual(t, l.Data()[0], 0.25, 1e-6)

	require.NoError(t, l.Backward())

	// d(mean((pred-target)^2))/dpred = 2*(pred-target)/n = 2*(-0.5)/2 = -0.5 for both rows
	// dpred/dweight = x^T; weight.grad = x^T @ predGrad
	wGrad := lin.Weight().Grad()
	require.Len(t, wGrad, 2)
	floatEqual(t, wGrad[0], -2.0, 1e-5)
	floatEqual(t, wGrad[1], -3.0, 1e-5)

	bGrad := lin.Bias().Grad()
	floatEqual(t, bGrad[0], -1.0, 1e-5)
}

func TestSequentialThreadsModulesInOrder(t *testing.T) {
	model := nn.NewSequential(
		nn.NewLinear(2, 3),
		nn.NewReLU(),
		nn.NewLinear(3, 1),
	)
	require.Equal(t, 4, len(model.Parameters())) // weight+bias per Linear, two Linears

	g := graph.New()
	x, err := tensor.NewLeaf(tensor.Shape{1, 2}, []float32{1, -1}, false)
	require.NoError(t, err)
	out, err := model.Forward(g, x)
	require.NoError(t, err)
	require.Equal(t, tensor.Shape{1, 1}, out.Shape())
}

func TestZeroGradThenStepThenZeroGradLeavesGradsZero(t *testing.T) {
	lin := nn.NewLinear(2, 1)
	opt := optim.NewSGD(lin.Parameters(), 0.1)
	lin.ZeroGrad()

	g := graph.New()
	x, err := tensor.NewLeaf(tensor.Shape{1, 2}, []float32{1, 2}, false)
	require.NoError(t, err)
	target, err := tensor.NewLeaf(tensor.Shape{1, 1}, []float32{1}, false)
	require.NoError(t, err)
	pred, err := lin.Forward(g, x)
	require.NoError(t, err)
	l, err := loss.MSE(g, pred, target)
	require.NoError(t, err)
	require.NoError(t, l.Backward())
	opt.Step()
	lin.ZeroGrad()

	require.Equal(t, []float32{0, 0}, lin.Weight().Grad())
	require.Equal(t, []float32{0}, lin.Bias().Grad())
}

func TestDisconnectedInputGradientUnchanged(t *testing.T) {
	g := graph.New()
	connected, err := tensor.NewLeaf(tensor.Shape{1}, []float32{2}, true)
	require.NoError(t, err)
	disconnected, err := tensor.NewLeaf(tensor.Shape{1}, []float32{9}, true)
	require.NoError(t, err)

	l, err := loss.MSE(g, connected, must(tensor.NewLeaf(tensor.Shape{1}, []float32{0}, false)))
	require.NoError(t, err)
	require.NoError(t, l.Backward())

	require.Nil(t, disconnected.Grad())
}

func must(t *tensor.Tensor, err error) *tensor.Tensor {
	if err != nil {
		panic(err)
	}
	return t
}
