// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helix-ml/helix/optim"
	"github.com/helix-ml/helix/tensor"
)

func floatEqual(a, b, eps float32) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < eps
}

func TestSGDSkipsParamsWithNoGradient(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{1}, []float32{2.0}, true)
	require.NoError(t, err)
	opt := optim.NewSGD([]*tensor.Tensor{p}, 0.1)
	opt.Step()
	require.Equal(t, []float32{2.0}, p.Data())
}

func TestSGDSimpleUpdate(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{1}, []float32{2.0}, true)
	require.NoError(t, err)
	p.AccumulateGrad([]float32{1.0})

	opt := optim.NewSGD([]*tensor.Tensor{p}, 0.1)
	opt.Step()

	require.True(t, floatEqual(p.Data()[0], 1.9, 1e-6))
}

func TestSGDSkipsNoRequiresGrad(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{1}, []float32{2.0}, false)
	require.NoError(t, err)
	opt := optim.NewSGD([]*tensor.Tensor{p}, 0.1)
	opt.Step()
	require.Equal(t, []float32{2.0}, p.Data())
}

// TestAdamStepDeterminism starts w at 1.0 and applies a fixed gradient
// of 0.1 for two steps with default hyperparameters, checking the
// update against a hand-derived value to 1e-7.
func TestAdamStepDeterminism(t *testing.T) {
	w, err := tensor.NewLeaf(tensor.Shape{1}, []float32{1.0}, true)
	require.NoError(t, err)

	opt := optim.NewAdam([]*tensor.Tensor{w}, optim.AdamConfig{})

	const beta1, beta2, eps, lr = 0.9, 0.999, 1e-8, 1e-3
	g := float32(0.1)

	// Step 1 (hand-derived directly from the Adam update formula).
	w.AccumulateGrad([]float32{g})
	opt.Step()

	m1 := (1 - beta1) * g
	v1 := (1 - beta2) * g * g
	mHat1 := m1 / (1 - beta1)
	vHat1 := v1 / (1 - beta2)
	want1 := float32(1.0) - lr*mHat1/(float32(math.Sqrt(float64(vHat1)))+eps)

	require.True(t, floatEqual(w.Data()[0], want1, 1e-7))

	// Step 2: the same fixed gradient is applied again.
	w.ZeroGrad()
	w.AccumulateGrad([]float32{g})
	opt.Step()

	m2 := beta1*m1 + (1-beta1)*g
	v2 := beta2*v1 + (1-beta2)*g*g
	mHat2 := m2 / (1 - beta1*beta1)
	vHat2 := v2 / (1 - beta2*beta2)
	want2 := want1 - lr*mHat2/(float32(math.Sqrt(float64(vHat2)))+eps)

	require.True(t, floatEqual(w.Data()[0], want2, 1e-7))
}

func TestAdamZeroStateResetsTimestep(t *testing.T) {
	w, err := tensor.NewLeaf(tensor.Shape{1}, []float32{1.0}, true)
	require.NoError(t, err)
	opt := optim.NewAdam([]*tensor.Tensor{w}, optim.AdamConfig{})

	w.AccumulateGrad([]float32{0.1})
	opt.Step()
	opt.ZeroState()

	// After ZeroState, a step of opt from the same starting value with
	// the same gradient should reproduce the very first step's update
	// (t resets to 0 and the moment buffers are cleared).
	copy(w.Data(), []float32{1.0})
	w.ZeroGrad()
	w.AccumulateGrad([]float32{0.1})
	opt.Step()

	w2, err := tensor.NewLeaf(tensor.Shape{1}, []float32{1.0}, true)
	require.NoError(t, err)
	opt2 := optim.NewAdam([]*tensor.Tensor{w2}, optim.AdamConfig{})
	w2.AccumulateGrad([]float32{0.1})
	opt2.Step()

	require.True(t, floatEqual(w2.Data()[0], w.Data()[0], 1e-9))
}

func TestAdamGradientClipping(t *testing.T) {
	w, err := tensor.NewLeaf(tensor.Shape{1}, []float32{0.0}, true)
	require.NoError(t, err)
	opt := optim.NewAdam([]*tensor.Tensor{w}, optim.AdamConfig{})

	w2, err := tensor.NewLeaf(tensor.Shape{1}, []float32{0.0}, true)
	require.NoError(t, err)
	opt2 := optim.NewAdam([]*tensor.Tensor{w2}, optim.AdamConfig{})

	w.AccumulateGrad([]float32{50.0})  // clipped to 1.0
	w2.AccumulateGrad([]float32{1.0}) // already at the clip bound
	opt.Step()
	opt2.Step()

	require.True(t, floatEqual(w.Data()[0], w2.Data()[0], 1e-7))
}
