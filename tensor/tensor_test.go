// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helix-ml/helix/tensor"
)

func TestZeroGradIdempotent(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{2}, []float32{1, 2}, true)
	require.NoError(t, err)
	p.AccumulateGrad([]float32{1, 1})
	require.Equal(t, []float32{1, 1}, p.Grad())

	p.ZeroGrad()
	require.Equal(t, []float32{0, 0}, p.Grad())
	p.ZeroGrad()
	require.Equal(t, []float32{0, 0}, p.Grad())
}

func TestDetachNeverSharesStorage(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{2}, []float32{1, 2}, true)
	require.NoError(t, err)

	d := p.Detach()
	require.False(t, d.RequiresGrad())
	d.Data()[0] = 99
	require.Equal(t, float32(1), p.Data()[0], "detach must copy, never alias")
}

func TestBackwardRejectsNonScalarRoot(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{2}, []float32{1, 2}, true)
	require.NoError(t, err)
	err = p.Backward()
	require.Error(t, err)
	var e *tensor.Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, tensor.NonScalarBackwardRoot, e.Kind)
}

func TestBackwardRejectsLeafNotRequiringGrad(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{1}, []float32{1}, false)
	require.NoError(t, err)
	err = p.Backward()
	require.Error(t, err)
	require.True(t, errors.Is(err, tensor.ErrKind(tensor.BackwardOnLeafRequiringNoGrad)))
}

func TestBackwardSeedsGradientOfOne(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{1}, []float32{5}, true)
	require.NoError(t, err)
	require.NoError(t, p.Backward())
	require.Equal(t, []float32{1.0}, p.Grad())
}

func TestSetCreatorPanicsWithoutRequiresGrad(t *testing.T) {
	p, err := tensor.NewLeaf(tensor.Shape{1}, []float32{1}, false)
	require.NoError(t, err)
	require.Panics(t, func() { p.SetCreator(nil) })
}
