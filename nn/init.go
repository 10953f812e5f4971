// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math"
	"math/rand"

	"github.com/helix-ml/helix/tensor"
)

// heInit returns a weight tensor of shape with values drawn from a
// zero-mean uniform distribution scaled by sqrt(2/fanIn), matched to
// ReLU networks (He initialization).
func heInit(shape tensor.Shape, fanIn int) *tensor.Tensor {
	bound := math.Sqrt(2.0 / float64(fanIn))
	data := make([]float32, shape.Numel())
	for i := range data {
		//nolint:gosec // weight init, not security-sensitive
		data[i] = float32((rand.Float64()*2.0 - 1.0) * bound)
	}
	t, _ := tensor.NewLeaf(shape, data, true)
	return t
}

// zerosLeaf returns a leaf tensor of shape filled with zeros.
func zerosLeaf(shape tensor.Shape, requiresGrad bool) *tensor.Tensor {
	return tensor.NewZeros(shape, requiresGrad)
}
