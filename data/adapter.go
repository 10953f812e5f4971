// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data defines the external data-adapter contract: a per-epoch
// supply of feature and target leaf tensors. The tabular-data ingestion
// pipeline itself (CSV parsing, per-column normalization/
// denormalization) is out of scope here; this package is the seam a
// real ingestion pipeline would implement against, plus a small
// in-memory adapter.
package data

import "github.com/helix-ml/helix/tensor"

// Adapter supplies one epoch's worth of training data: x of shape
// [N, F] and target of shape [N, T]. RequiresGrad is true on x and
// false on target by convention; only x's flag affects the backward
// walk.
type Adapter interface {
	// Epoch returns the feature and target tensors for one training
	// iteration.
	Epoch() (x, target *tensor.Tensor, err error)
}

// InMemory is the simplest Adapter: it holds a fixed feature/target
// pair in memory and returns fresh leaf tensors (copies of the backing
// arrays) on every Epoch call, so repeated epochs never alias state
// across iterations.
type InMemory struct {
	x      tensor.Shape
	xData  []float32
	target tensor.Shape
	tData  []float32
}

// NewInMemory constructs an Adapter over a fixed [N, F] feature matrix
// and [N, T] target matrix, both supplied as flat row-major data.
func NewInMemory(xShape tensor.Shape, xData []float32, targetShape tensor.Shape, targetData []float32) *InMemory {
	return &InMemory{x: xShape, xData: xData, target: targetShape, tData: targetData}
}

// Epoch returns fresh leaf tensors for x (requires grad) and target
// (does not).
func (a *InMemory) Epoch() (x, target *tensor.Tensor, err error) {
	x, err = tensor.NewLeaf(a.x, a.xData, true)
	if err != nil {
		return nil, nil, err
	}
	target, err = tensor.NewLeaf(a.target, a.tData, false)
	if err != nil {
		return nil, nil, err
	}
	return x, target, nil
}
