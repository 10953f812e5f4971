// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops implements the forward and backward kernels: the
// element-wise binary ops (add, sub, mul), scalar division, power,
// matrix multiplication, mean reduction, and the activations. Each kernel
// constructs both the output tensor and the tensor.Operation node that
// knows how to distribute an upstream gradient back to its inputs, and
// registers both with a graph.Arena.
package ops

import "github.com/helix-ml/helix/tensor"

// reduceToShape sums grad (shaped like a broadcast b-to-a replication)
// down to target: a rank-one operand replicated along a rank-two
// tensor's batch dimension has its backward contribution summed over
// that dimension.
//
// grad is assumed to have the batch-major shape [rows, cols] and target
// the rank-one shape [cols]. Callers invoke this for every input,
// whether or not it was broadcast; a same-shape grad is returned
// untouched.
func reduceToShape(grad []float32, gradShape, target tensor.Shape) []float32 {
	if gradShape.Equal(target) {
		return grad
	}
	cols := target.Numel()
	rows := gradShape.Numel() / cols
	out := make([]float32, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c] += grad[r*cols+c]
		}
	}
	return out
}

// broadcastShape resolves the output shape for a binary op given two
// input shapes, applying the one broadcasting rule supported here:
// rank-two combined with a matching rank-one. Any other mismatch is
// reported to the caller as ShapeMismatch.
func broadcastShape(a, b tensor.Shape, kernel string) (tensor.Shape, error) {
	if a.Equal(b) {
		return a, nil
	}
	if tensor.BroadcastBias(a, b) {
		return a, nil
	}
	if tensor.BroadcastBias(b, a) {
		return b, nil
	}
	return nil, &tensor.Error{
		Kind: tensor.ShapeMismatch,
		Msg:  kernelShapeMsg(kernel, a, b),
	}
}

func kernelShapeMsg(kernel string, a, b tensor.Shape) string {
	return kernel + ": incompatible shapes " + a.String() + " and " + b.String()
}

// elementAt returns data[i] for a same-shape operand, or the
// broadcast-replicated value data[i % len(data)] for a rank-one
// operand being combined with a rank-two tensor along its last
// dimension.
func elementAt(data []float32, shape, outShape tensor.Shape, i int) float32 {
	if shape.Equal(outShape) {
		return data[i]
	}
	cols := shape.Numel()
	return data[i%cols]
}
