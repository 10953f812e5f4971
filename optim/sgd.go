// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/helix-ml/helix/tensor"

// SGD implements plain gradient descent: data -= lr * grad, skipping
// any parameter that doesn't require grad or has no gradient yet.
type SGD struct {
	params []*tensor.Tensor
	lr     float32
}

// NewSGD constructs an SGD optimizer over params with learning rate
// lr.
func NewSGD(params []*tensor.Tensor, lr float32) *SGD {
	return &SGD{params: params, lr: lr}
}

// Step applies data -= lr * grad to every eligible parameter.
func (s *SGD) Step() {
	for _, p := range s.params {
		if !eligible(p) {
			continue
		}
		data, grad := p.Data(), p.Grad()
		for i := range data {
			data[i] -= s.lr * grad[i]
		}
	}
}

// LR returns the learning rate.
func (s *SGD) LR() float32 { return s.lr }
