// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"math"

	"github.com/helix-ml/helix/tensor"
)

// Default Adam hyperparameters.
const (
	DefaultLR    = 1e-3
	DefaultBeta1 = 0.9
	DefaultBeta2 = 0.999
	DefaultEps   = 1e-8

	gradClip = 1.0
)

// AdamConfig holds Adam's hyperparameters. A zero value field falls
// back to the package default in NewAdam.
type AdamConfig struct {
	LR    float32
	Beta1 float32
	Beta2 float32
	Eps   float32
}

func (c AdamConfig) withDefaults() AdamConfig {
	if c.LR == 0 {
		c.LR = DefaultLR
	}
	if c.Beta1 == 0 {
		c.Beta1 = DefaultBeta1
	}
	if c.Beta2 == 0 {
		c.Beta2 = DefaultBeta2
	}
	if c.Eps == 0 {
		c.Eps = DefaultEps
	}
	return c
}

// Adam implements adaptive moment estimation: per parameter
// first/second moment buffers, bias correction, and a shared timestep
// incremented once per Step call.
type Adam struct {
	params []*tensor.Tensor
	cfg    AdamConfig
	t      int
	m, v   map[*tensor.Tensor][]float32
}

// NewAdam constructs an Adam optimizer over params with cfg (zero
// fields fall back to the package defaults).
func NewAdam(params []*tensor.Tensor, cfg AdamConfig) *Adam {
	return &Adam{
		params: params,
		cfg:    cfg.withDefaults(),
		m:      make(map[*tensor.Tensor][]float32),
		v:      make(map[*tensor.Tensor][]float32),
	}
}

// Step clips each gradient to [-1, 1], increments the timestep, and
// applies the bias-corrected Adam update to every eligible parameter.
func (a *Adam) Step() {
	a.t++
	beta1, beta2, eps, lr := a.cfg.Beta1, a.cfg.Beta2, a.cfg.Eps, a.cfg.LR
	bc1 := 1 - float32(math.Pow(float64(beta1), float64(a.t)))
	bc2 := 1 - float32(math.Pow(float64(beta2), float64(a.t)))

	for _, p := range a.params {
		if !eligible(p) {
			continue
		}
		grad := p.Grad()
		m, ok := a.m[p]
		if !ok {
			m = make([]float32, len(grad))
			a.m[p] = m
		}
		v, ok := a.v[p]
		if !ok {
			v = make([]float32, len(grad))
			a.v[p] = v
		}
		data := p.Data()

		for i, g := range grad {
			g = clip(g, gradClip)

			m[i] = beta1*m[i] + (1-beta1)*g
			v[i] = beta2*v[i] + (1-beta2)*g*g

			mHat := m[i] / bc1
			vHat := v[i] / bc2

			data[i] -= lr * mHat / (float32(math.Sqrt(float64(vHat))) + eps)
		}
	}
}

// LR returns the learning rate.
func (a *Adam) LR() float32 { return a.cfg.LR }

// ZeroState clears the first/second moment buffers and resets the
// timestep to zero.
func (a *Adam) ZeroState() {
	a.t = 0
	a.m = make(map[*tensor.Tensor][]float32)
	a.v = make(map[*tensor.Tensor][]float32)
}
