// Copyright 2025 Helix ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// Shape is an ordered sequence of positive dimension sizes. The number
// of elements a Shape describes is the product of its entries.
type Shape []int

// Numel returns the product of the shape's dimensions.
func (s Shape) Numel() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether two shapes have identical rank and dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// IsScalar reports whether the shape describes exactly one element,
// the only valid root shape for backward().
func (s Shape) IsScalar() bool {
	return s.Numel() == 1
}

// BroadcastBias reports whether b can be broadcast against a under the
// one broadcasting rule supported here: a is rank two and b is rank
// one with length equal to a's last (feature) dimension, so b is
// implicitly replicated along a's first (batch) dimension.
//
// Returns ok=false (not an error) when the shapes already match exactly
// — callers should treat "same shape" and "broadcastable" as distinct
// cases, trying an exact match first.
func BroadcastBias(a, b Shape) (ok bool) {
	return len(a) == 2 && len(b) == 1 && a[1] == b[0]
}
