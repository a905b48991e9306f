// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

import (
	"reflect"
	"testing"

	"github.com/Salnika/quick-note/internal/testutil"
)

func TestBWTRoundTripDegenerate(t *testing.T) {
	cases := []struct {
		x     []uint32
		alpha int
	}{
		{nil, 1},
		{[]uint32{0}, 1},
	}
	for i, c := range cases {
		l, p := bwtForward(c.x, c.alpha)
		back := bwtInverse(l, p, c.alpha)
		if !reflect.DeepEqual(back, c.x) {
			t.Errorf("case %d: got %v, want %v", i, back, c.x)
		}
	}
}

func TestBWTRoundTripSmall(t *testing.T) {
	// Sentinel id 0 unique and last; other ids are 1..alpha-1.
	vectors := []struct {
		x     []uint32
		alpha int
	}{
		{[]uint32{1, 0}, 2},
		{[]uint32{1, 2, 1, 2, 0}, 3},
		{[]uint32{3, 1, 4, 1, 5, 9, 2, 6, 0}, 10},
		{[]uint32{2, 2, 2, 2, 2, 0}, 3},
	}
	for i, v := range vectors {
		l, p := bwtForward(v.x, v.alpha)
		if len(l) != len(v.x) {
			t.Fatalf("case %d: l length = %d, want %d", i, len(l), len(v.x))
		}
		back := bwtInverse(l, p, v.alpha)
		if !reflect.DeepEqual(back, v.x) {
			t.Errorf("case %d: got %v, want %v", i, back, v.x)
		}
	}
}

func TestBWTRoundTripRandom(t *testing.T) {
	rng := testutil.NewRand(7)
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(300) + 1
		alpha := rng.Intn(20) + 2
		x := make([]uint32, n)
		for i := 0; i < n-1; i++ {
			x[i] = uint32(rng.Intn(alpha-1)) + 1
		}
		x[n-1] = 0

		l, p := bwtForward(x, alpha)
		back := bwtInverse(l, p, alpha)
		if !reflect.DeepEqual(back, x) {
			t.Fatalf("trial %d: got %v, want %v", trial, back, x)
		}
	}
}
