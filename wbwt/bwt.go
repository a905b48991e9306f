// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

import "github.com/Salnika/quick-note/internal/sais"

// bwtForward computes the cyclic Burrows-Wheeler transform of id array x.
// x must end with the unique sentinel value 0 and every other value must
// be in [1, alphabetSize). Because the sentinel is unique and smallest,
// suffix order over x coincides exactly with cyclic rotation order, so a
// single suffix array of x (rather than the duplicated-string reduction a
// sentinel-less byte BWT needs) gives the sorted rotation table directly.
func bwtForward(x []uint32, alphabetSize int) (l []uint32, primaryIndex int) {
	n := len(x)
	if n == 0 {
		return nil, 0
	}
	if n == 1 {
		return []uint32{x[0]}, 0
	}

	sa := make([]int, n)
	sais.Compute(x, sa, alphabetSize)

	l = make([]uint32, n)
	for i, row := range sa {
		if row == 0 {
			l[i] = x[n-1]
			primaryIndex = i
		} else {
			l[i] = x[row-1]
		}
	}
	return l, primaryIndex
}

// bwtInverse reconstructs the id array from (l, primaryIndex, alphabetSize)
// via LF-mapping, the exact inverse of bwtForward.
func bwtInverse(l []uint32, primaryIndex int, alphabetSize int) []uint32 {
	n := len(l)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []uint32{l[0]}
	}

	starts := make([]int, alphabetSize)
	for _, v := range l {
		if int(v) >= alphabetSize {
			panicCorrupt("bwt symbol %d exceeds alphabet size %d", v, alphabetSize)
		}
		starts[v]++
	}
	sum := 0
	for i, c := range starts {
		starts[i] = sum
		sum += c
	}

	// lf[i] is the row of the rotation that starts one position before
	// row i's rotation, so following it walks the ids backward.
	lf := make([]int, n)
	occ := make([]int, alphabetSize)
	for i, v := range l {
		lf[i] = starts[v] + occ[v]
		occ[v]++
	}

	out := make([]uint32, n)
	row := primaryIndex
	for k := n - 1; k >= 0; k-- {
		out[k] = l[row]
		row = lf[row]
	}
	return out
}
