// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

// entropyMaxTotal is the rescale threshold. Keeping total strictly below
// 2^15 guarantees range*total (range up to 2^32) never overflows the
// 64-bit products the arithmetic coder computes.
const entropyMaxTotal = 1 << 15

// fenwickModel is a binary-indexed tree over a fixed-size symbol alphabet,
// tracking per-symbol frequency and supporting prefix sums, point updates,
// and cumulative-value search in O(log S). One instance is constructed per
// compress/decompress call and mutated in lock-step by encoder and decoder;
// it is never cached across calls.
type fenwickModel struct {
	size  int // alphabet size S; symbols are indexed 1..S
	tree  []uint32
	freq  []uint32
	total uint32
}

func newFenwickModel(size int) *fenwickModel {
	m := &fenwickModel{
		size: size,
		tree: make([]uint32, size+1),
		freq: make([]uint32, size+1),
	}
	m.reset(1)
	return m
}

// reset sets every freq[i] = v and rebuilds the tree and total from scratch.
func (m *fenwickModel) reset(v uint32) {
	vals := make([]uint32, m.size+1)
	for i := 1; i <= m.size; i++ {
		vals[i] = v
	}
	m.rebuildFrom(vals)
}

// rebuildFrom zeroes the tree and re-inserts each of vals[1..size],
// recomputing total. Both reset (uniform prior) and rescale (halved
// frequencies) funnel through this so the tree-construction logic lives in
// one place.
func (m *fenwickModel) rebuildFrom(vals []uint32) {
	for i := range m.tree {
		m.tree[i] = 0
	}
	for i := 1; i <= m.size; i++ {
		m.freq[i] = 0
	}
	m.total = 0
	for i := 1; i <= m.size; i++ {
		m.add(i, vals[i])
	}
}

// sum returns the prefix sum freq[1..i].
func (m *fenwickModel) sum(i int) uint32 {
	var s uint32
	for ; i > 0; i -= i & (-i) {
		s += m.tree[i]
	}
	return s
}

// add updates freq[i] by delta and keeps the tree and total consistent.
func (m *fenwickModel) add(i int, delta uint32) {
	m.freq[i] += delta
	m.total += delta
	for ; i <= m.size; i += i & (-i) {
		m.tree[i] += delta
	}
}

// update bumps symbol i's frequency by one after it has been coded, and
// rescales if the running total has reached entropyMaxTotal.
func (m *fenwickModel) update(i int) {
	m.add(i, 1)
	if m.total >= entropyMaxTotal {
		m.rescale()
	}
}

// rescale halves every frequency (rounding up), rebuilds the tree, and
// recomputes total. Every symbol keeps nonzero frequency since
// max(1, ceil(v/2)) is always >= 1 for v >= 1.
func (m *fenwickModel) rescale() {
	vals := make([]uint32, m.size+1)
	for i := 1; i <= m.size; i++ {
		v := (m.freq[i] + 1) / 2
		if v < 1 {
			v = 1
		}
		vals[i] = v
	}
	m.rebuildFrom(vals)
}

// findByCumulative returns the smallest i such that sum(i) > v, via a
// binary lift over the Fenwick tree (O(log S), no explicit sum() calls).
func (m *fenwickModel) findByCumulative(v uint32) int {
	var idx int
	bitMask := 1
	for bitMask<<1 <= m.size {
		bitMask <<= 1
	}
	for step := bitMask; step > 0; step >>= 1 {
		next := idx + step
		if next <= m.size && m.tree[next] <= v {
			idx = next
			v -= m.tree[next]
		}
	}
	return idx + 1
}
