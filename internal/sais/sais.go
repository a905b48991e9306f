// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// This is a reworking of the suffix array by induced sorting (SA-IS)
// methodology of Nong, Zhang, and Chan, derived from Yuta Mori's sais
// implementation:
//
// Copyright (c) 2008-2010 Yuta Mori All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person
// obtaining a copy of this software and associated documentation
// files (the "Software"), to deal in the Software without
// restriction, including without limitation the rights to use,
// copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following
// conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
// HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
// WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.

// Package sais builds suffix arrays over dictionary-id streams in linear
// time by induced sorting. The id stream always ends in the sentinel id 0,
// the unique smallest symbol, which is what lets the Burrows-Wheeler layer
// equate suffix order with cyclic rotation order.
package sais

// symbol covers the two alphabets the sorter runs over: uint32 dictionary
// ids at the top level, and the int LMS names of each recursion step.
type symbol interface {
	~uint32 | ~int
}

// Compute fills sa with the suffix array of ids. sa must have the same
// length as ids, every id must be in [0, alphabetSize), and the final id
// must be the unique smallest symbol (the sentinel) for induced sorting
// to terminate correctly.
func Compute(ids []uint32, sa []int, alphabetSize int) {
	if len(sa) != len(ids) {
		panic("sais: mismatching lengths")
	}
	if len(ids) == 0 {
		return
	}
	suffixSort(ids, sa, alphabetSize)
}

// countSymbols tallies symbol frequencies into count, whose length is the
// alphabet size.
func countSymbols[S symbol](t []S, count []int) {
	for i := range count {
		count[i] = 0
	}
	for _, c := range t {
		count[c]++
	}
}

// bucketBounds derives per-symbol bucket boundaries from count: the end of
// each bucket when ends is true, the start otherwise.
func bucketBounds(count, bkt []int, ends bool) {
	sum := 0
	for i, c := range count {
		sum += c
		if ends {
			bkt[i] = sum
		} else {
			bkt[i] = sum - c
		}
	}
}

// sortLMSSubstrings induce-sorts all LMS substrings of t, given their
// start positions seeded at the ends of their buckets in sa. Positions are
// stored bitwise-complemented while their left neighbor is still known to
// be S-type; nameLMSSubstrings compacts the result.
func sortLMSSubstrings[S symbol](t []S, sa, count, bkt []int) {
	n := len(t)

	// Left-to-right pass placing L-type predecessors.
	bucketBounds(count, bkt, false)
	j := n - 1
	c1 := int(t[j])
	b := bkt[c1]
	j--
	if int(t[j]) < c1 {
		sa[b] = ^j
	} else {
		sa[b] = j
	}
	b++
	for i := 0; i < n; i++ {
		if j = sa[i]; j > 0 {
			if c0 := int(t[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			j--
			if int(t[j]) < c1 {
				sa[b] = ^j
			} else {
				sa[b] = j
			}
			b++
			sa[i] = 0
		} else if j < 0 {
			sa[i] = ^j
		}
	}

	// Right-to-left pass placing S-type predecessors.
	bucketBounds(count, bkt, true)
	c1 = 0
	b = bkt[c1]
	for i := n - 1; i >= 0; i-- {
		if j = sa[i]; j > 0 {
			if c0 := int(t[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			j--
			b--
			if int(t[j]) > c1 {
				sa[b] = ^(j + 1)
			} else {
				sa[b] = j
			}
			sa[i] = 0
		}
	}
}

// nameLMSSubstrings compacts the m sorted LMS substring starts into the
// head of sa and assigns each distinct substring an increasing name,
// recording the name of the substring starting at p in sa[m+p/2]. It
// returns the number of distinct names; when that is less than m the
// caller must recurse to break ties.
func nameLMSSubstrings[S symbol](t []S, sa []int, m int) int {
	n := len(t)

	// Compact the sorted starts into sa[:m] (2*m <= n always holds).
	var i, j int
	for i = 0; sa[i] < 0; i++ {
		sa[i] = ^sa[i]
	}
	if i < m {
		for j, i = i, i+1; ; i++ {
			if p := sa[i]; p < 0 {
				sa[j] = ^p
				j++
				sa[i] = 0
				if j == m {
					break
				}
			}
		}
	}

	// Record each LMS substring's length at sa[m + start/2], scanning t
	// right to left for LMS positions.
	i = n - 1
	j = n - 1
	c0 := int(t[n-1])
	var c1 int
	for {
		c1 = c0
		if i--; i < 0 {
			break
		}
		if c0 = int(t[i]); c0 < c1 {
			break
		}
	}
	for i >= 0 {
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = int(t[i]); c0 > c1 {
				break
			}
		}
		if i >= 0 {
			sa[m+((i+1)>>1)] = j - i
			j = i + 1
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = int(t[i]); c0 < c1 {
					break
				}
			}
		}
	}

	// Name the substrings in sorted order; equal neighbors share a name.
	name, qlen := 0, 0
	for i, q := 0, n; i < m; i++ {
		p := sa[i]
		plen := sa[m+(p>>1)]
		diff := true
		if plen == qlen && q+plen < n {
			var j int
			for j = 0; j < plen && t[p+j] == t[q+j]; j++ {
			}
			if j == plen {
				diff = false
			}
		}
		if diff {
			name++
			q = p
			qlen = plen
		}
		sa[m+(p>>1)] = name
	}
	return name
}

// induce derives the full suffix order from the sorted LMS suffixes
// already placed in sa: one left-to-right pass seeds every L-type suffix,
// one right-to-left pass seeds every S-type suffix.
func induce[S symbol](t []S, sa, count, bkt []int) {
	n := len(t)

	bucketBounds(count, bkt, false)
	j := n - 1
	c1 := int(t[j])
	b := bkt[c1]
	if j > 0 && int(t[j-1]) < c1 {
		sa[b] = ^j
	} else {
		sa[b] = j
	}
	b++
	for i := 0; i < n; i++ {
		j = sa[i]
		sa[i] = ^j
		if j > 0 {
			j--
			if c0 := int(t[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			if j > 0 && int(t[j-1]) < c1 {
				sa[b] = ^j
			} else {
				sa[b] = j
			}
			b++
		}
	}

	bucketBounds(count, bkt, true)
	c1 = 0
	b = bkt[c1]
	for i := n - 1; i >= 0; i-- {
		if j = sa[i]; j > 0 {
			j--
			if c0 := int(t[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			b--
			if j == 0 || int(t[j-1]) > c1 {
				sa[b] = ^j
			} else {
				sa[b] = j
			}
		} else {
			sa[i] = ^j
		}
	}
}

// suffixSort is the SA-IS driver. Each level allocates its own O(k)
// count and bucket arrays; the reduced string of a recursion step lives
// in the tail of sa, which the step itself never touches (it works
// entirely within its first len(t) slots, and 2*m <= len(t)).
func suffixSort[S symbol](t []S, sa []int, k int) {
	n := len(t)
	count := make([]int, k)
	bkt := make([]int, k)

	// Stage 1: locate the LMS positions right to left and seed them at
	// the ends of their buckets, then sort the LMS substrings.
	countSymbols(t, count)
	bucketBounds(count, bkt, true)
	for i := range sa[:n] {
		sa[i] = 0
	}
	b := -1
	i := n - 1
	j := n
	m := 0
	c0 := int(t[n-1])
	var c1 int
	for {
		c1 = c0
		if i--; i < 0 {
			break
		}
		if c0 = int(t[i]); c0 < c1 {
			break
		}
	}
	for i >= 0 {
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = int(t[i]); c0 > c1 {
				break
			}
		}
		if i >= 0 {
			if b >= 0 {
				sa[b] = j
			}
			bkt[c1]--
			b = bkt[c1]
			j = i
			m++
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = int(t[i]); c0 < c1 {
					break
				}
			}
		}
	}

	var name int
	switch {
	case m > 1:
		sortLMSSubstrings(t, sa, count, bkt)
		name = nameLMSSubstrings(t, sa, m)
	case m == 1:
		sa[b] = j + 1
		name = 1
	}

	// Stage 2: if any name is shared, sort the reduced string of LMS
	// names recursively, then map the reduced order back to positions
	// in t.
	if name < m {
		ra := sa[n-m : n]
		for i, j := m+(n>>1)-1, m-1; m <= i; i-- {
			if sa[i] != 0 {
				ra[j] = sa[i] - 1
				j--
			}
		}
		suffixSort(ra, sa, name)

		i = n - 1
		j = m - 1
		c0 = int(t[n-1])
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = int(t[i]); c0 < c1 {
				break
			}
		}
		for i >= 0 {
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = int(t[i]); c0 > c1 {
					break
				}
			}
			if i >= 0 {
				ra[j] = i + 1
				j--
				for {
					c1 = c0
					if i--; i < 0 {
						break
					}
					if c0 = int(t[i]); c0 < c1 {
						break
					}
				}
			}
		}
		for i = 0; i < m; i++ {
			sa[i] = ra[sa[i]]
		}
	}

	// Stage 3: move the sorted LMS suffixes to the ends of their buckets
	// and induce the rest of the order from them.
	if m > 1 {
		bucketBounds(count, bkt, true)
		i = m - 1
		j = n
		p := sa[m-1]
		c1 = int(t[p])
		for {
			c0 = c1
			q := bkt[c0]
			for q < j {
				j--
				sa[j] = 0
			}
			for {
				j--
				sa[j] = p
				if i--; i < 0 {
					break
				}
				p = sa[i]
				if c1 = int(t[p]); c1 != c0 {
					break
				}
			}
			if i < 0 {
				break
			}
		}
		for j > 0 {
			j--
			sa[j] = 0
		}
	}
	induce(t, sa, count, bkt)
}
