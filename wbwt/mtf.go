// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

// moveToFrontEncode maintains a list initialized to the identity
// permutation 0..alphabetSize-1. For each input value it outputs the
// value's current position in the list, then moves that value to the
// front. The alphabet is the dictionary plus the sentinel, so the list
// stays small enough for the in-place shift to beat fancier structures.
func moveToFrontEncode(vals []uint32, alphabetSize int) []uint32 {
	list := make([]uint32, alphabetSize)
	for i := range list {
		list[i] = uint32(i)
	}
	out := make([]uint32, len(vals))
	for n, v := range vals {
		idx := 0
		for list[idx] != v {
			idx++
		}
		out[n] = uint32(idx)
		copy(list[1:idx+1], list[:idx])
		list[0] = v
	}
	return out
}

// moveToFrontDecode is the exact inverse of moveToFrontEncode.
func moveToFrontDecode(idxs []uint32, alphabetSize int) []uint32 {
	list := make([]uint32, alphabetSize)
	for i := range list {
		list[i] = uint32(i)
	}
	out := make([]uint32, len(idxs))
	for n, idx := range idxs {
		v := list[idx]
		out[n] = v
		copy(list[1:idx+1], list[:idx])
		list[0] = v
	}
	return out
}

// mtfToSymbols collapses each maximal run of zeros in mtf into the bijective
// base-2 digits of its run length (least-significant digit first, RUNA=0,
// RUNB=1), and remaps every non-zero mtf value v to symbol v+1. It stays a
// separate pass from the move-to-front itself because the arithmetic coder
// consumes one symbol at a time rather than packed run values.
func mtfToSymbols(mtf []uint32) []uint32 {
	var out []uint32
	var run uint64 // number of zeros accumulated since the last non-zero value
	flushRun := func() {
		// Emit the bijective base-2 digits of run, least-significant first:
		// an odd remainder takes digit 1 (symbol RUNA=0), an even remainder
		// takes digit 2 (symbol RUNB=1), matching the contribution formula
		// in symbolsToMtf: value += (symbol+1) * 2^k.
		for run > 0 {
			if run&1 == 1 {
				out = append(out, 0)
				run = (run - 1) / 2
			} else {
				out = append(out, 1)
				run = run/2 - 1
			}
		}
	}
	for _, v := range mtf {
		if v == 0 {
			run++
			continue
		}
		flushRun()
		out = append(out, v+1)
	}
	flushRun()
	return out
}

// symbolsToMtf is the exact inverse of mtfToSymbols. tokenCount is the
// expected length of the reconstructed mtf stream, used only
// to preallocate; decoding itself is self-terminating once all symbols are
// consumed, with any trailing zero accumulator flushed at the end.
func symbolsToMtf(symbols []uint32, tokenCount int) []uint32 {
	out := make([]uint32, 0, tokenCount)
	var runLen uint64
	var k uint
	flushRun := func() {
		for runLen > 0 {
			out = append(out, 0)
			runLen--
		}
		k = 0
	}
	for _, s := range symbols {
		if s == 0 || s == 1 {
			runLen += (uint64(s) + 1) << k
			k++
			continue
		}
		flushRun()
		out = append(out, s-1)
	}
	flushRun()
	return out
}
