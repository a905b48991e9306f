// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

import "sort"

// buildDictionary assigns a dense id to each distinct normalized token in
// first-seen order, then remaps ids so the dictionary is lexicographically
// sorted. Sorting after assignment, rather than sorting
// while assigning, keeps the remap a single pass over a small table instead
// of a tree insert per token.
func buildDictionary(tokens []string) (sorted []string, ids []uint32) {
	firstSeen := make(map[string]uint32)
	order := make([]string, 0, len(tokens))
	rawIDs := make([]uint32, len(tokens))
	for i, tok := range tokens {
		id, ok := firstSeen[tok]
		if !ok {
			id = uint32(len(order))
			firstSeen[tok] = id
			order = append(order, tok)
		}
		rawIDs[i] = id
	}

	sorted = append([]string(nil), order...)
	sort.Strings(sorted)

	remap := make([]uint32, len(order))
	for newID, tok := range sorted {
		remap[firstSeen[tok]] = uint32(newID)
	}

	ids = make([]uint32, len(tokens))
	for i, rid := range rawIDs {
		ids[i] = remap[rid]
	}
	return sorted, ids
}

// commonPrefixLen returns the length, in bytes, of the longest common
// prefix of a and b.
func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// frontCodeDict serializes a sorted dictionary as, per entry, a varint
// shared-prefix length with the previous entry followed by a varint suffix
// length and the suffix bytes (the v4 container's dictionary layout). The
// first entry has no predecessor and is stored with prefix length 0.
func frontCodeDict(w *ByteWriter, sorted []string) {
	prev := ""
	for _, s := range sorted {
		p := commonPrefixLen(prev, s)
		w.WriteVarint(uint64(p))
		suffix := s[p:]
		w.WriteVarint(uint64(len(suffix)))
		w.Write([]byte(suffix))
		prev = s
	}
}

// readFrontCodedDict is the inverse of frontCodeDict, reading exactly
// count entries.
func readFrontCodedDict(r *ByteReader, count int) []string {
	out := make([]string, count)
	prev := ""
	for i := 0; i < count; i++ {
		p := int(r.ReadVarint())
		if p > len(prev) {
			panicCorrupt("front-coded prefix length %d exceeds previous entry", p)
		}
		n := int(r.ReadVarint())
		suffix := r.ReadBytes(n)
		s := prev[:p] + string(suffix)
		out[i] = s
		prev = s
	}
	return out
}
