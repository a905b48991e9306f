// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

// Compress runs the full WBWT pipeline: tokenize, normalize, assign
// sorted dictionary ids, append the sentinel, cyclic BWT, then
// move-to-front. The result is ready for Serialize.
func Compress(text string) (Payload, error) {
	tokens := tokenize(text)
	normalized := normalize(tokens)

	// Empty input is canonical as an empty dictionary and empty mtf, with
	// no sentinel.
	if len(normalized) == 0 {
		return Payload{}, nil
	}

	dict, ids := buildDictionary(normalized)

	// Dictionary ids are 0-based from buildDictionary; shift to the
	// reserved range 1..|D| so sentinel id 0 is free.
	shifted := make([]uint32, len(ids)+1)
	for i, id := range ids {
		shifted[i] = id + 1
	}
	shifted[len(ids)] = 0

	alphabetSize := len(dict) + 1
	l, primaryIndex := bwtForward(shifted, alphabetSize)
	mtf := moveToFrontEncode(l, alphabetSize)

	return Payload{Dictionary: dict, PrimaryIndex: primaryIndex, MTF: mtf}, nil
}

// Decompress reverses Compress: move-to-front inverse, cyclic
// BWT inverse, strip the trailing sentinel, map ids back through the
// dictionary, then render the normalized token stream to text.
func Decompress(p Payload) (text string, err error) {
	defer errRecover(&err)

	if len(p.MTF) == 0 {
		return "", nil
	}

	alphabetSize := len(p.Dictionary) + 1
	if p.PrimaryIndex < 0 || p.PrimaryIndex >= len(p.MTF) {
		panicCorrupt("primary index %d out of range for %d rows", p.PrimaryIndex, len(p.MTF))
	}
	for _, v := range p.MTF {
		if int(v) >= alphabetSize {
			panicCorrupt("mtf value %d exceeds alphabet size %d", v, alphabetSize)
		}
	}
	l := moveToFrontDecode(p.MTF, alphabetSize)
	ids := bwtInverse(l, p.PrimaryIndex, alphabetSize)

	if len(ids) == 0 || ids[len(ids)-1] != 0 {
		panicCorrupt("id stream missing trailing sentinel")
	}
	ids = ids[:len(ids)-1]

	tokens := make([]string, len(ids))
	for i, id := range ids {
		if id == 0 || int(id) > len(p.Dictionary) {
			panicCorrupt("id %d out of dictionary range", id)
		}
		tokens[i] = p.Dictionary[id-1]
	}

	return renderTokens(tokens), nil
}
