// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

// Words is a small natural-language word corpus used by property-style
// round-trip tests that need repetitive, word-structured text (the kind
// WBWT's word-based BWT is built for) rather than random bytes.
var Words = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog",
	"and", "then", "runs", "away", "quickly", "into", "the", "woods",
	"where", "it", "meets", "another", "fox", "and", "they", "talk",
	"about", "compression", "algorithms", "all", "night", "long",
}
