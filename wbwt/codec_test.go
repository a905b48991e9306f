// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salnika/quick-note/internal/testutil"
)

func compressDecompress(t *testing.T, text string) string {
	t.Helper()
	p, err := Compress(text)
	require.NoError(t, err)
	out, err := Decompress(p)
	require.NoError(t, err)
	return out
}

// TestCompressDecompressRoundTrip checks decompress(compress(t)) == t
// across the awkward input categories: empty, single character,
// whitespace-only, control-byte-only, and mixed ASCII/multibyte.
func TestCompressDecompressRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"Z",
		" ",
		"\n",
		"\t",
		"   \n\t  ",
		"\x1F",
		"\x1F\x1F\x1F",
		"café 日本語 mixed ASCII and UTF-8",
		"Hello HELLO hello\n",
		"a\n",
	}
	for _, text := range cases {
		if got := compressDecompress(t, text); got != text {
			t.Errorf("round trip %q: got %q", text, got)
		}
	}
}

func TestCompressDecompressLongInput(t *testing.T) {
	rng := testutil.NewRand(42)
	var b strings.Builder
	for b.Len() < 20000 {
		b.WriteString(testutil.Words[rng.Intn(len(testutil.Words))])
		b.WriteByte(' ')
	}
	text := b.String()
	if got := compressDecompress(t, text); got != text {
		t.Errorf("long round trip mismatch, len got=%d want=%d", len(got), len(text))
	}
}

// The empty string compresses to an empty dictionary and empty mtf,
// serializes to the canonical 12-byte frame (magic, version, four varint
// zeros, no coded tail), and round-trips to itself.
func TestCompressEmptyCanonicalForm(t *testing.T) {
	p, err := Compress("")
	require.NoError(t, err)
	assert.Empty(t, p.Dictionary)
	assert.Empty(t, p.MTF)

	buf := Serialize(p)
	want := []byte{
		0x54, 0x57, 0x42, 0x57, // magic, LE
		0x04, 0x00, 0x00, 0x00, // version 4, LE
		0x00, 0x00, 0x00, // dictCount, tokenCount, primaryIndex
		0x00, // symbolCount
	}
	assert.Equal(t, want, buf)

	decoded, err := Deserialize(buf)
	require.NoError(t, err)
	out, err := Decompress(decoded)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

// Input "a" tokenizes, normalizes, and dictionary-assigns to a
// single-entry dictionary ["a"], and round-trips through BWT.
func TestCompressSingleLetter(t *testing.T) {
	toks := tokenize("a")
	assert.Equal(t, []string{"a"}, toks)
	norm := normalize(toks)
	assert.Equal(t, []string{"a"}, norm)
	dict, ids := buildDictionary(norm)
	assert.Equal(t, []string{"a"}, dict)
	assert.Equal(t, []uint32{0}, ids)

	out := compressDecompress(t, "a")
	assert.Equal(t, "a", out)
}

// The three case forms of "hello" collapse onto a single word entry, the
// single spaces between them vanish, and the dictionary is exactly the
// title-case, newline, and uppercase markers plus the run length "1" and
// the word itself. The text round-trips exactly, including the trailing
// newline.
func TestCaseFormsCollapseInDictionary(t *testing.T) {
	text := "Hello HELLO hello\n"
	p, err := Compress(text)
	require.NoError(t, err)

	want := []string{"\x1Fc", "\x1Fn", "\x1Fu", "1", "hello"}
	assert.Equal(t, want, p.Dictionary)

	out, err := Decompress(p)
	require.NoError(t, err)
	assert.Equal(t, text, out)
}

// A text made solely of the control-prefix byte escapes every raw token
// and round-trips exactly.
func TestControlBytesEscape(t *testing.T) {
	text := "\x1F\x1F\x1F"
	toks := tokenize(text)
	for _, tok := range toks {
		assert.Equal(t, byte(0x1F), tok[0])
	}
	out := compressDecompress(t, text)
	assert.Equal(t, text, out)
}

// A hand-built legacy v3 frame decodes and renders back to its original
// text.
func TestHandBuiltV3FrameDecodes(t *testing.T) {
	text := "the"
	p, err := Compress(text)
	require.NoError(t, err)

	frame := buildV3Frame(p)
	decoded, err := Deserialize(frame)
	require.NoError(t, err)
	out, err := Decompress(decoded)
	require.NoError(t, err)
	assert.Equal(t, text, out)
}

// A repetitive phrase yields a zero-dominated mtf and a short RUNA/RUNB
// symbol stream, and once the repetition amortizes the frame's fixed
// 8-byte magic/version overhead the serialized form is strictly shorter
// than the UTF-8 input.
func TestRepetitiveTextCompresses(t *testing.T) {
	text := "word word word word"
	p, err := Compress(text)
	require.NoError(t, err)

	var zeros int
	for _, v := range p.MTF {
		if v == 0 {
			zeros++
		}
	}
	assert.Greater(t, 2*zeros, len(p.MTF), "mtf should be dominated by zeros")
	assert.Less(t, len(mtfToSymbols(p.MTF)), len(p.MTF))

	out := compressDecompress(t, text)
	assert.Equal(t, text, out)

	long := strings.Repeat("word word word word ", 8)
	pl, err := Compress(long)
	require.NoError(t, err)
	assert.Less(t, len(Serialize(pl)), len(long))
	assert.Equal(t, long, compressDecompress(t, long))
}

func TestDictionaryIdAssignmentIsPureFunctionOfTokenSet(t *testing.T) {
	// Dictionary id assignment depends only on the set of distinct
	// normalized tokens, not on first-seen order.
	dictA, _ := buildDictionary([]string{"zebra", "apple", "mango", "apple"})
	dictB, _ := buildDictionary([]string{"apple", "mango", "zebra", "mango"})
	assert.Equal(t, dictA, dictB)
}
