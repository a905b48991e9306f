// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

import "strings"

// Control markers are two-character strings beginning with 0x1F. Each
// precedes exactly one payload token in the normalized stream.
const markerByte = 0x1F

const (
	markerSpace     = 's' // + run length, base-36
	markerNewline   = 'n' // + run length, base-36
	markerTab       = 't' // + run length, base-36
	markerNumeric   = 'd' // + literal digits
	markerUpperCase = 'u' // + lowercased word
	markerTitleCase = 'c' // + lowercased word
	markerEscape    = 'e' // + original token, verbatim
)

func marker(kind byte) string {
	return string([]byte{markerByte, kind})
}

var wsMarkerByClass = [3]byte{markerSpace, markerNewline, markerTab}

// normalize maps each raw token to 0-2 normalized tokens, collapsing
// repetitive word variants (whitespace run lengths, numbers, all-caps and
// title-case words) onto a single dictionary entry plus a short control
// token. A single space separating two word tokens is dropped
// entirely: two word tokens can never be adjacent in the raw stream (both
// runs are maximal), so the renderer re-inserts exactly one space between
// any two adjacent word-class entries.
func normalize(tokens []string) []string {
	var out []string
	for i, tok := range tokens {
		if tok == " " && i > 0 && i+1 < len(tokens) &&
			isWordToken(tokens[i-1]) && isWordToken(tokens[i+1]) {
			continue
		}
		out = append(out, normalizeToken(tok)...)
	}
	return out
}

// isWordToken reports whether tok is a word-class raw token (a run of
// letters/digits, optionally joined by ' or -). Word runes are ASCII, so
// inspecting the first byte suffices.
func isWordToken(tok string) bool {
	return tok != "" && isWordRune(rune(tok[0]))
}

func normalizeToken(tok string) []string {
	if tok == "" {
		return nil
	}
	if tok[0] == markerByte {
		return []string{marker(markerEscape), tok}
	}
	if isWhitespaceToken(tok) {
		r := []rune(tok)
		class := whitespaceClass(r[0])
		return []string{marker(wsMarkerByClass[class]), strconv36(len(r))}
	}
	if isAllDigits(tok) {
		return []string{marker(markerNumeric), tok}
	}
	if isAllUpper(tok) {
		return []string{marker(markerUpperCase), strings.ToLower(tok)}
	}
	if isTitleCase(tok) {
		return []string{marker(markerTitleCase), strings.ToLower(tok)}
	}
	return []string{tok}
}

func isWhitespaceToken(tok string) bool {
	for _, r := range tok {
		if !isWhitespaceRune(r) {
			return false
		}
	}
	return tok != ""
}

func isAllDigits(tok string) bool {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return tok != ""
}

// isAllUpper reports whether tok contains at least one letter and every
// letter in it is uppercase.
func isAllUpper(tok string) bool {
	hasLetter := false
	for _, r := range tok {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether tok is a leading capital followed by all
// lowercase letters.
func isTitleCase(tok string) bool {
	r := []rune(tok)
	if len(r) == 0 || r[0] < 'A' || r[0] > 'Z' {
		return false
	}
	for _, c := range r[1:] {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func strconv36(n int) string {
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{base36Digits[n%36]}, buf...)
		n /= 36
	}
	return string(buf)
}

func parse36(s string) (int, error) {
	n := 0
	for _, c := range s {
		idx := strings.IndexRune(base36Digits, lowerRune(c))
		if idx < 0 {
			return 0, errNotBase36
		}
		n = n*36 + idx
	}
	if s == "" {
		return 0, errNotBase36
	}
	return n, nil
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

var errNotBase36 = &CodecError{Kind: CorruptFrame, msg: "invalid base-36 run length"}

// whitespaceRune maps a class index back to its representative character.
func whitespaceRune(class int) rune {
	switch class {
	case 0:
		return ' '
	case 1:
		return '\n'
	case 2:
		return '\t'
	default:
		return ' '
	}
}

// renderTokens reverses normalize, reproducing the original text exactly.
// A single space is re-inserted between two adjacent word-class entries
// (plain words and numeric/case marker pairs), undoing the dropped-space
// rule in normalize. A control marker with no following payload token
// (only reachable from a corrupt decoded stream, never from normalize on
// real text) is treated as CorruptFrame rather than silently dropped.
func renderTokens(tokens []string) string {
	var b strings.Builder
	prevWord := false
	word := func(s string) {
		if prevWord {
			b.WriteByte(' ')
		}
		b.WriteString(s)
		prevWord = true
	}
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if len(tok) == 2 && tok[0] == markerByte {
			kind := tok[1]
			if i+1 >= len(tokens) {
				panicCorrupt("control marker %q at end of stream with no payload", tok)
			}
			payload := tokens[i+1]
			i += 2
			switch kind {
			case markerEscape:
				b.WriteString(payload)
				prevWord = false
			case markerUpperCase:
				word(strings.ToUpper(payload))
			case markerTitleCase:
				word(titleCase(payload))
			case markerNumeric:
				word(payload)
			case markerSpace, markerNewline, markerTab:
				length, err := parse36(payload)
				if err != nil {
					panicCorrupt("invalid whitespace run length %q", payload)
				}
				var class int
				switch kind {
				case markerSpace:
					class = 0
				case markerNewline:
					class = 1
				default:
					class = 2
				}
				b.WriteString(strings.Repeat(string(whitespaceRune(class)), length))
				prevWord = false
			default:
				panicCorrupt("unknown control marker byte %q", kind)
			}
			continue
		}
		if isWordToken(tok) {
			word(tok)
		} else {
			b.WriteString(tok)
			prevWord = false
		}
		i++
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
