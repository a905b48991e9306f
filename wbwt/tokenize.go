// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

// tokenize splits text into raw tokens by a single greedy left-to-right
// pass. Each token is one of:
//   - a maximal run of letters/digits, optionally broken by a single ' or -
//     (word.0-9A-Za-z, joined by '/- as long as a word character follows),
//   - a maximal run of a single whitespace class (space, newline, or tab,
//     never mixed in one token), or
//   - a maximal run of non-alphanumeric, non-whitespace characters.
//
// Concatenating the returned tokens reproduces text exactly.
func tokenize(text string) []string {
	r := []rune(text)
	n := len(r)
	var toks []string
	i := 0
	for i < n {
		switch {
		case isWordRune(r[i]):
			j := i + 1
			for j < n && isWordRune(r[j]) {
				j++
			}
			// Allow a single ' or - to join two word runs, but only when
			// followed by another word rune (otherwise the punctuation run
			// starts its own token).
			for j < n && (r[j] == '\'' || r[j] == '-') && j+1 < n && isWordRune(r[j+1]) {
				j++
				for j < n && isWordRune(r[j]) {
					j++
				}
			}
			toks = append(toks, string(r[i:j]))
			i = j
		case isWhitespaceRune(r[i]):
			class := whitespaceClass(r[i])
			j := i + 1
			for j < n && isWhitespaceRune(r[j]) && whitespaceClass(r[j]) == class {
				j++
			}
			toks = append(toks, string(r[i:j]))
			i = j
		default:
			j := i + 1
			for j < n && !isWordRune(r[j]) && !isWhitespaceRune(r[j]) {
				j++
			}
			toks = append(toks, string(r[i:j]))
			i = j
		}
	}
	return toks
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}

// whitespaceClass distinguishes the three whitespace classes that never
// mix within one run token: 0=space, 1=newline, 2=tab.
func whitespaceClass(r rune) int {
	switch r {
	case ' ':
		return 0
	case '\n':
		return 1
	case '\t':
		return 2
	default:
		return -1
	}
}
