// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

import (
	"reflect"
	"testing"
)

func TestNormalizeRenderRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"Hello, world!",
		"Hello HELLO hello\n",
		"ALL CAPS and Title Case and lowercase",
		"  multiple   spaces  ",
		"\x1F\x1F\x1F",
		"line one\nline two\ttabbed",
		"year 2026, version 4",
		"a .b c. d . e",
		"1 2 3",
		"don't stop-me NOW",
		" leading and trailing ",
	}
	for _, in := range inputs {
		toks := tokenize(in)
		norm := normalize(toks)
		got := renderTokens(norm)
		if got != in {
			t.Errorf("round trip %q: got %q", in, got)
		}
	}
}

func TestNormalizeCaseFormsCollapse(t *testing.T) {
	// Single spaces between word tokens vanish from the normalized stream;
	// the renderer re-inserts them between adjacent word-class entries.
	norm := normalize(tokenize("Hello HELLO hello"))
	want := []string{
		marker(markerTitleCase), "hello",
		marker(markerUpperCase), "hello",
		"hello",
	}
	if !reflect.DeepEqual(norm, want) {
		t.Errorf("got %v, want %v", norm, want)
	}
}

func TestNormalizeWhitespaceMarkers(t *testing.T) {
	vectors := []struct {
		input string
		want  []string
	}{
		// A single space not flanked by two words stays explicit.
		{" ", []string{marker(markerSpace), "1"}},
		{"a ", []string{"a", marker(markerSpace), "1"}},
		{"a .", []string{"a", marker(markerSpace), "1", "."}},
		// Longer runs and the other classes carry base-36 lengths.
		{"a  b", []string{"a", marker(markerSpace), "2", "b"}},
		{"\n\n\n", []string{marker(markerNewline), "3"}},
		{"\t", []string{marker(markerTab), "1"}},
	}
	for _, v := range vectors {
		got := normalize(tokenize(v.input))
		if !reflect.DeepEqual(got, v.want) {
			t.Errorf("normalize(%q) = %q, want %q", v.input, got, v.want)
		}
		if back := renderTokens(got); back != v.input {
			t.Errorf("render(normalize(%q)) = %q", v.input, back)
		}
	}
}

func TestNormalizeNumericMarker(t *testing.T) {
	norm := normalize(tokenize("version 007"))
	want := []string{"version", marker(markerNumeric), "007"}
	if !reflect.DeepEqual(norm, want) {
		t.Errorf("got %q, want %q", norm, want)
	}
	if back := renderTokens(norm); back != "version 007" {
		t.Errorf("render = %q", back)
	}
}

func TestNormalizeEscapesControlByte(t *testing.T) {
	norm := normalize([]string{"\x1Fx"})
	want := []string{marker(markerEscape), "\x1Fx"}
	if !reflect.DeepEqual(norm, want) {
		t.Errorf("got %v, want %v", norm, want)
	}
	if got := renderTokens(norm); got != "\x1Fx" {
		t.Errorf("render = %q, want %q", got, "\x1Fx")
	}
}

func TestRenderTokensTrailingMarkerIsCorrupt(t *testing.T) {
	defer func() {
		err, _ := recover().(*CodecError)
		if err == nil || err.Kind != CorruptFrame {
			t.Fatalf("expected CorruptFrame panic, got %v", err)
		}
	}()
	renderTokens([]string{marker(markerUpperCase)})
}

func TestEmptyInputProducesEmptyNormalizedStream(t *testing.T) {
	if got := normalize(tokenize("")); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
