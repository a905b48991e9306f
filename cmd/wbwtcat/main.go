// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command wbwtcat exercises the WBWT external contract end to end: it
// reads text, compresses and frames it the way a URL-fragment embedding
// would (base64url, `wbwt1:` prefix), or reverses that with -decode.
// It is not itself part of the codec and carries no compatibility guarantee.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Salnika/quick-note/wbwt"
)

const embeddingPrefix = "wbwt1:"

func main() {
	var (
		text   = flag.String("text", "", "text to compress (default: read stdin)")
		decode = flag.Bool("decode", false, "treat input as an embedded wbwt1: payload and print the decoded text")
	)
	flag.Parse()

	input, err := readInput(*text)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wbwtcat:", err)
		os.Exit(1)
	}

	if *decode {
		out, err := decodeEmbedded(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "wbwtcat:", err)
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}

	embedded, err := encodeEmbedded(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wbwtcat:", err)
		os.Exit(1)
	}
	fmt.Println(embedded)
}

func readInput(text string) (string, error) {
	if text != "" {
		return text, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}

// encodeEmbedded runs the full pipeline and frames the result the way a
// markdown scratchpad would embed a payload into a URL fragment.
func encodeEmbedded(text string) (string, error) {
	p, err := wbwt.Compress(text)
	if err != nil {
		return "", fmt.Errorf("compress: %w", err)
	}
	buf := wbwt.Serialize(p)
	return embeddingPrefix + base64.RawURLEncoding.EncodeToString(buf), nil
}

func decodeEmbedded(embedded string) (string, error) {
	embedded = strings.TrimSpace(embedded)
	rest, ok := strings.CutPrefix(embedded, embeddingPrefix)
	if !ok {
		return "", fmt.Errorf("missing %q prefix", embeddingPrefix)
	}
	buf, err := base64.RawURLEncoding.DecodeString(rest)
	if err != nil {
		return "", fmt.Errorf("base64url decode: %w", err)
	}
	p, err := wbwt.Deserialize(buf)
	if err != nil {
		return "", fmt.Errorf("deserialize: %w", err)
	}
	return wbwt.Decompress(p)
}
