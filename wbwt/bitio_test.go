// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

import "testing"

func TestByteWriterReaderVarint(t *testing.T) {
	vectors := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<63 - 1, ^uint64(0)}
	var w ByteWriter
	for _, v := range vectors {
		w.WriteVarint(v)
	}
	r := NewByteReader(w.Bytes())
	for i, want := range vectors {
		got := r.ReadVarint()
		if got != want {
			t.Errorf("vector %d: got %d, want %d", i, got, want)
		}
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", r.Remaining())
	}
}

func TestByteReaderTruncated(t *testing.T) {
	defer func() {
		err, _ := recover().(*CodecError)
		if err == nil || err.Kind != CorruptFrame {
			t.Fatalf("expected CorruptFrame panic, got %v", err)
		}
	}()
	r := NewByteReader([]byte{0x80})
	r.ReadVarint()
}

// A varint with 10 or more continuation bytes is CorruptFrame, even when
// the buffer itself is not truncated.
func TestByteReaderVarintTooManyContinuationBytes(t *testing.T) {
	defer func() {
		err, _ := recover().(*CodecError)
		if err == nil || err.Kind != CorruptFrame {
			t.Fatalf("expected CorruptFrame panic, got %v", err)
		}
	}()
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	r := NewByteReader(buf)
	r.ReadVarint()
}

func TestU32LERoundTrip(t *testing.T) {
	var w ByteWriter
	w.WriteU32LE(0xDEADBEEF)
	r := NewByteReader(w.Bytes())
	if got := r.ReadU32LE(); got != 0xDEADBEEF {
		t.Errorf("got %#x, want %#x", got, 0xDEADBEEF)
	}
}

func TestBitWriterReaderRoundTrip(t *testing.T) {
	bits := []uint32{1, 0, 1, 1, 0, 0, 0, 1, 1, 1}
	var w BitWriter
	for _, b := range bits {
		w.WriteBit(b)
	}
	buf := w.Finish()
	r := NewBitReader(buf)
	for i, want := range bits {
		if got := r.ReadBit(); got != want {
			t.Errorf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestBitReaderPastEndReadsZero(t *testing.T) {
	r := NewBitReader(nil)
	for i := 0; i < 32; i++ {
		if got := r.ReadBit(); got != 0 {
			t.Fatalf("bit %d past end: got %d, want 0", i, got)
		}
	}
}
