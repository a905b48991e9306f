// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

const (
	containerMagic = 0x57425754 // "TWBW"
	versionV2      = 2
	versionV3      = 3
	versionV4      = 4
)

// Payload is the decoded, pre-serialization result of Compress: a sorted
// dictionary, the cyclic BWT primary index, and the move-to-front array.
// The container's tokenCount field is implicit in len(MTF).
type Payload struct {
	Dictionary   []string
	PrimaryIndex int
	MTF          []uint32
}

// Serialize always emits a v4 frame: front-coded dictionary plus an
// arithmetic-coded RUNA/RUNB symbol stream.
func Serialize(p Payload) []byte {
	var w ByteWriter
	w.WriteU32LE(containerMagic)
	w.WriteU32LE(versionV4)
	w.WriteVarint(uint64(len(p.Dictionary)))
	w.WriteVarint(uint64(len(p.MTF)))
	w.WriteVarint(uint64(p.PrimaryIndex))

	symbols := mtfToSymbols(p.MTF)
	w.WriteVarint(uint64(len(symbols)))
	frontCodeDict(&w, p.Dictionary)

	// The canonical empty frame ends at the symbolCount varint with no
	// arithmetic-coded tail.
	if len(symbols) > 0 {
		alphabetSize := len(p.Dictionary) + 2
		w.Write(encodeSymbols(symbols, alphabetSize))
	}
	return w.Bytes()
}

// Deserialize decodes a v2, v3, or v4 frame. Magic mismatch
// or an unrecognized version is InvalidHeader; any truncation or
// structural inconsistency while decoding the body is CorruptFrame.
func Deserialize(buf []byte) (p Payload, err error) {
	defer errRecover(&err)

	r := NewByteReader(buf)
	magic := r.ReadU32LE()
	if magic != containerMagic {
		return Payload{}, newInvalidHeader("bad magic %#x", magic)
	}
	version := r.ReadU32LE()
	if version != versionV2 && version != versionV3 && version != versionV4 {
		return Payload{}, newInvalidHeader("unsupported version %d", version)
	}

	dictCount := readCount(r)
	tokenCount := readCount(r)
	primaryIndex := readCount(r)
	if dictCount > r.Remaining() {
		panicCorrupt("dictionary count %d exceeds remaining frame bytes", dictCount)
	}

	switch version {
	case versionV4:
		return deserializeV4(r, dictCount, tokenCount, primaryIndex)
	case versionV3:
		return deserializeLegacy(r, dictCount, tokenCount, primaryIndex, true)
	default:
		return deserializeLegacy(r, dictCount, tokenCount, primaryIndex, false)
	}
}

// readCount reads a varint header field that gates an allocation or index;
// anything beyond 2^31-1 can only come from a corrupt frame.
func readCount(r *ByteReader) int {
	v := r.ReadVarint()
	if v > 1<<31-1 {
		panicCorrupt("count field %d out of range", v)
	}
	return int(v)
}

func deserializeV4(r *ByteReader, dictCount, tokenCount, primaryIndex int) (Payload, error) {
	symbolCount := readCount(r)
	dict := readFrontCodedDict(r, dictCount)

	alphabetSize := dictCount + 2
	rest := r.ReadBytes(r.Remaining())
	symbols := decodeSymbols(rest, symbolCount, alphabetSize)
	mtf := symbolsToMtf(symbols, tokenCount)
	if len(mtf) != tokenCount {
		panicCorrupt("v4 mtf length %d does not match tokenCount %d", len(mtf), tokenCount)
	}
	return Payload{Dictionary: dict, PrimaryIndex: primaryIndex, MTF: mtf}, nil
}

// deserializeLegacy decodes v2/v3 frames. v3 arithmetic-codes a 256-symbol
// byte alphabet and interprets the decoded bytes as legacy varint
// zero-run/literal MTF codes; v2 stores that same legacy byte stream
// literally, with no arithmetic layer. Truncation in any varint or
// length-prefixed field is CorruptFrame; the zero-padding some historical
// v3 encoders tolerated on a truncated coded tail is not reproduced.
func deserializeLegacy(r *ByteReader, dictCount, tokenCount, primaryIndex int, arithmetic bool) (Payload, error) {
	dict := make([]string, dictCount)
	for i := 0; i < dictCount; i++ {
		n := int(r.ReadVarint())
		dict[i] = string(r.ReadBytes(n))
	}

	var packed []byte
	if arithmetic {
		packedLength := readCount(r)
		rest := r.ReadBytes(r.Remaining())
		symbols := decodeSymbols(rest, packedLength, 256)
		packed = make([]byte, packedLength)
		for i, s := range symbols {
			packed[i] = byte(s)
		}
	} else {
		packed = r.ReadBytes(r.Remaining())
	}

	mtf := decodeLegacyRLE(packed, tokenCount)
	if len(mtf) != tokenCount {
		panicCorrupt("legacy mtf length %d does not match tokenCount %d", len(mtf), tokenCount)
	}
	return Payload{Dictionary: dict, PrimaryIndex: primaryIndex, MTF: mtf}, nil
}

// decodeLegacyRLE decodes the legacy varint zero-run/literal MTF encoding:
// `(r<<1)|0` is a zero run of length r, `(v<<1)|1` is a literal mtf value
// v > 0.
func decodeLegacyRLE(buf []byte, tokenCount int) []uint32 {
	r := NewByteReader(buf)
	out := make([]uint32, 0, tokenCount)
	for len(out) < tokenCount && r.Remaining() > 0 {
		code := r.ReadVarint()
		if code&1 == 0 {
			run := code >> 1
			for i := uint64(0); i < run; i++ {
				out = append(out, 0)
				if len(out) > tokenCount {
					panicCorrupt("zero run overflows token count %d", tokenCount)
				}
			}
		} else {
			v := code >> 1
			if v > 1<<31-1 {
				panicCorrupt("mtf literal %d out of range", v)
			}
			out = append(out, uint32(v))
		}
	}
	return out
}

// encodeLegacyRLE is the inverse of decodeLegacyRLE, used by the test
// suite to construct legacy v2/v3 fixtures.
func encodeLegacyRLE(mtf []uint32) []byte {
	var w ByteWriter
	var run uint64
	flush := func() {
		if run > 0 {
			w.WriteVarint(run << 1)
			run = 0
		}
	}
	for _, v := range mtf {
		if v == 0 {
			run++
			continue
		}
		flush()
		w.WriteVarint((uint64(v) << 1) | 1)
	}
	flush()
	return w.Bytes()
}
