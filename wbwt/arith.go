// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

// Textbook Witten/Neal/Cleary 32-bit adaptive arithmetic coder, driven by
// a fenwickModel cumulative-frequency model that the encoder and decoder
// update in lock-step after every symbol.
const (
	acTop  = 0xFFFFFFFF
	acHalf = 0x80000000
	acQ1   = 0x40000000
	acQ3   = 0xC0000000
)

type arithEncoder struct {
	w       BitWriter
	low     uint32
	high    uint32
	pending int
}

func newArithEncoder() *arithEncoder {
	return &arithEncoder{low: 0, high: acTop}
}

func (e *arithEncoder) emit(bit uint32) {
	e.w.WriteBit(bit)
	opposite := bit ^ 1
	for ; e.pending > 0; e.pending-- {
		e.w.WriteBit(opposite)
	}
}

// encode codes one symbol with cumulative frequency c, frequency f, and
// total t, then renormalizes.
func (e *arithEncoder) encode(c, f, t uint32) {
	r := uint64(e.high) - uint64(e.low) + 1
	e.high = e.low + uint32((r*uint64(c+f))/uint64(t)) - 1
	e.low = e.low + uint32((r*uint64(c))/uint64(t))

	for {
		if e.high < acHalf {
			e.emit(0)
		} else if e.low >= acHalf {
			e.emit(1)
			e.low -= acHalf
			e.high -= acHalf
		} else if e.low >= acQ1 && e.high < acQ3 {
			e.pending++
			e.low -= acQ1
			e.high -= acQ1
		} else {
			break
		}
		e.low <<= 1
		e.high = e.high<<1 | 1
	}
}

// finish flushes the two bits needed to disambiguate the final interval and
// returns the packed bitstream.
func (e *arithEncoder) finish() []byte {
	e.pending++
	if e.low < acQ1 {
		e.emit(0)
	} else {
		e.emit(1)
	}
	return e.w.Finish()
}

type arithDecoder struct {
	r     BitReader
	low   uint32
	high  uint32
	value uint32
}

func newArithDecoder(buf []byte) *arithDecoder {
	d := &arithDecoder{r: *NewBitReader(buf), low: 0, high: acTop}
	for i := 0; i < 32; i++ {
		d.value = d.value<<1 | d.r.ReadBit()
	}
	return d
}

// cumFreq returns the scaled cumulative value used to look up the next
// symbol in the model.
func (d *arithDecoder) cumFreq(t uint32) uint32 {
	r := uint64(d.high) - uint64(d.low) + 1
	num := (uint64(d.value)-uint64(d.low)+1)*uint64(t) - 1
	return uint32(num / r)
}

// consume updates low/high for the symbol that was found at cumulative
// value c, frequency f, total t, then renormalizes, shifting fresh bits
// into value from the bit reader.
func (d *arithDecoder) consume(c, f, t uint32) {
	r := uint64(d.high) - uint64(d.low) + 1
	d.high = d.low + uint32((r*uint64(c+f))/uint64(t)) - 1
	d.low = d.low + uint32((r*uint64(c))/uint64(t))

	for {
		if d.high < acHalf {
			// no-op, bit already implied 0 at top
		} else if d.low >= acHalf {
			d.low -= acHalf
			d.high -= acHalf
			d.value -= acHalf
		} else if d.low >= acQ1 && d.high < acQ3 {
			d.low -= acQ1
			d.high -= acQ1
			d.value -= acQ1
		} else {
			break
		}
		d.low <<= 1
		d.high = d.high<<1 | 1
		d.value = d.value<<1 | d.r.ReadBit()
	}
}

// encodeSymbols arithmetic-codes a full symbol stream over an adaptive
// model of the given alphabet size. Returns the packed bitstream.
func encodeSymbols(syms []uint32, alphabetSize int) []byte {
	model := newFenwickModel(alphabetSize)
	enc := newArithEncoder()
	for _, s := range syms {
		i := int(s) + 1 // Fenwick indices are 1-based
		c := model.sum(i - 1)
		f := model.freq[i]
		enc.encode(c, f, model.total)
		model.update(i)
	}
	return enc.finish()
}

// decodeSymbols is the inverse of encodeSymbols: it decodes exactly count
// symbols from buf using a freshly initialized model of the given alphabet
// size.
func decodeSymbols(buf []byte, count int, alphabetSize int) []uint32 {
	model := newFenwickModel(alphabetSize)
	dec := newArithDecoder(buf)
	out := make([]uint32, count)
	for n := 0; n < count; n++ {
		cv := dec.cumFreq(model.total)
		i := model.findByCumulative(cv)
		if i < 1 || i > alphabetSize {
			panicCorrupt("arithmetic symbol index %d out of range", i)
		}
		c := model.sum(i - 1)
		f := model.freq[i]
		dec.consume(c, f, model.total)
		model.update(i)
		out[n] = uint32(i - 1)
	}
	return out
}
