// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wbwt

import "fmt"

// Kind classifies the two decode-time failure modes the codec can report.
// Compress performs no invariant checks of its own (for example on a
// dictionary or token count beyond 2^31), so no Kind applies to it.
type Kind int

const (
	// InvalidHeader indicates a magic mismatch or an unsupported container version.
	InvalidHeader Kind = iota
	// CorruptFrame indicates a truncated or internally inconsistent frame.
	CorruptFrame
)

func (k Kind) String() string {
	switch k {
	case InvalidHeader:
		return "invalid header"
	case CorruptFrame:
		return "corrupt frame"
	default:
		return "unknown"
	}
}

// CodecError is the error type returned by Deserialize and Decompress.
type CodecError struct {
	Kind Kind
	msg  string
}

func (e *CodecError) Error() string { return "wbwt: " + e.Kind.String() + ": " + e.msg }

func newInvalidHeader(format string, args ...interface{}) *CodecError {
	return &CodecError{Kind: InvalidHeader, msg: fmt.Sprintf(format, args...)}
}

func newCorrupt(format string, args ...interface{}) *CodecError {
	return &CodecError{Kind: CorruptFrame, msg: fmt.Sprintf(format, args...)}
}

// panicCorrupt and panicInvalidHeader are used by the container reader so
// that a chain of varint/front-coding helpers can fail fast without
// threading an error return through every call; errRecover turns the panic
// back into a normal error at the Deserialize/Decompress boundary.
func panicCorrupt(format string, args ...interface{}) {
	panic(newCorrupt(format, args...))
}

func panicInvalidHeader(format string, args ...interface{}) {
	panic(newInvalidHeader(format, args...))
}

// errRecover converts a panic carrying a *CodecError into a normal error
// return. Any other panic value is re-raised.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case *CodecError:
		*err = ex
	default:
		panic(ex)
	}
}
