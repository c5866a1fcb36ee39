package dsl

import paramcheck "github.com/reoring/paramcheck"

// String returns the string descriptor.
func String() *paramcheck.Descriptor { return paramcheck.NewString() }

// Bool returns the boolean descriptor.
func Bool() *paramcheck.Descriptor { return paramcheck.NewBool() }

// Integral descriptors carry the intrinsic bounds of their target type; a
// value outside them reports a range violation rather than a type mismatch.

func Int8() *paramcheck.Descriptor  { return paramcheck.NewInt(paramcheck.IntI8) }
func Int16() *paramcheck.Descriptor { return paramcheck.NewInt(paramcheck.IntI16) }
func Int32() *paramcheck.Descriptor { return paramcheck.NewInt(paramcheck.IntI32) }
func Int64() *paramcheck.Descriptor { return paramcheck.NewInt(paramcheck.IntI64) }

func Uint8() *paramcheck.Descriptor  { return paramcheck.NewInt(paramcheck.IntU8) }
func Uint16() *paramcheck.Descriptor { return paramcheck.NewInt(paramcheck.IntU16) }
func Uint32() *paramcheck.Descriptor { return paramcheck.NewInt(paramcheck.IntU32) }
func Uint64() *paramcheck.Descriptor { return paramcheck.NewInt(paramcheck.IntU64) }

func Float32() *paramcheck.Descriptor { return paramcheck.NewFloat(paramcheck.FloatF32) }
func Float64() *paramcheck.Descriptor { return paramcheck.NewFloat(paramcheck.FloatF64) }

// Optional wraps inner so null (or an absent member) passes trivially.
func Optional(inner *paramcheck.Descriptor) *paramcheck.Descriptor {
	return paramcheck.NewOptional(inner)
}

// Array returns a sequence descriptor over elem.
func Array(elem *paramcheck.Descriptor) *paramcheck.Descriptor {
	return paramcheck.NewArray(elem)
}
