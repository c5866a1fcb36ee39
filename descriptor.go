package paramcheck

import (
	"encoding/json"
	"math"
	"strconv"

	"fortio.org/safecast"
)

// Kind tags the structural variant of a Descriptor.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindOptional
	KindArray
	KindObject
)

// IntKind selects a bounded integral target type.
type IntKind int

const (
	IntI8 IntKind = iota
	IntI16
	IntI32
	IntI64
	IntU8
	IntU16
	IntU32
	IntU64
)

// FloatKind selects a floating-point target type.
type FloatKind int

const (
	FloatF32 FloatKind = iota
	FloatF64
)

// Field is one declared object member. Order of declaration is the order the
// traversal visits members and therefore the order failures are reported in.
type Field struct {
	Name     string
	Desc     *Descriptor
	Required bool
}

// Descriptor is the read-only structural description of a target type. It is
// built once (by dsl builders or reflection) and shared across arbitrarily
// many concurrent validations.
type Descriptor struct {
	kind      Kind
	intKind   IntKind
	floatKind FloatKind
	name      string // record name for objects
	elem      *Descriptor
	fields    []Field
}

func NewString() *Descriptor { return &Descriptor{kind: KindString} }
func NewBool() *Descriptor   { return &Descriptor{kind: KindBool} }

func NewInt(k IntKind) *Descriptor     { return &Descriptor{kind: KindInt, intKind: k} }
func NewFloat(k FloatKind) *Descriptor { return &Descriptor{kind: KindFloat, floatKind: k} }

// NewOptional wraps inner so that null (or an absent member) passes trivially.
func NewOptional(inner *Descriptor) *Descriptor {
	return &Descriptor{kind: KindOptional, elem: inner}
}

// NewArray describes an ordered sequence of elem.
func NewArray(elem *Descriptor) *Descriptor {
	return &Descriptor{kind: KindArray, elem: elem}
}

// NewObject describes a record with the given name and declared members.
func NewObject(name string, fields ...Field) *Descriptor {
	return &Descriptor{kind: KindObject, name: name, fields: fields}
}

func (d *Descriptor) Kind() Kind        { return d.kind }
func (d *Descriptor) Name() string      { return d.name }
func (d *Descriptor) Elem() *Descriptor { return d.elem }
func (d *Descriptor) Fields() []Field   { return d.fields }

// TypeFormat renders the expected type+format labels for this descriptor.
// Optional keeps the inner type label with format "nullable".
func (d *Descriptor) TypeFormat() TypeFormat {
	switch d.kind {
	case KindString:
		return TypeFormat{Type: "string", Format: "string"}
	case KindBool:
		return TypeFormat{Type: "bool", Format: "boolean"}
	case KindInt:
		return TypeFormat{Type: d.intKind.label(), Format: "integer"}
	case KindFloat:
		return TypeFormat{Type: d.floatKind.label(), Format: "number"}
	case KindOptional:
		tf := d.elem.TypeFormat()
		tf.Format = "nullable"
		return tf
	case KindArray:
		return TypeFormat{Type: "array", Format: "array"}
	case KindObject:
		name := d.name
		if name == "" {
			name = "object"
		}
		return TypeFormat{Type: name, Format: "object"}
	}
	return TypeFormat{Type: "unknown", Format: "unknown"}
}

// DescribeValue classifies a runtime value-tree node. Numbers classify by what
// they parse as (u64, then i64, then f64), regardless of any narrower expected
// type; this is why expected and actual can differ even for values that are
// merely out of range.
func DescribeValue(v any) TypeFormat {
	switch v.(type) {
	case nil:
		return TypeFormat{Type: "null", Format: "null"}
	case bool:
		return TypeFormat{Type: "bool", Format: "boolean"}
	case string:
		return TypeFormat{Type: "string", Format: "string"}
	case []any:
		return TypeFormat{Type: "array", Format: "array"}
	case map[string]any:
		return TypeFormat{Type: "object", Format: "object"}
	}
	if n, ok := asNumber(v); ok {
		if _, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return TypeFormat{Type: "u64", Format: "integer"}
		}
		if _, err := n.Int64(); err == nil {
			return TypeFormat{Type: "i64", Format: "integer"}
		}
		return TypeFormat{Type: "f64", Format: "number"}
	}
	return TypeFormat{Type: "unknown", Format: "unknown"}
}

// asNumber normalizes the numeric representations a value tree may carry.
// Decoded trees use json.Number; hand-built trees often carry Go numerics.
func asNumber(v any) (json.Number, bool) {
	switch t := v.(type) {
	case json.Number:
		return t, true
	case int:
		return json.Number(strconv.Itoa(t)), true
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), true
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), true
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64)), true
	}
	return "", false
}

func (k IntKind) label() string {
	switch k {
	case IntI8:
		return "i8"
	case IntI16:
		return "i16"
	case IntI32:
		return "i32"
	case IntI64:
		return "i64"
	case IntU8:
		return "u8"
	case IntU16:
		return "u16"
	case IntU32:
		return "u32"
	case IntU64:
		return "u64"
	}
	return "int"
}

// bounds returns the intrinsic [min,max] of the target type as decimal text.
func (k IntKind) bounds() (string, string) {
	switch k {
	case IntI8:
		return strconv.Itoa(math.MinInt8), strconv.Itoa(math.MaxInt8)
	case IntI16:
		return strconv.Itoa(math.MinInt16), strconv.Itoa(math.MaxInt16)
	case IntI32:
		return strconv.Itoa(math.MinInt32), strconv.Itoa(math.MaxInt32)
	case IntI64:
		return strconv.FormatInt(math.MinInt64, 10), strconv.FormatInt(math.MaxInt64, 10)
	case IntU8:
		return "0", strconv.Itoa(math.MaxUint8)
	case IntU16:
		return "0", strconv.Itoa(math.MaxUint16)
	case IntU32:
		return "0", strconv.FormatUint(math.MaxUint32, 10)
	case IntU64:
		return "0", strconv.FormatUint(math.MaxUint64, 10)
	}
	return "0", "0"
}

// zero is the placeholder a failed member contributes so ancestors keep going.
func (k IntKind) zero() any {
	switch k {
	case IntI8:
		return int8(0)
	case IntI16:
		return int16(0)
	case IntI32:
		return int32(0)
	case IntI64:
		return int64(0)
	case IntU8:
		return uint8(0)
	case IntU16:
		return uint16(0)
	case IntU32:
		return uint32(0)
	case IntU64:
		return uint64(0)
	}
	return 0
}

type convStatus int

const (
	convOK convStatus = iota
	convNotInteger
	convOutOfRange
)

// convert narrows n into the exact scalar for k. A value that is an integer
// but does not fit the target reports convOutOfRange; a non-integral number
// reports convNotInteger (a plain type mismatch at the call site).
func (k IntKind) convert(n json.Number) (any, convStatus) {
	if i, err := n.Int64(); err == nil {
		return k.fromInt64(i)
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		// only values above MaxInt64 land here
		if k == IntU64 {
			return u, convOK
		}
		return k.zero(), convOutOfRange
	}
	return k.zero(), convNotInteger
}

func (k IntKind) fromInt64(i int64) (any, convStatus) {
	switch k {
	case IntI8:
		if v, err := safecast.Conv[int8](i); err == nil {
			return v, convOK
		}
	case IntI16:
		if v, err := safecast.Conv[int16](i); err == nil {
			return v, convOK
		}
	case IntI32:
		if v, err := safecast.Conv[int32](i); err == nil {
			return v, convOK
		}
	case IntI64:
		return i, convOK
	case IntU8:
		if v, err := safecast.Conv[uint8](i); err == nil {
			return v, convOK
		}
	case IntU16:
		if v, err := safecast.Conv[uint16](i); err == nil {
			return v, convOK
		}
	case IntU32:
		if v, err := safecast.Conv[uint32](i); err == nil {
			return v, convOK
		}
	case IntU64:
		if v, err := safecast.Conv[uint64](i); err == nil {
			return v, convOK
		}
	}
	return k.zero(), convOutOfRange
}

func (k FloatKind) label() string {
	if k == FloatF32 {
		return "f32"
	}
	return "f64"
}

func (k FloatKind) zero() any {
	if k == FloatF32 {
		return float32(0)
	}
	return float64(0)
}

// convert accepts any JSON number for a float target.
func (k FloatKind) convert(n json.Number) (any, bool) {
	f, err := n.Float64()
	if err != nil {
		return k.zero(), false
	}
	if k == FloatF32 {
		return float32(f), true
	}
	return f, true
}
