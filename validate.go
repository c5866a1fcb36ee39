package paramcheck

import (
	"context"
	"encoding/json"

	"github.com/reoring/paramcheck/i18n"
)

// Check validates an already-decoded value tree against d. On success it
// returns the canonical value (scalars narrowed to their exact Go types,
// objects as map[string]any, sequences as []any). Any collected entry forces
// the *Problem error variant; the partially built value is discarded.
//
// One validation pass is a pure synchronous recursion with its own Path and
// collector, so concurrent calls over a shared Descriptor need no locking.
func Check(ctx context.Context, d *Descriptor, v any) (any, error) {
	c := &collector{}
	out := d.validate(v, c)
	if c.hasErrors() {
		return nil, c.problem()
	}
	return out, nil
}

// Parse implements Schema[any] for a bare Descriptor.
func (d *Descriptor) Parse(ctx context.Context, v any) (any, error) { return Check(ctx, d, v) }

// Descriptor implements Schema[any] by returning itself.
func (d *Descriptor) Descriptor() *Descriptor { return d }

// validate walks v against d, feeding mismatches to c and returning a
// best-effort placeholder on failure so ancestors keep evaluating siblings.
// A non-traversable shape (object or array expected, something else found)
// truncates only its own subtree.
func (d *Descriptor) validate(v any, c *collector) any {
	switch d.kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			c.mismatch(d, v)
			return ""
		}
		return s
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			c.mismatch(d, v)
			return false
		}
		return b
	case KindInt:
		n, ok := asNumber(v)
		if !ok {
			c.mismatch(d, v)
			return d.intKind.zero()
		}
		out, st := d.intKind.convert(n)
		switch st {
		case convNotInteger:
			c.mismatch(d, v)
		case convOutOfRange:
			c.outOfRange(d, n)
		}
		return out
	case KindFloat:
		n, ok := asNumber(v)
		if !ok {
			c.mismatch(d, v)
			return d.floatKind.zero()
		}
		out, ok := d.floatKind.convert(n)
		if !ok {
			c.mismatch(d, v)
		}
		return out
	case KindOptional:
		if v == nil {
			return nil
		}
		before := len(c.params)
		out := d.elem.validate(v, c)
		// Entries recorded at this exact location keep the inner type label
		// but carry the nullable format.
		ptr := c.path.Pointer()
		for i := before; i < len(c.params); i++ {
			if c.params[i].Pointer == ptr {
				c.params[i].Expected = d.TypeFormat()
			}
		}
		return out
	case KindArray:
		arr, ok := v.([]any)
		if !ok {
			c.mismatch(d, v)
			return nil
		}
		out := make([]any, 0, len(arr))
		for i, el := range arr {
			c.path.PushIndex(i)
			out = append(out, d.elem.validate(el, c))
			c.path.Pop()
		}
		return out
	case KindObject:
		m, ok := v.(map[string]any)
		if !ok {
			c.mismatch(d, v)
			return nil
		}
		out := make(map[string]any, len(d.fields))
		for _, f := range d.fields {
			val, present := m[f.Name]
			if !present {
				if f.Required {
					// pointer addresses the missing field itself, not the parent
					c.path.PushField(f.Name)
					c.missing(f.Desc)
					c.path.Pop()
				}
				continue
			}
			c.path.PushField(f.Name)
			out[f.Name] = f.Desc.validate(val, c)
			c.path.Pop()
		}
		// keys not declared in the schema are ignored
		return out
	}
	return nil
}

// mismatch records a type mismatch between d and the runtime shape of v.
func (c *collector) mismatch(d *Descriptor, v any) {
	exp := d.TypeFormat()
	act := DescribeValue(v)
	c.add(i18n.T(CodeInvalidType, map[string]string{
		"expected": exp.Format,
		"actual":   act.Format,
	}), exp, act)
}

// outOfRange records an integral value outside d's intrinsic bounds.
func (c *collector) outOfRange(d *Descriptor, n json.Number) {
	exp := d.TypeFormat()
	min, max := d.intKind.bounds()
	c.add(i18n.T(CodeOutOfRange, map[string]string{
		"value": n.String(),
		"type":  exp.Type,
		"min":   min,
		"max":   max,
	}), exp, DescribeValue(n))
}

// missing records an absent required member at the current (already pushed)
// location.
func (c *collector) missing(d *Descriptor) {
	c.add(i18n.T(CodeRequired, nil), d.TypeFormat(), TypeFormat{Type: "null", Format: "null"})
}
