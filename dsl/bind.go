package dsl

import (
	"context"
	"fmt"
	"reflect"

	paramcheck "github.com/reoring/paramcheck"
)

// Bind builds the object descriptor and binds it to struct type T, so a
// successful validation constructs T directly.
func Bind[T any](b *ObjectBuilder) (paramcheck.Schema[T], error) {
	d, err := b.Build()
	if err != nil {
		return nil, err
	}
	return newTypedSchema[T](d)
}

// MustBind is like Bind but panics on error.
func MustBind[T any](b *ObjectBuilder) paramcheck.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// typedSchema adapts an object descriptor to a struct type using key
// resolution over the struct's tags.
type typedSchema[T any] struct {
	desc       *paramcheck.Descriptor
	t          reflect.Type
	ptr        bool // T is a pointer to the struct
	fieldByKey map[string]int // descriptor key -> struct field index
}

func newTypedSchema[T any](d *paramcheck.Descriptor) (paramcheck.Schema[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	ptr := false
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
		ptr = true
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: Bind requires a struct type, got %s", rt)
	}
	idxByKey := make(map[string]int)
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := paramcheck.ResolveStructKey(sf)
		if key == "" || key == "-" {
			continue
		}
		idxByKey[key] = i
	}
	fm := make(map[string]int)
	for _, f := range d.Fields() {
		if i, ok := idxByKey[f.Name]; ok {
			fm[f.Name] = i
		}
	}
	return &typedSchema[T]{desc: d, t: rt, ptr: ptr, fieldByKey: fm}, nil
}

func (s *typedSchema[T]) Descriptor() *paramcheck.Descriptor { return s.desc }

// Parse validates v and populates a T from the canonical map.
func (s *typedSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	out, err := paramcheck.Check(ctx, s.desc, v)
	if err != nil {
		return zero, err
	}
	m, ok := out.(map[string]any)
	if !ok {
		return zero, fmt.Errorf("dsl: object descriptor produced %T", out)
	}
	rv := reflect.New(s.t).Elem()
	for key, idx := range s.fieldByKey {
		val, ok := m[key]
		if !ok {
			continue
		}
		if err := assignValue(rv.Field(idx), val); err != nil {
			return zero, fmt.Errorf("dsl: field %q: %w", key, err)
		}
	}
	if s.ptr {
		return rv.Addr().Interface().(T), nil
	}
	return rv.Interface().(T), nil
}

// assignValue writes a canonical value into a struct field, descending into
// nested structs, slices, and pointers (Optional members).
func assignValue(fv reflect.Value, val any) error {
	if !fv.CanSet() {
		return nil
	}
	if val == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	switch fv.Kind() {
	case reflect.Pointer:
		ev := reflect.New(fv.Type().Elem())
		if err := assignValue(ev.Elem(), val); err != nil {
			return err
		}
		fv.Set(ev)
		return nil
	case reflect.Struct:
		m, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot assign %T to %s", val, fv.Type())
		}
		rt := fv.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			key := paramcheck.ResolveStructKey(sf)
			if key == "" || key == "-" {
				continue
			}
			if mv, ok := m[key]; ok {
				if err := assignValue(fv.Field(i), mv); err != nil {
					return err
				}
			}
		}
		return nil
	case reflect.Slice:
		arr, ok := val.([]any)
		if !ok {
			return fmt.Errorf("cannot assign %T to %s", val, fv.Type())
		}
		sv := reflect.MakeSlice(fv.Type(), len(arr), len(arr))
		for i, el := range arr {
			if err := assignValue(sv.Index(i), el); err != nil {
				return err
			}
		}
		fv.Set(sv)
		return nil
	}
	vv := reflect.ValueOf(val)
	if vv.Type().AssignableTo(fv.Type()) {
		fv.Set(vv)
		return nil
	}
	if vv.Type().ConvertibleTo(fv.Type()) {
		fv.Set(vv.Convert(fv.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", val, fv.Type())
}
