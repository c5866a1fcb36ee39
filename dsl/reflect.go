package dsl

import (
	"fmt"
	"reflect"
	"strings"

	paramcheck "github.com/reoring/paramcheck"
)

// DescriptorOf derives an object descriptor from struct type T. Field keys
// follow paramcheck.ResolveStructKey; fields are required unless they are
// pointers (mapped to Optional) or their json tag carries omitempty.
func DescriptorOf[T any]() (*paramcheck.Descriptor, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: DescriptorOf requires a struct type, got %s", rt)
	}
	return descriptorOfStruct(rt)
}

// For derives the descriptor from T and binds it back to T in one step.
func For[T any]() (paramcheck.Schema[T], error) {
	d, err := DescriptorOf[T]()
	if err != nil {
		return nil, err
	}
	return newTypedSchema[T](d)
}

// MustFor is like For but panics on error.
func MustFor[T any]() paramcheck.Schema[T] {
	s, err := For[T]()
	if err != nil {
		panic(err)
	}
	return s
}

func descriptorOfStruct(rt reflect.Type) (*paramcheck.Descriptor, error) {
	fields := make([]paramcheck.Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := paramcheck.ResolveStructKey(sf)
		if key == "" || key == "-" {
			continue
		}
		fd, err := descriptorOfType(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", rt.Name(), sf.Name, err)
		}
		required := sf.Type.Kind() != reflect.Pointer && !hasOmitEmpty(sf)
		fields = append(fields, paramcheck.Field{Name: key, Desc: fd, Required: required})
	}
	return paramcheck.NewObject(rt.Name(), fields...), nil
}

func descriptorOfType(rt reflect.Type) (*paramcheck.Descriptor, error) {
	switch rt.Kind() {
	case reflect.String:
		return String(), nil
	case reflect.Bool:
		return Bool(), nil
	case reflect.Int8:
		return Int8(), nil
	case reflect.Int16:
		return Int16(), nil
	case reflect.Int32:
		return Int32(), nil
	case reflect.Int64, reflect.Int:
		return Int64(), nil
	case reflect.Uint8:
		return Uint8(), nil
	case reflect.Uint16:
		return Uint16(), nil
	case reflect.Uint32:
		return Uint32(), nil
	case reflect.Uint64, reflect.Uint:
		return Uint64(), nil
	case reflect.Float32:
		return Float32(), nil
	case reflect.Float64:
		return Float64(), nil
	case reflect.Pointer:
		inner, err := descriptorOfType(rt.Elem())
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	case reflect.Slice:
		elem, err := descriptorOfType(rt.Elem())
		if err != nil {
			return nil, err
		}
		return Array(elem), nil
	case reflect.Struct:
		return descriptorOfStruct(rt)
	}
	return nil, fmt.Errorf("unsupported field type %s", rt)
}

func hasOmitEmpty(sf reflect.StructField) bool {
	jt := sf.Tag.Get("json")
	if jt == "" {
		return false
	}
	parts := strings.Split(jt, ",")
	for _, p := range parts[1:] {
		if p == "omitempty" {
			return true
		}
	}
	return false
}
