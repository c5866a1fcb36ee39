package dsl

import (
	"fmt"

	paramcheck "github.com/reoring/paramcheck"
)

// ObjectBuilder assembles an object descriptor. Fields keep declaration
// order; that order is the order violations are reported in.
type ObjectBuilder struct {
	name   string
	fields []paramcheck.Field
	err    error
}

type fieldStep struct {
	b   *ObjectBuilder
	idx int
}

// Object creates a new object builder for the record name.
func Object(name string) *ObjectBuilder {
	return &ObjectBuilder{name: name}
}

// Field declares a member with its descriptor. Members are optional unless
// marked Required.
func (b *ObjectBuilder) Field(name string, d *paramcheck.Descriptor) *fieldStep {
	for _, f := range b.fields {
		if f.Name == name {
			if b.err == nil {
				b.err = fmt.Errorf("dsl: duplicate field %q on object %q", name, b.name)
			}
			return &fieldStep{b: b, idx: -1}
		}
	}
	b.fields = append(b.fields, paramcheck.Field{Name: name, Desc: d})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *ObjectBuilder {
	if f.idx >= 0 {
		f.b.fields[f.idx].Required = true
	}
	return f.b
}

// Optional marks the field as optional (the default) and returns the builder.
func (f *fieldStep) Optional() *ObjectBuilder {
	if f.idx >= 0 {
		f.b.fields[f.idx].Required = false
	}
	return f.b
}

func (f *fieldStep) Field(name string, d *paramcheck.Descriptor) *fieldStep {
	return f.b.Field(name, d)
}
func (f *fieldStep) Require(names ...string) *ObjectBuilder { return f.b.Require(names...) }
func (f *fieldStep) Build() (*paramcheck.Descriptor, error) { return f.b.Build() }
func (f *fieldStep) MustBuild() *paramcheck.Descriptor      { return f.b.MustBuild() }

// Require marks one or more declared fields as required.
func (b *ObjectBuilder) Require(names ...string) *ObjectBuilder {
	for _, n := range names {
		found := false
		for i := range b.fields {
			if b.fields[i].Name == n {
				b.fields[i].Required = true
				found = true
				break
			}
		}
		if !found && b.err == nil {
			b.err = fmt.Errorf("dsl: Require(%q) names an undeclared field on object %q", n, b.name)
		}
	}
	return b
}

// Build validates the builder and returns the descriptor.
func (b *ObjectBuilder) Build() (*paramcheck.Descriptor, error) {
	if b.err != nil {
		return nil, b.err
	}
	return paramcheck.NewObject(b.name, b.fields...), nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder) MustBuild() *paramcheck.Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
