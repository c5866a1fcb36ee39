package main

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"

	paramcheck "github.com/reoring/paramcheck"
)

// schemaSpec is the YAML shape of a schema definition. Name doubles as the
// field name inside a fields list and as the record name for objects.
type schemaSpec struct {
	Name     string       `yaml:"name"`
	Required bool         `yaml:"required"`
	Type     string       `yaml:"type"`
	Nullable bool         `yaml:"nullable"`
	Elem     *schemaSpec  `yaml:"elem"`
	Fields   []schemaSpec `yaml:"fields"`
}

func loadSchema(path string) (*paramcheck.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec schemaSpec
	if err := yamlv3.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	d, err := compileSpec(&spec)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return d, nil
}

var intKinds = map[string]paramcheck.IntKind{
	"i8":  paramcheck.IntI8,
	"i16": paramcheck.IntI16,
	"i32": paramcheck.IntI32,
	"i64": paramcheck.IntI64,
	"u8":  paramcheck.IntU8,
	"u16": paramcheck.IntU16,
	"u32": paramcheck.IntU32,
	"u64": paramcheck.IntU64,
}

func compileSpec(s *schemaSpec) (*paramcheck.Descriptor, error) {
	d, err := compileBase(s)
	if err != nil {
		return nil, err
	}
	if s.Nullable {
		d = paramcheck.NewOptional(d)
	}
	return d, nil
}

func compileBase(s *schemaSpec) (*paramcheck.Descriptor, error) {
	switch s.Type {
	case "string":
		return paramcheck.NewString(), nil
	case "bool":
		return paramcheck.NewBool(), nil
	case "f32":
		return paramcheck.NewFloat(paramcheck.FloatF32), nil
	case "f64":
		return paramcheck.NewFloat(paramcheck.FloatF64), nil
	case "array":
		if s.Elem == nil {
			return nil, fmt.Errorf("array %q needs an elem", s.Name)
		}
		elem, err := compileSpec(s.Elem)
		if err != nil {
			return nil, err
		}
		return paramcheck.NewArray(elem), nil
	case "object":
		fields := make([]paramcheck.Field, 0, len(s.Fields))
		for i := range s.Fields {
			fs := &s.Fields[i]
			if fs.Name == "" {
				return nil, fmt.Errorf("object %q has a field without a name", s.Name)
			}
			fd, err := compileSpec(fs)
			if err != nil {
				return nil, err
			}
			fields = append(fields, paramcheck.Field{Name: fs.Name, Desc: fd, Required: fs.Required})
		}
		return paramcheck.NewObject(s.Name, fields...), nil
	}
	if k, ok := intKinds[s.Type]; ok {
		return paramcheck.NewInt(k), nil
	}
	return nil, fmt.Errorf("unknown type %q", s.Type)
}
