package yaml_test

import (
	"context"
	"strings"
	"testing"

	paramcheck "github.com/reoring/paramcheck"
	d "github.com/reoring/paramcheck/dsl"
	yamlsrc "github.com/reoring/paramcheck/source/yaml"
)

func schema() *paramcheck.Descriptor {
	return d.Object("user").
		Field("name", d.String()).Required().
		Field("age", d.Uint8()).Required().
		Field("tags", d.Array(d.String())).Optional().
		Field("note", d.Optional(d.String())).Optional().
		MustBuild()
}

func TestYAMLSource_ValidDocument(t *testing.T) {
	ctx := context.Background()
	doc := "name: Alice\nage: 30\ntags:\n  - a\n  - b\nnote: null\n"
	v, err := paramcheck.ParseFrom[any](ctx, schema(), yamlsrc.NewBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("unexpected problem: %v", err)
	}
	m := v.(map[string]any)
	if m["name"] != "Alice" {
		t.Fatalf("name = %v", m["name"])
	}
	if age, ok := m["age"].(uint8); !ok || age != 30 {
		t.Fatalf("age = %T(%v)", m["age"], m["age"])
	}
	if m["note"] != nil {
		t.Fatalf("note = %v", m["note"])
	}
}

func TestYAMLSource_ViolationsCarryPointers(t *testing.T) {
	ctx := context.Background()
	doc := "name: Alice\nage: 300\ntags:\n  - ok\n  - 7\n"
	_, err := paramcheck.ParseFrom[any](ctx, schema(), yamlsrc.NewBytes([]byte(doc)))
	p, ok := paramcheck.AsProblem(err)
	if !ok {
		t.Fatalf("expected Problem, got %v", err)
	}
	byPtr := map[string]bool{}
	for _, ip := range p.InvalidParams {
		byPtr[ip.Pointer] = true
	}
	if !byPtr["#/age"] || !byPtr["#/tags/1"] {
		t.Fatalf("pointers wrong: %+v", p.InvalidParams)
	}
}

func TestYAMLSource_ScalarTagging(t *testing.T) {
	ctx := context.Background()
	s := d.Object("o").
		Field("i", d.Int32()).Required().
		Field("f", d.Float64()).Required().
		Field("b", d.Bool()).Required().
		Field("s", d.String()).Required().
		MustBuild()
	doc := "i: -5\nf: 1.25\nb: true\ns: \"300\"\n"
	v, err := paramcheck.ParseFrom[any](ctx, s, yamlsrc.NewBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("unexpected problem: %v", err)
	}
	m := v.(map[string]any)
	if i, ok := m["i"].(int32); !ok || i != -5 {
		t.Fatalf("i = %T(%v)", m["i"], m["i"])
	}
	// A quoted scalar stays a string even when it looks numeric.
	if m["s"] != "300" {
		t.Fatalf("s = %v", m["s"])
	}
	if m["b"] != true {
		t.Fatalf("b = %v", m["b"])
	}
}

func TestYAMLSource_SyntaxFailure(t *testing.T) {
	ctx := context.Background()
	_, err := paramcheck.ParseFrom[any](ctx, schema(), yamlsrc.NewBytes([]byte("name: [unclosed")))
	p, ok := paramcheck.AsProblem(err)
	if !ok {
		t.Fatalf("expected Problem, got %v", err)
	}
	if p.Detail == nil || *p.Detail == "" {
		t.Fatalf("detail = %v", p.Detail)
	}
	if len(p.InvalidParams) != 0 {
		t.Fatalf("invalid_params should be empty, got %+v", p.InvalidParams)
	}
}

func TestYAMLSource_Reader(t *testing.T) {
	ctx := context.Background()
	r := strings.NewReader("name: Bob\nage: 1\n")
	if _, err := paramcheck.ParseFrom[any](ctx, schema(), yamlsrc.NewReader(r)); err != nil {
		t.Fatalf("unexpected problem: %v", err)
	}
}

func TestYAMLSource_Anchors(t *testing.T) {
	ctx := context.Background()
	s := d.Object("o").
		Field("a", d.String()).Required().
		Field("b", d.String()).Required().
		MustBuild()
	doc := "a: &x hello\nb: *x\n"
	v, err := paramcheck.ParseFrom[any](ctx, s, yamlsrc.NewBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("unexpected problem: %v", err)
	}
	m := v.(map[string]any)
	if m["b"] != "hello" {
		t.Fatalf("alias not resolved: %v", m["b"])
	}
}
