package dsl_test

import (
	"context"
	"testing"

	paramcheck "github.com/reoring/paramcheck"
	d "github.com/reoring/paramcheck/dsl"
)

type account struct {
	Name  string   `json:"name"`
	Age   uint8    `json:"age"`
	Note  *string  `json:"note"`
	Tags  []string `json:"tags"`
	Score float32  `json:"score"`
}

func accountBuilder() *d.ObjectBuilder {
	return d.Object("account").
		Field("name", d.String()).Required().
		Field("age", d.Uint8()).Required().
		Field("note", d.Optional(d.String())).Optional().
		Field("tags", d.Array(d.String())).Optional().
		Field("score", d.Float32()).Optional()
}

func TestBind_PopulatesStruct(t *testing.T) {
	ctx := context.Background()
	s, err := d.Bind[account](accountBuilder())
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	in := []byte(`{"name":"Alice","age":30,"note":"hi","tags":["a","b"],"score":1.5}`)
	got, err := paramcheck.ParseBytes(ctx, s, in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Name != "Alice" || got.Age != 30 {
		t.Fatalf("got %+v", got)
	}
	if got.Note == nil || *got.Note != "hi" {
		t.Fatalf("note = %v", got.Note)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "a" {
		t.Fatalf("tags = %v", got.Tags)
	}
	if got.Score != 1.5 {
		t.Fatalf("score = %v", got.Score)
	}
}

func TestBind_NullOptionalMapsToNilPointer(t *testing.T) {
	ctx := context.Background()
	s := d.MustBind[account](accountBuilder())
	got, err := paramcheck.ParseBytes(ctx, s, []byte(`{"name":"Bob","age":1,"note":null}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Note != nil {
		t.Fatalf("note = %v, want nil", got.Note)
	}
}

func TestBind_ProblemPassesThrough(t *testing.T) {
	ctx := context.Background()
	s := d.MustBind[account](accountBuilder())
	_, err := paramcheck.ParseBytes(ctx, s, []byte(`{"age":300}`))
	p, ok := paramcheck.AsProblem(err)
	if !ok {
		t.Fatalf("expected Problem, got %v", err)
	}
	if len(p.InvalidParams) != 2 {
		t.Fatalf("expected name missing plus age range, got %+v", p.InvalidParams)
	}
}

func TestBind_PointerTarget(t *testing.T) {
	ctx := context.Background()
	s, err := d.Bind[*account](accountBuilder())
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	got, err := paramcheck.ParseBytes(ctx, s, []byte(`{"name":"Cara","age":9}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got == nil || got.Name != "Cara" || got.Age != 9 {
		t.Fatalf("got %+v", got)
	}
}

func TestBind_NonStructFails(t *testing.T) {
	_, err := d.Bind[int](accountBuilder())
	if err == nil {
		t.Fatalf("expected error for non-struct target")
	}
}

type nested struct {
	Inner inner `json:"inner"`
}

type inner struct {
	V uint16 `json:"v"`
}

func TestBind_NestedStruct(t *testing.T) {
	ctx := context.Background()
	b := d.Object("nested").
		Field("inner", d.Object("inner").Field("v", d.Uint16()).Required().MustBuild()).Required()
	s := d.MustBind[nested](b)
	got, err := paramcheck.ParseBytes(ctx, s, []byte(`{"inner":{"v":7}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Inner.V != 7 {
		t.Fatalf("got %+v", got)
	}
}

type tagged struct {
	A string `paramcheck:"name=alpha" json:"ignored"`
	B string `json:"beta"`
	C string
}

func TestBind_KeyResolution(t *testing.T) {
	ctx := context.Background()
	b := d.Object("tagged").
		Field("alpha", d.String()).Required().
		Field("beta", d.String()).Required().
		Field("C", d.String()).Required()
	s := d.MustBind[tagged](b)
	got, err := paramcheck.ParseBytes(ctx, s, []byte(`{"alpha":"1","beta":"2","C":"3"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.A != "1" || got.B != "2" || got.C != "3" {
		t.Fatalf("got %+v", got)
	}
}
