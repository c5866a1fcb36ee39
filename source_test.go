package paramcheck_test

import (
	"context"
	"io"
	"strings"
	"testing"

	paramcheck "github.com/reoring/paramcheck"
	_ "github.com/reoring/paramcheck/source"
	gojsonsrc "github.com/reoring/paramcheck/source/gojson"
)

// The source package's init swaps the default driver for go-json.
func TestDriverRegistration(t *testing.T) {
	s := userSchema()
	ctx := context.Background()

	if _, err := paramcheck.ParseBytes[any](ctx, s, []byte(`{"name":"A","age":1,"email":"a@b"}`)); err != nil {
		t.Fatalf("registered driver failed: %v", err)
	}

	paramcheck.UseDefaultJSONDriver()
	defer paramcheck.SetJSONDriver(gojsonsrc.Driver())
	if _, err := paramcheck.ParseBytes[any](ctx, s, []byte(`{"name":"A","age":1,"email":"a@b"}`)); err != nil {
		t.Fatalf("stdlib driver failed: %v", err)
	}
}

func TestGoJSONDriver_MatchesDefault(t *testing.T) {
	ctx := context.Background()
	s := userSchema()
	in := []byte(`{"name":7,"age":300,"email":"a@b"}`)

	_, err := paramcheck.ParseFrom[any](ctx, s, gojsonsrc.Driver().NewBytes(in))
	p1 := mustProblem(t, err)

	paramcheck.UseDefaultJSONDriver()
	defer paramcheck.SetJSONDriver(gojsonsrc.Driver())
	_, err = paramcheck.ParseBytes[any](ctx, s, in)
	p2 := mustProblem(t, err)

	if len(p1.InvalidParams) != len(p2.InvalidParams) {
		t.Fatalf("drivers disagree: %d vs %d", len(p1.InvalidParams), len(p2.InvalidParams))
	}
	for i := range p1.InvalidParams {
		if p1.InvalidParams[i].Pointer != p2.InvalidParams[i].Pointer {
			t.Fatalf("drivers disagree at %d: %s vs %s",
				i, p1.InvalidParams[i].Pointer, p2.InvalidParams[i].Pointer)
		}
	}
}

func TestJSONReader(t *testing.T) {
	ctx := context.Background()
	r := strings.NewReader(`{"name":"A","age":1,"email":"a@b"}`)
	if _, err := paramcheck.ParseReader[any](ctx, userSchema(), r); err != nil {
		t.Fatalf("reader parse failed: %v", err)
	}
}

func TestSourceRoundTrip(t *testing.T) {
	// SourceFromEngine and EngineTokenSource must unwrap to the inner source
	// without re-boxing tokens.
	inner := gojsonsrc.NewBytes([]byte(`"x"`))
	src := paramcheck.SourceFromEngine(inner)
	back := paramcheck.EngineTokenSource(src)
	tok, err := back.NextToken()
	if err != nil {
		t.Fatalf("NextToken: %v", err)
	}
	if tok.String != "x" {
		t.Fatalf("token = %+v", tok)
	}
	if _, err := back.NextToken(); err != io.EOF {
		t.Fatalf("want EOF, got %v", err)
	}
}
