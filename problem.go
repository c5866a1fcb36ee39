package paramcheck

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType = "invalid_type"
	CodeOutOfRange  = "out_of_range"
	CodeRequired    = "required"
	CodeParseError  = "parse_error"
)

// ProblemTitle is the fixed title attached to every validation Problem.
const ProblemTitle = "Your request parameters didn't validate."

// ProblemStatus is the HTTP status reported for validation failures.
const ProblemStatus = 400

// TypeFormat labels a type on the wire: a concrete type name ("u8", "string",
// a record name, ...) plus its broad JSON format ("integer", "object", ...).
type TypeFormat struct {
	Type   string `json:"type"`
	Format string `json:"format"`
}

// InvalidParam is a single validation failure. Pointer addresses the failing
// location inside the input document.
type InvalidParam struct {
	Name     string     `json:"name"`              // Last path segment; empty at root.
	Reason   *string    `json:"reason"`            // Human-readable cause; nil when absent.
	Expected TypeFormat `json:"expected"`          // What the descriptor required.
	Actual   TypeFormat `json:"actual"`            // What the input actually carried.
	Pointer  string     `json:"pointer"`           // RFC 6901 pointer, "#"-anchored.
}

// Problem is the RFC 7807 shaped report summarizing every failure found in one
// validation pass. It implements error so callers can return it directly.
type Problem struct {
	Type          *string        `json:"type"`     // Reserved; always nil for now.
	Title         string         `json:"title"`
	Detail        *string        `json:"detail"`   // Syntax-error message, or nil.
	Instance      *string        `json:"instance"` // Reserved; always nil for now.
	Status        *int           `json:"status"`
	InvalidParams []InvalidParam `json:"invalid_params"`
}

// Error summarizes the first few invalid parameters.
func (p *Problem) Error() string {
	if p == nil {
		return ""
	}
	if len(p.InvalidParams) == 0 {
		if p.Detail != nil {
			return fmt.Sprintf("%s: %s", p.Title, *p.Detail)
		}
		return p.Title
	}
	const maxShown = 3
	b := &strings.Builder{}
	b.WriteString(p.Title)
	n := len(p.InvalidParams)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		ip := p.InvalidParams[i]
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString("; ")
		}
		if ip.Reason != nil {
			fmt.Fprintf(b, "%s at %s", *ip.Reason, ip.Pointer)
		} else {
			fmt.Fprintf(b, "invalid value at %s", ip.Pointer)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsProblem extracts a *Problem from an error using errors.As internally.
func AsProblem(err error) (*Problem, bool) {
	if err == nil {
		return nil, false
	}
	var p *Problem
	if errors.As(err, &p) {
		return p, true
	}
	return nil, false
}

// newValidationProblem assembles the error variant from collected entries.
// Ownership of params transfers to the Problem.
func newValidationProblem(params []InvalidParam) *Problem {
	status := ProblemStatus
	return &Problem{
		Title:         ProblemTitle,
		Status:        &status,
		InvalidParams: params,
	}
}

// newSyntaxProblem reports input that never produced a value tree. Traversal
// is skipped entirely, so invalid_params stays empty.
func newSyntaxProblem(detail string) *Problem {
	status := ProblemStatus
	return &Problem{
		Title:         ProblemTitle,
		Detail:        &detail,
		Status:        &status,
		InvalidParams: []InvalidParam{},
	}
}
