package yaml

import (
	"fmt"
	"io"
	"strconv"

	yamlv3 "gopkg.in/yaml.v3"

	paramcheck "github.com/reoring/paramcheck"
	eng "github.com/reoring/paramcheck/internal/engine"
)

// NewBytes wraps a YAML document as a paramcheck.Source so the same
// descriptors validate YAML input. Only the first document of a multi-document
// stream is consumed.
func NewBytes(b []byte) paramcheck.Source {
	return paramcheck.SourceFromEngine(newSource(b))
}

// NewReader wraps an io.Reader carrying YAML as a paramcheck.Source.
func NewReader(r io.Reader) paramcheck.Source {
	b, err := io.ReadAll(r)
	if err != nil {
		return paramcheck.SourceFromEngine(&source{err: err})
	}
	return NewBytes(b)
}

// source flattens the decoded node tree into engine tokens up front; streaming
// YAML is a non-goal, the whole tree is in memory either way.
type source struct {
	toks []eng.Token
	pos  int
	err  error
}

func newSource(b []byte) *source {
	var root yamlv3.Node
	if err := yamlv3.Unmarshal(b, &root); err != nil {
		return &source{err: err}
	}
	s := &source{}
	n := &root
	if n.Kind == yamlv3.DocumentNode {
		if len(n.Content) == 0 {
			s.err = io.ErrUnexpectedEOF
			return s
		}
		n = n.Content[0]
	}
	if err := s.emit(n); err != nil {
		return &source{err: err}
	}
	return s
}

func (s *source) emit(n *yamlv3.Node) error {
	switch n.Kind {
	case yamlv3.AliasNode:
		return s.emit(n.Alias)
	case yamlv3.MappingNode:
		s.toks = append(s.toks, eng.Token{Kind: eng.KindBeginObject, Offset: -1})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yamlv3.ScalarNode {
				return fmt.Errorf("yaml: non-scalar mapping key at line %d", k.Line)
			}
			s.toks = append(s.toks, eng.Token{Kind: eng.KindKey, String: k.Value, Offset: -1})
			if err := s.emit(v); err != nil {
				return err
			}
		}
		s.toks = append(s.toks, eng.Token{Kind: eng.KindEndObject, Offset: -1})
		return nil
	case yamlv3.SequenceNode:
		s.toks = append(s.toks, eng.Token{Kind: eng.KindBeginArray, Offset: -1})
		for _, el := range n.Content {
			if err := s.emit(el); err != nil {
				return err
			}
		}
		s.toks = append(s.toks, eng.Token{Kind: eng.KindEndArray, Offset: -1})
		return nil
	case yamlv3.ScalarNode:
		return s.emitScalar(n)
	default:
		return fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

func (s *source) emitScalar(n *yamlv3.Node) error {
	switch n.Tag {
	case "!!null":
		s.toks = append(s.toks, eng.Token{Kind: eng.KindNull, Offset: -1})
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return fmt.Errorf("yaml: bad bool %q at line %d", n.Value, n.Line)
		}
		s.toks = append(s.toks, eng.Token{Kind: eng.KindBool, Bool: b, Offset: -1})
	case "!!int", "!!float":
		s.toks = append(s.toks, eng.Token{Kind: eng.KindNumber, Number: n.Value, Offset: -1})
	default:
		s.toks = append(s.toks, eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1})
	}
	return nil
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *source) Location() int64 { return -1 }
