package paramcheck

import (
	"strconv"
	"strings"
)

// pathSegment is either an object key or an array index.
type pathSegment struct {
	key     string
	index   int
	isIndex bool
}

func (s pathSegment) text() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// escapeToken applies RFC 6901 escaping to a reference token ("~" -> "~0",
// "/" -> "~1").
var escapeToken = strings.NewReplacer("~", "~0", "/", "~1").Replace

// Path tracks the current traversal location as an ordered stack of segments
// and renders it as a "#"-anchored RFC 6901 JSON Pointer. The zero value is an
// empty path. Pop must only follow a matching push; the traversal engine keeps
// push/pop balanced around every descent, including error exits.
type Path struct {
	segs []pathSegment
}

// PushField descends into the object member name.
func (p *Path) PushField(name string) {
	p.segs = append(p.segs, pathSegment{key: name})
}

// PushIndex descends into the array element i.
func (p *Path) PushIndex(i int) {
	p.segs = append(p.segs, pathSegment{index: i, isIndex: true})
}

// Pop leaves the most recently pushed segment.
func (p *Path) Pop() {
	if n := len(p.segs); n > 0 {
		p.segs = p.segs[:n-1]
	}
}

// Depth returns the current stack depth.
func (p *Path) Depth() int { return len(p.segs) }

// Last returns the raw text of the innermost segment, or "" at the root.
func (p *Path) Last() string {
	if n := len(p.segs); n > 0 {
		return p.segs[n-1].text()
	}
	return ""
}

// Segments returns the raw segment texts, outermost first. Indexes render as
// plain decimal; field names are unescaped.
func (p *Path) Segments() []string {
	out := make([]string, len(p.segs))
	for i, s := range p.segs {
		out[i] = s.text()
	}
	return out
}

// Pointer renders the location. An empty path yields "#".
func (p *Path) Pointer() string {
	if len(p.segs) == 0 {
		return "#"
	}
	b := &strings.Builder{}
	b.WriteByte('#')
	for _, s := range p.segs {
		b.WriteByte('/')
		if s.isIndex {
			b.WriteString(strconv.Itoa(s.index))
		} else {
			b.WriteString(escapeToken(s.key))
		}
	}
	return b.String()
}
