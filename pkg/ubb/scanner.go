// scanner.go implements the single-pass UBB tokenizer.
package ubb

import "strings"

// scanner state values
const (
	stateNoEscape = iota
	stateEscape   // previous character was a backslash
)

// Parse scans UBB text into a tree. It never fails: unknown or malformed
// bracket content degrades to text and misnested tags are repaired.
func Parse(input string) *Tree {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	t := NewTree()
	b := newBuilder(t)
	s := &scanner{builder: b}

	for i := 0; i < len(input); i++ {
		s.step(input[i])
	}
	s.flush()

	return t
}

// scanner accumulates text and tag buffers. It works on bytes: every
// structural character is ASCII and never appears inside a multi-byte UTF-8
// sequence.
type scanner struct {
	builder *builder
	state   int

	buf     strings.Builder
	inTag   bool // buf holds a bracket run starting with '['
	escaped bool // the current bracket run contains an escaped character
}

func (s *scanner) step(c byte) {
	if s.state == stateEscape {
		s.state = stateNoEscape
		if c == '[' || c == ']' {
			s.buf.WriteByte(c)
			s.escaped = s.escaped || s.inTag
			return
		}
	}

	switch c {
	case '\\':
		s.state = stateEscape
	case '[':
		s.flush()
		s.inTag = true
		s.buf.WriteByte(c)
	case ']':
		if !s.inTag {
			s.buf.WriteByte(c)
			return
		}
		s.closeBracket()
	case '\n':
		s.flush()
		s.builder.lineBreak()
	default:
		s.buf.WriteByte(c)
	}
}

// flush emits the pending buffer as text. An unterminated bracket run is
// ordinary text at this point.
func (s *scanner) flush() {
	s.builder.text(s.buf.String())
	s.reset()
}

func (s *scanner) reset() {
	s.buf.Reset()
	s.inTag = false
	s.escaped = false
}

// closeBracket handles the ']' ending a bracket run.
func (s *scanner) closeBracket() {
	raw := s.buf.String()
	escaped := s.escaped
	s.reset()

	tag, ok := parseTag(raw)
	if !ok {
		// Not a tag at all. Kept verbatim when re-emitting it unescaped
		// reproduces the same text.
		if escaped {
			s.builder.text(raw + "]")
		} else {
			s.builder.verbatim(raw+"]", tag.name)
		}
		return
	}

	if tag.close {
		s.builder.close(tag.kind)
		return
	}
	s.builder.open(s.builder.tree.NewElement(tag.kind, tag.attr))
}

// scannedTag is a recognized open or close tag.
type scannedTag struct {
	kind  Kind
	name  string // as written
	close bool
	attr  string // everything after the name, verbatim
}

// parseTag matches buf (a bracket run without its closing ']') against
// `\[(/)?([A-Za-z]+)`. ok is false when the pattern does not match or the name
// is not a registered tag; name is still set in the latter case.
func parseTag(buf string) (scannedTag, bool) {
	var tag scannedTag
	if len(buf) < 2 || buf[0] != '[' {
		return tag, false
	}

	pos := 1
	if buf[pos] == '/' {
		tag.close = true
		pos++
	}
	start := pos
	for pos < len(buf) && isTagNameChar(buf[pos]) {
		pos++
	}
	if pos == start {
		return tag, false
	}

	tag.name = buf[start:pos]
	kind, ok := Lookup(tag.name)
	if !ok {
		return tag, false
	}
	tag.kind = kind
	if !tag.close {
		tag.attr = buf[pos:]
	}
	return tag, true
}

func isTagNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
