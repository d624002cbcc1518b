// Package scan provides the low-level cursor used by the ISO 8601 grammar.
//
// A Scanner walks a string byte by byte, supports backtracking via Mark and
// Rewind, and maintains a stack of named grammar contexts. The context stack
// is captured into diagnostics when a rule fails, so errors can report not
// just where parsing stopped but which part of the grammar was active.
package scan

import "unicode/utf8"

// Scanner is a cursor over an input string. It holds no resources and is
// cheap to create per parse; it must not be shared between goroutines.
type Scanner struct {
	src string
	pos int
	ctx []string
}

// New returns a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the current byte offset into the input.
func (s *Scanner) Pos() int {
	return s.pos
}

// Done reports whether the whole input has been consumed.
func (s *Scanner) Done() bool {
	return s.pos >= len(s.src)
}

// Mark returns the current position for a later Rewind.
func (s *Scanner) Mark() int {
	return s.pos
}

// Rewind moves the cursor back to a position previously returned by Mark.
// Rewinding does not restore the context stack; callers pair Push and Pop
// around the rules they try, independent of backtracking.
func (s *Scanner) Rewind(mark int) {
	s.pos = mark
}

// Peek returns the byte at the cursor without consuming it.
// It returns 0 when the input is exhausted.
func (s *Scanner) Peek() byte {
	if s.Done() {
		return 0
	}
	return s.src[s.pos]
}

// Eat consumes b if it is the next byte and reports whether it did.
func (s *Scanner) Eat(b byte) bool {
	if s.Done() || s.src[s.pos] != b {
		return false
	}
	s.pos++
	return true
}

// EatRune consumes r if it is the next rune and reports whether it did.
// Unlike Eat it handles multi-byte runes, which the grammar needs for the
// Unicode minus sign.
func (s *Scanner) EatRune(r rune) bool {
	got, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if got != r {
		return false
	}
	s.pos += size
	return true
}

// Digit consumes one ASCII digit and returns it. ok is false if the next
// byte is not a digit; the cursor does not move in that case.
func (s *Scanner) Digit() (b byte, ok bool) {
	c := s.Peek()
	if c < '0' || c > '9' {
		return 0, false
	}
	s.pos++
	return c, true
}

// Slice returns the input consumed since a position previously returned by
// Mark.
func (s *Scanner) Slice(mark int) string {
	return s.src[mark:s.pos]
}

// Push enters a named grammar context. Failing rules snapshot the stack via
// Context, so the name should describe the field being parsed ("year",
// "offset", ...).
func (s *Scanner) Push(name string) {
	s.ctx = append(s.ctx, name)
}

// Pop leaves the most recently entered context.
func (s *Scanner) Pop() {
	s.ctx = s.ctx[:len(s.ctx)-1]
}

// Context returns a copy of the active context stack, outermost first.
func (s *Scanner) Context() []string {
	if len(s.ctx) == 0 {
		return nil
	}
	c := make([]string, len(s.ctx))
	copy(c, s.ctx)
	return c
}
