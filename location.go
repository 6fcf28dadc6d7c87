package rholisp

import "fmt"

// Location marks a single point within the source text being read.
type Location struct {
	Line   int
	Column int
	Cursor int
}

// Span marks a range within the source text, from Start up to (not
// including) End.
type Span struct {
	Start Location
	End   Location
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start.Line+1, s.Start.Column+1)
}
