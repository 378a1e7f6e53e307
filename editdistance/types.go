package editdistance

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned when replaying or parsing an edit script.
var (
	// ErrInvalidScript indicates an operation tag outside {M, C, I, D}.
	ErrInvalidScript = errors.New("editdistance: invalid operation in script")

	// ErrScriptMismatch indicates that a script consumes more or fewer
	// elements than the sequences hold.
	ErrScriptMismatch = errors.New("editdistance: script does not fit sequences")
)

// Op is a single edit operation. Its value is the tag used in script strings.
type Op byte

const (
	// Match keeps an element that is equal in both sequences.
	Match Op = 'M'

	// Convert substitutes an element of the first sequence with one of the second.
	Convert Op = 'C'

	// Insert takes an element from the second sequence only.
	Insert Op = 'I'

	// Delete drops an element of the first sequence.
	Delete Op = 'D'
)

// String returns the one-letter tag.
func (o Op) String() string { return string(o) }

// Marker returns the middle-line alignment character: '|' for Match, '*' for
// Convert and a blank for Insert and Delete.
func (o Op) Marker() byte {
	switch o {
	case Match:
		return '|'
	case Convert:
		return '*'
	default:
		return ' '
	}
}

func (o Op) valid() bool {
	return o == Match || o == Convert || o == Insert || o == Delete
}

// Script is an ordered list of operations turning one sequence into another.
type Script []Op

// String renders the script as its tags, e.g. "DMMMICM".
func (s Script) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, op := range s {
		sb.WriteByte(byte(op))
	}

	return sb.String()
}

// Cost returns the number of non-Match operations.
func (s Script) Cost() int {
	n := 0
	for _, op := range s {
		if op != Match {
			n++
		}
	}

	return n
}

// ParseScript converts a tag string such as "DMMMICM" into a Script.
func ParseScript(tags string) (Script, error) {
	s := make(Script, len(tags))
	for i := 0; i < len(tags); i++ {
		op := Op(tags[i])
		if !op.valid() {
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidScript, tags[i], i)
		}
		s[i] = op
	}

	return s, nil
}

// Alignment is the three-line rendering of an edit script.
//
//	Top     – first sequence, '-' where an element was inserted.
//	Markers – '|' for Match, '*' for Convert, ' ' otherwise.
//	Bottom  – second sequence, '-' where an element was deleted.
type Alignment struct {
	Top     string
	Markers string
	Bottom  string
}

// String joins the three lines with newlines.
func (a Alignment) String() string {
	return a.Top + "\n" + a.Markers + "\n" + a.Bottom
}
