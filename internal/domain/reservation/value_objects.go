package reservation

import (
	"errors"
	"unicode/utf8"
)

const MaxNoteLength = 500

var (
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNoteTooLong   = errors.New("note must be at most 500 characters")
)

// Money is an amount in minor currency units. The engine stores the total it is given and never prices anything.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	if utf8.RuneCountInString(value) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
