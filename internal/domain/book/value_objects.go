package book

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCode        = errors.New("book code is required")
	ErrEmptyTitle       = errors.New("book title is required")
	ErrEmptyAuthor      = errors.New("book author is required")
	ErrEmptyGenre       = errors.New("book genre is required")
	ErrEmptyImage       = errors.New("book image is required")
	ErrNegativeCopies   = errors.New("copy count cannot be negative")
	ErrAvailableExceeds = errors.New("available copies cannot exceed total copies")
)

// Code is the human-facing catalog identifier, unique across the library.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Code{}, ErrEmptyCode
	}
	return Code{value: s}, nil
}

func (c Code) Value() string {
	return c.value
}
