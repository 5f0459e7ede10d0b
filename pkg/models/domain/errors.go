package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlay     = errors.New("unknown play")
	ErrUnknownGenre    = errors.New("unknown genre")
	ErrInvalidAudience = errors.New("invalid audience")
)

// PlayError reports a performance referencing a play absent from the catalog.
type PlayError struct {
	PlayID string
}

func (e *PlayError) Error() string {
	return fmt.Sprintf("unknown play: %q", e.PlayID)
}

func (e *PlayError) Unwrap() error { return ErrUnknownPlay }

// GenreError carries the genre value that could not be priced.
type GenreError struct {
	Genre string
}

func (e *GenreError) Error() string {
	return fmt.Sprintf("unknown type: %s", e.Genre)
}

func (e *GenreError) Unwrap() error { return ErrUnknownGenre }
