package domain

import (
	"fmt"
	"strings"
)

// Genre is the closed set of play categories that have a pricing formula.
type Genre int

const (
	GenreUnknown Genre = iota
	GenreTragedy
	GenreComedy
)

var genreNames = map[Genre]string{
	GenreTragedy: "tragedy",
	GenreComedy:  "comedy",
}

// ParseGenre converts a raw genre string into a Genre.
// Anything outside the supported set fails with ErrUnknownGenre.
func ParseGenre(raw string) (Genre, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tragedy":
		return GenreTragedy, nil
	case "comedy":
		return GenreComedy, nil
	default:
		return GenreUnknown, &GenreError{Genre: raw}
	}
}

func (g Genre) Valid() bool {
	_, ok := genreNames[g]
	return ok
}

func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Genre(%d)", int(g))
}

func (g Genre) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, &GenreError{Genre: g.String()}
	}
	return []byte(g.String()), nil
}

func (g *Genre) UnmarshalText(text []byte) error {
	parsed, err := ParseGenre(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Play is catalog reference data looked up by ID.
type Play struct {
	ID    string
	Name  string
	Genre Genre
}

// Catalog maps play IDs to plays. It is never mutated by the pricing engine.
type Catalog map[string]Play

func (c Catalog) Lookup(playID string) (Play, error) {
	play, ok := c[playID]
	if !ok {
		return Play{}, &PlayError{PlayID: playID}
	}
	return play, nil
}
