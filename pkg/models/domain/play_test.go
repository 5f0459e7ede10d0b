package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		raw      string
		expected Genre
		wantErr  bool
	}{
		{raw: "tragedy", expected: GenreTragedy},
		{raw: "comedy", expected: GenreComedy},
		{raw: " Comedy ", expected: GenreComedy},
		{raw: "history", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			genre, err := ParseGenre(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownGenre)
				var genreErr *GenreError
				require.True(t, errors.As(err, &genreErr))
				assert.Equal(t, tt.raw, genreErr.Genre)
				assert.Equal(t, GenreUnknown, genre)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, genre)
		})
	}
}

func TestGenre_JSON(t *testing.T) {
	var payload struct {
		Type Genre `json:"type"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"type":"comedy"}`), &payload))
	assert.Equal(t, GenreComedy, payload.Type)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"comedy"}`, string(out))

	err = json.Unmarshal([]byte(`{"type":"pastoral"}`), &payload)
	assert.ErrorIs(t, err, ErrUnknownGenre)

	_, err = json.Marshal(struct{ G Genre }{G: GenreUnknown})
	assert.Error(t, err)
}

func TestCatalog_Lookup(t *testing.T) {
	catalog := Catalog{"hamlet": {ID: "hamlet", Name: "Hamlet", Genre: GenreTragedy}}

	play, err := catalog.Lookup("hamlet")
	require.NoError(t, err)
	assert.Equal(t, "Hamlet", play.Name)

	_, err = catalog.Lookup("macbeth")
	assert.ErrorIs(t, err, ErrUnknownPlay)
	assert.EqualError(t, err, `unknown play: "macbeth"`)
}

func TestMoney_Units(t *testing.T) {
	assert.Equal(t, "1730.00", Money(173000).Units().StringFixed(2))
	assert.Equal(t, "0.05", Money(5).Units().StringFixed(2))
	assert.Equal(t, "123.45", Money(12345).Units().String())
	assert.Equal(t, "12345", Money(12345).String())
}
