package filter

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviectl/moviectl/tmdb"
)

func rating(v float64) *float64 {
	return &v
}

var testMovies = []tmdb.Movie{
	{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", Rating: rating(8.2)},
	{ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15", Rating: rating(8.4)},
	{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-15", Rating: rating(8.3)},
	{ID: 1, Title: "Unknown Pilot", ReleaseDate: "Unknown"},
}

func mustCompile(t *testing.T, expression string) *Filter {
	t.Helper()
	f, err := Compile(expression, zerolog.Nop())
	require.NoError(t, err)
	return f
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "rating comparison", expression: "Rating > 8"},
		{name: "boolean combination", expression: `Rating > 8 and contains(Title, "matrix")`},
		{name: "year helper", expression: "year(ReleaseDate) >= 2010"},
		{name: "syntax error", expression: "Rating >", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression, zerolog.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	t.Run("rating threshold", func(t *testing.T) {
		f := mustCompile(t, "Rating > 8.25")
		assert.False(t, f.Match(testMovies[0]))
		assert.True(t, f.Match(testMovies[1]))
	})

	t.Run("title contains is case-insensitive", func(t *testing.T) {
		f := mustCompile(t, `contains(Title, "MATRIX")`)
		assert.True(t, f.Match(testMovies[0]))
		assert.False(t, f.Match(testMovies[1]))
	})

	t.Run("absent rating evaluates as zero", func(t *testing.T) {
		f := mustCompile(t, "Rating == 0.0")
		assert.True(t, f.Match(testMovies[3]))
		assert.False(t, f.Match(testMovies[0]))
	})

	t.Run("evaluation error counts as non-match", func(t *testing.T) {
		f := mustCompile(t, `contains(ID, "603")`)
		assert.False(t, f.Match(testMovies[0]))
	})

	t.Run("unknown release date yields year zero", func(t *testing.T) {
		f := mustCompile(t, "year(ReleaseDate) == 0")
		assert.True(t, f.Match(testMovies[3]))
		assert.False(t, f.Match(testMovies[0]))
	})
}

func TestApply(t *testing.T) {
	f := mustCompile(t, "year(ReleaseDate) == 1999")
	matched := f.Apply(testMovies)

	require.Len(t, matched, 2)
	assert.Equal(t, "The Matrix", matched[0].Title)
	assert.Equal(t, "Fight Club", matched[1].Title)
}

func TestApplyEmptyInput(t *testing.T) {
	f := mustCompile(t, "Rating > 0")
	assert.Empty(t, f.Apply(nil))
}
