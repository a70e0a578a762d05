package augment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/moviectl/moviectl/tmdb"
)

type stubGenerator struct {
	text       string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.text, s.err
}

func TestAugment(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	movie := tmdb.Movie{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30"}

	t.Run("success attaches generated text", func(t *testing.T) {
		gen := &stubGenerator{text: "A mind-bending classic."}
		a := NewAugmenter(gen, logger)

		got := a.Augment(ctx, movie)
		assert.Equal(t, "A mind-bending classic.", got.Summary)
		assert.Contains(t, gen.lastPrompt, "'The Matrix'")
	})

	t.Run("generator error attaches placeholder", func(t *testing.T) {
		gen := &stubGenerator{err: errors.New("quota exceeded")}
		a := NewAugmenter(gen, logger)

		got := a.Augment(ctx, tmdb.Movie{ID: 1, Title: "X"})
		assert.Equal(t, Placeholder, got.Summary)
	})

	t.Run("empty response attaches placeholder", func(t *testing.T) {
		gen := &stubGenerator{text: ""}
		a := NewAugmenter(gen, logger)

		got := a.Augment(ctx, movie)
		assert.Equal(t, Placeholder, got.Summary)
	})

	t.Run("input movie is not mutated", func(t *testing.T) {
		gen := &stubGenerator{text: "summary"}
		a := NewAugmenter(gen, logger)

		_ = a.Augment(ctx, movie)
		assert.Empty(t, movie.Summary)
	})
}

func TestNewGeminiGenerator(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		_, err := NewGeminiGenerator(context.Background(), "", DefaultModel)
		assert.Error(t, err)
	})
}

func ExampleAugmenter_Augment() {
	gen := &stubGenerator{err: errors.New("unreachable")}
	a := NewAugmenter(gen, zerolog.Nop())

	movie := a.Augment(context.Background(), tmdb.Movie{Title: "Heat"})
	fmt.Println(movie.Summary)
	// Output: AI summary unavailable.
}
