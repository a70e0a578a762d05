// Package augment enriches movie records with an AI-generated prose summary.
//
// The augmenter never fails: when the generative call errors out (timeout,
// quota, malformed response) the record is returned with a fixed placeholder
// summary instead, and the failure is logged at warn level.
package augment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/moviectl/moviectl/tmdb"
)

// Placeholder is attached as the summary when generation fails.
const Placeholder = "AI summary unavailable."

const promptTemplate = "Provide a concise, engaging summary of the movie '%s'. " +
	"Highlight key themes, notable performances, and overall cinematic value."

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Augmenter attaches generated summaries to movie records.
type Augmenter struct {
	gen    Generator
	logger zerolog.Logger
}

// NewAugmenter creates a new Augmenter backed by the given generator.
func NewAugmenter(gen Generator, logger zerolog.Logger) *Augmenter {
	return &Augmenter{
		gen:    gen,
		logger: logger,
	}
}

// Augment returns a copy of the movie with the Summary field set. It only
// ever succeeds: either with generated text or with Placeholder.
func (a *Augmenter) Augment(ctx context.Context, movie tmdb.Movie) tmdb.Movie {
	text, err := a.gen.Generate(ctx, fmt.Sprintf(promptTemplate, movie.Title))
	if err != nil || text == "" {
		a.logger.Warn().Err(err).
			Str("title", movie.Title).
			Msg("AI summary generation failed")
		movie.Summary = Placeholder
		return movie
	}

	movie.Summary = text
	return movie
}
