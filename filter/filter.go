// Package filter evaluates expression-language filters against watchlist
// movies, e.g. `Rating > 7.5 and year(ReleaseDate) >= 2010`.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog"

	"github.com/moviectl/moviectl/tmdb"
)

// Filter is a compiled filter expression ready for evaluation.
type Filter struct {
	expression string
	program    *vm.Program
	logger     zerolog.Logger
}

// Compile parses and compiles a filter expression. The expression must
// evaluate to a boolean.
func Compile(expression string, logger zerolog.Logger) (*Filter, error) {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return &Filter{
		expression: expression,
		program:    program,
		logger:     logger,
	}, nil
}

// Expression returns the original filter expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one movie. Evaluation errors count as
// a non-match and are logged at debug level.
func (f *Filter) Match(movie tmdb.Movie) bool {
	output, err := expr.Run(f.program, environment(movie))
	if err != nil {
		f.logger.Debug().Err(err).
			Str("expression", f.expression).
			Int64("movie_id", movie.ID).
			Msg("Filter evaluation failed")
		return false
	}

	matched, ok := output.(bool)
	return ok && matched
}

// Apply returns the movies matching the filter, preserving order.
func (f *Filter) Apply(movies []tmdb.Movie) []tmdb.Movie {
	matched := make([]tmdb.Movie, 0, len(movies))
	for _, m := range movies {
		if f.Match(m) {
			matched = append(matched, m)
		}
	}
	return matched
}

// environment exposes the movie's fields plus helper functions to the
// expression. An absent rating evaluates as 0 so comparisons stay simple.
func environment(m tmdb.Movie) map[string]any {
	rating := 0.0
	if m.Rating != nil {
		rating = *m.Rating
	}

	return map[string]any{
		"ID":          m.ID,
		"Title":       m.Title,
		"ReleaseDate": m.ReleaseDate,
		"Rating":      rating,
		"Overview":    m.Overview,
		"Summary":     m.Summary,

		// contains(s, substr) -> case-insensitive substring match
		"contains": func(s, substr string) bool {
			return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
		},
		// year("1999-03-30") -> 1999, 0 when the date is unknown
		"year": func(date string) int {
			if len(date) < 4 {
				return 0
			}
			y, err := strconv.Atoi(date[:4])
			if err != nil {
				return 0
			}
			return y
		},
	}
}
