// Package browse implements the interactive page navigation over catalog
// listings. One implementation serves both the browse subcommand and the
// interactive menu.
package browse

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moviectl/moviectl/render"
	"github.com/moviectl/moviectl/tmdb"
)

// Pager fetches one page of a category listing.
type Pager interface {
	List(ctx context.Context, category string, page int) tmdb.PageResult
}

// Loop drives page-oriented navigation for a single category.
type Loop struct {
	pager    Pager
	category string
	input    *bufio.Scanner
	out      io.Writer
	logger   zerolog.Logger
}

// NewLoop creates a navigation loop reading actions from input and rendering
// pages to out. Callers that already own a scanner over the same stream
// (the interactive menu) must pass that scanner here: a scanner reads ahead,
// so a second one layered over the same reader would see the buffered
// keystrokes as EOF.
func NewLoop(pager Pager, category string, input *bufio.Scanner, out io.Writer, logger zerolog.Logger) *Loop {
	return &Loop{
		pager:    pager,
		category: category,
		input:    input,
		out:      out,
		logger:   logger,
	}
}

// Run navigates pages until the user quits or input is exhausted.
//
// Pages are never cached: every transition, including going back, fetches
// the page fresh so the rows and the total page count always reflect the
// catalog's current state. Next and previous are guarded against the page
// bounds and otherwise leave the state unchanged.
func (l *Loop) Run(ctx context.Context) {
	page := 1

	for {
		result := l.pager.List(ctx, l.category, page)
		totalPages := result.TotalPages

		fmt.Fprintf(l.out, "\nPage %d of %d\n", page, totalPages)
		if len(result.Results) == 0 {
			fmt.Fprintln(l.out, "No results for this page.")
		} else {
			fmt.Fprintln(l.out, render.MovieTable(result.Results))
		}

		fmt.Fprint(l.out, "Options: (n)ext, (p)revious, (m)enu, (q)uit: ")
		if !l.input.Scan() {
			return
		}
		action := strings.ToLower(strings.TrimSpace(l.input.Text()))

		switch action {
		case "n":
			if page < totalPages {
				page++
			}
		case "p":
			if page > 1 {
				page--
			}
		case "m", "q":
			l.logger.Debug().Str("category", l.category).Int("page", page).Msg("Leaving browse loop")
			return
		default:
			fmt.Fprintln(l.out, "Invalid option. Try again.")
		}
	}
}
