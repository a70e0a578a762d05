// Package render formats movies for console display.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/moviectl/moviectl/tmdb"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// MovieTable renders movies as a bordered grid with ID, title and release
// date columns.
func MovieTable(movies []tmdb.Movie) string {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Title,
			m.ReleaseDate,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "Title", "Release Date").
		Rows(rows...)

	return t.String()
}

// MovieDetail renders the full detail view for one movie, including the
// generated summary when present.
func MovieDetail(m tmdb.Movie) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%s)\n", titleStyle.Render(m.Title), m.ReleaseDate)
	if m.Rating != nil {
		fmt.Fprintf(&sb, "Rating: %.1f/10\n", *m.Rating)
	} else {
		sb.WriteString("Rating: N/A\n")
	}
	fmt.Fprintf(&sb, "Overview: %s\n", m.Overview)
	if m.Summary != "" {
		fmt.Fprintf(&sb, "\nAI Insights: %s\n", m.Summary)
	}

	return sb.String()
}
