package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// runMenu drives the interactive menu shown when moviectl is started
// without a subcommand.
func runMenu(cmd *cobra.Command, args []string) error {
	return menuSession(cmd.Context(), os.Stdin, os.Stdout)
}

// menuSession loops over menu choices read from in. Every choice maps to the
// same operation the one-shot subcommands use. A single scanner owns the
// input stream for the whole session; sub-loops like browse receive it
// rather than re-wrapping the reader, so buffered type-ahead is not lost.
func menuSession(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out, "\n--- moviectl Menu ---")
		fmt.Fprintln(out, "1. Browse Movies")
		fmt.Fprintln(out, "2. Movie Details")
		fmt.Fprintln(out, "3. Add to Watchlist")
		fmt.Fprintln(out, "4. View Watchlist")
		fmt.Fprintln(out, "5. Export Watchlist")
		fmt.Fprintln(out, "6. Exit")

		choice, ok := promptLine(scanner, out, "Enter your choice (1-6): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			category, ok := promptLine(scanner, out, "Enter category (e.g., popular, top_rated, upcoming): ")
			if !ok {
				return nil
			}
			if category == "" {
				category = "popular"
			}
			browseCategory(ctx, category, scanner, out)

		case "2":
			raw, ok := promptLine(scanner, out, "Enter movie ID: ")
			if !ok {
				return nil
			}
			id, err := parseMovieID(raw)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			showDetails(ctx, id)

		case "3":
			raw, ok := promptLine(scanner, out, "Enter movie ID to add to watchlist: ")
			if !ok {
				return nil
			}
			id, err := parseMovieID(raw)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			addToWatchlist(ctx, id)

		case "4":
			listWatchlist(store.Movies())

		case "5":
			path, ok := promptLine(scanner, out, "Enter export path (or press Enter for default): ")
			if !ok {
				return nil
			}
			exportWatchlist(path)

		case "6":
			fmt.Fprintln(out, "Thank you for using moviectl!")
			return nil

		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

// promptLine prints the prompt and reads one trimmed line. ok is false when
// input is exhausted.
func promptLine(scanner *bufio.Scanner, out io.Writer, prompt string) (string, bool) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
