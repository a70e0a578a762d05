package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/moviectl/moviectl/augment"
	"github.com/moviectl/moviectl/browse"
	"github.com/moviectl/moviectl/config"
	"github.com/moviectl/moviectl/filter"
	"github.com/moviectl/moviectl/render"
	"github.com/moviectl/moviectl/tmdb"
	"github.com/moviectl/moviectl/watchlist"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	catalog   *tmdb.Client
	augmenter *augment.Augmenter
	store     *watchlist.Store

	// Command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moviectl",
	Short: "Your personal movie companion",
	Long: `moviectl is a CLI tool for discovering movies: browse TMDB categories,
read movie details enriched with an AI-generated summary, and keep a local
watchlist of movies you intend to track.

Run without a subcommand for the interactive menu.`,
	PersistentPreRunE: initializeApp,
	RunE:              runMenu,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(watchlistCmd)
	rootCmd.AddCommand(listWatchlistCmd)
	rootCmd.AddCommand(exportCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration; missing credentials fail here, before any command runs
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create TMDB client
	catalog, err = tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIToken, logger,
		tmdb.WithLanguage(cfg.TMDB.Language))
	if err != nil {
		return fmt.Errorf("failed to create TMDB client: %w", err)
	}

	// Create Gemini-backed augmenter
	gen, err := augment.NewGeminiGenerator(cmd.Context(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	augmenter = augment.NewAugmenter(gen, logger)

	// Open the watchlist store
	path := cfg.Watchlist.Path
	if path == "" {
		path = watchlist.DefaultPath()
	}
	store = watchlist.NewStore(path, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// parseMovieID validates a user-supplied movie identifier
func parseMovieID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid movie ID %q: please enter a number", strings.TrimSpace(raw))
	}
	return id, nil
}

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse [category]",
	Short: "Browse movies by category",
	Long: `Browse a TMDB listing category interactively, one page at a time.
Category defaults to "popular"; top_rated, upcoming and now_playing are
other common choices, and any listing the API accepts works.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	category := "popular"
	if len(args) > 0 {
		category = args[0]
	}

	browseCategory(cmd.Context(), category, bufio.NewScanner(os.Stdin), os.Stdout)
	return nil
}

// browseCategory drives the page navigation loop. Both the browse command
// and the interactive menu enter here; the menu passes its own scanner so
// the loop sees the keystrokes the menu's scanner has already buffered.
func browseCategory(ctx context.Context, category string, input *bufio.Scanner, out io.Writer) {
	logger.Info().Str("category", category).Msg("Browsing movies")
	loop := browse.NewLoop(catalog, category, input, out, logger)
	loop.Run(ctx)
}

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:   "details <movie_id>",
	Short: "Show detailed movie information",
	Long:  `Fetch one movie by its TMDB identifier and show its details along with an AI-generated summary.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDetails,
}

func runDetails(cmd *cobra.Command, args []string) error {
	id, err := parseMovieID(args[0])
	if err != nil {
		return err
	}

	showDetails(cmd.Context(), id)
	return nil
}

// showDetails fetches, augments and renders one movie.
func showDetails(ctx context.Context, id int64) {
	movie, ok := catalog.Detail(ctx, id)
	if !ok {
		fmt.Printf("Movie %d not found.\n", id)
		return
	}

	enriched := augmenter.Augment(ctx, *movie)
	fmt.Print(render.MovieDetail(enriched))
}

// watchlistCmd represents the watchlist command
var watchlistCmd = &cobra.Command{
	Use:   "watchlist <movie_id>",
	Short: "Add a movie to your watchlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddToWatchlist,
}

func runAddToWatchlist(cmd *cobra.Command, args []string) error {
	id, err := parseMovieID(args[0])
	if err != nil {
		return err
	}

	addToWatchlist(cmd.Context(), id)
	return nil
}

// addToWatchlist fetches and augments a movie, then stores it.
func addToWatchlist(ctx context.Context, id int64) {
	movie, ok := catalog.Detail(ctx, id)
	if !ok {
		fmt.Printf("Movie %d not found.\n", id)
		return
	}

	enriched := augmenter.Augment(ctx, *movie)
	if store.Add(enriched) {
		fmt.Printf("Added %s to watchlist\n", enriched.Title)
	} else {
		fmt.Printf("%s is already on your watchlist\n", enriched.Title)
	}
}

// listWatchlistCmd represents the list-watchlist command
var listWatchlistCmd = &cobra.Command{
	Use:   "list-watchlist",
	Short: "Display your watchlist",
	RunE:  runListWatchlist,
}

func init() {
	listWatchlistCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'Rating > 7.5'")
	listWatchlistCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runListWatchlist(cmd *cobra.Command, args []string) error {
	movies := store.Movies()

	expr, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		f, err := filter.Compile(expr, logger)
		if err != nil {
			return err
		}
		movies = f.Apply(movies)
	}

	listWatchlist(movies)
	return nil
}

// listWatchlist renders watchlist entries.
func listWatchlist(movies []tmdb.Movie) {
	if len(movies) == 0 {
		fmt.Println("Your watchlist is empty.")
		return
	}

	fmt.Println(render.MovieTable(movies))
}

// getFilterExpression determines the filter expression to use, if any.
// Priority: command line filter > preset.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}

// exportCmd represents the export-watchlist command
var exportCmd = &cobra.Command{
	Use:   "export-watchlist [path]",
	Short: "Export your watchlist to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	exportWatchlist(path)
	return nil
}

// exportWatchlist writes the watchlist to path (or the default location).
func exportWatchlist(path string) {
	dest, err := store.Export(path)
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Watchlist exported to %s\n", dest)
}
