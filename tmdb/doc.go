// Package tmdb provides a client for The Movie Database (TMDB) v3 API.
//
// The client covers the two endpoint shapes moviectl needs: category
// listings (popular, top_rated, upcoming, ...) and single-movie detail
// lookups. It deliberately never surfaces transport or HTTP errors to
// callers; failures degrade to an empty PageResult or an absent Movie so the
// interactive surfaces can keep running.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := tmdb.NewClient(tmdb.DefaultBaseURL, token, logger,
//		tmdb.WithLanguage("en-US"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page := client.List(ctx, "popular", 1)
//	if page.TotalPages == 0 {
//		// no results (or the fetch failed; see page.Degraded)
//	}
//
//	movie, ok := client.Detail(ctx, 603)
//	if !ok {
//		// unknown identifier or fetch failure
//	}
//
// # Error Handling
//
// Constructor errors wrap ErrInvalidConfig. Request-level failures are
// logged with the request parameters and reduced to the degraded result
// forms above; *APIError carries the HTTP status for the log line.
package tmdb
