package tmdb

// Movie represents a single movie record as exchanged with the catalog,
// the augmenter, and the watchlist. It is a value object; copies are cheap
// and no component holds a shared reference.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	// Rating is nil when the catalog sent no vote average; a present zero
	// means the movie genuinely has a 0.0 rating.
	Rating   *float64 `json:"vote_average,omitempty"`
	Overview string   `json:"overview,omitempty"`
	Summary  string   `json:"ai_summary,omitempty"`
}

// PageResult holds one page of listing results plus the total page count
// reported by the catalog for that query. It is transient and recomputed on
// every fetch.
//
// Degraded marks a result that was substituted for a failed fetch. The
// canonical empty-result signal remains TotalPages == 0; Degraded only lets
// callers that care tell "nothing matched" apart from "the fetch failed".
type PageResult struct {
	Page       int     `json:"page"`
	Results    []Movie `json:"results"`
	TotalPages int     `json:"total_pages"`
	Degraded   bool    `json:"-"`
}

// UnknownReleaseDate is substituted when the catalog returns a blank
// release date.
const UnknownReleaseDate = "Unknown"
