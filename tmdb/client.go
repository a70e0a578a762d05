package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public TMDB v3 API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Client represents a TMDB API client
type Client struct {
	baseURL    string
	token      string
	language   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new TMDB client. The token is the v4 read access token
// sent as a bearer credential on every request.
func NewClient(baseURL, token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrMissingToken)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL:  baseURL,
		token:    token,
		language: "en-US",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// doRequest performs an authenticated GET and returns the response body.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// List fetches one page of a category listing such as "popular", "top_rated"
// or "upcoming". The category string is passed through to the catalog
// verbatim; any list endpoint the API accepts works.
//
// List never fails: any transport or HTTP error is logged and degraded to an
// empty PageResult with TotalPages zero, which callers treat as "no results".
func (c *Client) List(ctx context.Context, category string, page int) PageResult {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("language", c.language)
	params.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, "/movie/"+url.PathEscape(category), params)
	if err != nil {
		c.logger.Error().Err(err).
			Str("category", category).
			Int("page", page).
			Msg("Movie list request failed")
		return PageResult{Page: page, Results: []Movie{}, Degraded: true}
	}

	var result PageResult
	if err := json.Unmarshal(body, &result); err != nil {
		c.logger.Error().Err(err).
			Str("category", category).
			Msg("Failed to parse movie list response")
		return PageResult{Page: page, Results: []Movie{}, Degraded: true}
	}

	if result.Results == nil {
		result.Results = []Movie{}
	}
	for i := range result.Results {
		normalizeMovie(&result.Results[i])
	}

	c.logger.Debug().
		Str("category", category).
		Int("page", result.Page).
		Int("total_pages", result.TotalPages).
		Int("count", len(result.Results)).
		Msg("Retrieved movie list")

	return result
}

// Detail fetches a single movie by identifier. The second return value is
// false when the movie is absent, whether because the catalog does not know
// the identifier or because the fetch itself failed; the distinction is
// visible in the logs only.
func (c *Client) Detail(ctx context.Context, id int64) (*Movie, bool) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		c.logger.Error().Err(err).
			Int64("movie_id", id).
			Msg("Movie detail request failed")
		return nil, false
	}

	var movie Movie
	if err := json.Unmarshal(body, &movie); err != nil {
		c.logger.Error().Err(err).
			Int64("movie_id", id).
			Msg("Failed to parse movie detail response")
		return nil, false
	}

	normalizeMovie(&movie)
	return &movie, true
}

// normalizeMovie fills fields the catalog leaves blank.
func normalizeMovie(m *Movie) {
	if m.ReleaseDate == "" {
		m.ReleaseDate = UnknownReleaseDate
	}
}
