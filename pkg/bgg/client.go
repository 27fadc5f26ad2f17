package bgg

import (
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/latoulicious/meeple/pkg/logging"
)

// DefaultBaseURL is the public catalog XML API endpoint.
const DefaultBaseURL = "https://boardgamegeek.com/xmlapi2"

// ClientConfig configures the catalog client.
type ClientConfig struct {
	BaseURL string
	// Timeout applies per request attempt.
	Timeout time.Duration
	// MaxAttempts bounds how often a "still processing" response is
	// retried. 3 means two retries after the initial request.
	MaxAttempts int
	// RetryDelay is the fixed wait between "still processing" attempts.
	RetryDelay time.Duration
}

// SearchResult is one hit from the catalog search endpoint.
type SearchResult struct {
	ID   string
	Name string
	Year string
}

// Client talks to the catalog XML API.
//
// The detail endpoint answers 202 while the catalog is still assembling an
// item; the client retries those with a fixed delay. Timeouts, transport
// failures and malformed payloads are terminal and surface immediately.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
	logger      logging.Logger
}

// NewClient creates a catalog client. Zero config fields fall back to the
// documented defaults.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 3 * time.Second
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		logger:      logging.GetGlobalLoggerFactory().CreateCatalogLogger(),
	}
}

// SearchGames queries the catalog by free text and returns id/name/year
// tuples. A non-success transport status is an error with no partial
// results.
func (c *Client) SearchGames(query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("type", "boardgame")

	resp, err := c.httpClient.Get(c.baseURL + "/search?" + params.Encode())
	if err != nil {
		return nil, c.transportError("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Kind: FetchTransport, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError("", err)
	}

	var payload searchPayload
	if err := xml.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Kind: FetchMalformedPayload, Err: err}
	}

	results := make([]SearchResult, 0, len(payload.Items))
	for _, item := range payload.Items {
		result := SearchResult{ID: item.ID}
		if item.Name != nil {
			result.Name = item.Name.Value
		}
		if item.YearPublished != nil {
			result.Year = item.YearPublished.Value
		}
		results = append(results, result)
	}

	c.logger.Debug("Catalog search completed", map[string]interface{}{
		"query":   query,
		"results": len(results),
	})

	return results, nil
}

// GetGameDetails fetches and normalizes a catalog item by id.
//
// A 202 "still processing" status is retried up to MaxAttempts total
// requests with a fixed delay in between; exhausting those yields a
// FetchExhausted error. Any other failure is terminal on the first
// occurrence and never retried.
func (c *Client) GetGameDetails(gameID string) (*GameRecord, error) {
	params := url.Values{}
	params.Set("id", gameID)
	params.Set("stats", "1")
	requestURL := c.baseURL + "/thing?" + params.Encode()

	var body []byte
	for attempt := 1; ; attempt++ {
		resp, err := c.httpClient.Get(requestURL)
		if err != nil {
			return nil, c.transportError(gameID, err)
		}

		if resp.StatusCode == http.StatusAccepted {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			if attempt >= c.maxAttempts {
				c.logger.Warn("Catalog still processing after final attempt", map[string]interface{}{
					"game_id":  gameID,
					"attempts": attempt,
				})
				return nil, &FetchError{Kind: FetchExhausted, GameID: gameID, Attempts: attempt}
			}

			c.logger.Debug("Catalog still processing, retrying", map[string]interface{}{
				"game_id": gameID,
				"attempt": attempt,
				"delay":   c.retryDelay.String(),
			})
			time.Sleep(c.retryDelay)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, &FetchError{Kind: FetchTransport, GameID: gameID, StatusCode: resp.StatusCode}
		}

		body, err = io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, c.transportError(gameID, err)
		}
		break
	}

	var payload thingPayload
	if err := xml.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{Kind: FetchMalformedPayload, GameID: gameID, Err: err}
	}
	if len(payload.Items) == 0 {
		return nil, &FetchError{
			Kind:   FetchMalformedPayload,
			GameID: gameID,
			Err:    fmt.Errorf("payload contains no item"),
		}
	}

	record, err := ParseItem(&payload.Items[0])
	if err != nil {
		return nil, err
	}
	if record.ID == "" {
		record.ID = gameID
	}

	c.logger.Info("Fetched catalog item", map[string]interface{}{
		"game_id": record.ID,
		"primary": record.Names.Primary,
		"rating":  record.Rating,
	})

	return record, nil
}

// transportError classifies a request error as timeout or transport.
func (c *Client) transportError(gameID string, err error) *FetchError {
	kind := FetchTransport
	if isTimeoutError(err) {
		kind = FetchTimeout
	}
	return &FetchError{Kind: kind, GameID: gameID, Err: err}
}

func isTimeoutError(err error) bool {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return true
	}
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Timeout()
	}
	return false
}
