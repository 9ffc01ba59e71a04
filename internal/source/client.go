package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nexusscout/chronicle-harvester/internal/models"
)

// FetchError reports a transport failure or a non-2xx response from the feed.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a feed body that could not be decoded as a JSON array
// of objects.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse feed %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Fetcher is the capability the harvest pipeline needs from the feed. It is
// an interface so tests can substitute a deterministic feed.
type Fetcher interface {
	Fetch(ctx context.Context) ([]models.Record, error)
}

// Client fetches the feed over HTTP with a bounded timeout.
type Client struct {
	url        string
	httpClient *http.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the configured feed endpoint.
func (c *Client) URL() string {
	return c.url
}

// Fetch issues one GET to the feed endpoint and decodes the response as a
// JSON array of records.
func (c *Client) Fetch(ctx context.Context) ([]models.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode}
	}

	var records []models.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &ParseError{URL: c.url, Err: err}
	}

	// A null element decodes into a nil map without a decode error; the
	// pipeline expects every record to be an object.
	for i, r := range records {
		if r == nil {
			return nil, &ParseError{URL: c.url, Err: fmt.Errorf("element %d is not a JSON object", i)}
		}
	}

	return records, nil
}
