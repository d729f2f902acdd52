package itjobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmfonseca/itjobs-cli/internal/fetch"
)

// DefaultBaseURL is the production API endpoint root.
const DefaultBaseURL = "https://api.itjobs.pt"

// ErrNotFound is returned when the API reports an unknown job id.
var ErrNotFound = errors.New("job not found")

// Client calls the itjobs.pt JSON API. It performs plain GETs with the API
// key as a query parameter; it owns no scraping logic.
type Client struct {
	baseURL string
	apiKey  string
	opts    *fetch.Options
}

// NewClient builds a client for the given endpoint root and key.
// A nil opts uses fetch defaults.
func NewClient(baseURL, apiKey string, opts *fetch.Options) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, opts: opts}
}

// listResponse is the envelope shared by list.json and search.json.
type listResponse struct {
	Results []JobPosting `json:"results"`
}

// apiError is the error envelope the API returns with a 200 status.
type apiError struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// List returns the limit most recent postings.
func (c *Client) List(ctx context.Context, limit int) ([]JobPosting, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	return c.fetchList(ctx, "/job/list.json", params)
}

// Search returns postings matching the free-text query, up to limit.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]JobPosting, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if query != "" {
		params.Set("q", query)
	}
	return c.fetchList(ctx, "/job/search.json", params)
}

// Get returns a single posting by id, or ErrNotFound when the API rejects
// the id.
func (c *Client) Get(ctx context.Context, jobID string) (*JobPosting, error) {
	params := url.Values{}
	params.Set("id", jobID)

	body, err := c.get(ctx, "/job/get.json", params)
	if err != nil {
		return nil, err
	}

	// The API signals unknown ids inside a 200 response.
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, apiErr.Error.Message)
	}

	var job JobPosting
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job response: %w", err)
	}
	return &job, nil
}

func (c *Client) fetchList(ctx context.Context, path string, params url.Values) ([]JobPosting, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return resp.Results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("api_key", c.apiKey)

	result, err := fetch.URL(ctx, c.baseURL+path+"?"+params.Encode(), c.opts)
	if err != nil {
		return nil, err
	}
	return []byte(result.HTML), nil
}
