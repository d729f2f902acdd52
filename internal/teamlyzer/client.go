// Package teamlyzer scrapes the Teamlyzer company-review site: it resolves
// company profile URLs, extracts profile metadata and ranks the skills the
// site reports for a professional role.
//
// The site's markup is outside this program's control. Every extraction here
// is best effort: a miss yields an absent field, never an error that stops
// the caller.
package teamlyzer

import (
	"context"
	"log"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/dmfonseca/itjobs-cli/internal/fetch"
)

// DefaultBaseURL is the production site root.
const DefaultBaseURL = "https://pt.teamlyzer.com"

// Client fetches and parses Teamlyzer pages. One client performs one fetch
// at a time; the shared limiter keeps requests to the site spaced out.
type Client struct {
	baseURL    string
	opts       *fetch.Options
	useBrowser bool
	verbose    bool
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBrowserFallback enables headless-browser rendering when a page comes
// back as a script-rendered shell.
func WithBrowserFallback() ClientOption {
	return func(c *Client) { c.useBrowser = true }
}

// WithVerbose turns on progress logging.
func WithVerbose() ClientOption {
	return func(c *Client) { c.verbose = true }
}

// NewClient builds a client for the given site root. An empty baseURL uses
// the production site.
func NewClient(baseURL string, options ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts := fetch.DefaultOptions()
	opts.Limiter = rate.NewLimiter(rate.Every(fetch.DefaultTimeout/15), 1)
	c := &Client{baseURL: baseURL, opts: opts}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// BaseURL returns the configured site root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// document fetches a page and parses it, falling back to browser rendering
// for script-rendered shells when enabled.
func (c *Client) document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	result, err := fetch.URL(ctx, pageURL, c.opts)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	if c.useBrowser && fetch.ShouldUseBrowser(html) {
		rendered, berr := fetch.WithBrowser(ctx, pageURL, c.opts.Timeout, c.verbose)
		if berr != nil {
			log.Printf("[TEAMLYZER] browser fallback failed for %s: %v", pageURL, berr)
		} else {
			html = rendered
		}
	}

	return fetch.ParseDocument(html)
}

// absoluteURL resolves a scraped href against the site root.
func (c *Client) absoluteURL(href string) string {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
