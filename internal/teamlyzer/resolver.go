package teamlyzer

import (
	"context"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dmfonseca/itjobs-cli/internal/fetch"
	"github.com/dmfonseca/itjobs-cli/internal/textnorm"
)

const (
	companiesPath = "/companies/"
	rankingPath   = "/companies/ranking"
)

// resolveStrategy is one way of locating a company profile URL. An empty
// string result means "this strategy found nothing"; an error means the
// strategy itself failed and the next one should run.
type resolveStrategy func(ctx context.Context, name, slug string) (string, error)

// Resolve finds the profile URL for a company, trying each strategy in order
// and stopping at the first hit.
//
// The slug probe runs first: slugs from the job API are an exact key into the
// site's URL space, far more precise than name matching. The ranking-page
// scan is the fallback for companies whose slug differs between the two
// sites or is missing. Not finding the company is a normal outcome and
// returns "", nil; strategy failures are logged and swallowed.
func (c *Client) Resolve(ctx context.Context, name, slug string) (string, error) {
	strategies := []resolveStrategy{
		c.probeSlug,
		c.scanRanking,
	}

	for _, strategy := range strategies {
		profileURL, err := strategy(ctx, name, slug)
		if err != nil {
			log.Printf("[TEAMLYZER] company resolution step failed for %q: %v", name, err)
			continue
		}
		if profileURL != "" {
			return profileURL, nil
		}
	}
	return "", nil
}

// probeSlug checks whether <base>/companies/<slug> exists.
func (c *Client) probeSlug(ctx context.Context, _, slug string) (string, error) {
	if slug == "" {
		return "", nil
	}

	profileURL := c.baseURL + companiesPath + slug
	result, err := fetch.URL(ctx, profileURL, c.opts)
	if err != nil {
		// A 404 is a miss, not a failure; let the ranking scan run.
		if result != nil {
			return "", nil
		}
		return "", err
	}
	return profileURL, nil
}

// scanRanking fetches the company-ranking page and matches its company links
// against the slug and the normalized company name. Name matching accepts
// full-string containment in either direction, punctuation ignored.
func (c *Client) scanRanking(ctx context.Context, name, slug string) (string, error) {
	doc, err := c.document(ctx, c.baseURL+rankingPath)
	if err != nil {
		return "", err
	}

	target := textnorm.Normalize(textnorm.StripPunctuation(name))

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if !strings.Contains(href, companiesPath) || strings.HasSuffix(href, rankingPath) {
			return true
		}

		if slug != "" && strings.Contains(href, slug) {
			found = c.absoluteURL(href)
			return false
		}

		linkText := textnorm.Normalize(textnorm.StripPunctuation(s.Text()))
		if linkText == "" || target == "" {
			return true
		}
		if strings.Contains(linkText, target) || strings.Contains(target, linkText) {
			found = c.absoluteURL(href)
			return false
		}
		return true
	})

	return found, nil
}
