package teamlyzer

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dmfonseca/itjobs-cli/internal/textnorm"
)

// SalaryRange is a scraped salary band, both bounds kept as the formatted
// currency strings printed on the page (e.g. "1.200 €").
type SalaryRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// CompanyProfile holds whatever could be extracted from a company page.
// Every field besides URL is independently optional: partial extraction is
// success, not failure.
type CompanyProfile struct {
	URL         string       `json:"url"`
	Rating      *float64     `json:"rating,omitempty"`
	Description string       `json:"description,omitempty"`
	Benefits    []string     `json:"benefits,omitempty"`
	Salary      *SalaryRange `json:"salary,omitempty"`
}

var (
	ratingTextRe = regexp.MustCompile(`(\d+[.,]\d+)\s*/\s*5`)
	salaryPairRe = regexp.MustCompile(`(\d[\d.,]*\s*€)\s*[-–]\s*(\d[\d.,]*\s*€)`)
)

// salaryAncestorDepth bounds how far up from the "average gross salary" label
// the range pattern is searched. The label and the figures share a small
// container on the current markup; climbing further starts matching
// unrelated numbers elsewhere on the page.
const salaryAncestorDepth = 4

// boilerplateMarkers flag meta descriptions that describe the review site
// itself rather than the company. Compared against normalized text.
var boilerplateMarkers = []string{
	"teamlyzer",
	"avaliacoes de empresas",
	"opinioes sobre empresas",
	"company reviews",
}

// Extract fetches a company profile page and pulls out whatever fields it
// can. An unreachable page yields a profile with only the URL set, after one
// logged warning; field extractors never fail each other.
func (c *Client) Extract(ctx context.Context, profileURL string) CompanyProfile {
	profile := CompanyProfile{URL: profileURL}

	doc, err := c.document(ctx, profileURL)
	if err != nil {
		log.Printf("[TEAMLYZER] could not fetch company page %s: %v", profileURL, err)
		return profile
	}

	profile.Rating = extractRating(doc)
	profile.Description = extractDescription(doc)
	profile.Benefits = extractBenefits(doc)
	profile.Salary = extractSalary(doc)
	return profile
}

// extractRating prefers the page's machine-readable rating metadata and
// falls back to the visible "4,2 / 5" text. Comma is the site's decimal
// separator.
func extractRating(doc *goquery.Document) *float64 {
	if content, ok := doc.Find(`meta[itemprop="ratingValue"]`).First().Attr("content"); ok {
		if r := parseRating(content); r != nil {
			return r
		}
	}
	if text := doc.Find(`[itemprop="ratingValue"]`).First().Text(); text != "" {
		if r := parseRating(text); r != nil {
			return r
		}
	}

	if m := ratingTextRe.FindStringSubmatch(doc.Find("body").Text()); m != nil {
		return parseRating(m[1])
	}
	return nil
}

func parseRating(raw string) *float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 || value > 5 {
		return nil
	}
	return &value
}

// extractDescription tries, in order: structured description metadata, the
// open-graph description, the generic description meta tag, and finally the
// first paragraph of visible text longer than 40 characters. Descriptions
// about the review site itself are discarded.
func extractDescription(doc *goquery.Document) string {
	candidates := []string{
		strings.TrimSpace(doc.Find(`[itemprop="description"]`).First().Text()),
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
	}

	for _, candidate := range candidates {
		if candidate != "" && !isBoilerplate(candidate) {
			return candidate
		}
	}

	var fallback string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if len(text) > 40 && !isBoilerplate(text) {
			fallback = text
			return false
		}
		return true
	})
	return fallback
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

func isBoilerplate(text string) bool {
	normalized := textnorm.Normalize(text)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}

// extractBenefits locates the benefits section heading and collects the list
// items that follow it, up to the next section heading. Duplicates under
// case-insensitive comparison keep their first occurrence.
func extractBenefits(doc *goquery.Document) []string {
	var heading *goquery.Selection
	doc.Find("h2, h3, h4").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(textnorm.Normalize(s.Text()), "benef") {
			heading = s
			return false
		}
		return true
	})
	if heading == nil {
		return nil
	}

	seen := make(map[string]bool)
	var benefits []string
	heading.NextUntil("h2, h3, h4").Find("li").Each(func(_ int, li *goquery.Selection) {
		item := strings.Join(strings.Fields(li.Text()), " ")
		if item == "" {
			return
		}
		key := strings.ToLower(item)
		if seen[key] {
			return
		}
		seen[key] = true
		benefits = append(benefits, item)
	})
	return benefits
}

// extractSalary finds the node carrying the localized "average gross salary"
// label and searches a bounded number of ancestors for the range pattern
// "<number> € - <number> €". Whitespace inside each bound is normalized.
func extractSalary(doc *goquery.Document) *SalaryRange {
	// Only an element's own text counts when locating the label, so the walk
	// starts at the innermost node that actually carries it.
	var label *goquery.Selection
	doc.Find("body *").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(textnorm.Normalize(ownText(s)), "salario medio bruto") {
			label = s
			return false
		}
		return true
	})
	if label == nil {
		return nil
	}

	node := label
	for depth := 0; depth <= salaryAncestorDepth && node.Length() > 0; depth++ {
		if m := salaryPairRe.FindStringSubmatch(node.Text()); m != nil {
			return &SalaryRange{
				Min: strings.Join(strings.Fields(m[1]), " "),
				Max: strings.Join(strings.Fields(m[2]), " "),
			}
		}
		node = node.Parent()
	}
	return nil
}

func ownText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(c.Text())
		}
	})
	return b.String()
}
