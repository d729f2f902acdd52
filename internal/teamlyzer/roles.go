package teamlyzer

import (
	"context"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dmfonseca/itjobs-cli/internal/match"
	"github.com/dmfonseca/itjobs-cli/internal/textnorm"
)

const jobsPath = "/jobs"

// Dropdown selectors for the jobs-listing page filter controls.
const (
	roleSelectSelector = `select[name="profession"], select#profession`
	tagSelectSelector  = `select[name="tags"], select#tags`
)

// RoleSkillEntry is one skill with the posting count the site printed for it.
// The count is taken verbatim from the page, never re-derived.
type RoleSkillEntry struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// trailingCountRe captures the "(49)" suffix in option labels like
// "python (49)".
var trailingCountRe = regexp.MustCompile(`\((\d+)\)\s*$`)

// Match scores for role resolution, highest confidence first. The slug bonus
// outranks the substring tiers because option values are curated
// identifiers, not free text; only an exact normalized label match beats it.
const (
	scoreExactLabel   = 100
	scoreSlugInValue  = 90
	scoreQueryInLabel = 60
	scoreLabelInQuery = 30
)

// ResolveRole maps a free-text role query to the site's internal role
// identifier by fuzzy-matching the jobs page's role dropdown. Returns ""
// when no option matches at all; that is a NotFound, not an error.
func (c *Client) ResolveRole(ctx context.Context, query string) (string, error) {
	doc, err := c.document(ctx, c.baseURL+jobsPath)
	if err != nil {
		return "", err
	}

	candidates := selectOptions(doc, roleSelectSelector)
	winner, ok := match.Best(textnorm.Normalize(query), candidates, scoreRole)
	if !ok {
		return "", nil
	}
	return winner.Value, nil
}

// scoreRole scores one dropdown option against a normalized query. Labels
// carry a trailing posting count ("Data Scientist (12)") which is stripped
// before comparison.
func scoreRole(query string, c match.Candidate) int {
	label := textnorm.Normalize(trailingCountRe.ReplaceAllString(c.Label, ""))
	if query == "" || label == "" {
		return 0
	}

	slug := strings.ReplaceAll(query, " ", "-")

	switch {
	case label == query:
		return scoreExactLabel
	case strings.Contains(c.Value, slug):
		return scoreSlugInValue
	case strings.Contains(label, query):
		return scoreQueryInLabel
	case strings.Contains(query, label):
		return scoreLabelInQuery
	}
	return 0
}

// TopSkills fetches the jobs page scoped to a resolved role and ranks the
// skills its tag dropdown reports. The role scope is a precondition: the
// site's skill breakdown is only meaningful per profession.
func (c *Client) TopSkills(ctx context.Context, roleID string, n int) ([]RoleSkillEntry, error) {
	params := url.Values{}
	params.Set("profession", roleID)

	doc, err := c.document(ctx, c.baseURL+jobsPath+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	entries := parseSkillOptions(selectOptions(doc, tagSelectSelector))
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// parseSkillOptions turns tag dropdown options into ranked skill entries.
// Options without a parseable count, with a zero count, or that are generic
// "all" placeholders are skipped. Duplicate identifiers keep the maximum
// observed count. Output is sorted by count descending, ties by first-seen
// order.
func parseSkillOptions(options []match.Candidate) []RoleSkillEntry {
	index := make(map[string]int)
	var entries []RoleSkillEntry

	for _, opt := range options {
		m := trailingCountRe.FindStringSubmatch(opt.Label)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil || count == 0 {
			continue
		}

		skill := strings.TrimSpace(opt.Value)
		if skill == "" {
			skill = textnorm.Normalize(trailingCountRe.ReplaceAllString(opt.Label, ""))
		}
		if skill == "" || isPlaceholderSkill(skill) {
			continue
		}

		if i, dup := index[skill]; dup {
			if count > entries[i].Count {
				entries[i].Count = count
			}
			continue
		}
		index[skill] = len(entries)
		entries = append(entries, RoleSkillEntry{Skill: skill, Count: count})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

func isPlaceholderSkill(skill string) bool {
	switch textnorm.Normalize(skill) {
	case "all", "todas", "todos", "qualquer":
		return true
	}
	return false
}

// selectOptions enumerates the (label, value) pairs of the first dropdown
// matching selector, in document order.
func selectOptions(doc *goquery.Document, selector string) []match.Candidate {
	var out []match.Candidate
	doc.Find(selector).First().Find("option").Each(func(_ int, s *goquery.Selection) {
		value, _ := s.Attr("value")
		out = append(out, match.Candidate{
			Label: strings.TrimSpace(s.Text()),
			Value: strings.TrimSpace(value),
		})
	})
	return out
}
