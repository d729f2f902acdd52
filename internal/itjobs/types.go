// Package itjobs is a thin client for the itjobs.pt job-listing API.
package itjobs

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Company identifies the employer on a posting.
type Company struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// Location is one physical location attached to a posting.
type Location struct {
	Name string `json:"name"`
}

// ContractType is one employment type label, e.g. "Part-time".
type ContractType struct {
	Name string `json:"name"`
}

// Wage is the advertised salary. The API returns it as a bare number on
// some postings, a quoted string on others, and null on most.
type Wage string

func (w *Wage) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*w = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = Wage(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid wage value %s", raw)
	}
	*w = Wage(n.String())
	return nil
}

func (w Wage) String() string { return string(w) }

// JobPosting is an immutable snapshot of one posting as returned by the API.
// Body may contain HTML markup. AllowRemote is tri-state: the API omits the
// field on older postings.
type JobPosting struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Company     Company        `json:"company"`
	Locations   []Location     `json:"locations,omitempty"`
	PublishedAt string         `json:"publishedAt,omitempty"`
	Wage        Wage           `json:"wage,omitempty"`
	AllowRemote *bool          `json:"allowRemote,omitempty"`
	Types       []ContractType `json:"types,omitempty"`
}

// Text returns the title and body joined, the form every classifier and
// counter operates on.
func (j JobPosting) Text() string {
	return j.Title + " " + j.Body
}

// PublishedDate parses the date part of PublishedAt ("2024-03-01 09:30:00").
// The zero time and false are returned when the field is empty or malformed.
func (j JobPosting) PublishedDate() (time.Time, bool) {
	s := j.PublishedAt
	if len(s) > 10 {
		s = s[:10]
	}
	if s == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// LocationNames joins location names with ", " for display and CSV export.
func (j JobPosting) LocationNames() string {
	names := make([]string, 0, len(j.Locations))
	for _, loc := range j.Locations {
		if loc.Name != "" {
			names = append(names, loc.Name)
		}
	}
	return strings.Join(names, ", ")
}
