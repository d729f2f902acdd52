// Package classify labels job postings with their work arrangement.
package classify

import (
	"regexp"

	"github.com/dmfonseca/itjobs-cli/internal/textnorm"
)

// Arrangement is the work mode of a posting.
type Arrangement string

const (
	Remote Arrangement = "remote"
	Hybrid Arrangement = "hybrid"
	Onsite Arrangement = "onsite"
	Other  Arrangement = "other"
)

// Lexical rules run over the normalized (accent-stripped, lower-cased) text,
// so "híbrido" and "hibrido" hit the same pattern.
var (
	remoteRe = regexp.MustCompile(`\b(remoto|remote|teletrabalho)\b`)
	hybridRe = regexp.MustCompile(`\b(hibrido|hybrid)\b`)
	onsiteRe = regexp.MustCompile(`\b(presencial|on[- ]?site)\b`)
)

// Classify determines the work arrangement for a posting.
//
// Free-text wording is the most reliable signal when present, so lexical rules
// run first (first match wins). Postings without any explicit wording fall back
// to the API's structured allowRemote flag combined with whether the posting
// lists physical locations. An allowRemote posting whose text mentions a hybrid
// term anywhere is treated as hybrid rather than remote.
func Classify(title, body string, allowRemote *bool, hasLocations bool) Arrangement {
	text := textnorm.Normalize(title + " " + body)

	switch {
	case remoteRe.MatchString(text):
		return Remote
	case hybridRe.MatchString(text):
		return Hybrid
	case onsiteRe.MatchString(text):
		return Onsite
	}

	if allowRemote != nil {
		if *allowRemote {
			if hybridRe.MatchString(text) {
				return Hybrid
			}
			return Remote
		}
		if hasLocations {
			return Onsite
		}
	}
	return Other
}
