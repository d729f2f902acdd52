// Package match implements deterministic best-of-N scoring over candidate
// lists, shared by company and role resolution.
package match

// Candidate is one (label, value) option from a scraped control or link list.
type Candidate struct {
	Label string
	Value string
}

// ScoreFunc assigns a relevance score to one candidate for a query.
// Scores at or below zero mean "no match".
type ScoreFunc func(query string, c Candidate) int

// Best returns the highest-scoring candidate above the zero floor.
// Ties are broken by input order, so resolution is deterministic for a fixed
// candidate list. The second return reports whether anything matched.
func Best(query string, candidates []Candidate, score ScoreFunc) (Candidate, bool) {
	best := -1
	var winner Candidate
	for _, c := range candidates {
		if s := score(query, c); s > 0 && s > best {
			best = s
			winner = c
		}
	}
	return winner, best > 0
}
