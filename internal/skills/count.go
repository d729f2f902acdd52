// Package skills counts occurrences of a skill vocabulary in job text.
package skills

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultVocabulary is the skill set counted when no vocabulary file is given.
var DefaultVocabulary = []string{"python", "java", "javascript", "sql", "docker"}

// Count returns whole-word, case-insensitive occurrence counts for every
// vocabulary entry over text. Entries with zero occurrences are included;
// callers filter and sort. The function is pure and performs no I/O.
func Count(text string, vocabulary []string) map[string]int {
	lowered := strings.ToLower(text)

	counts := make(map[string]int, len(vocabulary))
	for _, skill := range vocabulary {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(needle) + `\b`)
		if err != nil {
			counts[needle] = 0
			continue
		}
		counts[needle] = len(re.FindAllStringIndex(lowered, -1))
	}
	return counts
}

// Entry is one skill with its accumulated count.
type Entry struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Ranked flattens counts into entries sorted by count descending. Ties keep
// the vocabulary order so output is deterministic.
func Ranked(counts map[string]int, vocabulary []string) []Entry {
	order := make(map[string]int, len(vocabulary))
	entries := make([]Entry, 0, len(counts))
	for i, skill := range vocabulary {
		key := strings.ToLower(strings.TrimSpace(skill))
		if _, dup := order[key]; dup {
			continue
		}
		order[key] = i
		if n, ok := counts[key]; ok {
			entries = append(entries, Entry{Skill: key, Count: n})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
