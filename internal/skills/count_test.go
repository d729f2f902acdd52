package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_WholeWord(t *testing.T) {
	// "PySpark" must not count as "python"-adjacent noise, and word
	// boundaries exclude substrings.
	counts := Count("I use Python and PySpark", []string{"python"})
	assert.Equal(t, 1, counts["python"])
}

func TestCount_CaseInsensitiveAndRepeated(t *testing.T) {
	text := "Java, java e mais JAVA. JavaScript não conta como java? Conta o javascript à parte."
	counts := Count(text, []string{"java", "javascript", "docker"})
	assert.Equal(t, 4, counts["java"])
	assert.Equal(t, 2, counts["javascript"])
	assert.Equal(t, 0, counts["docker"], "zero counts are still reported")
}

func TestCount_EmptyText(t *testing.T) {
	counts := Count("", DefaultVocabulary)
	assert.Len(t, counts, len(DefaultVocabulary))
	for skill, n := range counts {
		assert.Zero(t, n, "skill %s", skill)
	}
}

func TestRanked(t *testing.T) {
	vocab := []string{"python", "java", "sql"}
	counts := map[string]int{"python": 2, "java": 5, "sql": 2}

	ranked := Ranked(counts, vocab)
	require.Len(t, ranked, 3)
	assert.Equal(t, Entry{Skill: "java", Count: 5}, ranked[0])
	// Tie between python and sql resolves by vocabulary order.
	assert.Equal(t, Entry{Skill: "python", Count: 2}, ranked[1])
	assert.Equal(t, Entry{Skill: "sql", Count: 2}, ranked[2])
}

func TestLoadVocabulary_Default(t *testing.T) {
	vocab, err := LoadVocabulary("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVocabulary, vocab)
}

func TestLoadVocabulary_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skills:\n  - go\n  - kubernetes\n"), 0o644))

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "kubernetes"}, vocab)
}

func TestLoadVocabulary_Errors(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("skills: []\n"), 0o644))
	_, err = LoadVocabulary(empty)
	assert.Error(t, err)
}
