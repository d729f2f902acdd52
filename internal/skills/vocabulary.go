package skills

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// vocabularyFile is the on-disk shape of a custom vocabulary.
type vocabularyFile struct {
	Skills []string `yaml:"skills"`
}

// LoadVocabulary reads a YAML vocabulary file of the form:
//
//	skills:
//	  - python
//	  - terraform
//
// An empty path returns DefaultVocabulary.
func LoadVocabulary(path string) ([]string, error) {
	if path == "" {
		return DefaultVocabulary, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var vf vocabularyFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary YAML: %w", err)
	}
	if len(vf.Skills) == 0 {
		return nil, fmt.Errorf("vocabulary file %s lists no skills", path)
	}
	return vf.Skills, nil
}
