package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestClassify_LexicalRules(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		body     string
		expected Arrangement
	}{
		{name: "remote pt", title: "Backend Developer", body: "Trabalho 100% remoto", expected: Remote},
		{name: "remote en upper", title: "REMOTE Data Engineer", body: "", expected: Remote},
		{name: "teletrabalho", title: "Analista", body: "Regime de teletrabalho", expected: Remote},
		{name: "hybrid accented", title: "DevOps", body: "Modelo híbrido, 2 dias no escritório", expected: Hybrid},
		{name: "hybrid plain", title: "QA hibrido", body: "", expected: Hybrid},
		{name: "onsite pt", title: "Técnico", body: "Trabalho presencial em Lisboa", expected: Onsite},
		{name: "onsite hyphen", title: "Support", body: "This role is on-site", expected: Onsite},
		{name: "onsite spaced", title: "Support", body: "on site in Porto", expected: Onsite},
		{name: "no signal", title: "Developer", body: "Great team", expected: Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.title, tt.body, nil, false))
		})
	}
}

func TestClassify_LexicalBeatsStructured(t *testing.T) {
	// An explicit "remoto" in the text wins even when allowRemote says otherwise.
	got := Classify("Engenheiro", "posição 100% remota? sim, remoto", boolPtr(false), true)
	assert.Equal(t, Remote, got)
}

func TestClassify_RemoteBeforeHybrid(t *testing.T) {
	// Both terms present: remote rule runs first.
	got := Classify("Dev", "remote ou híbrido, a combinar", nil, false)
	assert.Equal(t, Remote, got)
}

func TestClassify_StructuredFallback(t *testing.T) {
	tests := []struct {
		name         string
		allowRemote  *bool
		hasLocations bool
		expected     Arrangement
	}{
		{name: "allowRemote true", allowRemote: boolPtr(true), hasLocations: false, expected: Remote},
		{name: "allowRemote false with locations", allowRemote: boolPtr(false), hasLocations: true, expected: Onsite},
		{name: "allowRemote false no locations", allowRemote: boolPtr(false), hasLocations: false, expected: Other},
		{name: "absent flag", allowRemote: nil, hasLocations: true, expected: Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("Developer", "no arrangement wording here", tt.allowRemote, tt.hasLocations)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassify_WholeWordOnly(t *testing.T) {
	// "remotely" must not trigger the remote rule.
	assert.Equal(t, Other, Classify("Dev", "work remotely-adjacent wording", nil, false))
}
