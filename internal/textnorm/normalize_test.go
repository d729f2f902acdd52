package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "accents stripped", input: "híbrido", expected: "hibrido"},
		{name: "case folded", input: "Data Scientist", expected: "data scientist"},
		{name: "whitespace collapsed", input: "  Data \t Scientist \n", expected: "data scientist"},
		{name: "mixed", input: "  Gestão  de  PROJETOS ", expected: "gestao de projetos"},
		{name: "cedilla", input: "Benefícios e Remuneração", expected: "beneficios e remuneracao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "híbrido", "  A  B  ", "ALREADY normal", "ação João çç"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestStripPunctuation(t *testing.T) {
	assert.Equal(t, "Critical Software SA", StripPunctuation("Critical Software, S.A."))
	assert.Equal(t, "xpandit", StripPunctuation("xpand-it!"))
}
