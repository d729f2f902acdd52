package teamlyzer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfonseca/itjobs-cli/internal/fetch"
)

const profileHTML = `
<html>
<head>
  <meta itemprop="ratingValue" content="4,2">
  <meta property="og:description" content="Acme builds industrial automation software in Coimbra.">
</head>
<body>
  <h1>Acme</h1>
  <p>Curta.</p>
  <h3>Benefícios e Regalias</h3>
  <ul>
    <li>Health Insurance</li>
    <li>health insurance</li>
    <li>Gym</li>
  </ul>
  <h3>Outra Secção</h3>
  <ul><li>Not a benefit</li></ul>
  <div>
    <span>Salário médio bruto:</span>
    <span>1.200 € - 1.800 €</span>
  </div>
</body>
</html>`

func serveProfile(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
}

func TestExtract_FullProfile(t *testing.T) {
	server := serveProfile(t, profileHTML)
	defer server.Close()

	client := NewClient(server.URL)
	profile := client.Extract(context.Background(), server.URL+"/companies/acme")

	require.NotNil(t, profile.Rating)
	assert.InDelta(t, 4.2, *profile.Rating, 0.001)
	assert.Equal(t, "Acme builds industrial automation software in Coimbra.", profile.Description)
	assert.Equal(t, []string{"Health Insurance", "Gym"}, profile.Benefits,
		"case-insensitive dedupe keeps first occurrence, section boundary excludes later lists")
	require.NotNil(t, profile.Salary)
	assert.Equal(t, "1.200 €", profile.Salary.Min)
	assert.Equal(t, "1.800 €", profile.Salary.Max)
}

func TestExtract_Unreachable(t *testing.T) {
	server := serveProfile(t, "")
	server.Close()

	client := NewClient(server.URL)
	profile := client.Extract(context.Background(), server.URL+"/companies/ghost")

	assert.Equal(t, server.URL+"/companies/ghost", profile.URL)
	assert.Nil(t, profile.Rating)
	assert.Empty(t, profile.Description)
	assert.Nil(t, profile.Benefits)
	assert.Nil(t, profile.Salary)
}

func TestExtractRating_VisibleTextFallback(t *testing.T) {
	doc, err := fetch.ParseDocument(`<html><body><div class="score">3,7 / 5 em 120 avaliações</div></body></html>`)
	require.NoError(t, err)

	rating := extractRating(doc)
	require.NotNil(t, rating)
	assert.InDelta(t, 3.7, *rating, 0.001)
}

func TestExtractRating_RejectsOutOfScale(t *testing.T) {
	doc, err := fetch.ParseDocument(`<html><head><meta itemprop="ratingValue" content="42.0"></head><body></body></html>`)
	require.NoError(t, err)
	assert.Nil(t, extractRating(doc))
}

func TestExtractDescription_SkipsSiteBoilerplate(t *testing.T) {
	doc, err := fetch.ParseDocument(`<html><head>
		<meta name="description" content="Teamlyzer — avaliações de empresas e salários em Portugal">
	</head><body>
		<p>ok</p>
		<p>Acme develops mission-critical systems for aerospace customers.</p>
	</body></html>`)
	require.NoError(t, err)

	got := extractDescription(doc)
	assert.Equal(t, "Acme develops mission-critical systems for aerospace customers.", got)
}

func TestExtractDescription_MetaPreferenceOrder(t *testing.T) {
	doc, err := fetch.ParseDocument(`<html><head>
		<meta property="og:description" content="From open graph.">
		<meta name="description" content="From plain meta.">
	</head><body><p>A paragraph that is certainly longer than forty characters.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "From open graph.", extractDescription(doc))
}

func TestExtractBenefits_NoSection(t *testing.T) {
	doc, err := fetch.ParseDocument(`<html><body><h3>Salários</h3><ul><li>1000</li></ul></body></html>`)
	require.NoError(t, err)
	assert.Nil(t, extractBenefits(doc))
}

func TestExtractSalary_LabelAndRangeInOneNode(t *testing.T) {
	doc, err := fetch.ParseDocument(`<html><body><p>Salário médio bruto: 1.200 € - 1.800 €</p></body></html>`)
	require.NoError(t, err)

	salary := extractSalary(doc)
	require.NotNil(t, salary)
	assert.Equal(t, "1.200 €", salary.Min)
	assert.Equal(t, "1.800 €", salary.Max)
}

func TestExtractSalary_BeyondAncestorDepth(t *testing.T) {
	// Range sits outside the bounded ancestor walk from the label node.
	doc, err := fetch.ParseDocument(`<html><body>
		<div><div><div><div><div><div>
			<span>Salário médio bruto</span>
		</div></div></div></div></div></div>
		<p>900 € - 1.100 €</p>
	</body></html>`)
	require.NoError(t, err)
	assert.Nil(t, extractSalary(doc))
}

func TestExtractSalary_Absent(t *testing.T) {
	doc, err := fetch.ParseDocument(`<html><body><p>Sem dados salariais</p></body></html>`)
	require.NoError(t, err)
	assert.Nil(t, extractSalary(doc))
}
