package itjobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, path, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("api_key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestList(t *testing.T) {
	server := newTestServer(t, "/job/list.json", `{
		"results": [
			{"id": 1, "title": "Backend Developer", "company": {"name": "Acme", "slug": "acme"},
			 "publishedAt": "2024-03-01 09:30:00", "allowRemote": true},
			{"id": 2, "title": "QA Engineer", "company": {"name": "Beta"}}
		]
	}`)
	defer server.Close()

	client := NewClient(server.URL, "test-key", nil)
	jobs, err := client.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Backend Developer", jobs[0].Title)
	assert.Equal(t, "acme", jobs[0].Company.Slug)
	require.NotNil(t, jobs[0].AllowRemote)
	assert.True(t, *jobs[0].AllowRemote)
	assert.Nil(t, jobs[1].AllowRemote, "absent allowRemote stays nil")
}

func TestGet(t *testing.T) {
	server := newTestServer(t, "/job/get.json", `{
		"id": 491, "title": "Data Engineer", "body": "<p>Regime híbrido</p>",
		"company": {"name": "Acme", "slug": "acme"},
		"locations": [{"name": "Lisboa"}, {"name": "Porto"}],
		"wage": "30000 - 40000"
	}`)
	defer server.Close()

	client := NewClient(server.URL, "test-key", nil)
	job, err := client.Get(context.Background(), "491")
	require.NoError(t, err)
	assert.Equal(t, 491, job.ID)
	assert.Equal(t, "Lisboa, Porto", job.LocationNames())
	assert.Contains(t, job.Text(), "híbrido")
}

func TestGet_NotFound(t *testing.T) {
	server := newTestServer(t, "/job/get.json", `{"error": {"message": "job does not exist"}}`)
	defer server.Close()

	client := NewClient(server.URL, "test-key", nil)
	_, err := client.Get(context.Background(), "999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearch(t *testing.T) {
	server := newTestServer(t, "/job/search.json", `{"results": [{"id": 7, "title": "Part-time Designer"}]}`)
	defer server.Close()

	client := NewClient(server.URL, "test-key", nil)
	jobs, err := client.Search(context.Background(), "designer porto", 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Part-time Designer", jobs[0].Title)
}

func TestWageUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{name: "string", payload: `{"wage": "1500 €"}`, expected: "1500 €"},
		{name: "number", payload: `{"wage": 30000}`, expected: "30000"},
		{name: "null", payload: `{"wage": null}`, expected: ""},
		{name: "absent", payload: `{}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var job JobPosting
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &job))
			assert.Equal(t, tt.expected, job.Wage.String())
		})
	}
}

func TestPublishedDate(t *testing.T) {
	job := JobPosting{PublishedAt: "2024-03-01 09:30:00"}
	ts, ok := job.PublishedDate()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ts)

	_, ok = JobPosting{}.PublishedDate()
	assert.False(t, ok)

	_, ok = JobPosting{PublishedAt: "not a date"}.PublishedDate()
	assert.False(t, ok)
}
