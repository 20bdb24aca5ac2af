package jobsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/ascendai/backend/models"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		want   string
	}{
		{
			name:   "first two skills joined",
			skills: []string{"Python", "Go", "Kubernetes"},
			want:   "Python Go",
		},
		{
			name:   "single skill used alone",
			skills: []string{"Rust"},
			want:   "Rust",
		},
		{
			name:   "no skills falls back",
			skills: nil,
			want:   "software engineer",
		},
		{
			name:   "blank skills fall back",
			skills: []string{"", ""},
			want:   "software engineer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildQuery(&models.ParsedResume{Skills: tt.skills})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDedupe(t *testing.T) {
	first := models.JobResult{JobTitle: "Backend Engineer", CompanyName: "Acme", ApplicationURL: "https://a.example/1"}
	shout := models.JobResult{JobTitle: "BACKEND ENGINEER", CompanyName: "ACME", ApplicationURL: "https://a.example/2"}
	other := models.JobResult{JobTitle: "Backend Engineer", CompanyName: "Globex"}

	unique := Dedupe([]models.JobResult{first, shout, other})

	require.Len(t, unique, 2)
	// first occurrence wins, comparison is case-insensitive
	assert.Equal(t, "https://a.example/1", unique[0].ApplicationURL)
	assert.Equal(t, "Globex", unique[1].CompanyName)
}

func TestMapJobFallbacks(t *testing.T) {
	job := mapJob(jsearchJob{})

	assert.Equal(t, models.FallbackJobTitle, job.JobTitle)
	assert.Equal(t, models.FallbackCompanyName, job.CompanyName)
	assert.Equal(t, models.FallbackCompanyImage, job.CompanyImage)
	assert.Equal(t, models.FallbackApplyLink, job.ApplicationURL)
	assert.Empty(t, job.Location)
}

func TestMapJobLocation(t *testing.T) {
	job := mapJob(jsearchJob{JobTitle: "Dev", EmployerName: "Acme", JobCity: "Berlin", JobCountry: "Germany"})
	assert.Equal(t, "Berlin Germany", job.Location)

	job = mapJob(jsearchJob{JobTitle: "Dev", EmployerName: "Acme", JobState: "CA"})
	assert.Equal(t, "CA", job.Location)
}

// testClient wires a Client against stub servers for search and geocoding
func testClient(searchURL, geocodeURL string) *Client {
	httpClient := &http.Client{Timeout: 5 * time.Second}
	return &Client{
		apiKey:     "test-key",
		apiHost:    "test-host",
		baseURL:    searchURL,
		httpClient: httpClient,
		geocoder: &Geocoder{
			baseURL:    geocodeURL,
			httpClient: httpClient,
			limiter:    rate.NewLimiter(rate.Inf, 1),
		},
	}
}

func TestSearchRequestShape(t *testing.T) {
	var gotQuery, gotKey, gotHost string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		w.Write([]byte(`{"data": [{"job_title": "Backend Engineer", "employer_name": "Acme"}]}`))
	}))
	defer ts.Close()

	client := testClient(ts.URL, ts.URL)
	jobs, err := client.search(context.Background(), "Python Go")
	require.NoError(t, err)

	assert.Equal(t, "Python Go", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "test-host", gotHost)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].JobTitle)
}

func TestFetchJobsDegradesToEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := testClient(ts.URL, ts.URL)
	jobs := client.FetchJobs(context.Background(), &models.ParsedResume{Skills: []string{"Go"}})

	require.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestFetchJobsDedupesAndGeocodes(t *testing.T) {
	searchTS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"job_title": "Backend Engineer", "employer_name": "Acme", "job_city": "Berlin", "job_country": "Germany"},
			{"job_title": "backend engineer", "employer_name": "acme", "job_city": "Berlin", "job_country": "Germany"},
			{"job_title": "SRE", "employer_name": "Globex", "job_latitude": 40.7, "job_longitude": -74.0}
		]}`))
	}))
	defer searchTS.Close()

	geocodeCalls := 0
	geoTS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geocodeCalls++
		w.Write([]byte(`[{"lat": "52.52", "lon": "13.405"}]`))
	}))
	defer geoTS.Close()

	client := testClient(searchTS.URL, geoTS.URL)
	jobs := client.FetchJobs(context.Background(), &models.ParsedResume{Skills: []string{"Go", "Python"}})

	require.Len(t, jobs, 2)

	require.NotNil(t, jobs[0].Latitude)
	assert.InDelta(t, 52.52, *jobs[0].Latitude, 0.001)
	assert.InDelta(t, 13.405, *jobs[0].Longitude, 0.001)

	// listing that already carried coordinates is left untouched
	require.NotNil(t, jobs[1].Latitude)
	assert.InDelta(t, 40.7, *jobs[1].Latitude, 0.001)

	assert.Equal(t, 1, geocodeCalls)
}
