package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ascendai/backend/config"
	"github.com/ascendai/backend/models"
	"github.com/ascendai/backend/utils"
)

// fallbackQuery is used when a resume yields no skills
const fallbackQuery = "software engineer"

// Client queries the JSearch job-listing API and enriches results with
// coordinates via the geocoder.
type Client struct {
	apiKey     string
	apiHost    string
	baseURL    string
	httpClient *http.Client
	geocoder   *Geocoder
}

// NewClient creates a new job search client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:     cfg.RapidAPIKey,
		apiHost:    cfg.RapidAPIHost,
		baseURL:    "https://" + cfg.RapidAPIHost,
		httpClient: utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second),
		geocoder:   NewGeocoder(cfg),
	}
}

// BuildQuery derives a search string from a parsed resume: the first two
// extracted skills joined by a space, or a generic fallback.
func BuildQuery(parsed *models.ParsedResume) string {
	skills := parsed.Skills
	if len(skills) > 2 {
		skills = skills[:2]
	}

	query := strings.TrimSpace(strings.Join(skills, " "))
	if query == "" {
		return fallbackQuery
	}
	return query
}

// FetchJobs searches one page of listings for the parsed resume, deduplicates
// them and geocodes missing coordinates. An upstream failure degrades to an
// empty list so a resume upload never fails on the job search.
func (c *Client) FetchJobs(ctx context.Context, parsed *models.ParsedResume) []models.JobResult {
	query := BuildQuery(parsed)
	log.Printf("[JobSearch] Searching with query: %q", query)

	jobs, err := c.search(ctx, query)
	if err != nil {
		log.Printf("[JobSearch] Search failed: %v", err)
		return []models.JobResult{}
	}

	jobs = Dedupe(jobs)
	log.Printf("[JobSearch] %d unique jobs after dedup", len(jobs))

	// Fresh cache per invocation; repeated locations within one response
	// batch are geocoded once.
	c.geocoder.EnrichJobs(ctx, jobs, NewGeocodeCache())

	return jobs
}

// jsearchResponse is the JSearch API envelope
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

type jsearchJob struct {
	JobTitle     string   `json:"job_title"`
	EmployerName string   `json:"employer_name"`
	EmployerLogo string   `json:"employer_logo"`
	JobApplyLink string   `json:"job_apply_link"`
	JobCity      string   `json:"job_city"`
	JobState     string   `json:"job_state"`
	JobCountry   string   `json:"job_country"`
	JobPostedAt  string   `json:"job_posted_at_datetime_utc"`
	JobLatitude  *float64 `json:"job_latitude"`
	JobLongitude *float64 `json:"job_longitude"`
}

// search fetches a single page of results from JSearch
func (c *Client) search(ctx context.Context, query string) ([]models.JobResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("date_posted", "month")

	reqURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("JSearch API error (status %d): %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var searchResp jsearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	jobs := make([]models.JobResult, 0, len(searchResp.Data))
	for _, item := range searchResp.Data {
		jobs = append(jobs, mapJob(item))
	}
	return jobs, nil
}

// mapJob converts an external listing to a JobResult, filling missing fields
// with fixed fallbacks.
func mapJob(j jsearchJob) models.JobResult {
	job := models.JobResult{
		JobTitle:       j.JobTitle,
		CompanyName:    j.EmployerName,
		CompanyImage:   j.EmployerLogo,
		ApplicationURL: j.JobApplyLink,
		Location:       joinLocation(j.JobCity, j.JobState, j.JobCountry),
		DatePosted:     j.JobPostedAt,
		Latitude:       j.JobLatitude,
		Longitude:      j.JobLongitude,
	}

	if job.JobTitle == "" {
		job.JobTitle = models.FallbackJobTitle
	}
	if job.CompanyName == "" {
		job.CompanyName = models.FallbackCompanyName
	}
	if job.CompanyImage == "" {
		job.CompanyImage = models.FallbackCompanyImage
	}
	if job.ApplicationURL == "" {
		job.ApplicationURL = models.FallbackApplyLink
	}

	return job
}

func joinLocation(parts ...string) string {
	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, " ")
}

// Dedupe keeps the first occurrence of each lowercase (title, company) pair
func Dedupe(jobs []models.JobResult) []models.JobResult {
	seen := make(map[string]bool, len(jobs))
	unique := make([]models.JobResult, 0, len(jobs))

	for _, job := range jobs {
		key := strings.ToLower(job.JobTitle) + "-" + strings.ToLower(job.CompanyName)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, job)
	}

	return unique
}
