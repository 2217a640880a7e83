// Package jobs executes planned search queries against the external
// job-search provider and normalizes the results.
package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/job-recommender/internal/types"
)

// Provider executes one search query against the external job-search service.
type Provider interface {
	Search(ctx context.Context, query types.SearchQuery) ([]types.JobRecord, error)
}

// DefaultTimeout is the default per-request timeout for provider calls.
const DefaultTimeout = 30 * time.Second

// minResultsPerQuery is the minimum result count requested from the provider.
const minResultsPerQuery = 10

// ProviderError represents a failed provider call for a single query.
type ProviderError struct {
	Query   string
	Message string
	Cause   error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error for query %q: %s: %v", e.Query, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error for query %q: %s", e.Query, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// HTTPProvider calls a scraping-API style job-search service: it submits one
// or more search URLs and receives an array of job objects back.
type HTTPProvider struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

// NewHTTPProvider creates a provider client. baseURL is the scrape endpoint,
// apiToken is sent as a bearer token.
func NewHTTPProvider(baseURL, apiToken string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProvider{
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiToken: apiToken,
		client:   &http.Client{Timeout: timeout},
	}
}

type scrapeRequest struct {
	URLs          []string `json:"urls"`
	ScrapeCompany bool     `json:"scrapeCompany"`
	Count         int      `json:"count"`
}

// providerJob mirrors the provider's wire shape for one job result. An error
// response arrives as a single-element array whose only object carries the
// Error field instead of job fields.
type providerJob struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	CompanyName     string   `json:"companyName"`
	Location        string   `json:"location"`
	DescriptionHTML string   `json:"descriptionHtml"`
	DescriptionText string   `json:"descriptionText"`
	SalaryInfo      []string `json:"salaryInfo"`
	EmploymentType  string   `json:"employmentType"`
	PostedAt        string   `json:"postedAt"`
	ApplicantsCount string   `json:"applicantsCount"`
	CompanyLogo     string   `json:"companyLogo"`
	Link            string   `json:"link"`
	Error           string   `json:"error"`
}

// Search executes one query. A provider-reported error shape is raised as a
// *ProviderError rather than treated as zero results.
func (p *HTTPProvider) Search(ctx context.Context, query types.SearchQuery) ([]types.JobRecord, error) {
	searchURL := buildSearchURL(query)

	body, err := json.Marshal(scrapeRequest{
		URLs:          []string{searchURL},
		ScrapeCompany: true,
		Count:         minResultsPerQuery,
	})
	if err != nil {
		return nil, &ProviderError{Query: searchURL, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Query: searchURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Query: searchURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ProviderError{
			Query:   searchURL,
			Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(preview))),
		}
	}

	var raw []providerJob
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ProviderError{Query: searchURL, Message: "failed to decode response", Cause: err}
	}

	if len(raw) == 1 && raw[0].Error != "" {
		return nil, &ProviderError{Query: searchURL, Message: raw[0].Error}
	}

	records := make([]types.JobRecord, 0, len(raw))
	for _, job := range raw {
		if job.ID == "" {
			continue
		}
		description := job.DescriptionText
		if description == "" && job.DescriptionHTML != "" {
			description = HTMLToText(job.DescriptionHTML)
		}
		records = append(records, types.JobRecord{
			ID:              job.ID,
			Title:           job.Title,
			CompanyName:     job.CompanyName,
			Location:        job.Location,
			DescriptionText: description,
			SalaryInfo:      job.SalaryInfo,
			EmploymentType:  job.EmploymentType,
			PostedAt:        job.PostedAt,
			ApplicantsCount: job.ApplicantsCount,
			CompanyLogo:     job.CompanyLogo,
			Link:            job.Link,
		})
	}
	return records, nil
}

// buildSearchURL derives the provider search URL from a planned query.
func buildSearchURL(query types.SearchQuery) string {
	params := url.Values{}
	params.Set("keywords", strings.Join(query.Keywords, " "))
	if query.Location != "" {
		params.Set("location", query.Location)
	}
	if query.Seniority != "" {
		params.Set("seniority", query.Seniority)
	}
	return "https://www.linkedin.com/jobs/search/?" + params.Encode()
}
