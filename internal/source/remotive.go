package source

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/sanitize"
)

const (
	remotiveBaseURL  = "https://remotive.com/api/remote-jobs"
	remotiveMaxItems = 20
)

// RemotiveAdapter reads Remotive's free remote-jobs API.
type RemotiveAdapter struct {
	baseURL string
	client  *http.Client
}

// NewRemotiveAdapter constructs the adapter with a shared HTTP client.
func NewRemotiveAdapter() *RemotiveAdapter {
	return &RemotiveAdapter{
		baseURL: remotiveBaseURL,
		client:  newHTTPClient(),
	}
}

func (a *RemotiveAdapter) Name() string { return "remotive" }

// remotiveResponse mirrors the top-level Remotive JSON response.
type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

// remotiveJob mirrors a single Remotive listing.
type remotiveJob struct {
	Title                     string   `json:"title"`
	CompanyName               string   `json:"company_name"`
	CompanyLogo               string   `json:"company_logo"`
	CandidateRequiredLocation string   `json:"candidate_required_location"`
	JobType                   string   `json:"job_type"`
	Description               string   `json:"description"`
	Tags                      []string `json:"tags"`
	PublicationDate           string   `json:"publication_date"`
	URL                       string   `json:"url"`
}

// Fetch queries the profile's top category. The API has no page cursor;
// page > 1 yields nothing rather than repeating the same listings.
func (a *RemotiveAdapter) Fetch(ctx context.Context, profile model.UserProfile, page int) ([]model.Job, error) {
	if page > 1 {
		return []model.Job{}, nil
	}

	params := url.Values{}
	params.Set("category", firstTitle(profile))
	params.Set("limit", strconv.Itoa(remotiveMaxItems))

	var resp remotiveResponse
	if err := getJSON(ctx, a.client, a.baseURL+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	jobs := make([]model.Job, 0, len(resp.Jobs))
	for _, r := range resp.Jobs {
		jobs = append(jobs, a.convert(r))
	}
	return jobs, nil
}

func (a *RemotiveAdapter) convert(r remotiveJob) model.Job {
	location := r.CandidateRequiredLocation
	if location == "" {
		location = "Remote"
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.Job{
		ID:                  uuid.NewString(),
		Title:               r.Title,
		Company:             r.CompanyName,
		CompanyLogo:         r.CompanyLogo,
		Location:            location,
		LocationType:        model.LocationRemote,
		JobType:             model.ParseJobType(r.JobType),
		SalaryCurrency:      "USD",
		Description:         sanitize.Clean(r.Description),
		Requirements:        tags,
		Benefits:            []string{},
		PostedDate:          normalizeDate(r.PublicationDate),
		ApplicationURL:      r.URL,
		TimezoneRequirement: model.TimezoneFlexible,
		IsAsync:             true,
	}
}
