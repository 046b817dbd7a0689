package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/sanitize"
)

const (
	remoteOKAPIURL   = "https://remoteok.com/api"
	remoteOKSiteURL  = "https://remoteok.com"
	remoteOKMaxItems = 20

	// RemoteOK rejects requests without a browser-ish User-Agent.
	remoteOKUserAgent = "Mozilla/5.0 (compatible; JobHunterPro/1.0)"
)

// RemoteOKAdapter reads RemoteOK's public JSON API. The response is a flat
// array whose first element is a legal-notice blob, not a listing.
type RemoteOKAdapter struct {
	apiURL string
	client *http.Client
}

// NewRemoteOKAdapter constructs the adapter with a shared HTTP client.
func NewRemoteOKAdapter() *RemoteOKAdapter {
	return &RemoteOKAdapter{
		apiURL: remoteOKAPIURL,
		client: newHTTPClient(),
	}
}

func (a *RemoteOKAdapter) Name() string { return "remoteok" }

// remoteOKJob mirrors a RemoteOK listing. The metadata element decodes into a
// zero value and is dropped by the empty-position filter.
type remoteOKJob struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	CompanyLogo string   `json:"company_logo"`
	Location    string   `json:"location"`
	SalaryMin   float64  `json:"salary_min"`
	SalaryMax   float64  `json:"salary_max"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Date        string   `json:"date"`
	URL         string   `json:"url"`
	ApplyURL    string   `json:"apply_url"`
}

// Fetch downloads the feed. The API is not paginated; page > 1 yields nothing
// rather than repeating the same listings.
func (a *RemoteOKAdapter) Fetch(ctx context.Context, profile model.UserProfile, page int) ([]model.Job, error) {
	if page > 1 {
		return []model.Job{}, nil
	}

	headers := map[string]string{"User-Agent": remoteOKUserAgent}
	body, err := getBody(ctx, a.client, a.apiURL, headers)
	if err != nil {
		return nil, err
	}

	var raw []remoteOKJob
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	jobs := make([]model.Job, 0, remoteOKMaxItems)
	for _, r := range raw {
		if r.Position == "" {
			continue // metadata element or malformed row
		}
		jobs = append(jobs, a.convert(r))
		if len(jobs) == remoteOKMaxItems {
			break
		}
	}
	return jobs, nil
}

func (a *RemoteOKAdapter) convert(r remoteOKJob) model.Job {
	company := r.Company
	if company == "" {
		company = "Unknown Company"
	}
	location := r.Location
	if location == "" {
		location = "Remote"
	}

	applyURL := r.ApplyURL
	if r.URL != "" {
		applyURL = r.URL
		if strings.HasPrefix(applyURL, "/") {
			applyURL = remoteOKSiteURL + applyURL
		}
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.Job{
		ID:             uuid.NewString(),
		Title:          r.Position,
		Company:        company,
		CompanyLogo:    r.CompanyLogo,
		Location:       location,
		LocationType:   model.LocationRemote,
		JobType:        model.JobTypeFullTime,
		SalaryMin:      optionalSalary(r.SalaryMin),
		SalaryMax:      optionalSalary(r.SalaryMax),
		SalaryCurrency: "USD",
		Description:    sanitize.Clean(r.Description),
		Requirements:   tags,
		Benefits:       []string{},
		PostedDate:     normalizeDate(r.Date),
		ApplicationURL: applyURL,
	}
}
