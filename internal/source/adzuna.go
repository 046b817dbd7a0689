package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/sanitize"
)

const (
	adzunaBaseURL  = "https://api.adzuna.com/v1/api/jobs"
	adzunaPageSize = 20
)

// AdzunaAdapter fetches from the Adzuna public API. Adzuna is a general
// board, not a remote-discovery source, so no remote-first drop is applied;
// the location type is inferred from the listing text instead.
type AdzunaAdapter struct {
	appID   string
	appKey  string
	country string // "us", "gb", "fr", …
	baseURL string
	client  *http.Client
}

// NewAdzunaAdapter constructs the adapter with a shared HTTP client.
func NewAdzunaAdapter(appID, appKey, country string) *AdzunaAdapter {
	return &AdzunaAdapter{
		appID:   appID,
		appKey:  appKey,
		country: country,
		baseURL: adzunaBaseURL,
		client:  newHTTPClient(),
	}
}

// Enabled reports whether both credentials are configured.
func (a *AdzunaAdapter) Enabled() bool {
	return a.appID != "" && a.appKey != "" &&
		a.appID != apiKeyPlaceholder && a.appKey != apiKeyPlaceholder
}

func (a *AdzunaAdapter) Name() string { return "adzuna" }

// adzunaResponse mirrors the top-level Adzuna JSON response.
type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

// adzunaResult mirrors a single Adzuna job listing.
type adzunaResult struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Company      adzunaCompany  `json:"company"`
	Location     adzunaLocation `json:"location"`
	SalaryMin    float64        `json:"salary_min"`
	SalaryMax    float64        `json:"salary_max"`
	RedirectURL  string         `json:"redirect_url"`
	Created      string         `json:"created"`
	ContractTime string         `json:"contract_time"`
	ContractType string         `json:"contract_type"`
}

type adzunaCompany struct {
	DisplayName string `json:"display_name"`
}

type adzunaLocation struct {
	DisplayName string `json:"display_name"`
}

// Fetch retrieves one page of offers matching the profile's title terms.
func (a *AdzunaAdapter) Fetch(ctx context.Context, profile model.UserProfile, page int) ([]model.Job, error) {
	if page < 1 {
		page = 1
	}
	endpoint := fmt.Sprintf("%s/%s/search/%d", a.baseURL, a.country, page)

	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", strconv.Itoa(adzunaPageSize))
	params.Set("what", strings.Join(profile.TargetJobTitles, " OR "))
	params.Set("sort_by", "date")
	if profile.Location != "" {
		params.Set("where", profile.Location)
	}
	if profile.SalaryMin != nil {
		params.Set("salary_min", strconv.Itoa(int(*profile.SalaryMin)))
	}

	var resp adzunaResponse
	if err := getJSON(ctx, a.client, endpoint+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	jobs := make([]model.Job, 0, len(resp.Results))
	for _, r := range resp.Results {
		jobs = append(jobs, a.convert(r))
	}
	return jobs, nil
}

func (a *AdzunaAdapter) convert(r adzunaResult) model.Job {
	jobType := model.ParseJobType(r.ContractTime)
	if r.ContractTime == "" {
		jobType = model.ParseJobType(r.ContractType)
	}

	return model.Job{
		ID:             uuid.NewString(),
		Title:          r.Title,
		Company:        r.Company.DisplayName,
		Location:       r.Location.DisplayName,
		LocationType:   inferLocationType(r.Title + " " + r.Description),
		JobType:        jobType,
		SalaryMin:      optionalSalary(r.SalaryMin),
		SalaryMax:      optionalSalary(r.SalaryMax),
		SalaryCurrency: "USD",
		Description:    sanitize.Clean(r.Description),
		Requirements:   []string{},
		Benefits:       []string{},
		PostedDate:     normalizeDate(r.Created),
		ApplicationURL: r.RedirectURL,
	}
}
