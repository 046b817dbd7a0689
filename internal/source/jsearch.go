package source

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/sanitize"
)

const (
	jsearchBaseURL = "https://jsearch.p.rapidapi.com/search"
	jsearchHost    = "jsearch.p.rapidapi.com"

	// apiKeyPlaceholder is the value shipped in sample configs; treating it
	// as "no credential" keeps a copy-pasted .env from burning paid requests.
	apiKeyPlaceholder = "demo"
)

// JSearchAdapter is the primary, credentialed aggregator. It fronts several
// job boards (LinkedIn, Indeed, Glassdoor, ZipRecruiter) behind one endpoint
// and is queried remote-only, so strictly on-site listings are dropped before
// returning.
type JSearchAdapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewJSearchAdapter constructs the adapter with a shared HTTP client.
func NewJSearchAdapter(apiKey string) *JSearchAdapter {
	return &JSearchAdapter{
		apiKey:  apiKey,
		baseURL: jsearchBaseURL,
		client:  newHTTPClient(),
	}
}

// Enabled reports whether the credential is configured and non-placeholder.
func (a *JSearchAdapter) Enabled() bool {
	return a.apiKey != "" && a.apiKey != apiKeyPlaceholder
}

func (a *JSearchAdapter) Name() string { return "jsearch" }

// jsearchResponse mirrors the top-level JSearch JSON response.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// jsearchJob mirrors a single JSearch listing.
type jsearchJob struct {
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	EmployerLogo      string   `json:"employer_logo"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobIsRemote       bool     `json:"job_is_remote"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobMinSalary      float64  `json:"job_min_salary"`
	JobMaxSalary      float64  `json:"job_max_salary"`
	JobDescription    string   `json:"job_description"`
	JobRequiredSkills []string `json:"job_required_skills"`
	JobBenefits       []string `json:"job_benefits"`
	JobPostedAt       string   `json:"job_posted_at_datetime_utc"`
	JobApplyLink      string   `json:"job_apply_link"`
}

// Fetch queries JSearch with the profile's title terms OR-joined, asking for
// remote listings posted in the last month.
func (a *JSearchAdapter) Fetch(ctx context.Context, profile model.UserProfile, page int) ([]model.Job, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", strings.Join(profile.TargetJobTitles, " OR ")+" remote")
	params.Set("page", strconv.Itoa(page))
	params.Set("num_pages", "1")
	params.Set("date_posted", "month")
	params.Set("remote_jobs_only", "true")

	headers := map[string]string{
		"X-RapidAPI-Key":  a.apiKey,
		"X-RapidAPI-Host": jsearchHost,
	}

	var resp jsearchResponse
	if err := getJSON(ctx, a.client, a.baseURL+"?"+params.Encode(), headers, &resp); err != nil {
		return nil, err
	}

	jobs := make([]model.Job, 0, len(resp.Data))
	for _, r := range resp.Data {
		job := a.convert(r)
		// Remote-first filter: this source exists for remote discovery, so
		// strictly on-site listings are dropped at the boundary.
		if job.LocationType == model.LocationOnSite {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (a *JSearchAdapter) convert(r jsearchJob) model.Job {
	location := "Remote"
	switch {
	case r.JobCity != "" && r.JobState != "":
		location = r.JobCity + ", " + r.JobState
	case r.JobCountry != "":
		location = r.JobCountry
	}

	// The remote flag is authoritative; without it, classify from the text.
	locationType := model.LocationRemote
	if !r.JobIsRemote {
		locationType = inferLocationType(r.JobTitle + " " + r.JobDescription)
	}

	job := model.Job{
		ID:             uuid.NewString(),
		Title:          r.JobTitle,
		Company:        r.EmployerName,
		CompanyLogo:    r.EmployerLogo,
		Location:       location,
		LocationType:   locationType,
		JobType:        model.ParseJobType(r.JobEmploymentType),
		SalaryMin:      optionalSalary(r.JobMinSalary),
		SalaryMax:      optionalSalary(r.JobMaxSalary),
		SalaryCurrency: "USD",
		Description:    sanitize.Clean(r.JobDescription),
		Requirements:   r.JobRequiredSkills,
		Benefits:       r.JobBenefits,
		PostedDate:     normalizeDate(r.JobPostedAt),
		ApplicationURL: r.JobApplyLink,
	}
	if r.JobIsRemote {
		job.TimezoneRequirement = model.TimezoneFlexible
		job.IsAsync = true
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Benefits == nil {
		job.Benefits = []string{}
	}
	return job
}
