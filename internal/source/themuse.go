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

const museBaseURL = "https://www.themuse.com/api/public/jobs"

// MuseAdapter reads The Muse public API, which needs no credential.
type MuseAdapter struct {
	baseURL string
	client  *http.Client
}

// NewMuseAdapter constructs the adapter with a shared HTTP client.
func NewMuseAdapter() *MuseAdapter {
	return &MuseAdapter{
		baseURL: museBaseURL,
		client:  newHTTPClient(),
	}
}

func (a *MuseAdapter) Name() string { return "themuse" }

// museResponse mirrors the top-level Muse JSON response.
type museResponse struct {
	Results []museJob `json:"results"`
}

// museJob mirrors a single Muse listing.
type museJob struct {
	Name            string         `json:"name"`
	Contents        string         `json:"contents"`
	PublicationDate string         `json:"publication_date"`
	Company         museCompany    `json:"company"`
	Locations       []museLocation `json:"locations"`
	Tags            []museTag      `json:"tags"`
	Refs            museRefs       `json:"refs"`
}

type museCompany struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type museLocation struct {
	Name string `json:"name"`
}

type museTag struct {
	Name string `json:"name"`
}

type museRefs struct {
	LandingPage string `json:"landing_page"`
}

// Fetch queries one page of listings in the profile's top category.
// The Muse pages are 0-based.
func (a *MuseAdapter) Fetch(ctx context.Context, profile model.UserProfile, page int) ([]model.Job, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("category", firstTitle(profile))
	params.Set("page", strconv.Itoa(page-1))
	params.Set("descending", "true")
	if profile.Location != "" {
		params.Set("location", profile.Location)
	}

	var resp museResponse
	if err := getJSON(ctx, a.client, a.baseURL+"?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	jobs := make([]model.Job, 0, len(resp.Results))
	for _, r := range resp.Results {
		jobs = append(jobs, a.convert(r))
	}
	return jobs, nil
}

func (a *MuseAdapter) convert(r museJob) model.Job {
	location := "Remote"
	if len(r.Locations) > 0 && r.Locations[0].Name != "" {
		location = r.Locations[0].Name
	}

	tags := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		if t.Name != "" {
			tags = append(tags, t.Name)
		}
	}

	return model.Job{
		ID:                  uuid.NewString(),
		Title:               r.Name,
		Company:             r.Company.Name,
		CompanyLogo:         r.Company.Logo,
		Location:            location,
		LocationType:        model.LocationRemote,
		JobType:             model.JobTypeFullTime,
		SalaryCurrency:      "USD",
		Description:         sanitize.Clean(r.Contents),
		Requirements:        tags,
		Benefits:            []string{},
		PostedDate:          normalizeDate(r.PublicationDate),
		ApplicationURL:      r.Refs.LandingPage,
		TimezoneRequirement: model.TimezoneFlexible,
		IsAsync:             true,
	}
}
