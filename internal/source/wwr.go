package source

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/sanitize"
)

const (
	wwrFeedURL  = "https://weworkremotely.com/categories/remote-programming-jobs.rss"
	wwrMaxItems = 20
)

// WWRAdapter scrapes the We Work Remotely programming-jobs RSS feed. Every
// listing on the feed is remote by definition.
type WWRAdapter struct {
	feedURL string
	client  *http.Client
}

// NewWWRAdapter constructs the adapter with a shared HTTP client.
func NewWWRAdapter() *WWRAdapter {
	return &WWRAdapter{
		feedURL: wwrFeedURL,
		client:  newHTTPClient(),
	}
}

func (a *WWRAdapter) Name() string { return "weworkremotely" }

// rssFeed mirrors the two-level RSS document the feed serves.
type rssFeed struct {
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// Fetch downloads and parses the feed. The feed is not paginated; page > 1
// yields nothing rather than repeating the same listings.
func (a *WWRAdapter) Fetch(ctx context.Context, profile model.UserProfile, page int) ([]model.Job, error) {
	if page > 1 {
		return []model.Job{}, nil
	}

	body, err := getBody(ctx, a.client, a.feedURL, nil)
	if err != nil {
		return nil, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("rss unmarshal: %w", err)
	}

	items := feed.Channel.Items
	if len(items) > wwrMaxItems {
		items = items[:wwrMaxItems]
	}

	jobs := make([]model.Job, 0, len(items))
	for _, item := range items {
		jobs = append(jobs, a.convert(item))
	}
	return jobs, nil
}

func (a *WWRAdapter) convert(item rssItem) model.Job {
	// Feed titles are "Company: Job Title".
	company, title := splitFeedTitle(item.Title)

	return model.Job{
		ID:             uuid.NewString(),
		Title:          title,
		Company:        company,
		Location:       "Remote",
		LocationType:   model.LocationRemote,
		JobType:        model.JobTypeFullTime,
		SalaryCurrency: "USD",
		Description:    sanitize.Clean(item.Description),
		Requirements:   []string{},
		Benefits:       []string{},
		PostedDate:     normalizeDate(item.PubDate),
		ApplicationURL: item.Link,
	}
}

func splitFeedTitle(raw string) (company, title string) {
	before, after, found := strings.Cut(raw, ":")
	if !found || strings.TrimSpace(after) == "" {
		return "Unknown Company", strings.TrimSpace(raw)
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
