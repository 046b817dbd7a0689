// Package source implements one adapter per upstream job board. Each adapter
// maps a source-specific payload onto the canonical model.Job; untyped blobs
// never cross the package boundary.
//
// Adapters return an error on any upstream failure. The aggregator owns the
// degradation policy: every adapter error becomes an empty contribution, and
// a primary-source error additionally triggers fallback.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Kamu2000/Job-Hunter/internal/model"
)

// fetchTimeout bounds a single upstream call so a hung board cannot stall the
// whole aggregation.
const fetchTimeout = 10 * time.Second

// Adapter fetches and normalises listings for one upstream origin.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context, profile model.UserProfile, page int) ([]model.Job, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: fetchTimeout}
}

// getBody performs a GET and returns the raw body for 200 responses.
func getBody(ctx context.Context, client *http.Client, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, snippet(body))
	}
	return body, nil
}

// getJSON performs a GET and decodes a 200 response into dest.
func getJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, dest any) error {
	body, err := getBody(ctx, client, url, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 200 {
		return s[:200]
	}
	return s
}

// inferLocationType classifies a listing from its free text. Callers with an
// explicit remote flag must treat that flag as authoritative and only fall
// back to inference when it is absent. On-site is the default only when no
// remote or hybrid signal exists.
func inferLocationType(text string) model.LocationType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "hybrid"):
		return model.LocationHybrid
	case strings.Contains(lower, "remote"):
		return model.LocationRemote
	default:
		return model.LocationOnSite
	}
}

// dateFormats covers the timestamp spellings the upstream boards emit.
var dateFormats = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// normalizeDate reduces an upstream timestamp to a calendar date. Unparseable
// or empty input falls back to today, matching a listing we just fetched.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format("2006-01-02")
		}
	}
	return time.Now().UTC().Format("2006-01-02")
}

func optionalSalary(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}

// firstTitle returns the profile's top search term, with a sensible default
// for a profile that has none yet.
func firstTitle(profile model.UserProfile) string {
	if len(profile.TargetJobTitles) > 0 {
		return profile.TargetJobTitles[0]
	}
	return "Software Engineer"
}
