package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kamu2000/Job-Hunter/internal/model"
)

const adzunaPayload = `{
  "results": [
    {
      "title": "Go Developer (fully remote)",
      "description": "Work from anywhere on our payments platform.",
      "company": {"display_name": "PayFlow"},
      "location": {"display_name": "New York, NY"},
      "salary_min": 120000,
      "salary_max": 160000,
      "redirect_url": "https://adzuna.example/redirect/1",
      "created": "2026-08-18T10:00:00Z",
      "contract_time": "full_time"
    },
    {
      "title": "Accountant",
      "description": "In our downtown office, five days a week.",
      "company": {"display_name": "LedgerCo"},
      "location": {"display_name": "Chicago, IL"},
      "redirect_url": "https://adzuna.example/redirect/2",
      "created": "2026-08-17T10:00:00Z",
      "contract_type": "permanent"
    }
  ]
}`

func TestAdzunaAdapter_Fetch(t *testing.T) {
	var gotPath, gotWhat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotWhat = r.URL.Query().Get("what")
		w.Write([]byte(adzunaPayload))
	}))
	defer srv.Close()

	a := NewAdzunaAdapter("id-123", "key-456", "us")
	a.baseURL = srv.URL

	jobs, err := a.Fetch(context.Background(), testProfile(), 3)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if !strings.HasSuffix(gotPath, "/us/search/3") {
		t.Errorf("path = %q, want …/us/search/3", gotPath)
	}
	if gotWhat != "Backend Engineer OR Go Developer" {
		t.Errorf("what = %q", gotWhat)
	}
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2 (no remote-first drop for Adzuna)", len(jobs))
	}

	if jobs[0].Company != "PayFlow" || jobs[0].Location != "New York, NY" {
		t.Errorf("mapped fields: %+v", jobs[0])
	}
	if jobs[0].LocationType != model.LocationRemote {
		t.Errorf("remote wording should classify as Remote, got %s", jobs[0].LocationType)
	}
	if jobs[0].JobType != model.JobTypeFullTime {
		t.Errorf("contract_time full_time should map to Full-time, got %s", jobs[0].JobType)
	}
	if jobs[1].LocationType != model.LocationOnSite {
		t.Errorf("office listing should classify as On-site, got %s", jobs[1].LocationType)
	}
}

func TestAdzunaAdapter_Enabled(t *testing.T) {
	cases := []struct {
		id, key string
		want    bool
	}{
		{"", "", false},
		{"id", "", false},
		{"", "key", false},
		{"demo", "demo", false},
		{"id", "key", true},
	}
	for _, c := range cases {
		if got := NewAdzunaAdapter(c.id, c.key, "us").Enabled(); got != c.want {
			t.Errorf("Enabled(%q, %q) = %v, want %v", c.id, c.key, got, c.want)
		}
	}
}
