package score_test

import (
	"testing"

	"github.com/Kamu2000/Job-Hunter/internal/model"
	"github.com/Kamu2000/Job-Hunter/internal/score"
)

func f64(v float64) *float64 { return &v }

func testProfile() model.UserProfile {
	return model.UserProfile{
		TargetJobTitles: []string{"Software Engineer"},
		Skills:          []string{"React", "SQL"},
		SalaryMin:       f64(100000),
	}
}

// The worked example: title + two skills + remote + salary floor vs. the same
// listing on-site with no salary.
func TestScore_WorkedExample(t *testing.T) {
	s := score.NewScorer(score.DefaultWeights())
	profile := testProfile()

	jobA := model.Job{
		Title:        "Senior Software Engineer",
		Company:      "Acme",
		LocationType: model.LocationRemote,
		Description:  "React and SQL expert needed",
		SalaryMin:    f64(120000),
	}
	jobB := jobA
	jobB.LocationType = model.LocationOnSite
	jobB.SalaryMin = nil

	if got := s.Score(jobA, profile); got != 145 {
		t.Errorf("Score(jobA) = %d, want 145", got)
	}
	if got := s.Score(jobB, profile); got != 70 {
		t.Errorf("Score(jobB) = %d, want 70", got)
	}

	ranked := s.Rank([]model.Job{jobB, jobA}, profile)
	if ranked[0].LocationType != model.LocationRemote {
		t.Error("remote job should rank first")
	}
}

// A remote listing must outscore an otherwise-identical on-site one by at
// least the remote bonus.
func TestScore_RemoteMonotonicity(t *testing.T) {
	w := score.DefaultWeights()
	s := score.NewScorer(w)
	profile := testProfile()

	remote := model.Job{Title: "Backend Developer", LocationType: model.LocationRemote}
	onsite := remote
	onsite.LocationType = model.LocationOnSite

	diff := s.Score(remote, profile) - s.Score(onsite, profile)
	if diff < w.RemoteBonus {
		t.Errorf("remote scored only %d higher than on-site, want >= %d", diff, w.RemoteBonus)
	}
}

func TestScore_RelativeMagnitudes(t *testing.T) {
	w := score.DefaultWeights()
	if w.RemoteBonus <= w.TitleMatch {
		t.Error("remote bonus must exceed a title match")
	}
	if w.TitleMatch <= 3*w.SkillMatch {
		t.Error("a title match must exceed three skill matches")
	}
	if w.RemoteBonus <= w.HybridBonus {
		t.Error("remote must outrank hybrid")
	}
}

func TestScore_TitleMatchCountsOnce(t *testing.T) {
	s := score.NewScorer(score.DefaultWeights())
	profile := model.UserProfile{TargetJobTitles: []string{"Engineer", "Software Engineer"}}

	job := model.Job{Title: "Software Engineer", LocationType: model.LocationOnSite}
	if got := s.Score(job, profile); got != 50 {
		t.Errorf("overlapping title terms scored %d, want a single +50", got)
	}
}

func TestScore_SkillMatchesAreCaseInsensitive(t *testing.T) {
	s := score.NewScorer(score.DefaultWeights())
	profile := model.UserProfile{Skills: []string{"golang", "POSTGRES"}}

	job := model.Job{
		Description:  "We use Golang daily",
		Requirements: []string{"Postgres experience"},
		LocationType: model.LocationOnSite,
	}
	if got := s.Score(job, profile); got != 20 {
		t.Errorf("Score = %d, want 20 (two skill hits)", got)
	}
}

func TestScore_AsyncBonusFromEitherSignal(t *testing.T) {
	s := score.NewScorer(score.DefaultWeights())
	profile := model.UserProfile{}

	async := model.Job{LocationType: model.LocationOnSite, IsAsync: true}
	flexible := model.Job{LocationType: model.LocationOnSite, TimezoneRequirement: model.TimezoneFlexible}
	both := model.Job{LocationType: model.LocationOnSite, IsAsync: true, TimezoneRequirement: model.TimezoneFlexible}

	for _, job := range []model.Job{async, flexible, both} {
		if got := s.Score(job, profile); got != 20 {
			t.Errorf("async/flexible bonus = %d, want exactly 20", got)
		}
	}
}

func TestScore_SalaryFloorRequiresBothSides(t *testing.T) {
	s := score.NewScorer(score.DefaultWeights())

	job := model.Job{LocationType: model.LocationOnSite, SalaryMin: f64(90000)}
	profile := model.UserProfile{SalaryMin: f64(100000)}
	if got := s.Score(job, profile); got != 0 {
		t.Errorf("below-floor salary scored %d, want 0", got)
	}

	noProfileFloor := model.UserProfile{}
	if got := s.Score(job, noProfileFloor); got != 0 {
		t.Errorf("missing profile floor scored %d, want 0", got)
	}
}

// Equal-score jobs keep their input order.
func TestRank_StableForTies(t *testing.T) {
	s := score.NewScorer(score.DefaultWeights())
	profile := model.UserProfile{}

	jobs := []model.Job{
		{ID: "a", Title: "One", LocationType: model.LocationRemote},
		{ID: "b", Title: "Two", LocationType: model.LocationRemote},
		{ID: "c", Title: "Three", LocationType: model.LocationRemote},
	}
	ranked := s.Rank(jobs, profile)
	for i, id := range []string{"a", "b", "c"} {
		if ranked[i].ID != id {
			t.Fatalf("tie order changed: got %v", []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
		}
	}
}

func TestRank_EmptyInput(t *testing.T) {
	s := score.NewScorer(score.DefaultWeights())
	ranked := s.Rank(nil, model.UserProfile{})
	if len(ranked) != 0 {
		t.Errorf("Rank(nil) returned %d jobs, want 0", len(ranked))
	}
}
