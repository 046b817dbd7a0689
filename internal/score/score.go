// Package score ranks normalised jobs against a user profile.
//
// The model is an additive point system computed independently per job, with
// no cross-job normalisation. The weighting deliberately favours remote and
// timezone-flexible listings over raw keyword density: a fully remote posting
// outscores a title match, and a title match outscores three skill hits.
package score

import (
	"sort"
	"strings"

	"github.com/Kamu2000/Job-Hunter/internal/model"
)

// Weights holds the per-signal point values. The constants are policy, not
// law — callers may tune them as long as the relative magnitudes hold
// (remote > title match > three skill matches > location ≈ salary floor).
type Weights struct {
	TitleMatch     int
	SkillMatch     int // per matching skill
	RemoteBonus    int
	HybridBonus    int
	AsyncBonus     int
	LocationMatch  int
	SalaryFloorMet int
}

// DefaultWeights returns the stock remote-first weighting.
func DefaultWeights() Weights {
	return Weights{
		TitleMatch:     50,
		SkillMatch:     10,
		RemoteBonus:    60,
		HybridBonus:    30,
		AsyncBonus:     20,
		LocationMatch:  20,
		SalaryFloorMet: 15,
	}
}

// Scorer computes match scores and total orders.
type Scorer struct {
	weights Weights
}

// NewScorer returns a Scorer using the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// scoredJob pairs a job with its ephemeral match score. The score exists only
// to establish sort order and is stripped before results leave the package.
type scoredJob struct {
	job   model.Job
	score int
}

// Score computes the match score for a single job against the profile.
func (s *Scorer) Score(job model.Job, profile model.UserProfile) int {
	total := 0

	for _, title := range profile.TargetJobTitles {
		if containsFold(job.Title, title) {
			total += s.weights.TitleMatch
			break
		}
	}

	for _, skill := range profile.Skills {
		if containsFold(job.Description, skill) || anyContainsFold(job.Requirements, skill) {
			total += s.weights.SkillMatch
		}
	}

	switch job.LocationType {
	case model.LocationRemote:
		total += s.weights.RemoteBonus
	case model.LocationHybrid:
		total += s.weights.HybridBonus
	}

	if job.IsAsync || job.TimezoneRequirement == model.TimezoneFlexible {
		total += s.weights.AsyncBonus
	}

	for _, loc := range profile.PreferredLocations {
		if containsFold(job.Location, loc) {
			total += s.weights.LocationMatch
			break
		}
	}

	if profile.SalaryMin != nil && job.SalaryMin != nil && *job.SalaryMin >= *profile.SalaryMin {
		total += s.weights.SalaryFloorMet
	}

	return total
}

// Rank orders jobs by descending match score. The sort is stable: jobs with
// equal scores keep the relative order they arrived in, so identical inputs
// always produce identical output.
func (s *Scorer) Rank(jobs []model.Job, profile model.UserProfile) []model.Job {
	scored := make([]scoredJob, len(jobs))
	for i, job := range jobs {
		scored[i] = scoredJob{job: job, score: s.Score(job, profile)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]model.Job, len(scored))
	for i, sj := range scored {
		ranked[i] = sj.job
	}
	return ranked
}

func containsFold(s, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func anyContainsFold(list []string, sub string) bool {
	for _, s := range list {
		if containsFold(s, sub) {
			return true
		}
	}
	return false
}
