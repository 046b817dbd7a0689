// Package model defines the canonical data structures shared across the
// aggregation pipeline. Every upstream source is normalised into Job; the
// pipeline reads UserProfile and never mutates it.
package model

import "strings"

// LocationType classifies where the work happens.
type LocationType string

const (
	LocationRemote LocationType = "Remote"
	LocationHybrid LocationType = "Hybrid"
	LocationOnSite LocationType = "On-site"
)

// JobType classifies the employment arrangement.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// TimezoneFlexible marks a listing with no fixed timezone requirement.
const TimezoneFlexible = "Flexible"

// ExperienceLevel is the user's seniority bracket.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "Entry"
	LevelMid       ExperienceLevel = "Mid"
	LevelSenior    ExperienceLevel = "Senior"
	LevelLead      ExperienceLevel = "Lead"
	LevelExecutive ExperienceLevel = "Executive"
)

// Job is a normalised listing. IDs are synthesised and source-independent;
// Description is already sanitised and truncated by the producing adapter.
type Job struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Company             string       `json:"company"`
	CompanyLogo         string       `json:"companyLogo,omitempty"`
	Location            string       `json:"location"`
	LocationType        LocationType `json:"locationType"`
	JobType             JobType      `json:"jobType"`
	SalaryMin           *float64     `json:"salaryMin,omitempty"`
	SalaryMax           *float64     `json:"salaryMax,omitempty"`
	SalaryCurrency      string       `json:"salaryCurrency,omitempty"`
	Description         string       `json:"description"`
	Requirements        []string     `json:"requirements"`
	Benefits            []string     `json:"benefits"`
	PostedDate          string       `json:"postedDate"`
	ApplicationURL      string       `json:"applicationUrl,omitempty"`
	Saved               bool         `json:"saved"`
	TimezoneRequirement string       `json:"timezoneRequirement,omitempty"`
	IsAsync             bool         `json:"isAsync,omitempty"`
}

// UserProfile holds the user's search criteria and preferences. It is created
// once, edited through the profile endpoint, and read-only everywhere else.
type UserProfile struct {
	TargetJobTitles    []string        `json:"targetJobTitles"`
	Skills             []string        `json:"skills"`
	Location           string          `json:"location,omitempty"`
	PreferredLocations []string        `json:"preferredLocations"`
	SalaryMin          *float64        `json:"salaryMin,omitempty"`
	SalaryMax          *float64        `json:"salaryMax,omitempty"`
	SalaryCurrency     string          `json:"salaryCurrency,omitempty"`
	ExperienceLevel    ExperienceLevel `json:"experienceLevel,omitempty"`
	WantsRemote        bool            `json:"wantsRemote"`
	WantsHybrid        bool            `json:"wantsHybrid"`
	WantsOnSite        bool            `json:"wantsOnSite"`
	TimezonePreference string          `json:"timezonePreference,omitempty"`
}

// ParseJobType maps the spellings upstream boards use onto JobType.
// Unknown or empty values default to Full-time, the overwhelmingly common case.
func ParseJobType(raw string) JobType {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_")) {
	case "full_time", "fulltime", "permanent":
		return JobTypeFullTime
	case "part_time", "parttime":
		return JobTypePartTime
	case "contract", "contractor", "freelance":
		return JobTypeContract
	case "internship", "intern":
		return JobTypeInternship
	}
	return JobTypeFullTime
}
