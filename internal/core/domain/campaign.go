package domain

import (
	"errors"
	"time"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// ValidStatus reports whether s is one of the enumerated campaign statuses.
func ValidStatus(s CampaignStatus) bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// SearchSource identifies which external adapter produced a result set.
type SearchSource string

const (
	SourceLinkedin SearchSource = "linkedin"
	SourceGithub   SearchSource = "github"
)

// Page sizes are adapter-specific constants used when computing pagination
// metadata on a stored result set.
const (
	LinkedinPageSize = 50
	GithubPageSize   = 10
)

var ErrCampaignNotFound = errors.New("campaign not found")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrTokenRevoked = errors.New("token revoked")
var ErrValidation = errors.New("validation failed")
var ErrAdapter = errors.New("external search failed")

// Contact is one prospective person surfaced by a search adapter.
// ProfileURL is set for LinkedIn-sourced contacts; GithubURL, Contributions
// and Repositories only for GitHub-sourced ones.
type Contact struct {
	Name           string `json:"name" bson:"name"`
	Role           string `json:"role" bson:"role"`
	Company        string `json:"company" bson:"company"`
	Location       string `json:"location" bson:"location"`
	Selected       bool   `json:"selected" bson:"selected"`
	ProfilePicture string `json:"profile_picture" bson:"profile_picture"`
	ProfileURL     string `json:"profile_url,omitempty" bson:"profile_url,omitempty"`
	GithubURL      string `json:"github_url,omitempty" bson:"github_url,omitempty"`
	Contributions  int    `json:"contributions,omitempty" bson:"contributions,omitempty"`
	Repositories   int    `json:"repositories,omitempty" bson:"repositories,omitempty"`
}

// SearchParams is the criteria triple that produced a result set, persisted
// verbatim for display.
type SearchParams struct {
	Location   string `json:"location" bson:"location"`
	TargetRole string `json:"target_role" bson:"target_role"`
	Seniority  string `json:"seniority" bson:"seniority"`
}

// SearchResultSet is the replace-on-write bundle of contacts plus pagination
// metadata for one source. Writing a new set for a source discards the prior
// one entirely, including any selected flags.
type SearchResultSet struct {
	Contacts     []Contact    `json:"contacts" bson:"contacts"`
	Total        int          `json:"total" bson:"total"`
	CurrentPage  int          `json:"current_page" bson:"current_page"`
	PageSize     int          `json:"page_size" bson:"page_size"`
	TotalPages   int          `json:"total_pages" bson:"total_pages"`
	SearchParams SearchParams `json:"search_params" bson:"search_params"`
	LastUpdated  time.Time    `json:"last_updated" bson:"last_updated"`
}

// Campaign is the core aggregate: an outreach effort owned by exactly one
// user, with zero or more embedded search result sets.
type Campaign struct {
	ID                    string           `json:"id" bson:"_id,omitempty"`
	Name                  string           `json:"name" bson:"name"`
	Description           string           `json:"description" bson:"description"`
	StartDate             time.Time        `json:"start_date" bson:"start_date"`
	EndDate               time.Time        `json:"end_date" bson:"end_date"`
	TargetRole            string           `json:"target_role" bson:"target_role"`
	Location              string           `json:"location" bson:"location"`
	Seniority             string           `json:"seniority" bson:"seniority"`
	OutreachType          string           `json:"outreach_type" bson:"outreach_type"`
	Status                CampaignStatus   `json:"status" bson:"status"`
	CreatedBy             string           `json:"created_by" bson:"created_by"`
	EmailTemplate         string           `json:"email_template,omitempty" bson:"email_template,omitempty"`
	LinkedinSearchResults *SearchResultSet `json:"linkedin_search_results,omitempty" bson:"linkedin_search_results,omitempty"`
	GithubSearchResults   *SearchResultSet `json:"github_search_results,omitempty" bson:"github_search_results,omitempty"`
	CreatedAt             time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at" bson:"updated_at"`
}
