package handler

import "github.com/prospectio/outreach-system/internal/core/domain"

type linkedinSearchRequest struct {
	TargetRole string `json:"targetRole" validate:"required"`
	Location   string `json:"location"   validate:"required"`
	Seniority  string `json:"seniority"  validate:"required"`
}

type linkedinSearchResponse struct {
	Profiles []domain.Contact `json:"profiles"`
}

type updateCampaignResultsRequest struct {
	CampaignID   string              `json:"campaignId" validate:"required"`
	Profiles     []domain.Contact    `json:"profiles"   validate:"required"`
	SearchParams searchParamsRequest `json:"searchParams" validate:"required"`
}

type searchParamsRequest struct {
	Location   string `json:"location"   validate:"required"`
	TargetRole string `json:"targetRole" validate:"required"`
	Seniority  string `json:"seniority"  validate:"required"`
}

type githubSearchRequest struct {
	TargetRole string `json:"targetRole" validate:"required"`
	Location   string `json:"location"   validate:"required"`
	Seniority  string `json:"seniority"  validate:"required"`
	CampaignID string `json:"campaignId" validate:"required"`
}

type contactsResponse struct {
	Contacts []domain.Contact `json:"contacts"`
}
