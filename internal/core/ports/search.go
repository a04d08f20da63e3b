package ports

import (
	"context"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

// ProfileSearcher is the shared adapter contract: translate the criteria
// triple into calls against one external data source and return normalized
// contacts. A failed call returns zero contacts and an error wrapping
// domain.ErrAdapter; it never partially succeeds.
type ProfileSearcher interface {
	Search(ctx context.Context, targetRole, location, seniority string) ([]domain.Contact, error)
}

// SearchService runs adapter searches and persists their results onto
// campaigns.
type SearchService interface {
	// SearchLinkedin fetches profiles without touching any campaign.
	SearchLinkedin(ctx context.Context, params domain.SearchParams) ([]domain.Contact, error)
	// SearchGithub fetches developer profiles and stores them on the
	// campaign in the same call.
	SearchGithub(ctx context.Context, campaignID, ownerID string, params domain.SearchParams) ([]domain.Contact, error)
	// ApplyResults replaces the source's stored result set on the campaign
	// with a freshly built one.
	ApplyResults(ctx context.Context, campaignID, ownerID string, source domain.SearchSource, contacts []domain.Contact, params domain.SearchParams) ([]domain.Contact, error)
}
