package ports

import (
	"context"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

// CampaignRepository defines persistence operations for campaigns.
//
// Every read, update and delete is scoped by (id, ownerID) as a single
// compound filter. A campaign belonging to another user is indistinguishable
// from a missing one: both return domain.ErrCampaignNotFound.
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Campaign, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Campaign, error)
	// Update applies the provided field map and returns the updated campaign.
	Update(ctx context.Context, id, ownerID string, fields map[string]any) (*domain.Campaign, error)
	// Delete removes the campaign and returns the deleted document.
	Delete(ctx context.Context, id, ownerID string) (*domain.Campaign, error)
	// SetSearchResults replaces the result set for one source in a single
	// write. The prior set for that source, if any, is discarded.
	SetSearchResults(ctx context.Context, id, ownerID string, source domain.SearchSource, set *domain.SearchResultSet) error
}
