package ports

import (
	"context"
	"time"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

// CreateCampaignInput carries all data needed to create a campaign. All
// fields are required; the transport layer reports which are missing.
type CreateCampaignInput struct {
	Name          string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	TargetRole    string
	Location      string
	Seniority     string
	OutreachType  string
	EmailTemplate string
}

// UpdateCampaignInput carries the mutations accepted by the update
// allow-list. Nil pointers mean "leave unchanged". Requests naming any field
// outside the allow-list are rejected wholesale before this type is built.
type UpdateCampaignInput struct {
	Name                  *string
	Description           *string
	StartDate             *time.Time
	EndDate               *time.Time
	TargetRole            *string
	Location              *string
	Seniority             *string
	OutreachType          *string
	Status                *domain.CampaignStatus
	LinkedinSearchResults *domain.SearchResultSet
	EmailTemplate         *string
}

// CampaignService defines the owner-scoped campaign use cases.
type CampaignService interface {
	Create(ctx context.Context, ownerID string, input CreateCampaignInput) (*domain.Campaign, error)
	List(ctx context.Context, ownerID string) ([]*domain.Campaign, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Campaign, error)
	Update(ctx context.Context, id, ownerID string, input UpdateCampaignInput) (*domain.Campaign, error)
	Delete(ctx context.Context, id, ownerID string) (*domain.Campaign, error)
}
