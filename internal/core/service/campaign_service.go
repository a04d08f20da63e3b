package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/prospectio/outreach-system/internal/core/domain"
	"github.com/prospectio/outreach-system/internal/core/ports"
)

// CampaignService implements owner-scoped campaign CRUD. Ownership is never
// checked in application code: every repository call carries the owner id in
// its filter, so a foreign campaign surfaces as not-found.
type CampaignService struct {
	repo   ports.CampaignRepository
	logger zerolog.Logger
}

func NewCampaignService(repo ports.CampaignRepository, logger zerolog.Logger) *CampaignService {
	return &CampaignService{repo: repo, logger: logger}
}

func (s *CampaignService) Create(ctx context.Context, ownerID string, input ports.CreateCampaignInput) (*domain.Campaign, error) {
	now := time.Now().UTC()
	campaign := &domain.Campaign{
		Name:          input.Name,
		Description:   input.Description,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TargetRole:    input.TargetRole,
		Location:      input.Location,
		Seniority:     input.Seniority,
		OutreachType:  input.OutreachType,
		EmailTemplate: input.EmailTemplate,
		Status:        domain.StatusDraft,
		CreatedBy:     ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create campaign")
		return nil, err
	}

	s.logger.Info().Str("campaign_id", created.ID).Str("owner_id", ownerID).Msg("campaign created")
	return created, nil
}

func (s *CampaignService) List(ctx context.Context, ownerID string) ([]*domain.Campaign, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *CampaignService) Get(ctx context.Context, id, ownerID string) (*domain.Campaign, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}

func (s *CampaignService) Update(ctx context.Context, id, ownerID string, input ports.UpdateCampaignInput) (*domain.Campaign, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.StartDate != nil {
		fields["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		fields["end_date"] = *input.EndDate
	}
	if input.TargetRole != nil {
		fields["target_role"] = *input.TargetRole
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if input.Seniority != nil {
		fields["seniority"] = *input.Seniority
	}
	if input.OutreachType != nil {
		fields["outreach_type"] = *input.OutreachType
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.LinkedinSearchResults != nil {
		fields["linkedin_search_results"] = *input.LinkedinSearchResults
	}
	if input.EmailTemplate != nil {
		fields["email_template"] = *input.EmailTemplate
	}

	if len(fields) == 0 {
		return s.repo.FindByID(ctx, id, ownerID)
	}
	fields["updated_at"] = time.Now().UTC()

	updated, err := s.repo.Update(ctx, id, ownerID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("campaign_id", id).Int("fields", len(fields)-1).Msg("campaign updated")
	return updated, nil
}

func (s *CampaignService) Delete(ctx context.Context, id, ownerID string) (*domain.Campaign, error) {
	deleted, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("campaign_id", id).Str("owner_id", ownerID).Msg("campaign deleted")
	return deleted, nil
}
