package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/prospectio/outreach-system/internal/core/domain"
	"github.com/prospectio/outreach-system/internal/core/ports"
)

// SearchService runs external profile searches and stores their results on
// campaigns. Storing is a full replace of the per-source result set: a
// failed search leaves the prior set untouched, a successful one discards it
// entirely, including any client-side selections.
type SearchService struct {
	repo     ports.CampaignRepository
	linkedin ports.ProfileSearcher
	github   ports.ProfileSearcher
	now      func() time.Time
	logger   zerolog.Logger
}

func NewSearchService(repo ports.CampaignRepository, linkedin, github ports.ProfileSearcher, logger zerolog.Logger) *SearchService {
	return &SearchService{
		repo:     repo,
		linkedin: linkedin,
		github:   github,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}
}

func (s *SearchService) SearchLinkedin(ctx context.Context, params domain.SearchParams) ([]domain.Contact, error) {
	contacts, err := s.linkedin.Search(ctx, params.TargetRole, params.Location, params.Seniority)
	if err != nil {
		s.logger.Error().Err(err).Str("target_role", params.TargetRole).Msg("linkedin search failed")
		return nil, err
	}

	s.logger.Info().Int("profiles", len(contacts)).Str("target_role", params.TargetRole).Msg("linkedin search completed")
	return contacts, nil
}

func (s *SearchService) SearchGithub(ctx context.Context, campaignID, ownerID string, params domain.SearchParams) ([]domain.Contact, error) {
	contacts, err := s.github.Search(ctx, params.TargetRole, params.Location, params.Seniority)
	if err != nil {
		s.logger.Error().Err(err).Str("target_role", params.TargetRole).Msg("github search failed")
		return nil, err
	}

	return s.ApplyResults(ctx, campaignID, ownerID, domain.SourceGithub, contacts, params)
}

// ApplyResults normalizes the contacts, computes pagination metadata and
// replaces the campaign's result set for the source in a single owner-scoped
// write.
func (s *SearchService) ApplyResults(ctx context.Context, campaignID, ownerID string, source domain.SearchSource, contacts []domain.Contact, params domain.SearchParams) ([]domain.Contact, error) {
	set := buildResultSet(source, contacts, params, s.now())

	if err := s.repo.SetSearchResults(ctx, campaignID, ownerID, source, set); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("campaign_id", campaignID).
		Str("source", string(source)).
		Int("contacts", set.Total).
		Msg("search results stored")

	return set.Contacts, nil
}

// buildResultSet assembles a SearchResultSet from freshly fetched contacts.
// Selection is a client-only concern: every ingested contact starts with
// selected=false. currentPage is always reset to 1; a fresh search replaces
// the whole set.
func buildResultSet(source domain.SearchSource, contacts []domain.Contact, params domain.SearchParams, now time.Time) *domain.SearchResultSet {
	pageSize := domain.LinkedinPageSize
	if source == domain.SourceGithub {
		pageSize = domain.GithubPageSize
	}

	normalized := make([]domain.Contact, len(contacts))
	for i, c := range contacts {
		c.Selected = false
		normalized[i] = c
	}

	total := len(normalized)
	return &domain.SearchResultSet{
		Contacts:     normalized,
		Total:        total,
		CurrentPage:  1,
		PageSize:     pageSize,
		TotalPages:   (total + pageSize - 1) / pageSize,
		SearchParams: params,
		LastUpdated:  now,
	}
}
