package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

type stubSearcher struct {
	contacts []domain.Contact
	err      error
	calls    int
}

func (s *stubSearcher) Search(_ context.Context, _, _, _ string) ([]domain.Contact, error) {
	s.calls++
	return s.contacts, s.err
}

func makeContacts(n int) []domain.Contact {
	contacts := make([]domain.Contact, n)
	for i := range contacts {
		contacts[i] = domain.Contact{
			Name:     fmt.Sprintf("Person %d", i),
			Role:     "Engineer",
			Selected: true, // must be reset on ingestion
		}
	}
	return contacts
}

func newTestSearchService(repo *stubCampaignRepo, linkedin, github *stubSearcher) *SearchService {
	svc := NewSearchService(repo, linkedin, github, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func seedCampaign(repo *stubCampaignRepo) *domain.Campaign {
	c, _ := repo.Create(context.Background(), &domain.Campaign{
		Name:      "seed",
		CreatedBy: "user_1",
		Status:    domain.StatusDraft,
	})
	return c
}

func TestApplyResults_PaginationMetadata(t *testing.T) {
	repo := newStubCampaignRepo()
	svc := newTestSearchService(repo, &stubSearcher{}, &stubSearcher{})
	campaign := seedCampaign(repo)

	_, err := svc.ApplyResults(context.Background(), campaign.ID, "user_1", domain.SourceGithub, makeContacts(23), domain.SearchParams{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	set := repo.campaigns[campaign.ID].GithubSearchResults
	if set == nil {
		t.Fatalf("result set not stored")
	}
	if set.Total != 23 {
		t.Fatalf("expected total 23, got %d", set.Total)
	}
	if set.PageSize != domain.GithubPageSize {
		t.Fatalf("expected page size %d, got %d", domain.GithubPageSize, set.PageSize)
	}
	if set.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", set.TotalPages)
	}
	if set.CurrentPage != 1 {
		t.Fatalf("expected current page 1, got %d", set.CurrentPage)
	}
}

func TestApplyResults_EmptyContactList(t *testing.T) {
	repo := newStubCampaignRepo()
	svc := newTestSearchService(repo, &stubSearcher{}, &stubSearcher{})
	campaign := seedCampaign(repo)

	_, err := svc.ApplyResults(context.Background(), campaign.ID, "user_1", domain.SourceLinkedin, nil, domain.SearchParams{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	set := repo.campaigns[campaign.ID].LinkedinSearchResults
	if set.Total != 0 {
		t.Fatalf("expected total 0, got %d", set.Total)
	}
	if set.TotalPages != 0 {
		t.Fatalf("expected 0 pages, got %d", set.TotalPages)
	}
	if set.Contacts == nil || len(set.Contacts) != 0 {
		t.Fatalf("expected empty contact slice, got %#v", set.Contacts)
	}
}

func TestApplyResults_LinkedinPageSize(t *testing.T) {
	repo := newStubCampaignRepo()
	svc := newTestSearchService(repo, &stubSearcher{}, &stubSearcher{})
	campaign := seedCampaign(repo)

	_, err := svc.ApplyResults(context.Background(), campaign.ID, "user_1", domain.SourceLinkedin, makeContacts(60), domain.SearchParams{})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	set := repo.campaigns[campaign.ID].LinkedinSearchResults
	if set.PageSize != domain.LinkedinPageSize {
		t.Fatalf("expected page size %d, got %d", domain.LinkedinPageSize, set.PageSize)
	}
	if set.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", set.TotalPages)
	}
}

func TestApplyResults_ReplacesNotAppends(t *testing.T) {
	repo := newStubCampaignRepo()
	svc := newTestSearchService(repo, &stubSearcher{}, &stubSearcher{})
	campaign := seedCampaign(repo)

	setA := []domain.Contact{{Name: "A1"}, {Name: "A2"}, {Name: "A3"}}
	setB := []domain.Contact{{Name: "B1"}}

	if _, err := svc.ApplyResults(context.Background(), campaign.ID, "user_1", domain.SourceLinkedin, setA, domain.SearchParams{}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if _, err := svc.ApplyResults(context.Background(), campaign.ID, "user_1", domain.SourceLinkedin, setB, domain.SearchParams{}); err != nil {
		t.Fatalf("second apply failed: %v", err)
	}

	stored := repo.campaigns[campaign.ID].LinkedinSearchResults
	if len(stored.Contacts) != 1 || stored.Contacts[0].Name != "B1" {
		t.Fatalf("expected set B only, got %#v", stored.Contacts)
	}
}

func TestApplyResults_ResetsSelection(t *testing.T) {
	repo := newStubCampaignRepo()
	svc := newTestSearchService(repo, &stubSearcher{}, &stubSearcher{})
	campaign := seedCampaign(repo)

	if _, err := svc.ApplyResults(context.Background(), campaign.ID, "user_1", domain.SourceGithub, makeContacts(3), domain.SearchParams{}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	for _, contact := range repo.campaigns[campaign.ID].GithubSearchResults.Contacts {
		if contact.Selected {
			t.Fatalf("contact ingested with selected=true: %+v", contact)
		}
	}
}

func TestApplyResults_PersistsSearchParamsAndTimestamp(t *testing.T) {
	repo := newStubCampaignRepo()
	svc := newTestSearchService(repo, &stubSearcher{}, &stubSearcher{})
	campaign := seedCampaign(repo)

	params := domain.SearchParams{Location: "Berlin", TargetRole: "React Developer", Seniority: "Senior"}
	if _, err := svc.ApplyResults(context.Background(), campaign.ID, "user_1", domain.SourceLinkedin, makeContacts(1), params); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	set := repo.campaigns[campaign.ID].LinkedinSearchResults
	if set.SearchParams != params {
		t.Fatalf("search params not echoed: %+v", set.SearchParams)
	}
	want := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	if !set.LastUpdated.Equal(want) {
		t.Fatalf("expected lastUpdated %v, got %v", want, set.LastUpdated)
	}
}

func TestApplyResults_UnknownCampaign(t *testing.T) {
	repo := newStubCampaignRepo()
	svc := newTestSearchService(repo, &stubSearcher{}, &stubSearcher{})

	_, err := svc.ApplyResults(context.Background(), "missing", "user_1", domain.SourceGithub, makeContacts(1), domain.SearchParams{})
	if !errors.Is(err, domain.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestSearchGithub_StoresResultsOnCampaign(t *testing.T) {
	repo := newStubCampaignRepo()
	github := &stubSearcher{contacts: makeContacts(5)}
	svc := newTestSearchService(repo, &stubSearcher{}, github)
	campaign := seedCampaign(repo)

	contacts, err := svc.SearchGithub(context.Background(), campaign.ID, "user_1", domain.SearchParams{TargetRole: "React Developer"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(contacts) != 5 {
		t.Fatalf("expected 5 contacts, got %d", len(contacts))
	}
	if repo.campaigns[campaign.ID].GithubSearchResults == nil {
		t.Fatalf("results not persisted as side effect")
	}
}

func TestSearchGithub_AdapterFailureLeavesStoredResults(t *testing.T) {
	repo := newStubCampaignRepo()
	github := &stubSearcher{contacts: makeContacts(2)}
	svc := newTestSearchService(repo, &stubSearcher{}, github)
	campaign := seedCampaign(repo)

	if _, err := svc.SearchGithub(context.Background(), campaign.ID, "user_1", domain.SearchParams{}); err != nil {
		t.Fatalf("seed search failed: %v", err)
	}

	github.err = fmt.Errorf("%w: upstream 502", domain.ErrAdapter)
	if _, err := svc.SearchGithub(context.Background(), campaign.ID, "user_1", domain.SearchParams{}); !errors.Is(err, domain.ErrAdapter) {
		t.Fatalf("expected ErrAdapter, got %v", err)
	}

	stored := repo.campaigns[campaign.ID].GithubSearchResults
	if stored == nil || stored.Total != 2 {
		t.Fatalf("failed search clobbered stored results: %#v", stored)
	}
}

func TestSearchLinkedin_NoPersistence(t *testing.T) {
	repo := newStubCampaignRepo()
	linkedin := &stubSearcher{contacts: makeContacts(4)}
	svc := newTestSearchService(repo, linkedin, &stubSearcher{})
	campaign := seedCampaign(repo)

	contacts, err := svc.SearchLinkedin(context.Background(), domain.SearchParams{TargetRole: "React Developer"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(contacts) != 4 {
		t.Fatalf("expected 4 contacts, got %d", len(contacts))
	}
	if repo.campaigns[campaign.ID].LinkedinSearchResults != nil {
		t.Fatalf("linkedin search must not persist results")
	}
}
