package apify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

func TestClient_Search_ActorInputAndEndpoint(t *testing.T) {
	var gotPath, gotToken string
	var gotInput actorInput

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("token")
		if err := json.NewDecoder(r.Body).Decode(&gotInput); err != nil {
			t.Errorf("decode actor input: %v", err)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient("apify-secret", time.Minute, zerolog.Nop(),
		WithBaseURL(srv.URL), WithActorID("actor-123"))

	if _, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior"); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if gotPath != "/v2/acts/actor-123/run-sync-get-dataset-items" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotToken != "apify-secret" {
		t.Fatalf("token not forwarded, got %q", gotToken)
	}
	if gotInput.Action != "get-profiles" {
		t.Fatalf("unexpected action %q", gotInput.Action)
	}
	if len(gotInput.Keywords) != 1 || gotInput.Keywords[0] != "Senior React Developer" {
		t.Fatalf("unexpected keywords %v", gotInput.Keywords)
	}
	if gotInput.Limit != 60 {
		t.Fatalf("unexpected limit %d", gotInput.Limit)
	}
	if len(gotInput.Location) != 1 || gotInput.Location[0] != "Berlin" {
		t.Fatalf("unexpected location %v", gotInput.Location)
	}
}

func TestClient_Search_MapsDatasetItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[
			{"firstName":"Ada","lastName":"Lovelace","headline":"Senior Frontend Engineer","ORGANIZATIONS":"Analytical Engines GmbH","url":"https://linkedin.test/in/ada"},
			{"firstName":"Grace","lastName":"","headline":"","ORGANIZATIONS":"","url":""}
		]`))
	}))
	defer srv.Close()

	c := NewClient("tok", time.Minute, zerolog.Nop(), WithBaseURL(srv.URL))
	contacts, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}

	first := contacts[0]
	if first.Name != "Ada Lovelace" {
		t.Fatalf("unexpected name %q", first.Name)
	}
	if first.Role != "Senior Frontend Engineer" || first.Company != "Analytical Engines GmbH" {
		t.Fatalf("headline/company not mapped: %+v", first)
	}
	if first.ProfileURL != "https://linkedin.test/in/ada" {
		t.Fatalf("profile url not mapped: %q", first.ProfileURL)
	}
	if first.Location != "Berlin" {
		t.Fatalf("location must echo the search criteria, got %q", first.Location)
	}
	if first.Selected {
		t.Fatalf("adapter output must not be pre-selected")
	}

	// names with a missing half must not keep a stray space
	if contacts[1].Name != "Grace" {
		t.Fatalf("unexpected name %q", contacts[1].Name)
	}
}

func TestClient_Search_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"usage limit reached"}`))
	}))
	defer srv.Close()

	c := NewClient("tok", time.Minute, zerolog.Nop(), WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior")
	if !errors.Is(err, domain.ErrAdapter) {
		t.Fatalf("expected ErrAdapter, got %v", err)
	}
}

func TestClient_Search_TimeoutBoundsActorRun(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient("tok", 50*time.Millisecond, zerolog.Nop(), WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior")
	if !errors.Is(err, domain.ErrAdapter) {
		t.Fatalf("expected ErrAdapter on timeout, got %v", err)
	}
}

func TestClient_Search_MalformedDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c := NewClient("tok", time.Minute, zerolog.Nop(), WithBaseURL(srv.URL))
	if _, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior"); !errors.Is(err, domain.ErrAdapter) {
		t.Fatalf("expected ErrAdapter, got %v", err)
	}
}
