package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

// fakeGithub serves the three endpoints the client hits and records traffic.
type fakeGithub struct {
	mu          sync.Mutex
	searchQuery string
	authHeader  string
	logins      []string
	failDetail  string
	detailCalls int
}

func (f *fakeGithub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.authHeader = r.Header.Get("Authorization")
		f.mu.Unlock()

		switch {
		case r.URL.Path == "/search/users":
			f.mu.Lock()
			f.searchQuery = r.URL.Query().Get("q")
			f.mu.Unlock()

			items := make([]map[string]string, len(f.logins))
			for i, login := range f.logins {
				items[i] = map[string]string{"login": login}
			}
			json.NewEncoder(w).Encode(map[string]any{"items": items})

		case strings.HasSuffix(r.URL.Path, "/contributions"):
			login := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/users/"), "/contributions")
			json.NewEncoder(w).Encode(map[string]int{"total": 100 + seq(login)})

		case strings.HasPrefix(r.URL.Path, "/users/"):
			login := strings.TrimPrefix(r.URL.Path, "/users/")
			f.mu.Lock()
			f.detailCalls++
			f.mu.Unlock()
			if login == f.failDetail {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"login":        login,
				"name":         "",
				"company":      "",
				"location":     "Berlin",
				"avatar_url":   "https://avatars.test/" + login,
				"html_url":     "https://github.test/" + login,
				"public_repos": 10 + seq(login),
			})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

// seq extracts the numeric suffix of a dev-N login so assertions can tie a
// contact back to its search position.
func seq(login string) int {
	var n int
	fmt.Sscanf(login, "dev-%d", &n)
	return n
}

func devLogins(n int) []string {
	logins := make([]string, n)
	for i := range logins {
		logins[i] = fmt.Sprintf("dev-%d", i)
	}
	return logins
}

func TestClient_Search_QueryAndHeaders(t *testing.T) {
	fake := &fakeGithub{logins: devLogins(1)}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient("gh-token", zerolog.Nop(), WithBaseURL(srv.URL))
	if _, err := c.Search(context.Background(), "Python Engineer", "Berlin", "Senior"); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if fake.searchQuery != "location:Berlin language:Python" {
		t.Fatalf("unexpected query %q", fake.searchQuery)
	}
	if fake.authHeader != "token gh-token" {
		t.Fatalf("unexpected auth header %q", fake.authHeader)
	}
}

func TestClient_Search_UnknownRoleFallsBackToJavascript(t *testing.T) {
	fake := &fakeGithub{logins: devLogins(1)}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient("", zerolog.Nop(), WithBaseURL(srv.URL))
	if _, err := c.Search(context.Background(), "Underwater Basket Weaver", "Lisbon", ""); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if fake.searchQuery != "location:Lisbon language:JavaScript" {
		t.Fatalf("unexpected query %q", fake.searchQuery)
	}
}

func TestClient_Search_CapsResultsAndPreservesOrder(t *testing.T) {
	fake := &fakeGithub{logins: devLogins(25)}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient("", zerolog.Nop(), WithBaseURL(srv.URL))
	contacts, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(contacts) != 10 {
		t.Fatalf("expected 10 contacts, got %d", len(contacts))
	}
	for i, contact := range contacts {
		want := fmt.Sprintf("dev-%d", i)
		if contact.Name != want {
			t.Fatalf("position %d holds %q, want %q; order must match search order", i, contact.Name, want)
		}
		if contact.Contributions != 100+i || contact.Repositories != 10+i {
			t.Fatalf("contact %d not enriched: %+v", i, contact)
		}
	}
}

func TestClient_Search_EnrichmentFallbacks(t *testing.T) {
	fake := &fakeGithub{logins: devLogins(1)}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient("", zerolog.Nop(), WithBaseURL(srv.URL))
	contacts, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	got := contacts[0]
	if got.Name != "dev-0" {
		t.Fatalf("empty name must fall back to login, got %q", got.Name)
	}
	if got.Company != "Not specified" {
		t.Fatalf("empty company must fall back, got %q", got.Company)
	}
	if got.Location != "Berlin" {
		t.Fatalf("location lost: %q", got.Location)
	}
	if got.Role != "React Developer" {
		t.Fatalf("role must echo the target role, got %q", got.Role)
	}
	if got.Selected {
		t.Fatalf("adapter output must not be pre-selected")
	}
	if got.ProfileURL != "" {
		t.Fatalf("github contacts must not carry a linkedin profile url")
	}
}

func TestClient_Search_DetailFailureFailsWhole(t *testing.T) {
	fake := &fakeGithub{logins: devLogins(5), failDetail: "dev-3"}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient("", zerolog.Nop(), WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior")
	if !errors.Is(err, domain.ErrAdapter) {
		t.Fatalf("expected ErrAdapter, got %v", err)
	}
}

func TestClient_Search_FailedSearchReturnsAdapterError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient("", zerolog.Nop(), WithBaseURL(srv.URL))
	if _, err := c.Search(context.Background(), "React Developer", "Berlin", "Senior"); !errors.Is(err, domain.ErrAdapter) {
		t.Fatalf("expected ErrAdapter, got %v", err)
	}
}
