// Package github sources developer-shaped contacts from the GitHub REST API:
// one user search capped at maxResults, then two detail calls per result to
// enrich name, company, location, avatar and activity counts.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.github.com"
	httpTimeout    = 15 * time.Second
	maxResults     = 10
	// detailWorkers bounds the enrichment fan-out. The sequential original
	// of this path made total latency linear in result count.
	detailWorkers = 4

	notSpecified = "Not specified"
)

// roleLanguages maps a target role to the language filter used in the user
// search query. Unknown roles fall back to JavaScript.
var roleLanguages = map[string]string{
	"React Developer":           "JavaScript",
	"Python Engineer":           "Python",
	"Java Developer":            "Java",
	"Backend Developer":         "Python,Java,Go",
	"Frontend Developer":        "JavaScript,TypeScript",
	"Full Stack Developer":      "JavaScript,Python,Java",
	"DevOps Engineer":           "Python,Shell",
	"Data Scientist":            "Python,R",
	"Machine Learning Engineer": "Python",
	"Mobile Developer":          "Swift,Kotlin",
}

const defaultLanguage = "JavaScript"

// LanguageForRole resolves the search language for a target role.
func LanguageForRole(role string) string {
	if lang, ok := roleLanguages[role]; ok {
		return lang
	}
	return defaultLanguage
}

// Client queries the GitHub search and users endpoints.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  zerolog.Logger
}

// Option customises the client; used by tests to point at a fake server.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func NewClient(token string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		token:   token,
		client:  &http.Client{Timeout: httpTimeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse mirrors the top-level /search/users response.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Login string `json:"login"`
}

// userDetail mirrors the /users/{login} response fields we consume.
type userDetail struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	PublicRepos int    `json:"public_repos"`
}

// contributionsDetail mirrors the per-user contributions response.
type contributionsDetail struct {
	Total int `json:"total"`
}

// Search runs `location:<location> language:<lang>` against the user search
// endpoint, takes the first maxResults logins, then enriches each through a
// bounded worker group. Output order matches search order regardless of
// which enrichment finishes first.
func (c *Client) Search(ctx context.Context, targetRole, location, seniority string) ([]domain.Contact, error) {
	query := fmt.Sprintf("location:%s language:%s", location, LanguageForRole(targetRole))

	var search searchResponse
	if err := c.get(ctx, "/search/users?q="+url.QueryEscape(query), &search); err != nil {
		return nil, err
	}

	items := search.Items
	if len(items) > maxResults {
		items = items[:maxResults]
	}

	contacts := make([]domain.Contact, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailWorkers)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			contact, err := c.enrich(gctx, item.Login, targetRole)
			if err != nil {
				return err
			}
			contacts[i] = contact
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Info().Int("contacts", len(contacts)).Str("query", query).Msg("github search completed")
	return contacts, nil
}

// enrich issues the two detail calls for one search hit and assembles the
// contact.
func (c *Client) enrich(ctx context.Context, login, targetRole string) (domain.Contact, error) {
	var detail userDetail
	if err := c.get(ctx, "/users/"+url.PathEscape(login), &detail); err != nil {
		return domain.Contact{}, err
	}

	var contribs contributionsDetail
	if err := c.get(ctx, "/users/"+url.PathEscape(login)+"/contributions", &contribs); err != nil {
		return domain.Contact{}, err
	}

	name := detail.Name
	if name == "" {
		name = login
	}
	company := detail.Company
	if company == "" {
		company = notSpecified
	}
	loc := detail.Location
	if loc == "" {
		loc = notSpecified
	}

	return domain.Contact{
		Name:           name,
		Role:           targetRole,
		Company:        company,
		Location:       loc,
		ProfilePicture: detail.AvatarURL,
		GithubURL:      detail.HTMLURL,
		Contributions:  contribs.Total,
		Repositories:   detail.PublicRepos,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrAdapter, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrAdapter, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", domain.ErrAdapter, strings.SplitN(path, "?", 2)[0], resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrAdapter, path, err)
	}
	return nil
}
