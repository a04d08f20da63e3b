// Package apify wraps the Apify scraping platform's run-sync API to source
// LinkedIn-shaped profile data from a people-search actor.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/prospectio/outreach-system/internal/core/domain"
)

const (
	defaultBaseURL   = "https://api.apify.com"
	defaultActorID   = "od6RadQV98FOARtrp"
	defaultTimeout   = 5 * time.Minute
	actorResultLimit = 60
)

// Client runs the people-search actor synchronously and maps its dataset
// items into contacts. The actor has an internal cap (actorResultLimit), so
// results are consumed as a single batch with no pagination.
type Client struct {
	baseURL  string
	actorID  string
	apiToken string
	timeout  time.Duration
	client   *http.Client
	logger   zerolog.Logger
}

// Option customises the client; used by tests to point at a fake server.
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithActorID(id string) Option {
	return func(c *Client) { c.actorID = id }
}

// NewClient constructs a Client. timeout bounds the whole actor run; it is
// deliberately explicit and configurable rather than unbounded.
func NewClient(apiToken string, timeout time.Duration, logger zerolog.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL:  defaultBaseURL,
		actorID:  defaultActorID,
		apiToken: apiToken,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// actorInput mirrors the people-search actor's expected input.
type actorInput struct {
	Action   string   `json:"action"`
	IsName   bool     `json:"isName"`
	IsURL    bool     `json:"isUrl"`
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
	Location []string `json:"location"`
}

// actorItem mirrors one dataset item produced by the actor.
type actorItem struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Headline      string `json:"headline"`
	Organizations string `json:"ORGANIZATIONS"`
	URL           string `json:"url"`
}

// Search submits the criteria as a keyword/location query, blocks until the
// actor run completes and maps its output into contacts.
func (c *Client) Search(ctx context.Context, targetRole, location, seniority string) ([]domain.Contact, error) {
	input := actorInput{
		Action:   "get-profiles",
		Keywords: []string{strings.TrimSpace(seniority + " " + targetRole)},
		Limit:    actorResultLimit,
		Location: []string{location},
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("%w: encode actor input: %v", domain.ErrAdapter, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, c.actorID, url.QueryEscape(c.apiToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrAdapter, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("actor_id", c.actorID).Str("keywords", input.Keywords[0]).Msg("running scraping actor")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: actor run: %v", domain.ErrAdapter, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: actor run returned %d: %s", domain.ErrAdapter, resp.StatusCode, payload)
	}

	var items []actorItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decode dataset items: %v", domain.ErrAdapter, err)
	}

	contacts := make([]domain.Contact, 0, len(items))
	for _, item := range items {
		contacts = append(contacts, domain.Contact{
			Name:       strings.TrimSpace(item.FirstName + " " + item.LastName),
			Role:       item.Headline,
			Company:    item.Organizations,
			Location:   location, // the actor does not echo location per item
			ProfileURL: item.URL,
		})
	}

	c.logger.Info().Int("profiles", len(contacts)).Msg("actor run completed")
	return contacts, nil
}
