// Package metrics defines all custom Prometheus metrics for the outreach
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "outreach"

// SearchesTotal counts external profile searches by source and outcome.
// Labels:
//   - source: "linkedin" or "github"
//   - result: "ok" or "error"
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of external profile searches, by source and result.",
	},
	[]string{"source", "result"},
)

// SearchDuration measures end-to-end adapter latency. The scraping actor
// path is expected to land in the tens of seconds, hence the wide buckets.
// Label:
//   - source: "linkedin" or "github"
var SearchDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of external searches from request to mapped contacts.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	},
	[]string{"source"},
)

// ContactsFetchedTotal counts contacts returned by successful searches.
// Label:
//   - source: "linkedin" or "github"
var ContactsFetchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_fetched_total",
		Help:      "Total number of contacts returned by external searches.",
	},
	[]string{"source"},
)

// CampaignsCreatedTotal counts newly created campaigns.
// Label:
//   - outreach_type: the campaign's outreach type as submitted
var CampaignsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "campaigns_created_total",
		Help:      "Total number of campaigns created, by outreach type.",
	},
	[]string{"outreach_type"},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "invalid_credentials", "invalid_token" or "revoked_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)
