// Package metrics defines and registers all custom Prometheus metrics for the
// HBnB API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hbnb"

// EntitiesCreatedTotal counts successfully created entities.
// Label:
//   - entity: "user", "place", "amenity" or "review"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of entities created, by entity type.",
	},
	[]string{"entity"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ListingCacheTotal counts place-listing cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (rebuilt from storage)
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of place-listing cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
