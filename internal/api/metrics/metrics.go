// Package metrics defines and registers all custom Prometheus metrics for
// the microblog API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register with the default Prometheus registry via promauto;
// the /metrics endpoint serves them alongside the HTTP metrics recorded
// by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "microblog"

// PostsCreatedTotal counts successfully created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// FollowChangesTotal counts follow-graph mutations.
// Label:
//   - action: "follow" or "unfollow"
var FollowChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "follow_changes_total",
		Help:      "Total number of follow and unfollow operations.",
	},
	[]string{"action"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// FeedRequestsTotal counts served feed pages.
var FeedRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_requests_total",
		Help:      "Total number of feed pages served.",
	},
)

// FeedQueryDuration measures how long composing one feed page takes.
var FeedQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_query_duration_seconds",
		Help:      "Duration of feed page composition, from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
)

// PasswordResetsTotal counts password reset activity.
// Label:
//   - stage: "requested" or "completed"
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password reset requests and completions.",
	},
	[]string{"stage"},
)
