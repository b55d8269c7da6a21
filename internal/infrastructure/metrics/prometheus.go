// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vidhub"

var (
	// CacheOperationsTotal tracks cache operations (get, set, delete).
	// Labels:
	//   - operation: get, set, delete
	//   - status: hit, miss, success, error
	//   - cache_type: redis
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "status", "cache_type"},
	)

	// DBOperationsTotal tracks document store operations.
	// Labels:
	//   - operation: find, insert, update, delete, count, aggregate
	//   - collection: videos, comments, likes, playlists, subscriptions, users
	DBOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_operations_total",
			Help:      "Total number of database operations",
		},
		[]string{"operation", "collection"},
	)

	// SingleflightRequestsTotal tracks singleflight behavior.
	// Labels:
	//   - result: initiated (new execution), shared (reused result)
	SingleflightRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "singleflight_requests_total",
			Help:      "Total number of singleflight requests",
		},
		[]string{"result"},
	)

	// ToggleOperationsTotal tracks like and subscription toggles by outcome.
	// Labels:
	//   - target: video, comment, tweet, subscription
	//   - outcome: added, removed
	ToggleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "toggle_operations_total",
			Help:      "Total number of toggle operations",
		},
		[]string{"target", "outcome"},
	)

	// CleanupTasksTotal tracks processed video cleanup tasks.
	// Labels:
	//   - status: success, retry, failed
	CleanupTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleanup_tasks_total",
			Help:      "Total number of processed cleanup tasks",
		},
		[]string{"status"},
	)

	// HTTPRequestDuration tracks request latency.
	// Labels:
	//   - method: HTTP method
	//   - route: chi route pattern
	//   - status: response status code
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Cache operation status constants.
const (
	CacheStatusHit     = "hit"
	CacheStatusMiss    = "miss"
	CacheStatusSuccess = "success"
	CacheStatusError   = "error"
)

// Cache operation type constants.
const (
	CacheOpGet    = "get"
	CacheOpSet    = "set"
	CacheOpDelete = "delete"
)

// Cache type constants.
const (
	CacheTypeRedis = "redis"
)

// DB operation constants.
const (
	DBOpFind      = "find"
	DBOpInsert    = "insert"
	DBOpUpdate    = "update"
	DBOpDelete    = "delete"
	DBOpCount     = "count"
	DBOpAggregate = "aggregate"
)

// Singleflight result constants.
const (
	SingleflightInitiated = "initiated"
	SingleflightShared    = "shared"
)

// Cleanup task status constants.
const (
	CleanupStatusSuccess = "success"
	CleanupStatusRetry   = "retry"
	CleanupStatusFailed  = "failed"
)

// RecordDBOperation increments the operation counter for a collection.
func RecordDBOperation(operation, collection string) {
	DBOperationsTotal.WithLabelValues(operation, collection).Inc()
}
