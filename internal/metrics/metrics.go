// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, content writes, moderation, and database operations.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/nikol804/dotapost/internal/logger"
)

const (
	namespace = "dotapost"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Post metrics - track writes and the publication transition
	PostsSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "posts",
			Name:      "saved_total",
			Help:      "Total number of post saves by operation",
		},
		[]string{"operation"},
	)

	PostsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "posts",
			Name:      "published_total",
			Help:      "Total number of draft to published transitions",
		},
	)

	SlugAllocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "posts",
			Name:      "slug_allocations_total",
			Help:      "Total number of slug allocations by result (base, suffixed, retried)",
		},
		[]string{"result"},
	)

	// Comment metrics - track submissions by outcome
	CommentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "total",
			Help:      "Total number of comment submissions by result",
		},
		[]string{"result"},
	)

	LikeTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "likes",
			Name:      "toggles_total",
			Help:      "Total number of like toggles by resulting state",
		},
		[]string{"state"},
	)

	ModerationActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "moderation",
			Name:      "actions_total",
			Help:      "Total number of recorded moderation actions by target type and action",
		},
		[]string{"target_type", "action"},
	)

	// Streaming export metrics - track streaming exports
	StreamingExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_total",
			Help:      "Total number of streamed audit log exports by resource type, format, and result",
		},
		[]string{"resource_type", "format", "result"},
	)

	StreamingExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "export_duration_seconds",
			Help:      "Streaming export duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"resource_type", "format"},
	)

	StreamingExportRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "records_total",
			Help:      "Total number of records streamed by resource type and format",
		},
		[]string{"resource_type", "format"},
	)

	StreamingExportsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_in_flight",
			Help:      "Number of streaming exports currently in progress",
		},
		[]string{"resource_type"},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: &pgxPoolAdapter{pool: pool},
		stopChan: make(chan struct{}),
	}
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// Slug allocation results.
const (
	SlugBase     = "base"
	SlugSuffixed = "suffixed"
	SlugRetried  = "retried"
)

// Comment submission results.
const (
	CommentCreated     = "created"
	CommentRateLimited = "rate_limited"
	CommentRejected    = "rejected"
	CommentDeleted     = "deleted"
)

// ObservePostSaved records a post write and, when it happened, the publication.
func ObservePostSaved(operation string, published bool) {
	PostsSavedTotal.WithLabelValues(operation).Inc()
	if published {
		PostsPublishedTotal.Inc()
	}
}

// ObserveSlugAllocation records whether the allocated slug needed a suffix.
func ObserveSlugAllocation(base, allocated string) {
	if base == allocated {
		SlugAllocationsTotal.WithLabelValues(SlugBase).Inc()
		return
	}
	SlugAllocationsTotal.WithLabelValues(SlugSuffixed).Inc()
}

// ObserveSlugRetry records an allocation repeated after a unique violation.
func ObserveSlugRetry() {
	SlugAllocationsTotal.WithLabelValues(SlugRetried).Inc()
}

// ObserveComment records a comment submission outcome.
func ObserveComment(result string) {
	CommentsTotal.WithLabelValues(result).Inc()
}

// ObserveLikeToggle records the state a like toggle ended in.
func ObserveLikeToggle(liked bool) {
	state := "unliked"
	if liked {
		state = "liked"
	}
	LikeTogglesTotal.WithLabelValues(state).Inc()
}

// ObserveModerationAction records an appended audit entry.
func ObserveModerationAction(targetType, action string) {
	ModerationActionsTotal.WithLabelValues(targetType, action).Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

// LogHealthCheckMetrics logs database pool stats after a readiness probe (for debugging)
func LogHealthCheckMetrics(ctx context.Context, pool *pgxpool.Pool) {
	stats := pool.Stat()
	logger.FromContext(ctx).Debug("Database pool stats",
		zap.Int32("total_conns", stats.TotalConns()),
		zap.Int32("idle_conns", stats.IdleConns()),
		zap.Int32("acquired_conns", stats.AcquiredConns()),
		zap.Int64("acquire_count", stats.AcquireCount()),
		zap.Int64("canceled_acquire_count", stats.CanceledAcquireCount()),
	)
}

// StartStreamingExport starts tracking a streaming export
func StartStreamingExport(resourceType string) {
	StreamingExportsInFlight.WithLabelValues(resourceType).Inc()
}

// EndStreamingExport ends tracking a streaming export and records metrics
func EndStreamingExport(resourceType, format, result string, durationSeconds float64, recordCount int) {
	StreamingExportsInFlight.WithLabelValues(resourceType).Dec()
	StreamingExportsTotal.WithLabelValues(resourceType, format, result).Inc()
	StreamingExportDuration.WithLabelValues(resourceType, format).Observe(durationSeconds)
	if recordCount > 0 {
		StreamingExportRecords.WithLabelValues(resourceType, format).Add(float64(recordCount))
	}
}
