package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Known metric types. Lookups are case-insensitive.
const (
	MetricTrendSeries           = "TREND_SERIES"
	MetricDistributionBreakdown = "DISTRIBUTION_BREAKDOWN"
)

// CachedMetric is a regenerable analytics value keyed by type and scope.
type CachedMetric struct {
	MetricType string
	ScopeKey   string
	Value      json.RawMessage
	ComputedAt time.Time
	ExpiresAt  time.Time
}

// NormalizeMetricType canonicalizes a metric type for keys and TTL lookup.
func NormalizeMetricType(metricType string) string {
	return strings.ToUpper(strings.TrimSpace(metricType))
}

// IsExpired reports whether the metric is stale at now.
func (m *CachedMetric) IsExpired(now time.Time) bool {
	return !now.Before(m.ExpiresAt)
}
