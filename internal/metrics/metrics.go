package metrics

import "time"

//go:generate mockery --name MetricsProvider --dir . --output ../../mocks/metrics --outpkg metrics_mock --filename MetricsProvider.go
type MetricsProvider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path, status string, duration time.Duration)
	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)
	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)
	IncrementLikeToggles(outcome string, success bool)
	IncrementProfileUpdates(success bool)
	SetServiceHealth(healthy bool)
}
