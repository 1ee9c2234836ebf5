package metrics

import "time"

//go:generate mockery --name MetricsProvider --dir . --output ../../mocks/metrics --outpkg metrics_mock --filename MetricsProvider.go
type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementAccountOperations(operation string, success bool)
	IncrementPostOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
