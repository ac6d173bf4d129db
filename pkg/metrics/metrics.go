package metrics

import "time"

type Metrics interface {
	// Business
	RecordOrderPlaced(status string)
	RecordEventDispatched(eventName string, success bool)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)

	// Performance and Resilience
	IncCacheHit(cacheType string)
	IncCacheMiss(cacheType string)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) RecordOrderPlaced(string)                                   {}
func (Nop) RecordEventDispatched(string, bool)                         {}
func (Nop) RecordUseCaseExecution(string, bool, time.Duration)         {}
func (Nop) ObserveHTTPRequestDuration(string, string, string, float64) {}
func (Nop) IncCacheHit(string)                                         {}
func (Nop) IncCacheMiss(string)                                        {}
