// Package metrics defines observability hooks for maintenance runs.
package metrics

import "time"

// Recorder defines observability hooks for run and per-file metrics.
// Implementations may forward to Prometheus or elsewhere; NoopRecorder is the
// default when metrics are not configured.
type Recorder interface {
	ObserveRunDuration(command string, d time.Duration)
	IncFileOutcome(command, status string)
	IncRunOutcome(command string, failed bool)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(string, time.Duration) {}
func (NoopRecorder) IncFileOutcome(string, string)            {}
func (NoopRecorder) IncRunOutcome(string, bool)               {}
