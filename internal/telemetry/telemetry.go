// Package telemetry receives the web-vitals beacon payloads the dashboard
// posts and records them, either to the log or to Postgres when a database
// is configured.
package telemetry

import (
	"context"
	"log"
)

// WebVital is the beacon payload shape sent by the browser's metrics
// reporter.
type WebVital struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Rating    string  `json:"rating,omitempty"`
	Delta     float64 `json:"delta,omitempty"`
	MetricID  string  `json:"id,omitempty"`
	Page      string  `json:"page,omitempty"`
	UserAgent string  `json:"user_agent,omitempty"`
}

type Sink interface {
	Record(ctx context.Context, vital WebVital) error
	Close()
}

// LogSink just logs the payload, the default when no database is
// configured.
type LogSink struct{}

func (LogSink) Record(_ context.Context, vital WebVital) error {
	log.Printf("Web Vitals: %s=%.2f (%s) page=%s", vital.Name, vital.Value, vital.Rating, vital.Page)
	return nil
}

func (LogSink) Close() {}
