package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordChordParse records parse outcome metrics for a batch of chords
func (m *SentryMetrics) RecordChordParse(ctx context.Context, total, invalid int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "chords.parse")
	defer span.Finish()

	span.SetTag("chords_total", fmt.Sprintf("%d", total))
	span.SetTag("chords_invalid", fmt.Sprintf("%d", invalid))

	span.SetData("total", total)
	span.SetData("invalid", invalid)
	span.SetData("duration_ms", duration.Milliseconds())

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Chord parse: %d symbols", total)
}

// RecordContentScan records ChordPro document scan metrics
func (m *SentryMetrics) RecordContentScan(ctx context.Context, contentBytes, distinctChords int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "chords.scan")
	defer span.Finish()

	span.SetTag("distinct_chords", fmt.Sprintf("%d", distinctChords))

	span.SetData("content_bytes", contentBytes)
	span.SetData("distinct_chords", distinctChords)
	span.SetData("duration_ms", duration.Milliseconds())

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("ChordPro scan: %d bytes", contentBytes)
}
