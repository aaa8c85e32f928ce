package ghost

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/oomph-ac/ghostplay/ghost"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// metrics counts playback activity of a single ghost. Without a configured provider the counters are
// no-ops.
type metrics struct {
	framesAdvanced metric.Int64Counter
	teleports      metric.Int64Counter

	attrs metric.MeasurementOption
}

func newMetrics(id string) (*metrics, error) {
	m := meter()
	out := &metrics{attrs: metric.WithAttributes(attribute.String("ghost.id", id))}

	var err error
	out.framesAdvanced, err = m.Int64Counter(
		"ghost.frames.advanced",
		metric.WithDescription("Total frames moved through during playback"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}

	out.teleports, err = m.Int64Counter(
		"ghost.teleports.suppressed",
		metric.WithDescription("Total frame deltas above the velocity cap"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating teleport counter: %w", err)
	}
	return out, nil
}

func (m *metrics) advanced(n int) {
	if n > 0 {
		m.framesAdvanced.Add(context.Background(), int64(n), m.attrs)
	}
}

func (m *metrics) teleported() {
	m.teleports.Add(context.Background(), 1, m.attrs)
}
