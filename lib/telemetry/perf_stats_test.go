package telemetry

import (
	"context"
	"testing"
)

func TestInstrumentPerfStats(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// gauges record against the global meter, a no-op provider here;
	// the loop must start and shut down cleanly either way
	InstrumentPerfStats(ctx)
	cancel()
}
