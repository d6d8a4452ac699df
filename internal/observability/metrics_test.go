package observability

import (
	"testing"
	"time"

	"github.com/danmuck/minectl/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	RecordMineOperation()
	RecordSubsystemCall("extraction", "start")
	RecordHTTPRequest("GET", "/health", 200, 12*time.Millisecond)
}

func TestRecordProductionIgnoresNonPositiveInTotal(t *testing.T) {
	testlog.Start(t)
	before := testutil.ToFloat64(productionRecorded)

	RecordProduction(50)
	RecordProduction(-20)
	RecordProduction(0)

	if got := testutil.ToFloat64(productionRecorded) - before; got != 50 {
		t.Fatalf("unexpected recorded delta: %v", got)
	}
	if got := testutil.ToFloat64(productionLast); got != 0 {
		t.Fatalf("unexpected last recorded: %v", got)
	}
}

func TestRecordSubsystemCallCounts(t *testing.T) {
	testlog.Start(t)
	counter := subsystemCalls.WithLabelValues("transport", "load")
	before := testutil.ToFloat64(counter)
	RecordSubsystemCall("transport", "load")
	RecordSubsystemCall("transport", "load")
	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Fatalf("unexpected call delta: %v", got)
	}
}
