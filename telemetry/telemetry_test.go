package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestLogfWritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	SetLogWriter(&buf)
	defer SetLogWriter(nil)

	Logf("tick %d resolved %d waves", 3, 2)
	if got := buf.String(); !strings.Contains(got, "tick 3 resolved 2 waves") {
		t.Errorf("Logf output = %q, missing expected message", got)
	}
}

func TestCollectorRecordWaveDoesNotPanicOnNil(t *testing.T) {
	var c *Collector
	c.RecordWave(1, 2, 3, 4)
	c.RecordTick(5)
}

func TestNewCollectorRegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordWave(2, 10, 1, 0)
	c.RecordTick(7)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatalf("expected registered metric families, got none")
	}
}

func TestDumpWritesCSVWithHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics.csv")
	rows := []MetricsRow{
		{Tick: 1, ClusterCount: 2, PermutationsTested: 4, StalemateCount: 0, SuccessCount: 2},
		{Tick: 2, ClusterCount: 1, PermutationsTested: 1, StalemateCount: 1, SuccessCount: 0},
	}
	if err := Dump(path, rows); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "tick") || !strings.Contains(content, "cluster_count") {
		t.Errorf("csv missing expected header, got %q", content)
	}
	if strings.Count(content, "\n") < 2 {
		t.Errorf("expected header + 2 data rows, got %q", content)
	}
}
