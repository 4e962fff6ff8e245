package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Selections.Inc()
	m.Selections.Inc()
	m.SectionChanges.WithLabelValues("user").Inc()

	if got := testutil.ToFloat64(m.Selections); got != 2 {
		t.Errorf("selections = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.SectionChanges.WithLabelValues("user")); got != 1 {
		t.Errorf("section changes = %v, want 1", got)
	}

	n, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatalf("gathering: %v", err)
	}
	if n == 0 {
		t.Error("expected registered metrics")
	}
}
