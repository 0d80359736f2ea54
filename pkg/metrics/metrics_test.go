package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.ObserveEstimate("school-run")
	m.ObserveEstimate("school-run")
	m.ObserveValidation("school-run", false)
	m.ObserveNotesParsed("exam-support", true)
	m.ObserveSessionCreated("exam-support")
	m.ObserveBudgetDegraded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ItineraryEstimates.WithLabelValues("school-run")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ItineraryValidations.WithLabelValues("school-run", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotesParsed.WithLabelValues("exam-support", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsCreated.WithLabelValues("exam-support")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BudgetDegraded))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveEstimate("x")
		m.ObserveValidation("x", true)
		m.ObserveNotesParsed("x", false)
		m.ObserveSessionCreated("x")
		m.ObserveBudgetDegraded()
	})
}
