package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ApplicationDecided("APPLIED")
	m.ApplicationDecided("APPLIED")
	m.ApplicationDecided("REJECTED")
	m.TransitionApplied("APPLIED", "UNDER_REVIEW")
	m.RecordHTTPRequest("POST", "/loans/apply", 201, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Applications.WithLabelValues("APPLIED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Applications.WithLabelValues("REJECTED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StatusTransition.WithLabelValues("APPLIED", "UNDER_REVIEW")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/loans/apply", "201")))
}

func TestNew_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ApplicationDecided("APPLIED")

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["loan_applications_total"])

	// a second registry accepts the same names
	assert.NotPanics(t, func() { New(prometheus.NewRegistry()) })
}
