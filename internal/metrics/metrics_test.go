package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectors_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.Attempt("structured", OutcomeSuccess)
	c.Attempt("structured", OutcomeSuccess)
	c.Attempt("quick", OutcomeRateLimited)
	c.ObserveCall("structured", 1500*time.Millisecond)
	c.Fallback("career_guidance")
	c.Classified("roadmap")

	require.Equal(t, 2.0, testutil.ToFloat64(c.DispatchAttempts.WithLabelValues("structured", OutcomeSuccess)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.DispatchAttempts.WithLabelValues("quick", OutcomeRateLimited)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.FallbackResponses.WithLabelValues("career_guidance")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.IntentsClassified.WithLabelValues("roadmap")))
	require.Equal(t, 1, testutil.CollectAndCount(c.DispatchDuration))

	n, err := testutil.GatherAndCount(reg, "lifecompass_dispatch_attempts_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestCollectors_NilIsNoop(t *testing.T) {
	var c *Collectors
	require.NotPanics(t, func() {
		c.Attempt("quick", OutcomeError)
		c.ObserveCall("quick", time.Second)
		c.Fallback("casual_chat")
		c.Classified("casual_chat")
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	require.Panics(t, func() { New(reg) })
}
