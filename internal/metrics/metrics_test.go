package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveDispatchIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveDispatch("ZoneQuery", 5*time.Millisecond)

	require.Equal(t, float64(1), testutil.ToFloat64(m.FramesDispatched.WithLabelValues("ZoneQuery")))
}

func TestNilMetricsAreSafeToCall(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() { m.IncExchangeTimeout() })
	require.NotPanics(t, func() { m.ObserveConfigSave("ok") })
	require.NotPanics(t, func() { m.ObserveDispatch("x", time.Millisecond) })
	require.NotPanics(t, func() { m.SetConnectionsActive(3) })
}

func TestObserveConfigSaveLabelsByResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveConfigSave("ok")
	m.ObserveConfigSave("error")
	m.ObserveConfigSave("error")

	require.Equal(t, float64(1), testutil.ToFloat64(m.ConfigSaves.WithLabelValues("ok")))
	require.Equal(t, float64(2), testutil.ToFloat64(m.ConfigSaves.WithLabelValues("error")))
}

func TestSetConnectionsActiveReportsGaugeValue(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SetConnectionsActive(4)

	require.Equal(t, float64(4), testutil.ToFloat64(m.ConnectionsActive))
}

func TestIncExchangeTimeoutIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncExchangeTimeout()
	m.IncExchangeTimeout()

	require.Equal(t, float64(2), testutil.ToFloat64(m.ExchangeTimeouts))
}
