package dispatch_test

import (
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/metrics"
)

type fakeConnection struct {
	writes [][]byte
}

func (f *fakeConnection) Write(frame []byte) error {
	f.writes = append(f.writes, frame)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcherRoutesFirstMatchInRegistrationOrder(t *testing.T) {
	d := dispatch.New(testLogger())

	var calls []string
	d.Register(regexp.MustCompile(`^Q.*$`), func(conn dispatch.Connection, captures [][]byte) {
		calls = append(calls, "wildcard")
	})
	d.Register(regexp.MustCompile(`^QX$`), func(conn dispatch.Connection, captures [][]byte) {
		calls = append(calls, "exact")
	})

	conn := &fakeConnection{}
	d.OnFrame(conn, []byte("QX"))

	require.Equal(t, []string{"wildcard"}, calls)
	require.Empty(t, conn.writes)
}

func TestDispatcherEmitsErrorOnNoMatch(t *testing.T) {
	d := dispatch.New(testLogger())
	conn := &fakeConnection{}

	d.OnFrame(conn, []byte("NOTAVERB"))

	require.Len(t, conn.writes, 1)
	require.Equal(t, "(ERROR)", string(conn.writes[0]))
}

func TestDispatcherRegisterIsIdempotentByPatternIdentity(t *testing.T) {
	d := dispatch.New(testLogger())
	pattern := regexp.MustCompile(`^QX$`)

	calls := 0
	handler := func(conn dispatch.Connection, captures [][]byte) { calls++ }

	d.Register(pattern, handler)
	d.Register(pattern, handler)
	require.Equal(t, 1, d.Len())

	d.OnFrame(&fakeConnection{}, []byte("QX"))
	require.Equal(t, 1, calls)
}

func TestDispatcherUnregisterRemovesBinding(t *testing.T) {
	d := dispatch.New(testLogger())
	pattern := regexp.MustCompile(`^QX$`)
	d.Register(pattern, func(conn dispatch.Connection, captures [][]byte) {})
	require.Equal(t, 1, d.Len())

	d.Unregister(pattern)
	require.Equal(t, 0, d.Len())

	conn := &fakeConnection{}
	d.OnFrame(conn, []byte("QX"))
	require.Len(t, conn.writes, 1)
	require.Equal(t, "(ERROR)", string(conn.writes[0]))
}

func TestDispatcherRecordsMetricsWhenAttached(t *testing.T) {
	d := dispatch.New(testLogger())
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	d.SetMetrics(m)

	pattern := regexp.MustCompile(`^Q(\d)$`)
	d.Register(pattern, func(conn dispatch.Connection, captures [][]byte) {})

	d.OnFrame(&fakeConnection{}, []byte("NOTAVERB"))

	require.Equal(t, float64(1), testutil.ToFloat64(m.FramesDispatched.WithLabelValues("unmatched")))
}
