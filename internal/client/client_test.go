package client_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/client"
	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/transport"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestClient wires a Client over an in-process pipe and hands the test
// the server side of that pipe to script responses on.
func newTestClient(t *testing.T) (*client.Client, transport.Connection) {
	t.Helper()
	c, s := transport.Pipe()
	mgr := exchange.New(c, nil, testLogger(), time.Second)
	t.Cleanup(func() { mgr.Close() })
	return client.New(mgr), s
}

// readFrame reads one (...)-wrapped frame off conn, failing the test if it
// doesn't arrive promptly.
func readFrame(t *testing.T, conn transport.Connection) string {
	t.Helper()
	buf := make([]byte, 256)
	n, err := conn.Read(buf)
	require.NoError(t, err)
	return string(buf[:n])
}

func writeFrame(t *testing.T, conn transport.Connection, frame []byte) {
	t.Helper()
	_, err := conn.Write(frame)
	require.NoError(t, err)
}

// ctx returns a context bounded generously enough that a hung test fails
// fast instead of stalling the suite.
func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}
