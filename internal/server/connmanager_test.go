package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/protocol"
	"github.com/openhlx/hlxgo/internal/transport"
)

func TestConnectionManagerServeRoutesFramesAndTracksLifecycle(t *testing.T) {
	d := dispatch.New(testLogger())
	var gotCaptures [][]byte
	d.Register(protocol.MustEntry("ZoneQuery").Pattern, func(conn dispatch.Connection, m [][]byte) {
		gotCaptures = m
		_ = conn.Write(protocol.Wrap([]byte("ack")))
	})

	m := NewConnectionManager(d, testLogger())
	client, srv := transport.Pipe()

	done := make(chan struct{})
	go func() {
		m.Serve(srv)
		close(done)
	}()

	require.Eventually(t, func() bool { return m.Len() == 1 }, time.Second, time.Millisecond)

	_, err := client.Write(protocol.Wrap([]byte("QZ1")))
	require.NoError(t, err)

	buf := make([]byte, 256)
	n, err := client.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "(ack)", string(buf[:n]))
	require.Equal(t, "1", string(gotCaptures[1]))

	require.NoError(t, client.Close())
	require.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, time.Millisecond)
	<-done
}

func TestConnectionManagerBroadcastReachesEveryConnection(t *testing.T) {
	d := dispatch.New(testLogger())
	m := NewConnectionManager(d, testLogger())

	clientA, srvA := transport.Pipe()
	clientB, srvB := transport.Pipe()
	defer clientA.Close()
	defer clientB.Close()

	go m.Serve(srvA)
	go m.Serve(srvB)
	require.Eventually(t, func() bool { return m.Len() == 2 }, time.Second, time.Millisecond)

	m.Broadcast(protocol.Wrap([]byte("ZV1,-10")))

	for _, c := range []transport.Connection{clientA, clientB} {
		buf := make([]byte, 256)
		n, err := c.Read(buf)
		require.NoError(t, err)
		require.Equal(t, "(ZV1,-10)", string(buf[:n]))
	}
}
