package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestNetworkHandleQueryWritesSnapshotThenTerminator(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewNetworkController(ctx)
	conn := &fakeConnection{}

	c.handleQuery(conn, nil)

	got := conn.strings()
	require.Len(t, got, 7)
	require.Equal(t, string(protocol.RenderNetworkQueryEnd()), got[6])
}

func TestNetworkCaptureDoesNotPanicWithoutAnInterface(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewNetworkController(ctx)

	require.NotPanics(t, func() { c.Capture() })
}

func TestNetworkResetToDefaultsRecapturesFromTheHost(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewNetworkController(ctx)

	require.NotPanics(t, func() { c.ResetToDefaults() })
}
