package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestOrchestratorSetVolumeMutatesEveryMemberButWritesOneFrame(t *testing.T) {
	ctx, dirty, _ := newTestContext(t)
	zones := NewZonesController(ctx)
	c := NewOrchestrator(ctx, zones)

	g, err := ctx.state.Groups.Get(1)
	require.NoError(t, err)
	_, aerr := g.AddZone(1)
	require.Nil(t, aerr)
	_, aerr = g.AddZone(2)
	require.Nil(t, aerr)

	conn := &fakeConnection{}
	c.handleSetVolume(conn, [][]byte{nil, []byte("1"), []byte("-20")})

	require.Equal(t, []string{string(protocol.RenderGroupSetVolume(1, -20))}, conn.strings())

	z1, err := ctx.state.Zones.Get(1)
	require.NoError(t, err)
	require.Equal(t, int8(-20), z1.Volume().Level())
	z2, err := ctx.state.Zones.Get(2)
	require.NoError(t, err)
	require.Equal(t, int8(-20), z2.Volume().Level())

	z3, err := ctx.state.Zones.Get(3)
	require.NoError(t, err)
	require.NotEqual(t, int8(-20), z3.Volume().Level())

	require.GreaterOrEqual(t, dirty.marked, 2)
}

func TestOrchestratorMuteOnEmptyGroupStillWritesOneFrame(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	zones := NewZonesController(ctx)
	c := NewOrchestrator(ctx, zones)

	conn := &fakeConnection{}
	c.handleMute(conn, [][]byte{nil, []byte("1"), []byte("1")})

	require.Equal(t, []string{string(protocol.RenderGroupMute(1, true))}, conn.strings())
}

func TestOrchestratorSetSourceUnknownGroupWritesError(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	zones := NewZonesController(ctx)
	c := NewOrchestrator(ctx, zones)

	conn := &fakeConnection{}
	c.handleSetSource(conn, [][]byte{nil, []byte("250"), []byte("1")})

	require.Equal(t, []string{"(ERROR)"}, conn.strings())
}

func TestOrchestratorToggleMuteFoldsPerZoneErrorsIntoSuccess(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	zones := NewZonesController(ctx)
	c := NewOrchestrator(ctx, zones)

	g, err := ctx.state.Groups.Get(1)
	require.NoError(t, err)
	_, aerr := g.AddZone(1)
	require.Nil(t, aerr)

	conn := &fakeConnection{}
	require.NotPanics(t, func() {
		c.handleToggleMute(conn, [][]byte{nil, []byte("1")})
	})
	require.Equal(t, []string{string(protocol.RenderGroupToggleMute(1))}, conn.strings())
}
