package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestZonesHandleQueryWritesFullSnapshotThenTerminator(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewZonesController(ctx)
	conn := &fakeConnection{}

	c.handleQuery(conn, [][]byte{nil, []byte("1")})

	got := conn.strings()
	require.Len(t, got, 8)
	require.Equal(t, string(protocol.RenderZoneSetName(1, "Zone Name 1")), got[0])
	require.Equal(t, string(protocol.RenderZoneSetSoundMode(1, int(model.SoundModeDisabled))), got[6])
	require.Equal(t, string(protocol.RenderZoneQueryEnd(1)), got[7])
}

func TestZonesHandleQueryUnknownZoneWritesError(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewZonesController(ctx)
	conn := &fakeConnection{}

	c.handleQuery(conn, [][]byte{nil, []byte("99")})

	require.Equal(t, []string{"(ERROR)"}, conn.strings())
}

func TestZonesHandleSetVolumeUnmutesOnlyWhenActuallyMuted(t *testing.T) {
	ctx, dirty, sink := newTestContext(t)
	c := NewZonesController(ctx)

	// Zones start muted; unmute zone 1 so the first call needs no prelude.
	z, err := ctx.state.Zones.Get(1)
	require.NoError(t, err)
	_, uerr := z.SetMute(false)
	require.Nil(t, uerr)

	conn := &fakeConnection{}
	c.handleSetVolume(conn, [][]byte{nil, []byte("-10"), []byte("1")})
	require.Equal(t, []string{string(protocol.RenderZoneSetVolume(1, -10))}, conn.strings())
	require.Equal(t, 1, dirty.marked)

	z, err = ctx.state.Zones.Get(1)
	require.NoError(t, err)
	_, merr := z.SetMute(true)
	require.Nil(t, merr)

	conn2 := &fakeConnection{}
	c.handleSetVolume(conn2, [][]byte{nil, []byte("-5"), []byte("1")})
	require.Equal(t, []string{
		string(protocol.RenderZoneMute(1, false)),
		string(protocol.RenderZoneSetVolume(1, -5)),
	}, conn2.strings())

	require.NotEmpty(t, sink.changes)
	last := sink.changes[len(sink.changes)-1]
	require.Equal(t, events.KindZoneVolume, last.Kind)
}

func TestZonesHandleSetBassSwitchesSoundModeOnlyOnce(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewZonesController(ctx)

	conn := &fakeConnection{}
	c.handleSetBass(conn, [][]byte{nil, []byte("1"), []byte("3")})
	require.Equal(t, []string{
		string(protocol.RenderZoneSetSoundMode(1, int(model.SoundModeTone))),
		string(protocol.RenderZoneSetBass(1, 3)),
	}, conn.strings())

	conn2 := &fakeConnection{}
	c.handleSetBass(conn2, [][]byte{nil, []byte("1"), []byte("-4")})
	require.Equal(t, []string{string(protocol.RenderZoneSetBass(1, -4))}, conn2.strings())
}

func TestZonesHandleMuteMarksDirtyAndEmitsOnEffectiveChange(t *testing.T) {
	ctx, dirty, sink := newTestContext(t)
	c := NewZonesController(ctx)

	// Zones start muted; unmute zone 2 so the mute below is a real change.
	z, err := ctx.state.Zones.Get(2)
	require.NoError(t, err)
	_, uerr := z.SetMute(false)
	require.Nil(t, uerr)

	conn := &fakeConnection{}
	c.handleMute(conn, [][]byte{nil, []byte("M"), []byte("2")})
	require.Equal(t, []string{string(protocol.RenderZoneMute(2, true))}, conn.strings())
	require.Equal(t, 1, dirty.marked)
	require.Len(t, sink.changes, 1)
	require.Equal(t, events.KindZoneMute, sink.changes[0].Kind)
}

func TestZonesHandleSetSourceAllFansOutToEveryZone(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewZonesController(ctx)
	conn := &fakeConnection{}

	c.handleSetSourceAll(conn, [][]byte{nil, []byte("3")})

	require.Equal(t, []string{string(protocol.RenderZoneSetSourceAll(3))}, conn.strings())
	for id := model.Identifier(1); int(id) <= ctx.state.Zones.Len(); id++ {
		z, err := ctx.state.Zones.Get(id)
		require.NoError(t, err)
		require.Equal(t, model.Identifier(3), z.SourceID())
	}
}

func TestZonesResetToDefaultsRestoresGeneratedNames(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewZonesController(ctx)

	z, err := ctx.state.Zones.Get(1)
	require.NoError(t, err)
	_, serr := z.SetName("Living Room")
	require.Nil(t, serr)

	c.ResetToDefaults()

	z, err = ctx.state.Zones.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Zone Name 1", z.Name())
}
