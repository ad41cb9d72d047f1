package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestSourcesHandleSetNameEmitsOnlyOnChange(t *testing.T) {
	ctx, dirty, sink := newTestContext(t)
	c := NewSourcesController(ctx)

	conn := &fakeConnection{}
	c.handleSetName(conn, [][]byte{nil, []byte("1"), []byte("Chromecast")})
	require.Equal(t, []string{string(protocol.RenderSourceSetName(1, "Chromecast"))}, conn.strings())
	require.Equal(t, 1, dirty.marked)
	require.Len(t, sink.changes, 1)
	require.Equal(t, events.KindSourceName, sink.changes[0].Kind)

	conn2 := &fakeConnection{}
	c.handleSetName(conn2, [][]byte{nil, []byte("1"), []byte("Chromecast")})
	require.Equal(t, 1, dirty.marked)
	require.Len(t, sink.changes, 1)
}

func TestSourcesQueryCurrentReplaysEverySourceInOrder(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewSourcesController(ctx)
	conn := &fakeConnection{}

	c.QueryCurrent(conn)

	require.Len(t, conn.strings(), int(model.MaxSources))
	require.Equal(t, string(protocol.RenderSourceSetName(1, "Source Name 1")), conn.strings()[0])
}

func TestSourcesResetToDefaultsRegeneratesNames(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewSourcesController(ctx)

	s, err := ctx.state.Sources.Get(1)
	require.NoError(t, err)
	_, serr := s.SetName("Chromecast")
	require.Nil(t, serr)

	c.ResetToDefaults()

	s, err = ctx.state.Sources.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Source Name 1", s.Name())
}
