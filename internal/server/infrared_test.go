package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestInfraredHandleQueryReportsCurrentState(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewInfraredController(ctx)
	conn := &fakeConnection{}

	c.handleQuery(conn, nil)

	require.Equal(t, []string{string(protocol.RenderInfraredSetDisabled(ctx.state.Infrared.Disabled()))}, conn.strings())
}

func TestInfraredHandleSetDisabledEmitsOnEffectiveChange(t *testing.T) {
	ctx, dirty, sink := newTestContext(t)
	c := NewInfraredController(ctx)

	conn := &fakeConnection{}
	c.handleSetDisabled(conn, [][]byte{nil, []byte("1")})
	require.Equal(t, []string{string(protocol.RenderInfraredSetDisabled(true))}, conn.strings())
	require.Equal(t, 1, dirty.marked)
	require.Len(t, sink.changes, 1)
	require.Equal(t, events.KindInfrared, sink.changes[0].Kind)

	conn2 := &fakeConnection{}
	c.handleSetDisabled(conn2, [][]byte{nil, []byte("1")})
	require.Equal(t, 1, dirty.marked)
}

func TestInfraredResetToDefaultsReenablesReceiver(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewInfraredController(ctx)

	_, err := ctx.state.Infrared.SetDisabled(true)
	require.Nil(t, err)

	c.ResetToDefaults()

	require.False(t, ctx.state.Infrared.Disabled())
}
