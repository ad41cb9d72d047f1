package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestFrontPanelHandleQueryWritesSnapshotThenTerminator(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewFrontPanelController(ctx)
	conn := &fakeConnection{}

	c.handleQuery(conn, nil)

	require.Equal(t, []string{
		string(protocol.RenderFrontPanelSetBrightness(ctx.state.FrontPanel.Brightness())),
		string(protocol.RenderFrontPanelSetLocked(ctx.state.FrontPanel.Locked())),
		string(protocol.RenderFrontPanelQueryEnd()),
	}, conn.strings())
}

func TestFrontPanelHandleSetBrightnessRejectsOutOfRange(t *testing.T) {
	ctx, dirty, _ := newTestContext(t)
	c := NewFrontPanelController(ctx)
	conn := &fakeConnection{}

	c.handleSetBrightness(conn, [][]byte{nil, []byte("99")})

	require.Equal(t, []string{"(ERROR)"}, conn.strings())
	require.Equal(t, 0, dirty.marked)
}

func TestFrontPanelResetToDefaultsRestoresBrightness(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewFrontPanelController(ctx)

	conn := &fakeConnection{}
	c.handleSetBrightness(conn, [][]byte{nil, []byte("3")})
	require.Equal(t, uint8(3), ctx.state.FrontPanel.Brightness())

	c.ResetToDefaults()
	require.Equal(t, model.NewFrontPanel().Brightness(), ctx.state.FrontPanel.Brightness())
}
