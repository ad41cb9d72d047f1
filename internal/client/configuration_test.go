package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestConfigurationClientLoad(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(LX)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("LX")))
	}()

	require.NoError(t, c.Configuration.Load(ctx(t)))
}

func TestConfigurationClientQueryCurrentReturnsRawFrames(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(QX)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("FB4")))
		writeFrame(t, srv, protocol.Wrap([]byte("FL0")))
		writeFrame(t, srv, protocol.Wrap([]byte("IR0")))
		writeFrame(t, srv, protocol.Wrap([]byte("QXR")))
	}()

	frames, err := c.Configuration.QueryCurrent(ctx(t))
	require.NoError(t, err)
	require.Len(t, frames, 3)
	require.Equal(t, "FrontPanelSetBrightness", frames[0].Entry.Name)
	require.Equal(t, "FrontPanelSetLocked", frames[1].Entry.Name)
	require.Equal(t, "InfraredSetDisabled", frames[2].Entry.Name)
}

func TestConfigurationClientResetToDefaults(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(RX)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("RX")))
	}()

	require.NoError(t, c.Configuration.ResetToDefaults(ctx(t)))
}

func TestConfigurationClientSaveWaitsForTwoPhaseSequence(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(SX)", readFrame(t, srv))
		writeFrame(t, srv, protocol.RenderSaveStart())
		writeFrame(t, srv, protocol.RenderSaveEnd())
	}()

	require.NoError(t, c.Configuration.Save(ctx(t)))
}
