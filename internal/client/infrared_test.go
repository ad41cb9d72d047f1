package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestInfraredClientQuery(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(QIR)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("IR1")))
	}()

	disabled, err := c.Infrared.Query(ctx(t))
	require.NoError(t, err)
	require.True(t, disabled)
}

func TestInfraredClientSetDisabled(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(IR0)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("IR0")))
	}()

	disabled, err := c.Infrared.SetDisabled(ctx(t), false)
	require.NoError(t, err)
	require.False(t, disabled)
}
