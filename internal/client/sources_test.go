package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestSourcesClientSetName(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, `(NO3,"Turntable")`, readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NO3,"Turntable"`)))
	}()

	name, err := c.Sources.SetName(ctx(t), 3, "Turntable")
	require.NoError(t, err)
	require.Equal(t, "Turntable", name)
}
