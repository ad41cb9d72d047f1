package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestFavoritesClientQuery(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(QF4)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NF4,"Dinner Party"`)))
	}()

	name, err := c.Favorites.Query(ctx(t), 4)
	require.NoError(t, err)
	require.Equal(t, "Dinner Party", name)
}

func TestFavoritesClientSetName(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, `(NF4,"Movie Night")`, readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NF4,"Movie Night"`)))
	}()

	name, err := c.Favorites.SetName(ctx(t), 4, "Movie Night")
	require.NoError(t, err)
	require.Equal(t, "Movie Night", name)
}
