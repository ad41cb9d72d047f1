package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestFavoritesHandleQueryUnknownIDWritesError(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewFavoritesController(ctx)
	conn := &fakeConnection{}

	c.handleQuery(conn, [][]byte{nil, []byte("250")})

	require.Equal(t, []string{"(ERROR)"}, conn.strings())
}

func TestFavoritesHandleQueryReportsCurrentName(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewFavoritesController(ctx)
	conn := &fakeConnection{}

	c.handleQuery(conn, [][]byte{nil, []byte("2")})

	require.Equal(t, []string{string(protocol.RenderFavoriteSetName(2, "Favorite Name 2"))}, conn.strings())
}

func TestFavoritesResetToDefaultsRegeneratesNames(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewFavoritesController(ctx)

	f, err := ctx.state.Favorites.Get(1)
	require.NoError(t, err)
	_, serr := f.SetName("Movie Night")
	require.Nil(t, serr)

	c.ResetToDefaults()

	f, err = ctx.state.Favorites.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Favorite Name 1", f.Name())
}
