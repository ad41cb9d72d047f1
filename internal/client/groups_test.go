package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestGroupsClientQueryParsesMembership(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(QG2)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NG2,"Upstairs"`)))
		writeFrame(t, srv, protocol.Wrap([]byte("G2,+1")))
		writeFrame(t, srv, protocol.Wrap([]byte("G2,+3")))
		writeFrame(t, srv, protocol.Wrap([]byte("QGR2")))
	}()

	snap, err := c.Groups.Query(ctx(t), 2)
	require.NoError(t, err)
	require.Equal(t, model.Identifier(2), snap.ID)
	require.Equal(t, "Upstairs", snap.Name)
	require.Equal(t, []model.Identifier{1, 3}, snap.ZoneIDs)
}

func TestGroupsClientQueryEmptyMembership(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		readFrame(t, srv)
		writeFrame(t, srv, protocol.Wrap([]byte(`NG4,"Empty"`)))
		writeFrame(t, srv, protocol.Wrap([]byte("QGR4")))
	}()

	snap, err := c.Groups.Query(ctx(t), 4)
	require.NoError(t, err)
	require.Equal(t, "Empty", snap.Name)
	require.Empty(t, snap.ZoneIDs)
}

func TestGroupsClientAddZone(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(G2,+5)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("G2,+5")))
	}()

	err := c.Groups.AddZone(ctx(t), 2, 5)
	require.NoError(t, err)
}

func TestGroupsClientIncreaseVolumeReflectsRequestShape(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(GVU2,U)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("GVU2,U")))
	}()

	err := c.Groups.IncreaseVolume(ctx(t), 2)
	require.NoError(t, err)
}

func TestGroupsClientSetName(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, `(NG6,"Outdoor")`, readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NG6,"Outdoor"`)))
	}()

	name, err := c.Groups.SetName(ctx(t), 6, "Outdoor")
	require.NoError(t, err)
	require.Equal(t, "Outdoor", name)
}
