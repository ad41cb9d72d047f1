package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestZonesClientQueryParsesFullSnapshot(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(QZ5)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NZ5,"Kitchen"`)))
		writeFrame(t, srv, protocol.Wrap([]byte("BP5,R10")))
		writeFrame(t, srv, protocol.Wrap([]byte("C5,2")))
		writeFrame(t, srv, protocol.Wrap([]byte("VU-20,5")))
		writeFrame(t, srv, protocol.Wrap([]byte("UU5")))
		writeFrame(t, srv, protocol.Wrap([]byte("VF5,0")))
		writeFrame(t, srv, protocol.Wrap([]byte("SM5,3")))
		writeFrame(t, srv, protocol.Wrap([]byte("TO5,2,-4")))
		writeFrame(t, srv, protocol.Wrap([]byte("QZR5")))
	}()

	snap, err := c.Zones.Query(ctx(t), 5)
	require.NoError(t, err)
	require.Equal(t, model.Identifier(5), snap.ID)
	require.Equal(t, "Kitchen", snap.Name)
	require.Equal(t, int8(10), snap.Balance)
	require.Equal(t, model.Identifier(2), snap.SourceID)
	require.Equal(t, int8(-20), snap.VolumeLevel)
	require.False(t, snap.Mute)
	require.False(t, snap.VolumeFixed)
	require.Equal(t, model.SoundModeTone, snap.SoundMode)
	require.Equal(t, int8(2), snap.ToneBass)
	require.Equal(t, int8(-4), snap.ToneTreble)
}

func TestZonesClientQueryNegativeBalanceIsLeftTagged(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		readFrame(t, srv)
		writeFrame(t, srv, protocol.Wrap([]byte(`NZ1,"Den"`)))
		writeFrame(t, srv, protocol.Wrap([]byte("BP1,L15")))
		writeFrame(t, srv, protocol.Wrap([]byte("QZR1")))
	}()

	snap, err := c.Zones.Query(ctx(t), 1)
	require.NoError(t, err)
	require.Equal(t, int8(-15), snap.Balance)
}

func TestZonesClientQueryVolume(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(QZV3)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("VU-10,3")))
	}()

	level, err := c.Zones.QueryVolume(ctx(t), 3)
	require.NoError(t, err)
	require.Equal(t, int8(-10), level)
}

func TestZonesClientSetVolume(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(VU-5,4)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("VU-5,4")))
	}()

	level, err := c.Zones.SetVolume(ctx(t), 4, -5)
	require.NoError(t, err)
	require.Equal(t, int8(-5), level)
}

func TestZonesClientIncreaseVolumeReflectsRequestShape(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(VUU,6)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("VUU,6")))
	}()

	err := c.Zones.IncreaseVolume(ctx(t), 6)
	require.NoError(t, err)
}

func TestZonesClientMute(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(MU2)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("MU2")))
	}()

	err := c.Zones.Mute(ctx(t), 2, true)
	require.NoError(t, err)
}

func TestZonesClientToggleMute(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(MT2)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("UU2")))
	}()

	muted, err := c.Zones.ToggleMute(ctx(t), 2)
	require.NoError(t, err)
	require.False(t, muted)
}

func TestZonesClientSetBassUsesItsOwnResponseShape(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(TB7,3)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("TB7,3")))
	}()

	err := c.Zones.SetBass(ctx(t), 7, 3)
	require.NoError(t, err)
}

func TestZonesClientSetTreble(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(TT7,-2)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("TT7,-2")))
	}()

	err := c.Zones.SetTreble(ctx(t), 7, -2)
	require.NoError(t, err)
}

func TestZonesClientSetEqualizerBand(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(EB1,3,5)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("EB1,3,5")))
	}()

	err := c.Zones.SetEqualizerBand(ctx(t), 1, 3, 5)
	require.NoError(t, err)
}

func TestZonesClientSetName(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, `(NZ9,"Garage")`, readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NZ9,"Garage"`)))
	}()

	name, err := c.Zones.SetName(ctx(t), 9, "Garage")
	require.NoError(t, err)
	require.Equal(t, "Garage", name)
}
