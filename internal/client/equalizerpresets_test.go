package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestEqualizerPresetsClientQueryParsesAllBands(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(QE2)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NE2,"Flat"`)))
		for band := 1; band <= model.EqualizerBandsPerSet; band++ {
			level := 0
			if band == model.EqualizerBandsPerSet {
				level = -3
			}
			writeFrame(t, srv, protocol.RenderEqualizerPresetSetBand(2, band, level))
		}
		writeFrame(t, srv, protocol.RenderEqualizerPresetQueryEnd(2))
	}()

	snap, err := c.EqualizerPresets.Query(ctx(t), 2)
	require.NoError(t, err)
	require.Equal(t, "Flat", snap.Name)
	require.Equal(t, int8(-3), snap.Bands[model.EqualizerBandsPerSet-1])
	require.Equal(t, int8(0), snap.Bands[0])
}

func TestEqualizerPresetsClientSetBand(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(PB1,5,-2)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("PB1,5,-2")))
	}()

	level, err := c.EqualizerPresets.SetBand(ctx(t), 1, 5, -2)
	require.NoError(t, err)
	require.Equal(t, int8(-2), level)
}

func TestEqualizerPresetsClientSetName(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, `(NE3,"Rock")`, readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte(`NE3,"Rock"`)))
	}()

	name, err := c.EqualizerPresets.SetName(ctx(t), 3, "Rock")
	require.NoError(t, err)
	require.Equal(t, "Rock", name)
}
