package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestEqualizerPresetsHandleQueryWritesNameThenEveryBand(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewEqualizerPresetsController(ctx)
	conn := &fakeConnection{}

	c.handleQuery(conn, [][]byte{nil, []byte("1")})

	got := conn.strings()
	require.Len(t, got, 2+model.EqualizerBandsPerSet)
	require.Equal(t, string(protocol.RenderEqualizerPresetSetName(1, "Equalizer Preset Name 1")), got[0])
	require.Equal(t, "(QER1)", got[len(got)-1])
}

func TestEqualizerPresetsHandleSetBandRejectsOutOfRangeBand(t *testing.T) {
	ctx, dirty, _ := newTestContext(t)
	c := NewEqualizerPresetsController(ctx)
	conn := &fakeConnection{}

	c.handleSetBand(conn, [][]byte{nil, []byte("1"), []byte("99"), []byte("3")})

	require.Equal(t, []string{"(ERROR)"}, conn.strings())
	require.Equal(t, 0, dirty.marked)
}

func TestEqualizerPresetsHandleAdjustBandSaturatesAtMax(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewEqualizerPresetsController(ctx)

	p, err := ctx.state.Presets.Get(1)
	require.NoError(t, err)
	band, berr := p.Band(1)
	require.Nil(t, berr)
	_, serr := band.Set(model.EqualizerBandLevelMax)
	require.Nil(t, serr)

	conn := &fakeConnection{}
	c.handleAdjustBand(conn, [][]byte{nil, []byte("U"), []byte("1"), []byte("1")})

	require.Equal(t, []string{
		string(protocol.RenderEqualizerPresetSetBand(1, 1, int(model.EqualizerBandLevelMax))),
	}, conn.strings())
}

func TestEqualizerPresetsResetToDefaultsFlattensBands(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	c := NewEqualizerPresetsController(ctx)

	p, err := ctx.state.Presets.Get(1)
	require.NoError(t, err)
	band, berr := p.Band(1)
	require.Nil(t, berr)
	_, serr := band.Set(5)
	require.Nil(t, serr)

	c.ResetToDefaults()

	p, err = ctx.state.Presets.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Equalizer Preset Name 1", p.Name())
	band, berr = p.Band(1)
	require.Nil(t, berr)
	require.Equal(t, int8(0), band.Level())
}
