package protocol_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/openhlx/hlxgo/internal/protocol"
)

// TestCatalogRoundTrip checks §8's framing round-trip property for a
// representative sample of the catalog: render(args) then Find(result)
// yields an entry whose captures reproduce the rendered arguments.
func TestCatalogRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		zone := rapid.IntRange(1, 24).Draw(rt, "zone")
		level := int8(rapid.IntRange(-80, 0).Draw(rt, "level"))

		body := protocol.RenderZoneSetVolume(zone, level)
		entry, captures, ok := protocol.Find(stripBrackets(body))
		require.True(rt, ok)
		require.Equal(rt, "ZoneSetVolume", entry.Name)
		require.Equal(rt, entry.Captures, len(captures)-1)
		require.Equal(rt, strconv.Itoa(int(level)), string(captures[1]))
		require.Equal(rt, strconv.Itoa(zone), string(captures[2]))
	})
}

func TestCatalogBalanceNormalization(t *testing.T) {
	// parse("BP5,L40") -> (zone=5, balance=-40)
	entry, captures, ok := protocol.Find([]byte("BP5,L40"))
	require.True(t, ok)
	require.Equal(t, "ZoneSetBalance", entry.Name)
	require.Equal(t, "5", string(captures[1]))
	require.Equal(t, "L", string(captures[2]))
	require.Equal(t, "40", string(captures[3]))

	// render(zone=5, balance=-40) -> "BP5,L40"
	require.Equal(t, "(BP5,L40)", string(protocol.RenderZoneSetBalance(5, -40)))
	// render(zone=5, balance=0) -> "BP5,R0"
	require.Equal(t, "(BP5,R0)", string(protocol.RenderZoneSetBalance(5, 0)))
}

func TestCatalogQEDisambiguatesNetworkFromPreset(t *testing.T) {
	entry, _, ok := protocol.Find([]byte("QE"))
	require.True(t, ok)
	require.Equal(t, "NetworkQuery", entry.Name)

	entry, captures, ok := protocol.Find([]byte("QE3"))
	require.True(t, ok)
	require.Equal(t, "EqualizerPresetQuery", entry.Name)
	require.Equal(t, "3", string(captures[1]))
}

func TestCatalogQFDisambiguatesFrontPanelFromFavorite(t *testing.T) {
	entry, _, ok := protocol.Find([]byte("QF"))
	require.True(t, ok)
	require.Equal(t, "FrontPanelQuery", entry.Name)

	entry, captures, ok := protocol.Find([]byte("QF7"))
	require.True(t, ok)
	require.Equal(t, "FavoriteQuery", entry.Name)
	require.Equal(t, "7", string(captures[1]))
}

func TestCatalogUnmatchedFrameFindsNothing(t *testing.T) {
	_, _, ok := protocol.Find([]byte("NOTAVERB"))
	require.False(t, ok)
}

func TestCatalogGroupMembershipCapturesOwnWidth(t *testing.T) {
	// "G10,+3" must not slice the zone capture using the group capture's
	// length.
	entry, captures, ok := protocol.Find([]byte("G10,+3"))
	require.True(t, ok)
	require.Equal(t, "GroupAddZone", entry.Name)
	require.Equal(t, "10", string(captures[1]))
	require.Equal(t, "3", string(captures[2]))
}

func stripBrackets(frame []byte) []byte {
	return frame[1 : len(frame)-1]
}
