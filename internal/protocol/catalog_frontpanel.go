package protocol

import "fmt"

// Front panel verbs. QF with no digits is the bare query; it is ordered
// ahead of Favorites' QF<id> (catalog_favorites.go) would-be collision only
// by virtue of the two patterns being mutually exclusive: QF requires zero
// captures and QF<id> requires one, so FindSubmatch disambiguates on
// digit presence rather than registration order.
var frontPanelEntries = []Entry{
	entry("FrontPanelQuery", `^QF$`, 0, false),
	entry("FrontPanelQueryEnd", `^QFR$`, 0, true),
	entry("FrontPanelSetBrightness", `^FB(\d)$`, 1, false),
	entry("FrontPanelSetLocked", `^FL([01])$`, 1, false),
}

// RenderFrontPanelQuery renders the (QF) request body.
func RenderFrontPanelQuery() []byte { return Wrap([]byte("QF")) }

// RenderFrontPanelQueryEnd renders the front panel's query-sequence
// terminator, mirroring ZoneQueryEnd: a Collect request needs a frame after
// the snapshot's last attribute to close on, since a terminator matching
// that attribute's own pattern would be consumed without ever reaching the
// caller (see DESIGN.md).
func RenderFrontPanelQueryEnd() []byte { return Wrap([]byte("QFR")) }

// RenderFrontPanelSetBrightness renders (FB<level>).
func RenderFrontPanelSetBrightness(level uint8) []byte {
	return Wrap([]byte(fmt.Sprintf("FB%d", level)))
}

// RenderFrontPanelSetLocked renders (FL<0|1>).
func RenderFrontPanelSetLocked(locked bool) []byte {
	return Wrap([]byte(fmt.Sprintf("FL%d", boolDigit(locked))))
}

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}
