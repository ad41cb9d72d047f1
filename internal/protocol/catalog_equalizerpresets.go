package protocol

import "fmt"

// EqualizerPresets. QE<id> requires a capture and so never matches the bare
// network QE (catalog_network.go). Band editing on a preset uses a PB
// ("preset band") prefix distinct from the zone-addressed EB token
// (catalog_zones.go): the raw HLX dialect does not spell out a separate
// preset-band token, so this repo mints one rather than overload EB
// across two different identifier namespaces.
var equalizerPresetEntries = []Entry{
	entry("EqualizerPresetQuery", `^QE(\d{1,2})$`, 1, false),
	entry("EqualizerPresetQueryEnd", `^QER(\d{1,2})$`, 1, true),
	entry("EqualizerPresetSetName", `^NE(\d{1,2}),"([^"]*)"$`, 2, false),
	entry("EqualizerPresetSetBand", `^PB(\d{1,2}),(\d{1,2}),(-?\d{1,2})$`, 3, false),
	entry("EqualizerPresetAdjustBand", `^PB([UD])(\d{1,2}),(\d{1,2})$`, 3, false),
}

// RenderEqualizerPresetQuery renders (QE<id>).
func RenderEqualizerPresetQuery(id int) []byte { return Wrap([]byte(fmt.Sprintf("QE%d", id))) }

// RenderEqualizerPresetQueryEnd renders the preset's query-sequence
// terminator, closing the fixed EqualizerBandsPerSet-band response the same
// way FrontPanelQueryEnd closes the front panel's two-frame one.
func RenderEqualizerPresetQueryEnd(id int) []byte { return Wrap([]byte(fmt.Sprintf("QER%d", id))) }

// RenderEqualizerPresetSetName renders (NE<id>,"<name>").
func RenderEqualizerPresetSetName(id int, name string) []byte {
	return Wrap([]byte(fmt.Sprintf(`NE%d,"%s"`, id, name)))
}

// RenderEqualizerPresetSetBand renders (PB<id>,<band>,<level>).
func RenderEqualizerPresetSetBand(id, band, level int) []byte {
	return Wrap([]byte(fmt.Sprintf("PB%d,%d,%d", id, band, level)))
}

// RenderEqualizerPresetIncreaseBand renders (PBU<id>,<band>).
func RenderEqualizerPresetIncreaseBand(id, band int) []byte {
	return Wrap([]byte(fmt.Sprintf("PBU%d,%d", id, band)))
}

// RenderEqualizerPresetDecreaseBand renders (PBD<id>,<band>).
func RenderEqualizerPresetDecreaseBand(id, band int) []byte {
	return Wrap([]byte(fmt.Sprintf("PBD%d,%d", id, band)))
}
