package protocol

import "fmt"

// Groups. Membership (G<gid>,+/-<zid>) and the clear-all variant use the
// bracketed tokens documented for group control. The audio-attribute
// operations (Mute, ToggleMute, SetVolume, Increase/DecreaseVolume,
// SetSource) are given their own "G"-prefixed tokens distinct from the
// zone tokens they parallel (GM/GMT/GVU/GC vs zone's bare U|M U/MT/VU/C)
// rather than overloading one identifier namespace across two entity
// kinds — see DESIGN.md for why the catalog keeps zone and group
// patterns disjoint.
//
// Capture widths are taken from each submatch's own regexp group, never
// inferred from a sibling capture's length, avoiding a class of bug where
// "G10,+3" could be parsed using one capture's width to slice another.
var groupEntries = []Entry{
	entry("GroupQuery", `^QG(\d{1,2})$`, 1, false),
	entry("GroupQueryEnd", `^QGR(\d{1,2})$`, 1, true),
	entry("GroupSetName", `^NG(\d{1,2}),"([^"]*)"$`, 2, false),
	entry("GroupAddZone", `^G(\d{1,2}),\+(\d{1,2})$`, 2, false),
	entry("GroupRemoveZone", `^G(\d{1,2}),-(\d{1,2})$`, 2, false),
	entry("GroupClearZones", `^GZC(\d{1,2})$`, 1, false),
	entry("GroupMute", `^GM(\d{1,2}),([01])$`, 2, false),
	entry("GroupToggleMute", `^GMT(\d{1,2})$`, 1, false),
	entry("GroupSetVolume", `^GVU(\d{1,2}),(-?\d{1,3})$`, 2, false),
	entry("GroupAdjustVolume", `^GVU(\d{1,2}),([UD])$`, 2, false),
	entry("GroupSetSource", `^GC(\d{1,2}),(\d)$`, 2, false),
}

func RenderGroupQuery(id int) []byte { return Wrap([]byte(fmt.Sprintf("QG%d", id))) }

// RenderGroupQueryEnd renders the group query's sequence terminator,
// mirroring ZoneQueryEnd (catalog_zones.go): a group's membership list is
// variable-length, so the response needs an explicit close frame the way
// the fixed-shape per-attribute responses elsewhere in this catalog don't.
func RenderGroupQueryEnd(id int) []byte { return Wrap([]byte(fmt.Sprintf("QGR%d", id))) }

func RenderGroupSetName(id int, name string) []byte {
	return Wrap([]byte(fmt.Sprintf(`NG%d,"%s"`, id, name)))
}

func RenderGroupAddZone(group, zone int) []byte {
	return Wrap([]byte(fmt.Sprintf("G%d,+%d", group, zone)))
}

func RenderGroupRemoveZone(group, zone int) []byte {
	return Wrap([]byte(fmt.Sprintf("G%d,-%d", group, zone)))
}

func RenderGroupClearZones(group int) []byte { return Wrap([]byte(fmt.Sprintf("GZC%d", group))) }

func RenderGroupMute(group int, mute bool) []byte {
	return Wrap([]byte(fmt.Sprintf("GM%d,%d", group, boolDigit(mute))))
}

func RenderGroupToggleMute(group int) []byte { return Wrap([]byte(fmt.Sprintf("GMT%d", group))) }

func RenderGroupSetVolume(group int, level int8) []byte {
	return Wrap([]byte(fmt.Sprintf("GVU%d,%d", group, level)))
}

func RenderGroupIncreaseVolume(group int) []byte {
	return Wrap([]byte(fmt.Sprintf("GVU%d,U", group)))
}

func RenderGroupDecreaseVolume(group int) []byte {
	return Wrap([]byte(fmt.Sprintf("GVU%d,D", group)))
}

func RenderGroupSetSource(group, source int) []byte {
	return Wrap([]byte(fmt.Sprintf("GC%d,%d", group, source)))
}
