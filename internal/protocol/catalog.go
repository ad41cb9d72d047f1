package protocol

import "regexp"

// Entry is one row of the static command catalog: a compiled pattern, the
// capture count a handler may rely on, and whether a frame of this shape
// can arrive unsolicited (a notification) as opposed to only ever being a
// client-issued request. Per Design Notes §9 these tables are built once as
// immutable package-level values, never lazily Init-ed singletons.
type Entry struct {
	Name         string
	Pattern      *regexp.Regexp
	Captures     int
	Notification bool
}

func entry(name, pattern string, captures int, notification bool) Entry {
	return Entry{Name: name, Pattern: regexp.MustCompile(pattern), Captures: captures, Notification: notification}
}

// Catalog is the complete verb table in sub-controller registration order:
// Configuration, FrontPanel, Infrared, Network, Sources, Favorites,
// EqualizerPresets, Zones, Groups, then the universal error response. The
// Dispatcher walks it in this order and stops at the first match, so any
// two patterns that could both match the same frame must be ordered with
// the narrower one first — see the QE/QF collision note in
// catalog_equalizerpresets.go and catalog_frontpanel.go.
var Catalog = buildCatalog()

func buildCatalog() []Entry {
	all := make([]Entry, 0, 128)
	all = append(all, configurationEntries...)
	all = append(all, frontPanelEntries...)
	all = append(all, infraredEntries...)
	all = append(all, networkEntries...)
	all = append(all, sourceEntries...)
	all = append(all, favoriteEntries...)
	all = append(all, equalizerPresetEntries...)
	all = append(all, zoneEntries...)
	all = append(all, groupEntries...)
	all = append(all, errorEntries...)
	return all
}

// Find returns the first entry whose pattern matches body, and its capture
// submatches (body included at index 0, per regexp.FindSubmatch), in
// catalog registration order. It reports false if nothing matched.
func Find(body []byte) (Entry, [][]byte, bool) {
	for _, e := range Catalog {
		if m := e.Pattern.FindSubmatch(body); m != nil {
			return e, m, true
		}
	}
	return Entry{}, nil, false
}

var errorEntries = []Entry{
	entry("Error", `^ERROR$`, 0, false),
}

// MustEntry returns the catalog entry with the given Name, panicking if
// none exists. Sub-controllers use it at registration time so the
// dispatcher binds to the exact same compiled pattern Find matches
// against, instead of duplicating the regex literal.
func MustEntry(name string) Entry {
	for _, e := range Catalog {
		if e.Name == name {
			return e
		}
	}
	panic("protocol: no catalog entry named " + name)
}
