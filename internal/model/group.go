package model

import "sort"

// MaxGroups is the largest valid group identifier.
const MaxGroups = 10

// Group is a named set of zone identifiers operated on collectively. It is
// stateless with respect to audio attributes — volume, mute, and source
// always delegate to member zones via the orchestrator.
type Group struct {
	id    Identifier
	name  Name
	zones map[Identifier]struct{}
}

// NewGroup constructs an empty group.
func NewGroup(id Identifier, name string) Group {
	return Group{id: id, name: NewName(name), zones: make(map[Identifier]struct{})}
}

func (g Group) ID() Identifier { return g.id }
func (g Group) Name() string   { return g.name.String() }

// SetName validates and assigns a new group name.
func (g *Group) SetName(name string) (Status, *Error) { return g.name.Set(name) }

// HasZone reports whether id is a member of the group.
func (g Group) HasZone(id Identifier) bool {
	_, ok := g.zones[id]
	return ok
}

// ZoneIDs returns the group's membership in ascending order.
func (g Group) ZoneIDs() []Identifier {
	ids := make([]Identifier, 0, len(g.zones))
	for id := range g.zones {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AddZone adds id to the membership set.
func (g *Group) AddZone(id Identifier) (Status, *Error) {
	if _, ok := g.zones[id]; ok {
		return StatusValueAlreadySet, nil
	}
	g.zones[id] = struct{}{}
	return StatusSuccess, nil
}

// RemoveZone removes id from the membership set. Removing a zone from its
// last referring group never deletes the zone itself — the zone model is
// untouched by group membership changes.
func (g *Group) RemoveZone(id Identifier) (Status, *Error) {
	if _, ok := g.zones[id]; !ok {
		return StatusValueAlreadySet, nil
	}
	delete(g.zones, id)
	return StatusSuccess, nil
}

// ClearZones empties the membership set.
func (g *Group) ClearZones() (Status, *Error) {
	if len(g.zones) == 0 {
		return StatusValueAlreadySet, nil
	}
	g.zones = make(map[Identifier]struct{})
	return StatusSuccess, nil
}
