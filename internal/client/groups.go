package client

import (
	"context"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// GroupsClient issues the membership/naming verbs of catalog_groups.go and
// the five audio-attribute verbs the server-side Orchestrator intercepts —
// from the wire, both look like ordinary group commands.
type GroupsClient struct{ *clientContext }

// GroupSnapshot is a group's name and membership, the only state
// GroupQuery reports (per-zone audio attributes live on ZonesClient).
type GroupSnapshot struct {
	ID      model.Identifier
	Name    string
	ZoneIDs []model.Identifier
}

// Query issues (QG<id>) and collects the name-plus-membership sequence
// through its GroupQueryEnd terminator.
func (c *GroupsClient) Query(ctx context.Context, id model.Identifier) (GroupSnapshot, error) {
	frames, err := c.collect(ctx, exchange.Request{
		Frame:      protocol.RenderGroupQuery(int(id)),
		Terminator: protocol.MustEntry("GroupQueryEnd").Pattern,
		ReadOnly:   true,
	})
	if err != nil {
		return GroupSnapshot{}, err
	}
	snap := GroupSnapshot{ID: id}
	for _, f := range frames {
		switch f.Entry.Name {
		case "GroupSetName":
			snap.Name = parseNameCapture(f.Captures[2])
		case "GroupAddZone":
			n, _ := parseIntCapture(f.Captures[2])
			snap.ZoneIDs = append(snap.ZoneIDs, model.Identifier(n))
		}
	}
	return snap, nil
}

func (c *GroupsClient) SetName(ctx context.Context, id model.Identifier, name string) (string, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupSetName(int(id), name),
		Expect: protocol.MustEntry("GroupSetName").Pattern,
	})
	if err != nil {
		return "", err
	}
	return parseNameCapture(caps[2]), nil
}

func (c *GroupsClient) AddZone(ctx context.Context, id, zoneID model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupAddZone(int(id), int(zoneID)),
		Expect: protocol.MustEntry("GroupAddZone").Pattern,
	})
	return err
}

func (c *GroupsClient) RemoveZone(ctx context.Context, id, zoneID model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupRemoveZone(int(id), int(zoneID)),
		Expect: protocol.MustEntry("GroupRemoveZone").Pattern,
	})
	return err
}

func (c *GroupsClient) ClearZones(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupClearZones(int(id)),
		Expect: protocol.MustEntry("GroupClearZones").Pattern,
	})
	return err
}

// Mute, ToggleMute, SetVolume, AdjustVolume, and SetSource each respond by
// reflecting the request (the Orchestrator builds its response that way,
// never from post-fan-out per-zone state — see internal/server/orchestrator.go).
func (c *GroupsClient) Mute(ctx context.Context, id model.Identifier, mute bool) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupMute(int(id), mute),
		Expect: protocol.MustEntry("GroupMute").Pattern,
	})
	return err
}

func (c *GroupsClient) ToggleMute(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupToggleMute(int(id)),
		Expect: protocol.MustEntry("GroupToggleMute").Pattern,
	})
	return err
}

func (c *GroupsClient) SetVolume(ctx context.Context, id model.Identifier, level int8) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupSetVolume(int(id), level),
		Expect: protocol.MustEntry("GroupSetVolume").Pattern,
	})
	return err
}

func (c *GroupsClient) IncreaseVolume(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupIncreaseVolume(int(id)),
		Expect: protocol.MustEntry("GroupAdjustVolume").Pattern,
	})
	return err
}

func (c *GroupsClient) DecreaseVolume(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupDecreaseVolume(int(id)),
		Expect: protocol.MustEntry("GroupAdjustVolume").Pattern,
	})
	return err
}

func (c *GroupsClient) SetSource(ctx context.Context, id, source model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderGroupSetSource(int(id), int(source)),
		Expect: protocol.MustEntry("GroupSetSource").Pattern,
	})
	return err
}
