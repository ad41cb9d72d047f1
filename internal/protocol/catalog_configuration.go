package protocol

// Configuration verbs: backup lifecycle plus the full-snapshot query. The
// two-phase save response is the only command in the catalog whose handler
// is permitted to emit two response payloads: SaveStart precedes the
// write, SaveEnd follows it. QueryCurrentEnd and ZoneQueryEnd are sequence
// terminators for the multi-frame snapshot queries, spelled the same way
// as SaveStart/SaveEnd.
var configurationEntries = []Entry{
	entry("LoadFromBackup", `^LX$`, 0, false),
	entry("QueryCurrent", `^QX$`, 0, false),
	entry("QueryCurrentEnd", `^QXR$`, 0, true),
	entry("ResetToDefaults", `^RX$`, 0, false),
	entry("SaveToBackup", `^SX$`, 0, false),
	entry("SaveStart", `^SaveStart$`, 0, true),
	entry("SaveEnd", `^SaveEnd$`, 0, true),
}

// RenderLoadFromBackup renders the (LX) request body.
func RenderLoadFromBackup() []byte { return Wrap([]byte("LX")) }

// RenderQueryCurrent renders the (QX) request body.
func RenderQueryCurrent() []byte { return Wrap([]byte("QX")) }

// RenderQueryCurrentEnd renders the snapshot-sequence terminator.
func RenderQueryCurrentEnd() []byte { return Wrap([]byte("QXR")) }

// RenderResetToDefaults renders the (RX) request body.
func RenderResetToDefaults() []byte { return Wrap([]byte("RX")) }

// RenderSaveToBackup renders the (SX) request body.
func RenderSaveToBackup() []byte { return Wrap([]byte("SX")) }

// RenderSaveStart renders the "will save" notification frame.
func RenderSaveStart() []byte { return Wrap([]byte("SaveStart")) }

// RenderSaveEnd renders the "did save" response frame.
func RenderSaveEnd() []byte { return Wrap([]byte("SaveEnd")) }
