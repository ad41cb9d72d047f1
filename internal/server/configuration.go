package server

import (
	"sync"
	"time"

	"github.com/openhlx/hlxgo/internal/backup"
	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// replaceState copies every field of src into dst in place. The
// Application controller hands every sub-controller a pointer into one
// shared *model.State at construction time, so a freshly loaded or decoded
// State must be copied field-by-field into the existing one rather than
// swapped in by reassigning the pointer.
func replaceState(dst, src *model.State) {
	*dst.Sources = *src.Sources
	*dst.Zones = *src.Zones
	*dst.Groups = *src.Groups
	*dst.Presets = *src.Presets
	*dst.Favorites = *src.Favorites
	dst.FrontPanel = src.FrontPanel
	dst.Infrared = src.Infrared
	dst.Network = src.Network
}

// subsystem is implemented by every sub-controller Configuration fans a
// full-snapshot query or a factory reset out to.
type subsystem interface {
	QueryCurrent(conn dispatch.Connection)
	ResetToDefaults()
}

// ConfigurationController owns the backup lifecycle (spec §4.5.7): load at
// startup, the two-phase SaveStart/.../SaveEnd save protocol, the 30-second
// autosave timer gated on a dirty flag, and the full-snapshot query/reset
// fan-out across every other sub-controller. It also implements Dirtier —
// it is the one MarkDirty() every other controller's controllerContext
// shares.
type ConfigurationController struct {
	*controllerContext
	store      backup.Store
	subsystems []subsystem

	mu    sync.Mutex
	dirty bool
}

const autosaveInterval = 30 * time.Second

func NewConfigurationController(ctx *controllerContext, store backup.Store, subsystems ...subsystem) *ConfigurationController {
	return &ConfigurationController{controllerContext: ctx, store: store, subsystems: subsystems}
}

func (c *ConfigurationController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("LoadFromBackup").Pattern, c.handleLoad)
	d.Register(protocol.MustEntry("QueryCurrent").Pattern, c.handleQueryCurrent)
	d.Register(protocol.MustEntry("ResetToDefaults").Pattern, c.handleReset)
	d.Register(protocol.MustEntry("SaveToBackup").Pattern, c.handleSave)
}

// MarkDirty satisfies Dirtier. Every sub-controller's shared
// controllerContext.dirty points back at this controller.
func (c *ConfigurationController) MarkDirty() {
	c.mu.Lock()
	c.dirty = true
	c.mu.Unlock()
}

func (c *ConfigurationController) clearDirty() {
	c.mu.Lock()
	c.dirty = false
	c.mu.Unlock()
}

// Dirty reports whether the running configuration has unsaved changes.
// Exported for the admin status endpoint; internal callers use isDirty.
func (c *ConfigurationController) Dirty() bool {
	return c.isDirty()
}

func (c *ConfigurationController) isDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Bootstrap runs the startup load-or-reset sequence (spec §4.5.7): load the
// backing document, falling back to ResetToDefaults on any read, decode,
// or validation failure. Called once by the Application controller before
// accepting connections.
func (c *ConfigurationController) Bootstrap() {
	doc, err := c.store.Load()
	if err != nil {
		c.log.Error("configuration: failed to read backup, resetting to defaults", "path", c.store.Path(), "err", err)
		c.resetAndPersist()
		return
	}
	if doc == nil {
		c.log.Info("configuration: no backup document found, resetting to defaults", "path", c.store.Path())
		c.resetAndPersist()
		return
	}
	newState, derr := backup.Decode(doc)
	if derr != nil {
		c.log.Warn("configuration: backup document invalid, resetting to defaults", "path", c.store.Path(), "err", derr)
		c.resetAndPersist()
		return
	}
	replaceState(c.state, newState)
	c.clearDirty()
}

// resetAndPersist fans ResetToDefaults out to every sub-controller and
// writes the freshly reset document immediately, rather than leaving it to
// the next autosave tick: a first-boot or corrupted-backup simulator must
// not leave the backing store holding a stale or missing document.
func (c *ConfigurationController) resetAndPersist() {
	c.ResetToDefaults()
	if err := c.persist(); err != nil {
		c.log.Error("configuration: failed to persist reset document", "path", c.store.Path(), "err", err)
	}
}

func (c *ConfigurationController) handleLoad(conn dispatch.Connection, _ [][]byte) {
	c.Bootstrap()
	_ = conn.Write(protocol.RenderLoadFromBackup())
}

// handleQueryCurrent fans QueryCurrent out to every sub-controller in
// registration order, then writes the sequence terminator.
func (c *ConfigurationController) handleQueryCurrent(conn dispatch.Connection, _ [][]byte) {
	for _, s := range c.subsystems {
		s.QueryCurrent(conn)
	}
	_ = conn.Write(protocol.RenderQueryCurrentEnd())
}

func (c *ConfigurationController) handleReset(conn dispatch.Connection, _ [][]byte) {
	c.ResetToDefaults()
	_ = conn.Write(protocol.RenderResetToDefaults())
}

// ResetToDefaults fans a factory reset out to every sub-controller and
// marks the configuration dirty so the reset is persisted on the next
// save.
func (c *ConfigurationController) ResetToDefaults() {
	for _, s := range c.subsystems {
		s.ResetToDefaults()
	}
	c.controllerContext.dirty.MarkDirty()
}

func (c *ConfigurationController) handleSave(conn dispatch.Connection, _ [][]byte) {
	_ = conn.Write(protocol.RenderSaveStart())
	if err := c.persist(); err != nil {
		c.log.Error("configuration: save failed", "path", c.store.Path(), "err", err)
		_ = conn.Write(protocol.RenderError())
		return
	}
	_ = conn.Write(protocol.RenderSaveEnd())
}

func (c *ConfigurationController) persist() error {
	doc := backup.Encode(c.state)
	if err := c.store.Save(doc); err != nil {
		c.metrics.ObserveConfigSave("error")
		return err
	}
	c.clearDirty()
	c.emit(events.KindConfigurationSaved, 0, nil)
	c.metrics.ObserveConfigSave("ok")
	return nil
}

// StartAutosave runs the 30-second dirty-gated autosave loop (spec §4.5.7)
// until the returned function is called. It performs no wire writes: there
// is no connection tied to an autosave tick.
func (c *ConfigurationController) StartAutosave(interval time.Duration) (stop func()) {
	stopCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !c.isDirty() {
					continue
				}
				if err := c.persist(); err != nil {
					c.log.Error("configuration: autosave failed", "path", c.store.Path(), "err", err)
					continue
				}
				c.log.Info("configuration: autosave complete", "path", c.store.Path())
			case <-stopCh:
				return
			}
		}
	}()
	return func() { close(stopCh) }
}
