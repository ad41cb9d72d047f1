package server

import (
	"log/slog"

	"github.com/openhlx/hlxgo/internal/backup"
	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/metrics"
	"github.com/openhlx/hlxgo/internal/model"
)

// Application is the composition root: it builds every sub-controller over
// one shared *model.State, wires them onto a single Dispatcher in the
// Catalog's documented registration order, runs the startup load sequence,
// and starts the autosave loop. cmd/hlxd's main constructs one Application
// and hands every accepted transport.Connection to its ConnectionManager.
type Application struct {
	Dispatcher    *dispatch.Dispatcher
	Connections   *ConnectionManager
	Configuration *ConfigurationController
	Zones         *ZonesController
	Groups        *GroupsController

	ctx          *controllerContext
	stopAutosave func()
}

// SetMetrics attaches m to every component that records a Prometheus
// metric: the Dispatcher (frames/duration) and the Configuration
// controller (save results). Optional; call once after New, before Start.
// cmd/hlxd additionally samples Connections.Len() into m.ConnectionsActive
// on its own ticker, since that gauge reflects the listener, not anything
// the controller graph owns.
func (a *Application) SetMetrics(m *metrics.Metrics) {
	a.Dispatcher.SetMetrics(m)
	a.ctx.metrics = m
}

// New builds the full controller graph. sink receives every state-change
// notification in dispatch order; it is typically an admin server's SSE
// broadcaster.
func New(store backup.Store, sink events.Sink, log *slog.Logger) *Application {
	state := model.DefaultState()
	disp := dispatch.New(log)

	ctx := &controllerContext{state: state, sink: sink, log: log}

	sources := NewSourcesController(ctx)
	favorites := NewFavoritesController(ctx)
	presets := NewEqualizerPresetsController(ctx)
	frontpanel := NewFrontPanelController(ctx)
	infrared := NewInfraredController(ctx)
	network := NewNetworkController(ctx)
	zones := NewZonesController(ctx)
	groups := NewGroupsController(ctx)
	orchestrator := NewOrchestrator(ctx, zones)
	config := NewConfigurationController(ctx, store,
		frontpanel, infrared, network, sources, favorites, presets, zones, groups,
	)
	ctx.dirty = config

	// Registration order follows protocol.Catalog's documented walk order
	// (Configuration, FrontPanel, Infrared, Network, Sources, Favorites,
	// EqualizerPresets, Zones, Groups) so that any future ambiguous pattern
	// resolves the same way here as it does in protocol.Find.
	config.Register(disp)
	frontpanel.Register(disp)
	infrared.Register(disp)
	network.Register(disp)
	sources.Register(disp)
	favorites.Register(disp)
	presets.Register(disp)
	zones.Register(disp)
	groups.Register(disp)
	orchestrator.Register(disp)

	network.Capture()

	return &Application{
		Dispatcher:    disp,
		Connections:   NewConnectionManager(disp, log),
		Configuration: config,
		Zones:         zones,
		Groups:        groups,
		ctx:           ctx,
	}
}

// Start runs the boot sequence: load-or-reset, then begin autosaving.
func (a *Application) Start() {
	a.Configuration.Bootstrap()
	a.stopAutosave = a.Configuration.StartAutosave(autosaveInterval)
}

// State exposes the shared model underlying every sub-controller. It
// exists for cmd/hlxsimd's seed-profile step, which needs to rename
// sources/zones/groups before the simulator's first save — nothing inside
// this package or internal/client ever needs a pointer to the state of a
// graph it already owns a piece of.
func (a *Application) State() *model.State {
	return a.ctx.state
}

// Dirty reports whether the running configuration has unsaved changes.
// Satisfies admin.StatusSource.
func (a *Application) Dirty() bool {
	return a.Configuration.Dirty()
}

// ConnectionCount reports the number of transport connections currently
// being served. Satisfies admin.StatusSource.
func (a *Application) ConnectionCount() int {
	return a.Connections.Len()
}

// Stop halts the autosave loop. It does not close active connections; the
// caller's listener shutdown is responsible for that.
func (a *Application) Stop() {
	if a.stopAutosave != nil {
		a.stopAutosave()
	}
}
