package server

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/protocol"
	"github.com/openhlx/hlxgo/internal/transport"
)

// connAdapter narrows a transport.Connection's io.Writer-shaped Write
// (returning a byte count) down to the single-error Write the Dispatcher
// hands every sub-controller. The two are not structurally identical, so
// an explicit adapter is required to put a transport.Connection behind
// dispatch.Connection.
type connAdapter struct {
	transport.Connection
}

func (a connAdapter) Write(frame []byte) error {
	_, err := a.Connection.Write(frame)
	return err
}

// ConnectionManager accepts and tracks every live transport.Connection
// under a google/uuid identifier, running each one's read-and-frame loop
// and handing decoded frame bodies to the shared Dispatcher. It is the
// server-side counterpart to the client's exchange.Manager: where that
// owns one outstanding request per connection, this owns the fan-in of
// many concurrent connections onto one dispatcher.
type ConnectionManager struct {
	log  *slog.Logger
	disp *dispatch.Dispatcher

	mu    sync.Mutex
	conns map[uuid.UUID]transport.Connection
}

func NewConnectionManager(disp *dispatch.Dispatcher, log *slog.Logger) *ConnectionManager {
	return &ConnectionManager{log: log, disp: disp, conns: make(map[uuid.UUID]transport.Connection)}
}

// Serve takes ownership of conn: it registers it, blocks running its read
// loop until disconnect or read error, then deregisters and closes it.
// Callers run it in its own goroutine per accepted connection.
func (m *ConnectionManager) Serve(conn transport.Connection) {
	id := uuid.New()
	m.mu.Lock()
	m.conns[id] = conn
	m.mu.Unlock()
	m.log.Info("server: connection accepted", "id", id, "remote", conn.RemoteAddr())

	defer func() {
		m.mu.Lock()
		delete(m.conns, id)
		m.mu.Unlock()
		_ = conn.Close()
		m.log.Info("server: connection closed", "id", id, "remote", conn.RemoteAddr())
	}()

	adapter := connAdapter{conn}
	var framer protocol.Framer
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			frames, ferrs := framer.Feed(buf[:n])
			for _, ferr := range ferrs {
				m.log.Warn("server: frame error", "id", id, "err", ferr)
			}
			for _, body := range frames {
				m.disp.OnFrame(adapter, body)
			}
		}
		if err != nil {
			return
		}
	}
}

// Len reports the number of currently active connections.
func (m *ConnectionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns)
}

// Broadcast writes frame to every active connection. Used for unsolicited
// notifications that must reach every listener rather than only the
// connection that triggered them.
func (m *ConnectionManager) Broadcast(frame []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, conn := range m.conns {
		if _, err := conn.Write(frame); err != nil {
			m.log.Warn("server: broadcast write failed", "id", id, "err", err)
		}
	}
}
