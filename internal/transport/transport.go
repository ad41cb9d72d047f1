// Package transport provides the byte-oriented connection abstraction the
// dispatcher and exchange manager run against: TCP, serial, and an
// in-process pipe for tests. The wire protocol itself (internal/protocol)
// has no opinion on which of these carries it, per spec §1/§6.
package transport

import "io"

// Connection is the minimal byte-stream contract both the server dispatcher
// and the client exchange manager need. It is satisfied by the TCP wrapper
// in tcp.go, the serial port wrapper in serial.go, and the memconn pipe.
type Connection interface {
	io.Reader
	io.Writer
	io.Closer
	// RemoteAddr names the peer, for logging and metrics labels; returns
	// an implementation-defined string for non-network transports such as
	// serial, where there is no address to report.
	RemoteAddr() string
}
