package transport

import "net"

// memConnection adapts one end of an in-process net.Pipe to Connection, for
// exercising the dispatcher and exchange manager without a real socket.
type memConnection struct {
	conn net.Conn
	name string
}

func (c *memConnection) Read(p []byte) (int, error)  { return c.conn.Read(p) }
func (c *memConnection) Write(p []byte) (int, error) { return c.conn.Write(p) }
func (c *memConnection) Close() error                { return c.conn.Close() }
func (c *memConnection) RemoteAddr() string          { return c.name }

// Pipe returns a connected pair of in-process Connections, analogous to
// net.Pipe but satisfying the transport.Connection contract on both ends.
func Pipe() (client, server Connection) {
	c, s := net.Pipe()
	return &memConnection{conn: c, name: "memconn-client"}, &memConnection{conn: s, name: "memconn-server"}
}
