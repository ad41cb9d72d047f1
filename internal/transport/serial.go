package transport

import (
	"fmt"

	"go.bug.st/serial"
)

// serialConnection adapts a go.bug.st/serial port to Connection, for the
// RS-232 control-port mode spec §1 lists alongside the TCP listener.
type serialConnection struct {
	port serial.Port
	dev  string
}

func (c *serialConnection) Read(p []byte) (int, error)  { return c.port.Read(p) }
func (c *serialConnection) Write(p []byte) (int, error) { return c.port.Write(p) }
func (c *serialConnection) Close() error                { return c.port.Close() }

// RemoteAddr has no meaning for a point-to-point serial line; it reports the
// device path so logs and metrics labels still have something to key on.
func (c *serialConnection) RemoteAddr() string { return c.dev }

// DefaultBaudRate is the HLX matrix's documented serial control-port speed.
const DefaultBaudRate = 115200

// OpenSerial opens dev (e.g. "/dev/ttyUSB0") at baud 8N1, the framing the
// matrix's RS-232 port uses. baud of 0 selects DefaultBaudRate.
func OpenSerial(dev string, baud int) (Connection, error) {
	if baud == 0 {
		baud = DefaultBaudRate
	}
	port, err := serial.Open(dev, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", dev, err)
	}
	return &serialConnection{port: port, dev: dev}, nil
}
