package server

import (
	"net"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// NetworkController is read-only on the wire: the only inbound verb is the
// bare query. Every other frame this controller renders is published from
// platform-captured state, never mutated by a client command (spec §4.5.6).
type NetworkController struct {
	*controllerContext
}

func NewNetworkController(ctx *controllerContext) *NetworkController {
	return &NetworkController{controllerContext: ctx}
}

func (c *NetworkController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("NetworkQuery").Pattern, c.handleQuery)
}

func (c *NetworkController) handleQuery(conn dispatch.Connection, _ [][]byte) {
	c.writeSnapshot(conn)
	_ = conn.Write(protocol.RenderNetworkQueryEnd())
}

func (c *NetworkController) writeSnapshot(conn dispatch.Connection) {
	n := c.state.Network
	_ = conn.Write(protocol.RenderNetworkDHCPv4Enabled(n.DHCPv4Enabled()))
	_ = conn.Write(protocol.RenderNetworkEthernetEUI48(n.EthernetEUI48()))
	_ = conn.Write(protocol.RenderNetworkHostIP(n.HostIP()))
	_ = conn.Write(protocol.RenderNetworkDefaultRouterIP(n.DefaultRouterIP()))
	_ = conn.Write(protocol.RenderNetworkNetmask(n.Netmask()))
	_ = conn.Write(protocol.RenderNetworkSDDPEnabled(n.SDDPEnabled()))
}

// QueryCurrent replays the network snapshot.
func (c *NetworkController) QueryCurrent(conn dispatch.Connection) {
	c.writeSnapshot(conn)
}

// ResetToDefaults re-captures platform network state; there is no
// device-side default distinct from what the host interface reports.
func (c *NetworkController) ResetToDefaults() {
	c.Capture()
}

// Capture reads the primary network interface's address configuration from
// the host and publishes it into the model. It uses only net.Interfaces
// and net.InterfaceAddrs — no third-party library does anything beyond
// what the standard library already provides for local interface
// enumeration, and nothing here needs platform network discovery of its
// own (the matrix is always told its address via config).
func (c *NetworkController) Capture() {
	ifaces, err := net.Interfaces()
	if err != nil {
		c.log.Warn("network: failed to enumerate interfaces", "err", err)
		return
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		if len(iface.HardwareAddr) != 6 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		var mac [6]byte
		copy(mac[:], iface.HardwareAddr)
		c.state.Network.SetEthernetEUI48(mac)

		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipNet.IP.To4()
			if ip4 == nil {
				continue
			}
			c.state.Network.SetHostIP(ip4)
			c.state.Network.SetNetmask(net.IP(ipNet.Mask))
			break
		}
		c.emit(events.KindNetwork, 0, c.state.Network)
		return
	}
	c.log.Warn("network: no usable non-loopback interface found")
}
