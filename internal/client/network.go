package client

import (
	"context"
	"net"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// NetworkClient issues the one query verb catalog_network.go defines.
// Network is read-only on the wire (spec §4.5.6) — there is no setter to
// mirror the sink-reported attributes this snapshot carries.
type NetworkClient struct{ *clientContext }

// NetworkSnapshot is the host's captured network configuration.
type NetworkSnapshot struct {
	DHCPv4Enabled   bool
	EthernetEUI48   net.HardwareAddr
	HostIP          net.IP
	DefaultRouterIP net.IP
	Netmask         net.IP
	SDDPEnabled     bool
}

// Query issues (QE) and collects the fixed six-frame response through its
// NetworkQueryEnd terminator (see FrontPanelClient.Query for why the
// terminator can't be the last attribute's own pattern).
func (c *NetworkClient) Query(ctx context.Context) (NetworkSnapshot, error) {
	frames, err := c.collect(ctx, exchange.Request{
		Frame:      protocol.RenderNetworkQuery(),
		Terminator: protocol.MustEntry("NetworkQueryEnd").Pattern,
		ReadOnly:   true,
	})
	if err != nil {
		return NetworkSnapshot{}, err
	}
	var snap NetworkSnapshot
	for _, f := range frames {
		switch f.Entry.Name {
		case "NetworkDHCPv4Enabled":
			snap.DHCPv4Enabled = parseBoolCapture(f.Captures[1])
		case "NetworkEthernetEUI48":
			mac, err := net.ParseMAC(string(f.Captures[1]))
			if err == nil {
				snap.EthernetEUI48 = mac
			}
		case "NetworkHostIP":
			snap.HostIP = net.ParseIP(string(f.Captures[1]))
		case "NetworkDefaultRouterIP":
			snap.DefaultRouterIP = net.ParseIP(string(f.Captures[1]))
		case "NetworkNetmask":
			snap.Netmask = net.ParseIP(string(f.Captures[1]))
		case "NetworkSDDPEnabled":
			snap.SDDPEnabled = parseBoolCapture(f.Captures[1])
		}
	}
	return snap, nil
}
