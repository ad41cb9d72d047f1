package protocol

import (
	"fmt"
	"net"
)

// Network is query-only on the wire (§4.2): the device's address
// configuration is platform-captured, never set by a client command. The
// bare QE request is mutually exclusive with EqualizerPresets' QE<id>
// (catalog_equalizerpresets.go) by capture count, same pattern as the
// QF collision in catalog_frontpanel.go.
var networkEntries = []Entry{
	entry("NetworkQuery", `^QE$`, 0, false),
	entry("NetworkQueryEnd", `^QER$`, 0, true),
	entry("NetworkDHCPv4Enabled", `^DHCP([01])$`, 1, true),
	entry("NetworkEthernetEUI48", `^MAC([0-9A-Fa-f]{2}(?:-[0-9A-Fa-f]{2}){5})$`, 1, true),
	entry("NetworkHostIP", `^IP(\d{1,3}(?:\.\d{1,3}){3})$`, 1, true),
	entry("NetworkDefaultRouterIP", `^GW(\d{1,3}(?:\.\d{1,3}){3})$`, 1, true),
	entry("NetworkNetmask", `^NM(\d{1,3}(?:\.\d{1,3}){3})$`, 1, true),
	entry("NetworkSDDPEnabled", `^SDDP([01])$`, 1, true),
}

// RenderNetworkQuery renders the (QE) request body.
func RenderNetworkQuery() []byte { return Wrap([]byte("QE")) }

// RenderNetworkQueryEnd renders the network snapshot's query-sequence
// terminator, the same closing-frame shape FrontPanelQueryEnd uses.
func RenderNetworkQueryEnd() []byte { return Wrap([]byte("QER")) }

// RenderNetworkDHCPv4Enabled renders (DHCP<0|1>).
func RenderNetworkDHCPv4Enabled(enabled bool) []byte {
	return Wrap([]byte(fmt.Sprintf("DHCP%d", boolDigit(enabled))))
}

// RenderNetworkEthernetEUI48 renders (MACxx-xx-xx-xx-xx-xx).
func RenderNetworkEthernetEUI48(eui [6]byte) []byte {
	return Wrap([]byte(fmt.Sprintf("MAC%02X-%02X-%02X-%02X-%02X-%02X",
		eui[0], eui[1], eui[2], eui[3], eui[4], eui[5])))
}

// RenderNetworkHostIP renders (IP<addr>).
func RenderNetworkHostIP(ip net.IP) []byte { return Wrap([]byte("IP" + ip.String())) }

// RenderNetworkDefaultRouterIP renders (GW<addr>).
func RenderNetworkDefaultRouterIP(ip net.IP) []byte { return Wrap([]byte("GW" + ip.String())) }

// RenderNetworkNetmask renders (NM<addr>).
func RenderNetworkNetmask(ip net.IP) []byte { return Wrap([]byte("NM" + ip.String())) }

// RenderNetworkSDDPEnabled renders (SDDP<0|1>).
func RenderNetworkSDDPEnabled(enabled bool) []byte {
	return Wrap([]byte(fmt.Sprintf("SDDP%d", boolDigit(enabled))))
}
