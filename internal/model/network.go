package model

import "net"

// Network is the device's network configuration. It is read-mostly on the
// wire: the server publishes it from captured platform state, and the
// client only ever caches it. There are no wire setters, so mutators here
// are unconditional assignments rather than validated Set* calls.
type Network struct {
	dhcpv4Enabled   bool
	ethernetEUI48   [6]byte
	hostIP          net.IP
	defaultRouterIP net.IP
	netmask         net.IP
	sddpEnabled     bool
}

// NewNetwork constructs a zero-value Network.
func NewNetwork() Network { return Network{} }

func (n Network) DHCPv4Enabled() bool      { return n.dhcpv4Enabled }
func (n Network) EthernetEUI48() [6]byte   { return n.ethernetEUI48 }
func (n Network) HostIP() net.IP           { return n.hostIP }
func (n Network) DefaultRouterIP() net.IP  { return n.defaultRouterIP }
func (n Network) Netmask() net.IP          { return n.netmask }
func (n Network) SDDPEnabled() bool        { return n.sddpEnabled }

func (n *Network) SetDHCPv4Enabled(enabled bool)     { n.dhcpv4Enabled = enabled }
func (n *Network) SetEthernetEUI48(mac [6]byte)      { n.ethernetEUI48 = mac }
func (n *Network) SetHostIP(ip net.IP)               { n.hostIP = ip }
func (n *Network) SetDefaultRouterIP(ip net.IP)      { n.defaultRouterIP = ip }
func (n *Network) SetNetmask(ip net.IP)              { n.netmask = ip }
func (n *Network) SetSDDPEnabled(enabled bool)        { n.sddpEnabled = enabled }
