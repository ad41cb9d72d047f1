package client_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openhlx/hlxgo/internal/protocol"
)

func TestNetworkClientQuery(t *testing.T) {
	c, srv := newTestClient(t)

	go func() {
		require.Equal(t, "(QE)", readFrame(t, srv))
		writeFrame(t, srv, protocol.Wrap([]byte("DHCP1")))
		writeFrame(t, srv, protocol.Wrap([]byte("MAC00-11-22-33-44-55")))
		writeFrame(t, srv, protocol.Wrap([]byte("IP192.168.1.50")))
		writeFrame(t, srv, protocol.Wrap([]byte("GW192.168.1.1")))
		writeFrame(t, srv, protocol.Wrap([]byte("NM255.255.255.0")))
		writeFrame(t, srv, protocol.Wrap([]byte("SDDP0")))
		writeFrame(t, srv, protocol.RenderNetworkQueryEnd())
	}()

	snap, err := c.Network.Query(ctx(t))
	require.NoError(t, err)
	require.True(t, snap.DHCPv4Enabled)
	require.Equal(t, net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, snap.EthernetEUI48)
	require.Equal(t, "192.168.1.50", snap.HostIP.String())
	require.Equal(t, "192.168.1.1", snap.DefaultRouterIP.String())
	require.Equal(t, "255.255.255.0", snap.Netmask.String())
	require.False(t, snap.SDDPEnabled)
}
