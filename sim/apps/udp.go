// Package apps provides UDP client/server application shells and the
// helpers that configure them through the attribute framework. The shells
// carry the configuration surface of the real applications; packet
// transmission itself lives in the protocol stack, outside this package.
package apps

import (
	"time"

	"github.com/netsim-go/netsim/sim"
)

const maxPort = 65535

// UdpServer waits for packets on a port and accounts delay and loss from
// the sequence numbers and timestamps carried in their payload.
type UdpServer struct {
	Port int64
}

// NewUdpServer builds a server on the default port 100.
func NewUdpServer() *UdpServer {
	return &UdpServer{Port: 100}
}

func (s *UdpServer) Attributes() []sim.Attribute {
	return []sim.Attribute{
		{
			Name: "Port",
			Help: "Port on which the server listens for incoming packets.",
			Accessor: sim.MakeFieldAccessor[*sim.IntegerValue](
				func(s *UdpServer) *int64 { return &s.Port },
			),
			Checker: sim.MakeIntegerCheckerWithRange(0, maxPort),
		},
	}
}

// UdpClient sends packets carrying a sequence number and a timestamp to a
// remote server.
type UdpClient struct {
	RemoteAddress string
	RemotePort    int64
	MaxPackets    int64
	Interval      time.Duration
	PacketSize    int64
}

// NewUdpClient builds a client with the default packet schedule.
func NewUdpClient() *UdpClient {
	return &UdpClient{
		MaxPackets: 100,
		Interval:   time.Second,
		PacketSize: 1024,
	}
}

func (c *UdpClient) Attributes() []sim.Attribute {
	return []sim.Attribute{
		{
			Name: "Remote",
			Help: "Destination as an address/port pair, e.g. \"10.0.0.1 9000\".",
			Accessor: sim.MakePairFieldAccessor[*sim.StringValue, *sim.IntegerValue](
				func(c *UdpClient) (*string, *int64) { return &c.RemoteAddress, &c.RemotePort },
			),
			Checker: sim.MakePairCheckerWith[*sim.StringValue, *sim.IntegerValue, string, int64](
				sim.MakeStringChecker(), sim.MakeIntegerCheckerWithRange(0, maxPort)),
		},
		{
			Name: "MaxPackets",
			Help: "Maximum number of packets the application sends.",
			Accessor: sim.MakeFieldAccessor[*sim.IntegerValue](
				func(c *UdpClient) *int64 { return &c.MaxPackets },
			),
			Checker: sim.MakeIntegerCheckerWithRange(0, 1<<31-1),
		},
		{
			Name: "Interval",
			Help: "Time between packets.",
			Accessor: sim.MakeFieldAccessor[*sim.TimeValue](
				func(c *UdpClient) *time.Duration { return &c.Interval },
			),
			Checker: sim.MakeTimeChecker(),
		},
		{
			Name: "PacketSize",
			Help: "Payload size in bytes, timestamp and sequence header included.",
			Accessor: sim.MakeFieldAccessor[*sim.IntegerValue](
				func(c *UdpClient) *int64 { return &c.PacketSize },
			),
			Checker: sim.MakeIntegerCheckerWithRange(12, 65507),
		},
	}
}
