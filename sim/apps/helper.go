package apps

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/netsim-go/netsim/sim"
)

// assignment is one recorded SetAttribute call, applied at Install time.
type assignment struct {
	name string
	text string
}

func apply(obj sim.Object, assignments []assignment) error {
	for _, a := range assignments {
		if err := sim.SetAttribute(obj, a.name, a.text); err != nil {
			return fmt.Errorf("applying %s=%q: %w", a.name, a.text, err)
		}
		logrus.Debugf("apps: applied %s=%q to %T", a.name, a.text, obj)
	}
	return nil
}

// UdpServerHelper builds UdpServer instances from recorded attribute
// assignments, so scenario code can configure applications without touching
// their fields.
type UdpServerHelper struct {
	assignments []assignment
}

// NewUdpServerHelper builds a helper listening on port.
func NewUdpServerHelper(port int64) *UdpServerHelper {
	h := &UdpServerHelper{}
	h.SetAttribute("Port", fmt.Sprintf("%d", port))
	return h
}

// SetAttribute records an attribute assignment for every server this helper
// installs. Invalid assignments surface as an Install error.
func (h *UdpServerHelper) SetAttribute(name, text string) {
	h.assignments = append(h.assignments, assignment{name: name, text: text})
}

// Install builds and configures one server.
func (h *UdpServerHelper) Install() (*UdpServer, error) {
	s := NewUdpServer()
	if err := apply(s, h.assignments); err != nil {
		return nil, err
	}
	return s, nil
}

// UdpClientHelper builds UdpClient instances from recorded attribute
// assignments.
type UdpClientHelper struct {
	assignments []assignment
}

// NewUdpClientHelper builds a helper targeting address and port.
func NewUdpClientHelper(address string, port int64) *UdpClientHelper {
	h := &UdpClientHelper{}
	h.SetAttribute("Remote", fmt.Sprintf("%s %d", address, port))
	return h
}

// SetAttribute records an attribute assignment for every client this helper
// installs.
func (h *UdpClientHelper) SetAttribute(name, text string) {
	h.assignments = append(h.assignments, assignment{name: name, text: text})
}

// Install builds and configures one client.
func (h *UdpClientHelper) Install() (*UdpClient, error) {
	c := NewUdpClient()
	if err := apply(c, h.assignments); err != nil {
		return nil, err
	}
	return c, nil
}
