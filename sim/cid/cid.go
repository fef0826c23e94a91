// Package cid provides connection-identifier allocation for WiMAX-style
// base stations. Identifier ranges follow Table 345 of IEEE 802.16-2004:
// the 16-bit space is split into basic, primary and transport ranges by the
// parameter m, with multicast and reserved identifiers at the top.
package cid

import "fmt"

// Cid is a 16-bit connection identifier.
type Cid uint16

// Reserved identifiers and range boundaries.
const (
	InitialRanging   Cid = 0x0000
	MulticastBegin   Cid = 0xff00
	MulticastEnd     Cid = 0xfffd
	Padding          Cid = 0xfffe
	Broadcast        Cid = 0xffff
	transportCeiling Cid = 0xfefe
)

// Type classifies a connection identifier.
type Type int

const (
	TypeBroadcast Type = iota
	TypeInitialRanging
	TypeBasic
	TypePrimary
	TypeTransport
	TypeMulticast
	TypePadding
)

func (t Type) String() string {
	switch t {
	case TypeBroadcast:
		return "broadcast"
	case TypeInitialRanging:
		return "initial-ranging"
	case TypeBasic:
		return "basic"
	case TypePrimary:
		return "primary"
	case TypeTransport:
		return "transport"
	case TypeMulticast:
		return "multicast"
	case TypePadding:
		return "padding"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// IsMulticast reports whether c lies in the multicast polling range.
func (c Cid) IsMulticast() bool {
	return c >= MulticastBegin && c <= MulticastEnd
}

// IsReserved reports whether c is one of the fixed special identifiers.
func (c Cid) IsReserved() bool {
	return c == InitialRanging || c == Padding || c == Broadcast
}

func (c Cid) String() string {
	return fmt.Sprintf("%#04x", uint16(c))
}
