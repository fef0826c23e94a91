package cid

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/netsim-go/netsim/sim"
)

// DefaultM is the default split parameter: basic identifiers occupy
// [1, m], primary [m+1, 2m], transport (2m, 0xfefe].
const DefaultM = 0x5500

// Factory allocates connection identifiers for a base station, sequentially
// from the start of each range.
//
// TODO: recycle identifiers returned through Free instead of burning through
// each range once.
type Factory struct {
	m int64

	nextBasic     Cid
	nextPrimary   Cid
	nextTransport Cid
	nextMulticast Cid
	allocated     int
}

// NewFactory builds a factory with the default m of 0x5500.
func NewFactory() *Factory {
	f := &Factory{m: DefaultM}
	f.reset()
	return f
}

func (f *Factory) reset() {
	f.nextBasic = 1
	f.nextPrimary = Cid(f.m) + 1
	f.nextTransport = Cid(2*f.m) + 1
	f.nextMulticast = MulticastBegin
}

// M returns the current range-split parameter.
func (f *Factory) M() int64 {
	return f.m
}

// SetM changes the range-split parameter. Rejected once any identifier has
// been allocated, since already-issued identifiers would change class.
func (f *Factory) SetM(m int64) bool {
	if f.allocated > 0 {
		logrus.Warnf("cid.Factory: cannot change m to %#x after %d allocations", m, f.allocated)
		return false
	}
	f.m = m
	f.reset()
	return true
}

// AllocateBasic returns the next basic identifier.
func (f *Factory) AllocateBasic() (Cid, error) {
	if int64(f.nextBasic) > f.m {
		return 0, fmt.Errorf("basic cid range [1, %#x] exhausted", f.m)
	}
	c := f.nextBasic
	f.nextBasic++
	f.allocated++
	return c, nil
}

// AllocatePrimary returns the next primary identifier.
func (f *Factory) AllocatePrimary() (Cid, error) {
	if int64(f.nextPrimary) > 2*f.m {
		return 0, fmt.Errorf("primary cid range (%#x, %#x] exhausted", f.m, 2*f.m)
	}
	c := f.nextPrimary
	f.nextPrimary++
	f.allocated++
	return c, nil
}

// AllocateTransportOrSecondary returns the next transport (or secondary)
// identifier.
func (f *Factory) AllocateTransportOrSecondary() (Cid, error) {
	if f.nextTransport > transportCeiling {
		return 0, fmt.Errorf("transport cid range (%#x, %#x] exhausted", 2*f.m, uint16(transportCeiling))
	}
	c := f.nextTransport
	f.nextTransport++
	f.allocated++
	return c, nil
}

// AllocateMulticast returns the next multicast polling identifier.
func (f *Factory) AllocateMulticast() (Cid, error) {
	if f.nextMulticast > MulticastEnd {
		return 0, fmt.Errorf("multicast cid range [%v, %v] exhausted", MulticastBegin, MulticastEnd)
	}
	c := f.nextMulticast
	f.nextMulticast++
	f.allocated++
	return c, nil
}

// Allocate returns the next identifier of the given type.
func (f *Factory) Allocate(t Type) (Cid, error) {
	switch t {
	case TypeBasic:
		return f.AllocateBasic()
	case TypePrimary:
		return f.AllocatePrimary()
	case TypeTransport:
		return f.AllocateTransportOrSecondary()
	case TypeMulticast:
		return f.AllocateMulticast()
	default:
		return 0, fmt.Errorf("cannot allocate cid of type %v", t)
	}
}

// IsBasic reports whether c lies in the basic range.
func (f *Factory) IsBasic(c Cid) bool {
	return int64(c) >= 1 && int64(c) <= f.m
}

// IsPrimary reports whether c lies in the primary range.
func (f *Factory) IsPrimary(c Cid) bool {
	return int64(c) > f.m && int64(c) <= 2*f.m
}

// IsTransport reports whether c lies in the transport range.
func (f *Factory) IsTransport(c Cid) bool {
	return int64(c) > 2*f.m && c <= transportCeiling
}

// Free notifies the factory that the connection using c is dead and the
// identifier may be reused. Reuse is not implemented yet; the call is
// accepted so connection teardown does not need to special-case it.
func (f *Factory) Free(c Cid) {
	logrus.Debugf("cid.Factory: freed %v (reuse not implemented)", c)
}

// Attributes exposes the factory configuration to the attribute framework:
// the m parameter as a bounded integer and the multicast range as a
// read-only pair.
func (f *Factory) Attributes() []sim.Attribute {
	return []sim.Attribute{
		{
			Name: "M",
			Help: "Range-split parameter m from Table 345 of IEEE 802.16-2004.",
			Accessor: sim.MakeValueAccessor[*sim.IntegerValue](
				(*Factory).M,
				(*Factory).SetM,
			),
			Checker: sim.MakeIntegerCheckerWithRange(1, 0x5fff),
		},
		{
			Name: "MulticastRange",
			Help: "Inclusive multicast polling identifier range.",
			Accessor: sim.MakePairAccessor[*sim.IntegerValue, *sim.IntegerValue](
				func(*Factory) (int64, int64) { return int64(MulticastBegin), int64(MulticastEnd) },
				nil,
			),
			Checker: sim.MakePairCheckerWith[*sim.IntegerValue, *sim.IntegerValue, int64, int64](
				sim.MakeIntegerChecker(), sim.MakeIntegerChecker()),
		},
	}
}
