package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// beacon is a toy configurable object: one composite attribute and one
// scalar attribute, registered the way subsystems register theirs.
type beacon struct {
	x, y     float64
	txPower  int64
	attrList []Attribute
}

func newBeacon() *beacon {
	b := &beacon{}
	b.attrList = []Attribute{
		{
			Name: "Position",
			Help: "Planar position (x y) in meters.",
			Accessor: MakePairFieldAccessor[*DoubleValue, *DoubleValue](
				func(b *beacon) (*float64, *float64) { return &b.x, &b.y },
			),
			Checker: MakePairCheckerWith[*DoubleValue, *DoubleValue, float64, float64](
				MakeDoubleChecker(), MakeDoubleChecker()),
		},
		{
			Name: "TxPower",
			Help: "Transmit power in dBm.",
			Accessor: MakeFieldAccessor[*IntegerValue](
				func(b *beacon) *int64 { return &b.txPower },
			),
			Checker: MakeIntegerCheckerWithRange(-20, 30),
		},
	}
	return b
}

func (b *beacon) Attributes() []Attribute {
	return b.attrList
}

func TestSetAttribute_Pair(t *testing.T) {
	b := newBeacon()

	if err := SetAttribute(b, "Position", "3.5 -1.25"); err != nil {
		t.Fatalf("SetAttribute(Position) failed: %v", err)
	}
	assert.Equal(t, 3.5, b.x)
	assert.Equal(t, -1.25, b.y)

	got, err := GetAttribute(b, "Position")
	assert.NoError(t, err)
	assert.Equal(t, "3.5 -1.25", got)
}

func TestSetAttribute_Scalar(t *testing.T) {
	b := newBeacon()

	assert.NoError(t, SetAttribute(b, "TxPower", "23"))
	assert.Equal(t, int64(23), b.txPower)

	// Out of the checker's range.
	err := SetAttribute(b, "TxPower", "99")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("SetAttribute(TxPower, 99) = %v, want ErrInvalidValue", err)
	}
	assert.Equal(t, int64(23), b.txPower)
}

func TestSetAttribute_Unknown(t *testing.T) {
	b := newBeacon()

	err := SetAttribute(b, "Frequency", "2.4")
	if !errors.Is(err, ErrNoSuchAttribute) {
		t.Errorf("SetAttribute(Frequency) = %v, want ErrNoSuchAttribute", err)
	}
	_, err = GetAttribute(b, "Frequency")
	assert.ErrorIs(t, err, ErrNoSuchAttribute)
}

func TestSetAttribute_MalformedPairText(t *testing.T) {
	b := newBeacon()
	assert.NoError(t, SetAttribute(b, "Position", "1 2"))

	err := SetAttribute(b, "Position", "3.5")
	assert.ErrorIs(t, err, ErrInvalidValue)

	// Prior state survives the rejected write.
	got, _ := GetAttribute(b, "Position")
	assert.Equal(t, "1 2", got)
}
