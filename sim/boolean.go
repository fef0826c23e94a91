package sim

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

// BooleanValue holds a true/false attribute.
type BooleanValue struct {
	value bool
}

// NewBooleanValue wraps v in a fresh BooleanValue.
func NewBooleanValue(v bool) *BooleanValue {
	return &BooleanValue{value: v}
}

func (v *BooleanValue) Get() bool {
	return v.value
}

func (v *BooleanValue) Set(value bool) {
	v.value = value
}

func (v *BooleanValue) Copy() Value {
	return &BooleanValue{value: v.value}
}

func (v *BooleanValue) SerializeToString(_ Checker) string {
	return strconv.FormatBool(v.value)
}

func (v *BooleanValue) DeserializeFromString(text string, _ Checker) bool {
	switch text {
	case "true", "1":
		v.value = true
	case "false", "0":
		v.value = false
	default:
		logrus.Debugf("BooleanValue: rejecting %q", text)
		return false
	}
	return true
}

// BooleanChecker validates boolean text ("true"/"false"/"1"/"0").
type BooleanChecker struct{}

// MakeBooleanChecker builds the (stateless) boolean checker.
func MakeBooleanChecker() *BooleanChecker {
	return &BooleanChecker{}
}

func (c *BooleanChecker) Name() string {
	return "BooleanValue"
}

func (c *BooleanChecker) CreateValidValue(text string) (Value, bool) {
	v := &BooleanValue{}
	if !v.DeserializeFromString(text, c) {
		return nil, false
	}
	return v, true
}
