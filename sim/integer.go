package sim

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

// IntegerValue holds a signed integer attribute.
type IntegerValue struct {
	value int64
}

// NewIntegerValue wraps v in a fresh IntegerValue.
func NewIntegerValue(v int64) *IntegerValue {
	return &IntegerValue{value: v}
}

func (v *IntegerValue) Get() int64 {
	return v.value
}

func (v *IntegerValue) Set(value int64) {
	v.value = value
}

func (v *IntegerValue) Copy() Value {
	return &IntegerValue{value: v.value}
}

func (v *IntegerValue) SerializeToString(_ Checker) string {
	return strconv.FormatInt(v.value, 10)
}

func (v *IntegerValue) DeserializeFromString(text string, checker Checker) bool {
	parsed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		logrus.Debugf("IntegerValue: rejecting %q: %v", text, err)
		return false
	}
	if c, ok := checker.(*IntegerChecker); ok && !c.inRange(parsed) {
		logrus.Debugf("IntegerValue: %d outside [%d, %d]", parsed, c.Min, c.Max)
		return false
	}
	v.value = parsed
	return true
}

// IntegerChecker validates integer text against an inclusive range.
type IntegerChecker struct {
	Min int64
	Max int64
}

// MakeIntegerChecker builds a checker accepting any int64.
func MakeIntegerChecker() *IntegerChecker {
	return MakeIntegerCheckerWithRange(math.MinInt64, math.MaxInt64)
}

// MakeIntegerCheckerWithRange builds a checker accepting [min, max].
func MakeIntegerCheckerWithRange(min, max int64) *IntegerChecker {
	return &IntegerChecker{Min: min, Max: max}
}

func (c *IntegerChecker) Name() string {
	return "IntegerValue"
}

func (c *IntegerChecker) CreateValidValue(text string) (Value, bool) {
	v := &IntegerValue{}
	if !v.DeserializeFromString(text, c) {
		return nil, false
	}
	return v, true
}

func (c *IntegerChecker) inRange(v int64) bool {
	return v >= c.Min && v <= c.Max
}
