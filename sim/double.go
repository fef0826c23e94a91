package sim

import (
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DoubleValue holds a floating-point attribute.
type DoubleValue struct {
	value float64
}

// NewDoubleValue wraps v in a fresh DoubleValue.
func NewDoubleValue(v float64) *DoubleValue {
	return &DoubleValue{value: v}
}

func (v *DoubleValue) Get() float64 {
	return v.value
}

func (v *DoubleValue) Set(value float64) {
	v.value = value
}

func (v *DoubleValue) Copy() Value {
	return &DoubleValue{value: v.value}
}

func (v *DoubleValue) SerializeToString(_ Checker) string {
	return strconv.FormatFloat(v.value, 'g', -1, 64)
}

func (v *DoubleValue) DeserializeFromString(text string, checker Checker) bool {
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		logrus.Debugf("DoubleValue: rejecting %q: %v", text, err)
		return false
	}
	if c, ok := checker.(*DoubleChecker); ok && !c.inRange(parsed) {
		logrus.Debugf("DoubleValue: %g outside [%g, %g]", parsed, c.Min, c.Max)
		return false
	}
	v.value = parsed
	return true
}

// DoubleChecker validates floating-point text against an inclusive range.
type DoubleChecker struct {
	Min float64
	Max float64
}

// MakeDoubleChecker builds a checker accepting any finite float64.
func MakeDoubleChecker() *DoubleChecker {
	return MakeDoubleCheckerWithRange(-math.MaxFloat64, math.MaxFloat64)
}

// MakeDoubleCheckerWithRange builds a checker accepting [min, max].
func MakeDoubleCheckerWithRange(min, max float64) *DoubleChecker {
	return &DoubleChecker{Min: min, Max: max}
}

func (c *DoubleChecker) Name() string {
	return "DoubleValue"
}

func (c *DoubleChecker) CreateValidValue(text string) (Value, bool) {
	v := &DoubleValue{}
	if !v.DeserializeFromString(text, c) {
		return nil, false
	}
	return v, true
}

func (c *DoubleChecker) inRange(v float64) bool {
	return v >= c.Min && v <= c.Max
}
