package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// TimeValue holds a duration attribute (packet intervals, timeouts).
// Text format is Go duration syntax, e.g. "50ms" or "1.5s".
type TimeValue struct {
	value time.Duration
}

// NewTimeValue wraps v in a fresh TimeValue.
func NewTimeValue(v time.Duration) *TimeValue {
	return &TimeValue{value: v}
}

func (v *TimeValue) Get() time.Duration {
	return v.value
}

func (v *TimeValue) Set(value time.Duration) {
	v.value = value
}

func (v *TimeValue) Copy() Value {
	return &TimeValue{value: v.value}
}

func (v *TimeValue) SerializeToString(_ Checker) string {
	return v.value.String()
}

func (v *TimeValue) DeserializeFromString(text string, checker Checker) bool {
	parsed, err := time.ParseDuration(text)
	if err != nil {
		logrus.Debugf("TimeValue: rejecting %q: %v", text, err)
		return false
	}
	if c, ok := checker.(*TimeChecker); ok && (parsed < c.Min || parsed > c.Max) {
		logrus.Debugf("TimeValue: %v outside [%v, %v]", parsed, c.Min, c.Max)
		return false
	}
	v.value = parsed
	return true
}

// TimeChecker validates duration text against an inclusive range.
type TimeChecker struct {
	Min time.Duration
	Max time.Duration
}

// MakeTimeChecker builds a checker accepting any non-negative duration.
func MakeTimeChecker() *TimeChecker {
	return MakeTimeCheckerWithRange(0, time.Duration(1<<63-1))
}

// MakeTimeCheckerWithRange builds a checker accepting [min, max].
func MakeTimeCheckerWithRange(min, max time.Duration) *TimeChecker {
	return &TimeChecker{Min: min, Max: max}
}

func (c *TimeChecker) Name() string {
	return "TimeValue"
}

func (c *TimeChecker) CreateValidValue(text string) (Value, bool) {
	v := &TimeValue{}
	if !v.DeserializeFromString(text, c) {
		return nil, false
	}
	return v, true
}
