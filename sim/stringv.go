package sim

// StringValue holds a free-form text attribute.
//
// A StringValue used inside a PairValue cannot contain whitespace: the pair
// text format separates its two tokens with whitespace and defines no
// escaping, so an embedded space would not round-trip.
type StringValue struct {
	value string
}

// NewStringValue wraps v in a fresh StringValue.
func NewStringValue(v string) *StringValue {
	return &StringValue{value: v}
}

func (v *StringValue) Get() string {
	return v.value
}

func (v *StringValue) Set(value string) {
	v.value = value
}

func (v *StringValue) Copy() Value {
	return &StringValue{value: v.value}
}

func (v *StringValue) SerializeToString(_ Checker) string {
	return v.value
}

func (v *StringValue) DeserializeFromString(text string, _ Checker) bool {
	v.value = text
	return true
}

// StringChecker accepts any text.
type StringChecker struct{}

// MakeStringChecker builds the (stateless) string checker.
func MakeStringChecker() *StringChecker {
	return &StringChecker{}
}

func (c *StringChecker) Name() string {
	return "StringValue"
}

func (c *StringChecker) CreateValidValue(text string) (Value, bool) {
	return &StringValue{value: text}, true
}
