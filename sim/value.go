package sim

// Value is the type-erased holder of one attribute's current content.
// Concrete value types (IntegerValue, DoubleValue, PairValue, ...) additionally
// expose a typed Get/Set pair; generic code only sees this interface.
type Value interface {
	// Copy produces an independent duplicate with equal content.
	Copy() Value

	// SerializeToString renders the content as text. The checker is the one
	// registered for the attribute holding this value; composite values use it
	// to reach their component checkers, scalar values ignore it.
	SerializeToString(checker Checker) string

	// DeserializeFromString replaces the content with the parse of text.
	// Returns true on success. On failure the receiver is left unchanged.
	DeserializeFromString(text string, checker Checker) bool
}

// Checker validates candidate text for one attribute type and materializes
// new values from accepted text. A checker is configured at most once, at
// registration time, and is thereafter immutable and shared read-only across
// every value of its type.
type Checker interface {
	// Name identifies the checked type. Names are deterministic and unique
	// per type so callers can key a registry on them.
	Name() string

	// CreateValidValue parses text into a fresh Value of the checked type.
	// The second return is false when the text is rejected.
	CreateValidValue(text string) (Value, bool)
}

// Accessor binds an attribute to get/set operations on a host object.
// Implementations are produced by the Make*Accessor factories and reject
// hosts or values of the wrong concrete type instead of panicking.
type Accessor interface {
	// Get reads the attribute from obj into a freshly constructed Value.
	// Returns false if obj has the wrong type or the attribute is write-only.
	Get(obj any) (Value, bool)

	// Set writes v into obj. Returns false if obj or v has the wrong type,
	// the attribute is read-only, or the host rejects the new content.
	Set(obj any, v Value) bool
}

// Component is the constraint a concrete value type must satisfy to take
// part in a PairValue. S is the semantic type, the plain value client code
// manipulates (int64, float64, string, ...), as opposed to the wrapping
// value object.
type Component[S any] interface {
	Value
	Get() S
	Set(S)
}
