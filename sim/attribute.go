package sim

import (
	"errors"
	"fmt"
)

// Sentinel errors for by-name attribute access.
var (
	ErrNoSuchAttribute = errors.New("no such attribute")
	ErrInvalidValue    = errors.New("invalid attribute value")
	ErrNotReadable     = errors.New("attribute not readable")
	ErrNotWritable     = errors.New("attribute not writable")
)

// Attribute describes one named, externally configurable field of a host
// object: its accessor and the single checker validating it. Attribute
// tables are built once at registration time and shared read-only.
type Attribute struct {
	Name     string
	Help     string
	Accessor Accessor
	Checker  Checker
}

// Object is anything exposing an attribute table. Subsystems implement it
// on their configurable types; a configuration loader only ever sees this
// interface.
type Object interface {
	Attributes() []Attribute
}

// SetAttribute parses text through the named attribute's checker and writes
// the resulting value into obj. The simulation surfaces the returned error
// to the user instead of aborting.
func SetAttribute(obj Object, name, text string) error {
	a, err := findAttribute(obj, name)
	if err != nil {
		return err
	}
	v, ok := a.Checker.CreateValidValue(text)
	if !ok {
		return fmt.Errorf("attribute %q rejects %q (%s): %w", name, text, a.Checker.Name(), ErrInvalidValue)
	}
	if !a.Accessor.Set(obj, v) {
		return fmt.Errorf("attribute %q: %w", name, ErrNotWritable)
	}
	return nil
}

// GetAttribute reads the named attribute from obj and serializes it through
// the attribute's checker.
func GetAttribute(obj Object, name string) (string, error) {
	a, err := findAttribute(obj, name)
	if err != nil {
		return "", err
	}
	v, ok := a.Accessor.Get(obj)
	if !ok {
		return "", fmt.Errorf("attribute %q: %w", name, ErrNotReadable)
	}
	return v.SerializeToString(a.Checker), nil
}

func findAttribute(obj Object, name string) (Attribute, error) {
	for _, a := range obj.Attributes() {
		if a.Name == name {
			return a, nil
		}
	}
	return Attribute{}, fmt.Errorf("attribute %q: %w", name, ErrNoSuchAttribute)
}
