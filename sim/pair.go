package sim

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/sirupsen/logrus"
)

// PairValue aggregates two independently-typed component values into one
// attribute. A and B are the component value types (pointer types such as
// *IntegerValue), SA and SB their semantic types. From the outside a
// PairValue behaves like any other Value; clients manipulate it through the
// semantic pair returned by Get and accepted by Set.
//
// Every public constructor produces a pair with both components present.
// The zero PairValue is the explicitly-empty state: it exists so that Copy
// of an unconfigured pair stays well defined, and reading from it is a
// programming error.
//
// Text format: "<first><space><second>". Exactly one space is written; any
// run of whitespace is accepted when parsing and surrounding whitespace is
// ignored. Tokens have no whitespace escaping, so a component whose
// serialized form contains whitespace cannot round-trip.
type PairValue[A Component[SA], B Component[SB], SA, SB any] struct {
	first   A
	second  B
	present bool
}

// NewPairValue builds a pair holding default-constructed components.
func NewPairValue[A Component[SA], B Component[SB], SA, SB any]() *PairValue[A, B, SA, SB] {
	p := &PairValue[A, B, SA, SB]{}
	var first SA
	var second SB
	p.Set(first, second)
	return p
}

// NewPairValueFrom builds a pair holding the given semantic values.
func NewPairValueFrom[A Component[SA], B Component[SB], SA, SB any](first SA, second SB) *PairValue[A, B, SA, SB] {
	p := &PairValue[A, B, SA, SB]{}
	p.Set(first, second)
	return p
}

// Get reads through both components and returns the semantic pair.
// Requires both components present; calling Get on the empty pair panics.
func (p *PairValue[A, B, SA, SB]) Get() (SA, SB) {
	return p.first.Get(), p.second.Get()
}

// Set discards the current components and installs two fresh ones wrapping
// first and second. Always succeeds.
func (p *PairValue[A, B, SA, SB]) Set(first SA, second SB) {
	f := newComponent[A]()
	f.Set(first)
	s := newComponent[B]()
	s.Set(second)
	p.first = f
	p.second = s
	p.present = true
}

// Copy returns a deep, independent duplicate. An empty pair copies to an
// empty pair rather than panicking.
func (p *PairValue[A, B, SA, SB]) Copy() Value {
	c := &PairValue[A, B, SA, SB]{}
	if p.present {
		c.first = p.first.Copy().(A)
		c.second = p.second.Copy().(B)
		c.present = true
	}
	return c
}

// SerializeToString renders "<first> <second>". The supplied checker is the
// pair's own checker; each component is serialized against the matching
// component checker, not against the outer checker.
func (p *PairValue[A, B, SA, SB]) SerializeToString(checker Checker) string {
	firstChecker, secondChecker := checker, checker
	if pc, ok := checker.(PairChecker); ok {
		firstChecker, secondChecker = pc.GetCheckers()
	}
	return p.first.SerializeToString(firstChecker) + " " + p.second.SerializeToString(secondChecker)
}

// DeserializeFromString parses two whitespace-delimited tokens through the
// pair checker's component checkers and, only if both are accepted with the
// exact component types, replaces both components. On any failure the pair
// is left completely unmodified. Tokens beyond the second are ignored.
func (p *PairValue[A, B, SA, SB]) DeserializeFromString(text string, checker Checker) bool {
	pc, ok := checker.(PairChecker)
	if !ok {
		logrus.Debugf("PairValue: checker %T is not a PairChecker", checker)
		return false
	}
	firstChecker, secondChecker := pc.GetCheckers()
	if firstChecker == nil || secondChecker == nil {
		logrus.Debugf("PairValue: %s has unset component checkers", pc.Name())
		return false
	}

	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		logrus.Debugf("PairValue: %q does not split into two tokens", text)
		return false
	}

	firstValue, ok := firstChecker.CreateValidValue(tokens[0])
	if !ok {
		return false
	}
	// Checker acceptance and exact type match are independent conditions:
	// a checker may accept a broader family of value types than A.
	first, ok := firstValue.(A)
	if !ok {
		logrus.Debugf("PairValue: first token %q decoded to %T, not the expected component type", tokens[0], firstValue)
		return false
	}

	secondValue, ok := secondChecker.CreateValidValue(tokens[1])
	if !ok {
		return false
	}
	second, ok := secondValue.(B)
	if !ok {
		logrus.Debugf("PairValue: second token %q decoded to %T, not the expected component type", tokens[1], secondValue)
		return false
	}

	p.first = first
	p.second = second
	p.present = true
	return true
}

// PairChecker is the Checker of a PairValue: an ordered pair of component
// checkers behind the plain Checker interface, so a composite attribute is
// indistinguishable from a primitive one to generic code.
//
// SetCheckers runs exactly once per instance, at registration time; after
// that the checker is treated as immutable and shared read-only.
type PairChecker interface {
	Checker

	// SetCheckers installs both component checkers together.
	SetCheckers(first, second Checker)

	// GetCheckers returns the current ordered pair. Both entries are nil
	// until SetCheckers runs; validation against an unconfigured pair
	// checker fails rather than panics.
	GetCheckers() (Checker, Checker)
}

type pairChecker[A Component[SA], B Component[SB], SA, SB any] struct {
	name          string
	firstChecker  Checker
	secondChecker Checker
}

func (c *pairChecker[A, B, SA, SB]) Name() string {
	return c.name
}

func (c *pairChecker[A, B, SA, SB]) SetCheckers(first, second Checker) {
	c.firstChecker = first
	c.secondChecker = second
}

func (c *pairChecker[A, B, SA, SB]) GetCheckers() (Checker, Checker) {
	return c.firstChecker, c.secondChecker
}

func (c *pairChecker[A, B, SA, SB]) CreateValidValue(text string) (Value, bool) {
	v := &PairValue[A, B, SA, SB]{}
	if !v.DeserializeFromString(text, c) {
		return nil, false
	}
	return v, true
}

// MakePairChecker builds an unconfigured checker for the ordered component
// combination (A, B). The generated name is a deterministic function of the
// two component types, stable across calls and unique per distinct ordered
// combination, suitable as a registry key.
func MakePairChecker[A Component[SA], B Component[SB], SA, SB any]() PairChecker {
	return &pairChecker[A, B, SA, SB]{
		name: fmt.Sprintf("PairValue<%s,%s>", componentName[A](), componentName[B]()),
	}
}

// MakePairCheckerWith builds a pair checker and installs both component
// checkers immediately.
func MakePairCheckerWith[A Component[SA], B Component[SB], SA, SB any](first, second Checker) PairChecker {
	c := MakePairChecker[A, B, SA, SB]()
	c.SetCheckers(first, second)
	return c
}

// newComponent allocates a fresh component value. Component types are
// pointer types, so the zero A is nil and a real instance must be built
// through reflection.
func newComponent[C Value]() C {
	return reflect.New(reflect.TypeOf((*C)(nil)).Elem().Elem()).Interface().(C)
}

func componentName[C Value]() string {
	t := reflect.TypeOf((*C)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
