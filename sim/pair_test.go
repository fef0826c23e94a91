package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The canonical combination used throughout: an integer first component and
// a double second component.
type intDoublePair = PairValue[*IntegerValue, *DoubleValue, int64, float64]

func newIntDoubleChecker() PairChecker {
	return MakePairCheckerWith[*IntegerValue, *DoubleValue, int64, float64](
		MakeIntegerChecker(), MakeDoubleChecker())
}

func TestPairValue_SetGet(t *testing.T) {
	p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(3), 2.5)
	first, second := p.Get()
	assert.Equal(t, int64(3), first)
	assert.Equal(t, 2.5, second)

	p.Set(7, -0.25)
	first, second = p.Get()
	assert.Equal(t, int64(7), first)
	assert.Equal(t, -0.25, second)
}

func TestPairValue_SerializeToString(t *testing.T) {
	checker := newIntDoubleChecker()
	p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(3), 2.5)

	assert.Equal(t, "3 2.5", p.SerializeToString(checker))
}

func TestPairValue_RoundTrip(t *testing.T) {
	// GIVEN a pair serialized with its checker
	checker := newIntDoubleChecker()
	p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(42), 1.75)
	text := p.SerializeToString(checker)

	// WHEN a fresh default pair deserializes that text with the same checker
	q := NewPairValue[*IntegerValue, *DoubleValue, int64, float64]()
	ok := q.DeserializeFromString(text, checker)

	// THEN the semantic pair round-trips
	if !ok {
		t.Fatalf("DeserializeFromString(%q) = false, want true", text)
	}
	first, second := q.Get()
	if first != 42 || second != 1.75 {
		t.Errorf("Get() = (%d, %g), want (42, 1.75)", first, second)
	}
}

func TestPairValue_DeserializeWhitespace(t *testing.T) {
	checker := newIntDoubleChecker()
	for _, text := range []string{"3 2.5", "  3 2.5", "3   2.5", "3\t2.5", " 3 2.5  "} {
		p := &intDoublePair{}
		if !p.DeserializeFromString(text, checker) {
			t.Errorf("DeserializeFromString(%q) = false, want true", text)
			continue
		}
		first, second := p.Get()
		if first != 3 || second != 2.5 {
			t.Errorf("DeserializeFromString(%q): Get() = (%d, %g), want (3, 2.5)", text, first, second)
		}
	}
}

func TestPairValue_DeserializeFailureAtomicity(t *testing.T) {
	checker := newIntDoubleChecker()

	cases := []struct {
		name string
		text string
	}{
		{"single token", "3"},
		{"empty text", ""},
		{"first token rejected", "abc 2.5"},
		{"second token rejected", "3 xyz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// GIVEN a pair with known content
			p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(9), 0.5)

			// WHEN a failing deserialize runs against it
			ok := p.DeserializeFromString(tc.text, checker)

			// THEN it reports failure and the prior state is untouched
			if ok {
				t.Fatalf("DeserializeFromString(%q) = true, want false", tc.text)
			}
			first, second := p.Get()
			if first != 9 || second != 0.5 {
				t.Errorf("after failed deserialize: Get() = (%d, %g), want (9, 0.5)", first, second)
			}
		})
	}
}

func TestPairValue_DeserializeRejectsNonPairChecker(t *testing.T) {
	p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(1), 1.0)

	assert.False(t, p.DeserializeFromString("3 2.5", MakeIntegerChecker()))
	first, second := p.Get()
	assert.Equal(t, int64(1), first)
	assert.Equal(t, 1.0, second)
}

func TestPairValue_DeserializeRejectsUnsetCheckers(t *testing.T) {
	// An unconfigured pair checker is a configuration error, not a panic.
	checker := MakePairChecker[*IntegerValue, *DoubleValue, int64, float64]()
	p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(1), 1.0)

	assert.False(t, p.DeserializeFromString("3 2.5", checker))
}

func TestPairValue_DeserializeExactTypeMatch(t *testing.T) {
	// GIVEN a pair checker whose first component checker accepts the token
	// but materializes a value of a different component type
	checker := MakePairCheckerWith[*IntegerValue, *DoubleValue, int64, float64](
		MakeDoubleChecker(), MakeDoubleChecker())
	p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(9), 0.5)

	// WHEN deserializing text every component checker accepts
	ok := p.DeserializeFromString("3 2.5", checker)

	// THEN checker acceptance alone is not enough: the decoded first value
	// is a *DoubleValue, not the required *IntegerValue
	if ok {
		t.Fatal("DeserializeFromString accepted a mistyped component")
	}
	first, second := p.Get()
	if first != 9 || second != 0.5 {
		t.Errorf("after failed deserialize: Get() = (%d, %g), want (9, 0.5)", first, second)
	}
}

func TestPairValue_DeserializeIgnoresExtraTokens(t *testing.T) {
	checker := newIntDoubleChecker()
	p := &intDoublePair{}

	assert.True(t, p.DeserializeFromString("3 2.5 junk", checker))
	first, second := p.Get()
	assert.Equal(t, int64(3), first)
	assert.Equal(t, 2.5, second)
}

func TestPairValue_DeserializeRangeChecked(t *testing.T) {
	checker := MakePairCheckerWith[*IntegerValue, *DoubleValue, int64, float64](
		MakeIntegerCheckerWithRange(0, 10), MakeDoubleCheckerWithRange(0, 1))

	p := &intDoublePair{}
	assert.True(t, p.DeserializeFromString("5 0.5", checker))
	assert.False(t, (&intDoublePair{}).DeserializeFromString("11 0.5", checker))
	assert.False(t, (&intDoublePair{}).DeserializeFromString("5 1.5", checker))
}

func TestPairValue_CopyIndependence(t *testing.T) {
	// GIVEN a copy of a configured pair
	p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(3), 2.5)
	q := p.Copy().(*intDoublePair)

	// WHEN each side is mutated through Set
	p.Set(100, 200.0)
	q.Set(-1, -2.0)

	// THEN neither mutation leaks into the other
	pFirst, pSecond := p.Get()
	if pFirst != 100 || pSecond != 200.0 {
		t.Errorf("original Get() = (%d, %g), want (100, 200)", pFirst, pSecond)
	}
	qFirst, qSecond := q.Get()
	if qFirst != -1 || qSecond != -2.0 {
		t.Errorf("copy Get() = (%d, %g), want (-1, -2)", qFirst, qSecond)
	}
}

func TestPairValue_CopyOfEmpty(t *testing.T) {
	// The zero PairValue is the explicitly-empty state; Copy must not panic
	// and must yield another empty pair.
	var p intDoublePair
	c := p.Copy().(*intDoublePair)
	assert.False(t, c.present)
}

func TestPairChecker_CreateValidValue(t *testing.T) {
	checker := newIntDoubleChecker()

	v, ok := checker.CreateValidValue("3 2.5")
	if !ok {
		t.Fatal("CreateValidValue(\"3 2.5\") rejected valid text")
	}
	first, second := v.(*intDoublePair).Get()
	assert.Equal(t, int64(3), first)
	assert.Equal(t, 2.5, second)

	_, ok = checker.CreateValidValue("3")
	assert.False(t, ok)
}

func TestPairChecker_GetCheckers(t *testing.T) {
	first := MakeIntegerChecker()
	second := MakeDoubleChecker()
	checker := MakePairChecker[*IntegerValue, *DoubleValue, int64, float64]()

	f, s := checker.GetCheckers()
	assert.Nil(t, f)
	assert.Nil(t, s)

	checker.SetCheckers(first, second)
	f, s = checker.GetCheckers()
	assert.Same(t, Checker(first), f)
	assert.Same(t, Checker(second), s)
}

func TestMakePairChecker_NameUniqueness(t *testing.T) {
	intDouble := MakePairChecker[*IntegerValue, *DoubleValue, int64, float64]()
	doubleInt := MakePairChecker[*DoubleValue, *IntegerValue, float64, int64]()
	stringInt := MakePairChecker[*StringValue, *IntegerValue, string, int64]()

	names := map[string]bool{
		intDouble.Name(): true,
		doubleInt.Name(): true,
		stringInt.Name(): true,
	}
	if len(names) != 3 {
		t.Errorf("expected 3 distinct checker names, got %v", names)
	}

	// Stable across calls.
	assert.Equal(t, intDouble.Name(),
		MakePairChecker[*IntegerValue, *DoubleValue, int64, float64]().Name())
	assert.Equal(t, "PairValue<sim.IntegerValue,sim.DoubleValue>", intDouble.Name())
}

func TestPairValue_SerializeIdempotence(t *testing.T) {
	checker := newIntDoubleChecker()
	p := NewPairValueFrom[*IntegerValue, *DoubleValue](int64(-17), 3.125)

	text := p.SerializeToString(checker)
	q := &intDoublePair{}
	if !q.DeserializeFromString(text, checker) {
		t.Fatalf("DeserializeFromString(%q) = false, want true", text)
	}
	assert.Equal(t, text, q.SerializeToString(checker))
}
