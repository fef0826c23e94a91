package sim

// Accessor factories. Each binds an attribute's get/set semantics to a host
// type T, either through explicit getter/setter functions or through a direct
// field reference. Hosts of the wrong concrete type and values of the wrong
// value type are rejected with a false return.

type valueAccessor[T any, C Component[S], S any] struct {
	get func(*T) S
	set func(*T, S) bool
}

func (a *valueAccessor[T, C, S]) Get(obj any) (Value, bool) {
	host, ok := obj.(*T)
	if !ok || a.get == nil {
		return nil, false
	}
	v := newComponent[C]()
	v.Set(a.get(host))
	return v, true
}

func (a *valueAccessor[T, C, S]) Set(obj any, value Value) bool {
	host, ok := obj.(*T)
	if !ok || a.set == nil {
		return false
	}
	v, ok := value.(C)
	if !ok {
		return false
	}
	return a.set(host, v.Get())
}

// MakeValueAccessor binds a scalar attribute to a getter and a setter on *T.
// The setter reports whether the host accepted the new content. Either
// function may be nil, which makes the attribute write-only or read-only.
func MakeValueAccessor[C Component[S], T any, S any](get func(*T) S, set func(*T, S) bool) Accessor {
	return &valueAccessor[T, C, S]{get: get, set: set}
}

// MakeFieldAccessor binds a scalar attribute directly to a field of *T,
// located by the field function.
func MakeFieldAccessor[C Component[S], T any, S any](field func(*T) *S) Accessor {
	return &valueAccessor[T, C, S]{
		get: func(host *T) S {
			return *field(host)
		},
		set: func(host *T, v S) bool {
			*field(host) = v
			return true
		},
	}
}

type pairAccessor[T any, A Component[SA], B Component[SB], SA, SB any] struct {
	get func(*T) (SA, SB)
	set func(*T, SA, SB) bool
}

func (a *pairAccessor[T, A, B, SA, SB]) Get(obj any) (Value, bool) {
	host, ok := obj.(*T)
	if !ok || a.get == nil {
		return nil, false
	}
	first, second := a.get(host)
	return NewPairValueFrom[A, B](first, second), true
}

func (a *pairAccessor[T, A, B, SA, SB]) Set(obj any, value Value) bool {
	host, ok := obj.(*T)
	if !ok || a.set == nil {
		return false
	}
	pv, ok := value.(*PairValue[A, B, SA, SB])
	if !ok {
		return false
	}
	first, second := pv.Get()
	return a.set(host, first, second)
}

// MakePairAccessor binds a composite attribute to a getter and a setter on
// *T that trade in the semantic pair.
func MakePairAccessor[A Component[SA], B Component[SB], T any, SA, SB any](get func(*T) (SA, SB), set func(*T, SA, SB) bool) Accessor {
	return &pairAccessor[T, A, B, SA, SB]{get: get, set: set}
}

// MakePairFieldAccessor binds a composite attribute directly to two fields
// of *T, located by the fields function.
func MakePairFieldAccessor[A Component[SA], B Component[SB], T any, SA, SB any](fields func(*T) (*SA, *SB)) Accessor {
	return &pairAccessor[T, A, B, SA, SB]{
		get: func(host *T) (SA, SB) {
			first, second := fields(host)
			return *first, *second
		},
		set: func(host *T, first SA, second SB) bool {
			f, s := fields(host)
			*f = first
			*s = second
			return true
		},
	}
}
