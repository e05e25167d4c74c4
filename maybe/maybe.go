/*
Package maybe provides an option type.

A Maybe either holds a value (Just) or it doesn't (Nothing). The document
model uses it for queries which may legitimately come up empty, e.g. the
id-attribute of an element or the public identifier of a doctype.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T.
//
// Clients either pattern-match a Maybe
//
//     var id string
//     switch m := x.Match(); m {
//     case m.Just(&id):
//         …
//     case m.Nothing():
//         …
//     }
//
// or unpack it with Get or WithDefault.
type Maybe[T comparable] interface {
	Match() Matcher[T]
	Get() (T, bool)
	WithDefault(T) T
	IsNothing() bool
}

type maybe[T comparable] struct {
	value T
	just  bool
}

// Just wraps x into a Maybe.
func Just[T comparable](x T) Maybe[T] {
	return maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe.
func Nothing[T comparable]() Maybe[T] {
	return maybe[T]{}
}

// Of returns Just(x) if ok is set, Nothing otherwise. It is a convenience
// for lifting the "comma ok" idiom:
//
//     v, ok := m[key]
//     return maybe.Of(v, ok)
func Of[T comparable](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

func (m maybe[T]) IsNothing() bool {
	return !m.just
}

// Unpack is like x.Get(), but treats a nil Maybe as Nothing.
func Unpack[T comparable](x Maybe[T]) (T, bool) {
	if x == nil {
		var zero T
		return zero, false
	}
	return x.Get()
}

// Map applies f to the value of x, if present.
func Map[T, S comparable](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := Unpack(x); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// Equal is true if both x and y are Nothing or both hold the same value.
// A nil Maybe counts as Nothing.
func Equal[T comparable](x, y Maybe[T]) bool {
	vx, okx := Unpack(x)
	vy, oky := Unpack(y)
	return okx == oky && vx == vy
}

// --- Matching --------------------------------------------------------------

// Matcher is used to pattern-match a Maybe in a switch statement.
type Matcher[T comparable] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T comparable] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
