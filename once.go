// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

import (
	"sync/atomic"
)

// Once is a one-shot function value.
// It can be called at most once; a second Call panics and a second
// TryCall returns false. Combinators that accept a *Once take ownership
// of it: the argument is marked used when the combinator runs, and only the
// returned value may be called.
type Once[X, Y any] struct {
	used atomic.Uintptr
	f    func(X) Y
}

// NewOnce creates a one-shot function from f.
func NewOnce[X, Y any](f func(X) Y) *Once[X, Y] {
	return &Once[X, Y]{f: f}
}

// Call invokes the function.
// Panics if the function has already been called or consumed.
func (o *Once[X, Y]) Call(x X) Y {
	return o.take()(x)
}

// TryCall attempts to invoke the function.
// Returns (result, true) on success, or (zero, false) if already used.
func (o *Once[X, Y]) TryCall(x X) (Y, bool) {
	if o.used.Add(1) != 1 {
		var zero Y
		return zero, false
	}
	f := o.f
	o.f = nil
	return f(x), true
}

// Discard marks the function as used without invoking it.
// It is a no-op if the function has already been used.
func (o *Once[X, Y]) Discard() {
	if o.used.Add(1) == 1 {
		o.f = nil
	}
}

// Used reports whether the function has been called, consumed, or discarded.
func (o *Once[X, Y]) Used() bool {
	return o.used.Load() != 0
}

// take transfers ownership of the wrapped function out of o.
func (o *Once[X, Y]) take() func(X) Y {
	if o.used.Add(1) != 1 {
		panic("kind: one-shot function called twice")
	}
	f := o.f
	o.f = nil
	return f
}

// ThenOnce is forward composition of one-shot functions.
// Both arguments are consumed; the result is one-shot.
// If g has already been used, ThenOnce panics and f is left intact.
// Compose a reusable [Func] through [Func.Once].
func ThenOnce[A, B, C any](f *Once[A, B], g *Once[B, C]) *Once[A, C] {
	gf := g.take()
	ff := f.take()
	return NewOnce(func(a A) C {
		return gf(ff(a))
	})
}

// ComposeOnce is reverse composition of one-shot functions:
// ComposeOnce(g, f).Call(x) == g.Call(f.Call(x)).
func ComposeOnce[A, B, C any](g *Once[B, C], f *Once[A, B]) *Once[A, C] {
	return ThenOnce(f, g)
}
