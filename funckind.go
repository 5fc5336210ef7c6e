// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Function constructors: with the input type X fixed, Func[X, _] and
// Once[X, _] are monads over the result (the reader/environment monad).

// MapFunc post-composes f: MapFunc(g, f)(x) == f(g(x)).
// Go closures are shareable, so the result stays reusable.
func MapFunc[X, A, B any](fa Func[X, A], f func(A) B) Func[X, B] {
	return func(x X) B {
		return f(fa(x))
	}
}

// MapFuncOnce is [MapFunc] producing a one-shot result.
func MapFuncOnce[X, A, B any](fa Func[X, A], f func(A) B) *Once[X, B] {
	return NewOnce(MapFunc(fa, f))
}

// ApFunc feeds the same input to both functions: x ↦ ff(x)(fa(x)).
func ApFunc[X, A, B any](fa Func[X, A], ff Func[X, Func[A, B]]) Func[X, B] {
	return func(x X) B {
		a := fa(x)
		return ff(x)(a)
	}
}

// BindFunc runs k on fa's result with the same input: x ↦ k(fa(x))(x).
func BindFunc[X, A, B any](fa Func[X, A], k func(A) Func[X, B]) Func[X, B] {
	return func(x X) B {
		return k(fa(x))(x)
	}
}

// JoinFunc collapses a function returning a function: x ↦ ff(x)(x).
func JoinFunc[X, A any](ff Func[X, Func[X, A]]) Func[X, A] {
	return BindFunc(ff, Id[Func[X, A]])
}

// KFunc is the constructor tag for [Func] with the input type X fixed.
// Its Map keeps the result reusable; use [MapFuncOnce] for a one-shot result.
type KFunc[X, A, B any] struct{}

func (KFunc[X, A, B]) Of(fa Func[X, A]) Func[X, A] { return fa }

func (KFunc[X, A, B]) Map(fa Func[X, A], f func(A) B) Func[X, B] { return MapFunc(fa, f) }

func (KFunc[X, A, B]) Ap(fa Func[X, A], ff Func[X, Func[A, B]]) Func[X, B] {
	return ApFunc(fa, ff)
}

func (KFunc[X, A, B]) Pure(a A) Func[X, A] { return Const[X](a) }

func (KFunc[X, A, B]) Bind(fa Func[X, A], k func(A) Func[X, B]) Func[X, B] {
	return BindFunc(fa, k)
}

// MapOnce post-composes f. o is consumed; the result is one-shot.
func MapOnce[X, A, B any](o *Once[X, A], f func(A) B) *Once[X, B] {
	g := o.take()
	return NewOnce(func(x X) B {
		return f(g(x))
	})
}

// ApOnce is [ApFunc] over one-shot carriers. Both arguments are consumed.
// If of has already been used, ApOnce panics and o is left intact.
func ApOnce[X, A, B any](o *Once[X, A], of *Once[X, Func[A, B]]) *Once[X, B] {
	h := of.take()
	g := o.take()
	return NewOnce(func(x X) B {
		a := g(x)
		return h(x)(a)
	})
}

// PureOnce returns a one-shot function ignoring its input.
func PureOnce[X, A any](a A) *Once[X, A] {
	return NewOnce(func(X) A {
		return a
	})
}

// BindOnce is [BindFunc] over one-shot carriers. o is consumed, and the
// carrier returned by k is called exactly once.
func BindOnce[X, A, B any](o *Once[X, A], k func(A) *Once[X, B]) *Once[X, B] {
	g := o.take()
	return NewOnce(func(x X) B {
		return k(g(x)).Call(x)
	})
}

// JoinOnce collapses a one-shot function returning a one-shot function.
func JoinOnce[X, A any](oo *Once[X, *Once[X, A]]) *Once[X, A] {
	return BindOnce(oo, Id[*Once[X, A]])
}

// KOnce is the constructor tag for [Once] with the input type X fixed.
type KOnce[X, A, B any] struct{}

func (KOnce[X, A, B]) Of(fa *Once[X, A]) *Once[X, A] { return fa }

func (KOnce[X, A, B]) Map(fa *Once[X, A], f func(A) B) *Once[X, B] { return MapOnce(fa, f) }

func (KOnce[X, A, B]) Ap(fa *Once[X, A], ff *Once[X, Func[A, B]]) *Once[X, B] {
	return ApOnce(fa, ff)
}

func (KOnce[X, A, B]) Pure(a A) *Once[X, A] { return PureOnce[X](a) }

func (KOnce[X, A, B]) Bind(fa *Once[X, A], k func(A) *Once[X, B]) *Once[X, B] {
	return BindOnce(fa, k)
}
