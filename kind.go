// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Kind is implemented by every constructor tag.
//
// Go has no type-constructor parameters, so "F applied to A" cannot be
// computed from F. Instead each tag is a zero-size struct instantiated at the
// element types an operation touches, and the carrier types (FA, FB, ...)
// travel as explicit type parameters. Of is the identity projection onto the
// carrier: a tag satisfies Kind[FA] only for its own carrier type FA, which
// is what ties the tag and the concrete instantiation together.
//
//	KOption[A, B]   Of: Option[A]
//	KSlice[A, B]    Of: []A
//	KReaderT[...]   Of: ReaderT[R, MA]
type Kind[FA any] interface {
	Of(fa FA) FA
}

// Functor maps a carrier FA (F applied to A) to FB (F applied to B),
// preserving its shape.
//
// Laws:
//
//	Map(fa, Id)             ≡ fa
//	Map(fa, g ∘ f)          ≡ Map(Map(fa, f), g)
type Functor[A, B, FA, FB any] interface {
	Kind[FA]
	Map(fa FA, f func(A) B) FB
}

// Apply applies a contextual function to a contextual value.
// FF is F applied to Func[A, B].
//
// Law (composition), with compose(f)(g) = f ∘ g:
//
//	Ap(w, Ap(v, Map(u, compose))) ≡ Ap(Ap(w, v), u)
type Apply[A, B, FA, FB, FF any] interface {
	Functor[A, B, FA, FB]
	Ap(fa FA, ff FF) FB
}

// Pointed embeds a value in the minimal structure of a constructor.
// It is the Pure facet of [Applicative], split out so that operations
// needing only Pure (Ask, LiftA1) can ask for less.
type Pointed[A, FA any] interface {
	Pure(a A) FA
}

// Applicative is an [Apply] with Pure.
//
// Laws:
//
//	Ap(fa, Pure(Id))            ≡ fa
//	Ap(Pure(x), Pure(f))        ≡ Pure(f(x))
//	Ap(Pure(y), u)              ≡ Ap(u, Pure(func(f) f(y)))
//
// Constant carriers (functions, ReaderT) return the same value from Pure on
// every invocation. Values with reference semantics are therefore shared
// between invocations; copy them before mutating.
type Applicative[A, B, FA, FB, FF any] interface {
	Apply[A, B, FA, FB, FF]
	Pointed[A, FA]
}

// Bind sequences a contextual value with a continuation producing a new
// contextual value. The continuation may be invoked many times (slices
// invoke it per element).
type Bind[A, B, FA, FB, FF any] interface {
	Apply[A, B, FA, FB, FF]
	Bind(fa FA, k func(A) FB) FB
}

// Monad is an [Applicative] with [Bind].
//
// Laws:
//
//	Bind(Pure(a), k)            ≡ k(a)
//	Bind(m, Pure)               ≡ m
//	Bind(Bind(m, k), h)         ≡ Bind(m, func(a) Bind(k(a), h))
type Monad[A, B, FA, FB, FF any] interface {
	Applicative[A, B, FA, FB, FF]
	Bind[A, B, FA, FB, FF]
}
