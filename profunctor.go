// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Profunctor is a two-argument carrier, contravariant in its input and
// covariant in its output. PBC is P applied to (B, C); PAD to (A, D).
//
// Laws:
//
//	Dimap(p, Id, Id)                       ≡ p
//	Dimap(Dimap(p, h, i), f, g)            ≡ Dimap(p, h ∘ f, g ∘ i)
type Profunctor[A, B, C, D, PBC, PAD any] interface {
	Dimap(p PBC, pre func(A) B, post func(C) D) PAD
}

// Strong is a profunctor extension that threads an extra component
// through a Pair. PAB is P applied to (A, B), PFirst to
// (Pair[A, C], Pair[B, C]) and PSecond to (Pair[C, A], Pair[C, B]).
//
// Law:
//
//	First(Dimap(p, f, g)) ≡ Dimap(First(p), Split(f, Id), Split(g, Id))
type Strong[A, B, C, PAB, PFirst, PSecond any] interface {
	First(p PAB) PFirst
	Second(p PAB) PSecond
}

// Choice is a profunctor extension that routes one side of an [Either]
// through the carrier and passes the other side untouched. PLeft is P applied to
// (Either[A, C], Either[B, C]) and PRight to (Either[C, A], Either[C, B]).
type Choice[A, B, C, PAB, PLeft, PRight any] interface {
	Left(p PAB) PLeft
	Right(p PAB) PRight
}

// PFunc is the profunctor tag for [Func].
// As a Profunctor it maps Func[B, C] to Func[A, D]; as Strong and Choice it
// lifts Func[A, B] with C as the passive component.
type PFunc[A, B, C, D any] struct{}

// Dimap is post ∘ p ∘ pre.
func (PFunc[A, B, C, D]) Dimap(p Func[B, C], pre func(A) B, post func(C) D) Func[A, D] {
	return func(a A) D {
		return post(p(pre(a)))
	}
}

func (PFunc[A, B, C, D]) First(p Func[A, B]) Func[Pair[A, C], Pair[B, C]] {
	return func(q Pair[A, C]) Pair[B, C] {
		return Pair[B, C]{Fst: p(q.Fst), Snd: q.Snd}
	}
}

func (PFunc[A, B, C, D]) Second(p Func[A, B]) Func[Pair[C, A], Pair[C, B]] {
	return func(q Pair[C, A]) Pair[C, B] {
		return Pair[C, B]{Fst: q.Fst, Snd: p(q.Snd)}
	}
}

func (PFunc[A, B, C, D]) Left(p Func[A, B]) Func[Either[A, C], Either[B, C]] {
	return func(e Either[A, C]) Either[B, C] {
		return MapLeftEither[A, B, C](e, p)
	}
}

func (PFunc[A, B, C, D]) Right(p Func[A, B]) Func[Either[C, A], Either[C, B]] {
	return func(e Either[C, A]) Either[C, B] {
		return MapEither[C, A, B](e, p)
	}
}

// Forget is a profunctor that keeps only a projection A → R.
// B is phantom: nothing of type B is ever produced or consumed.
type Forget[R, A, B any] struct {
	run Func[A, R]
}

// NewForget creates a Forget from its projection.
func NewForget[R, A, B any](f func(A) R) Forget[R, A, B] {
	return Forget[R, A, B]{run: f}
}

// Run applies the projection.
func (f Forget[R, A, B]) Run(a A) R {
	return f.run(a)
}

// PForget is the profunctor tag for [Forget] with result type R.
// Choice is not defined: there is no R to return for the passive side.
type PForget[R, A, B, C, D any] struct{}

// Dimap precomposes pre; post is discarded along with the phantom output.
func (PForget[R, A, B, C, D]) Dimap(p Forget[R, B, C], pre func(A) B, _ func(C) D) Forget[R, A, D] {
	return Forget[R, A, D]{run: func(a A) R {
		return p.run(pre(a))
	}}
}

// First projects the focused component.
func (PForget[R, A, B, C, D]) First(p Forget[R, A, B]) Forget[R, Pair[A, C], Pair[B, C]] {
	return Forget[R, Pair[A, C], Pair[B, C]]{run: func(q Pair[A, C]) R {
		return p.run(q.Fst)
	}}
}

// Second projects the other component.
func (PForget[R, A, B, C, D]) Second(p Forget[R, A, B]) Forget[R, Pair[C, A], Pair[C, B]] {
	return Forget[R, Pair[C, A], Pair[C, B]]{run: func(q Pair[C, A]) R {
		return p.run(q.Snd)
	}}
}

// Lcmap maps the input side only: Dimap(p, f, Id).
func Lcmap[K Profunctor[A, B, C, C, PBC, PAC], A, B, C, PBC, PAC any](p PBC, f func(A) B) PAC {
	var k K
	return k.Dimap(p, f, Id[C])
}

// Rmap maps the output side only: Dimap(p, Id, f).
func Rmap[K Profunctor[A, A, B, C, PAB, PAC], A, B, C, PAB, PAC any](p PAB, f func(B) C) PAC {
	var k K
	return k.Dimap(p, Id[A], f)
}
