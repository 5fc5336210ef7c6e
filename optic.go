// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Optic transforms an inner profunctor value PAB (P over A, B) into an
// outer one PST (P over S, T). The transformation is one-shot: Run may be
// called once. Lenses and prisms build a fresh Optic for every use.
type Optic[PAB, PST any] struct {
	f *Once[PAB, PST]
}

// NewOptic creates a one-shot optic from f.
func NewOptic[PAB, PST any](f func(PAB) PST) Optic[PAB, PST] {
	return Optic[PAB, PST]{f: NewOnce(f)}
}

// Run applies the optic to p.
// Panics if the optic has already been run or composed.
func (o Optic[PAB, PST]) Run(p PAB) PST {
	return o.f.Call(p)
}

// Used reports whether the optic has been run or consumed by composition.
func (o Optic[PAB, PST]) Used() bool {
	return o.f.Used()
}

// ComposeOptic focuses outer through inner: the result takes P over the
// inner focus and yields P over the outer whole. Both optics are consumed.
func ComposeOptic[PXY, PAB, PST any](outer Optic[PAB, PST], inner Optic[PXY, PAB]) Optic[PXY, PST] {
	return Optic[PXY, PST]{f: ThenOnce(inner.f, outer.f)}
}

// Lens focuses a component A of a product S. Replacing the focus with a B
// yields a T.
type Lens[S, T, A, B any] struct {
	get func(S) A
	set func(S, B) T
}

// NewLens creates a lens from a getter and a setter.
func NewLens[S, T, A, B any](get func(S) A, set func(S, B) T) Lens[S, T, A, B] {
	return Lens[S, T, A, B]{get: get, set: set}
}

// Get extracts the focus.
func (l Lens[S, T, A, B]) Get(s S) A {
	return l.get(s)
}

// Put replaces the focus.
func (l Lens[S, T, A, B]) Put(s S, b B) T {
	return l.set(s, b)
}

// LensOptic builds a fresh optic from l over any Strong profunctor:
//
//	p ↦ Dimap(First(p), s ↦ (get(s), b ↦ set(s, b)), (b, f) ↦ f(b))
//
// KS is the Strong tag over (A, B) with the setter closure as the passive
// component; KP is the Profunctor tag that reshapes the result to (S, T).
func LensOptic[
	KS Strong[A, B, Func[B, T], PAB, PF, PS],
	KP Profunctor[S, Pair[A, Func[B, T]], Pair[B, Func[B, T]], T, PF, PST],
	S, T, A, B, PAB, PF, PS, PST any,
](l Lens[S, T, A, B]) Optic[PAB, PST] {
	return NewOptic(func(p PAB) PST {
		var ks KS
		var kp KP
		return kp.Dimap(ks.First(p), func(s S) Pair[A, Func[B, T]] {
			return Pair[A, Func[B, T]]{
				Fst: l.get(s),
				Snd: func(b B) T { return l.set(s, b) },
			}
		}, func(q Pair[B, Func[B, T]]) T {
			return q.Snd(q.Fst)
		})
	})
}

// getter is the lens optic specialised to Forget[A, _, _].
func getter[S, T, A, B any](l Lens[S, T, A, B]) Optic[Forget[A, A, B], Forget[A, S, T]] {
	return LensOptic[
		PForget[A, A, B, Func[B, T], T],
		PForget[A, S, Pair[A, Func[B, T]], Pair[B, Func[B, T]], T],
		S, T, A, B,
		Forget[A, A, B],
		Forget[A, Pair[A, Func[B, T]], Pair[B, Func[B, T]]],
		Forget[A, Pair[Func[B, T], A], Pair[Func[B, T], B]],
		Forget[A, S, T],
	](l)
}

// modifier is the lens optic specialised to Func.
func modifier[S, T, A, B any](l Lens[S, T, A, B]) Optic[Func[A, B], Func[S, T]] {
	return LensOptic[
		PFunc[A, B, Func[B, T], T],
		PFunc[S, Pair[A, Func[B, T]], Pair[B, Func[B, T]], T],
		S, T, A, B,
		Func[A, B],
		Func[Pair[A, Func[B, T]], Pair[B, Func[B, T]]],
		Func[Pair[Func[B, T], A], Pair[Func[B, T], B]],
		Func[S, T],
	](l)
}

// View extracts the focus of l from s by running the lens optic on the
// identity Forget.
func View[S, T, A, B any](l Lens[S, T, A, B], s S) A {
	return getter(l).Run(NewForget[A, A, B](Id[A])).Run(s)
}

// Over lifts f on the focus to a function on the whole.
func Over[S, T, A, B any](l Lens[S, T, A, B], f func(A) B) Func[S, T] {
	return modifier(l).Run(f)
}

// Set replaces the focus with b.
func Set[S, T, A, B any](l Lens[S, T, A, B], b B) Func[S, T] {
	return Over(l, func(A) B { return b })
}

// ComposeLens focuses outer, then inner.
func ComposeLens[S, T, A, B, X, Y any](outer Lens[S, T, A, B], inner Lens[A, B, X, Y]) Lens[S, T, X, Y] {
	return Lens[S, T, X, Y]{
		get: func(s S) X {
			return inner.get(outer.get(s))
		},
		set: func(s S, y Y) T {
			return outer.set(s, inner.set(outer.get(s), y))
		},
	}
}

// Fst focuses the first component of a Pair.
func Fst[A, B, C any]() Lens[Pair[A, C], Pair[B, C], A, B] {
	return Lens[Pair[A, C], Pair[B, C], A, B]{
		get: func(p Pair[A, C]) A { return p.Fst },
		set: func(p Pair[A, C], b B) Pair[B, C] { return Pair[B, C]{Fst: b, Snd: p.Snd} },
	}
}

// Snd focuses the second component of a Pair.
func Snd[A, B, C any]() Lens[Pair[C, A], Pair[C, B], A, B] {
	return Lens[Pair[C, A], Pair[C, B], A, B]{
		get: func(p Pair[C, A]) A { return p.Snd },
		set: func(p Pair[C, A], b B) Pair[C, B] { return Pair[C, B]{Fst: p.Fst, Snd: b} },
	}
}

// Prism focuses one case A of a sum S. Match returns the focus, or the
// whole already converted to T when the case does not match.
type Prism[S, T, A, B any] struct {
	match func(S) Either[T, A]
	build func(B) T
}

// NewPrism creates a prism from a matcher and a builder.
func NewPrism[S, T, A, B any](match func(S) Either[T, A], build func(B) T) Prism[S, T, A, B] {
	return Prism[S, T, A, B]{match: match, build: build}
}

// Preview returns the focus when s matches.
func (p Prism[S, T, A, B]) Preview(s S) Option[A] {
	return MatchEither(p.match(s), func(T) Option[A] { return None[A]() }, Some[A])
}

// Review builds a whole from a focus.
func (p Prism[S, T, A, B]) Review(b B) T {
	return p.build(b)
}

// PrismOptic builds a fresh optic from p over any Choice profunctor:
//
//	q ↦ Dimap(Right(q), match, either(Id, build))
func PrismOptic[
	KC Choice[A, B, T, PAB, PL, PR],
	KP Profunctor[S, Either[T, A], Either[T, B], T, PR, PST],
	S, T, A, B, PAB, PL, PR, PST any,
](p Prism[S, T, A, B]) Optic[PAB, PST] {
	return NewOptic(func(q PAB) PST {
		var kc KC
		var kp KP
		return kp.Dimap(kc.Right(q), p.match, func(e Either[T, B]) T {
			return MatchEither(e, Id[T], p.build)
		})
	})
}

// OverPrism lifts f on the focus to a function on the whole; values that
// do not match pass through.
func OverPrism[S, T, A, B any](p Prism[S, T, A, B], f func(A) B) Func[S, T] {
	return PrismOptic[
		PFunc[A, B, T, T],
		PFunc[S, Either[T, A], Either[T, B], T],
		S, T, A, B,
		Func[A, B],
		Func[Either[A, T], Either[B, T]],
		Func[Either[T, A], Either[T, B]],
		Func[S, T],
	](p).Run(f)
}

// LeftPrism focuses the Left case of an Either.
func LeftPrism[E, F, A any]() Prism[Either[E, A], Either[F, A], E, F] {
	return Prism[Either[E, A], Either[F, A], E, F]{
		match: func(e Either[E, A]) Either[Either[F, A], E] {
			if e.isRight {
				return Left[Either[F, A], E](Right[F](e.right))
			}
			return Right[Either[F, A]](e.left)
		},
		build: Left[F, A],
	}
}

// RightPrism focuses the Right case of an Either.
func RightPrism[E, A, B any]() Prism[Either[E, A], Either[E, B], A, B] {
	return Prism[Either[E, A], Either[E, B], A, B]{
		match: func(e Either[E, A]) Either[Either[E, B], A] {
			if e.isRight {
				return Right[Either[E, B]](e.right)
			}
			return Left[Either[E, B], A](Left[E, B](e.left))
		},
		build: Right[E, B],
	}
}

// SomePrism focuses the present case of an Option.
func SomePrism[A, B any]() Prism[Option[A], Option[B], A, B] {
	return Prism[Option[A], Option[B], A, B]{
		match: func(o Option[A]) Either[Option[B], A] {
			if o.ok {
				return Right[Option[B]](o.value)
			}
			return Left[Option[B], A](None[B]())
		},
		build: Some[B],
	}
}
