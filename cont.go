// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Suspend creates a continuation from a CPS function.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Run executes a continuation with the identity continuation.
func Run[A any](m Cont[A, A]) A {
	return m(Id[A])
}

// RunWith executes a continuation with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// BindCont sequences two continuations.
// It runs m, then passes the result to f to get a new continuation.
func BindCont[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// MapCont applies a pure function to the result of a continuation.
// Equivalent to BindCont(m, func(a) Return(f(a))) without the
// intermediate Return closure.
func MapCont[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// ApCont runs the value computation, then the function computation,
// and applies the function.
func ApCont[R, A, B any](m Cont[R, A], mf Cont[R, Func[A, B]]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return mf(func(f Func[A, B]) R {
				return k(f(a))
			})
		})
	}
}

// ThenCont sequences two continuations, discarding the first result.
func ThenCont[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// JoinCont flattens a continuation producing a continuation.
func JoinCont[R, A any](mm Cont[R, Cont[R, A]]) Cont[R, A] {
	return BindCont(mm, Id[Cont[R, A]])
}

// Shift captures the current continuation up to the nearest Reset.
// The function f receives the captured continuation k, which can be
// invoked zero or more times.
//
// Shift/Reset follow Danvy & Filinski's formulation (1990).
//
//	Reset(BindCont(Shift(func(k func(int) int) int {
//	    return k(k(3))
//	}), func(x int) Cont[int, int] {
//	    return Return[int](x * 2)
//	}))
//	// Result: 12 (3 * 2 * 2)
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset establishes a delimiter for Shift.
// Continuations captured by Shift stop at the nearest enclosing Reset.
// m is evaluated eagerly, when Reset is called, not when the result is run.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R, A](Run(m))
}

// KCont is the constructor tag for [Cont] with the answer type R fixed.
type KCont[R, A, B any] struct{}

func (KCont[R, A, B]) Of(fa Cont[R, A]) Cont[R, A] { return fa }

func (KCont[R, A, B]) Map(fa Cont[R, A], f func(A) B) Cont[R, B] { return MapCont(fa, f) }

func (KCont[R, A, B]) Ap(fa Cont[R, A], ff Cont[R, Func[A, B]]) Cont[R, B] {
	return ApCont(fa, ff)
}

func (KCont[R, A, B]) Pure(a A) Cont[R, A] { return Return[R](a) }

func (KCont[R, A, B]) Bind(fa Cont[R, A], k func(A) Cont[R, B]) Cont[R, B] {
	return BindCont(fa, k)
}
