// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Either represents a value that is either Left (error) or Right (success).
// It is the Result-like constructor: with E fixed, Either[E, _] is a monad
// over the Right value.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// ApEither applies a Right function to a Right value.
// When both sides are Left, the value's error wins.
func ApEither[E, A, B any](e Either[E, A], ef Either[E, Func[A, B]]) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	if !ef.isRight {
		return Left[E, B](ef.left)
	}
	return Right[E](ef.right(e.right))
}

// BindEither sequences two Either computations.
func BindEither[E, A, B any](e Either[E, A], k func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return k(e.right)
	}
	return Left[E, B](e.left)
}

// JoinEither flattens a nested Either. The outer Left wins.
func JoinEither[E, A any](ee Either[E, Either[E, A]]) Either[E, A] {
	return BindEither(ee, Id[Either[E, A]])
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// KEither is the constructor tag for [Either] with the error type E fixed.
type KEither[E, A, B any] struct{}

func (KEither[E, A, B]) Of(fa Either[E, A]) Either[E, A] { return fa }

func (KEither[E, A, B]) Map(fa Either[E, A], f func(A) B) Either[E, B] { return MapEither(fa, f) }

func (KEither[E, A, B]) Ap(fa Either[E, A], ff Either[E, Func[A, B]]) Either[E, B] {
	return ApEither(fa, ff)
}

func (KEither[E, A, B]) Pure(a A) Either[E, A] { return Right[E](a) }

func (KEither[E, A, B]) Bind(fa Either[E, A], k func(A) Either[E, B]) Either[E, B] {
	return BindEither(fa, k)
}
