// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Func is a reusable unary function value.
// It is the function representation embedded in every Apply carrier:
// Ap takes F applied to Func[A, B].
type Func[X, Y any] func(X) Y

// Call invokes f. Func may be called any number of times.
func (f Func[X, Y]) Call(x X) Y {
	return f(x)
}

// Once converts f into a one-shot function.
func (f Func[X, Y]) Once() *Once[X, Y] {
	return NewOnce(f)
}

// Id is the identity function, the two-sided unit of [Then] and [Compose].
func Id[A any](a A) A { return a }

// Then is forward composition: Then(f, g)(x) == g(f(x)).
func Then[A, B, C any](f Func[A, B], g Func[B, C]) Func[A, C] {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose is reverse composition: Compose(g, f)(x) == g(f(x)).
func Compose[A, B, C any](g Func[B, C], f Func[A, B]) Func[A, C] {
	return Then(f, g)
}

// Const returns a function that ignores its argument and returns a.
func Const[X, A any](a A) Func[X, A] {
	return func(X) A {
		return a
	}
}

// Curry converts a binary function into a function returning a [Func].
// The result is the shape expected by [Lift2].
func Curry[A, B, C any](f func(A, B) C) func(A) Func[B, C] {
	return func(a A) Func[B, C] {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 is the three-argument [Curry], shaped for [Lift3].
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) Func[B, Func[C, D]] {
	return func(a A) Func[B, Func[C, D]] {
		return func(b B) Func[C, D] {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}
