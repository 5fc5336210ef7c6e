// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Slices are the Sequence constructor. The applicative instance is the
// Cartesian one: Ap pairs every function with every value.

// MapSlice applies f to each element, preserving order.
func MapSlice[A, B any](xs []A, f func(A) B) []B {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return out
}

// ApSlice applies every function to every value, function-major:
// the result is fs[0](xs...), fs[1](xs...), ... with length len(fs)*len(xs).
func ApSlice[A, B any](xs []A, fs []Func[A, B]) []B {
	out := make([]B, 0, len(xs)*len(fs))
	for _, f := range fs {
		for _, x := range xs {
			out = append(out, f(x))
		}
	}
	return out
}

// BindSlice is flat-map: k runs per element and the results are
// concatenated in element order.
func BindSlice[A, B any](xs []A, k func(A) []B) []B {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		out = append(out, k(x)...)
	}
	return out
}

// JoinSlice concatenates nested slices.
func JoinSlice[A any](xss [][]A) []A {
	n := 0
	for _, xs := range xss {
		n += len(xs)
	}
	out := make([]A, 0, n)
	for _, xs := range xss {
		out = append(out, xs...)
	}
	return out
}

// KSlice is the constructor tag for slices.
type KSlice[A, B any] struct{}

func (KSlice[A, B]) Of(fa []A) []A { return fa }

func (KSlice[A, B]) Map(fa []A, f func(A) B) []B { return MapSlice(fa, f) }

func (KSlice[A, B]) Ap(fa []A, ff []Func[A, B]) []B { return ApSlice(fa, ff) }

func (KSlice[A, B]) Pure(a A) []A { return []A{a} }

func (KSlice[A, B]) Bind(fa []A, k func(A) []B) []B { return BindSlice(fa, k) }
