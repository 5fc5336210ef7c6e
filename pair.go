// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair creates a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Split applies f to the first component and g to the second.
func Split[A, B, C, D any](f func(A) B, g func(C) D) Func[Pair[A, C], Pair[B, D]] {
	return func(p Pair[A, C]) Pair[B, D] {
		return Pair[B, D]{Fst: f(p.Fst), Snd: g(p.Snd)}
	}
}

// Swap exchanges the components.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}
