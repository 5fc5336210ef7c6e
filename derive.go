// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Derived combinators. Each is written once against the constraint
// interfaces and instantiated per constructor by naming its tags. A tag is
// instantiated at the element types it handles, so a combinator that maps
// at one pair of types and applies at another takes two tags.

// Lift2 lifts a curried binary function over two carriers:
// Ap(fb, Map(fa, f)).
//
//	Lift2[KOption[int, Func[int, int]], KOption[int, int],
//		int, int, int, Option[int], Option[int], Option[int], Option[Func[int, int]]](
//		Curry(add), Some(1), Some(2)) // Some(3)
func Lift2[KF Functor[A, Func[B, C], FA, FBC], KA Apply[B, C, FB, FC, FBC], A, B, C, FA, FB, FC, FBC any](
	f func(A) Func[B, C], fa FA, fb FB,
) FC {
	var kf KF
	var ka KA
	return ka.Ap(fb, kf.Map(fa, f))
}

// Lift3 lifts a curried ternary function over three carriers.
func Lift3[
	KF Functor[A, Func[B, Func[C, D]], FA, FBCD],
	KB Apply[B, Func[C, D], FB, FCD, FBCD],
	KC Apply[C, D, FC, FD, FCD],
	A, B, C, D, FA, FB, FC, FD, FBCD, FCD any,
](f func(A) Func[B, Func[C, D]], fa FA, fb FB, fc FC) FD {
	var kf KF
	var kb KB
	var kc KC
	return kc.Ap(fc, kb.Ap(fb, kf.Map(fa, f)))
}

// ApplyFirst combines two carriers and keeps the first's values:
// Lift2(x ↦ _ ↦ x, fa, fb). The structure of fb still counts:
// an absent or failed fb makes the result absent or failed.
func ApplyFirst[KF Functor[A, Func[B, A], FA, FBA], KA Apply[B, A, FB, FA, FBA], A, B, FA, FB, FBA any](fa FA, fb FB) FA {
	return Lift2[KF, KA, A, B, A, FA, FB, FA, FBA](func(a A) Func[B, A] {
		return Const[B](a)
	}, fa, fb)
}

// ApplySecond combines two carriers and keeps the second's values.
func ApplySecond[KF Functor[A, Func[B, B], FA, FBB], KA Apply[B, B, FB, FB, FBB], A, B, FA, FB, FBB any](fa FA, fb FB) FB {
	return Lift2[KF, KA, A, B, B, FA, FB, FB, FBB](func(A) Func[B, B] {
		return Id[B]
	}, fa, fb)
}

// LiftA1 lifts a unary function with Pure and Ap: Ap(fa, Pure(f)).
// It agrees with Map for every lawful applicative.
func LiftA1[KP Pointed[Func[A, B], FF], KA Apply[A, B, FA, FB, FF], A, B, FA, FB, FF any](f func(A) B, fa FA) FB {
	var kp KP
	var ka KA
	return ka.Ap(fa, kp.Pure(f))
}

// Join collapses a doubly wrapped carrier: Bind(ffa, Id).
// K is the tag instantiated at the inner carrier FA and its element A.
func Join[K Bind[FA, A, FFA, FA, FF], A, FA, FFA, FF any](ffa FFA) FA {
	var k K
	return k.Bind(ffa, Id[FA])
}
