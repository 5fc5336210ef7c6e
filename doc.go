// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kind provides generic context-carrying type constructors for Go:
// the Functor, Apply, Applicative, Bind and Monad hierarchy, a ReaderT monad
// transformer, and a profunctor-encoded optics layer.
//
// # Kind Encoding
//
// Go generics have no type-constructor parameters and no generic methods,
// so "F applied to A" cannot be written. The package encodes it with
// constructor tags: zero-size structs instantiated at the element types an
// operation touches, paired with the carrier types as explicit type
// parameters.
//
//   - [Kind]: type Kind[FA any], a tag knows its carrier through Of(FA) FA
//   - [Functor]: type Functor[A, B, FA, FB any], Map(FA, func(A) B) FB
//   - [Apply]: Ap(FA, FF) FB, where FF is F applied to [Func][A, B]
//   - [Pointed]: Pure(A) FA
//   - [Applicative]: [Apply] and [Pointed]
//   - [Bind]: Bind(FA, func(A) FB) FB
//   - [Monad]: [Applicative] and [Bind]
//
// Generic code receives a tag as a type parameter constrained by one of
// these interfaces and calls it through its zero value:
//
//	func Lift2[KF Functor[A, Func[B, C], FA, FBC], KA Apply[B, C, FB, FC, FBC], ...](
//		f func(A) Func[B, C], fa FA, fb FB) FC {
//		var kf KF
//		var ka KA
//		return ka.Ap(fb, kf.Map(fa, f))
//	}
//
// All dispatch is resolved at instantiation; tags carry no state.
//
// # Constructors
//
//   - [KOption]: [Option], absent values short-circuit
//   - [KEither]: [Either], Left short-circuits; Ap reports the value's Left first
//   - [KSlice]: Go slices, Cartesian Ap (function-major), element-major Bind
//   - [KIdentity]: [Identity], no effect
//   - [KFunc]: reusable [Func] with a fixed input (the environment monad)
//   - [KOnce]: one-shot [Once] with a fixed input
//   - [KCont]: [Cont] with a fixed answer type
//   - [KReaderT]: [ReaderT] over any inner monad tag
//
// Each constructor also offers plain functions (MapOption, BindSlice, ...)
// for callers holding a concrete carrier.
//
// # Callables
//
//   - [Func]: reusable unary function
//   - [Once]: one-shot function; a second call panics
//   - [Then], [Compose], [ThenOnce], [ComposeOnce]: composition
//   - [Id], [Const], [Curry], [Curry3]
//
// Combinators that take a *[Once] consume it. Composing a reusable function
// with a one-shot one goes through [Func.Once] and yields a one-shot result.
//
// # Derived Combinators
//
//   - [Lift2], [Lift3]: lift curried functions
//   - [ApplyFirst], [ApplySecond]: sequence and keep one side
//   - [LiftA1]: Ap over Pure
//   - [Join]: Bind with the identity
//
// # Environment
//
//   - [ReaderT]: env ↦ M applied to A, shared and immutable
//   - [MonadReader]: Ask and Local, implemented by [ReaderEnv]
//   - [Ask], [Asks], [Local], [LiftReaderT]
//   - [Reader], [NewReader], [RunReader]: ReaderT over [Identity]
//
// # Delimited Control
//
//   - [Shift]: Capture the current continuation up to [Reset]
//   - [Reset]: Establish a delimiter for [Shift]
//
// # Optics
//
//   - [Profunctor], [Strong], [Choice]: Dimap, First/Second, Left/Right
//   - [PFunc]: all three for [Func]
//   - [PForget]: Profunctor and Strong for [Forget]
//   - [Lcmap], [Rmap]: one-sided Dimap
//   - [Optic]: one-shot transformation of profunctor values
//   - [Lens], [LensOptic], [View], [Over], [Set], [ComposeLens], [Fst], [Snd]
//   - [Prism], [PrismOptic], [OverPrism], [LeftPrism], [RightPrism], [SomePrism]
//
// Lenses and prisms build a fresh one-shot [Optic] per use.
package kind
