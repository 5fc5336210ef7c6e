// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Option is a value that is either present (Some) or absent (None).
// Option is comparable when A is.
type Option[A any] struct {
	value A
	ok    bool
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, ok: true}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// GetOrElse returns the value, or def when absent.
func (o Option[A]) GetOrElse(def A) A {
	if o.ok {
		return o.value
	}
	return def
}

// MapOption applies f to a present value. None stays None.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}

// ApOption applies a present function to a present value.
// Any absent side yields None.
func ApOption[A, B any](o Option[A], of Option[Func[A, B]]) Option[B] {
	if o.ok && of.ok {
		return Some(of.value(o.value))
	}
	return None[B]()
}

// BindOption runs k on a present value. None short-circuits.
func BindOption[A, B any](o Option[A], k func(A) Option[B]) Option[B] {
	if o.ok {
		return k(o.value)
	}
	return None[B]()
}

// JoinOption flattens a nested Option.
func JoinOption[A any](oo Option[Option[A]]) Option[A] {
	if oo.ok {
		return oo.value
	}
	return None[A]()
}

// KOption is the constructor tag for [Option].
type KOption[A, B any] struct{}

func (KOption[A, B]) Of(fa Option[A]) Option[A] { return fa }

func (KOption[A, B]) Map(fa Option[A], f func(A) B) Option[B] { return MapOption(fa, f) }

func (KOption[A, B]) Ap(fa Option[A], ff Option[Func[A, B]]) Option[B] { return ApOption(fa, ff) }

func (KOption[A, B]) Pure(a A) Option[A] { return Some(a) }

func (KOption[A, B]) Bind(fa Option[A], k func(A) Option[B]) Option[B] { return BindOption(fa, k) }
