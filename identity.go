// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// Identity wraps exactly one value. It adds no structure and is the
// base monad of [Reader].
type Identity[A any] struct {
	Value A
}

// MapIdentity transforms the wrapped value.
func MapIdentity[A, B any](i Identity[A], f func(A) B) Identity[B] {
	return Identity[B]{Value: f(i.Value)}
}

// ApIdentity applies the wrapped function to the wrapped value.
func ApIdentity[A, B any](i Identity[A], f Identity[Func[A, B]]) Identity[B] {
	return Identity[B]{Value: f.Value(i.Value)}
}

// BindIdentity passes the wrapped value to k.
func BindIdentity[A, B any](i Identity[A], k func(A) Identity[B]) Identity[B] {
	return k(i.Value)
}

// JoinIdentity removes one layer of wrapping.
func JoinIdentity[A any](ii Identity[Identity[A]]) Identity[A] {
	return ii.Value
}

// KIdentity is the constructor tag for [Identity].
type KIdentity[A, B any] struct{}

func (KIdentity[A, B]) Of(fa Identity[A]) Identity[A] { return fa }

func (KIdentity[A, B]) Map(fa Identity[A], f func(A) B) Identity[B] { return MapIdentity(fa, f) }

func (KIdentity[A, B]) Ap(fa Identity[A], ff Identity[Func[A, B]]) Identity[B] {
	return ApIdentity(fa, ff)
}

func (KIdentity[A, B]) Pure(a A) Identity[A] { return Identity[A]{Value: a} }

func (KIdentity[A, B]) Bind(fa Identity[A], k func(A) Identity[B]) Identity[B] {
	return BindIdentity(fa, k)
}
