// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind

// ReaderT is the reader monad transformer: a computation that reads an
// environment R and produces MA, a value of some inner constructor M
// applied to A.
//
// The mapping is immutable after construction. Copying a ReaderT copies a
// single function value and shares its captured state, so combinators may
// capture the same ReaderT in several closures and run it with different
// environments.
type ReaderT[R, MA any] struct {
	run func(R) MA
}

// NewReaderT creates a ReaderT from its mapping.
func NewReaderT[R, MA any](f func(R) MA) ReaderT[R, MA] {
	return ReaderT[R, MA]{run: f}
}

// Run runs the computation with the given environment.
func (r ReaderT[R, MA]) Run(env R) MA {
	return r.run(env)
}

// Reader is ReaderT over [Identity].
type Reader[R, A any] = ReaderT[R, Identity[A]]

// NewReader creates a Reader from a plain projection of the environment.
func NewReader[R, A any](f func(R) A) Reader[R, A] {
	return NewReaderT(func(env R) Identity[A] {
		return Identity[A]{Value: f(env)}
	})
}

// RunReader runs a Reader and unwraps the result.
func RunReader[R, A any](r Reader[R, A], env R) A {
	return r.run(env).Value
}

// MapReaderT maps over the inner value: env ↦ M.Map(r(env), f).
// The transformer never inspects the inner structure; M's Map runs only
// when the result is given an environment.
func MapReaderT[M Functor[A, B, MA, MB], R, A, B, MA, MB any](r ReaderT[R, MA], f func(A) B) ReaderT[R, MB] {
	return NewReaderT(func(env R) MB {
		var m M
		return m.Map(r.run(env), f)
	})
}

// ApReaderT runs the value and the function with the same environment and
// applies in the inner layer.
func ApReaderT[M Apply[A, B, MA, MB, MF], R, A, B, MA, MB, MF any](r ReaderT[R, MA], rf ReaderT[R, MF]) ReaderT[R, MB] {
	return NewReaderT(func(env R) MB {
		var m M
		return m.Ap(r.run(env), rf.run(env))
	})
}

// PureReaderT ignores the environment and embeds a with M's Pure.
func PureReaderT[M Pointed[A, MA], R, A, MA any](a A) ReaderT[R, MA] {
	return NewReaderT(func(R) MA {
		var m M
		return m.Pure(a)
	})
}

// BindReaderT threads the environment through both computations:
// env ↦ M.Bind(r(env), a ↦ k(a)(env)).
func BindReaderT[M Bind[A, B, MA, MB, MF], R, A, B, MA, MB, MF any](r ReaderT[R, MA], k func(A) ReaderT[R, MB]) ReaderT[R, MB] {
	return NewReaderT(func(env R) MB {
		var m M
		return m.Bind(r.run(env), func(a A) MB {
			return k(a).run(env)
		})
	})
}

// LiftReaderT lifts an inner computation into ReaderT, ignoring the
// environment.
func LiftReaderT[R, MA any](ma MA) ReaderT[R, MA] {
	return NewReaderT(func(R) MA {
		return ma
	})
}

// KReaderT is the constructor tag for ReaderT over environment R and the
// inner monad tag M. MA, MB and MF are M applied to A, B and Func[A, B].
type KReaderT[R, A, B, MA, MB, MF any, M Monad[A, B, MA, MB, MF]] struct{}

func (KReaderT[R, A, B, MA, MB, MF, M]) Of(fa ReaderT[R, MA]) ReaderT[R, MA] { return fa }

func (KReaderT[R, A, B, MA, MB, MF, M]) Map(fa ReaderT[R, MA], f func(A) B) ReaderT[R, MB] {
	return MapReaderT[M, R, A, B, MA, MB](fa, f)
}

func (KReaderT[R, A, B, MA, MB, MF, M]) Ap(fa ReaderT[R, MA], ff ReaderT[R, MF]) ReaderT[R, MB] {
	return ApReaderT[M, R, A, B, MA, MB, MF](fa, ff)
}

func (KReaderT[R, A, B, MA, MB, MF, M]) Pure(a A) ReaderT[R, MA] {
	return PureReaderT[M, R, A, MA](a)
}

func (KReaderT[R, A, B, MA, MB, MF, M]) Bind(fa ReaderT[R, MA], k func(A) ReaderT[R, MB]) ReaderT[R, MB] {
	return BindReaderT[M, R, A, B, MA, MB, MF](fa, k)
}

// MonadReader is the environment-access surface of a ReaderT stack.
// MR is the inner constructor applied to R, MA to the focus type.
type MonadReader[R, MA, MR any] interface {
	// Ask yields the environment itself.
	Ask() ReaderT[R, MR]
	// Local runs r with the environment transformed by f.
	Local(f func(R) R, r ReaderT[R, MA]) ReaderT[R, MA]
}

// ReaderEnv implements [MonadReader] for ReaderT over the inner tag M.
type ReaderEnv[R, MA, MR any, M Pointed[R, MR]] struct{}

func (ReaderEnv[R, MA, MR, M]) Ask() ReaderT[R, MR] { return Ask[M, R, MR]() }

func (ReaderEnv[R, MA, MR, M]) Local(f func(R) R, r ReaderT[R, MA]) ReaderT[R, MA] {
	return Local(f, r)
}

// Ask yields the environment: env ↦ M.Pure(env).
func Ask[M Pointed[R, MR], R, MR any]() ReaderT[R, MR] {
	return NewReaderT(func(env R) MR {
		var m M
		return m.Pure(env)
	})
}

// Asks yields a projection of the environment: env ↦ M.Pure(f(env)).
func Asks[M Pointed[A, MA], R, A, MA any](f func(R) A) ReaderT[R, MA] {
	return NewReaderT(func(env R) MA {
		var m M
		return m.Pure(f(env))
	})
}

// Local runs r with the environment transformed by f: env ↦ r(f(env)).
func Local[R, MA any](f func(R) R, r ReaderT[R, MA]) ReaderT[R, MA] {
	return NewReaderT(func(env R) MA {
		return r.run(f(env))
	})
}
