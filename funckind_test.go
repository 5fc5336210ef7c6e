// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/kind"
)

func TestFuncComposition(t *testing.T) {
	inc := kind.Func[int, int](func(x int) int { return x + 1 })
	show := kind.Func[int, string](strconv.Itoa)

	if got := kind.Then(inc, show)(4); got != "5" {
		t.Fatalf("Then: got %q, want %q", got, "5")
	}
	if got := kind.Compose(show, inc)(4); got != "5" {
		t.Fatalf("Compose: got %q, want %q", got, "5")
	}
	if got := kind.Then(kind.Func[int, int](kind.Id[int]), inc)(1); got != 2 {
		t.Fatalf("left unit: got %d, want 2", got)
	}
	if got := kind.Const[string](9)("ignored"); got != 9 {
		t.Fatalf("Const: got %d, want 9", got)
	}
}

func TestCurry3(t *testing.T) {
	f := kind.Curry3(func(a, b, c int) int { return a*100 + b*10 + c })
	if got := f(1)(2)(3); got != 123 {
		t.Fatalf("got %d, want 123", got)
	}
}

func TestMapFuncIsReusable(t *testing.T) {
	m := kind.MapFunc(kind.Func[int, int](func(x int) int { return x * 2 }), strconv.Itoa)
	for i := range 3 {
		if got, want := m(i), strconv.Itoa(i*2); got != want {
			t.Fatalf("call %d: got %q, want %q", i, got, want)
		}
	}
}

func TestMapFuncOnce(t *testing.T) {
	o := kind.MapFuncOnce(kind.Func[int, int](func(x int) int { return x * 2 }), strconv.Itoa)
	if got := o.Call(21); got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
	if !o.Used() {
		t.Fatal("expected one-shot result")
	}
}

func TestApFuncSharesInput(t *testing.T) {
	fa := kind.Func[int, int](func(x int) int { return x + 1 })
	ff := kind.Func[int, kind.Func[int, int]](func(x int) kind.Func[int, int] {
		return func(a int) int { return a * x }
	})
	if got := kind.ApFunc(fa, ff)(5); got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
}

func TestBindFuncSharesInput(t *testing.T) {
	fa := kind.Func[string, int](func(s string) int { return len(s) })
	m := kind.BindFunc(fa, func(n int) kind.Func[string, string] {
		return func(s string) string { return s + ":" + strconv.Itoa(n) }
	})
	if got := m("abc"); got != "abc:3" {
		t.Fatalf("got %q, want %q", got, "abc:3")
	}
}

func TestJoinFunc(t *testing.T) {
	ff := kind.Func[int, kind.Func[int, int]](func(x int) kind.Func[int, int] {
		return func(y int) int { return x + y }
	})
	if got := kind.JoinFunc(ff)(4); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestKFuncLift2(t *testing.T) {
	type (
		kmap = kind.KFunc[int, int, kind.Func[int, int]]
		kap  = kind.KFunc[int, int, int]
	)
	half := kind.Func[int, int](func(x int) int { return x / 2 })
	twice := kind.Func[int, int](func(x int) int { return x * 2 })
	sum := kind.Lift2[kmap, kap, int, int, int,
		kind.Func[int, int], kind.Func[int, int], kind.Func[int, int], kind.Func[int, kind.Func[int, int]]](
		kind.Curry(func(a, b int) int { return a + b }), half, twice)
	if got := sum(10); got != 25 {
		t.Fatalf("got %d, want 25", got)
	}
}

func TestOnceConstructor(t *testing.T) {
	type k = kind.KOnce[int, int, int]

	m := k{}.Map(kind.NewOnce(func(x int) int { return x + 1 }), func(x int) int { return x * 3 })
	if got := m.Call(1); got != 6 {
		t.Fatalf("Map: got %d, want 6", got)
	}

	ff := kind.NewOnce(func(x int) kind.Func[int, int] {
		return func(a int) int { return a - x }
	})
	ap := k{}.Ap(kind.NewOnce(func(x int) int { return x * 10 }), ff)
	if got := ap.Call(2); got != 18 {
		t.Fatalf("Ap: got %d, want 18", got)
	}

	if got := (k{}).Pure(7).Call(100); got != 7 {
		t.Fatalf("Pure: got %d, want 7", got)
	}

	b := k{}.Bind(kind.NewOnce(func(x int) int { return x + 1 }), func(a int) *kind.Once[int, int] {
		return kind.NewOnce(func(x int) int { return a * x })
	})
	if got := b.Call(3); got != 12 {
		t.Fatalf("Bind: got %d, want 12", got)
	}

	oo := kind.NewOnce(func(x int) *kind.Once[int, int] {
		return kind.NewOnce(func(y int) int { return x - y })
	})
	if got := kind.JoinOnce(oo).Call(5); got != 0 {
		t.Fatalf("Join: got %d, want 0", got)
	}
}

func TestOnceConstructorConsumes(t *testing.T) {
	src := kind.NewOnce(func(x int) int { return x })
	_ = kind.BindOnce(src, func(a int) *kind.Once[int, int] { return kind.PureOnce[int](a) })
	if _, ok := src.TryCall(1); ok {
		t.Fatal("Bind must consume its argument")
	}
}
