// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/kind"
)

func TestContReturnRun(t *testing.T) {
	if got := kind.Run(kind.Return[int](42)); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if got := kind.Run(kind.Return[string]("hello")); got != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestContRunWith(t *testing.T) {
	m := kind.Return[string, int](42)
	got := kind.RunWith(m, strconv.Itoa)
	if got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}
}

func TestContSuspend(t *testing.T) {
	m := kind.Suspend[int, int](func(k func(int) int) int {
		return k(42) + 1
	})
	if got := kind.Run(m); got != 43 {
		t.Fatalf("got %d, want 43", got)
	}
}

func TestBindContChain(t *testing.T) {
	m := kind.BindCont(kind.Return[int](5), func(x int) kind.Cont[int, int] {
		return kind.BindCont(kind.Return[int](x+1), func(y int) kind.Cont[int, int] {
			return kind.Return[int](y * 2)
		})
	})
	if got := kind.Run(m); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestBindContTypeChange(t *testing.T) {
	m := kind.BindCont(kind.Return[string](42), func(x int) kind.Cont[string, string] {
		return kind.Return[string](strconv.Itoa(x) + "!")
	})
	if got := kind.Run(m); got != "42!" {
		t.Fatalf("got %q, want %q", got, "42!")
	}
}

func TestMapCont(t *testing.T) {
	m := kind.MapCont(kind.Return[int](10), func(x int) int { return x * 3 })
	if got := kind.Run(m); got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
}

func TestApContOrder(t *testing.T) {
	// The value computation runs before the function computation.
	var trace []string
	v := kind.Suspend[int, int](func(k func(int) int) int {
		trace = append(trace, "value")
		return k(4)
	})
	f := kind.Suspend[int, kind.Func[int, int]](func(k func(kind.Func[int, int]) int) int {
		trace = append(trace, "func")
		return k(func(x int) int { return x * x })
	})
	if got := kind.Run(kind.ApCont(v, f)); got != 16 {
		t.Fatalf("got %d, want 16", got)
	}
	if len(trace) != 2 || trace[0] != "value" || trace[1] != "func" {
		t.Fatalf("trace = %v, want [value func]", trace)
	}
}

func TestThenCont(t *testing.T) {
	ran := false
	first := kind.Suspend[int, string](func(k func(string) int) int {
		ran = true
		return k("ignored")
	})
	if got := kind.Run(kind.ThenCont(first, kind.Return[int](7))); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if !ran {
		t.Fatal("first computation did not run")
	}
}

func TestJoinCont(t *testing.T) {
	mm := kind.Return[int](kind.Return[int](9))
	if got := kind.Run(kind.JoinCont(mm)); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestKContDerived(t *testing.T) {
	type (
		kmap = kind.KCont[int, int, kind.Func[int, int]]
		kap  = kind.KCont[int, int, int]
	)
	got := kind.Run(kind.Lift2[kmap, kap, int, int, int,
		kind.Cont[int, int], kind.Cont[int, int], kind.Cont[int, int], kind.Cont[int, kind.Func[int, int]]](
		kind.Curry(func(a, b int) int { return a*10 + b }),
		kind.Return[int](4), kind.Return[int](2),
	))
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestShiftDiscardsContinuation(t *testing.T) {
	body := 0
	m := kind.BindCont(
		kind.Shift[int, int](func(k func(int) int) int {
			return 999
		}),
		func(x int) kind.Cont[int, int] {
			body = x
			return kind.Return[int](x * 2)
		},
	)
	if got := kind.Run(m); got != 999 {
		t.Fatalf("got %d, want 999", got)
	}
	if body != 0 {
		t.Fatal("continuation body executed")
	}
}

func TestShiftSumsApplications(t *testing.T) {
	m := kind.BindCont(
		kind.Shift[int, int](func(k func(int) int) int {
			return k(1) + k(2) + k(3)
		}),
		func(x int) kind.Cont[int, int] {
			return kind.Return[int](x * 10)
		},
	)
	if got := kind.Run(m); got != 60 {
		t.Fatalf("got %d, want 60", got)
	}
}

func TestShiftTwiceInsideReset(t *testing.T) {
	m := kind.Reset[int](kind.BindCont(
		kind.Shift[int, int](func(k func(int) int) int {
			return k(k(3))
		}),
		func(x int) kind.Cont[int, int] {
			return kind.Return[int](x * 2)
		},
	))
	if got := kind.Run(m); got != 12 {
		t.Fatalf("got %d, want 12", got)
	}
}

func TestResetIsolatesShift(t *testing.T) {
	m := kind.BindCont(
		kind.Reset[int](kind.BindCont(
			kind.Shift[int, int](func(k func(int) int) int {
				return 42
			}),
			func(x int) kind.Cont[int, int] {
				return kind.Return[int](x * 1000)
			},
		)),
		func(x int) kind.Cont[int, int] {
			return kind.Return[int](x + 1)
		},
	)
	if got := kind.Run(m); got != 43 {
		t.Fatalf("got %d, want 43", got)
	}
}

func TestResetEvaluatesEagerly(t *testing.T) {
	runs := 0
	inner := kind.Suspend[int](func(k func(int) int) int {
		runs++
		return k(5)
	})
	m := kind.Reset[int](inner)
	if runs != 1 {
		t.Fatalf("after Reset: got %d runs, want 1", runs)
	}
	for range 2 {
		if got := kind.Run(m); got != 5 {
			t.Fatalf("got %d, want 5", got)
		}
	}
	if runs != 1 {
		t.Fatalf("after Run: got %d runs, want 1", runs)
	}
}

func TestShiftString(t *testing.T) {
	m := kind.BindCont(
		kind.Shift[string, string](func(k func(string) string) string {
			return k("hello") + " " + k("world")
		}),
		func(s string) kind.Cont[string, string] {
			return kind.Return[string]("[" + s + "]")
		},
	)
	if got := kind.Run(m); got != "[hello] [world]" {
		t.Fatalf("got %q, want %q", got, "[hello] [world]")
	}
}
