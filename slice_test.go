// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kind_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/kind"
)

func TestMapSlicePreservesOrder(t *testing.T) {
	got := kind.MapSlice([]int{3, 1, 2}, strconv.Itoa)
	require.Equal(t, []string{"3", "1", "2"}, got)
	require.Empty(t, kind.MapSlice([]int{}, strconv.Itoa))
}

func TestApSliceFunctionMajor(t *testing.T) {
	fs := []kind.Func[int, int]{
		func(x int) int { return x + 1 },
		func(x int) int { return x * 10 },
	}
	require.Equal(t, []int{2, 3, 10, 20}, kind.ApSlice([]int{1, 2}, fs))
	require.Empty(t, kind.ApSlice([]int{}, fs))
	require.Empty(t, kind.ApSlice[int, int]([]int{1, 2}, nil))
}

func TestBindSliceElementMajor(t *testing.T) {
	got := kind.BindSlice([]int{1, 2}, func(x int) []int { return []int{x, 10 * x} })
	require.Equal(t, []int{1, 10, 2, 20}, got)
}

func TestJoinSlice(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, kind.JoinSlice([][]int{{1}, {}, {2, 3}}))
	require.Empty(t, kind.JoinSlice[int](nil))
}

func TestKSlicePure(t *testing.T) {
	require.Equal(t, []string{"x"}, kind.KSlice[string, int]{}.Pure("x"))
}

func TestSliceLift2Cartesian(t *testing.T) {
	type (
		kmap = kind.KSlice[int, kind.Func[string, string]]
		kap  = kind.KSlice[string, string]
	)
	got := kind.Lift2[kmap, kap, int, string, string, []int, []string, []string, []kind.Func[string, string]](
		kind.Curry(func(n int, s string) string { return strconv.Itoa(n) + s }),
		[]int{1, 2}, []string{"a", "b"},
	)
	require.Equal(t, []string{"1a", "1b", "2a", "2b"}, got)
}

func TestIdentity(t *testing.T) {
	i := kind.Identity[int]{Value: 4}
	require.Equal(t, kind.Identity[int]{Value: 5}, kind.MapIdentity(i, func(x int) int { return x + 1 }))
	f := kind.Identity[kind.Func[int, string]]{Value: strconv.Itoa}
	require.Equal(t, kind.Identity[string]{Value: "4"}, kind.ApIdentity(i, f))
	got := kind.BindIdentity(i, func(x int) kind.Identity[int] { return kind.Identity[int]{Value: x * x} })
	require.Equal(t, 16, got.Value)
	require.Equal(t, i, kind.JoinIdentity(kind.Identity[kind.Identity[int]]{Value: i}))
	require.Equal(t, i, kind.KIdentity[int, int]{}.Pure(4))
}
