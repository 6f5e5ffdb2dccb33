package index

import (
	"iter"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/avl"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys[K, V any](seq iter.Seq2[K, V]) []K {
	var out []K
	for k := range seq {
		out = append(out, k)
	}
	return out
}

func TestNewRequiresComparison(t *testing.T) {
	_, err := New[string, int](nil, Config{})
	assert.ErrorIs(t, err, avl.ErrInvalidConfig)
	_, err = NewOrdered[int, int](Config{Duplicates: Policy(9)})
	assert.ErrorIs(t, err, avl.ErrInvalidConfig)
}

func TestPutGetDeleteReplace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	idx, err := NewOrdered[int, string](Config{})
	require.NoError(t, err)
	for _, k := range []int{50, 20, 70, 10, 30, 60, 80, 25, 35} {
		assert.True(t, idx.Put(k, "v"+strings.Repeat("*", k%3)))
	}
	require.NoError(t, idx.Check())
	assert.Equal(t, 9, idx.Len())
	assert.Equal(t, []int{10, 20, 25, 30, 35, 50, 60, 70, 80}, keys(idx.All()))

	assert.False(t, idx.Put(30, "thirty"), "put of existing key must not add")
	v, ok := idx.Get(30)
	assert.True(t, ok)
	assert.Equal(t, "thirty", v)
	assert.Equal(t, 9, idx.Len())

	for _, k := range []int{20, 70, 25} {
		_, ok := idx.Delete(k)
		assert.True(t, ok, "delete %d", k)
		require.NoError(t, idx.Check())
	}
	assert.Equal(t, []int{10, 30, 35, 50, 60, 80}, keys(idx.All()))
	_, ok = idx.Delete(25)
	assert.False(t, ok)
	assert.False(t, idx.Has(70))
	assert.True(t, idx.Has(80))
}

func TestKeepPolicy(t *testing.T) {
	idx, err := NewOrdered[string, int](Config{Duplicates: Keep})
	require.NoError(t, err)
	assert.True(t, idx.Put("a", 1))
	assert.False(t, idx.Put("a", 2))
	v, _ := idx.Get("a")
	assert.Equal(t, 1, v)
	assert.Equal(t, Keep, idx.Policy())
}

func TestMultiPolicyKeepsInsertionOrder(t *testing.T) {
	idx, err := NewOrdered[int, int](Config{Duplicates: Multi})
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		idx.Put(i%4, i)
	}
	require.NoError(t, idx.Check())
	assert.Equal(t, 20, idx.Len())
	assert.Equal(t, []int{1, 5, 9, 13, 17}, slices.Collect(idx.Values(1)))
	v, ok := idx.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 2, v, "Get must return the entry put first")

	v, ok = idx.Delete(2)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{6, 10, 14, 18}, slices.Collect(idx.Values(2)))

	assert.Equal(t, 5, idx.DeleteAll(3))
	assert.False(t, idx.Has(3))
	assert.Equal(t, 0, idx.DeleteAll(3))
	require.NoError(t, idx.Check())
	assert.Equal(t, 14, idx.Len())
}

func TestMinMaxFloorCeil(t *testing.T) {
	idx, err := NewOrdered[int, bool](Config{})
	require.NoError(t, err)
	_, ok := idx.Min()
	assert.False(t, ok)
	for _, k := range []int{40, 10, 30, 20} {
		idx.Put(k, true)
	}
	e, ok := idx.Min()
	assert.True(t, ok)
	assert.Equal(t, 10, e.Key)
	e, _ = idx.Max()
	assert.Equal(t, 40, e.Key)
	e, ok = idx.Floor(25)
	assert.True(t, ok)
	assert.Equal(t, 20, e.Key)
	e, _ = idx.Ceil(25)
	assert.Equal(t, 30, e.Key)
	_, ok = idx.Floor(5)
	assert.False(t, ok)
	_, ok = idx.Ceil(41)
	assert.False(t, ok)
}

func TestRangeAscendBackward(t *testing.T) {
	idx, err := NewOrdered[int, int](Config{})
	require.NoError(t, err)
	for k := 0; k < 50; k += 5 {
		idx.Put(k, k*k)
	}
	assert.Equal(t, []int{10, 15, 20}, keys(idx.Range(8, 25)))
	assert.Equal(t, []int{35, 40, 45}, keys(idx.Ascend(33)))
	assert.Empty(t, keys(idx.Range(46, 100)))
	back := keys(idx.Backward())
	assert.Equal(t, 45, back[0])
	assert.True(t, slices.IsSortedFunc(back, func(a, b int) int { return b - a }))
	for k, v := range idx.All() {
		assert.Equal(t, k*k, v)
	}
}

func TestCustomComparison(t *testing.T) {
	idx, err := New[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}, Config{})
	require.NoError(t, err)
	idx.Put("Banana", 1)
	idx.Put("apple", 2)
	idx.Put("APPLE", 3)
	assert.Equal(t, 2, idx.Len())
	v, _ := idx.Get("Apple")
	assert.Equal(t, 3, v)
	assert.Equal(t, []string{"APPLE", "Banana"}, keys(idx.All()))
}

func TestRandomAgainstMap(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	idx, err := NewOrdered[int, int](Config{Capacity: 256})
	require.NoError(t, err)
	ref := make(map[int]int)
	for i := 0; i < 5000; i++ {
		k := r.Intn(300)
		if r.Intn(2) == 0 {
			_, existed := ref[k]
			assert.Equal(t, !existed, idx.Put(k, i))
			ref[k] = i
		} else {
			v, ok := idx.Delete(k)
			rv, rok := ref[k]
			require.Equal(t, rok, ok)
			if ok {
				assert.Equal(t, rv, v)
			}
			delete(ref, k)
		}
	}
	require.NoError(t, idx.Check())
	require.Equal(t, len(ref), idx.Len())
	for k, v := range idx.All() {
		assert.Equal(t, ref[k], v)
	}
}
