package quicksort_test

import (
	"cmp"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/classics/quicksort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inputs returns a spread of shapes for size n: random, sorted, reversed,
// all equal and few distinct values.
func inputs(rng *rand.Rand, n int) map[string][]int {
	random := make([]int, n)
	sorted := make([]int, n)
	reversed := make([]int, n)
	equal := make([]int, n)
	few := make([]int, n)
	for i := 0; i < n; i++ {
		random[i] = rng.Intn(1000) - 500
		sorted[i] = i
		reversed[i] = n - i
		equal[i] = 7
		few[i] = rng.Intn(3)
	}

	return map[string][]int{
		"random":   random,
		"sorted":   sorted,
		"reversed": reversed,
		"equal":    equal,
		"few":      few,
	}
}

func descending(x, y int) int { return cmp.Compare(y, x) }

// TestSort_Properties checks ordering and multiset equality in both directions.
func TestSort_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, n := range []int{0, 1, 2, 3, 9, 10, 11, 12, 31, 100, 1000, 5000} {
		for shape, in := range inputs(rng, n) {
			asc := slices.Clone(in)
			quicksort.Sort(asc)
			require.True(t, slices.IsSorted(asc), "%s n=%d ascending", shape, n)

			desc := slices.Clone(in)
			quicksort.Sort(desc, quicksort.WithDescending())
			require.True(t, slices.IsSortedFunc(desc, descending), "%s n=%d descending", shape, n)

			want := slices.Clone(in)
			slices.Sort(want)
			require.Equal(t, want, asc, "%s n=%d permutation", shape, n)
			slices.Reverse(want)
			require.Equal(t, want, desc, "%s n=%d permutation", shape, n)
		}
	}
}

// TestSort_Idempotent sorts twice and expects no change the second time.
func TestSort_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a := inputs(rng, 777)["random"]
	quicksort.Sort(a)
	once := slices.Clone(a)
	quicksort.Sort(a)
	assert.Equal(t, once, a)
}

func TestSort_Boundaries(t *testing.T) {
	var empty []int
	quicksort.Sort(empty)
	assert.Nil(t, empty)

	one := []string{"x"}
	quicksort.Sort(one, quicksort.WithDescending())
	assert.Equal(t, []string{"x"}, one)
}

func TestSort_Strings(t *testing.T) {
	a := strings.Fields("pear apple fig banana cherry kiwi date grape lemon mango orange quince")
	quicksort.Sort(a)
	assert.Equal(t, strings.Fields("apple banana cherry date fig grape kiwi lemon mango orange pear quince"), a)
}

func TestSort_Floats(t *testing.T) {
	a := []float64{3.5, -1, 2.25, 0, 9, -7.5, 1e-3, 4, 4, 100, -0.5, 8}
	quicksort.Sort(a, quicksort.WithDescending())
	assert.Equal(t, []float64{100, 9, 8, 4, 4, 3.5, 2.25, 1e-3, 0, -0.5, -1, -7.5}, a)
}

// TestSortFunc_Struct sorts records by a key with a custom comparison.
func TestSortFunc_Struct(t *testing.T) {
	type rec struct {
		name string
		age  int
	}
	rng := rand.New(rand.NewSource(12))
	recs := make([]rec, 200)
	for i := range recs {
		recs[i] = rec{name: string(rune('a' + i%26)), age: rng.Intn(90)}
	}

	byAge := func(x, y rec) int { return cmp.Compare(x.age, y.age) }
	quicksort.SortFunc(recs, byAge)
	assert.True(t, slices.IsSortedFunc(recs, byAge))

	quicksort.SortFunc(recs, byAge, quicksort.WithDescending())
	assert.True(t, slices.IsSortedFunc(recs, func(x, y rec) int { return byAge(y, x) }))
}

// TestSort_Thresholds exercises the partition path down to single elements
// and the pure insertion sort path.
func TestSort_Thresholds(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for _, th := range []int{1, 2, 5, 10, 64, 10000} {
		for shape, in := range inputs(rng, 300) {
			a := slices.Clone(in)
			quicksort.Sort(a, quicksort.WithInsertionThreshold(th))
			require.True(t, slices.IsSorted(a), "%s threshold=%d", shape, th)
		}
	}

	assert.PanicsWithValue(t, quicksort.ErrBadThreshold.Error(), func() {
		quicksort.Sort([]int{2, 1}, quicksort.WithInsertionThreshold(0))
	})
}

func TestSortRange(t *testing.T) {
	a := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	require.NoError(t, quicksort.SortRange(a, 2, 7))
	assert.Equal(t, []int{9, 8, 3, 4, 5, 6, 7, 2, 1, 0}, a)

	require.NoError(t, quicksort.SortRange(a, 0, len(a), quicksort.WithDescending()))
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, a)

	require.NoError(t, quicksort.SortRange(a, 4, 4), "empty range is a no-op")

	assert.ErrorIs(t, quicksort.SortRange(a, -1, 3), quicksort.ErrRange)
	assert.ErrorIs(t, quicksort.SortRange(a, 5, 4), quicksort.ErrRange)
	assert.ErrorIs(t, quicksort.SortRange(a, 0, 11), quicksort.ErrRange)
}

func TestInsertionSort(t *testing.T) {
	a := []int{5, 2, 4, 6, 1, 3}
	quicksort.InsertionSort(a)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, a)

	quicksort.InsertionSort(a, quicksort.WithDescending())
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, a)
}

func TestMedian3(t *testing.T) {
	a := []int{1, 5, 3}
	assert.Equal(t, 2, quicksort.Median3(a, 0, 1, 2))
	assert.Equal(t, 2, quicksort.Median3(a, 1, 0, 2))

	b := []int{4, 4, 9}
	m := quicksort.Median3(b, 0, 1, 2)
	assert.Equal(t, 4, b[m])

	d := []int{5, 5, 1}
	assert.Equal(t, 5, d[quicksort.Median3(d, 0, 1, 2)])

	c := []int{7, 7, 7}
	assert.Equal(t, 7, c[quicksort.Median3(c, 0, 1, 2)])
}
