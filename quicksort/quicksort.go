package quicksort

import (
	"cmp"
	"fmt"
)

// Sort sorts a in place, ascending unless WithDescending is given.
func Sort[T cmp.Ordered](a []T, opts ...Option) {
	SortFunc(a, cmp.Compare[T], opts...)
}

// SortFunc sorts a in place using compare, which must return a negative
// number when x < y, zero when equal and a positive number when x > y.
func SortFunc[T any](a []T, compare func(x, y T) int, opts ...Option) {
	newSorter(compare, opts).quicksort(a, 0, len(a)-1)
}

// SortRange sorts the half-open range a[lo:hi] in place and leaves the rest
// of a untouched.
func SortRange[T cmp.Ordered](a []T, lo, hi int, opts ...Option) error {
	if lo < 0 || hi < lo || hi > len(a) {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrRange, lo, hi, len(a))
	}
	newSorter(cmp.Compare[T], opts).quicksort(a, lo, hi-1)

	return nil
}

// InsertionSort sorts a in place with insertion sort. It is stable.
func InsertionSort[T cmp.Ordered](a []T, opts ...Option) {
	newSorter(cmp.Compare[T], opts).insertionSort(a, 0, len(a)-1)
}

// Median3 returns whichever of the indexes x, y and z holds the median of
// a[x], a[y] and a[z].
func Median3[T cmp.Ordered](a []T, x, y, z int) int {
	return median3(a, x, y, z, cmp.Compare[T])
}

func median3[T any](a []T, x, y, z int, compare func(x, y T) int) int {
	// Order x and y so that a[x] <= a[y].
	if compare(a[y], a[x]) < 0 {
		x, y = y, x
	}
	if compare(a[z], a[y]) >= 0 {
		return y
	}
	if compare(a[z], a[x]) < 0 {
		return x
	}

	return z
}

// sorter carries the comparison and options through the recursion.
type sorter[T any] struct {
	compare   func(x, y T) int
	desc      bool
	threshold int
}

func newSorter[T any](compare func(x, y T) int, opts []Option) sorter[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return sorter[T]{compare: compare, desc: cfg.Descending, threshold: cfg.InsertionThreshold}
}

// before reports whether x belongs strictly ahead of y in the output order.
func (s sorter[T]) before(x, y T) bool {
	if s.desc {
		return s.compare(x, y) > 0
	}

	return s.compare(x, y) < 0
}

// quicksort sorts the inclusive range a[left..right].
func (s sorter[T]) quicksort(a []T, left, right int) {
	for right-left+1 > s.threshold {
		p := s.partition(a, left, right)
		if p-left < right-p {
			s.quicksort(a, left, p-1)
			left = p + 1
		} else {
			s.quicksort(a, p+1, right)
			right = p - 1
		}
	}
	s.insertionSort(a, left, right)
}

// partition moves the median-of-three pivot to a[right], gathers elements
// ahead of it on the left and returns the pivot's final index.
func (s sorter[T]) partition(a []T, left, right int) int {
	mid := left + (right-left)/2
	m := median3(a, left, mid, right, s.compare)
	a[m], a[right] = a[right], a[m]

	pivot := a[right]
	i := left
	for j := left; j < right; j++ {
		if s.before(a[j], pivot) {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[right] = a[right], a[i]

	return i
}

// insertionSort sorts the inclusive range a[left..right].
func (s sorter[T]) insertionSort(a []T, left, right int) {
	for i := left + 1; i <= right; i++ {
		cur := a[i]
		j := i - 1
		for j >= left && s.before(cur, a[j]) {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = cur
	}
}
