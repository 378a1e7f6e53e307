package quicksort

import "errors"

// DefaultInsertionThreshold is the largest range sorted by insertion sort
// instead of being partitioned.
const DefaultInsertionThreshold = 10

// Sentinel errors.
var (
	// ErrRange indicates sub-range bounds outside 0 ≤ lo ≤ hi ≤ len(a).
	ErrRange = errors.New("quicksort: range out of bounds")

	// ErrBadThreshold indicates an insertion threshold below 1.
	ErrBadThreshold = errors.New("quicksort: insertion threshold must be at least 1")
)

// Options configures a sort call.
//
// Descending         – sort from largest to smallest. Default false.
// InsertionThreshold – ranges of at most this many elements use insertion sort.
//
//	Must be ≥ 1. Default DefaultInsertionThreshold.
type Options struct {
	Descending         bool
	InsertionThreshold int
}

// Option represents a functional option for configuring a sort.
type Option func(*Options)

// WithDescending sorts from largest to smallest.
func WithDescending() Option {
	return func(o *Options) {
		o.Descending = true
	}
}

// WithInsertionThreshold overrides the insertion sort cut-off.
// Values below 1 panic with ErrBadThreshold.
func WithInsertionThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadThreshold.Error())
		}
		o.InsertionThreshold = n
	}
}

// DefaultOptions returns ascending order with the default threshold.
func DefaultOptions() Options {
	return Options{InsertionThreshold: DefaultInsertionThreshold}
}
