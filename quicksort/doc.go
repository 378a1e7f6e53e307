// Package quicksort provides an in-place hybrid quicksort for any ordered
// element type.
//
// Ranges of at most InsertionThreshold elements (10 by default) are finished
// with insertion sort. Larger ranges pick a pivot as the median of the first,
// middle and last elements, move it to the end and Lomuto-partition around
// it: elements strictly before the pivot (smaller, or larger when descending)
// are gathered on the left, then the pivot is dropped between the two parts.
// The smaller part is sorted recursively and the larger one iteratively, so
// the stack depth stays O(log n).
//
// The sort is not stable.
//
// Complexity:
//
//   - Time:  O(n log n) expected, O(n²) worst case.
//   - Space: O(log n) stack.
package quicksort
