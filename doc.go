// Package classics is a small collection of textbook algorithms over plain
// in-memory data. Each algorithm lives in its own package and none of them
// depends on another:
//
//	closestpair/  — nearest pair of 2D points (divide and conquer, brute-force oracle)
//	dijkstra/     — single-source shortest paths on dense directed graphs
//	editdistance/ — minimum edit distance, edit scripts, alignment rendering
//	quicksort/    — in-place hybrid quicksort for any ordered type
//
// Every routine is synchronous and allocation-local: it reads the caller's
// data, owns its own scratch space and returns. Only quicksort writes to its
// input, reordering it in place.
//
// Quick ASCII example of an alignment produced by editdistance.Print:
//
//	ACAA-CC
//	 ||| *|
//	-CAAAAC
//
//	go get github.com/katalvlaran/classics
package classics
