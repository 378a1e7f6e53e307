// Package closestpair finds the two nearest points of a planar point set.
//
// ClosestPair uses the classic divide-and-conquer scheme:
//
//  1. Sort a copy of the points by X once.
//  2. Split the sorted run at its midpoint (by position, not by coordinate)
//     until a half holds at most three points, which are compared pairwise.
//  3. Combine: with d the better half-result, collect every point of the run
//     lying strictly within d of the midpoint's X into a strip, sort the strip
//     by Y and compare each strip point only with successors whose Y gap is
//     below d.
//
// BruteForce compares all pairs and serves as a reference oracle.
//
// Both report the pair with the lower ID first and round the distance to
// three decimal places. Ties keep the first pair found.
//
// Complexity:
//
//   - ClosestPair: O(n log² n) time, O(n) extra space.
//   - BruteForce:  O(n²) time, O(1) extra space.
//
// Errors:
//
//   - ErrTooFewPoints if fewer than two points are given.
//   - ErrNonFinite if a coordinate is NaN or ±Inf.
package closestpair
