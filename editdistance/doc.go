// Package editdistance computes the minimum edit distance between two
// sequences together with an edit script, and renders the script as a
// three-line alignment.
//
// Model:
//
//	Insertions, deletions and substitutions cost 1; keeping an equal element
//	costs 0. Scripts use the tags M (match), C (convert), I (insert) and
//	D (delete).
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate an (n+1)x(m+1) table D.
//  2. D[i][0] = i, D[0][j] = j.
//  3. D[i][j] = D[i-1][j-1] if a[i-1] == b[j-1],
//     otherwise 1 + min(D[i-1][j-1], D[i][j-1], D[i-1][j]).
//  4. Backtrack from (n, m). At each cell prefer Delete (up), then Insert
//     (left), each only when that neighbour is a minimum of the three and
//     strictly cheaper than the cell; otherwise step diagonally as Match when
//     the cost is unchanged, Convert when it drops. Leftover rows become
//     Deletes and leftover columns Inserts.
//
// Entry points:
//
//   - Compute / ComputeFunc: generic sequences, distance + script.
//   - Strings: byte-wise convenience for DNA-like alphabets.
//   - Distance: distance only, two rows of memory.
//   - Apply: replay a script; Apply(s, a, b) reproduces b.
//   - Align, Fprint, Print: alignment rendering.
//
// Complexity:
//
//	Compute: Time O(n·m), Memory O(n·m).
//	Distance: Time O(n·m), Memory O(m).
//
// Rendering example (Align, Print):
//
//	str1: "ACAACC"
//	str2: "CAAAAC"
//	script: "DMMMICM"
//
//	ACAA-CC
//	 ||| *|
//	-CAAAAC
package editdistance
