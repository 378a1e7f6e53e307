package editdistance

// Compute returns the edit distance between a and b and a script realizing it.
func Compute[T comparable](a, b []T) (int, Script) {
	return ComputeFunc(a, b, func(x, y T) bool { return x == y })
}

// Strings is Compute over the bytes of s1 and s2.
func Strings(s1, s2 string) (int, Script) {
	return Compute([]byte(s1), []byte(s2))
}

// ComputeFunc is Compute with a caller-supplied equality predicate.
func ComputeFunc[T any](a, b []T, eq func(x, y T) bool) (int, Script) {
	n, m := len(a), len(b)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if eq(a[i-1], b[j-1]) {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = 1 + min(dp[i-1][j-1], dp[i][j-1], dp[i-1][j])
			}
		}
	}

	return dp[n][m], backtrack(dp, a, b, eq)
}

// backtrack walks the filled table from (n, m) to (0, 0). Operations are
// collected end-first and reversed at the end.
func backtrack[T any](dp [][]int, a, b []T, eq func(x, y T) bool) Script {
	i, j := len(a), len(b)
	ops := make(Script, 0, i+j)

	for i > 0 && j > 0 {
		cur, up, left, diag := dp[i][j], dp[i-1][j], dp[i][j-1], dp[i-1][j-1]
		switch {
		case up <= diag && up <= left && up < cur:
			ops = append(ops, Delete)
			i--
		case left <= diag && left <= up && left < cur:
			ops = append(ops, Insert)
			j--
		default:
			if diag == cur {
				ops = append(ops, Match)
			} else {
				ops = append(ops, Convert)
			}
			i--
			j--
		}
	}
	for ; i > 0; i-- {
		ops = append(ops, Delete)
	}
	for ; j > 0; j-- {
		if i > 0 && !eq(a[i-1], b[j-1]) {
			ops = append(ops, Convert)
			i--
		} else {
			ops = append(ops, Insert)
		}
	}

	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops
}

// Distance returns only the edit distance between s1 and s2, keeping two
// table rows instead of the full matrix.
func Distance(s1, s2 string) int {
	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(prev[j-1], curr[j-1], prev[j])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// Apply replays script against a, taking inserted and converted elements
// from b, and returns the resulting sequence. For a script produced by
// Compute(a, b) the result equals b.
func Apply[T any](script Script, a, b []T) ([]T, error) {
	out := make([]T, 0, len(b))
	err := replay(script, len(a), len(b), func(op Op, i, j int) {
		switch op {
		case Match:
			out = append(out, a[i])
		case Convert, Insert:
			out = append(out, b[j])
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
