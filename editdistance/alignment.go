package editdistance

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Align renders script as three aligned lines over s1 and s2.
func Align(s1, s2 string, script Script) (Alignment, error) {
	var top, mid, bot strings.Builder
	top.Grow(len(script))
	mid.Grow(len(script))
	bot.Grow(len(script))

	err := replay(script, len(s1), len(s2), func(op Op, i, j int) {
		switch op {
		case Match, Convert:
			top.WriteByte(s1[i])
			bot.WriteByte(s2[j])
		case Insert:
			top.WriteByte('-')
			bot.WriteByte(s2[j])
		case Delete:
			top.WriteByte(s1[i])
			bot.WriteByte('-')
		}
		mid.WriteByte(op.Marker())
	})
	if err != nil {
		return Alignment{}, err
	}

	return Alignment{Top: top.String(), Markers: mid.String(), Bottom: bot.String()}, nil
}

// Fprint writes the alignment of s1 and s2 under script to w, one line each.
func Fprint(w io.Writer, s1, s2 string, script Script) error {
	al, err := Align(s1, s2, script)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n", al.Top, al.Markers, al.Bottom)

	return err
}

// Print writes the alignment to standard output.
func Print(s1, s2 string, script Script) error {
	return Fprint(os.Stdout, s1, s2, script)
}

// replay walks script left to right, calling visit with the operation and
// the current positions in the first (i) and second (j) sequence before the
// operation consumes them. It fails before visiting anything if the script
// has an unknown tag or does not consume exactly n and m elements.
func replay(script Script, n, m int, visit func(op Op, i, j int)) error {
	i, j := 0, 0
	for k, op := range script {
		if !op.valid() {
			return fmt.Errorf("%w: %q at %d", ErrInvalidScript, byte(op), k)
		}
		if op != Insert {
			i++
		}
		if op != Delete {
			j++
		}
		if i > n || j > m {
			return fmt.Errorf("%w: step %d overruns lengths %d and %d", ErrScriptMismatch, k, n, m)
		}
	}
	if i != n || j != m {
		return fmt.Errorf("%w: consumes %d and %d of %d and %d", ErrScriptMismatch, i, j, n, m)
	}

	i, j = 0, 0
	for _, op := range script {
		visit(op, i, j)
		if op != Insert {
			i++
		}
		if op != Delete {
			j++
		}
	}

	return nil
}
