package closestpair

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// baseSize is the largest run solved by exhaustive comparison.
const baseSize = 3

// ClosestPair returns the pair of points with the smallest Euclidean
// distance. The input slice is not modified.
func ClosestPair(points []Point) (Result, error) {
	if err := validate(points); err != nil {
		return Result{}, err
	}

	byX := slices.Clone(points)
	slices.SortFunc(byX, func(a, b Point) int { return cmp.Compare(a.X, b.X) })

	s := &solver{strip: make([]Point, 0, len(byX))}

	return finish(s.closest(byX)), nil
}

// BruteForce compares every pair of points. It follows the same reporting
// contract as ClosestPair.
func BruteForce(points []Point) (Result, error) {
	if err := validate(points); err != nil {
		return Result{}, err
	}

	return finish(bruteForce(points)), nil
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func validate(points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d (%v, %v)", ErrNonFinite, p.ID, p.X, p.Y)
		}
	}

	return nil
}

// finish orders the pair by ID and rounds the distance.
func finish(r Result) Result {
	if r.P1.ID > r.P2.ID {
		r.P1, r.P2 = r.P2, r.P1
	}
	r.Distance = math.Round(r.Distance*1000) / 1000

	return r
}

func bruteForce(points []Point) Result {
	best := Result{Distance: math.Inf(1)}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := Distance(points[i], points[j]); d < best.Distance {
				best = Result{Distance: d, P1: points[i], P2: points[j]}
			}
		}
	}

	return best
}

// solver owns the strip buffer reused across recursion levels.
type solver struct {
	strip []Point
}

// closest solves an X-sorted run. Halves are sub-slices of the same backing
// array, so no copies are made on the way down.
func (s *solver) closest(byX []Point) Result {
	if len(byX) <= baseSize {
		return bruteForce(byX)
	}

	mid := len(byX) / 2
	midX := byX[mid].X

	left := s.closest(byX[:mid])
	right := s.closest(byX[mid:])

	best := left
	if right.Distance < left.Distance {
		best = right
	}

	s.strip = s.strip[:0]
	for _, p := range byX {
		if math.Abs(p.X-midX) < best.Distance {
			s.strip = append(s.strip, p)
		}
	}
	slices.SortFunc(s.strip, func(a, b Point) int { return cmp.Compare(a.Y, b.Y) })

	return scanStrip(s.strip, best)
}

// scanStrip compares Y-sorted strip points whose Y gap is below the current
// best. No more than a constant number of successors qualify per point.
func scanStrip(strip []Point, best Result) Result {
	for i := range strip {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < best.Distance; j++ {
			if d := Distance(strip[i], strip[j]); d < best.Distance {
				best = Result{Distance: d, P1: strip[i], P2: strip[j]}
			}
		}
	}

	return best
}
