package closestpair

import "errors"

// Sentinel errors returned by ClosestPair and BruteForce.
var (
	// ErrTooFewPoints indicates that fewer than two points were supplied.
	ErrTooFewPoints = errors.New("closestpair: at least two points are required")

	// ErrNonFinite indicates that a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("closestpair: point coordinates must be finite")
)

// Point is an identified location in the plane.
type Point struct {
	ID   uint32
	X, Y float64
}

// Result holds the closest pair and the distance between them.
//
// After a successful call P1.ID <= P2.ID, and Distance is rounded to three
// decimal places.
type Result struct {
	Distance float64
	P1, P2   Point
}
