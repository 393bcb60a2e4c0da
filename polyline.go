package fractal

import (
	"math/bits"
)

// Polyline is an ordered sequence of points joined by straight segments. A
// fractal is described by two polylines: the base, which gets subdivided, and
// the generator, which every segment of the base is replaced with.
//
// The iterators in this package borrow polylines without copying them.
// Callers must not modify a polyline while an iterator over it is in use.
type Polyline []Point

// Validate reports whether pl has at least two points. role names the curve
// in the returned error.
func (pl Polyline) Validate(role string) error {
	if len(pl) < 2 {
		return &CurveError{Role: role, Len: len(pl), Err: ErrInsufficientPoints}
	}
	return nil
}

// Chord returns the vector from the first to the last point.
func (pl Polyline) Chord() Vec2 {
	return pl[len(pl)-1].Sub(pl[0])
}

// SegmentLengths returns the length of each of the len(pl)-1 segments.
func (pl Polyline) SegmentLengths() []float64 {
	if len(pl) < 2 {
		return nil
	}
	out := make([]float64, len(pl)-1)
	for i := range out {
		out[i] = pl[i].Distance(pl[i+1])
	}
	return out
}

// Length returns the sum of all segment lengths.
func (pl Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(pl); i++ {
		l += pl[i-1].Distance(pl[i])
	}
	return l
}

// Reflect returns a copy of pl with x and/or y coordinates negated.
func (pl Polyline) Reflect(x, y bool) Polyline {
	aff := Identity
	if x {
		aff = FlipX.Mul(aff)
	}
	if y {
		aff = FlipY.Mul(aff)
	}
	out := make(Polyline, len(pl))
	for i, pt := range pl {
		out[i] = pt.Transform(aff)
	}
	return out
}

// validateCurves checks the inputs shared by both fractal iterators.
func validateCurves(base, generator Polyline) error {
	if err := base.Validate("base"); err != nil {
		return err
	}
	if err := generator.Validate("generator"); err != nil {
		return err
	}
	if generator.Chord().Hypot2() == 0 {
		return ErrDegenerateGenerator
	}
	return nil
}

// PointCount returns the number of points an [Exact] iterator emits for a base
// of baseLen points and a generator of genLen points at the given generation,
// (baseLen−1)·(genLen−1)^generation + 1. It reports false if the count
// doesn't fit in an int.
func PointCount(baseLen, genLen, generation int) (int, bool) {
	if baseLen < 2 || genLen < 2 || generation < 0 {
		return 0, false
	}
	if genLen == 2 {
		return baseLen, true
	}
	n := uint64(baseLen - 1)
	branch := uint64(genLen - 1)
	for range generation {
		hi, lo := bits.Mul64(n, branch)
		if hi != 0 {
			return 0, false
		}
		n = lo
	}
	if n >= 1<<(bits.UintSize-1)-1 {
		return 0, false
	}
	return int(n) + 1, true
}
