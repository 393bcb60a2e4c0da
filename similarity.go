package fractal

import (
	"fmt"
	"math"
)

// Similarity is a conformal map of the plane: a rotation combined with a
// uniform scale, followed by a translation. Treating points as complex
// numbers, it computes
//
//	T(p) = (Fc + i·Fs)·p + (Dx + i·Dy)
//
// Similarities never reflect, so they preserve angles and orientation.
type Similarity struct {
	Fc, Fs float64
	Dx, Dy float64
}

// IdentitySimilarity maps every point onto itself.
var IdentitySimilarity = Similarity{Fc: 1}

// SolveSimilarity returns the unique similarity T with T(gen0) = base0 and
// T(genLast) = base1. It fails with [ErrDegenerateGenerator] if gen0 and
// genLast coincide.
//
// With b = base1−base0 and g = genLast−gen0, the multiplier Fc + i·Fs is the
// complex quotient b/g.
func SolveSimilarity(base0, base1, gen0, genLast Point) (Similarity, error) {
	g := genLast.Sub(gen0)
	g2 := g.Hypot2()
	if g2 == 0 {
		return Similarity{}, ErrDegenerateGenerator
	}
	return solveSimilarity(base0, base1.Sub(base0), gen0, g, g2), nil
}

// solveSimilarity is SolveSimilarity for callers that already know the
// generator chord g and its squared length g2 > 0.
func solveSimilarity(base0 Point, b Vec2, gen0 Point, g Vec2, g2 float64) Similarity {
	fc := b.Dot(g) / g2
	fs := g.Cross(b) / g2
	return Similarity{
		Fc: fc,
		Fs: fs,
		Dx: base0.X - (fc*gen0.X - fs*gen0.Y),
		Dy: base0.Y - (fs*gen0.X + fc*gen0.Y),
	}
}

func (s Similarity) String() string {
	return fmt.Sprintf("similarity(scale=%g, angle=%g, translate=⟨%g, %g⟩)", s.Scale(), s.Angle(), s.Dx, s.Dy)
}

// Apply maps pt through s.
func (s Similarity) Apply(pt Point) Point {
	return Point{
		X: s.Fc*pt.X - s.Fs*pt.Y + s.Dx,
		Y: s.Fs*pt.X + s.Fc*pt.Y + s.Dy,
	}
}

// Mul composes two similarities. The result applies o first, then s.
func (s Similarity) Mul(o Similarity) Similarity {
	return Similarity{
		Fc: s.Fc*o.Fc - s.Fs*o.Fs,
		Fs: s.Fs*o.Fc + s.Fc*o.Fs,
		Dx: s.Fc*o.Dx - s.Fs*o.Dy + s.Dx,
		Dy: s.Fs*o.Dx + s.Fc*o.Dy + s.Dy,
	}
}

// Then returns the similarity that applies s, then o.
//
// Equivalent to "o * s"
func (s Similarity) Then(o Similarity) Similarity {
	return o.Mul(s)
}

// Scale returns the uniform scale factor of s.
func (s Similarity) Scale() float64 {
	return math.Hypot(s.Fc, s.Fs)
}

// Angle returns the rotation of s in radians.
func (s Similarity) Angle() float64 {
	return math.Atan2(s.Fs, s.Fc)
}

// Affine returns s as an affine transformation.
func (s Similarity) Affine() Affine {
	return Affine{s.Fc, s.Fs, -s.Fs, s.Fc, s.Dx, s.Dy}
}
