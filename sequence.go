package fractal

import "iter"

// Sequence is a lazily computed, finite, single-pass sequence of points.
//
// A new Sequence is positioned at its first point. Advance moves to the next
// point and reports whether there was one; once it returns false, the
// sequence is exhausted and Current must not be called anymore. Sequences
// cannot be restarted.
//
// [Exact] and [Adaptive] implement Sequence.
type Sequence interface {
	Current() Point
	Advance() bool
}

var _ Sequence = (*Exact)(nil)
var _ Sequence = (*Adaptive)(nil)

// Points returns an iterator over the remaining points of s, starting with
// the current one. The iterator is single-use, as it consumes s.
func Points(s Sequence) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for {
			if !yield(s.Current()) {
				return
			}
			if !s.Advance() {
				return
			}
		}
	}
}

// frame is one level of the odometer shared by [Exact] and [Adaptive]. Level
// 0 walks the base; every deeper level walks the generator, mapped onto the
// current segment of its parent.
type frame struct {
	// curve is borrowed from the iterator's base or generator.
	curve Polyline
	// seg is the index of the current segment, which runs from curve[seg] to
	// curve[seg+1] before mapping.
	seg int
	// v0 and v1 are the current segment's endpoints in world space.
	v0, v1 Point
	xf     Similarity

	// Only used by Adaptive.
	scale   float64
	lengths []float64
}

func (f *frame) isLast() bool {
	return f.seg+2 == len(f.curve)
}

func (f *frame) next() {
	if f.isLast() {
		panic("frame advanced past its last segment")
	}
	f.v0 = f.v1
	f.seg++
	f.v1 = f.xf.Apply(f.curve[f.seg+1])
}

// length returns the physical length of the current segment, as tracked
// through the length table.
func (f *frame) length() float64 {
	return f.scale * f.lengths[f.seg]
}

// generatorMap holds what every descent into the generator needs.
type generatorMap struct {
	gen   Polyline
	chord Vec2
	// chord2 is the squared length of chord and never zero.
	chord2 float64
}

func newGeneratorMap(gen Polyline) generatorMap {
	chord := gen.Chord()
	return generatorMap{gen: gen, chord: chord, chord2: chord.Hypot2()}
}

func baseFrame(base Polyline) frame {
	return frame{
		curve: base,
		v0:    base[0],
		v1:    base[1],
		xf:    IdentitySimilarity,
	}
}

// descend returns the frame that walks the generator along parent's current
// segment.
func (g *generatorMap) descend(parent *frame) frame {
	xf := solveSimilarity(parent.v0, parent.v1.Sub(parent.v0), g.gen[0], g.chord, g.chord2)
	return frame{
		curve: g.gen,
		v0:    parent.v0,
		v1:    xf.Apply(g.gen[1]),
		xf:    xf,
	}
}
