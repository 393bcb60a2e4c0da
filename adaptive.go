package fractal

import "iter"

// ApproxParams bounds the work done by an [Adaptive] iterator.
type ApproxParams struct {
	// MaxGen is the deepest generation the iterator descends to.
	MaxGen int
	// MaxOrdinal caps the number of points. Once the iterator has produced
	// MaxOrdinal points, the next point is the end of the base and iteration
	// stops. Zero means no cap.
	MaxOrdinal int
	// MinLength is the segment length below which segments aren't refined
	// any further.
	MinLength float64
}

// DefaultApproxParams refines segments down to unit length, which is one
// pixel when drawing in device space.
var DefaultApproxParams = ApproxParams{
	MaxGen:     30,
	MaxOrdinal: 10_000_000,
	MinLength:  1,
}

// ForScale returns a copy of p whose MinLength corresponds to one unit at
// the given drawing scale.
func (p ApproxParams) ForScale(scale float64) ApproxParams {
	p.MinLength = 1 / scale
	return p
}

// Adaptive lazily produces the points of a generator fractal, refining each
// segment only until it is no longer than MinLength or MaxGen is reached.
// Unlike [Exact], different parts of the curve may end up at different
// generations.
//
// Every emitted point except the last starts a leaf segment, a segment that
// is either no longer than MinLength or at generation MaxGen. The exception
// is truncation by MaxOrdinal, after which the final segment jumps straight
// to the end of the base.
type Adaptive struct {
	gen    generatorMap
	params ApproxParams
	// frames grows and shrinks between 1 and MaxGen+1 entries. Its capacity
	// follows the depth actually reached, not MaxGen.
	frames []frame
	// genLengths is the length table shared by all generator frames.
	genLengths   []float64
	end          Point
	value        Point
	ordinal      int
	actualMaxGen int
	last         bool
	done         bool
}

// NewAdaptive returns an iterator over the points of the fractal described by
// base and generator, refined according to p.
func NewAdaptive(base, generator Polyline, p ApproxParams) (*Adaptive, error) {
	if err := validateCurves(base, generator); err != nil {
		return nil, err
	}
	if p.MaxGen < 0 {
		p.MaxGen = 0
	}
	it := &Adaptive{
		gen:        newGeneratorMap(generator),
		params:     p,
		frames:     make([]frame, 1, min(p.MaxGen, 64)+1),
		genLengths: generator.SegmentLengths(),
		end:        base[len(base)-1],
		value:      base[0],
	}
	f := baseFrame(base)
	f.scale = 1
	f.lengths = base.SegmentLengths()
	it.frames[0] = f
	it.maybeRecurse()
	return it, nil
}

// Params returns the parameters the iterator was constructed with.
func (it *Adaptive) Params() ApproxParams { return it.params }

// ActualMaxGen returns the deepest generation reached so far. It never exceeds
// MaxGen.
func (it *Adaptive) ActualMaxGen() int { return it.actualMaxGen }

// Current returns the point at the current position.
func (it *Adaptive) Current() Point { return it.value }

// Ordinal returns the index of the current point. After the iterator has been
// exhausted, it is the number of points produced.
func (it *Adaptive) Ordinal() int { return it.ordinal }

// Done reports whether the iterator has been exhausted.
func (it *Adaptive) Done() bool { return it.done }

// Equal reports whether two iterators are at the same position: either both
// are exhausted, or both are at the same ordinal.
func (it *Adaptive) Equal(o *Adaptive) bool {
	if it.done != o.done {
		return false
	}
	return it.done || it.ordinal == o.ordinal
}

// isLeaf reports whether the deepest frame's current segment must not be
// refined further.
func (it *Adaptive) isLeaf() bool {
	depth := len(it.frames) - 1
	if depth >= it.params.MaxGen {
		return true
	}
	return it.frames[depth].length() <= it.params.MinLength
}

// maybeRecurse descends from the deepest frame for as long as its current
// segment is too long.
func (it *Adaptive) maybeRecurse() {
	for !it.isLeaf() {
		parent := &it.frames[len(it.frames)-1]
		f := it.gen.descend(parent)
		f.scale = parent.length() / it.gen.chord.Hypot()
		f.lengths = it.genLengths
		it.frames = append(it.frames, f)
	}
	it.actualMaxGen = max(it.actualMaxGen, len(it.frames)-1)
}

// Advance moves to the next point.
func (it *Adaptive) Advance() bool {
	if it.done {
		return false
	}
	it.ordinal++
	if it.last {
		it.done = true
		return false
	}
	if it.ordinal == it.params.MaxOrdinal {
		it.value = it.end
		it.last = true
		return true
	}

	for k := len(it.frames) - 1; k >= 0; k-- {
		if it.frames[k].isLast() {
			continue
		}
		it.frames = it.frames[:k+1]
		it.frames[k].next()
		it.maybeRecurse()
		it.value = it.frames[len(it.frames)-1].v0
		return true
	}

	it.value = it.frames[0].v1
	it.last = true
	return true
}

// Points returns a single-use iterator over the remaining points.
func (it *Adaptive) Points() iter.Seq[Point] {
	return Points(it)
}
