package fractal

import "iter"

// Exact lazily produces the points of a generator fractal at a fixed
// generation.
//
// Generation 0 is the base itself. Generation k replaces every segment of
// generation k−1 with a copy of the generator, rotated and scaled so that the
// generator's first and last points land on the segment's endpoints. The
// curve at generation k has (len(base)−1)·(len(generator)−1)^k + 1 points,
// see [PointCount].
//
// The number of points grows exponentially with the generation, but Exact
// only ever holds one frame per generation: it works like an odometer whose
// digits are segment indices, the least significant digit walking the
// deepest generation.
type Exact struct {
	gen     generatorMap
	frames  []frame
	value   Point
	ordinal int
	last    bool
	done    bool
}

// NewExact returns an iterator over the points of the fractal described by
// base and generator at the given generation.
func NewExact(base, generator Polyline, generation int) (*Exact, error) {
	if err := validateCurves(base, generator); err != nil {
		return nil, err
	}
	if generation < 0 {
		return nil, ErrNegativeGeneration
	}
	it := &Exact{
		gen:    newGeneratorMap(generator),
		frames: make([]frame, generation+1),
		value:  base[0],
	}
	it.frames[0] = baseFrame(base)
	for k := 1; k <= generation; k++ {
		it.frames[k] = it.gen.descend(&it.frames[k-1])
	}
	return it, nil
}

// Generation returns the generation the iterator was constructed with.
func (it *Exact) Generation() int { return len(it.frames) - 1 }

// Current returns the point at the current position.
func (it *Exact) Current() Point { return it.value }

// Ordinal returns the index of the current point. After the iterator has been
// exhausted, it is the number of points produced.
func (it *Exact) Ordinal() int { return it.ordinal }

// Done reports whether the iterator has been exhausted.
func (it *Exact) Done() bool { return it.done }

// Equal reports whether two iterators are at the same position: either both
// are exhausted, or both are at the same ordinal.
func (it *Exact) Equal(o *Exact) bool {
	if it.done != o.done {
		return false
	}
	return it.done || it.ordinal == o.ordinal
}

// Advance moves to the next point.
func (it *Exact) Advance() bool {
	if it.done {
		return false
	}
	it.ordinal++
	if it.last {
		it.done = true
		return false
	}

	deepest := len(it.frames) - 1
	for k := deepest; k >= 0; k-- {
		if it.frames[k].isLast() {
			continue
		}
		it.frames[k].next()
		for ; k < deepest; k++ {
			it.frames[k+1] = it.gen.descend(&it.frames[k])
		}
		it.value = it.frames[deepest].v0
		return true
	}

	// Every digit is at its last segment, which leaves the end of the base.
	it.value = it.frames[0].v1
	it.last = true
	return true
}

// Points returns a single-use iterator over the remaining points.
func (it *Exact) Points() iter.Seq[Point] {
	return Points(it)
}
