package fractal

import "iter"

// ViewParams describes how a fractal is to be shown.
type ViewParams struct {
	// Generations is the generation drawn by the exact algorithm.
	Generations int
	// AllGenerations draws every generation from 0 to Generations on top
	// of each other instead of only the last one. It has no effect if Approx
	// is set.
	AllGenerations bool
	// Approx selects the adaptive algorithm instead of the exact one.
	Approx bool
	// ApproxBboxGen is the generation used to measure the curve's extent
	// when Approx is set. Measuring at Generations would defeat the purpose
	// of the adaptive algorithm.
	ApproxBboxGen int
	// ApproxMaxGen and ApproxMaxVertexCount bound the adaptive algorithm, see
	// [ApproxParams].
	ApproxMaxGen         int
	ApproxMaxVertexCount int
	// AdjustScale shrinks (> 1) or enlarges (< 1) the fitted curve. Zero
	// means 1.
	AdjustScale float64
}

var DefaultViewParams = ViewParams{
	Generations:          5,
	AllGenerations:       true,
	ApproxBboxGen:        5,
	ApproxMaxGen:         DefaultApproxParams.MaxGen,
	ApproxMaxVertexCount: DefaultApproxParams.MaxOrdinal,
	AdjustScale:          1,
}

// ApproxParams returns the adaptive iterator parameters for drawing at the
// given scale.
func (vp ViewParams) ApproxParams(scale float64) ApproxParams {
	return ApproxParams{
		MaxGen:     vp.ApproxMaxGen,
		MaxOrdinal: vp.ApproxMaxVertexCount,
	}.ForScale(scale)
}

// View is the result of fitting a fractal into a viewport.
type View struct {
	// Transform maps world coordinates to viewport coordinates.
	Transform Affine
	// Scale is the uniform scale factor of Transform.
	Scale  float64
	Params ViewParams
}

// viewMargin is the fraction of the curve's extent kept free on each side.
const viewMargin = 0.05

// FitView computes the transform that centers the fractal described by base
// and generator in viewport and scales it to fill the viewport, leaving a
// small margin.
//
// The curve's extent is measured on the exact curve at vp.Generations, or
// vp.ApproxBboxGen if vp.Approx is set.
func FitView(base, generator Polyline, viewport Rect, vp ViewParams) (View, error) {
	bboxGen := vp.Generations
	if vp.Approx {
		bboxGen = vp.ApproxBboxGen
	}
	it, err := NewExact(base, generator, bboxGen)
	if err != nil {
		return View{}, err
	}
	bb, _ := BoundingBox(it.Points())
	center := bb.Center()
	bb = bb.Inflate(viewMargin*bb.Width(), viewMargin*bb.Height())

	viewport = viewport.Abs()
	rw, rh := viewport.Width(), viewport.Height()
	bw, bh := bb.Width(), bb.Height()
	var scale float64
	switch {
	case bw == 0 && bh == 0:
		scale = 1
	case bw == 0:
		scale = rh / bh
	case bh == 0:
		scale = rw / bw
	case bw*rh > rw*bh:
		// Relatively wider than the viewport.
		scale = rw / bw
	default:
		scale = rh / bh
	}
	if vp.AdjustScale > 0 {
		scale /= vp.AdjustScale
	}

	aff := Translate(Vec2(viewport.Center())).
		PreScale(scale, scale).
		PreTranslate(Vec2(center).Negate())
	return View{
		Transform: aff,
		Scale:     scale,
		Params:    vp,
	}, nil
}

// Sequence returns the sequence of world-space points to draw: an [Adaptive]
// iterator refining segments down to one viewport unit if Params.Approx is
// set, or an [Exact] iterator at Params.Generations otherwise.
func (v View) Sequence(base, generator Polyline) (Sequence, error) {
	if v.Params.Approx {
		return NewAdaptive(base, generator, v.Params.ApproxParams(v.Scale))
	}
	return NewExact(base, generator, v.Params.Generations)
}

// Sequences returns the sequences to draw, in drawing order. That is the
// result of [View.Sequence], preceded by exact iterators for all earlier
// generations if Params.AllGenerations is set and Params.Approx isn't.
func (v View) Sequences(base, generator Polyline) ([]Sequence, error) {
	if v.Params.Approx || !v.Params.AllGenerations {
		s, err := v.Sequence(base, generator)
		if err != nil {
			return nil, err
		}
		return []Sequence{s}, nil
	}
	if v.Params.Generations < 0 {
		return nil, ErrNegativeGeneration
	}
	out := make([]Sequence, 0, v.Params.Generations+1)
	for gen := range v.Params.Generations + 1 {
		it, err := NewExact(base, generator, gen)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

// Points returns the remaining points of s mapped into viewport coordinates.
func (v View) Points(s Sequence) iter.Seq[Point] {
	return Transform(Points(s), v.Transform)
}
