package fractal

import "math"

const (
	// DefaultFramesAfter is the customary number of frames between two
	// animation keyframes.
	DefaultFramesAfter = 25
	// DefaultSlopeFactor keeps the tempo of the spline through a keyframe.
	// It is used when a keyframe's SlopeFactor is zero.
	DefaultSlopeFactor = 1.0
)

// AnimKeyframe is a keyframe of a fractal animation.
type AnimKeyframe struct {
	Base      Polyline
	Generator Polyline
	View      ViewParams
	// Viewport is the area the frame is drawn into, see [FitView].
	Viewport Rect
	// FramesAfter is the number of frames from this keyframe to the next one.
	FramesAfter int
	// ReflectX and ReflectY mirror the generator before interpolation.
	ReflectX, ReflectY bool
	// SlopeFactor is the tempo at this keyframe, see [CubicInterp]. Zero
	// means DefaultSlopeFactor; use a tiny positive value to come to a halt
	// at the keyframe.
	SlopeFactor float64
}

// Frame is one frame of a fractal animation.
type Frame struct {
	Base      Polyline
	Generator Polyline
	View      ViewParams
	Viewport  Rect
}

// Animate computes all frames of an animation through kfs.
//
// The points of the bases and of the generators are interpolated with
// [InterpolateCurveSet], each point being one curve. Keyframes may therefore
// have bases and generators with different numbers of points; the frames use
// the largest number throughout, repeating points where a keyframe has fewer.
// View parameters and viewports are interpolated linearly. Integer view
// parameters are rounded to the nearest integer, and boolean ones switch
// halfway between keyframes.
//
// The first frame is the first keyframe. It is followed by FramesAfter frames
// for every keyframe but the last, the final one of each group landing on the
// next keyframe.
func Animate(kfs []AnimKeyframe) ([]Frame, error) {
	if len(kfs) < 2 {
		return nil, ErrTooFewKeyframes
	}
	baseKfs := make([]Keyframe[Vec2], len(kfs))
	genKfs := make([]Keyframe[Vec2], len(kfs))
	for i, kf := range kfs {
		slopeF := kf.SlopeFactor
		if slopeF == 0 {
			slopeF = DefaultSlopeFactor
		}
		if err := kf.Base.Validate("base"); err != nil {
			return nil, &KeyframeError{Index: i, Err: err}
		}
		if err := kf.Generator.Validate("generator"); err != nil {
			return nil, &KeyframeError{Index: i, Err: err}
		}
		baseKfs[i] = Keyframe[Vec2]{
			Curves:      vectors(kf.Base),
			SubdivAfter: kf.FramesAfter,
			SlopeFactor: slopeF,
		}
		genKfs[i] = Keyframe[Vec2]{
			Curves:      vectors(kf.Generator.Reflect(kf.ReflectX, kf.ReflectY)),
			SubdivAfter: kf.FramesAfter,
			SlopeFactor: slopeF,
		}
	}

	baseCurves, err := InterpolateCurveSet(baseKfs)
	if err != nil {
		return nil, err
	}
	genCurves, err := InterpolateCurveSet(genKfs)
	if err != nil {
		return nil, err
	}

	first := kfs[0]
	frames := make([]Frame, 1, len(baseCurves[0]))
	frames[0] = Frame{
		Base:      append(Polyline(nil), first.Base...),
		Generator: first.Generator.Reflect(first.ReflectX, first.ReflectY),
		View:      first.View,
		Viewport:  first.Viewport,
	}
	iframe := 1
	for i := 0; i+1 < len(kfs); i++ {
		kf0, kf1 := kfs[i], kfs[i+1]
		h := 1 / float64(kf0.FramesAfter)
		for isub := range kf0.FramesAfter {
			p := float64(isub+1) * h
			frames = append(frames, Frame{
				Base:      polylineAt(baseCurves, iframe),
				Generator: polylineAt(genCurves, iframe),
				View:      lerpViewParams(kf0.View, kf1.View, p),
				Viewport:  lerpRect(kf0.Viewport, kf1.Viewport, p),
			})
			iframe++
		}
	}
	if iframe != len(baseCurves[0]) {
		panic("frame count doesn't match interpolated curves")
	}
	return frames, nil
}

func vectors(pl Polyline) []Vec2 {
	out := make([]Vec2, len(pl))
	for i, pt := range pl {
		out[i] = Vec2(pt)
	}
	return out
}

// polylineAt collects the iframe-th value of every curve.
func polylineAt(curves [][]Vec2, iframe int) Polyline {
	out := make(Polyline, len(curves))
	for i, c := range curves {
		out[i] = Point(c[iframe])
	}
	return out
}

func lerpFloat(a, b, p float64) float64 {
	return a*(1-p) + b*p
}

func lerpInt(a, b int, p float64) int {
	return int(math.Round(lerpFloat(float64(a), float64(b), p)))
}

func lerpBool(a, b bool, p float64) bool {
	f := func(v bool) float64 {
		if v {
			return 1
		}
		return 0
	}
	return lerpFloat(f(a), f(b), p) >= 0.5
}

func lerpViewParams(a, b ViewParams, p float64) ViewParams {
	return ViewParams{
		Generations:          lerpInt(a.Generations, b.Generations, p),
		AllGenerations:       lerpBool(a.AllGenerations, b.AllGenerations, p),
		Approx:               lerpBool(a.Approx, b.Approx, p),
		ApproxBboxGen:        lerpInt(a.ApproxBboxGen, b.ApproxBboxGen, p),
		ApproxMaxGen:         lerpInt(a.ApproxMaxGen, b.ApproxMaxGen, p),
		ApproxMaxVertexCount: lerpInt(a.ApproxMaxVertexCount, b.ApproxMaxVertexCount, p),
		AdjustScale:          lerpFloat(a.AdjustScale, b.AdjustScale, p),
	}
}

func lerpRect(a, b Rect, p float64) Rect {
	return Rect{
		X0: lerpFloat(a.X0, b.X0, p),
		Y0: lerpFloat(a.Y0, b.Y0, p),
		X1: lerpFloat(a.X1, b.X1, p),
		Y1: lerpFloat(a.Y1, b.Y1, p),
	}
}
