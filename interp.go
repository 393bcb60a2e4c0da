package fractal

import "fmt"

// Keyframe is one stop of a curve-set animation.
type Keyframe[V any] struct {
	// Curves holds the keyframe's values, one per curve. Different keyframes
	// may hold different numbers of curves.
	Curves []V
	// SubdivAfter is the number of steps between this keyframe and the next.
	// It is ignored for the last keyframe.
	SubdivAfter int
	// SlopeFactor is the tempo at this keyframe, see [CubicInterp].
	SlopeFactor float64
}

// LocalIndex maps the curve slot iglobal of nglobal slots onto one of the
// nlocal ≤ nglobal curves of a keyframe.
//
// The mapping is non-decreasing, maps the first slot to 0 and the last slot to
// nlocal−1, and reaches every local index. It is also mirror-symmetric,
// LocalIndex(i) + LocalIndex(nglobal−1−i) = nlocal−1, except possibly for the
// middle slot when nglobal is odd and nlocal is even. This way, curve sets
// that are symmetric in all keyframes interpolate to symmetric curve sets.
//
// LocalIndex panics if iglobal ∉ [0, nglobal) or nlocal ∉ [1, nglobal].
func LocalIndex(iglobal, nglobal, nlocal int) int {
	if iglobal < 0 || iglobal >= nglobal {
		panic(fmt.Sprintf("global index %d out of range [0, %d)", iglobal, nglobal))
	}
	if nlocal < 1 || nlocal > nglobal {
		panic(fmt.Sprintf("local count %d out of range [1, %d]", nlocal, nglobal))
	}

	if nlocal == nglobal {
		return iglobal
	}
	if (nlocal^nglobal)&1 != 0 && 2*nlocal > nglobal {
		// Without the shift towards the center, the middle local index would
		// be skipped.
		if 2*iglobal < nglobal {
			iglobal++
			return iglobal * nlocal / nglobal
		}
		iglobal--
		return nlocal - 1 - (nglobal-1-iglobal)*nlocal/nglobal
	}
	if 2*iglobal < nglobal {
		return iglobal * nlocal / nglobal
	}
	return nlocal - 1 - (nglobal-1-iglobal)*nlocal/nglobal
}

// InterpolateCurveSet interpolates between keyframes holding varying numbers
// of curves.
//
// The number of output curves is the largest number of curves of any
// keyframe. Keyframes with fewer curves have their curves shared between
// several output curves according to [LocalIndex]; output curves meet at such
// keyframes and split apart smoothly around them. Each output curve is a
// cubic spline through its keyframe values, evaluated by [CubicInterp] with
// each keyframe's SubdivAfter and SlopeFactor. Every output curve has
// 1 + Σ SubdivAfter values, summed over all keyframes but the last.
//
// At least two keyframes are required, and every keyframe needs at least one
// curve.
func InterpolateCurveSet[V Vector[V]](kfs []Keyframe[V]) ([][]V, error) {
	if len(kfs) < 2 {
		return nil, ErrTooFewKeyframes
	}
	nglobal := 0
	for i, kf := range kfs {
		if len(kf.Curves) == 0 {
			return nil, &KeyframeError{Index: i, Err: ErrEmptyKeyframe}
		}
		if i+1 < len(kfs) && kf.SubdivAfter < 0 {
			return nil, &KeyframeError{Index: i, Err: ErrNegativeSubdivision}
		}
		nglobal = max(nglobal, len(kf.Curves))
	}
	nframes := len(kfs)

	// Keyframe values per output curve.
	nodes := make([][]V, nglobal)
	for iglobal := range nodes {
		nodes[iglobal] = make([]V, nframes)
	}
	for iframe, kf := range kfs {
		nlocal := len(kf.Curves)
		for iglobal := range nglobal {
			nodes[iglobal][iframe] = kf.Curves[LocalIndex(iglobal, nglobal, nlocal)]
		}
	}

	slopes := make([][]V, nglobal)
	for iglobal := range slopes {
		slopes[iglobal] = CubicSlopes(nodes[iglobal])
	}

	// Where several output curves share one keyframe curve, they must also
	// share its slope, or they would leave it in different directions.
	for iframe, kf := range kfs {
		nlocal := len(kf.Curves)
		if nlocal == nglobal {
			continue
		}
		begin := 0
		for begin < nglobal {
			ilocal := LocalIndex(begin, nglobal, nlocal)
			end := begin + 1
			for end < nglobal && LocalIndex(end, nglobal, nlocal) == ilocal {
				end++
			}
			sum := slopes[begin][iframe]
			for iglobal := begin + 1; iglobal < end; iglobal++ {
				sum = sum.Add(slopes[iglobal][iframe])
			}
			mean := sum.Mul(1 / float64(end-begin))
			for iglobal := begin; iglobal < end; iglobal++ {
				slopes[iglobal][iframe] = mean
			}
			begin = end
		}
	}

	subdiv := func(i int) int { return kfs[i].SubdivAfter }
	slopeF := func(i int) float64 { return kfs[i].SlopeFactor }
	out := make([][]V, nglobal)
	for iglobal := range out {
		out[iglobal] = CubicInterp(nodes[iglobal], slopes[iglobal], subdiv, slopeF)
	}
	return out, nil
}

// FramesOf transposes the output of [InterpolateCurveSet] from one sequence
// per curve into one curve set per frame.
func FramesOf[V any](curves [][]V) [][]V {
	if len(curves) == 0 {
		return nil
	}
	nframes := len(curves[0])
	out := make([][]V, nframes)
	for iframe := range out {
		out[iframe] = make([]V, len(curves))
		for icurve, c := range curves {
			out[iframe][icurve] = c[iframe]
		}
	}
	return out
}
