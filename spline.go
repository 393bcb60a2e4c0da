package fractal

// Vector describes values that splines can interpolate: anything that can be
// added, subtracted and scaled. [Vec2] and [Scalar] implement it.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(float64) V
}

// Scalar is a float64 that implements [Vector], for interpolating
// one-dimensional values.
type Scalar float64

var _ Vector[Scalar] = Scalar(0)

func (s Scalar) Add(o Scalar) Scalar { return s + o }
func (s Scalar) Sub(o Scalar) Scalar { return s - o }
func (s Scalar) Mul(f float64) Scalar { return s * Scalar(f) }

// CubicSlopes computes the slopes of the natural cubic spline through the
// samples y, which are taken to be at unit spacing.
//
// The slopes m solve the tridiagonal system
//
//	2·m[0]   + m[1]             = 3·(y[1] − y[0])
//	m[i−1]   + 4·m[i] + m[i+1]  = 3·(y[i+1] − y[i−1])
//	m[n−2]   + 2·m[n−1]         = 3·(y[n−1] − y[n−2])
//
// which is solved in linear time by forward elimination and back
// substitution.
//
// CubicSlopes panics if y has fewer than two samples.
func CubicSlopes[V Vector[V]](y []V) []V {
	n := len(y)
	if n < 2 {
		panic("CubicSlopes needs at least two samples")
	}

	b := make([]float64, n)
	for i := range b {
		b[i] = 4
	}
	b[0], b[n-1] = 2, 2

	f := make([]V, n)
	f[0] = y[1].Sub(y[0]).Mul(3)
	for i := 1; i+1 < n; i++ {
		f[i] = y[i+1].Sub(y[i-1]).Mul(3)
	}
	f[n-1] = y[n-1].Sub(y[n-2]).Mul(3)

	for i := 1; i < n; i++ {
		k := 1 / b[i-1]
		b[i] -= k
		f[i] = f[i].Sub(f[i-1].Mul(k))
	}

	m := make([]V, n)
	m[n-1] = f[n-1].Mul(1 / b[n-1])
	for i := n - 2; i >= 0; i-- {
		m[i] = f[i].Sub(m[i+1]).Mul(1 / b[i])
	}
	return m
}

// hermite holds the cubic Hermite basis functions evaluated at some ξ ∈ [0, 1].
type hermite struct {
	f1, f2, f3, f4 float64
}

func hermiteAt(xi float64) hermite {
	xi2 := xi * xi
	xi3 := xi2 * xi
	f1 := 1 - 3*xi2 + 2*xi3
	return hermite{
		f1: f1,
		f2: 1 - f1,
		f3: xi - 2*xi2 + xi3,
		f4: xi3 - xi2,
	}
}

func (h hermite) scalar(y0, y1, m0, m1 float64) float64 {
	return h.f1*y0 + h.f2*y1 + h.f3*m0 + h.f4*m1
}

func hermiteInterp[V Vector[V]](h hermite, y0, y1, m0, m1 V) V {
	return y0.Mul(h.f1).Add(y1.Mul(h.f2)).Add(m0.Mul(h.f3)).Add(m1.Mul(h.f4))
}

// CubicInterp evaluates the cubic Hermite spline through the samples y with
// slopes m, as computed by [CubicSlopes].
//
// The piece between samples i and i+1 is evaluated at subdiv(i) evenly spaced
// steps, excluding its start and including its end. The result therefore
// begins with y[0] and has 1 + Σ subdiv(i) values.
//
// slopeF controls the tempo at each sample. The step parameter of each piece
// is itself eased through a Hermite curve from 0 to 1 whose slopes at the two
// ends are slopeF(i) and slopeF(i+1). A tempo of 1 at both ends leaves the
// steps evenly spaced; smaller values slow the motion down near a sample,
// larger values speed it up. The samples themselves are always hit exactly.
func CubicInterp[V Vector[V]](y, m []V, subdiv func(piece int) int, slopeF func(sample int) float64) []V {
	n := len(m)
	result := make([]V, 0, n)
	result = append(result, y[0])

	sf0 := slopeF(0)
	for piece := 0; piece+1 < n; piece++ {
		sf1 := slopeF(piece + 1)
		steps := subdiv(piece)
		for i := 1; i <= steps; i++ {
			p := hermiteAt(float64(i)/float64(steps)).scalar(0, 1, sf0, sf1)
			result = append(result, hermiteInterp(hermiteAt(p), y[piece], y[piece+1], m[piece], m[piece+1]))
		}
		sf0 = sf1
	}
	return result
}

// CubicInterpUniform is like [CubicInterp] with subdiv steps per piece and a
// tempo of 1 everywhere.
func CubicInterpUniform[V Vector[V]](y, m []V, subdiv int) []V {
	return CubicInterp(
		y,
		m,
		func(int) int { return subdiv },
		func(int) float64 { return 1 },
	)
}
