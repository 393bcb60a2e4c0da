package fractal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and thus points and vectors, with an absolute
// tolerance.
func approx(epsilon float64) cmp.Option {
	return cmp.Options{
		cmpopts.EquateApprox(0, epsilon),
		// EquateApprox only applies to values assignable to float64.
		cmp.Comparer(func(a, b Scalar) bool {
			return math.Abs(float64(a-b)) <= epsilon
		}),
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// collect drains s.
func collect(s Sequence) Polyline {
	var out Polyline
	for pt := range Points(s) {
		out = append(out, pt)
	}
	return out
}
