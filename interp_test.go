package fractal

import (
	"errors"
	"testing"
)

func TestLocalIndexSequences(t *testing.T) {
	tests := []struct {
		nglobal, nlocal int
		want            []int
	}{
		{1, 1, []int{0}},
		{3, 1, []int{0, 0, 0}},
		{3, 2, []int{0, 1, 1}},
		{4, 2, []int{0, 0, 1, 1}},
		{5, 2, []int{0, 0, 0, 1, 1}},
		{5, 4, []int{0, 1, 2, 2, 3}},
		{6, 4, []int{0, 0, 1, 2, 3, 3}},
		{7, 3, []int{0, 0, 0, 1, 2, 2, 2}},
		{4, 4, []int{0, 1, 2, 3}},
	}
	for _, tt := range tests {
		got := make([]int, tt.nglobal)
		for i := range got {
			got[i] = LocalIndex(i, tt.nglobal, tt.nlocal)
		}
		diff(t, tt.want, got)
	}
}

func TestLocalIndexProperties(t *testing.T) {
	for nglobal := 1; nglobal <= 40; nglobal++ {
		for nlocal := 1; nlocal <= nglobal; nlocal++ {
			idx := make([]int, nglobal)
			for i := range idx {
				idx[i] = LocalIndex(i, nglobal, nlocal)
			}
			if idx[0] != 0 || idx[nglobal-1] != nlocal-1 {
				t.Errorf("%d/%d: %v doesn't span [0, %d]", nlocal, nglobal, idx, nlocal-1)
			}
			for i := 1; i < nglobal; i++ {
				if d := idx[i] - idx[i-1]; d < 0 || d > 1 {
					t.Errorf("%d/%d: %v skips or reverses at %d", nlocal, nglobal, idx, i)
				}
			}
			for i := range idx {
				j := nglobal - 1 - i
				if i == j {
					continue
				}
				if idx[i]+idx[j] != nlocal-1 {
					t.Errorf("%d/%d: %v isn't symmetric at %d", nlocal, nglobal, idx, i)
				}
			}
			if nlocal == nglobal {
				for i := range idx {
					if idx[i] != i {
						t.Errorf("%d/%d: %v isn't the identity", nlocal, nglobal, idx)
					}
				}
			}
		}
	}
}

func TestLocalIndexPanics(t *testing.T) {
	for _, args := range [][3]int{{3, 3, 1}, {-1, 3, 1}, {0, 3, 0}, {0, 3, 4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("LocalIndex(%d, %d, %d) didn't panic", args[0], args[1], args[2])
				}
			}()
			LocalIndex(args[0], args[1], args[2])
		}()
	}
}

func TestInterpolateCurveSetSplit(t *testing.T) {
	kfs := []Keyframe[Vec2]{
		{Curves: []Vec2{Vec(0, 0)}, SubdivAfter: 4, SlopeFactor: 1},
		{Curves: []Vec2{Vec(-1, 1), Vec(0, 1), Vec(1, 1)}, SubdivAfter: 4, SlopeFactor: 1},
	}
	curves, err := InterpolateCurveSet(kfs)
	if err != nil {
		t.Fatal(err)
	}
	if len(curves) != 3 {
		t.Fatalf("got %d curves, want 3", len(curves))
	}
	for i, c := range curves {
		if len(c) != 5 {
			t.Fatalf("curve %d has %d values, want 5", i, len(c))
		}
		diff(t, Vec(0, 0), c[0])
		diff(t, kfs[1].Curves[i], c[4])
	}
	for j := range 5 {
		// The curves are mirror images of each other, and drift apart.
		diff(t, curves[0][j].X, -curves[2][j].X, approx(1e-12))
		diff(t, curves[1][j].X, 0.0, approx(1e-12))
		diff(t, curves[0][j].Y, curves[2][j].Y, approx(1e-12))
		if j > 0 && curves[2][j].X <= curves[2][j-1].X {
			t.Errorf("curves don't diverge at step %d: %v", j, curves[2][:j+1])
		}
	}
	// The merged keyframe imposes one shared slope, so the curves leave it
	// tangent to each other: x(ξ) = 2ξ² − ξ³ instead of x(ξ) = ξ.
	diff(t, 2*0.109375, curves[2][1].X-curves[0][1].X, approx(1e-12))
}

func TestInterpolateCurveSetMergeAndSplit(t *testing.T) {
	kfs := []Keyframe[Scalar]{
		{Curves: []Scalar{0, 100}, SubdivAfter: 20, SlopeFactor: 1},
		{Curves: []Scalar{30}, SubdivAfter: 20, SlopeFactor: 1},
		{Curves: []Scalar{70}, SubdivAfter: 20, SlopeFactor: 1},
		{Curves: []Scalar{0, 100}, SubdivAfter: 20, SlopeFactor: 1},
	}
	curves, err := InterpolateCurveSet(kfs)
	if err != nil {
		t.Fatal(err)
	}
	if len(curves) != 2 || len(curves[0]) != 61 || len(curves[1]) != 61 {
		t.Fatalf("got %d curves of %d values, want 2 of 61", len(curves), len(curves[0]))
	}
	for _, c := range curves {
		diff(t, Scalar(30), c[20])
		diff(t, Scalar(70), c[40])
	}
	diff(t, []Scalar{0, 100}, []Scalar{curves[0][60], curves[1][60]})
	diff(t, curves[0][20:41], curves[1][20:41])
}

func TestInterpolateCurveSetSymmetric(t *testing.T) {
	kfs := []Keyframe[Scalar]{
		{Curves: []Scalar{0, 100}, SubdivAfter: 10, SlopeFactor: 1},
		{Curves: []Scalar{20, 50, 80}, SubdivAfter: 10, SlopeFactor: 0.5},
		{Curves: []Scalar{50}, SubdivAfter: 10, SlopeFactor: 1},
		{Curves: []Scalar{-10, 40, 60, 110}, SubdivAfter: 10, SlopeFactor: 2},
	}
	curves, err := InterpolateCurveSet(kfs)
	if err != nil {
		t.Fatal(err)
	}
	n := len(curves)
	if n != 4 {
		t.Fatalf("got %d curves, want 4", n)
	}
	for i := range curves {
		for j := range curves[i] {
			diff(t, Scalar(100), curves[i][j]+curves[n-1-i][j], approx(1e-9))
		}
	}
}

func TestInterpolateCurveSetErrors(t *testing.T) {
	one := Keyframe[Scalar]{Curves: []Scalar{1}, SubdivAfter: 1, SlopeFactor: 1}
	if _, err := InterpolateCurveSet[Scalar](nil); !errors.Is(err, ErrTooFewKeyframes) {
		t.Errorf("got error %v, want %v", err, ErrTooFewKeyframes)
	}
	if _, err := InterpolateCurveSet([]Keyframe[Scalar]{one}); !errors.Is(err, ErrTooFewKeyframes) {
		t.Errorf("got error %v, want %v", err, ErrTooFewKeyframes)
	}

	_, err := InterpolateCurveSet([]Keyframe[Scalar]{one, {SubdivAfter: 1}})
	var kerr *KeyframeError
	if !errors.Is(err, ErrEmptyKeyframe) || !errors.As(err, &kerr) || kerr.Index != 1 {
		t.Errorf("got error %v, want %v at keyframe 1", err, ErrEmptyKeyframe)
	}

	neg := one
	neg.SubdivAfter = -1
	if _, err := InterpolateCurveSet([]Keyframe[Scalar]{neg, one}); !errors.Is(err, ErrNegativeSubdivision) {
		t.Errorf("got error %v, want %v", err, ErrNegativeSubdivision)
	}
	// The last keyframe's subdivision is never used.
	if _, err := InterpolateCurveSet([]Keyframe[Scalar]{one, neg}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestFramesOf(t *testing.T) {
	curves := [][]Scalar{{1, 2, 3}, {4, 5, 6}}
	diff(t, [][]Scalar{{1, 4}, {2, 5}, {3, 6}}, FramesOf(curves))
	if got := FramesOf[Scalar](nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
