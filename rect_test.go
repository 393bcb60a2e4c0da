package fractal

import (
	"slices"
	"testing"
)

func TestRectAbs(t *testing.T) {
	r := NewRectFromPoints(Pt(4, 1), Pt(2, 3))
	diff(t, Rect{2, 1, 4, 3}, r)
	diff(t, 2.0, r.Width())
	diff(t, 2.0, r.Height())
	diff(t, Pt(3, 2), r.Center())
	if !r.Contains(Pt(2, 1)) || r.Contains(Pt(4, 2)) {
		t.Error("Contains should include the lower edges and exclude the upper ones")
	}
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	diff(t, Rect{-1, 0, 2, 1}, r.Union(Rect{-1, 0.5, 2, 0.75}))
	diff(t, Rect{0, -2, 1, 1}, r.UnionPoint(Pt(0.5, -2)))
	diff(t, Rect{-0.5, -1, 1.5, 2}, r.Inflate(0.5, 1))
}

func TestBoundingBox(t *testing.T) {
	if _, ok := BoundingBox(slices.Values(Polyline(nil))); ok {
		t.Error("expected empty sequence to have no bounding box")
	}

	bb, ok := BoundingBox(slices.Values(Polyline{Pt(2, 3)}))
	if !ok {
		t.Fatal("expected bounding box")
	}
	diff(t, Rect{2, 3, 2, 3}, bb)

	it, err := NewExact(kochBase, kochGen, 3)
	if err != nil {
		t.Fatal(err)
	}
	bb, _ = BoundingBox(it.Points())
	// The Koch curve stays inside the triangle spanned by its first generation.
	diff(t, Rect{0, kochGen[2].Y, 3, 0}, bb, approx(1e-9))
}
