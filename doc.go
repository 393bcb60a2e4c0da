// Package fractal generates generator fractals and interpolates between them
// for animation.
//
// # Generator fractals
//
// A generator fractal is described by two polylines, the base and the
// generator. Each segment of the base is replaced by a copy of the generator
// that has been rotated and uniformly scaled (see [Similarity]) so that the
// generator's first and last points coincide with the segment's endpoints.
// Repeating this for every segment of the result yields the next generation.
// A base of a single segment and a generator shaped like _/\_ produces the
// Koch curve, for example.
//
// The number of points grows exponentially with the generation, so the curves
// are never materialized. Instead, they are produced lazily by iterators that
// implement [Sequence]:
//
//   - [Exact] produces a fixed generation.
//   - [Adaptive] refines each segment only as long as it is longer than a
//     minimum length, which is useful when drawing at a known scale. Work is
//     bounded by a maximum generation and a maximum number of points.
//
// Both iterators use memory proportional to the generation only. Use
// [Points] to range over a sequence, and [BoundingBox], [FitView] and
// [WriteSVG] to consume it.
//
// # Animation
//
// [CubicSlopes] and [CubicInterp] implement cubic Hermite splines through
// evenly spaced samples, with per-sample tempo control. They are generic over
// [Vector], which [Vec2] and [Scalar] implement.
//
// [InterpolateCurveSet] interpolates between keyframes whose sets of curves
// have different sizes, merging and splitting curves symmetrically (see
// [LocalIndex]). [Animate] builds on it to interpolate whole fractals,
// producing one base and generator per animation frame.
package fractal
