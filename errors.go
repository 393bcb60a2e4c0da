package fractal

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateGenerator is returned when a generator's first and last
	// points coincide, in which case no similarity maps it onto a segment.
	ErrDegenerateGenerator = errors.New("fractal: generator endpoints coincide")
	// ErrInsufficientPoints is returned for curves with fewer than two points.
	ErrInsufficientPoints = errors.New("fractal: curve needs at least two points")
	// ErrNegativeGeneration is returned by [NewExact] for generation < 0.
	ErrNegativeGeneration = errors.New("fractal: negative generation")
	// ErrTooFewKeyframes is returned when interpolating fewer than two
	// keyframes.
	ErrTooFewKeyframes = errors.New("fractal: interpolation needs at least two keyframes")
	// ErrEmptyKeyframe is returned when a keyframe has no curves.
	ErrEmptyKeyframe = errors.New("fractal: keyframe has no curves")
	// ErrNegativeSubdivision is returned when a keyframe asks for a negative
	// number of in-between steps.
	ErrNegativeSubdivision = errors.New("fractal: negative subdivision")
)

// CurveError reports an invalid base or generator curve.
type CurveError struct {
	// Role is "base" or "generator".
	Role string
	// Len is the number of points the curve had.
	Len int
	Err error
}

func (err *CurveError) Error() string {
	return fmt.Sprintf("%s curve with %d points: %s", err.Role, err.Len, err.Err)
}

func (err *CurveError) Unwrap() error { return err.Err }

// KeyframeError reports an invalid keyframe.
type KeyframeError struct {
	// Index of the offending keyframe.
	Index int
	Err   error
}

func (err *KeyframeError) Error() string {
	return fmt.Sprintf("keyframe %d: %s", err.Index, err.Err)
}

func (err *KeyframeError) Unwrap() error { return err.Err }
