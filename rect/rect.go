package rect

import (
	"fmt"
	"math"
	"strings"
)

// Rect is an atomic axis-aligned hyper-rectangle: an immutable mapping
// from dimension label to a positive length. Two Rects with the same
// mapping are equal in value; the zero Rect has no dimensions and is
// not constructible through New.
type Rect struct {
	shape Shape
}

// New constructs a Rect from the given shape mapping.
// The mapping is copied, so later caller mutations never leak in.
//
// Errors:
//   - ErrEmptyShape — the mapping has no dimensions.
//   - ErrBadLength  — a length is zero, negative, NaN or infinite.
//
// Complexity: O(d)
func New(shape map[Dim]float64) (Rect, error) {
	if err := validShape(shape); err != nil {
		return Rect{}, err
	}

	return Rect{shape: Shape(shape).Clone()}, nil
}

// MustNew is New that panics on invalid input.
// Intended for literals in examples and tests.
func MustNew(shape map[Dim]float64) Rect {
	r, err := New(shape)
	if err != nil {
		panic(err)
	}

	return r
}

// validShape checks the construction invariant: at least one dimension,
// every length finite and strictly positive.
func validShape(shape map[Dim]float64) error {
	if len(shape) == 0 {
		return ErrEmptyShape
	}
	for d, l := range shape {
		if l <= 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return fmt.Errorf("%w: dimension %q has length %v", ErrBadLength, d, l)
		}
	}

	return nil
}

// Shape returns a fresh copy of the dimension→length mapping.
// Mutating the returned map never affects the Rect.
// Complexity: O(d)
func (r Rect) Shape() Shape { return r.shape.Clone() }

// Length returns the extent along d, or 0 when d is absent.
func (r Rect) Length(d Dim) float64 { return r.shape[d] }

// NDim returns the number of dimensions in the shape.
func (r Rect) NDim() int { return len(r.shape) }

// Dims returns the dimension labels sorted ascending.
func (r Rect) Dims() []Dim { return r.shape.Dims() }

// Equal reports value equality: identical dimension sets with
// identical lengths.
func (r Rect) Equal(other Rect) bool { return r.shape.Equal(other.shape) }

// Then sequences other after r, producing an unaligned Sequence.
// No axis is chosen yet; the result has no shape until Along.
// Complexity: O(k) over the combined component count.
func (r Rect) Then(other Expr) Sequence { return then(r, other) }

// Repeat sequences n copies of r, producing an unaligned Sequence.
// n=1 yields a degenerate one-component Sequence that resolves to
// r's own shape under any of r's axes.
//
// Errors:
//   - ErrBadCount — n < 1.
func (r Rect) Repeat(n int) (Sequence, error) { return repeatExpr(r, n) }

// String renders the rect as /d1:l1 d2:l2/ with dimensions sorted.
func (r Rect) String() string { return "/" + formatShape(r.shape) + "/" }

func (r Rect) components() []Aligned { return []Aligned{r} }

func (r Rect) ref() Shape { return r.shape }

// formatShape renders a shape as "d1:l1 d2:l2" with dimensions sorted.
func formatShape(s Shape) string {
	parts := make([]string, 0, len(s))
	for _, d := range s.Dims() {
		parts = append(parts, fmt.Sprintf("%s:%v", d, s[d]))
	}

	return strings.Join(parts, " ")
}
