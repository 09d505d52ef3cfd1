package rect

// Resolved is a sequence aligned along a chosen axis. Its shape is
// computed at resolution time: the aligned dimension holds the sum of
// component lengths, every other dimension the maximum (bounding box).
//
// A Resolved behaves like a plain Rect in further composition — Then
// and Repeat treat it as one opaque component carrying its resolved
// shape. Re-aligning a Resolved directly is not possible; sequence it
// again and Along the new chain (nesting, never mutation). The
// original components and axis stay available for introspection.
type Resolved struct {
	rects []Aligned
	axis  Dim
	shape Shape
}

// Shape returns a fresh copy of the resolved dimension→length mapping.
// Mutating the returned map never affects the value.
// Complexity: O(d)
func (rs Resolved) Shape() Shape { return rs.shape.Clone() }

// Length returns the resolved extent along d, or 0 when d is absent.
func (rs Resolved) Length(d Dim) float64 { return rs.shape[d] }

// NDim returns the number of dimensions in the resolved shape.
func (rs Resolved) NDim() int { return len(rs.shape) }

// Dims returns the resolved dimension labels sorted ascending.
func (rs Resolved) Dims() []Dim { return rs.shape.Dims() }

// Axis returns the dimension the sequence was aligned along.
func (rs Resolved) Axis() Dim { return rs.axis }

// Then sequences other after rs. rs enters the new chain as a single
// opaque component; its internals are not reopened.
func (rs Resolved) Then(other Expr) Sequence { return then(rs, other) }

// Repeat sequences n copies of rs as opaque components.
//
// Errors:
//   - ErrBadCount — n < 1.
func (rs Resolved) Repeat(n int) (Sequence, error) { return repeatExpr(rs, n) }

// Len returns the number of components the sequence was resolved from.
func (rs Resolved) Len() int { return len(rs.rects) }

// At returns the i-th original component.
//
// Errors:
//   - ErrIndexRange — i is outside [0, Len).
func (rs Resolved) At(i int) (Aligned, error) {
	if i < 0 || i >= len(rs.rects) {
		return nil, ErrIndexRange
	}

	return rs.rects[i], nil
}

// Components returns a copy of the original component list.
func (rs Resolved) Components() []Aligned {
	out := make([]Aligned, len(rs.rects))
	copy(out, rs.rects)

	return out
}

// String renders the value as (/w:1/+/w:2/@Dw) — components joined by
// "+" with the chosen axis after @D.
func (rs Resolved) String() string {
	return "(" + joinComponents(rs.rects) + "@D" + string(rs.axis) + ")"
}

// components contributes rs as one opaque element: nested sequences
// stay nested, each layer independently aligned.
func (rs Resolved) components() []Aligned { return []Aligned{rs} }

func (rs Resolved) ref() Shape { return rs.shape }
