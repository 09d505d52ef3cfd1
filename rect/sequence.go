package rect

import (
	"fmt"
	"strings"
)

// Sequence is an ordered chain of rectangle-like components with no
// alignment axis chosen yet. It has no shape: the only way forward is
// Along (pick the axis) or further sequencing.
//
// Sequences are produced by Then and Repeat, never constructed
// directly; the component list is always flat — an unaligned Sequence
// never contains another unaligned Sequence.
type Sequence struct {
	rects []Aligned
}

// then concatenates the flat component lists of a and b into a fresh
// Sequence. Flattening happens here, at construction, so the invariant
// holds for every Sequence that can exist.
func then(a, b Expr) Sequence {
	ac, bc := a.components(), b.components()
	out := make([]Aligned, 0, len(ac)+len(bc))
	out = append(out, ac...)
	out = append(out, bc...)

	return Sequence{rects: out}
}

// repeatExpr concatenates n copies of v's flat component list.
func repeatExpr(v Expr, n int) (Sequence, error) {
	if n < 1 {
		return Sequence{}, ErrBadCount
	}
	base := v.components()
	out := make([]Aligned, 0, n*len(base))
	for i := 0; i < n; i++ {
		out = append(out, base...)
	}

	return Sequence{rects: out}, nil
}

// Then appends other's components after s's, keeping the list flat.
// Chaining is associative on the resulting component order:
// a.Then(b).Then(c) and a.Then(b.Then(c)) flatten identically.
func (s Sequence) Then(other Expr) Sequence { return then(s, other) }

// Repeat sequences n copies of the whole chain in order.
//
// Errors:
//   - ErrBadCount — n < 1.
func (s Sequence) Repeat(n int) (Sequence, error) { return repeatExpr(s, n) }

// Along resolves the sequence by aligning every component along axis.
//
// Algorithm:
//  1. Sum each component's length along axis — that is the resolved
//     extent of the aligned dimension.
//  2. For every other dimension appearing in any component, take the
//     maximum length across components (bounding-box rule). A
//     component lacking a dimension contributes 0, which never shrinks
//     the bound.
//  3. Wrap components, axis, and the computed shape into a Resolved.
//
// The shape is computed once, here; components are immutable, so the
// cached result can never go stale.
//
// Errors:
//   - ErrUnknownAxis   — axis appears in no component.
//   - ErrShapeMismatch — WithStrictDims is set and some component
//     lacks a dimension present in another.
//
// Complexity: O(k·d) over components and dimensions.
func (s Sequence) Along(axis Dim, opts ...AlignOption) (Resolved, error) {
	var cfg alignOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	shape := make(Shape)
	seen := make(map[Dim]int, 4) // dimension → number of components defining it
	axisFound := false
	for _, c := range s.rects {
		for d, l := range c.ref() {
			seen[d]++
			if d == axis {
				shape[d] += l
				axisFound = true
			} else if l > shape[d] {
				shape[d] = l
			}
		}
	}
	if !axisFound {
		return Resolved{}, ErrUnknownAxis
	}
	if cfg.strictDims {
		for _, n := range seen {
			if n != len(s.rects) {
				return Resolved{}, ErrShapeMismatch
			}
		}
	}

	comps := make([]Aligned, len(s.rects))
	copy(comps, s.rects)

	return Resolved{rects: comps, axis: axis, shape: shape}, nil
}

// Len returns the number of components in the chain.
func (s Sequence) Len() int { return len(s.rects) }

// At returns the i-th component.
//
// Errors:
//   - ErrIndexRange — i is outside [0, Len).
func (s Sequence) At(i int) (Aligned, error) {
	if i < 0 || i >= len(s.rects) {
		return nil, ErrIndexRange
	}

	return s.rects[i], nil
}

// Components returns a copy of the component list in sequence order.
func (s Sequence) Components() []Aligned {
	out := make([]Aligned, len(s.rects))
	copy(out, s.rects)

	return out
}

// String renders the chain as (/a:1/+/a:2/@D?) — the trailing ?
// marks the axis as not yet chosen.
func (s Sequence) String() string { return "(" + joinComponents(s.rects) + "@D?)" }

func (s Sequence) components() []Aligned { return s.rects }

// joinComponents renders component reprs joined by "+".
// Both Aligned implementations are fmt.Stringer, so %v dispatches.
func joinComponents(rects []Aligned) string {
	parts := make([]string, len(rects))
	for i, c := range rects {
		parts[i] = fmt.Sprintf("%v", c)
	}

	return strings.Join(parts, "+")
}
