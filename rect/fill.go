package rect

import "fmt"

// FillInto grows v until it matches the bounding shape, one dimension
// at a time: for each dimension it appends a filler rectangle covering
// the remaining extent and aligns the pair along that dimension. The
// result is a nested Resolved whose shape equals bounding over the
// filled dimensions.
//
// order lists the dimensions to fill, each a dimension of v; when
// omitted, all of v's dimensions are filled in sorted order. A
// dimension already at its bound needs no filler and is skipped, so
// FillInto(v, v.Shape()) returns v unchanged.
//
// Errors:
//   - ErrEmptyShape / ErrBadLength — bounding is not a valid shape.
//   - ErrUnknownAxis — an order entry is not a dimension of v.
//   - ErrFillBounds  — a filled dimension is missing from bounding, or
//     its bound is smaller than v's current extent.
//
// Complexity: O(f·d) over filled dimensions and dimensions per step.
func FillInto(v Aligned, bounding map[Dim]float64, order ...Dim) (Aligned, error) {
	if err := validShape(bounding); err != nil {
		return nil, err
	}
	if len(order) == 0 {
		order = v.Dims()
	} else {
		for _, d := range order {
			if _, ok := v.ref()[d]; !ok {
				return nil, fmt.Errorf("%w: fill dimension %q", ErrUnknownAxis, d)
			}
		}
	}

	cur := v
	done := make(map[Dim]bool, len(order))
	for _, d := range order {
		target, ok := bounding[d]
		if !ok {
			return nil, fmt.Errorf("%w: no bound for dimension %q", ErrFillBounds, d)
		}
		have := cur.Length(d)
		if target < have {
			return nil, fmt.Errorf("%w: dimension %q is %v, bound is %v", ErrFillBounds, d, have, target)
		}
		done[d] = true
		if target == have {
			continue
		}

		// The filler spans already-filled dimensions at their bounds and
		// untouched dimensions at the current extents, so aligning along
		// d extends d without disturbing the rest.
		filler := make(map[Dim]float64, cur.NDim())
		for _, e := range cur.Dims() {
			if e == d {
				continue
			}
			if done[e] {
				filler[e] = bounding[e]
			} else {
				filler[e] = cur.Length(e)
			}
		}
		filler[d] = target - have

		pad, err := New(filler)
		if err != nil {
			return nil, err
		}
		res, err := then(cur, pad).Along(d)
		if err != nil {
			return nil, err
		}
		cur = res
	}

	return cur, nil
}
