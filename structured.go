package cellgo

import (
	"fmt"
	"slices"

	"github.com/hupe1980/cellgo/bitmap"
)

// DimRange selects the half-open interval [Start, End) of one dimension.
type DimRange struct {
	Start int
	End   int
}

// IsEmpty reports whether the range selects nothing.
func (r DimRange) IsEmpty() bool { return r.Start >= r.End }

// StructuredCells lays records out as a dense row-major hyperrectangle, the
// last dimension varying fastest.
type StructuredCells struct {
	dimensions []int
	cells      *Cells
}

// NewStructuredCells shapes cells as a hyperrectangle with the given
// dimension lengths. Panics if the product of the dimensions is not the
// record count.
func NewStructuredCells(dimensions []int, cells *Cells) *StructuredCells {
	expect := 1
	for _, d := range dimensions {
		expect *= d
	}
	if expect != cells.Len() {
		panic(fmt.Sprintf("cellgo: dimensions %v span %d cells, have %d", dimensions, expect, cells.Len()))
	}
	return &StructuredCells{dimensions: dimensions, cells: cells}
}

// NumDimensions returns the number of dimensions.
func (s *StructuredCells) NumDimensions() int { return len(s.dimensions) }

// DimensionLen returns the span of dimension d.
func (s *StructuredCells) DimensionLen(d int) int { return s.dimensions[d] }

// IntoInner returns the underlying cells.
func (s *StructuredCells) IntoInner() *Cells { return s.cells }

// Slice selects the sub-block covered by one range per dimension. The
// result keeps the dimensions of the source and holds the cells of every
// coordinate in the Cartesian product of the ranges, still in row-major
// order. If any range is empty the result holds no cells.
//
// Panics if the number of ranges differs from the number of dimensions.
func (s *StructuredCells) Slice(ranges []DimRange) *StructuredCells {
	if len(ranges) != len(s.dimensions) {
		panic(fmt.Sprintf("cellgo: %d ranges sliced across %d dimensions", len(ranges), len(s.dimensions)))
	}

	sel := bitmap.New(s.cells.Len())

	cursors := make([]int, len(ranges))
	running := true
	for i, r := range ranges {
		cursors[i] = r.Start
		if r.IsEmpty() {
			running = false
		}
	}

	for running {
		index, scale := 0, 1
		for i := len(s.dimensions) - 1; i >= 0; i-- {
			index += cursors[i] * scale
			scale *= s.dimensions[i]
		}
		sel.Add(index)

		running = false
		for d := len(s.dimensions) - 1; d >= 0; d-- {
			if cursors[d]+1 < ranges[d].End {
				cursors[d]++
				running = true
				break
			}
			cursors[d] = ranges[d].Start
		}
	}

	return &StructuredCells{
		dimensions: slices.Clone(s.dimensions),
		cells:      s.cells.Filter(sel),
	}
}
