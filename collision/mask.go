package collision

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// BehaviorGrid is a rectangular, row-major grid of behavior codes. Zero
// means "no collider here"; any other value is a distinct collision
// category (solid, hazard, ...). Codes are assigned by the tile-layout
// source, typically through the behavior registry.
type BehaviorGrid [][]int

// BinaryGrid derives the default occupancy grid from raw tile indices:
// every non-zero tile becomes behavior code 1. Used when a layout carries
// no behavior data at all.
func BinaryGrid(tiles [][]int) BehaviorGrid {
	grid := make(BehaviorGrid, len(tiles))
	for r, row := range tiles {
		grid[r] = make([]int, len(row))
		for c, v := range row {
			if v != 0 {
				grid[r][c] = 1
			}
		}
	}
	return grid
}

// MaskSet holds the compiled collision masks for one tilemap layout:
// per behavior code, an ordered list of merged rectangles in pixel
// coordinates. Rectangles never overlap (within or across codes) and
// together cover exactly the non-zero cells of the source grid.
//
// A MaskSet is rebuilt wholesale when the active layout changes; it is
// never patched in place.
type MaskSet struct {
	codes  []int
	byCode *intmap.Map[int, int]
	groups [][]*Shape
	all    []*Shape
}

// Masks returns the rectangles compiled for one behavior code, in scan
// order. Unknown codes return nil; the set does not validate codes;
// that contract belongs to whoever owns the layout's code vocabulary.
func (m *MaskSet) Masks(code int) []*Shape {
	if m == nil || m.byCode == nil {
		return nil
	}
	idx, ok := m.byCode.Get(code)
	if !ok {
		return nil
	}
	return m.groups[idx]
}

// All returns every rectangle across all codes, in compilation order.
func (m *MaskSet) All() []*Shape {
	if m == nil {
		return nil
	}
	return m.all
}

// Codes returns the behavior codes in first-seen scan order.
func (m *MaskSet) Codes() []int {
	if m == nil {
		return nil
	}
	return m.codes
}

// Len returns the total rectangle count.
func (m *MaskSet) Len() int {
	if m == nil {
		return 0
	}
	return len(m.all)
}

func (m *MaskSet) add(code int, rect *Shape) {
	idx, ok := m.byCode.Get(code)
	if !ok {
		idx = len(m.groups)
		m.byCode.Put(code, idx)
		m.codes = append(m.codes, code)
		m.groups = append(m.groups, nil)
	}
	m.groups[idx] = append(m.groups[idx], rect)
	m.all = append(m.all, rect)
}

// Compile merges a behavior grid into a minimal-ish set of rectangles
// and scales them to pixels using the given cell size.
//
// The merge is a greedy row-major scan: for each not-yet-consumed
// non-zero cell, extend the run rightward through cells of the same
// code, then extend that full column span downward row by row, then zero
// the consumed block so later scans skip it. Right-first-then-down is a
// deliberate tie-break: it is deterministic and matches existing level
// content, but it is not a globally optimal rectangle cover. Do not
// replace it with one.
//
// A ragged grid is a structural error. An empty or all-zero grid
// compiles to an empty MaskSet.
func Compile(grid BehaviorGrid, cellW, cellH float64) (*MaskSet, error) {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}
	for r := range grid {
		if len(grid[r]) != cols {
			return nil, fmt.Errorf("collision: ragged grid: row %d has %d cells, want %d", r, len(grid[r]), cols)
		}
	}

	// Work on a copy; consumed cells are zeroed as rectangles are cut.
	work := make([][]int, rows)
	for r := range grid {
		work[r] = append([]int(nil), grid[r]...)
	}

	set := &MaskSet{byCode: intmap.New[int, int](8)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			code := work[r][c]
			if code == 0 {
				continue
			}

			endC := c
			for endC+1 < cols && work[r][endC+1] == code {
				endC++
			}

			endR := r
			for endR+1 < rows && spanMatches(work[endR+1], c, endC, code) {
				endR++
			}

			for rr := r; rr <= endR; rr++ {
				for cc := c; cc <= endC; cc++ {
					work[rr][cc] = 0
				}
			}

			set.add(code, NewRectangle(
				float64(c)*cellW,
				float64(r)*cellH,
				float64(endC-c+1)*cellW,
				float64(endR-r+1)*cellH,
			))
		}
	}
	return set, nil
}

// spanMatches reports whether row[c..endC] consists entirely of code.
func spanMatches(row []int, c, endC, code int) bool {
	for i := c; i <= endC; i++ {
		if row[i] != code {
			return false
		}
	}
	return true
}
