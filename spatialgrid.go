package ballpit

import (
	"math"
	"slices"
)

// SpatialHashGrid buckets bodies into square cells and pairs bodies that
// share a cell and whose bounding boxes overlap. CellSize 0 picks twice the
// largest radius each frame.
type SpatialHashGrid struct {
	CellSize float64

	cells map[[2]int][]int
	seen  map[Pair]struct{}
}

func NewSpatialHashGrid(cellSize float64) *SpatialHashGrid {
	return &SpatialHashGrid{
		CellSize: cellSize,
		cells:    make(map[[2]int][]int),
		seen:     make(map[Pair]struct{}),
	}
}

func (grid *SpatialHashGrid) Pairs(bodies []Body, dst []Pair) []Pair {
	if grid.cells == nil {
		grid.cells = make(map[[2]int][]int)
		grid.seen = make(map[Pair]struct{})
	}
	clear(grid.cells)
	clear(grid.seen)

	cellSize := grid.CellSize
	if cellSize <= 0 {
		for i := range bodies {
			cellSize = math.Max(cellSize, 2*bodies[i].Radius)
		}
		if cellSize <= 0 {
			return dst
		}
	}

	for i := range bodies {
		grid.insert(i, &bodies[i], cellSize)
	}

	start := len(dst)
	for _, ids := range grid.cells {
		for a := 0; a < len(ids)-1; a++ {
			for b := a + 1; b < len(ids); b++ {
				p := makePair(ids[a], ids[b])
				if _, dup := grid.seen[p]; dup {
					continue
				}
				grid.seen[p] = struct{}{}
				if boxesOverlap(&bodies[p.I], &bodies[p.J]) {
					dst = append(dst, p)
				}
			}
		}
	}
	// Map iteration order is random; keep the output stable.
	slices.SortFunc(dst[start:], func(x, y Pair) int {
		if x.I != y.I {
			return x.I - y.I
		}
		return x.J - y.J
	})
	return dst
}

func (grid *SpatialHashGrid) insert(id int, b *Body, cellSize float64) {
	minX, maxX := cellIndex(b.Min(0), cellSize), cellIndex(b.Max(0), cellSize)
	minY, maxY := cellIndex(b.Min(1), cellSize), cellIndex(b.Max(1), cellSize)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			key := [2]int{x, y}
			grid.cells[key] = append(grid.cells[key], id)
		}
	}
}

func cellIndex(v, cellSize float64) int {
	return int(math.Floor(v / cellSize))
}

func boxesOverlap(a, b *Body) bool {
	return a.Max(0) >= b.Min(0) && b.Max(0) >= a.Min(0) &&
		a.Max(1) >= b.Min(1) && b.Max(1) >= a.Min(1)
}
