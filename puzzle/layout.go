package puzzle

import (
	"math"

	"github.com/raven2cz/escape-game-engine-sub001/types"
)

// defaultBoard is used when a dragdrop config supplies no board bounds.
var defaultBoard = types.Rect{W: 640, H: 400}

// scatterMargin is the minimum distance kept between any two generated
// positions and between a position and the board edge.
const scatterMargin = 8

// ScatterPositions generates n starting positions inside bounds such that no
// two positions coincide: any two are at least 2*scatterMargin apart on the
// axis that separates their cells. Deterministic grid with per-cell jitter:
// the board is divided into ceil(sqrt(n)) columns of cells, each position
// jitters within its own cell minus the margin, and cell membership
// guarantees the separation invariant.
func ScatterPositions(rng *RNG, n int, bounds types.Rect) []types.Point {
	if n <= 0 {
		return nil
	}
	w, h := bounds.W, bounds.H
	if w <= 0 {
		w = defaultBoard.W
	}
	if h <= 0 {
		h = defaultBoard.H
	}

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	// Degenerate boards clamp the cell to one unit so positions stay
	// distinct even when the margin cannot be honored.
	cellW := w / cols
	if cellW < 1 {
		cellW = 1
	}
	cellH := h / rows
	if cellH < 1 {
		cellH = 1
	}

	// Jitter range inside a cell, keeping the margin to the cell border.
	jw := cellW - 2*scatterMargin
	jh := cellH - 2*scatterMargin

	positions := make([]types.Point, 0, n)
	for i := 0; i < n; i++ {
		col := i % cols
		row := i / cols
		x := bounds.X + col*cellW + scatterMargin
		y := bounds.Y + row*cellH + scatterMargin
		if jw > 0 {
			x += rng.Intn(jw)
		}
		if jh > 0 {
			y += rng.Intn(jh)
		}
		positions = append(positions, types.Point{Left: x, Top: y})
	}
	return positions
}

// GroupGrid computes the board grid for n group areas. Vertical direction:
// columns = ceil(sqrt(n)), rows = ceil(n/columns) — 2 groups form 2×1,
// 5 groups form 3×2. Horizontal swaps the axes.
func GroupGrid(n int, direction string) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	major := int(math.Ceil(math.Sqrt(float64(n))))
	minor := (n + major - 1) / major
	if direction == "horizontal" {
		return minor, major
	}
	return major, minor
}
