package planner

// Grid describes the tile arrangement on the output canvas: a TilesX by
// TilesY matrix of equal boxes, centered as a block, with the final
// (possibly short) row recentered on its own.
type Grid struct {
	TilesX uint32
	TilesY uint32
	BoxW   uint32
	BoxH   uint32

	offX     uint32
	offY     uint32
	offXLast uint32
}

// BuildGrid computes the grid for n sources on a width x height canvas.
// The column count is the smallest square root bound of n, so the grid
// grows 1x1, 2x1, 2x2, 3x2, 3x3 and so on. Box height derives from the
// column count as well, keeping boxes at the canvas aspect ratio.
func BuildGrid(n int, width, height uint32) Grid {
	tilesX := uint32(1)
	for tilesX*tilesX < uint32(n) {
		tilesX++
	}
	tilesY := (uint32(n) + tilesX - 1) / tilesX

	g := Grid{
		TilesX: tilesX,
		TilesY: tilesY,
		BoxW:   width / tilesX,
		BoxH:   height / tilesX,
	}
	g.offX = width/2 - tilesX*g.BoxW/2
	g.offY = height/2 - tilesY*g.BoxH/2

	lastRow := uint32(n) % tilesX
	if lastRow == 0 {
		lastRow = tilesX
	}
	g.offXLast = width/2 - lastRow*g.BoxW/2
	return g
}

// Slot returns the top-left corner of the i-th grid box in row-major
// order.
func (g Grid) Slot(i int) (x, y uint32) {
	tx := uint32(i) % g.TilesX
	ty := uint32(i) / g.TilesX

	off := g.offX
	if ty == g.TilesY-1 {
		off = g.offXLast
	}
	return off + tx*g.BoxW, g.offY + ty*g.BoxH
}

// FitDimensions scales a srcW x srcH picture to the largest size that
// fits inside a boxW x boxH slot without distorting its aspect ratio.
// All arithmetic is truncating integer math so the planned tile size
// matches the size requested from the decode scaler exactly.
func FitDimensions(srcW, srcH, boxW, boxH uint32) (w, h uint32) {
	w1, h1 := boxW, srcH*boxW/srcW
	w2, h2 := srcW*boxH/srcH, boxH

	if w1 <= boxW && h1 <= boxH {
		return w1, h1
	}
	return w2, h2
}
