package planner

// Alignment is the shared-timeline schedule produced by AlignSplits.
type Alignment struct {
	Start  uint32
	Length uint32
	Pauses []uint32
}

// AlignSplits lays every tile's checkpoint runs onto one shared output
// timeline. For each checkpoint, a tile's run length is the frame
// distance from its previous checkpoint (exclusive) to this one
// (inclusive), measured after the decode offset. All tiles begin a run
// at the same timeline frame; the slowest tile sets the pace and the
// others hold their last picture until it catches up. After every
// checkpoint but the last, pauseFrames blank the advance so the state
// at the checkpoint stays on screen.
//
// The returned Start is the end of the first run: the frame at which
// every tile has reached checkpoint one and emission begins. Tiles'
// Splits slices are filled in place, one segment per checkpoint.
func AlignSplits(tiles []Tile, splits [][]float64, fps, pauseFrames uint32) Alignment {
	var a Alignment
	if len(splits) == 0 {
		return a
	}
	count := len(splits[0])

	for i := 0; i < count; i++ {
		var longest uint32
		for t := range tiles {
			var last uint32
			if i > 0 {
				last = frameAt(splits[t][i-1], fps) - tiles[t].Offset + 1
			}
			next := frameAt(splits[t][i], fps) - tiles[t].Offset + 1
			run := next - last

			tiles[t].Splits = append(tiles[t].Splits, Segment{
				Start: a.Length,
				End:   a.Length + run,
			})
			if run > longest {
				longest = run
			}
		}

		a.Length += longest
		if i == 0 {
			a.Start = a.Length
		}
		a.Pauses = append(a.Pauses, a.Length)
		if i < count-1 {
			a.Length += pauseFrames
		}
	}
	return a
}

// frameAt converts a checkpoint time in seconds to its nearest output
// frame index.
func frameAt(sec float64, fps uint32) uint32 {
	return uint32(sec*float64(fps) + 0.5)
}
