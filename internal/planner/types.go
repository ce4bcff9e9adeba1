package planner

// Segment is a half-open frame range [Start, End) on the global output
// timeline during which one tile plays decoded frames. Outside its
// segments a tile shows a frozen or blank picture.
type Segment struct {
	Start uint32
	End   uint32
}

// Tile holds the complete set of per-source render decisions: where the
// source sits on the canvas, how it is decoded, and when each of its
// checkpoint segments plays on the shared timeline. It is produced by
// Prepare and consumed by the ffmpeg package to construct decode
// arguments and by the compositor to drive frame selection.
type Tile struct {
	// Input is the index of the source this tile shows.
	Input int

	// Decode window, in source frames at the output rate. Offset is
	// the number of frames to skip before the first checkpoint run;
	// Length is how many frames remain after that point.
	Offset uint32
	Length uint32

	// Canvas placement, aspect-fit and centered inside the grid box.
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32

	// Splits has one segment per checkpoint, in checkpoint order.
	// Segments of one tile never overlap and their ends never
	// decrease.
	Splits []Segment
}

// Plan is the frame-indexed render schedule for the whole composition.
type Plan struct {
	// Start is the first emitted frame index: the end of the first
	// synchronized segment. Frames before Start warm the pipelines up
	// and are not written to the sink.
	Start uint32

	// Length is the total number of timeline frames, including the
	// warm-up run and inserted pauses.
	Length uint32

	// Tiles holds one entry per source, in input order.
	Tiles []Tile

	// Pauses records, per checkpoint, the timeline frame at which all
	// tiles have reached it. Every tile's comparison timer freezes
	// against these marks.
	Pauses []uint32
}
