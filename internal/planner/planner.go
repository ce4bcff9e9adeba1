package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/probe"
	"github.com/backmassage/splitscreen/internal/splitfile"
)

var (
	// ErrNoSplits is returned when the sources carry no checkpoints.
	ErrNoSplits = errors.New("no split times given")

	// ErrUnequalSplits is returned when sources disagree on checkpoint
	// count, which makes alignment impossible.
	ErrUnequalSplits = errors.New("inputs have unequal split counts")
)

// Prober supplies per-source stream facts. Satisfied by *probe.Prober;
// kept as an interface so planning is testable without a real ffprobe.
type Prober interface {
	Probe(ctx context.Context, path string) (probe.Result, error)
}

// Prepare turns sources into a complete render Plan. This is the
// central decision step the pipeline runs once before any decoding.
//
// Flow:
//  1. Validate checkpoint counts (identical across sources, at least one)
//  2. Probe each source, fit it into its grid box, derive its decode window
//  3. Align checkpoint runs onto the shared output timeline
//
// Configuration problems fail before step 2 so that no subprocess is
// ever spawned for an invalid run.
func Prepare(ctx context.Context, cfg *config.Config, sources []splitfile.Source, pr Prober) (*Plan, error) {
	if len(sources) == 0 {
		return nil, errors.New("no input sources")
	}

	// --- 1. Checkpoint counts ---
	count := len(sources[0].Splits)
	for _, src := range sources[1:] {
		if len(src.Splits) != count {
			return nil, fmt.Errorf("%w: %q has %d, %q has %d",
				ErrUnequalSplits, sources[0].Path, count, src.Path, len(src.Splits))
		}
	}
	if count == 0 {
		return nil, ErrNoSplits
	}

	// --- 2. Probe and place tiles ---
	grid := BuildGrid(len(sources), cfg.Width, cfg.Height)

	plan := &Plan{Tiles: make([]Tile, 0, len(sources))}
	splits := make([][]float64, 0, len(sources))

	for i, src := range sources {
		res, err := pr.Probe(ctx, src.Path)
		if err != nil {
			return nil, err
		}

		w, h := FitDimensions(res.Width, res.Height, grid.BoxW, grid.BoxH)
		sx, sy := grid.Slot(i)

		// Decoding seeks to the whole second below the first
		// checkpoint, so the offset truncates before scaling to
		// frames.
		offset := uint32(src.Splits[0]) * cfg.FPS
		total := uint32(res.Duration * float64(cfg.FPS))
		var length uint32
		if total > offset {
			length = total - offset
		}

		plan.Tiles = append(plan.Tiles, Tile{
			Input:  i,
			Offset: offset,
			Length: length,
			X:      sx + grid.BoxW/2 - w/2,
			Y:      sy + grid.BoxH/2 - h/2,
			Width:  w,
			Height: h,
		})
		splits = append(splits, src.Splits)
	}

	// --- 3. Timeline alignment ---
	pauseFrames := uint32(cfg.Pause*float64(cfg.FPS) + 0.5)
	al := AlignSplits(plan.Tiles, splits, cfg.FPS, pauseFrames)
	plan.Start = al.Start
	plan.Length = al.Length
	plan.Pauses = al.Pauses

	return plan, nil
}
