package render

import (
	"context"
	"image"
	"image/color"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/overlay"
	"github.com/backmassage/splitscreen/internal/planner"
	"github.com/backmassage/splitscreen/internal/timecode"
)

// Logger is the subset of the logging interface the compositor needs.
// Declared here so the package stays testable with a mock.
type Logger interface {
	Outlier(format string, args ...interface{})
}

// Render composes the planned timeline frame by frame and feeds it to
// the sink. streams must hold one frame channel per plan tile, in tile
// order; each channel yields raw tile-sized RGB frames in decode order
// and closes at stream end. Render never starts or stops the decode
// subprocesses behind the channels; the caller owns their lifetime and
// reaps them once Render returns.
//
// Per frame, every tile is serviced before the sink runs, so the sink
// observes one consistent canvas per frame index. A tile inside its
// active segment consumes one frame; outside it the tile keeps its
// last picture, desaturated once at the segment boundary. A stream
// that dries up before its segment ends goes black for the remainder.
func Render(ctx context.Context, cfg *config.Config, plan *planner.Plan, streams []<-chan []byte, ov *overlay.Renderer, log Logger, sink Sink) error {
	canvas := NewCanvas(cfg.Width, cfg.Height)
	cmp := compareState{mode: cfg.Compare}
	underrun := make([]bool, len(plan.Tiles))

	for idx := uint32(0); idx < plan.Length; idx++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for t := range plan.Tiles {
			tile := &plan.Tiles[t]
			seg, segIdx := selectSegment(tile.Splits, idx)

			if idx < seg.End {
				var frame []byte
				var ok bool
				select {
				case frame, ok = <-streams[t]:
				case <-ctx.Done():
					return ctx.Err()
				}
				if ok {
					canvas.Blit(frame, tile.X, tile.Y, tile.Width, tile.Height)
				} else {
					if !underrun[t] {
						underrun[t] = true
						log.Outlier("input %d: decoder ended %d frames early", tile.Input, seg.End-idx)
					}
					canvas.FillRect(tile.X, tile.Y, tile.Width, tile.Height, color.RGBA{A: 255})
				}
			} else if idx == seg.End {
				canvas.Desaturate(tile.X, tile.Y, tile.Width, tile.Height)
			}

			frames, ahead, show := cmp.observe(idx, seg, plan.Pauses[segIdx])
			if show {
				text, col := timerText(frames, ahead, cfg.FPS)
				rect := image.Rect(int(tile.X), int(tile.Y),
					int(tile.X+tile.Width), int(tile.Y+tile.Height))
				ov.Stamp(canvas, rect, text, col)
			}
		}

		var payload []byte
		if idx >= plan.Start {
			payload = canvas.Pix
		}
		ok, err := sink.Accept(idx, payload)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return nil
}

// selectSegment picks the tile segment governing a frame: the last one
// whose start has been reached. During pauses and freezes that is the
// most recently ended segment.
func selectSegment(splits []planner.Segment, idx uint32) (planner.Segment, int) {
	sel, selIdx := splits[0], 0
	for i, s := range splits {
		if s.Start <= idx {
			sel, selIdx = s, i
		}
	}
	return sel, selIdx
}

// compareState tracks the leader anchor for the loss timer. The first
// tile to finish a segment stamps the anchor; every tile's loss is
// then measured against it until the next segment resets it.
type compareState struct {
	mode        config.CompareMode
	baseline    uint32
	baselineSet bool
}

// observe feeds one tile's frame position through the comparison rules
// and reports the timer to show, if any. Tiles must be observed in
// tile order within each frame so the anchor a finisher stamps is
// visible to the tiles after it.
func (cs *compareState) observe(idx uint32, seg planner.Segment, pauseMark uint32) (frames uint32, ahead, show bool) {
	if idx == seg.Start {
		cs.baselineSet = false
	}

	// The opening run up to the first checkpoint carries no timers.
	if idx >= seg.End && seg.Start != 0 {
		switch cs.mode {
		case config.CompareLoss:
			if !cs.baselineSet {
				cs.baselineSet = true
				cs.baseline = idx
			}
		case config.CompareSave:
			show = true
			ahead = true
			frames = min(idx, pauseMark) - seg.End
		}
	}

	if cs.mode == config.CompareLoss && cs.baselineSet {
		show = true
		ahead = false
		frames = min(idx, seg.End) - cs.baseline
	}
	return frames, ahead, show
}

// timerText renders a frame-count difference as overlay text and
// color. A zero difference is neutral: no sign, white.
func timerText(frames uint32, ahead bool, fps uint32) (string, color.RGBA) {
	t := timecode.Format(float64(frames) / float64(fps))
	switch {
	case frames == 0:
		return t, overlay.Neutral
	case ahead:
		return "-" + t, overlay.Ahead
	default:
		return "+" + t, overlay.Behind
	}
}
