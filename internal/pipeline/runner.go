package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/backmassage/splitscreen/internal/check"
	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/display"
	"github.com/backmassage/splitscreen/internal/ffmpeg"
	"github.com/backmassage/splitscreen/internal/logging"
	"github.com/backmassage/splitscreen/internal/overlay"
	"github.com/backmassage/splitscreen/internal/planner"
	"github.com/backmassage/splitscreen/internal/probe"
	"github.com/backmassage/splitscreen/internal/render"
	"github.com/backmassage/splitscreen/internal/splitfile"
	"github.com/backmassage/splitscreen/internal/timecode"
)

// Run renders one split-screen composition end to end: probe and plan,
// spawn a decoder per tile, pick the output target, and drive the
// compositor over the frame streams until the timeline is exhausted.
func Run(ctx context.Context, cfg *config.Config, sources []splitfile.Source, log *logging.Logger) error {
	// --- Resolve tools ---
	ffprobeBin, err := check.FindTool("ffprobe")
	if err != nil {
		return err
	}
	ffmpegBin, err := check.FindTool("ffmpeg")
	if err != nil {
		return err
	}
	var ffplayBin string
	if cfg.Playing() {
		if ffplayBin, err = check.FindTool("ffplay"); err != nil {
			return err
		}
	}
	log.Debug("ffprobe: %s", ffprobeBin)
	log.Debug("ffmpeg: %s", ffmpegBin)

	// --- Plan ---
	plan, err := planner.Prepare(ctx, cfg, sources, probe.New(ffprobeBin))
	if err != nil {
		return err
	}

	log.Info("Composing %d sources on a %dx%d canvas at %d fps",
		len(plan.Tiles), cfg.Width, cfg.Height, cfg.FPS)
	log.Info("Timeline: %s frames (%s), %d synchronized splits",
		humanize.Comma(int64(plan.Length)),
		timecode.Format(float64(plan.Length)/float64(cfg.FPS)),
		len(plan.Pauses))
	if cfg.Verbose {
		fmt.Fprintln(os.Stderr, display.PlanTable(cfg, plan, sources))
	}

	// --- Spawn decoders ---
	// The derived context unblocks any reader goroutine still waiting to
	// hand over a frame once the render is done with its stream.
	dctx, stop := context.WithCancel(ctx)
	decoders := make([]*ffmpeg.Decoder, 0, len(plan.Tiles))
	defer func() {
		stop()
		for _, d := range decoders {
			d.Kill()
		}
	}()

	streams := make([]<-chan []byte, 0, len(plan.Tiles))
	for i := range plan.Tiles {
		tile := &plan.Tiles[i]
		d, err := ffmpeg.StartDecoder(dctx, ffmpegBin, cfg, tile, sources[tile.Input].Path)
		if err != nil {
			return err
		}
		decoders = append(decoders, d)
		streams = append(streams, d.Frames())
	}

	// --- Output target ---
	var (
		ws   *render.WriterSink
		proc *ffmpeg.Proc
		out  *os.File
	)
	switch {
	case cfg.Playing():
		log.Render("Playing back on screen")
		if proc, err = ffmpeg.StartPlayer(ctx, ffplayBin, cfg); err != nil {
			return err
		}
		ws = render.NewWriterSink(proc.Stdin)
	case cfg.Raw && cfg.ToStdout():
		log.Render("Streaming raw frames to stdout")
		ws = render.NewWriterSink(os.Stdout)
	case cfg.Raw:
		log.Render("Writing raw frames to %s", cfg.Output)
		if out, err = os.Create(cfg.Output); err != nil {
			return fmt.Errorf("create %q: %w", cfg.Output, err)
		}
		ws = render.NewWriterSink(out)
	default:
		if cfg.ToStdout() {
			log.Render("Encoding with %s to stdout", cfg.Encoder)
		} else {
			log.Render("Encoding with %s to %s", cfg.Encoder, cfg.Output)
		}
		if proc, err = ffmpeg.StartEncoder(ctx, ffmpegBin, cfg); err != nil {
			return err
		}
		ws = render.NewWriterSink(proc.Stdin)
	}

	// --- Render ---
	var sink render.Sink = ws
	var bar *progressSink
	if cfg.Report {
		bar = newProgressSink(ws, plan.Length)
		sink = bar
	}

	ov, err := overlay.New()
	if err != nil {
		return err
	}

	start := time.Now()
	renderErr := render.Render(ctx, cfg, plan, streams, ov, log, sink)
	if bar != nil {
		bar.Close()
	}

	// --- Settle the output ---
	if proc != nil {
		if err := proc.Finish(renderErr); err != nil {
			return err
		}
	} else if renderErr != nil {
		if out != nil {
			out.Close()
		}
		return renderErr
	} else if out != nil {
		if err := out.Close(); err != nil {
			return fmt.Errorf("close %q: %w", cfg.Output, err)
		}
	}

	logSummary(log, RenderStats{
		Frames:  ws.Frames,
		Bytes:   ws.Bytes,
		Elapsed: time.Since(start),
	})
	return nil
}

// logSummary reports what actually reached the output, which can be
// less than the plan when the receiver went away mid-run.
func logSummary(log *logging.Logger, stats RenderStats) {
	log.Success("Delivered %s frames (%s) in %s at %.1f fps",
		humanize.Comma(int64(stats.Frames)),
		humanize.IBytes(stats.Bytes),
		stats.Elapsed.Round(time.Millisecond),
		stats.EffectiveFPS())
}
