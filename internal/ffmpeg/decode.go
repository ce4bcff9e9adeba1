package ffmpeg

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/planner"
)

// Decoder is one running ffmpeg decode subprocess bridged to a bounded
// frame channel. The channel holds about one second of frames; the reader
// goroutine blocks once it is full, which stalls ffmpeg on its stdout
// pipe and keeps memory flat no matter how far a source runs ahead.
type Decoder struct {
	cmd    *exec.Cmd
	frames chan []byte
}

// StartDecoder launches the decode subprocess for one tile and starts the
// goroutine that reframes its stdout byte stream into whole frames.
//
// The subprocess reads nothing (stdin is the null device) and its stderr
// is discarded; the frame stream on stdout is the entire contract. The
// channel is closed when the stream ends, whether by a clean EOF, a
// trailing partial frame, or the process dying. Nothing here kills the
// subprocess: the caller owns its lifetime and reaps it with Kill.
func StartDecoder(ctx context.Context, bin string, cfg *config.Config, tile *planner.Tile, path string) (*Decoder, error) {
	cmd := exec.CommandContext(ctx, bin, DecodeArgs(cfg, tile, path)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("decoder stdout %q: %w", path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start decoder %q: %w", path, err)
	}

	d := &Decoder{
		cmd:    cmd,
		frames: make(chan []byte, cfg.FPS),
	}
	go bridge(ctx, stdout, int(tile.Width)*int(tile.Height)*3, d.frames)
	return d, nil
}

// Frames returns the receive side of the frame channel. Each value is one
// packed rgb24 frame at the tile's fitted size.
func (d *Decoder) Frames() <-chan []byte {
	return d.frames
}

// Kill terminates the subprocess and reaps it. Safe to call after the
// process has already exited on its own.
func (d *Decoder) Kill() {
	_ = d.cmd.Process.Kill()
	_ = d.cmd.Wait()
}

// bridge reads whole frames of size bytes from r and sends them until the
// stream ends. A short read means the source ran out mid-frame; the
// partial frame is dropped and the channel closes, which the compositor
// treats as normal early completion. The send also watches ctx so an
// abandoned render does not strand the goroutine on a full channel.
func bridge(ctx context.Context, r io.Reader, size int, frames chan<- []byte) {
	defer close(frames)
	for {
		buf := make([]byte, size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return
		}
		select {
		case frames <- buf:
		case <-ctx.Done():
			return
		}
	}
}
