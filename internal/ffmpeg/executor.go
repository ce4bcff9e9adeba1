package ffmpeg

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/backmassage/splitscreen/internal/config"
)

// Proc is a started output subprocess, encoder or player, fed rendered
// frames on Stdin. It stays alive for the whole render and is settled
// afterwards by Finish.
type Proc struct {
	tool  string
	cmd   *exec.Cmd
	Stdin io.WriteCloser
}

// StartEncoder launches ffmpeg reading raw frames on stdin and writing
// the encoded mp4 to the configured output.
func StartEncoder(ctx context.Context, bin string, cfg *config.Config) (*Proc, error) {
	args, err := EncodeArgs(cfg)
	if err != nil {
		return nil, err
	}
	return startProc(ctx, "ffmpeg", bin, args, cfg)
}

// StartPlayer launches ffplay reading raw frames on stdin.
func StartPlayer(ctx context.Context, bin string, cfg *config.Config) (*Proc, error) {
	return startProc(ctx, "ffplay", bin, PlayArgs(cfg), cfg)
}

func startProc(ctx context.Context, tool, bin string, args []string, cfg *config.Config) (*Proc, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%s stdin: %w", tool, err)
	}

	// Stdout is inherited so encode-to-stdout reaches our own stdout.
	// Stderr is inherited too unless the progress bar owns the terminal,
	// in which case the tool's chatter is discarded.
	cmd.Stdout = os.Stdout
	if !cfg.Report {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", tool, err)
	}
	return &Proc{tool: tool, cmd: cmd, Stdin: stdin}, nil
}

// Finish settles the subprocess once rendering is over. After a clean
// render it closes stdin and waits for the tool to drain and exit,
// reporting ErrAbnormalExit on a non-zero status. After a failed render
// the tool's output is worthless, so the process is killed and the render
// error passed through unchanged.
func (p *Proc) Finish(renderErr error) error {
	if renderErr != nil {
		_ = p.Stdin.Close()
		_ = p.cmd.Process.Kill()
		_ = p.cmd.Wait()
		return renderErr
	}

	_ = p.Stdin.Close()
	if err := p.cmd.Wait(); err != nil {
		return fmt.Errorf("%s %w: %v", p.tool, ErrAbnormalExit, err)
	}
	return nil
}
