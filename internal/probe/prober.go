package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Result holds the per-source facts render planning needs: native
// geometry and total duration.
type Result struct {
	Width    uint32
	Height   uint32
	Duration float64 // seconds
}

// Prober runs ffprobe against input files. The binary location is
// injected by the caller so that planning stays testable without real
// tools on PATH.
type Prober struct {
	bin string
}

// New returns a Prober that invokes the given ffprobe binary.
func New(bin string) *Prober {
	return &Prober{bin: bin}
}

// Probe fetches width, height, and duration of the first video stream.
// Any probe failure is fatal to planning, so errors carry the path.
func (p *Prober) Probe(ctx context.Context, path string) (Result, error) {
	cmd := exec.CommandContext(ctx, p.bin,
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,duration",
		"-of", "default=nw=1:nk=1",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	res, err := ParseOutput(out)
	if err != nil {
		return Result{}, fmt.Errorf("invalid video file %q: %w", path, err)
	}
	return res, nil
}

// ParseOutput converts the three-line ffprobe output (width, height,
// duration) into a Result. Exported for testing without a real ffprobe
// binary.
func ParseOutput(data []byte) (Result, error) {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 3 {
		return Result{}, fmt.Errorf("want 3 probe fields, got %d", len(lines))
	}

	width, err := parseDim("width", lines[0])
	if err != nil {
		return Result{}, err
	}
	height, err := parseDim("height", lines[1])
	if err != nil {
		return Result{}, err
	}
	duration, err := strconv.ParseFloat(lines[2], 64)
	if err != nil {
		return Result{}, fmt.Errorf("parse duration %q: %w", lines[2], err)
	}
	if duration <= 0 {
		return Result{}, fmt.Errorf("non-positive duration %q", lines[2])
	}

	return Result{Width: width, Height: height, Duration: duration}, nil
}

// parseDim parses a positive pixel dimension.
func parseDim(name, s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("non-positive %s %q", name, s)
	}
	return uint32(n), nil
}
