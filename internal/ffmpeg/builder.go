package ffmpeg

import (
	"fmt"
	"strconv"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/planner"
	"github.com/backmassage/splitscreen/internal/timecode"
)

// DecodeArgs constructs the ffmpeg argument slice that decodes one source
// video into the raw rgb24 frame stream for a tile: seek to the tile's
// offset, scale to the fitted tile size, resample to the output rate, and
// write packed frames to stdout.
//
// The seek goes before the input so ffmpeg jumps by keyframe instead of
// decoding up to the offset. The offset is an exact frame count, so the
// timestamp it formats back into is always on a whole output frame.
func DecodeArgs(cfg *config.Config, tile *planner.Tile, path string) []string {
	args := make([]string, 0, 20)

	// --- Input with seek ---
	args = append(args,
		"-hwaccel", "auto",
		"-ss", timecode.Format(float64(tile.Offset)/float64(cfg.FPS)),
		"-i", path,
	)

	// --- Raw frames out ---
	args = append(args,
		"-c:v", "rawvideo",
		"-pix_fmt", "rgb24",
		"-vf", fmt.Sprintf("scale=%d:%d", tile.Width, tile.Height),
		"-r", strconv.FormatUint(uint64(cfg.FPS), 10),
		"-f", "rawvideo",
		"-",
	)

	return args
}

// EncodeArgs constructs the ffmpeg argument slice that reads raw rgb24
// frames on stdin and writes the encoded mp4 to cfg.Output, or to stdout
// when the output is "-". Encoder backends the builder cannot drive yet
// return ErrUnsupportedEncoder; Validate rejects them first, so hitting
// the error here means a caller skipped validation.
func EncodeArgs(cfg *config.Config) ([]string, error) {
	args := make([]string, 0, 24)

	// --- Raw frame input on stdin ---
	args = append(args,
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"-framerate", strconv.FormatUint(uint64(cfg.FPS), 10),
		"-i", "-",
	)

	// --- Container ---
	args = append(args, "-f", "mp4")

	// --- Encoder backend ---
	switch cfg.Encoder {
	case config.EncoderX264:
		args = append(args, "-c:v", "libx264", "-crf", "23")
	case config.EncoderVAAPI:
		args = append(args,
			"-vaapi_device", "/dev/dri/renderD128",
			"-vf", "format=nv12,hwupload",
			"-c:v", "h264_vaapi",
			"-qp", "23",
		)
	case config.EncoderNVENC:
		args = append(args, "-c:v", "h264_nvenc", "-qp", "23")
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnsupportedEncoder, cfg.Encoder)
	}

	// --- Output target ---
	if cfg.ToStdout() {
		args = append(args, "-")
	} else {
		args = append(args, "-y", cfg.Output)
	}

	return args, nil
}

// PlayArgs constructs the ffplay argument slice for direct playback of the
// raw rgb24 frame stream on stdin.
func PlayArgs(cfg *config.Config) []string {
	args := make([]string, 0, 12)

	args = append(args,
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"-framerate", strconv.FormatUint(uint64(cfg.FPS), 10),
		"-window_title", "SplitScreen Playback",
		"-autoexit",
		"-",
	)

	return args
}
