package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/planner"
)

// --- Helpers ---

func testCfg() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Width = 1280
	cfg.Height = 720
	cfg.FPS = 30
	return &cfg
}

func checkArgs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d args %q, want %d args %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// --- Argument builders ---

func TestDecodeArgs(t *testing.T) {
	tests := []struct {
		name string
		fps  uint32
		tile planner.Tile
		path string
		want []string
	}{
		{
			name: "seek lands on a whole second",
			fps:  30,
			tile: planner.Tile{Offset: 1950, Width: 320, Height: 240},
			path: "runner-a.mp4",
			want: []string{
				"-hwaccel", "auto", "-ss", "01:05.000", "-i", "runner-a.mp4",
				"-c:v", "rawvideo", "-pix_fmt", "rgb24", "-vf", "scale=320:240",
				"-r", "30", "-f", "rawvideo", "-",
			},
		},
		{
			name: "zero offset still seeks",
			fps:  10,
			tile: planner.Tile{Offset: 0, Width: 640, Height: 360},
			path: "b.mkv",
			want: []string{
				"-hwaccel", "auto", "-ss", "00.000", "-i", "b.mkv",
				"-c:v", "rawvideo", "-pix_fmt", "rgb24", "-vf", "scale=640:360",
				"-r", "10", "-f", "rawvideo", "-",
			},
		},
		{
			name: "sub-second offset",
			fps:  10,
			tile: planner.Tile{Offset: 125, Width: 480, Height: 360},
			path: "c.mp4",
			want: []string{
				"-hwaccel", "auto", "-ss", "12.500", "-i", "c.mp4",
				"-c:v", "rawvideo", "-pix_fmt", "rgb24", "-vf", "scale=480:360",
				"-r", "10", "-f", "rawvideo", "-",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testCfg()
			cfg.FPS = tt.fps
			checkArgs(t, DecodeArgs(cfg, &tt.tile, tt.path), tt.want)
		})
	}
}

func TestEncodeArgs(t *testing.T) {
	stdinPreamble := []string{
		"-f", "rawvideo", "-pixel_format", "rgb24",
		"-video_size", "1280x720", "-framerate", "30", "-i", "-",
		"-f", "mp4",
	}

	tests := []struct {
		name    string
		encoder config.EncoderKind
		output  string
		tail    []string
	}{
		{
			name:    "x264 to file",
			encoder: config.EncoderX264,
			output:  "out.mp4",
			tail:    []string{"-c:v", "libx264", "-crf", "23", "-y", "out.mp4"},
		},
		{
			name:    "x264 to stdout",
			encoder: config.EncoderX264,
			output:  "-",
			tail:    []string{"-c:v", "libx264", "-crf", "23", "-"},
		},
		{
			name:    "vaapi uploads to the hardware device",
			encoder: config.EncoderVAAPI,
			output:  "out.mp4",
			tail: []string{
				"-vaapi_device", "/dev/dri/renderD128",
				"-vf", "format=nv12,hwupload",
				"-c:v", "h264_vaapi", "-qp", "23", "-y", "out.mp4",
			},
		},
		{
			name:    "nvenc",
			encoder: config.EncoderNVENC,
			output:  "out.mp4",
			tail:    []string{"-c:v", "h264_nvenc", "-qp", "23", "-y", "out.mp4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testCfg()
			cfg.Encoder = tt.encoder
			cfg.Output = tt.output

			got, err := EncodeArgs(cfg)
			if err != nil {
				t.Fatalf("EncodeArgs: %v", err)
			}
			checkArgs(t, got, append(append([]string{}, stdinPreamble...), tt.tail...))
		})
	}
}

func TestEncodeArgs_UnimplementedBackends(t *testing.T) {
	for _, enc := range []config.EncoderKind{config.EncoderAMF, config.EncoderQSV} {
		cfg := testCfg()
		cfg.Encoder = enc
		cfg.Output = "out.mp4"

		if _, err := EncodeArgs(cfg); !errors.Is(err, config.ErrUnsupportedEncoder) {
			t.Errorf("%s: err = %v, want ErrUnsupportedEncoder", enc, err)
		}
	}
}

func TestPlayArgs(t *testing.T) {
	cfg := testCfg()
	cfg.Width, cfg.Height, cfg.FPS = 640, 480, 10

	want := []string{
		"-f", "rawvideo", "-pixel_format", "rgb24",
		"-video_size", "640x480", "-framerate", "10",
		"-window_title", "SplitScreen Playback", "-autoexit", "-",
	}
	checkArgs(t, PlayArgs(cfg), want)
}

// --- Frame bridge ---

func TestBridge_ReframesAndDropsPartialTail(t *testing.T) {
	// Two full 4-byte frames and a 3-byte remainder that must be dropped.
	src := bytes.NewReader([]byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3,
	})
	frames := make(chan []byte, 4)
	bridge(context.Background(), src, 4, frames)

	var got [][]byte
	for f := range frames {
		got = append(got, f)
	}
	if len(got) != 2 {
		t.Fatalf("got %d frames, want 2", len(got))
	}
	for i, f := range got {
		if len(f) != 4 || f[0] != byte(i+1) {
			t.Errorf("frame %d = %v", i, f)
		}
	}
}

func TestBridge_EmptyStreamClosesImmediately(t *testing.T) {
	frames := make(chan []byte, 1)
	bridge(context.Background(), bytes.NewReader(nil), 4, frames)

	if _, ok := <-frames; ok {
		t.Fatal("channel should be closed with no frames")
	}
}

func TestBridge_CancelUnblocksFullChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan []byte) // no receiver, so the first send blocks

	done := make(chan struct{})
	go func() {
		bridge(ctx, bytes.NewReader(make([]byte, 8)), 4, frames)
		close(done)
	}()

	cancel()
	<-done

	if _, ok := <-frames; ok {
		t.Fatal("channel should close after cancellation")
	}
}
