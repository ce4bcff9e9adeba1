// Package config holds runtime configuration: defaults, CLI flag
// registration, input-list parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedEncoder is returned for encoder backends the argument
// parser knows but the command builder cannot drive yet.
var ErrUnsupportedEncoder = errors.New("unsupported encoder")

// --- Enum types for validated string fields ---

// CompareMode selects the overlay timer semantics.
type CompareMode string

const (
	CompareOff  CompareMode = "off"  // No comparison overlay (default).
	CompareLoss CompareMode = "loss" // Time lost against the leading input.
	CompareSave CompareMode = "save" // Time saved against the slowest input.
)

// EncoderKind selects the encoding backend.
type EncoderKind string

const (
	EncoderX264  EncoderKind = "x264"  // Software encoding via libx264 (default).
	EncoderVAAPI EncoderKind = "vaapi" // Hardware encoding via VAAPI.
	EncoderNVENC EncoderKind = "nvenc" // Hardware encoding via NVENC.
	EncoderAMF   EncoderKind = "amf"   // Recognized but not implemented.
	EncoderQSV   EncoderKind = "qsv"   // Recognized but not implemented.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig]
// and then mutated by the CLI flags before being passed (by pointer) to
// packages that need it.
type Config struct {
	// Output geometry and timing. Width and Height are derived from
	// Resolution by Validate.
	Resolution string // Raw WIDTHxHEIGHT flag value.
	Width      uint32
	Height     uint32
	FPS        uint32
	Pause      float64 // Seconds each checkpoint stays frozen on screen.

	// Comparison overlay.
	Compare CompareMode

	// Output routing.
	Output  string      // "" plays back, "-" writes stdout, else a file path.
	Raw     bool        // Emit raw RGB frames instead of encoding.
	Encoder EncoderKind // Default: "x264".
	Report  bool        // Render progress on stderr.

	// Input interpretation.
	InputArgs bool // Args mode: groups of video path + inline split directives.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base before CLI flags override fields.
func DefaultConfig() Config {
	return Config{
		Compare:   CompareOff,
		Encoder:   EncoderX264,
		ColorMode: ColorAuto,
	}
}

// Playing reports whether rendered frames go to a playback window.
func (c *Config) Playing() bool { return c.Output == "" }

// ToStdout reports whether the output stream goes to standard output.
func (c *Config) ToStdout() bool { return c.Output == "-" }

// Encoding reports whether an encoder subprocess sits between the
// renderer and the output. Playback and raw output bypass it.
func (c *Config) Encoding() bool { return c.Output != "" && !c.Raw }

// Validate checks flag values and derives Width and Height from the
// resolution string. In CheckOnly mode only the display settings
// matter, so render validation is skipped.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (use auto, always, or never)", c.ColorMode)
	}

	if c.CheckOnly {
		return nil
	}

	w, h, err := parseResolution(c.Resolution)
	if err != nil {
		return err
	}
	c.Width, c.Height = w, h

	if c.FPS == 0 {
		return errors.New("frame rate must be positive (use --fps)")
	}
	if c.Pause < 0 {
		return fmt.Errorf("pause must not be negative (got %v)", c.Pause)
	}

	if c.Encoding() {
		switch c.Encoder {
		case EncoderX264, EncoderVAAPI, EncoderNVENC:
		default:
			return fmt.Errorf("%w %q", ErrUnsupportedEncoder, c.Encoder)
		}
	}
	return nil
}

// parseResolution splits a WIDTHxHEIGHT value into positive pixel
// dimensions.
func parseResolution(s string) (uint32, uint32, error) {
	if s == "" {
		return 0, 0, errors.New("resolution required (use --res WIDTHxHEIGHT)")
	}
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) == 2 {
		w, errW := strconv.ParseUint(parts[0], 10, 32)
		h, errH := strconv.ParseUint(parts[1], 10, 32)
		if errW == nil && errH == nil && w > 0 && h > 0 {
			return uint32(w), uint32(h), nil
		}
	}
	return 0, 0, fmt.Errorf("invalid resolution %q (use WIDTHxHEIGHT, e.g. 1280x720)", s)
}
