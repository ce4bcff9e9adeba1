package config

// This file registers the CLI flags and the pflag.Value adapters for
// the enum fields. Grouped toggles (the two comparison modes, the two
// input modes) are folded into their enum fields after parsing so the
// defaults from DefaultConfig hold unless a flag is set.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags carries toggle state that needs folding after parse.
type Flags struct {
	CmpLoss    bool
	CmpSave    bool
	InputFiles bool
}

// AttachFlags registers every CLI flag on cmd and wires the mutual
// exclusions. cfg fields fill in as cmd parses; call Fold on the
// returned Flags afterwards.
func AttachFlags(cmd *cobra.Command, cfg *Config) *Flags {
	f := &Flags{}
	fl := cmd.Flags()

	fl.StringVarP(&cfg.Resolution, "res", "s", "", "output resolution as WIDTHxHEIGHT")
	fl.Uint32VarP(&cfg.FPS, "fps", "r", 0, "output frame rate")
	fl.Float64VarP(&cfg.Pause, "pause", "p", 0, "seconds to hold each checkpoint on screen")

	fl.BoolVar(&f.CmpLoss, "cmp-loss", false, "overlay time lost against the leading input")
	fl.BoolVar(&f.CmpSave, "cmp-save", false, "overlay time saved against the slowest input")

	fl.StringVarP(&cfg.Output, "out", "o", "", "output file ('-' for stdout; omit to play back)")
	fl.VarP(&encoderValue{&cfg.Encoder}, "encoder", "e", "encoder backend: x264 | vaapi | nvenc")
	fl.BoolVar(&cfg.Raw, "raw", false, "emit raw RGB frames instead of encoding")
	fl.BoolVar(&cfg.Report, "report", false, "show render progress")

	fl.BoolVarP(&f.InputFiles, "input-files", "F", false, "inputs are video and split file pairs (default)")
	fl.BoolVarP(&cfg.InputArgs, "input-args", "A", false, "inputs are argument groups separated by '--'")

	fl.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	fl.Var(&colorValue{&cfg.ColorMode}, "color", "colored logs: auto | always | never")
	fl.StringVarP(&cfg.LogFile, "log", "l", "", "append logs to file")
	fl.BoolVarP(&cfg.CheckOnly, "check", "c", false, "run system diagnostics and exit")

	cmd.MarkFlagsMutuallyExclusive("cmp-loss", "cmp-save")
	cmd.MarkFlagsMutuallyExclusive("input-files", "input-args")
	return f
}

// Fold collapses the grouped toggles into their enum fields.
func (f *Flags) Fold(cfg *Config) {
	switch {
	case f.CmpLoss:
		cfg.Compare = CompareLoss
	case f.CmpSave:
		cfg.Compare = CompareSave
	}
}

// pflag.Value adapters so the enum types work with flag binding.

var (
	_ pflag.Value = (*encoderValue)(nil)
	_ pflag.Value = (*colorValue)(nil)
)

type encoderValue struct{ p *EncoderKind }

func (e *encoderValue) String() string { return string(*e.p) }
func (e *encoderValue) Type() string   { return "encoder" }
func (e *encoderValue) Set(s string) error {
	switch kind := EncoderKind(strings.ToLower(s)); kind {
	case EncoderX264, EncoderVAAPI, EncoderNVENC, EncoderAMF, EncoderQSV:
		*e.p = kind
		return nil
	default:
		return fmt.Errorf("invalid encoder %q (use x264, vaapi, nvenc, amf, or qsv)", s)
	}
}

type colorValue struct{ p *ColorMode }

func (c *colorValue) String() string { return string(*c.p) }
func (c *colorValue) Type() string   { return "mode" }
func (c *colorValue) Set(s string) error {
	switch mode := ColorMode(strings.ToLower(s)); mode {
	case ColorAuto, ColorAlways, ColorNever:
		*c.p = mode
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (use auto, always, or never)", s)
	}
}
