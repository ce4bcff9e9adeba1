// Package check resolves the external tools (ffprobe, ffmpeg, ffplay) and
// provides the --check diagnostics plus the pre-render dependency gate.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/backmassage/splitscreen/internal/config"
)

// ErrToolNotFound is returned when a required external tool is absent from
// every candidate location. Wrapped with the tool name.
var ErrToolNotFound = errors.New("tool not found")

// Logger is the minimal logging interface needed by RunCheck. Defined here
// rather than importing the logging package so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// FindTool locates an external tool, preferring a copy shipped next to our
// own executable, then one in the working directory, then the PATH search.
// Candidates must carry the execute bit; LookPath enforces that for the
// explicit paths as well as for the PATH scan.
func FindTool(name string) (string, error) {
	if exe, err := os.Executable(); err == nil {
		if path, err := exec.LookPath(filepath.Join(filepath.Dir(exe), name)); err == nil {
			return path, nil
		}
	}
	if path, err := exec.LookPath("./" + name); err == nil {
		return path, nil
	}
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
}

// CheckDeps verifies that exactly the tools the chosen output mode needs
// can be resolved: ffprobe and ffmpeg always, ffplay only for playback.
// Runs before any subprocess is spawned.
func CheckDeps(cfg *config.Config) error {
	if _, err := FindTool("ffprobe"); err != nil {
		return err
	}
	if _, err := FindTool("ffmpeg"); err != nil {
		return err
	}
	if cfg.Playing() {
		if _, err := FindTool("ffplay"); err != nil {
			return err
		}
	}
	return nil
}

// RunCheck runs the --check flow: resolves each tool, prints its version
// line, and reports which encoder backends this ffmpeg build offers.
// Informational except for the two tools every mode needs; those decide
// the return value.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ffprobe := reportTool(log, "ffprobe")
	ffmpeg := reportTool(log, "ffmpeg")
	reportTool(log, "ffplay")

	if ffmpeg != "" {
		reportEncoders(log, ffmpeg, cfg.Encoder)
	}
	return ffprobe != "" && ffmpeg != ""
}

// ParseEncoders extracts the encoder names from "ffmpeg -encoders" output.
// Lines are "<flags> <name> <description>"; the legend and separator at
// the top carry no name and are skipped.
func ParseEncoders(out []byte) map[string]bool {
	encoders := make(map[string]bool)
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[1] == "=" {
			continue
		}
		encoders[fields[1]] = true
	}
	return encoders
}

// --- internal helpers ---

// reportTool resolves one tool and logs its version line. Returns the
// resolved path, or "" when the tool is missing.
func reportTool(log Logger, name string) string {
	path, err := FindTool(name)
	if err != nil {
		log.Error("%s not found", name)
		return ""
	}
	if ver := toolVersion(path); ver != "" {
		log.Success("%s: %s", path, ver)
	} else {
		log.Warn("%s: no -version output", path)
	}
	return path
}

// toolVersion returns the first line of "<tool> -version" output, or ""
// when the tool refuses the flag.
func toolVersion(path string) string {
	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.Index(line, "\n"); idx > 0 {
		line = line[:idx]
	}
	return line
}

// reportEncoders lists the availability of each drivable encoder backend,
// marking the one currently selected.
func reportEncoders(log Logger, bin string, selected config.EncoderKind) {
	out, err := exec.Command(bin, "-hide_banner", "-encoders").Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	encoders := ParseEncoders(out)

	log.Info("Encoder backends:")
	backends := []struct {
		kind config.EncoderKind
		name string
	}{
		{config.EncoderX264, "libx264"},
		{config.EncoderVAAPI, "h264_vaapi"},
		{config.EncoderNVENC, "h264_nvenc"},
	}
	for _, b := range backends {
		mark := ""
		if b.kind == selected {
			mark = " (selected)"
		}
		if encoders[b.name] {
			log.Success("  %s: %s%s", b.kind, b.name, mark)
		} else {
			log.Warn("  %s: %s not available%s", b.kind, b.name, mark)
		}
	}
	log.Info("  amf, qsv: recognized but not implemented")
}
