package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/splitscreen/internal/config"
)

// --- Helpers ---

func writeExec(t *testing.T, path, stdout string) {
	t.Helper()
	script := "#!/bin/sh\n"
	if stdout != "" {
		script += "echo \"" + stdout + "\"\n"
	}
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}

// chdir changes into dir for the duration of the test and restores the
// previous working directory on cleanup. It mirrors t.Chdir, which is
// unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	wd := dir
	if !filepath.IsAbs(wd) {
		if wd, err = os.Getwd(); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PWD", wd)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("chdir: cannot restore working directory: " + err.Error())
		}
	})
}

type mockLog struct {
	succ, warn, errs []string
}

func (m *mockLog) Info(string, ...interface{}) {}
func (m *mockLog) Success(f string, a ...interface{}) {
	m.succ = append(m.succ, fmt.Sprintf(f, a...))
}
func (m *mockLog) Warn(f string, a ...interface{}) {
	m.warn = append(m.warn, fmt.Sprintf(f, a...))
}
func (m *mockLog) Error(f string, a ...interface{}) {
	m.errs = append(m.errs, fmt.Sprintf(f, a...))
}

// --- Tool resolution ---

func TestFindTool_PrefersWorkingDirOverPath(t *testing.T) {
	pathDir := t.TempDir()
	writeExec(t, filepath.Join(pathDir, "fakeprobe"), "")

	workDir := t.TempDir()
	writeExec(t, filepath.Join(workDir, "fakeprobe"), "")

	t.Setenv("PATH", pathDir)
	chdir(t, workDir)

	got, err := FindTool("fakeprobe")
	if err != nil {
		t.Fatal(err)
	}
	if got != "./fakeprobe" {
		t.Errorf("FindTool = %q, want ./fakeprobe", got)
	}
}

func TestFindTool_FallsBackToPath(t *testing.T) {
	pathDir := t.TempDir()
	writeExec(t, filepath.Join(pathDir, "fakeprobe"), "")

	t.Setenv("PATH", pathDir)
	chdir(t, t.TempDir())

	got, err := FindTool("fakeprobe")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(pathDir, "fakeprobe") {
		t.Errorf("FindTool = %q, want the PATH copy", got)
	}
}

func TestFindTool_SkipsNonExecutable(t *testing.T) {
	pathDir := t.TempDir()
	writeExec(t, filepath.Join(pathDir, "fakeprobe"), "")

	workDir := t.TempDir()
	// Present in the working directory but without the execute bit.
	if err := os.WriteFile(filepath.Join(workDir, "fakeprobe"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", pathDir)
	chdir(t, workDir)

	got, err := FindTool("fakeprobe")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(pathDir, "fakeprobe") {
		t.Errorf("FindTool = %q, want the executable PATH copy", got)
	}
}

func TestFindTool_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	chdir(t, t.TempDir())

	_, err := FindTool("no-such-tool")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("err = %v, want ErrToolNotFound", err)
	}
	if !strings.Contains(err.Error(), "no-such-tool") {
		t.Errorf("err = %v, want the tool name in the message", err)
	}
}

// --- Dependency gate ---

func TestCheckDeps_PlaybackNeedsFfplay(t *testing.T) {
	dir := t.TempDir()
	writeExec(t, filepath.Join(dir, "ffprobe"), "")
	writeExec(t, filepath.Join(dir, "ffmpeg"), "")

	t.Setenv("PATH", dir)
	chdir(t, t.TempDir())

	cfg := config.DefaultConfig()
	cfg.Output = "out.mp4"
	if err := CheckDeps(&cfg); err != nil {
		t.Fatalf("encode deps: %v", err)
	}

	cfg.Output = ""
	err := CheckDeps(&cfg)
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("playback err = %v, want ErrToolNotFound", err)
	}
	if !strings.Contains(err.Error(), "ffplay") {
		t.Errorf("err = %v, want mention of ffplay", err)
	}

	writeExec(t, filepath.Join(dir, "ffplay"), "")
	if err := CheckDeps(&cfg); err != nil {
		t.Fatalf("playback deps after adding ffplay: %v", err)
	}
}

// --- Encoder listing ---

func TestParseEncoders(t *testing.T) {
	out := []byte(`Encoders:
 V..... = Video
 A..... = Audio
 ------
 V....D libx264              libx264 H.264 / AVC / MPEG-4 AVC (codec h264)
 V....D libx264rgb           libx264 H.264 / AVC / MPEG-4 AVC (codec h264)
 V..... h264_nvenc           NVIDIA NVENC H.264 encoder (codec h264)
 A....D aac                  AAC (Advanced Audio Coding)
`)
	encoders := ParseEncoders(out)

	for _, name := range []string{"libx264", "libx264rgb", "h264_nvenc", "aac"} {
		if !encoders[name] {
			t.Errorf("%s missing from parsed set", name)
		}
	}
	if encoders["h264_vaapi"] {
		t.Error("h264_vaapi reported but not in the listing")
	}
	if encoders["="] || encoders["Video"] {
		t.Error("legend lines leaked into the parsed set")
	}
}

// --- Diagnostics flow ---

func TestRunCheck_ReportsToolsAndEncoders(t *testing.T) {
	dir := t.TempDir()
	writeExec(t, filepath.Join(dir, "ffprobe"), "ffprobe version 7.0-fake")
	writeExec(t, filepath.Join(dir, "ffmpeg"), "ffmpeg version 7.0-fake")

	t.Setenv("PATH", dir)
	chdir(t, t.TempDir())

	cfg := config.DefaultConfig()
	log := &mockLog{}
	if !RunCheck(&cfg, log) {
		t.Fatal("RunCheck = false with ffprobe and ffmpeg present")
	}

	joined := strings.Join(log.succ, "\n")
	if !strings.Contains(joined, "ffprobe version 7.0-fake") {
		t.Errorf("ffprobe version line missing: %q", log.succ)
	}
	if len(log.errs) != 1 || !strings.Contains(log.errs[0], "ffplay") {
		t.Errorf("errs = %q, want only the ffplay miss", log.errs)
	}
	// The fake ffmpeg prints a version banner instead of an encoder
	// table, so every backend reports unavailable.
	if len(log.warn) != 3 {
		t.Errorf("warnings = %q, want three unavailable backends", log.warn)
	}
}

func TestRunCheck_FailsWithoutFfmpeg(t *testing.T) {
	dir := t.TempDir()
	writeExec(t, filepath.Join(dir, "ffprobe"), "ffprobe version 7.0-fake")

	t.Setenv("PATH", dir)
	chdir(t, t.TempDir())

	cfg := config.DefaultConfig()
	log := &mockLog{}
	if RunCheck(&cfg, log) {
		t.Fatal("RunCheck = true without ffmpeg")
	}
}
