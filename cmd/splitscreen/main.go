// Command splitscreen is the CLI entrypoint for the split-screen
// speedrun compositor.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check) or the render pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/splitscreen/internal/check"
	"github.com/backmassage/splitscreen/internal/config"
	"github.com/backmassage/splitscreen/internal/display"
	"github.com/backmassage/splitscreen/internal/logging"
	"github.com/backmassage/splitscreen/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(execute())
}

// execute wires the cobra command around run. Flag and usage errors
// exit 2, runtime failures exit 1.
func execute() int {
	cfg := config.DefaultConfig()

	var fl *config.Flags
	code := 0
	cmd := &cobra.Command{
		Use:   "splitscreen [flags] <video> <splits> [<video> <splits>...]",
		Short: "Compose speedrun recordings into one synchronized split-screen video",
		Long: `Compose any number of speedrun recordings into one split-screen video,
synchronized on shared checkpoint times. Each input brings its own list
of split timestamps; the composition freezes at every checkpoint for a
side-by-side comparison, then resumes each run from its own split.

Without --out the result plays back in an ffplay window. With --out it
is encoded to a file, or streamed when the path is "-".`,
		Example: `  splitscreen -s 1280x720 -r 30 -o race.mp4 one.mp4 one.txt two.mp4 two.txt
  splitscreen -s 1920x1080 -r 60 -A one.mp4 "split 1:00" -- two.mp4 "split 58.5"`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl.Fold(&cfg)
			code = run(cmd, &cfg, args)
			return nil
		},
	}
	fl = config.AttachFlags(cmd, &cfg)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "splitscreen: %v\n", err)
		return 2
	}
	return code
}

func run(cmd *cobra.Command, cfg *config.Config, args []string) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all human
	// output goes through the logger for consistent formatting and
	// log-file capture.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "splitscreen: %v\n", err)
		return 2
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splitscreen: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. Everything lands on stderr so stdout
	// stays clean for frame data.
	display.PrintBanner()
	log.Info("SplitScreen v%s (%s)", version, commit)

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return 1
		}
		return 0
	}

	// Fail fast if ffmpeg/ffprobe or (for playback) ffplay are missing.
	if err := check.CheckDeps(cfg); err != nil {
		log.Error("%v", err)
		log.Error("Run with --check for a full diagnostic")
		return 1
	}

	sources, err := cfg.BuildInputs(args, cmd.Flags().ArgsLenAtDash(), log)
	if err != nil {
		log.Error("%v", err)
		return 2
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so
	// the decoders and the output process are killed and reaped on the
	// way out instead of lingering.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping render")
		cancel()
	}()

	// Phase 4: Render.
	if err := pipeline.Run(ctx, cfg, sources, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
