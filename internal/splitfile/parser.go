// Package splitfile parses split sources: a video path paired with the
// ordered checkpoint timestamps that align it to its peers.
package splitfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/backmassage/splitscreen/internal/timecode"
)

// Logger is the minimal logging interface needed by the parser.
// Defined here (rather than importing the logging package) so that
// splitfile remains dependency-light and testable with a mock logger.
type Logger interface {
	Warn(string, ...interface{})
}

// Source is one video plus its checkpoint times in seconds. Checkpoints
// are taken as given; keeping them increasing is the split author's
// responsibility.
type Source struct {
	Path   string
	Splits []float64
}

// FromLines builds a Source from split-file lines. Each line is a
// space-separated keyword record; "split <time>" appends a checkpoint,
// any other keyword is warned about and skipped. The same format is
// accepted on the command line in --input-args mode, one line per
// argument.
func FromLines(videoPath string, lines []string, log Logger) (Source, error) {
	src := Source{Path: videoPath}
	for _, line := range lines {
		fields := strings.Split(line, " ")
		switch fields[0] {
		case "split":
			if len(fields) < 2 {
				return Source{}, fmt.Errorf("missing split time in %q", line)
			}
			t, err := timecode.Parse(fields[1])
			if err != nil {
				return Source{}, err
			}
			src.Splits = append(src.Splits, t)
		default:
			log.Warn("unknown field `%s`", fields[0])
		}
	}
	return src, nil
}

// FromFile reads a split file and parses its lines.
func FromFile(videoPath, splitPath string, log Logger) (Source, error) {
	f, err := os.Open(splitPath)
	if err != nil {
		return Source{}, fmt.Errorf("cannot open %s: %w", splitPath, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Source{}, fmt.Errorf("read %s: %w", splitPath, err)
	}
	return FromLines(videoPath, lines, log)
}
