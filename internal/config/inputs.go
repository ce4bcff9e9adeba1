package config

import (
	"errors"
	"fmt"

	"github.com/backmassage/splitscreen/internal/splitfile"
)

// BuildInputs converts the positional arguments into render sources.
//
// In file mode (default) the arguments are video and split-file pairs:
//
//	splitscreen ... one.mp4 one.txt two.mp4 two.txt
//
// In args mode (-A) the arguments form groups separated by "--", each
// a video path followed by inline split directives:
//
//	splitscreen -A ... one.mp4 "split 1:00" -- two.mp4 "split 1:02"
//
// atDash is the index where the first "--" sat before flag parsing
// consumed it (as reported by ArgsLenAtDash), or -1. A "--" that led
// the argument list was the flag terminator, not a group boundary, and
// is not restored.
func (c *Config) BuildInputs(args []string, atDash int, log splitfile.Logger) ([]splitfile.Source, error) {
	if len(args) == 0 {
		return nil, errors.New("no inputs given")
	}

	if !c.InputArgs {
		if len(args)%2 != 0 {
			return nil, fmt.Errorf("missing split file for %q", args[len(args)-1])
		}
		sources := make([]splitfile.Source, 0, len(args)/2)
		for i := 0; i < len(args); i += 2 {
			src, err := splitfile.FromFile(args[i], args[i+1], log)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		}
		return sources, nil
	}

	if atDash > 0 && atDash < len(args) {
		restored := make([]string, 0, len(args)+1)
		restored = append(restored, args[:atDash]...)
		restored = append(restored, "--")
		restored = append(restored, args[atDash:]...)
		args = restored
	}

	var sources []splitfile.Source
	group := make([]string, 0, 8)
	flush := func() error {
		if len(group) == 0 {
			return errors.New("empty input group")
		}
		src, err := splitfile.FromLines(group[0], group[1:], log)
		if err != nil {
			return err
		}
		sources = append(sources, src)
		group = group[:0]
		return nil
	}

	for _, arg := range args {
		if arg == "--" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		group = append(group, arg)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return sources, nil
}
