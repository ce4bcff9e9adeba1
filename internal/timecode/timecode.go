// Package timecode parses and formats split timestamps of the form
// [[H:]M:]S.sss.
package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime reports a timestamp that does not parse as [[H:]M:]S
// or whose components are out of range.
var ErrInvalidTime = errors.New("invalid time")

// Parse converts a split timestamp into seconds. One field is seconds,
// two is minutes:seconds, three is hours:minutes:seconds. Minutes above
// 60 and seconds outside [0, 60] are rejected.
func Parse(s string) (float64, error) {
	fields := strings.Split(s, ":")

	var hStr, mStr, sStr string
	switch len(fields) {
	case 1:
		hStr, mStr, sStr = "0", "0", fields[0]
	case 2:
		hStr, mStr, sStr = "0", fields[0], fields[1]
	case 3:
		hStr, mStr, sStr = fields[0], fields[1], fields[2]
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	h, err := strconv.Atoi(hStr)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	m, err := strconv.Atoi(mStr)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	sec, err := strconv.ParseFloat(sStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	if m > 60 || sec < 0 || sec > 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return float64((h*60+m)*60) + sec, nil
}

// Format renders seconds with millisecond precision. The hour field is
// omitted when zero, the minute field when both hour and minute are
// zero. Negative values format as the absolute value with a leading
// minus.
func Format(t float64) string {
	if t < 0 {
		return "-" + Format(-t)
	}

	msTotal := uint64(t * 1000)
	ms := msTotal % 1000
	sTotal := msTotal / 1000
	if sTotal < 60 {
		return fmt.Sprintf("%02d.%03d", sTotal, ms)
	}

	s := sTotal % 60
	mTotal := sTotal / 60
	if mTotal < 60 {
		return fmt.Sprintf("%02d:%02d.%03d", mTotal, s, ms)
	}

	m := mTotal % 60
	hTotal := mTotal / 60
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hTotal, m, s, ms)
}
