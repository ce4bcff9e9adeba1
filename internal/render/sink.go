package render

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Sink consumes composed frames in timeline order. Accept runs once
// per frame index, strictly increasing; frame is nil for warm-up
// frames before the first synchronized segment ends and the shared
// canvas buffer afterwards. Returning false stops the render cleanly
// at the next frame boundary.
type Sink interface {
	Accept(frameIndex uint32, frame []byte) (bool, error)
}

// WriterSink streams real frames to a writer and swallows warm-up
// frames. A closed downstream pipe ends the render without error, so
// a player window closed mid-run is not a failure.
type WriterSink struct {
	w io.Writer

	// Frames and Bytes count what actually reached the writer.
	Frames uint64
	Bytes  uint64
}

// NewWriterSink wraps w, typically a file or a subprocess stdin pipe.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Accept(_ uint32, frame []byte) (bool, error) {
	if frame == nil {
		return true, nil
	}

	n, err := s.w.Write(frame)
	s.Bytes += uint64(n)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) {
			return false, nil
		}
		return false, fmt.Errorf("write frame: %w", err)
	}
	s.Frames++
	return true, nil
}
