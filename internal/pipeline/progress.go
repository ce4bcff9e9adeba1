package pipeline

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/splitscreen/internal/render"
	"github.com/backmassage/splitscreen/internal/term"
)

// progressSink decorates the real sink with a progress bar on stderr.
// Warm-up frames advance it too, so the bar tracks timeline position
// rather than bytes written.
type progressSink struct {
	inner render.Sink
	bar   *progressbar.ProgressBar
}

func newProgressSink(inner render.Sink, total uint32) *progressSink {
	return &progressSink{
		inner: inner,
		bar: progressbar.NewOptions64(int64(total),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("rendering"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("fps"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionEnableColorCodes(term.Enabled()),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (p *progressSink) Accept(frameIndex uint32, frame []byte) (bool, error) {
	_ = p.bar.Add(1)
	return p.inner.Accept(frameIndex, frame)
}

// Close completes the bar and clears its line so the summary that
// follows starts on a clean one.
func (p *progressSink) Close() {
	_ = p.bar.Finish()
}
