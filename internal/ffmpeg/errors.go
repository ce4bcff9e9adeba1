package ffmpeg

import "errors"

// ErrAbnormalExit reports an output subprocess that terminated with a
// non-zero status after a clean render. Wrapped with the tool name by
// [Proc.Finish].
var ErrAbnormalExit = errors.New("exited abnormally")
