// Package pipeline wires one render end to end: resolve the external
// tools, plan the composition, spawn a decoder per tile, pick the
// output target, and drive the compositor over the frame streams.
//
// Subprocess ownership lives here. Decoders are killed and reaped when
// Run returns whatever the render outcome, and the encoder or player is
// settled through its Finish method. The compositor itself never
// touches a process; it only reads channels and calls the sink.
//
// Output selection mirrors the CLI surface: no --out plays back through
// ffplay, --raw writes bare RGB24 frames to a file or stdout, and
// everything else pipes frames into an encoding ffmpeg. With --report
// the sink is wrapped in a progress bar on stderr; stdout stays
// reserved for frame data throughout.
package pipeline
