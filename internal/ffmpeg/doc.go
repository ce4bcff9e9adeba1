// Package ffmpeg builds and supervises the subprocesses on both ends of a
// render: one ffmpeg decoder per tile delivering raw rgb24 frames over a
// bounded channel, and the single output process, encoder or player, fed
// on stdin.
//
// Argument construction is split from process management so the exact
// command lines stay testable without spawning anything: DecodeArgs,
// EncodeArgs and PlayArgs return complete argument slices, and
// StartDecoder, StartEncoder and StartPlayer attach them to processes.
// Binary paths are passed in by the caller; nothing in this package
// searches for tools.
//
// Lifetime rules: decoders are killed and reaped by their owner after
// rendering finishes, and the output process is settled by Finish, which
// waits after a clean render and kills after a failed one. Nothing here
// terminates a subprocess on its own initiative.
package ffmpeg
