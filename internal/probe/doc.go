// Package probe extracts per-source video facts (width, height,
// duration) from ffprobe for render planning.
//
// The wire contract is deliberately narrow: one ffprobe call per source
// with -show_entries stream=width,height,duration and key-less default
// output, yielding exactly three lines. Anything else is treated as an
// unreadable source and fails planning.
package probe
