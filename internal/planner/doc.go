// Package planner builds the frame-indexed render schedule that the
// compositor executes.
//
// Planning happens in two independent stages:
//   - Layout: arrange n sources on the output canvas as a centered grid
//     of equal boxes and aspect-fit every source into its box (layout.go)
//   - Alignment: place each source's checkpoint runs on one shared
//     output timeline so that every tile reaches checkpoint k at the
//     same output frame, with pause frames between checkpoints (align.go)
//
// Prepare (planner.go) drives both stages, probing each source once
// for its geometry and duration.
package planner
