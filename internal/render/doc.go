// Package render drives the frame-synchronized composition loop: one
// bounded frame stream per tile in, one ordered sequence of composed
// canvas frames out.
//
// The compositor is the single consumer of all tile streams and the
// single writer of the shared canvas. It advances one global frame
// index and services every tile for that index before invoking the
// sink, which makes the sink call an implicit per-frame barrier across
// all decode pipelines. Backpressure is the channel bound: a lagging
// compositor blocks the decode readers, a lagging decoder blocks the
// compositor.
package render
