// Package buddy implements a single-arena binary buddy memory allocator.
//
// An Arena partitions one contiguous, power-of-two-sized byte buffer into
// blocks and serves Alloc/Free requests by recursive halving and
// coalescing. The package owns exactly one buffer per Arena, obtained from the host at
// Init and released at End; it does not provide its own locking, so the
// host must serialize calls on a given Arena from multiple goroutines.
package buddy
