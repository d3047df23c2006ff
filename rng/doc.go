// Package rng provides the seeded pseudo-random stream that drives content
// generation.
//
// The generator is Alea by Johannes Baagøe, seeded through the Mash hash of
// the seed's UTF-16 code units. All state is float64 arithmetic, so a seed
// yields the same sequence on every platform.
//
// A Stream is not safe for concurrent use. Create one per render pass.
package rng
