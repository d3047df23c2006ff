// Package content generates the procedural material printed on a bookmark:
// fake source code lines for text mode and organic shape descriptors for
// shape mode.
//
// Every generator consumes a caller-owned *rng.Stream in a fixed order.
// Reordering draws changes the output for a given seed.
package content
