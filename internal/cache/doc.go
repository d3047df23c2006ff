// Package cache provides a sharded LRU cache safe for concurrent use.
//
// The font layer keeps one cache per loaded font, keyed by glyph id, so
// that a glyph outline is decoded once no matter how many lines and
// render passes use it.
package cache
