package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheCapacity int
	parser        FontParser
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheCapacity: 64, // per shard, 1024 glyphs in total
		parser:        defaultParser,
	}
}

// WithGlyphCacheCapacity sets the number of cached glyph outlines per
// cache shard. Values <= 0 select the cache default.
func WithGlyphCacheCapacity(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheCapacity = n
	}
}

// WithParser replaces the font parsing backend used for metrics and glyph
// outlines. A nil parser keeps the default.
func WithParser(p FontParser) SourceOption {
	return func(c *sourceConfig) {
		if p != nil {
			c.parser = p
		}
	}
}
