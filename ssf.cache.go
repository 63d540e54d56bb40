package ssf

import (
	"sync"

	"go.uber.org/zap"
)

// TemplateCache holds compiled templates keyed by their source text.
// Entries remember the defaults generation they were compiled under and
// count as misses once the process-wide defaults change.
type TemplateCache struct {
	mu        sync.RWMutex
	entries   map[string]*templateCacheEntry
	config    TemplateCacheConfig
	stats     TemplateCacheStats
	evictList []string // FIFO tracking
	logger    *zap.Logger
}

// templateCacheEntry holds a cached template with metadata.
type templateCacheEntry struct {
	Template   *Template
	Generation uint64
	HitCount   int
}

// TemplateCacheConfig configures the template cache behavior.
type TemplateCacheConfig struct {
	// MaxEntries is the maximum number of cached templates. Default: 1000.
	MaxEntries int `yaml:"max_entries"`

	// MaxTemplateSize is the largest source (bytes) worth caching. Default: 1MB.
	MaxTemplateSize int `yaml:"max_template_size"`
}

// TemplateCacheStats tracks cache performance metrics.
type TemplateCacheStats struct {
	Hits       int64
	Misses     int64
	Stale      int64 // misses caused by a defaults change
	Evictions  int64
	EntryCount int
}

// DefaultTemplateCacheConfig returns the default cache configuration.
func DefaultTemplateCacheConfig() TemplateCacheConfig {
	return TemplateCacheConfig{
		MaxEntries:      DefaultCacheMaxEntries,
		MaxTemplateSize: DefaultCacheMaxTemplateSize,
	}
}

// NewTemplateCache creates a new template cache. Zero config fields take
// their defaults.
func NewTemplateCache(config TemplateCacheConfig, logger *zap.Logger) *TemplateCache {
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultCacheMaxEntries
	}
	if config.MaxTemplateSize <= 0 {
		config.MaxTemplateSize = DefaultCacheMaxTemplateSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TemplateCache{
		entries:   make(map[string]*templateCacheEntry),
		config:    config,
		evictList: make([]string, 0, config.MaxEntries),
		logger:    logger,
	}
}

// Get retrieves a cached template compiled under the current defaults.
func (c *TemplateCache) Get(source string) (*Template, bool) {
	generation := DefaultsGeneration()

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[source]
	if !exists {
		c.stats.Misses++
		c.logger.Debug(LogMsgCacheMiss, zap.Int(LogFieldSource, len(source)))
		return nil, false
	}

	if entry.Generation != generation {
		c.stats.Misses++
		c.stats.Stale++
		c.logger.Debug(LogMsgCacheStale,
			zap.Uint64(LogFieldGeneration, entry.Generation),
			zap.Int(LogFieldSource, len(source)))
		return nil, false
	}

	entry.HitCount++
	c.stats.Hits++
	c.logger.Debug(LogMsgCacheHit, zap.Int(LogFieldSource, len(source)))
	return entry.Template, true
}

// Set stores a template compiled under the given defaults generation.
// A stale entry for the same source is replaced in place.
func (c *TemplateCache) Set(source string, tmpl *Template, generation uint64) {
	// Don't cache templates that exceed max size
	if len(source) > c.config.MaxTemplateSize {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.entries[source]; exists {
		entry.Template = tmpl
		entry.Generation = generation
		entry.HitCount = 0
		return
	}

	// Evict if at capacity
	if len(c.entries) >= c.config.MaxEntries {
		c.evictOldest()
	}

	c.entries[source] = &templateCacheEntry{
		Template:   tmpl,
		Generation: generation,
	}
	c.evictList = append(c.evictList, source)
	c.stats.EntryCount = len(c.entries)
}

// Invalidate removes the entry for source.
func (c *TemplateCache) Invalidate(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[source]; !exists {
		return
	}
	delete(c.entries, source)
	for i, key := range c.evictList {
		if key == source {
			c.evictList = append(c.evictList[:i], c.evictList[i+1:]...)
			break
		}
	}
	c.stats.EntryCount = len(c.entries)
}

// Clear removes all entries from the cache.
func (c *TemplateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*templateCacheEntry)
	c.evictList = make([]string, 0, c.config.MaxEntries)
	c.stats.EntryCount = 0
}

// Stats returns current cache statistics.
func (c *TemplateCache) Stats() TemplateCacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate (0.0 to 1.0).
func (c *TemplateCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.stats.Hits + c.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(c.stats.Hits) / float64(total)
}

// Len returns the number of cached templates.
func (c *TemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictOldest removes the oldest entry (FIFO).
func (c *TemplateCache) evictOldest() {
	if len(c.evictList) == 0 {
		return
	}

	oldestKey := c.evictList[0]
	c.evictList = c.evictList[1:]

	if _, exists := c.entries[oldestKey]; exists {
		delete(c.entries, oldestKey)
		c.stats.Evictions++
		c.logger.Debug(LogMsgCacheEvict, zap.Int(LogFieldEntries, len(c.entries)))
	}
}

// CachedCompiler wraps a Compiler with a template cache, for callers that
// format the same ad-hoc template strings repeatedly.
type CachedCompiler struct {
	compiler *Compiler
	cache    *TemplateCache
}

// NewCachedCompiler creates a compiler wrapper with template caching.
func NewCachedCompiler(compiler *Compiler, cacheConfig TemplateCacheConfig) *CachedCompiler {
	return &CachedCompiler{
		compiler: compiler,
		cache:    NewTemplateCache(cacheConfig, compiler.logger),
	}
}

// Compile returns the cached template for source, compiling it on a miss.
func (cc *CachedCompiler) Compile(source string) *Template {
	if tmpl, ok := cc.cache.Get(source); ok {
		return tmpl
	}

	// Read the generation first so a concurrent defaults change can only
	// make the entry stale, never wrongly fresh.
	generation := DefaultsGeneration()
	tmpl := cc.compiler.Compile(source)
	cc.cache.Set(source, tmpl, generation)
	return tmpl
}

// Format renders source against input using the cached template.
func (cc *CachedCompiler) Format(source string, input any) string {
	return cc.Compile(source).Execute(input)
}

// InvalidateCache clears the template cache.
func (cc *CachedCompiler) InvalidateCache() {
	cc.cache.Clear()
}

// InvalidateTemplate removes the cached template for source.
func (cc *CachedCompiler) InvalidateTemplate(source string) {
	cc.cache.Invalidate(source)
}

// CacheStats returns the template cache statistics.
func (cc *CachedCompiler) CacheStats() TemplateCacheStats {
	return cc.cache.Stats()
}

// CacheHitRate returns the cache hit rate.
func (cc *CachedCompiler) CacheHitRate() float64 {
	return cc.cache.HitRate()
}

// Compiler returns the underlying compiler for direct access.
func (cc *CachedCompiler) Compiler() *Compiler {
	return cc.compiler
}
