package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultTTL is how long a published entry stays readable.
const DefaultTTL = 24 * time.Hour

// Cache is a small file-backed key-value store with per-entry TTL. It holds
// operator-facing values like the last run summary; it is informational
// only and never authoritative.
type Cache struct {
	mu       sync.Mutex
	Entries  map[string]string    `json:"entries"`
	CachedAt map[string]time.Time `json:"cached_at"`
	TTL      time.Duration        `json:"-"`
	path     string
}

// New creates a cache persisted at path, loading any existing entries.
// A missing or unreadable file starts empty.
func New(path string) *Cache {
	c := &Cache{
		Entries:  make(map[string]string),
		CachedAt: make(map[string]time.Time),
		TTL:      DefaultTTL,
		path:     path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := json.Unmarshal(data, c); err != nil {
		return c
	}
	if c.Entries == nil {
		c.Entries = make(map[string]string)
	}
	if c.CachedAt == nil {
		c.CachedAt = make(map[string]time.Time)
	}
	c.TTL = DefaultTTL
	return c
}

// Get retrieves a value if present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, exists := c.Entries[key]
	if !exists {
		return "", false
	}
	cachedTime, hasTime := c.CachedAt[key]
	if !hasTime || time.Since(cachedTime) > c.TTL {
		delete(c.Entries, key)
		delete(c.CachedAt, key)
		return "", false
	}
	return value, true
}

// Set stores a value and persists the cache to disk. Persistence failures
// are returned but leave the in-memory entry in place.
func (c *Cache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Entries[key] = value
	c.CachedAt[key] = time.Now()

	return c.save()
}

// save writes the cache file. Caller holds the lock.
func (c *Cache) save() error {
	if c.path == "" {
		return nil
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating cache directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
