package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
	"time"
)

// DefaultCacheSize is how many decoded images an ImageCache keeps.
const DefaultCacheSize = 8

type cachedImage struct {
	img     image.Image
	format  string
	modTime time.Time
	size    int64
}

// ImageCache provides thread-safe caching of images loaded from disk.
//
// Entries are keyed by path and validated against the file's modification
// time and size on every Load, so a file rewritten in place is decoded
// again. When more than the configured number of images are cached, the
// least recently loaded one is dropped.
type ImageCache struct {
	mu      sync.Mutex
	entries map[string]*cachedImage
	order   []string // least recently loaded first
	limit   int
}

// NewImageCache creates an empty cache holding up to DefaultCacheSize images.
func NewImageCache() *ImageCache {
	return NewImageCacheSize(DefaultCacheSize)
}

// NewImageCacheSize creates an empty cache holding up to limit images.
// A limit below 1 is treated as 1.
func NewImageCacheSize(limit int) *ImageCache {
	if limit < 1 {
		limit = 1
	}
	return &ImageCache{
		entries: make(map[string]*cachedImage),
		limit:   limit,
	}
}

// Load returns the image at path, decoding it unless an entry with the same
// modification time and size is cached. PNG, JPEG and GIF are supported.
func (c *ImageCache) Load(path string) (image.Image, error) {
	e, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

func (c *ImageCache) load(path string) (*cachedImage, error) {
	stat, err := os.Stat(path)
	if err != nil {
		c.Evict(path)
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	c.mu.Lock()
	e, ok := c.entries[path]
	c.mu.Unlock()
	if ok {
		if e.size == stat.Size() && e.modTime.Equal(stat.ModTime()) {
			return e, nil
		}
		c.Evict(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	e = &cachedImage{
		img:     img,
		format:  format,
		modTime: stat.ModTime(),
		size:    stat.Size(),
	}

	c.mu.Lock()
	c.evictLocked(path)
	c.entries[path] = e
	c.order = append(c.order, path)
	for len(c.order) > c.limit {
		c.evictLocked(c.order[0])
	}
	c.mu.Unlock()

	return e, nil
}

// Evict removes path from the cache. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	c.evictLocked(path)
	c.mu.Unlock()
}

func (c *ImageCache) evictLocked(path string) {
	if _, ok := c.entries[path]; !ok {
		return
	}
	delete(c.entries, path)
	for i, p := range c.order {
		if p == path {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Len reports how many images are cached.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// ImageInfo describes an image file loaded through the cache.
type ImageInfo struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Format        string `json:"format"` // decoder name: "png", "jpeg" or "gif"
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// LoadImageInfo loads path through cache and reports its dimensions, the
// decoder that read it and its size on disk.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	e, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	bounds := e.img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        e.format,
		FileSizeBytes: e.size,
	}, nil
}
