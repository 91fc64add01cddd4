package opencv

import (
	"fmt"
	"image"
	"reflect"
	"sync"

	"gocv.io/x/gocv"
)

// CacheStats counts source conversions over the resizer's lifetime.
type CacheStats struct {
	Conversions int64
	Reuses      int64
	Released    int64
}

// matCache holds the Mat of the most recent source image so that successive
// zoom steps on one image convert it only once.
type matCache struct {
	mu    sync.Mutex
	src   image.Image
	mat   *gocv.Mat
	stats CacheStats
}

// acquire returns a Mat for src. When owned is true the caller must close it;
// otherwise it belongs to the cache.
func (c *matCache) acquire(src image.Image) (mat gocv.Mat, owned bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mat != nil && c.src == src {
		c.stats.Reuses++
		return *c.mat, false, nil
	}

	converted, err := gocv.ImageToMatRGBA(src)
	if err != nil {
		return gocv.Mat{}, false, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	c.stats.Conversions++

	// Only pointer-backed images can be recognised again by identity.
	if reflect.ValueOf(src).Kind() != reflect.Pointer {
		return converted, true, nil
	}

	c.releaseLocked()
	c.src = src
	c.mat = &converted
	return converted, false, nil
}

func (c *matCache) releaseLocked() {
	if c.mat == nil {
		return
	}
	c.mat.Close()
	c.mat = nil
	c.src = nil
	c.stats.Released++
}

func (c *matCache) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
}

func (c *matCache) snapshot() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
