package render

import (
	"errors"
	"image"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrResourcesReleased is returned by caches used after their surface was destroyed
var ErrResourcesReleased = errors.New("surface resources already released")

// Resources are the caches owned by one surface lifetime. They are created in
// Create and released in Destroy; nothing is shared between surfaces.
type Resources struct {
	Textures *TextureCache
	Geometry *GeometryCache
	Frames   *FrameMonitor
}

// NewResources creates empty caches for a new surface
func NewResources() *Resources {
	return &Resources{
		Textures: NewTextureCache(),
		Geometry: NewGeometryCache(),
		Frames:   NewFrameMonitor(),
	}
}

// Release drops every cached object
func (r *Resources) Release() {
	if r == nil {
		return
	}
	r.Textures.Release()
	r.Geometry.Release()
	r.Frames.Reset()
}

// TextureCache memoizes generated or loaded images by key. Concurrent loads of
// the same key run the loader once.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[string]image.Image
	group    singleflight.Group
	released bool
}

// NewTextureCache creates an empty cache
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]image.Image)}
}

// Load returns the cached image for key, calling load on a miss
func (c *TextureCache) Load(key string, load func() (image.Image, error)) (image.Image, error) {
	c.mu.RLock()
	if c.released {
		c.mu.RUnlock()
		return nil, ErrResourcesReleased
	}
	if img, ok := c.textures[key]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		img, err := load()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.released {
			return nil, ErrResourcesReleased
		}
		c.textures[key] = img
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

// Len returns the number of cached textures
func (c *TextureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.textures)
}

// Release empties the cache; later loads fail
func (c *TextureCache) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released = true
	c.textures = make(map[string]image.Image)
}

// Point is a 2D position in scene units
type Point struct {
	X, Y float32
}

// GeometryCache memoizes point sets (star fields, rings) by key
type GeometryCache struct {
	mu     sync.Mutex
	shapes map[string][]Point
}

// NewGeometryCache creates an empty cache
func NewGeometryCache() *GeometryCache {
	return &GeometryCache{shapes: make(map[string][]Point)}
}

// Get returns the shape for key, building it on a miss
func (c *GeometryCache) Get(key string, build func() []Point) []Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	if pts, ok := c.shapes[key]; ok {
		return pts
	}
	pts := build()
	c.shapes[key] = pts
	return pts
}

// Len returns the number of cached shapes
func (c *GeometryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.shapes)
}

// Release empties the cache
func (c *GeometryCache) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shapes = make(map[string][]Point)
}

// FrameMonitor samples frames per second once a second
type FrameMonitor struct {
	mu        sync.Mutex
	frames    int
	lastTime  time.Time
	fps       int
	callbacks []func(int)
}

// NewFrameMonitor creates a monitor reporting 60 fps until the first sample
func NewFrameMonitor() *FrameMonitor {
	return &FrameMonitor{fps: 60}
}

// Tick records one frame at now
func (f *FrameMonitor) Tick(now time.Time) {
	f.mu.Lock()
	if f.lastTime.IsZero() {
		f.lastTime = now
	}
	f.frames++
	elapsed := now.Sub(f.lastTime)
	if elapsed < time.Second {
		f.mu.Unlock()
		return
	}
	f.fps = int(float64(f.frames)/elapsed.Seconds() + 0.5)
	f.frames = 0
	f.lastTime = now
	fps := f.fps
	callbacks := make([]func(int), len(f.callbacks))
	copy(callbacks, f.callbacks)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb(fps)
	}
}

// OnUpdate registers a callback for each new sample
func (f *FrameMonitor) OnUpdate(cb func(int)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callbacks = append(f.callbacks, cb)
}

// FPS returns the last sample
func (f *FrameMonitor) FPS() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fps
}

// Reset clears samples and callbacks
func (f *FrameMonitor) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frames = 0
	f.lastTime = time.Time{}
	f.fps = 60
	f.callbacks = nil
}
