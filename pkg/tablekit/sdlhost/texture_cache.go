package sdlhost

const defaultMaxCacheSize = 64

type destroyer interface {
	comparable
	Destroy() error
}

// textureCache keeps rendered text textures and destroys the least
// recently used one when full.
type textureCache[T destroyer] struct {
	textures map[string]T
	order    []string // least recently used first
	maxSize  int
}

func newTextureCache[T destroyer](maxSize int) *textureCache[T] {
	if maxSize < 1 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache[T]{
		textures: make(map[string]T),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache[T]) Get(key string) (T, bool) {
	texture, exists := c.textures[key]
	if exists {
		c.moveToEnd(key)
	}
	return texture, exists
}

func (c *textureCache[T]) Set(key string, texture T) {
	if old, exists := c.textures[key]; exists {
		if old != texture {
			destroy(old)
		}
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache[T]) Len() int {
	return len(c.order)
}

func (c *textureCache[T]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		destroy(texture)
		delete(c.textures, oldest)
	}
}

// Destroy frees every texture and empties the cache.
func (c *textureCache[T]) Destroy() {
	for _, texture := range c.textures {
		destroy(texture)
	}
	c.textures = make(map[string]T)
	c.order = c.order[:0]
}

func destroy[T destroyer](texture T) {
	var zero T
	if texture == zero {
		return
	}
	_ = texture.Destroy()
}
