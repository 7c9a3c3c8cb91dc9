// Package cache bounds the cost of re-rendering card previews.
package cache

import (
	"container/list"
	"errors"
)

// Cache is a small LRU of rendered preview strings. Keys combine the
// note id and a content fingerprint, so an edited body misses and is
// re-rendered while untouched cards stay hot.
type Cache struct {
	capacity  int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key      string
	rendered string
}

// New creates a cache holding at most capacity rendered previews.
func New(capacity int) (*Cache, error) {
	if capacity <= 0 {
		return nil, errors.New("cache capacity must be positive")
	}
	return &Cache{
		capacity:  capacity,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}, nil
}

// Get returns the rendered preview for key, marking it recently used.
func (c *Cache) Get(key string) (string, bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).rendered, true
	}
	return "", false
}

// Put stores a rendered preview, evicting the least recently used
// entry once the cache is full.
func (c *Cache) Put(key, rendered string) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).rendered = rendered
		return
	}

	ele := c.evictList.PushFront(&entry{key: key, rendered: rendered})
	c.items[key] = ele

	if c.evictList.Len() > c.capacity {
		c.removeOldest()
	}
}

// Len reports how many previews are cached.
func (c *Cache) Len() int {
	return c.evictList.Len()
}

func (c *Cache) removeOldest() {
	ele := c.evictList.Back()
	if ele == nil {
		return
	}
	c.evictList.Remove(ele)
	delete(c.items, ele.Value.(*entry).key)
}
