package storage

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// CachedCatalog is a read-through LRU cache in front of a CatalogStore.
// Entries expire after ttl. Only use it for lookups that tolerate staleness,
// such as access decisions; never read counters through it.
type CachedCatalog struct {
	next     CatalogStore
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]*list.Element
	order *list.List
}

type cacheEntry struct {
	key          string
	contribution *Contribution
	video        *Video
	expiresAt    time.Time
}

// NewCachedCatalog wraps next. A capacity <= 0 disables caching.
func NewCachedCatalog(next CatalogStore, capacity int, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		next:     next,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		cache:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *CachedCatalog) GetContribution(ctx context.Context, id string) (*Contribution, error) {
	key := "contribution:" + id
	if entry := c.get(key); entry != nil {
		cp := *entry.contribution
		return &cp, nil
	}

	contribution, err := c.next.GetContribution(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *contribution
	c.put(&cacheEntry{key: key, contribution: &cp})
	return contribution, nil
}

func (c *CachedCatalog) GetVideo(ctx context.Context, id string) (*Video, error) {
	key := "video:" + id
	if entry := c.get(key); entry != nil {
		cp := *entry.video
		return &cp, nil
	}

	video, err := c.next.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *video
	c.put(&cacheEntry{key: key, video: &cp})
	return video, nil
}

// Invalidate drops any cached record for the contribution or video id.
func (c *CachedCatalog) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range []string{"contribution:" + id, "video:" + id} {
		if elem, ok := c.cache[key]; ok {
			delete(c.cache, key)
			c.order.Remove(elem)
		}
	}
}

// size returns the number of cached entries, expired ones included.
func (c *CachedCatalog) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *CachedCatalog) get(key string) *cacheEntry {
	if c.capacity <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[key]
	if !ok {
		return nil
	}
	entry := elem.Value.(*cacheEntry)
	if c.now().After(entry.expiresAt) {
		delete(c.cache, key)
		c.order.Remove(elem)
		return nil
	}

	c.order.MoveToFront(elem)
	return entry
}

func (c *CachedCatalog) put(entry *cacheEntry) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry.expiresAt = c.now().Add(c.ttl)

	if elem, ok := c.cache[entry.key]; ok {
		elem.Value = entry
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.cache, oldest.Value.(*cacheEntry).key)
			c.order.Remove(oldest)
		}
	}

	c.cache[entry.key] = c.order.PushFront(entry)
}

var _ CatalogStore = (*CachedCatalog)(nil)
