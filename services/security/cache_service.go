package security

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache is a small in-process store for short-lived verification state
// (pending OTP dispatches, e-sign sessions). Entries expire on their own;
// nothing in here survives a restart, which is the contract the simulated
// providers need.
type Cache struct {
	c *cache.Cache
}

func NewCache() *Cache {
	// Default expiration of 10 minutes, purge sweep every 15
	return &Cache{
		c: cache.New(10*time.Minute, 15*time.Minute),
	}
}

func (cm *Cache) Insert(k string, x interface{}) {
	cm.c.Set(k, x, cache.DefaultExpiration)
}

func (cm *Cache) InsertWithTTL(k string, x interface{}, ttl time.Duration) {
	cm.c.Set(k, x, ttl)
}

func (cm *Cache) Get(key string) (interface{}, error) {
	val, found := cm.c.Get(key)
	if found {
		return val, nil
	}

	return nil, fmt.Errorf("value not found")
}

func (cm *Cache) Delete(key string) {
	cm.c.Delete(key)
}
