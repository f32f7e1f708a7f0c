package token

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// MemoryCache is a process-local Cache. Expired entries are dropped lazily on Get
// and periodically by a cleanup job.
type MemoryCache struct {
	mu        sync.Mutex
	entries   map[string]oauth2.Token
	scheduler gocron.Scheduler
	now       func() time.Time
}

// NewMemoryCache creates a MemoryCache whose cleanup job runs every cleanupInterval once Start is called.
func NewMemoryCache(cleanupInterval time.Duration) (*MemoryCache, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	c := &MemoryCache{
		entries:   make(map[string]oauth2.Token),
		scheduler: scheduler,
		now:       time.Now,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cleanupInterval),
		gocron.NewTask(
			func() {
				if n := c.Purge(); n > 0 {
					log.Debug().Int("count", n).Msg("expired access tokens purged")
				}
			},
		),
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Start starts the cleanup job.
func (c *MemoryCache) Start() {
	c.scheduler.Start()
}

// Stop stops the cleanup job.
func (c *MemoryCache) Stop() error {
	return c.scheduler.Shutdown()
}

func (c *MemoryCache) Get(_ context.Context, key string) (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tok, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if !tok.Expiry.After(c.now()) {
		delete(c.entries, key)
		return nil, nil
	}
	return &tok, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, tok *oauth2.Token) error {
	c.mu.Lock()
	c.entries[key] = *tok
	c.mu.Unlock()
	return nil
}

// Purge removes every expired entry and returns how many were removed.
func (c *MemoryCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, tok := range c.entries {
		if !tok.Expiry.After(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
