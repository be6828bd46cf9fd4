package model

import (
	"sync"
	"time"
)

// Clock accumulates a player's think time. It only counts up; the rules of
// this variant have no time forfeits.
type Clock struct {
	mu          sync.Mutex
	elapsed     time.Duration
	lastStarted time.Time
	isRunning   bool
}

func NewClock() *Clock {
	return &Clock{}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRunning {
		c.lastStarted = time.Now()
		c.isRunning = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		c.elapsed += time.Since(c.lastStarted)
		c.isRunning = false
	}
}

func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isRunning {
		return c.elapsed + time.Since(c.lastStarted)
	}
	return c.elapsed
}
