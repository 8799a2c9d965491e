package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AdmitsUpToMax(t *testing.T) {
	l := NewLimiter(15*time.Minute, 5)

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("203.0.113.7"), "attempt %d should be admitted", i+1)
	}
	assert.False(t, l.Allow("203.0.113.7"), "6th attempt within the window should be rejected")
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := NewLimiter(15*time.Minute, 5)

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("203.0.113.7"))
	}
	assert.False(t, l.Allow("203.0.113.7"))
	assert.True(t, l.Allow("198.51.100.4"), "a different address has its own window")
}

func TestLimiter_WindowSlides(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(15*time.Minute, 5, WithClock(func() time.Time { return now }))

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow("203.0.113.7"))
	}
	assert.False(t, l.Allow("203.0.113.7"))

	// After the window elapses the same address is admitted again
	now = now.Add(15*time.Minute + time.Second)
	assert.True(t, l.Allow("203.0.113.7"))
}

func TestLimiter_PruneDropsIdleKeys(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(15*time.Minute, 5, WithClock(func() time.Time { return now }))

	l.Allow("203.0.113.7")
	now = now.Add(16 * time.Minute)
	l.Prune()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.entries)
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	l := NewLimiter(15*time.Minute, 5)

	var wg sync.WaitGroup
	admitted := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			admitted <- l.Allow("203.0.113.7")
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for ok := range admitted {
		if ok {
			count++
		}
	}
	assert.Equal(t, 5, count)
}
