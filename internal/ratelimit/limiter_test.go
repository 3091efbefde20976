package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*Limiter, *time.Time) {
	clock := start
	l := NewLimiter()
	l.now = func() time.Time { return clock }
	return l, &clock
}

func TestAdmitQuota(t *testing.T) {
	l, clock := newTestLimiter(time.Unix(1000, 0))

	var got []bool
	for i := 0; i < 4; i++ {
		got = append(got, l.Admit("10.0.0.1", 3, time.Minute))
		*clock = clock.Add(250 * time.Millisecond)
	}
	assert.Equal(t, []bool{true, true, true, false}, got)
}

func TestAdmitWindowSlides(t *testing.T) {
	l, clock := newTestLimiter(time.Unix(1000, 0))

	for i := 0; i < 3; i++ {
		assert.True(t, l.Admit("10.0.0.1", 3, time.Minute))
	}
	assert.False(t, l.Admit("10.0.0.1", 3, time.Minute))

	*clock = clock.Add(61 * time.Second)
	assert.True(t, l.Admit("10.0.0.1", 3, time.Minute), "window elapsed, admitted again")
}

func TestRejectedAttemptsNotRecorded(t *testing.T) {
	l, clock := newTestLimiter(time.Unix(1000, 0))

	assert.True(t, l.Admit("ip", 1, time.Minute))
	for i := 0; i < 10; i++ {
		assert.False(t, l.Admit("ip", 1, time.Minute))
	}

	// Only the single admitted timestamp should age out.
	*clock = clock.Add(61 * time.Second)
	assert.True(t, l.Admit("ip", 1, time.Minute))
}

func TestIdentitiesIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Unix(1000, 0))

	assert.True(t, l.Admit("a", 1, time.Minute))
	assert.False(t, l.Admit("a", 1, time.Minute))
	assert.True(t, l.Admit("b", 1, time.Minute))
}

func TestIdleIdentitiesEvicted(t *testing.T) {
	l, clock := newTestLimiter(time.Unix(1000, 0))

	assert.True(t, l.Admit("gone-quiet", 3, time.Minute))
	assert.True(t, l.Admit("still-here", 3, time.Minute))

	*clock = clock.Add(2 * time.Minute)
	assert.True(t, l.Admit("still-here", 3, time.Minute))

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.windows, "gone-quiet",
		"identities with no requests inside the window must be released")
	assert.Contains(t, l.windows, "still-here")
}

func TestAdmitConcurrent(t *testing.T) {
	l := NewLimiter()

	const workers = 20
	results := make(chan bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- l.Admit("shared", 5, time.Minute)
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for ok := range results {
		if ok {
			admitted++
		}
	}
	assert.Equal(t, 5, admitted, "quota must hold under concurrency")
}
