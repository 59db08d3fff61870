package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)

	assert.Equal(t, start, clk.Now())

	clk.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), clk.Now())

	clk.Set(start)
	assert.Equal(t, start, clk.Now())
}

func TestMockClock_ConcurrentAdvance(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := NewMockClock(start)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clk.Advance(time.Second)
			_ = clk.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, start.Add(50*time.Second), clk.Now())
}

func TestRealClock_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewRealClock().Now().Location())
}
