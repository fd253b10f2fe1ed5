package api

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextStore_replaceWholesale(t *testing.T) {
	s := NewContextStore()

	_, ok := s.Get()
	assert.False(t, ok)
	assert.False(t, s.Loaded())

	s.Set("first")
	got, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	s.Set("second")
	got, _ = s.Get()
	assert.Equal(t, "second", got)
}

func TestContextStore_concurrentAccess(t *testing.T) {
	s := NewContextStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Set(fmt.Sprintf("context-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			s.Get()
		}()
	}
	wg.Wait()

	// Last writer wins; which writer is last is unspecified, but the value
	// must be one of the written contexts.
	got, ok := s.Get()
	assert.True(t, ok)
	assert.Contains(t, got, "context-")
}
