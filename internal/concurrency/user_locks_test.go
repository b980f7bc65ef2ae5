package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLocksStablePerHandle(t *testing.T) {
	locks := NewUserLocks()

	assert.Same(t, locks.For("alice"), locks.For("alice"))
	assert.NotSame(t, locks.For("alice"), locks.For("bob"))
}

func TestUserLocksSerializeOneHandle(t *testing.T) {
	locks := NewUserLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := locks.For("alice")
			lock.Lock()
			counter++
			lock.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}
