package prsync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	t.Parallel()

	locks := newKeyedMutex()

	const workers = 8
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := locks.lock("octo/widgets#11")
			defer unlock()

			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, workers, counter)

	// All holders released, so the entry must be gone.
	locks.mu.Lock()
	defer locks.mu.Unlock()
	require.Empty(t, locks.entries)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	t.Parallel()

	locks := newKeyedMutex()

	unlockA := locks.lock("octo/widgets#1")

	// A different pull request key must not block behind the first.
	done := make(chan struct{})
	go func() {
		unlockB := locks.lock("octo/widgets#2")
		unlockB()
		close(done)
	}()
	<-done

	unlockA()
}
