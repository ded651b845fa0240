package kafka

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// A worker holding an error while the buffer is already full must not leak:
// drain has to consume until every worker has exited.
func TestDrainUnblocksWorkers(t *testing.T) {
	errs := make(chan error, 1)
	errs <- errors.New("buffered") // buffer full

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- errors.New("blocked until drained")
	}()

	done := make(chan struct{})
	go func() {
		drain(&wg, errs)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("drain did not unblock the worker")
	}
}

func TestDrainNoWorkers(t *testing.T) {
	var wg sync.WaitGroup
	done := make(chan struct{})
	go func() {
		drain(&wg, make(chan error, 1))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("drain did not return with no workers")
	}
}
