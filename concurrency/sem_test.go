// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package concurrency_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/momentics/slotring/api"
	"github.com/momentics/slotring/concurrency"
)

func TestBinarySemaphore_AcquireRelease(t *testing.T) {
	s := concurrency.NewSemaphore("t")
	if s.Name() != "t" {
		t.Fatalf("Name()=%q, want %q", s.Name(), "t")
	}
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire(): %v", err)
	}
	s.Release()
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire() after Release: %v", err)
	}
	s.Release()
}

func TestBinarySemaphore_MutualExclusion(t *testing.T) {
	s := concurrency.NewSemaphore("mx")
	const workers, iters = 8, 1000
	counter := 0
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				if err := s.Acquire(); err != nil {
					t.Error(err)
					return
				}
				counter++
				s.Release()
			}
		}()
	}
	wg.Wait()
	if counter != workers*iters {
		t.Fatalf("counter=%d, want %d; critical section not exclusive", counter, workers*iters)
	}
}

func TestBinarySemaphore_Destroy(t *testing.T) {
	s := concurrency.NewSemaphore("d")
	if err := s.Acquire(); err != nil {
		t.Fatal(err)
	}
	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy(): %v", err)
	}
	if err := s.Acquire(); !errors.Is(err, api.ErrLockFailed) {
		t.Fatalf("Acquire() after Destroy: err=%v, want ErrLockFailed", err)
	}
	if err := s.Destroy(); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("second Destroy(): err=%v, want ErrInvalidArgument", err)
	}
}

func TestBinarySemaphore_DestroyWakesWaiter(t *testing.T) {
	s := concurrency.NewSemaphore("w")
	if err := s.Acquire(); err != nil {
		t.Fatal(err)
	}
	got := make(chan error, 1)
	go func() { got <- s.Acquire() }()
	// The waiter is parked on the semaphore; destroying while held
	// must fail it rather than strand it.
	if err := s.Destroy(); err != nil {
		t.Fatal(err)
	}
	if err := <-got; !errors.Is(err, api.ErrLockFailed) {
		t.Fatalf("waiter err=%v, want ErrLockFailed", err)
	}
}

func TestNop_AlwaysAvailable(t *testing.T) {
	s := concurrency.Nop()
	for i := 0; i < 3; i++ {
		if err := s.Acquire(); err != nil {
			t.Fatalf("Acquire() %d: %v", i, err)
		}
		s.Release()
	}
	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy(): %v", err)
	}
	if err := s.Acquire(); err != nil {
		t.Fatalf("Acquire() after Destroy: %v", err)
	}
}
