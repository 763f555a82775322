// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package alloc_test

import (
	"errors"
	"testing"

	"github.com/momentics/slotring/alloc"
	"github.com/momentics/slotring/api"
)

func TestHeap_AllocZeroedAndFree(t *testing.T) {
	a := alloc.Heap()
	buf, err := a.Alloc(4096)
	if err != nil {
		t.Fatalf("Alloc(4096): %v", err)
	}
	if len(buf) != 4096 {
		t.Fatalf("len=%d, want 4096", len(buf))
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %#x", i, b)
		}
	}
	if err := a.Free(buf); err != nil {
		t.Fatalf("Free(): %v", err)
	}
}

func TestHeap_InvalidSize(t *testing.T) {
	a := alloc.Heap()
	for _, n := range []int{0, -1} {
		if _, err := a.Alloc(n); !errors.Is(err, api.ErrInvalidArgument) {
			t.Errorf("Alloc(%d): err=%v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestMmap_ReadWriteRoundTrip(t *testing.T) {
	a := alloc.Mmap()
	buf, err := a.Alloc(8192)
	if err != nil {
		t.Fatalf("Alloc(8192): %v", err)
	}
	if len(buf) != 8192 {
		t.Fatalf("len=%d, want 8192", len(buf))
	}
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		if buf[i] != byte(i) {
			t.Fatalf("byte %d: got %#x", i, buf[i])
		}
	}
	if err := a.Free(buf); err != nil {
		t.Fatalf("Free(): %v", err)
	}
}

func TestMmap_FreeNil(t *testing.T) {
	if err := alloc.Mmap().Free(nil); err != nil {
		t.Fatalf("Free(nil): %v", err)
	}
}
