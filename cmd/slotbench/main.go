// File: cmd/slotbench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// slotbench runs one producer goroutine against one consumer goroutine
// over a locked slot ring and reports sustained transfer rates, probe
// state and, optionally, the diagnostic journal.

package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/spf13/pflag"

	"github.com/momentics/slotring/alloc"
	"github.com/momentics/slotring/api"
	"github.com/momentics/slotring/control"
	"github.com/momentics/slotring/ring"
)

func main() {
	var (
		configPath = pflag.String("config", "", "optional HuJSON config file")
		capacity   = pflag.Int("capacity", 0, "ring capacity in slots")
		elemSize   = pflag.Int("elem-size", 0, "slot size in bytes (min 8)")
		duration   = pflag.Duration("duration", 0, "bench run time")
		useMmap    = pflag.Bool("mmap", false, "back the ring with anonymous mmap")
		journal    = pflag.Bool("journal", false, "record and print the diagnostic journal")
	)
	pflag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("slotbench: %v", err)
		}
	}
	if pflag.CommandLine.Changed("capacity") {
		cfg.Capacity = *capacity
	}
	if pflag.CommandLine.Changed("elem-size") {
		cfg.ElemSize = *elemSize
	}
	if pflag.CommandLine.Changed("duration") {
		cfg.Duration = duration.String()
	}
	if pflag.CommandLine.Changed("mmap") {
		cfg.UseMmap = *useMmap
	}
	if pflag.CommandLine.Changed("journal") {
		cfg.Journal = *journal
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("slotbench: %v", err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("slotbench: %v", err)
	}
}

func run(cfg Config, out *os.File) error {
	mem := alloc.Heap()
	if cfg.UseMmap {
		mem = alloc.Mmap()
	}

	opts := []ring.Option{
		ring.WithAllocator(mem),
		ring.WithLockName("slotbench"),
	}
	var j *control.Journal
	if cfg.Journal {
		j = control.NewJournal(control.DefaultJournalCapacity)
		opts = append(opts, ring.WithTracer(j))
	}

	r, err := ring.New(cfg.Capacity, cfg.ElemSize, opts...)
	if err != nil {
		return err
	}

	probes := control.NewDebugProbes()
	probes.RegisterRing("bench", r)
	metrics := control.NewMetricsRegistry()

	d, err := cfg.duration()
	if err != nil {
		return err
	}
	deadline := time.Now().Add(d)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var seq, produced uint64
		for time.Now().Before(deadline) {
			slot, ok := r.AcquireWrite()
			if !ok {
				runtime.Gosched()
				continue
			}
			binary.LittleEndian.PutUint64(slot, seq)
			seq++
			produced++
		}
		metrics.Add("produced", int64(produced))
	}()
	go func() {
		defer wg.Done()
		var seq, consumed, reordered uint64
		for time.Now().Before(deadline) {
			slot, ok := r.AcquireRead()
			if !ok {
				runtime.Gosched()
				continue
			}
			if binary.LittleEndian.Uint64(slot) != seq {
				reordered++
			}
			seq++
			consumed++
		}
		metrics.Add("consumed", int64(consumed))
		metrics.Add("reordered", int64(reordered))
	}()
	wg.Wait()

	produced := metrics.Get("produced")
	consumed := metrics.Get("consumed")
	fmt.Fprintf(out, "produced  %12d (%.0f/s)\n", produced, float64(produced)/d.Seconds())
	fmt.Fprintf(out, "consumed  %12d (%.0f/s)\n", consumed, float64(consumed)/d.Seconds())
	fmt.Fprintf(out, "reordered %12d\n", metrics.Get("reordered"))
	for name, state := range probes.DumpState() {
		fmt.Fprintf(out, "probe %s: %+v\n", name, state)
	}
	if j != nil {
		for _, ev := range j.Drain() {
			fmt.Fprintf(out, "journal %s %s %v\n", ev.Time.Format(time.RFC3339Nano), ev.Name, ev.Fields)
		}
	}

	if err := r.Close(); err != nil {
		return err
	}
	if reordered := metrics.Get("reordered"); reordered != 0 {
		return fmt.Errorf("%w: %d out-of-order elements", api.ErrCorrupted, reordered)
	}
	return nil
}
