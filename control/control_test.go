// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package control_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/slotring/api"
	"github.com/momentics/slotring/control"
	"github.com/momentics/slotring/ring"
)

func TestJournal_RecordsAndDrains(t *testing.T) {
	j := control.NewJournal(8)
	j.Trace(api.EventCreated, map[string]any{"capacity": 4})
	j.Trace(api.EventFull, nil)

	require.Equal(t, 2, j.Len())
	events := j.Drain()
	require.Len(t, events, 2)
	require.Equal(t, api.EventCreated, events[0].Name)
	require.Equal(t, 4, events[0].Fields["capacity"])
	require.Equal(t, api.EventFull, events[1].Name)
	require.False(t, events[0].Time.IsZero())
	require.Equal(t, 0, j.Len())
}

func TestJournal_DropsOldestOverCapacity(t *testing.T) {
	j := control.NewJournal(3)
	for i := 0; i < 5; i++ {
		j.Trace(api.EventFull, map[string]any{"i": i})
	}
	events := j.Drain()
	require.Len(t, events, 3)
	require.Equal(t, 2, events[0].Fields["i"])
	require.Equal(t, 4, events[2].Fields["i"])
}

func TestJournal_AsRingTracer(t *testing.T) {
	j := control.NewJournal(0) // default capacity
	r, err := ring.New(2, 1, ring.WithNoLock(), ring.WithTracer(j))
	require.NoError(t, err)

	_, ok := r.AcquireWrite()
	require.True(t, ok)
	_, ok = r.AcquireWrite() // full
	require.False(t, ok)
	require.NoError(t, r.Close())

	events := j.Drain()
	require.Len(t, events, 3)
	require.Equal(t, api.EventCreated, events[0].Name)
	require.Equal(t, api.EventFull, events[1].Name)
	require.Equal(t, api.EventClosed, events[2].Name)
}

func TestLogTracer_StableFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	tr := control.NewLogTracer(log.New(&buf, "", 0))

	tr.Trace(api.EventCreated, map[string]any{
		"elem_size": 8,
		"capacity":  4,
	})
	require.Equal(t, "slotring: ring.created capacity=4 elem_size=8\n", buf.String())

	buf.Reset()
	tr.Trace(api.EventEmpty, nil)
	require.Equal(t, "slotring: ring.empty\n", buf.String())
}

func TestDebugProbes_RegisterRing(t *testing.T) {
	probes := control.NewDebugProbes()
	r, err := ring.New(4, 8, ring.WithNoLock())
	require.NoError(t, err)
	defer r.Close()

	probes.RegisterRing("rx", r)
	_, ok := r.AcquireWrite()
	require.True(t, ok)

	state := probes.DumpState()
	st, isStats := state["rx"].(api.RingStats)
	require.True(t, isStats)
	require.Equal(t, 1, st.Len)
	require.Equal(t, 2, st.Remaining)

	probes.Unregister("rx")
	require.Empty(t, probes.DumpState())
}

func TestMetricsRegistry_Counters(t *testing.T) {
	mr := control.NewMetricsRegistry()
	require.True(t, mr.Updated().IsZero())

	mr.Add("produced", 10)
	mr.Add("produced", 5)
	mr.Add("consumed", 7)

	require.Equal(t, int64(15), mr.Get("produced"))
	require.Equal(t, map[string]int64{"produced": 15, "consumed": 7}, mr.Snapshot())
	require.False(t, mr.Updated().IsZero())
}
