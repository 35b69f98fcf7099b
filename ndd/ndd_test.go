// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package ndd

import (
	"testing"

	"github.com/heistp/nddsim/clock"
)

// TestActionFromPhaseCycle checks the exact per-step action sequence over
// two full cycles: FirstCruise, Cruise x9, FirstProbe, Probe, Drain,
// repeated.
func TestActionFromPhaseCycle(t *testing.T) {
	want := []Action{
		FirstCruise,
		Cruise, Cruise, Cruise, Cruise, Cruise, Cruise, Cruise, Cruise, Cruise,
		FirstProbe,
		Probe,
		Drain,
	}
	for cycle := 0; cycle < 2; cycle++ {
		for i, w := range want {
			phase := uint32(cycle*CycleSteps + i)
			if got := actionFromPhase(phase); got != w {
				t.Fatalf("cycle %d step %d: actionFromPhase(%d) = %s, want %s", cycle, i, phase, got, w)
			}
		}
	}
	if CycleSteps != 13 {
		t.Fatalf("CycleSteps = %d, want 13", CycleSteps)
	}
}

// TestOnSendOpensAndExtendsRecords checks that consecutive sends on an
// unclosed record extend it rather than opening a new one.
func TestOnSendOpensAndExtendsRecords(t *testing.T) {
	n := NewNDD(SlowFSM, 1)
	n.OnSend(0, 1, 1)
	if n.records.Len() != 1 {
		t.Fatalf("records.Len() = %d, want 1", n.records.Len())
	}
	r := n.records.Back()
	if r.SndBegSeq != 1 || r.HasSndEnd {
		t.Fatalf("unexpected record after first send: %+v", r)
	}
	n.OnSend(1000, 2, 2)
	if n.records.Len() != 1 {
		t.Fatalf("second send should extend, not open a new record")
	}
	if !r.HasSndEnd || r.SndEndSeq != 2 {
		t.Fatalf("record not extended: %+v", r)
	}
}

// TestOnAckClosesSendAndAdvancesPhase drives a SlowFSM-variant boundary
// (cum_ack-1) ack that matches the open record's SndBegSeq, and checks that
// it closes the send half and advances the phase exactly once.
func TestOnAckClosesSendAndAdvancesPhase(t *testing.T) {
	n := NewNDD(SlowFSM, 1)
	n.phase = 0
	n.action = FirstCruise
	n.OnSend(0, 1, 1)
	n.OnSend(1000, 2, 2)

	n.OnAck(2000, 2, 2, 1000, 0) // boundary = 2-1 = 1 = SndBegSeq

	r := n.records.Back()
	if !r.SndComplete {
		t.Fatal("expected record to be marked send-complete")
	}
	if !r.HasAckBeg || r.AckBegSeq != 1 {
		t.Fatalf("expected ack-begin to be set at seq 1, got %+v", r)
	}
	if n.phase != 1 {
		t.Fatalf("phase = %d, want 1", n.phase)
	}
}

// TestInvariantsHoldUnderSteadyAcking drives a long synthetic run and
// checks the cwnd/intersend floors hold at every observation point: cwnd
// never drops below MinCwnd, and intersend time never drops below
// MinIntersend.
func TestInvariantsHoldUnderSteadyAcking(t *testing.T) {
	n := NewNDD(SlowFSM, 42)
	if err := n.Init("test", nil); err != nil {
		t.Fatalf("Init: %v", err)
	}

	now := clock.Time(0)
	var seq clock.SeqNum
	const rtt = clock.Time(20_000) // 20ms

	for i := 0; i < 500; i++ {
		seq++
		now += 1000
		n.OnSend(now, seq, clock.PktId(seq))
		n.OnAck(now+rtt, seq+1, clock.PktId(seq), rtt, 0)

		if n.GetCwnd() < MinCwnd {
			t.Fatalf("step %d: cwnd %d below MinCwnd", i, n.GetCwnd())
		}
		if it := n.GetIntersendTime(); it < MinIntersend {
			t.Fatalf("step %d: intersend %d below MinIntersend", i, it)
		}
		if n.phase >= CycleSteps {
			t.Fatalf("step %d: phase %d out of range", i, n.phase)
		}
	}
}

// TestOnTimeoutResetsCwnd checks the unconditional reset to cwnd=2.
func TestOnTimeoutResetsCwnd(t *testing.T) {
	n := NewNDD(SlowFSM, 1)
	n.cwnd = 64
	n.OnTimeout()
	if n.cwnd != 2 {
		t.Fatalf("cwnd after timeout = %f, want 2", n.cwnd)
	}
}

// TestVariantAckOffset checks Fast skips the cum_ack-1 adjustment that
// Slow and SlowFSM apply.
func TestVariantAckOffset(t *testing.T) {
	if Slow.ackOffset() != 1 || SlowFSM.ackOffset() != 1 {
		t.Fatal("Slow/SlowFSM should use an ack offset of 1")
	}
	if Fast.ackOffset() != 0 {
		t.Fatal("Fast should use an ack offset of 0")
	}
}
