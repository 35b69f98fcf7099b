// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package netobj

import (
	"testing"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/sim"
)

// TestDelayForwardsAfterDelay checks that a push is forwarded at
// now+Delay toward NextHop, unmodified.
func TestDelayForwardsAfterDelay(t *testing.T) {
	d := NewDelay(10_000, clock.NetObjId(7))
	pkt := testPkt(1)
	acts, err := d.Push(0, 3, 1_000, pkt)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(acts) != 1 {
		t.Fatalf("acts = %v, want 1 action", acts)
	}
	a := acts[0]
	if a.Kind != sim.ActionPush || a.Target != 7 || a.At != 11_000 || a.Pkt.UID != pkt.UID {
		t.Fatalf("unexpected action: %+v", a)
	}
}

// TestDelayPreservesOrder checks that pushes at nondecreasing times are
// forwarded in the same order, since a constant delay shifts every
// arrival time by the same amount.
func TestDelayPreservesOrder(t *testing.T) {
	d := NewDelay(5_000, clock.NetObjId(1))
	var arrivals []clock.Time
	for i, now := range []clock.Time{0, 100, 250} {
		acts, _ := d.Push(0, 9, now, testPkt(clock.PktId(i)))
		arrivals = append(arrivals, acts[0].At)
	}
	for i := 1; i < len(arrivals); i++ {
		if arrivals[i] < arrivals[i-1] {
			t.Fatalf("arrival times not nondecreasing: %v", arrivals)
		}
	}
}
