// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package netobj

import (
	"testing"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/simerr"
)

// TestRouterForwardsByRoute checks a data packet is forwarded to the port
// registered for its destination.
func TestRouterForwardsByRoute(t *testing.T) {
	r := NewRouter(0, nil)
	r.AddRoute(5, clock.NetObjId(3))
	pkt := testPkt(1)
	pkt.Dest = 5
	acts, err := r.Push(0, 9, 100, pkt)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(acts) != 1 || acts[0].Target != 3 || acts[0].At != 100 {
		t.Fatalf("unexpected acts: %+v", acts)
	}
}

// TestRouterUnroutableDestination checks that a packet to an unregistered
// destination aborts with UnroutableDestination.
func TestRouterUnroutableDestination(t *testing.T) {
	r := NewRouter(0, nil)
	pkt := testPkt(1)
	pkt.Dest = 42
	_, err := r.Push(0, 9, 0, pkt)
	if err == nil {
		t.Fatal("expected an error for an unroutable destination")
	}
	if k, ok := simerr.KindOf(err); !ok || k != simerr.UnroutableDestination {
		t.Fatalf("KindOf(err) = %v, %v, want UnroutableDestination", k, ok)
	}
}

// TestRouterLocalDelivery checks that a packet addressed to the router
// itself is delivered locally and emits no further action.
func TestRouterLocalDelivery(t *testing.T) {
	r := NewRouter(7, nil)
	pkt := testPkt(1)
	pkt.Dest = 7
	acts, err := r.Push(0, 9, 0, pkt)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(acts) != 0 {
		t.Fatalf("acts = %+v, want none for local delivery", acts)
	}
	if r.delivered != 1 {
		t.Fatalf("delivered = %d, want 1", r.delivered)
	}
}
