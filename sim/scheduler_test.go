// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/xlog"
)

// eventRecorder is a NetObj that records, in dispatch order, the uid and
// now of each Event it receives.
type eventRecorder struct {
	uids []uint64
	nows []clock.Time
}

func (r *eventRecorder) Push(selfID, fromID clock.NetObjId, now clock.Time, pkt Packet) ([]Action, error) {
	return nil, nil
}

func (r *eventRecorder) Event(selfID, fromID clock.NetObjId, now clock.Time, uid uint64) ([]Action, error) {
	r.uids = append(r.uids, uid)
	r.nows = append(r.nows, now)
	return nil, nil
}

func TestMonotonicityAndFIFOTiebreak(t *testing.T) {
	s := New(xlog.New())
	r := &eventRecorder{}
	id := s.RegisterObj(r)

	// two entries at the same fire time must dispatch in schedule order
	if err := s.Schedule(id, EventAt(100, id, 1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Schedule(id, EventAt(100, id, 2)); err != nil {
		t.Fatal(err)
	}
	if err := s.Schedule(id, EventAt(50, id, 3)); err != nil {
		t.Fatal(err)
	}
	if err := s.Simulate(nil); err != nil {
		t.Fatal(err)
	}

	want := []uint64{3, 1, 2}
	if diff := cmp.Diff(want, r.uids); diff != "" {
		t.Errorf("dispatch order mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(r.nows); i++ {
		if r.nows[i] < r.nows[i-1] {
			t.Errorf("time moved backward at index %d: %s < %s", i, r.nows[i], r.nows[i-1])
		}
	}
}

func TestSimulateStopsAtStopTime(t *testing.T) {
	s := New(xlog.New())
	r := &eventRecorder{}
	id := s.RegisterObj(r)
	if err := s.Schedule(id, EventAt(100, id, 1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Schedule(id, EventAt(200, id, 2)); err != nil {
		t.Fatal(err)
	}
	stop := clock.Time(150)
	if err := s.Simulate(&stop); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint64{1}, r.uids); diff != "" {
		t.Errorf("dispatch order mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []uint64 {
		s := New(xlog.New())
		r := &eventRecorder{}
		id := s.RegisterObj(r)
		for i, at := range []clock.Time{30, 10, 20, 10} {
			if err := s.Schedule(id, EventAt(at, id, uint64(i))); err != nil {
				t.Fatal(err)
			}
		}
		if err := s.Simulate(nil); err != nil {
			t.Fatal(err)
		}
		return r.uids
	}
	a := run()
	b := run()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("replay mismatch (-first +second):\n%s", diff)
	}
}
