// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package sim is the discrete-event kernel: a priority-ordered queue of
// actions dispatched to registered NetObjs under strict monotonic-time,
// FIFO-tiebreak semantics. It is a single-threaded min-heap over integer
// object ids rather than a goroutine-per-node, channel round-robin
// scheduler, so every object is addressed by id rather than by reference.
package sim

import (
	"container/heap"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/simerr"
	"github.com/heistp/nddsim/xlog"
)

// entry is one node in the scheduler's priority queue: (fire_time,
// insertion_seq) orders it, target/from/action say what to dispatch.
type entry struct {
	at     clock.Time
	seq    uint64
	target clock.NetObjId
	from   clock.NetObjId
	action Action
}

// entryHeap implements container/heap.Interface, ordering by (at, seq)
// ascending so that equal fire times are dispatched FIFO.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)   { *h = append(*h, x.(*entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Scheduler owns every NetObj in a run plus the pending-action priority
// queue. It is not safe for concurrent use; the simulator is
// single-threaded by design.
type Scheduler struct {
	objs        []NetObj
	idCounter   clock.NetObjId
	addrCounter clock.Addr
	pktCounter  clock.PktId
	now         clock.Time
	q           entryHeap
	seq         uint64
	Log         *xlog.Logger
}

// New returns an empty Scheduler.
func New(log *xlog.Logger) *Scheduler {
	return &Scheduler{Log: log}
}

// NextObjId returns the id that will be assigned to the next object
// registered via RegisterObj, without registering anything. Successive
// calls return consecutive integers starting at 0. Callers may call this
// repeatedly to precompute a topology's ids before any RegisterObj call,
// as long as RegisterObj is later called the same number of times, in the
// same order.
func (s *Scheduler) NextObjId() clock.NetObjId {
	id := s.idCounter
	s.idCounter++
	return id
}

// RegisterObj registers obj, assigning it the next sequential NetObjId in
// registration order (the n'th call assigns id n-1).
func (s *Scheduler) RegisterObj(obj NetObj) clock.NetObjId {
	id := clock.NetObjId(len(s.objs))
	s.objs = append(s.objs, obj)
	return id
}

// NextAddr issues a fresh, unique Addr.
func (s *Scheduler) NextAddr() clock.Addr {
	a := s.addrCounter
	s.addrCounter++
	return a
}

// NextPktId issues a fresh, unique PktId, for the senders and ackers that
// construct Packets.
func (s *Scheduler) NextPktId() clock.PktId {
	id := s.pktCounter
	s.pktCounter++
	return id
}

// Now returns the current simulation time.
func (s *Scheduler) Now() clock.Time {
	return s.now
}

// Schedule enqueues action, to be dispatched to target at action.At, which
// must be >= Now(). from identifies the object that emitted the action
// (itself, for a self-scheduled timer).
func (s *Scheduler) Schedule(from clock.NetObjId, action Action) error {
	if action.At < s.now {
		return simerr.New(simerr.InvariantViolation,
			"schedule: fire time %s before now %s", action.At, s.now)
	}
	heap.Push(&s.q, &entry{action.At, s.seq, action.Target, from, action})
	s.seq++
	return nil
}

// Simulate drains the event queue, dispatching each action in turn, until
// either the queue empties or the next pending action would fire after
// stopTime (if non-nil). A dispatch returning an error aborts the run
// immediately and is returned to the caller; there is no per-event
// recovery.
func (s *Scheduler) Simulate(stopTime *clock.Time) error {
	for i, o := range s.objs {
		if st, ok := o.(Starter); ok {
			id := clock.NetObjId(i)
			acts, err := st.Start(id)
			if err != nil {
				return err
			}
			for _, a := range acts {
				if err := s.Schedule(id, a); err != nil {
					return err
				}
			}
		}
	}
	err := s.run(stopTime)
	for i, o := range s.objs {
		if sp, ok := o.(Stopper); ok {
			if serr := sp.Stop(clock.NetObjId(i)); serr != nil && err == nil {
				err = serr
			}
		}
	}
	return err
}

func (s *Scheduler) run(stopTime *clock.Time) error {
	for s.q.Len() > 0 {
		e := heap.Pop(&s.q).(*entry)
		if stopTime != nil && e.at > *stopTime {
			return nil
		}
		if e.at < s.now {
			return simerr.New(simerr.InvariantViolation,
				"time moved backward: %s < %s", e.at, s.now)
		}
		s.now = e.at
		if s.Log != nil {
			s.Log.Logf(s.now, e.target, "dispatch: %s from %d", e.action.Kind, e.from)
		}
		obj := s.objs[e.target]
		var acts []Action
		var err error
		switch e.action.Kind {
		case ActionPush:
			acts, err = obj.Push(e.target, e.from, s.now, e.action.Pkt)
		case ActionEvent:
			acts, err = obj.Event(e.target, e.from, s.now, e.action.UID)
		}
		if err != nil {
			if s.Log != nil {
				s.Log.Errorf(s.now, e.target, "dispatch aborted: %v", err)
			}
			return err
		}
		for _, a := range acts {
			if err := s.Schedule(e.target, a); err != nil {
				return err
			}
		}
	}
	return nil
}
