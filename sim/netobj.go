// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package sim

import "github.com/heistp/nddsim/clock"

// NetObj is implemented by every object the scheduler can address. Push
// and Event are merged into a single two-method interface, since any
// concrete object may receive both packets and timers (a Router is simply
// a no-op on Event, since it schedules none).
type NetObj interface {
	// Push is called when another object (or this one, via a prior
	// self-scheduled Action) delivers a packet addressed to selfID.
	Push(selfID, fromID clock.NetObjId, now clock.Time, pkt Packet) ([]Action, error)
	// Event is called when a timer this object itself scheduled fires.
	// uid is the local tag the object chose when it scheduled the timer.
	Event(selfID, fromID clock.NetObjId, now clock.Time, uid uint64) ([]Action, error)
}

// Starter runs once, before the first event is dispatched, in registration
// order. It may emit actions the way Push/Event do, for objects (like a
// TCPSender) that need to kick off their own activity at t=0 rather than
// waiting to be pushed to.
type Starter interface {
	Start(selfID clock.NetObjId) ([]Action, error)
}

// Stopper runs once, after the event queue has drained or the run has
// aborted, in registration order.
type Stopper interface {
	Stop(selfID clock.NetObjId) error
}
