// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package netobj

import (
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/sim"
)

// Delay is a constant propagation delay. Because the scheduler's
// priority queue has no per-object outstanding-timer limit, scheduling
// Push(pkt) directly at now+Delay is sufficient with no internal FIFO of
// its own: order is preserved because the queue ties break FIFO and
// arrival times here are nondecreasing in send order.
type Delay struct {
	Delay   clock.Time
	NextHop clock.NetObjId
}

// NewDelay returns a Delay forwarding to nextHop after delay.
func NewDelay(delay clock.Time, nextHop clock.NetObjId) *Delay {
	return &Delay{Delay: delay, NextHop: nextHop}
}

// Push implements sim.NetObj.
func (d *Delay) Push(selfID, fromID clock.NetObjId, now clock.Time, pkt sim.Packet) ([]sim.Action, error) {
	return []sim.Action{sim.PushAt(now+d.Delay, d.NextHop, pkt)}, nil
}

// Event implements sim.NetObj. A Delay never self-schedules.
func (d *Delay) Event(selfID, fromID clock.NetObjId, now clock.Time, uid uint64) ([]sim.Action, error) {
	return nil, nil
}
