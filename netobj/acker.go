// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package netobj

import (
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/sim"
	"github.com/heistp/nddsim/units"
)

// AckSize is the fixed size of every Ack packet.
const AckSize units.Bytes = 40

// PktIDSource issues fresh PktIds, satisfied by *sim.Scheduler. Acker and
// TCPSender take one at construction rather than holding a reference to
// another NetObj, keeping object-to-object links id-only, never direct
// references, while still letting packet construction mint unique ids.
type PktIDSource interface {
	NextPktId() clock.PktId
}

// Acker turns arriving Data packets into cumulative Acks. It is a
// stateless cumulative-ack generator: no delayed acks, no reordering
// buffer, no congestion marking.
type Acker struct {
	Addr    clock.Addr
	NextHop clock.NetObjId

	ids PktIDSource
}

// NewAcker returns an Acker at addr, forwarding generated Acks to nextHop.
func NewAcker(addr clock.Addr, nextHop clock.NetObjId, ids PktIDSource) *Acker {
	return &Acker{Addr: addr, NextHop: nextHop, ids: ids}
}

// Push implements sim.NetObj.
func (a *Acker) Push(selfID, fromID clock.NetObjId, now clock.Time, pkt sim.Packet) ([]sim.Action, error) {
	ack := sim.Packet{
		UID:             a.ids.NextPktId(),
		SentTime:        now,
		Size:            AckSize,
		Src:             a.Addr,
		Dest:            pkt.Src,
		Type:            sim.Ack,
		AckOrigSentTime: pkt.SentTime,
		AckUID:          pkt.UID,
		AckSeq:          pkt.SeqNum + 1,
	}
	return []sim.Action{sim.PushAt(now, a.NextHop, ack)}, nil
}

// Event implements sim.NetObj. An Acker never self-schedules.
func (a *Acker) Event(selfID, fromID clock.NetObjId, now clock.Time, uid uint64) ([]sim.Action, error) {
	return nil, nil
}
