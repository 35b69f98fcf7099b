// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package netobj

import (
	"github.com/heistp/nddsim/cca"
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/sim"
	"github.com/heistp/nddsim/simerr"
	"github.com/heistp/nddsim/units"
)

// DataSize is the fixed size of every Data packet.
const DataSize units.Bytes = 1500

// Local event tags a TCPSender schedules on itself.
const (
	evtPace evtUID = iota
	evtTimeout
)

type evtUID = uint64

// TCPSender is a window/intersend-paced transmit loop driven by a
// pluggable cca.CongestionControl, so any implementation of that
// interface can be swapped in as the active algorithm.
//
// This sender never schedules its own retransmission timeout (Event(1)):
// retransmission and reliability are out of scope, so there is no RTO to
// model here. OnTimeout/Event(1) handling is kept to satisfy the
// CongestionControl contract, but nothing in this package triggers it.
type TCPSender struct {
	ownAddr  clock.Addr
	peerAddr clock.Addr
	nextHop  clock.NetObjId
	cca      cca.CongestionControl
	ids      PktIDSource

	lastSent    clock.SeqNum
	lastAcked   clock.SeqNum
	lastTxTime  clock.Time
	hasSent     bool
	txScheduled bool
}

// NewTCPSender returns a TCPSender at ownAddr sending to peerAddr via
// nextHop, driven by the given CongestionControl.
func NewTCPSender(ownAddr, peerAddr clock.Addr, nextHop clock.NetObjId, c cca.CongestionControl, ids PktIDSource) *TCPSender {
	return &TCPSender{ownAddr: ownAddr, peerAddr: peerAddr, nextHop: nextHop, cca: c, ids: ids}
}

// Start implements sim.Starter: the transmit loop begins as soon as the
// run starts, sending the initial window with nothing yet in flight.
func (s *TCPSender) Start(selfID clock.NetObjId) ([]sim.Action, error) {
	return s.transmit(selfID, 0), nil
}

// Push implements sim.NetObj: pkt is an Ack arriving for this sender's
// flow.
func (s *TCPSender) Push(selfID, fromID clock.NetObjId, now clock.Time, pkt sim.Packet) ([]sim.Action, error) {
	if pkt.AckSeq <= s.lastAcked {
		return nil, nil
	}
	if pkt.AckSeq > s.lastSent {
		return nil, simerr.New(simerr.InvariantViolation,
			"sender: ack %d beyond last sent %d", pkt.AckSeq, s.lastSent)
	}
	rtt := now.Sub(pkt.AckOrigSentTime)
	var numLost uint64
	if pkt.AckSeq != s.lastAcked+1 {
		numLost = uint64(pkt.AckSeq - s.lastAcked - 1)
	}
	s.lastAcked = pkt.AckSeq
	s.cca.OnAck(now, pkt.AckSeq, pkt.AckUID, rtt, numLost)
	return s.transmit(selfID, now), nil
}

// Event implements sim.NetObj: uid 0 is the paced-send timer clearing,
// uid 1 is a retransmission timeout (never scheduled by this sender, see
// the package doc comment, but handled for contract completeness).
func (s *TCPSender) Event(selfID, fromID clock.NetObjId, now clock.Time, uid uint64) ([]sim.Action, error) {
	switch uid {
	case evtPace:
		s.txScheduled = false
	case evtTimeout:
		s.cca.OnTimeout()
	}
	return s.transmit(selfID, now), nil
}

// transmit is the window/intersend-driven send decision: it sends data
// packets back-to-back as long as the congestion window has
// room and the intersend spacing has already elapsed, and otherwise
// self-schedules the next attempt for when it will have.
func (s *TCPSender) transmit(selfID clock.NetObjId, now clock.Time) []sim.Action {
	var acts []sim.Action
	for !s.txScheduled && uint64(s.lastSent-s.lastAcked) < s.cca.GetCwnd() {
		earliest := now
		if s.hasSent {
			earliest = s.lastTxTime + s.cca.GetIntersendTime()
		}
		if earliest > now {
			acts = append(acts, sim.EventAt(earliest, selfID, evtPace))
			s.txScheduled = true
			break
		}
		uid := s.ids.NextPktId()
		pkt := sim.Packet{
			UID:      uid,
			SentTime: now,
			Size:     DataSize,
			Src:      s.ownAddr,
			Dest:     s.peerAddr,
			Type:     sim.Data,
			SeqNum:   s.lastSent,
		}
		acts = append(acts, sim.PushAt(now, s.nextHop, pkt))
		s.cca.OnSend(now, s.lastSent, uid)
		s.lastSent++
		s.lastTxTime = now
		s.hasSent = true
	}
	return acts
}

// LastSent returns the last sequence number transmitted, for tests and
// introspection.
func (s *TCPSender) LastSent() clock.SeqNum { return s.lastSent }

// LastAcked returns the last cumulative ack processed.
func (s *TCPSender) LastAcked() clock.SeqNum { return s.lastAcked }
