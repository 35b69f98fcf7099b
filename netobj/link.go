// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package netobj implements the leaf network objects the simulator wires
// into a topology: Link, Delay, Acker, Router and TCPSender, each a
// sim.NetObj.
package netobj

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/metrics"
	"github.com/heistp/nddsim/sim"
	"github.com/heistp/nddsim/simerr"
	"github.com/heistp/nddsim/units"
	"github.com/heistp/nddsim/xlog"
)

// linkDrainUID is the only local event tag a Link ever schedules.
const linkDrainUID = 0

// Link is a rate-limited FIFO with a bounded packet buffer and tail drop:
// no pluggable marking policy, it only enqueues, drains at Rate, and
// drops silently on overflow.
type Link struct {
	Rate     units.Bitrate
	Capacity int
	NextHop  clock.NetObjId

	// Sojourn and QueueLen are optional diagnostic plots. Both are nil by
	// default, a no-op in that state.
	Sojourn  *metrics.Plot
	QueueLen *metrics.Plot

	buf      []sim.Packet
	enqueued []clock.Time
	dropped  uint64
	sent     uint64
	log      *xlog.Logger

	queueLenGauge prometheus.Gauge
	droppedGauge  prometheus.Gauge
}

// NewLink returns a Link draining toward nextHop at rate, holding at most
// capacity packets. reg may be nil, in which case the link's prometheus
// gauges are never created and every gauge update is a no-op.
func NewLink(rate units.Bitrate, capacity int, nextHop clock.NetObjId, log *xlog.Logger, reg *metrics.Registry) *Link {
	l := &Link{Rate: rate, Capacity: capacity, NextHop: nextHop, log: log}
	l.queueLenGauge = reg.Gauge("link_queue_length", "current link buffer occupancy, in packets")
	l.droppedGauge = reg.Gauge("link_dropped_total", "total packets tail-dropped by the link")
	return l
}

// Push implements sim.NetObj. A full buffer drops pkt silently; packet
// drops at a link are not errors. An empty-to-nonempty transition arms
// the single drain timer; the invariant of at most one outstanding drain
// event per nonempty buffer is maintained by only arming here and in
// Event, never both.
func (l *Link) Push(selfID, fromID clock.NetObjId, now clock.Time, pkt sim.Packet) ([]sim.Action, error) {
	if len(l.buf) >= l.Capacity {
		l.dropped++
		if l.log != nil {
			l.log.Warnf(now, selfID, "link: drop, buffer full (capacity %d)", l.Capacity)
		}
		if l.droppedGauge != nil {
			l.droppedGauge.Set(float64(l.dropped))
		}
		return nil, nil
	}
	wasEmpty := len(l.buf) == 0
	l.buf = append(l.buf, pkt)
	l.enqueued = append(l.enqueued, now)
	if l.QueueLen != nil {
		l.QueueLen.Dot(now, float64(len(l.buf)), metrics.ColorWhite)
	}
	if l.queueLenGauge != nil {
		l.queueLenGauge.Set(float64(len(l.buf)))
	}
	if !wasEmpty {
		return nil, nil
	}
	return []sim.Action{sim.EventAt(now+l.drainTime(pkt), selfID, linkDrainUID)}, nil
}

// Event implements sim.NetObj. It drains the head of the buffer toward
// NextHop and, if packets remain, re-arms the drain timer from the new
// head. A drain event on an empty buffer aborts the run with
// InvariantViolation.
func (l *Link) Event(selfID, fromID clock.NetObjId, now clock.Time, uid uint64) ([]sim.Action, error) {
	if len(l.buf) == 0 {
		return nil, simerr.New(simerr.InvariantViolation,
			"link: drain event on empty buffer")
	}
	pkt := l.buf[0]
	enqueuedAt := l.enqueued[0]
	l.buf = l.buf[1:]
	l.enqueued = l.enqueued[1:]
	l.sent++
	if l.Sojourn != nil {
		l.Sojourn.Dot(now, now.Sub(enqueuedAt).Seconds()*1000, metrics.ColorWhite)
	}
	if l.QueueLen != nil {
		l.QueueLen.Dot(now, float64(len(l.buf)), metrics.ColorWhite)
	}
	if l.queueLenGauge != nil {
		l.queueLenGauge.Set(float64(len(l.buf)))
	}
	acts := []sim.Action{sim.PushAt(now, l.NextHop, pkt)}
	if len(l.buf) > 0 {
		acts = append(acts, sim.EventAt(now+l.drainTime(l.buf[0]), selfID, linkDrainUID))
	}
	return acts, nil
}

// drainTime returns the transmit time of pkt at Rate, in microseconds.
func (l *Link) drainTime(pkt sim.Packet) clock.Time {
	return clock.FromSeconds(units.TransferTimeSeconds(l.Rate, pkt.Size))
}

// Len returns the current buffer occupancy, for tests and introspection.
func (l *Link) Len() int { return len(l.buf) }

// Dropped returns the total number of packets tail-dropped so far.
func (l *Link) Dropped() uint64 { return l.dropped }
