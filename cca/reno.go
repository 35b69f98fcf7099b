// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package cca

import (
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/metrics"
)

// renoMinCwnd mirrors ndd.MinCwnd so the two CCAs are comparable at the
// same floor.
const renoMinCwnd = 8.0

// renoMinIntersend mirrors ndd.MinIntersend.
const renoMinIntersend = clock.Time(1000)

// Reno is a minimal loss-based AIMD with a packet-denominated cwnd,
// giving CongestionControl a second, simpler implementer alongside
// ndd.NDD.
type Reno struct {
	cwnd       float64
	ssthresh   float64
	inSlowStart bool
	srtt       clock.Time
	haveSRTT   bool
}

// NewReno returns a new Reno starting in slow start.
func NewReno() *Reno {
	return &Reno{
		cwnd:        renoMinCwnd,
		ssthresh:    1 << 20,
		inSlowStart: true,
	}
}

// OnSend implements CongestionControl.
func (r *Reno) OnSend(now clock.Time, seq clock.SeqNum, uid clock.PktId) {}

// OnAck implements CongestionControl.
func (r *Reno) OnAck(now clock.Time, cumAck clock.SeqNum, ackUID clock.PktId, rtt clock.Time, numLost uint64) {
	if !r.haveSRTT {
		r.srtt = rtt
		r.haveSRTT = true
	} else {
		r.srtt = clock.Time(0.875*float64(r.srtt) + 0.125*float64(rtt))
	}
	if numLost > 0 {
		r.ssthresh = r.cwnd / 2
		r.cwnd = max(renoMinCwnd, r.ssthresh)
		r.inSlowStart = false
		return
	}
	if r.inSlowStart {
		r.cwnd++
		if r.cwnd >= r.ssthresh {
			r.inSlowStart = false
		}
		return
	}
	// congestion avoidance: +1 packet per window of acks
	r.cwnd += 1 / r.cwnd
}

// OnTimeout implements CongestionControl.
func (r *Reno) OnTimeout() {
	r.ssthresh = max(renoMinCwnd, r.cwnd/2)
	r.cwnd = renoMinCwnd
	r.inSlowStart = true
}

// GetCwnd implements CongestionControl.
func (r *Reno) GetCwnd() uint64 {
	return uint64(r.cwnd + 0.5)
}

// GetIntersendTime implements CongestionControl.
func (r *Reno) GetIntersendTime() clock.Time {
	if r.cwnd <= 0 {
		return renoMinIntersend
	}
	it := clock.Time(float64(r.srtt) / r.cwnd)
	if it < renoMinIntersend {
		return renoMinIntersend
	}
	return it
}

// Init implements CongestionControl.
func (r *Reno) Init(name string, reg *metrics.Registry) error { return nil }

// Finish implements CongestionControl.
func (r *Reno) Finish() {}
