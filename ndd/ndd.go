// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package ndd implements the NDD congestion-control algorithm: an
// RTT-phased estimator of bottleneck fair-share rate, capacity and flow
// count, driving a sender's congestion window through a repeating
// cruise/probe/drain cycle.
package ndd

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/metrics"
	"github.com/heistp/nddsim/ring"
	"github.com/heistp/nddsim/rttwindow"
	"github.com/heistp/nddsim/xlog"
)

// gaugeSafeName rewrites name into a valid prometheus metric name
// component by replacing any byte outside [A-Za-z0-9_] with an
// underscore.
func gaugeSafeName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, name)
}

// Tunables for the cruise/probe/drain cycle.
const (
	MinCwnd      = 8.0
	MinIntersend = clock.Time(1000)
	ProbeGain    = 1.25
	Multiplier   = 1.125

	CruiseSteps = 10
	ProbeSteps  = 2
	DrainSteps  = 1
	CycleSteps  = CruiseSteps + ProbeSteps + DrainSteps // 13

	minHistPeriod = clock.Time(10_000_000) // 10s floor on the srtt/minRTT window
)

// Variant selects whether a record closes on cum_ack or on cum_ack-1.
// "Slow" and "SlowFSM" both use cum_ack-1 (the cumulative ack names the
// next expected sequence number, so the last packet actually acked is one
// less); "Fast" skips that adjustment and treats cum_ack as already
// naming the closing boundary. The rest of NDD's logic (the FSM, the
// estimators, the floors) is identical across all three variants.
type Variant int

const (
	SlowFSM Variant = iota
	Slow
	Fast
)

func (v Variant) ackOffset() clock.SeqNum {
	if v == Fast {
		return 0
	}
	return 1
}

func (v Variant) String() string {
	switch v {
	case SlowFSM:
		return "SlowFSM"
	case Slow:
		return "Slow"
	case Fast:
		return "Fast"
	default:
		return "Unknown"
	}
}

// NDD implements cca.CongestionControl.
type NDD struct {
	variant Variant
	rng     *rand.Rand
	log     *xlog.Logger
	selfID  clock.NetObjId

	baseRTT *rttwindow.Window
	minRTT  clock.Time
	records *ring.Ring[*Record]

	cwnd       float64
	cruiseCwnd float64
	phase      uint32
	action     Action

	fEstimate   float64
	nEstimate   float64
	targetDelay float64

	reg       *metrics.Registry
	ackMetric metrics.Handle
	cwndGauge prometheus.Gauge
}

// NewNDD returns a new NDD of the given variant. seed deterministically
// drives the random initial phase offset, so that identical seeds produce
// identical runs.
func NewNDD(variant Variant, seed int64) *NDD {
	return &NDD{
		variant:     variant,
		rng:         rand.New(rand.NewSource(seed)),
		baseRTT:     rttwindow.New(minHistPeriod, CycleSteps*4),
		minRTT:      clock.FromSeconds(10),
		records:     ring.New[*Record](CycleSteps),
		cwnd:        MinCwnd,
		action:      SlowStart,
		nEstimate:   1,
		targetDelay: 10.0,
	}
}

// SetLogContext attaches log for NDD to record phase transitions against,
// tagged with selfID as the owning sender's object id. Unset by default, in
// which case phase transitions are not logged.
func (n *NDD) SetLogContext(log *xlog.Logger, selfID clock.NetObjId) {
	n.log = log
	n.selfID = selfID
}

// Init implements cca.CongestionControl. It registers the per-flow
// "<name>-ndd-ack" CSV metric and randomizes the initial phase mod CycleSteps, to decorrelate
// concurrent flows' cruise/probe cycles.
func (n *NDD) Init(name string, reg *metrics.Registry) error {
	n.reg = reg
	n.ackMetric = reg.RegisterCSVMetric(name+"-ndd-ack", []string{
		"now", "cwnd", "phase", "action", "f_estimate", "n_estimate",
		"target_delay", "srtt", "min_rtt", "average_delay", "inst_delay",
	})
	n.cwndGauge = reg.Gauge(fmt.Sprintf("ndd_cwnd_%s", gaugeSafeName(name)), "current congestion window, in packets")
	n.phase = uint32(n.rng.Intn(CycleSteps))
	n.action = actionFromPhase(n.phase)
	return nil
}

// Finish implements cca.CongestionControl. Metric file output is owned by
// the shared Registry, finalized once by the caller wiring the topology,
// so this is a no-op.
func (n *NDD) Finish() {}

// OnSend implements cca.CongestionControl. It opens a new record when the
// previous one has finished sending, or extends the open record's send
// span otherwise.
func (n *NDD) OnSend(now clock.Time, seq clock.SeqNum, uid clock.PktId) {
	if n.records.Len() == 0 || n.records.Back().SndComplete {
		n.records.PushBack(&Record{
			SndBegSeq:    seq,
			SndBegTime:   now,
			CwndAtOpen:   n.cwnd,
			Phase:        n.phase,
			ActionAtOpen: n.action,
		})
		return
	}
	last := n.records.Back()
	last.SndEndSeq = seq
	last.SndEndTime = now
	last.HasSndEnd = true
}

// OnAck implements cca.CongestionControl.
func (n *NDD) OnAck(now clock.Time, cumAck clock.SeqNum, ackUID clock.PktId, rtt clock.Time, numLost uint64) {
	n.baseRTT.NewRTTSample(rtt, now)
	srtt := n.baseRTT.GetSRTT()
	period := clock.Time(30 * srtt.Seconds() * 1e6)
	if period < minHistPeriod {
		period = minHistPeriod
	}
	n.baseRTT.ChangeHistPeriod(period, now)

	if rtt < n.minRTT {
		n.minRTT = rtt
	}
	minRTT := n.minRTT
	averageDelay := srtt.Seconds() - minRTT.Seconds()
	instDelay := rtt.Seconds() - minRTT.Seconds()

	last := n.records.Back()
	boundary := cumAck - n.variant.ackOffset()
	updateCwnd := false
	switch {
	case boundary == last.SndBegSeq:
		last.SndComplete = true
		last.AckBegSeq = boundary
		last.AckBegTime = now
		last.HasAckBeg = true
		updateCwnd = true
	case boundary < last.SndBegSeq && n.records.Len() >= 2:
		slr := n.records.At(n.records.Len() - 2)
		if last.HasSndEnd && boundary == slr.SndEndSeq {
			slr.AckComplete = true
			slr.AckEndSeq = boundary
			slr.AckEndTime = now
			slr.HasAckEnd = true
		}
	}

	if !updateCwnd {
		return
	}

	n.phase = (n.phase + 1) % CycleSteps
	n.action = actionFromPhase(n.phase)

	haveComplete := false
	n.records.EachReverse(func(r *Record) bool {
		if r.AckComplete {
			haveComplete = true
			return false
		}
		return true
	})
	if !haveComplete {
		n.action = SlowStart
	}
	if n.log != nil {
		n.log.Logf(now, n.selfID, "ndd: phase %d, action %s", n.phase, n.action)
	}

	switch n.action {
	case SlowStart:
		if averageDelay <= 1.5*minRTT.Seconds() {
			n.cwnd *= 2
		} else {
			n.cwnd *= 0.5
		}
		n.cruiseCwnd = n.cwnd
	case FirstCruise:
		n.firstCruise(minRTT, averageDelay)
		n.cruiseCwnd = n.cwnd
	case Cruise:
	case FirstProbe:
		n.cwnd *= ProbeGain
	case Probe:
	case Drain:
		n.cwnd = n.cruiseCwnd
	}
	if n.cwnd < MinCwnd {
		n.cwnd = MinCwnd
	}
	if n.cwndGauge != nil {
		n.cwndGauge.Set(n.cwnd)
	}

	n.logAckMetric(now, srtt, minRTT, averageDelay, instDelay)
}

// firstCruise recomputes f_estimate and n_estimate from the prior cycle's
// records and retargets cwnd halfway toward the delay-based target,
// clamped to Multiplier per step.
func (n *NDD) firstCruise(minRTT clock.Time, averageDelay float64) {
	var lastProbe *Record
	n.records.EachReverse(func(r *Record) bool {
		if r.AckComplete && r.ActionAtOpen == Probe {
			lastProbe = r
			return false
		}
		return true
	})
	if lastProbe == nil {
		return
	}

	var acked uint64
	var dur float64
	count := 0
	n.records.EachReverse(func(r *Record) bool {
		if r.AckComplete && r.ActionAtOpen == Cruise {
			acked += r.AckedPkts()
			dur += r.AckDuration()
		}
		count++
		return count <= CruiseSteps/2
	})
	if dur <= 0 {
		return
	}
	n.fEstimate = float64(acked) / dur

	if lastProbe.AckRate() >= lastProbe.SndRate() {
		n.nEstimate = 1
	} else {
		n.nEstimate = lastProbe.NEstimate(n.fEstimate)
	}
	n.targetDelay = n.nEstimate * minRTT.Seconds()

	if averageDelay <= 0 {
		return
	}
	targetCwnd := n.cwnd * n.targetDelay / averageDelay
	maxCwnd := Multiplier * n.cwnd
	minCwnd := n.cwnd / Multiplier
	meanCwnd := (n.cwnd + targetCwnd) / 2
	switch {
	case meanCwnd > maxCwnd:
		n.cwnd = maxCwnd
	case meanCwnd < minCwnd:
		n.cwnd = minCwnd
	default:
		n.cwnd = meanCwnd
	}
}

// OnTimeout implements cca.CongestionControl. Matches the reference's
// unconditional reset; the result is not re-floored to MinCwnd until the
// next ack closes a record.
func (n *NDD) OnTimeout() {
	n.cwnd = 2
	if n.cwndGauge != nil {
		n.cwndGauge.Set(n.cwnd)
	}
}

// GetCwnd implements cca.CongestionControl.
func (n *NDD) GetCwnd() uint64 {
	return uint64(n.cwnd + 0.5)
}

// GetIntersendTime implements cca.CongestionControl.
func (n *NDD) GetIntersendTime() clock.Time {
	srtt := n.baseRTT.GetSRTT()
	it := clock.Time(2e6 * srtt.Seconds() / n.cwnd)
	if it < MinIntersend {
		return MinIntersend
	}
	return it
}

func (n *NDD) logAckMetric(now, srtt, minRTT clock.Time, averageDelay, instDelay float64) {
	if n.reg == nil {
		return
	}
	n.reg.Log(n.ackMetric, []string{
		now.String(),
		itoa(n.GetCwnd()),
		itoa(uint64(n.phase)),
		n.action.String(),
		ftoa(n.fEstimate),
		ftoa(n.nEstimate),
		ftoa(n.targetDelay),
		srtt.String(),
		minRTT.String(),
		ftoa(averageDelay),
		ftoa(instDelay),
	})
}
