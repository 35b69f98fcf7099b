// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package ndd

import "github.com/heistp/nddsim/clock"

// Action is one of the six states NDD's per-step state machine can be in.
type Action int

const (
	SlowStart Action = iota
	FirstCruise
	Cruise
	FirstProbe
	Probe
	Drain
)

func (a Action) String() string {
	switch a {
	case SlowStart:
		return "SlowStart"
	case FirstCruise:
		return "FirstCruise"
	case Cruise:
		return "Cruise"
	case FirstProbe:
		return "FirstProbe"
	case Probe:
		return "Probe"
	case Drain:
		return "Drain"
	default:
		return "Unknown"
	}
}

// actionFromPhase maps a phase (mod CycleSteps) to the action for that
// step.
func actionFromPhase(phase uint32) Action {
	p := phase % CycleSteps
	switch {
	case p == 0:
		return FirstCruise
	case p < CruiseSteps:
		return Cruise
	case p == CruiseSteps:
		return FirstProbe
	case p < CruiseSteps+ProbeSteps:
		return Probe
	default:
		return Drain
	}
}

// Record is one send epoch's bookkeeping. SndEndSeq/SndEndTime advance with
// each send while the record is still open; every other field, once set, is
// never overwritten, and a record closes exactly once on each half (send,
// then ack).
type Record struct {
	SndBegSeq  clock.SeqNum
	SndBegTime clock.Time
	SndEndSeq  clock.SeqNum
	SndEndTime clock.Time
	HasSndEnd  bool

	AckBegSeq  clock.SeqNum
	AckBegTime clock.Time
	HasAckBeg  bool
	AckEndSeq  clock.SeqNum
	AckEndTime clock.Time
	HasAckEnd  bool

	SndComplete bool
	AckComplete bool

	CwndAtOpen   float64
	Phase        uint32
	ActionAtOpen Action
}

// SndRate returns the send rate in packets/sec over [SndBegTime,
// SndEndTime). Only meaningful once HasSndEnd is true.
func (r *Record) SndRate() float64 {
	dur := r.SndEndTime.Sub(r.SndBegTime).Seconds()
	return float64(r.SndEndSeq-r.SndBegSeq) / dur
}

// AckRate returns the ack rate in packets/sec over [AckBegTime,
// AckEndTime). Only meaningful once AckComplete is true.
func (r *Record) AckRate() float64 {
	dur := r.AckEndTime.Sub(r.AckBegTime).Seconds()
	return float64(r.AckEndSeq-r.AckBegSeq) / dur
}

// CEstimate returns the estimated bottleneck capacity given fair-share
// estimate f. Requires SndRate() > AckRate().
func (r *Record) CEstimate(f float64) float64 {
	snd, ack := r.SndRate(), r.AckRate()
	return (snd*ack - f*ack) / (snd - ack)
}

// NEstimate returns the estimated flow count given fair-share estimate f.
func (r *Record) NEstimate(f float64) float64 {
	return r.CEstimate(f) / f
}

// AckedPkts returns the number of packets acked within this record's ack
// span.
func (r *Record) AckedPkts() uint64 {
	return uint64(r.AckEndSeq - r.AckBegSeq)
}

// AckDuration returns the ack span's duration in seconds.
func (r *Record) AckDuration() float64 {
	return r.AckEndTime.Sub(r.AckBegTime).Seconds()
}
