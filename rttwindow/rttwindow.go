// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package rttwindow implements the sliding minRTT / smoothed RTT summariser
// used by the congestion-control layer. The RFC 6298 EWMA constant below
// matches conventional TCP RTT smoothing.
package rttwindow

import (
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/ring"
)

// Alpha is the EWMA smoothing coefficient for srtt, as in RFC 6298.
const Alpha = 0.125

// sample is one RTT observation with the Time it was taken.
type sample struct {
	rtt clock.Time
	at  clock.Time
}

// Window is a sliding-window RTT summariser. The zero value is not usable;
// construct with New.
type Window struct {
	samples    *ring.Ring[sample]
	histPeriod clock.Time
	srtt       clock.Time
	haveSRTT   bool
}

// New returns a Window with an initial history period. Capacity bounds how
// many samples are retained regardless of the history period, purely as a
// memory guard; it should be generous relative to expected sample rate.
func New(initialPeriod clock.Time, capacity int) *Window {
	return &Window{
		samples:    ring.New[sample](capacity),
		histPeriod: initialPeriod,
	}
}

// NewRTTSample records a new RTT observation at time now, updating the
// smoothed RTT via EWMA and admitting the sample into the sliding window.
func (w *Window) NewRTTSample(rtt, now clock.Time) {
	if !w.haveSRTT {
		w.srtt = rtt
		w.haveSRTT = true
	} else {
		w.srtt = clock.Time((1-Alpha)*float64(w.srtt) + Alpha*float64(rtt))
	}
	w.samples.PushBack(sample{rtt, now})
	w.evict(now)
}

// ChangeHistPeriod updates the window's history duration (it may grow or
// shrink) and immediately evicts samples that fall outside it.
func (w *Window) ChangeHistPeriod(period, now clock.Time) {
	w.histPeriod = period
	w.evict(now)
}

func (w *Window) evict(now clock.Time) {
	cutoff := now.Sub(w.histPeriod)
	w.samples.DropWhile(func(s sample) bool { return s.at >= cutoff })
}

// GetMinRTT returns the minimum RTT among in-window samples, and false if
// the window holds no samples.
func (w *Window) GetMinRTT() (clock.Time, bool) {
	if w.samples.Len() == 0 {
		return 0, false
	}
	min := clock.Infinity
	w.samples.Each(func(s sample) {
		if s.rtt < min {
			min = s.rtt
		}
	})
	return min, true
}

// GetSRTT returns the smoothed RTT, or 0 if no sample has ever been taken.
func (w *Window) GetSRTT() clock.Time {
	return w.srtt
}
