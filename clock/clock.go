// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package clock defines the simulation's notion of time and the opaque,
// monotonically-increasing ids that address objects, packets and sequence
// numbers within a run.
package clock

import "fmt"

// Time is a non-negative count of microseconds since simulation start. It is
// totally ordered, and subtraction saturates at zero rather than wrapping.
type Time int64

// Infinity is the largest representable Time.
const Infinity = Time(1<<63 - 1)

// Sub returns t-o, saturating at 0 instead of going negative.
func (t Time) Sub(o Time) Time {
	if o >= t {
		return 0
	}
	return t - o
}

// Seconds returns t as a floating point number of seconds.
func (t Time) Seconds() float64 {
	return float64(t) / 1e6
}

// FromSeconds returns a Time for the given number of seconds.
func FromSeconds(s float64) Time {
	return Time(s * 1e6)
}

func (t Time) String() string {
	return fmt.Sprintf("%.6f", t.Seconds())
}

// NetObjId addresses a network object. The scheduler hands these out in
// ascending, consecutive order starting at 0, and never recycles one.
type NetObjId uint64

// Addr is an opaque, monotonically increasing address assigned to a network
// object for use as a packet source/destination, distinct from its NetObjId.
type Addr uint64

// SeqNum is a TCP-style sequence number, counted in packets rather than
// bytes for this simulator.
type SeqNum uint64

// PktId uniquely identifies a Packet for the life of the simulation.
type PktId uint64
