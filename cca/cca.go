// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package cca defines the contract between a TCP sender and its pluggable
// congestion-control algorithm, keyed off an ack/loss-count shape since
// this simulator's Packet and Link carry no congestion marks.
package cca

import (
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/metrics"
)

// CongestionControl is implemented by every pluggable CCA.
type CongestionControl interface {
	// OnSend records bookkeeping after a data packet is transmitted.
	OnSend(now clock.Time, seq clock.SeqNum, uid clock.PktId)
	// OnAck processes a cumulative ack.
	OnAck(now clock.Time, cumAck clock.SeqNum, ackUID clock.PktId, rtt clock.Time, numLost uint64)
	// OnTimeout reacts to a retransmission timeout.
	OnTimeout()
	// GetCwnd returns the current congestion window, in packets.
	GetCwnd() uint64
	// GetIntersendTime returns the minimum spacing between transmissions.
	GetIntersendTime() clock.Time
	// Init is called once before the first packet is sent. reg may be
	// nil, in which case metric calls the CCA makes are no-ops.
	Init(name string, reg *metrics.Registry) error
	// Finish is called once after the simulation ends.
	Finish()
}
