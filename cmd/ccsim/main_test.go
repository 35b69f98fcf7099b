// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package main

import (
	"testing"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/config"
)

// TestRunSingleSenderTerminates checks that a single sender over a
// 1.5MB/s (12Mbps)/1000-packet/10ms-delay bottleneck terminates cleanly within 2s,
// with no UnroutableDestination error.
func TestRunSingleSenderTerminates(t *testing.T) {
	top := config.Default()
	top.NumSenders = 1
	top.RateBps = 1_500_000 * 8
	top.CapacityPkts = 1000
	top.FlowDelayUsec = 10_000
	top.DurationUsec = int64(2 * clock.Time(1_000_000))
	if err := runWithTopology(top, "ndd", t.TempDir()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

// TestRunTwoSendersShareBottleneck checks that a 2s run with two senders
// sharing one bottleneck link completes without error.
func TestRunTwoSendersShareBottleneck(t *testing.T) {
	top := config.Default()
	top.NumSenders = 2
	top.RateBps = 1_500_000 * 8
	top.CapacityPkts = 1000
	top.FlowDelayUsec = 10_000
	top.DurationUsec = int64(2 * clock.Time(1_000_000))
	if err := runWithTopology(top, "ndd", t.TempDir()); err != nil {
		t.Fatalf("run: %v", err)
	}
}
