// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package rttwindow

import (
	"testing"

	"github.com/heistp/nddsim/clock"
)

func TestSRTTEwma(t *testing.T) {
	w := New(clock.FromSeconds(10), 64)
	w.NewRTTSample(clock.FromSeconds(0.1), clock.FromSeconds(0))
	if got := w.GetSRTT(); got != clock.FromSeconds(0.1) {
		t.Fatalf("first sample SRTT = %v, want 0.1s", got)
	}
	w.NewRTTSample(clock.FromSeconds(0.2), clock.FromSeconds(1))
	want := clock.Time((1-Alpha)*float64(clock.FromSeconds(0.1)) + Alpha*float64(clock.FromSeconds(0.2)))
	if got := w.GetSRTT(); got != want {
		t.Fatalf("SRTT after second sample = %v, want %v", got, want)
	}
}

func TestMinRTTEviction(t *testing.T) {
	w := New(clock.FromSeconds(1), 64)
	w.NewRTTSample(clock.FromSeconds(0.05), clock.FromSeconds(0))
	w.NewRTTSample(clock.FromSeconds(0.5), clock.FromSeconds(0.5))
	if min, ok := w.GetMinRTT(); !ok || min != clock.FromSeconds(0.05) {
		t.Fatalf("GetMinRTT() = %v,%v want 0.05s,true", min, ok)
	}
	// advancing past the 1s history period should evict the first sample
	w.ChangeHistPeriod(clock.FromSeconds(1), clock.FromSeconds(1.2))
	if min, ok := w.GetMinRTT(); !ok || min != clock.FromSeconds(0.5) {
		t.Fatalf("GetMinRTT() after eviction = %v,%v want 0.5s,true", min, ok)
	}
}
