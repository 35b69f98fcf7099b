// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/heistp/nddsim/ndd"
)

// TestDefaultTopology checks the compiled-in defaults translate into the
// expected run duration and NDD variant.
func TestDefaultTopology(t *testing.T) {
	top := Default()
	if top.Duration() != DefaultDuration {
		t.Fatalf("Duration() = %v, want %v", top.Duration(), DefaultDuration)
	}
	if top.Variant() != ndd.SlowFSM {
		t.Fatalf("Variant() = %v, want SlowFSM", top.Variant())
	}
}

// TestLoadOverridesDefaults checks a YAML file only needs to name the
// fields it changes; everything else keeps the compiled-in default.
func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topology.yaml")
	if err := os.WriteFile(path, []byte("num_senders: 4\nndd_variant: fast\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	top, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if top.NumSenders != 4 {
		t.Fatalf("NumSenders = %d, want 4", top.NumSenders)
	}
	if top.Variant() != ndd.Fast {
		t.Fatalf("Variant() = %v, want Fast", top.Variant())
	}
	if top.CapacityPkts != DefaultCapacity {
		t.Fatalf("CapacityPkts = %d, want unchanged default %d", top.CapacityPkts, DefaultCapacity)
	}
}

// TestLoadEmptyPathReturnsDefaults checks Load("") is equivalent to
// Default(), for callers that never supply an override file.
func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	top, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if top.NumSenders != DefaultNumSenders {
		t.Fatalf("NumSenders = %d, want %d", top.NumSenders, DefaultNumSenders)
	}
}
