// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package config loads the topology this simulator runs, layering an
// optional YAML override file over compiled-in defaults, so a run can be
// reconfigured without a recompile.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/ndd"
	"github.com/heistp/nddsim/simerr"
	"github.com/heistp/nddsim/units"
)

// Defaults describe a single 1Gbps bottleneck, 1000-packet buffer, 20ms
// per-flow delay, 30s run.
const (
	DefaultRate        = 1000 * units.Mbps
	DefaultCapacity    = 1000
	DefaultFlowDelay   = clock.Time(20 * time.Millisecond / time.Microsecond)
	DefaultDuration    = clock.Time(30 * time.Second / time.Microsecond)
	DefaultNumSenders  = 1
	DefaultNDDVariant  = "slow_fsm"
	DefaultSeed  int64 = 1
)

// Topology is the set of knobs needed to wire up a run: sender count,
// bottleneck link, per-flow propagation delay, NDD variant/seed and run
// length.
type Topology struct {
	NumSenders    int     `yaml:"num_senders"`
	RateBps       float64 `yaml:"rate_bps"`
	CapacityPkts  int     `yaml:"capacity_pkts"`
	FlowDelayUsec int64   `yaml:"flow_delay_usec"`
	DurationUsec  int64   `yaml:"duration_usec"`
	NDDVariant    string  `yaml:"ndd_variant"`
	Seed          int64   `yaml:"seed"`
	MetricsConfig string  `yaml:"metrics_config"`
}

// Default returns the compiled-in Topology baseline: one sender, a
// 1Gbps/1000-packet bottleneck, 20ms delay, 30s run, the FSM NDD variant.
func Default() *Topology {
	return &Topology{
		NumSenders:    DefaultNumSenders,
		RateBps:       DefaultRate.Bps(),
		CapacityPkts:  DefaultCapacity,
		FlowDelayUsec: int64(DefaultFlowDelay),
		DurationUsec:  int64(DefaultDuration),
		NDDVariant:    DefaultNDDVariant,
		Seed:          DefaultSeed,
	}
}

// Load reads a Topology from a YAML file at path, starting from Default()
// so an override file only needs to name the fields it changes.
func Load(path string) (*Topology, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, simerr.Wrap(simerr.ConfigError, err, "config: read "+path)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, simerr.Wrap(simerr.ConfigError, err, "config: parse "+path)
	}
	return t, nil
}

// Rate returns the configured bottleneck rate as a units.Bitrate.
func (t *Topology) Rate() units.Bitrate {
	return units.Bitrate(t.RateBps)
}

// FlowDelay returns the per-flow one-way propagation delay.
func (t *Topology) FlowDelay() clock.Time {
	return clock.Time(t.FlowDelayUsec)
}

// Duration returns the configured run length.
func (t *Topology) Duration() clock.Time {
	return clock.Time(t.DurationUsec)
}

// Variant parses NDDVariant into an ndd.Variant, defaulting to SlowFSM on
// an empty or unrecognized value rather than erroring, since it is a
// compiled-in-default-backed knob, not a strict external contract.
func (t *Topology) Variant() ndd.Variant {
	switch t.NDDVariant {
	case "fast":
		return ndd.Fast
	case "slow":
		return ndd.Slow
	default:
		return ndd.SlowFSM
	}
}
