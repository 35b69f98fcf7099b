// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Command ccsim runs the discrete-event CCA simulator against a topology
// loaded from an optional YAML file, wiring the canonical
// n-senders -> link -> delay -> acker -> router -> senders topology.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/heistp/nddsim/cca"
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/config"
	"github.com/heistp/nddsim/metrics"
	"github.com/heistp/nddsim/ndd"
	"github.com/heistp/nddsim/netobj"
	"github.com/heistp/nddsim/sim"
	"github.com/heistp/nddsim/xlog"
)

func main() {
	var topoPath, ccaName string
	pflag.StringVar(&topoPath, "topology", "", "path to a YAML topology override file")
	pflag.StringVar(&ccaName, "cca", "ndd", "congestion control algorithm to use (ndd|reno)")
	pflag.Parse()

	if err := run(topoPath, ccaName, "."); err != nil {
		fmt.Fprintln(os.Stderr, "ccsim:", err)
		os.Exit(1)
	}
}

// run wires and drives one simulation. dataDir is where the metrics
// registry writes its CSV files on Finish; it is a separate parameter
// from the topology file so tests can redirect it to a scratch directory.
func run(topoPath, ccaName, dataDir string) error {
	top, err := config.Load(topoPath)
	if err != nil {
		return err
	}
	return runWithTopology(top, ccaName, dataDir)
}

// runWithTopology wires and drives one simulation from an already-built
// Topology, letting tests exercise the wiring without a YAML fixture.
func runWithTopology(top *config.Topology, ccaName, dataDir string) error {
	log := xlog.New()
	log.Logf(0, 0, "run %s: starting, %d sender(s)", log.RunID(), top.NumSenders)
	sched := sim.New(log)
	metricsCfg, err := loadMetricsConfig(top.MetricsConfig, dataDir)
	if err != nil {
		return err
	}
	reg := metrics.NewRegistry(metricsCfg)

	// Topology: n senders -> link -> delay -> acker -> router -> senders.
	// The scheduler hands out ids in ascending, consecutive order, so the
	// full id layout can be precomputed before any object is registered.
	linkID := sched.NextObjId()
	delayID := sched.NextObjId()
	ackerID := sched.NextObjId()
	firstSenderID := sched.NextObjId()
	for i := 1; i < top.NumSenders; i++ {
		sched.NextObjId()
	}
	routerID := sched.NextObjId()

	link := netobj.NewLink(top.Rate(), top.CapacityPkts, delayID, log, reg)
	if metricsCfg.Plots {
		link.Sojourn = &metrics.Plot{Title: "link sojourn time", XLabel: "time", YLabel: "sojourn (ms)"}
		if err := link.Sojourn.Open(fmt.Sprintf("%s/sojourn.xpl", dataDir)); err != nil {
			return err
		}
		defer link.Sojourn.Close()
		link.QueueLen = &metrics.Plot{Title: "link queue length", XLabel: "time", YLabel: "packets"}
		if err := link.QueueLen.Open(fmt.Sprintf("%s/qlen.xpl", dataDir)); err != nil {
			return err
		}
		defer link.QueueLen.Close()
	}
	delay := netobj.NewDelay(top.FlowDelay(), ackerID)
	ackerAddr := sched.NextAddr()
	acker := netobj.NewAcker(ackerAddr, routerID, sched)
	router := netobj.NewRouter(sched.NextAddr(), log)

	sched.RegisterObj(link)
	sched.RegisterObj(delay)
	sched.RegisterObj(acker)

	for i := 0; i < top.NumSenders; i++ {
		senderAddr := sched.NextAddr()
		senderID := firstSenderID + clock.NetObjId(i)
		c, err := newCCA(ccaName, i, top, reg, log, senderID)
		if err != nil {
			return err
		}
		sender := netobj.NewTCPSender(senderAddr, ackerAddr, linkID, c, sched)
		router.AddRoute(senderAddr, senderID)
		sched.RegisterObj(sender)
	}

	sched.RegisterObj(router)

	stop := top.Duration()
	if err := sched.Simulate(&stop); err != nil {
		return err
	}
	return reg.Finish()
}

// loadMetricsConfig reads the metrics Config named by a topology's
// metrics_config path, if any, overriding its data_dir with dataDir so
// tests can redirect output without editing the fixture. An unset path
// yields a Config with every metric enabled and plots off.
func loadMetricsConfig(path, dataDir string) (*metrics.Config, error) {
	if path == "" {
		return &metrics.Config{DataDir: dataDir}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := metrics.LoadConfig(data)
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dataDir
	return cfg, nil
}

// newCCA constructs the configured congestion-control algorithm, naming
// its metric stream by flow index so NDD's CSV rows from different flows
// don't collide. selfID identifies the sender that will own this CCA, for
// NDD's phase-transition log lines.
func newCCA(name string, flowIndex int, top *config.Topology, reg *metrics.Registry, log *xlog.Logger, selfID clock.NetObjId) (cca.CongestionControl, error) {
	metricName := fmt.Sprintf("%s-%d", name, flowIndex)
	switch name {
	case "reno":
		c := cca.NewReno()
		return c, c.Init(metricName, reg)
	case "ndd", "":
		c := ndd.NewNDD(top.Variant(), top.Seed+int64(flowIndex))
		c.SetLogContext(log, selfID)
		return c, c.Init(metricName, reg)
	default:
		return nil, fmt.Errorf("unknown cca %q", name)
	}
}
