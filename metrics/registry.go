// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package metrics is the simulator's metric sink: RegisterCSVMetric
// returns a handle, Log(handle, row) appends a row, and Finish writes
// every enabled metric's CSV file. A Registry is optional; a nil
// *Registry makes every call a no-op, since metrics configuration may be
// absent. Alongside the CSV sink, Gauge exposes a live prometheus gauge
// for values callers want to observe as the run progresses rather than
// only after it finishes.
package metrics

import (
	"bufio"
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heistp/nddsim/simerr"
)

// Handle identifies a registered CSV metric.
type Handle int

type csvMetric struct {
	name    string
	columns []string
	rows    [][]string
	enabled bool
}

// Registry is a set of named CSV metrics plus a parallel prometheus
// registry for live gauges. The zero value is not usable; construct with
// NewRegistry, or pass a nil *Registry to make every operation a no-op.
type Registry struct {
	cfg     *Config
	metrics []*csvMetric
	prom    *prometheus.Registry
	gauges  map[string]prometheus.Gauge
}

// NewRegistry returns a Registry configured by cfg. If cfg is nil, every
// metric defaults to enabled and data_dir defaults to the working
// directory.
func NewRegistry(cfg *Config) *Registry {
	if cfg == nil {
		cfg = &Config{DataDir: "."}
	}
	return &Registry{
		cfg:    cfg,
		prom:   prometheus.NewRegistry(),
		gauges: make(map[string]prometheus.Gauge),
	}
}

// RegisterCSVMetric registers a new CSV metric with the given column
// names, returning a Handle for subsequent Log calls. Enablement is
// decided now, from the registry's filters.
func (r *Registry) RegisterCSVMetric(name string, columns []string) Handle {
	if r == nil {
		return Handle(-1)
	}
	m := &csvMetric{name: name, columns: columns, enabled: r.cfg.enabled(name)}
	r.metrics = append(r.metrics, m)
	return Handle(len(r.metrics) - 1)
}

// Log appends row to the metric identified by h. row is ignored if r is
// nil, if h is not a handle r issued (such as the Handle(-1) a nil
// Registry returns), or if the metric was disabled by filter.
func (r *Registry) Log(h Handle, row []string) {
	if r == nil || h < 0 || int(h) >= len(r.metrics) {
		return
	}
	m := r.metrics[h]
	if !m.enabled {
		return
	}
	m.rows = append(m.rows, row)
}

// Gauge returns (creating if necessary) a prometheus gauge registered
// under name, for components that want a live value alongside their CSV
// history. Returns nil if r is nil.
func (r *Registry) Gauge(name, help string) prometheus.Gauge {
	if r == nil {
		return nil
	}
	if g, ok := r.gauges[name]; ok {
		return g
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	r.prom.MustRegister(g)
	r.gauges[name] = g
	return g
}

// Finish writes every enabled metric's rows to <data_dir>/<name>.csv.
func (r *Registry) Finish() error {
	if r == nil {
		return nil
	}
	for _, m := range r.metrics {
		if !m.enabled {
			continue
		}
		if err := m.writeCSV(r.cfg.DataDir); err != nil {
			return err
		}
	}
	return nil
}

func (m *csvMetric) writeCSV(dataDir string) error {
	path := filepath.Join(dataDir, m.name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return simerr.Wrap(simerr.ConfigError, err, "metrics: create "+path)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	w := csv.NewWriter(bw)
	if err := w.Write(m.columns); err != nil {
		return simerr.Wrap(simerr.ConfigError, err, "metrics: write header "+path)
	}
	for _, row := range m.rows {
		if err := w.Write(row); err != nil {
			return simerr.Wrap(simerr.ConfigError, err, "metrics: write row "+path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return simerr.Wrap(simerr.ConfigError, err, "metrics: flush "+path)
	}
	return bw.Flush()
}

// enabled evaluates cfg's filter list against name, first match wins;
// metrics default to enabled when no filter matches.
func (c *Config) enabled(name string) bool {
	for _, f := range c.Filters {
		re, err := regexp.Compile(f.Regex)
		if err != nil {
			continue
		}
		if re.MatchString(name) {
			return f.Enabled
		}
	}
	return true
}
