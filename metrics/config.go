// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package metrics

import (
	"encoding/json"

	"github.com/heistp/nddsim/simerr"
)

// Filter enables or disables metrics whose name matches Regex.
type Filter struct {
	Regex   string `json:"regex"`
	Enabled bool   `json:"enabled"`
}

// Config is the metrics registry's configuration, a JSON object:
// {data_dir, filters:[{regex, enabled}], plots}. encoding/json is used
// directly since this is a small, stable on-disk contract.
type Config struct {
	DataDir string   `json:"data_dir"`
	Filters []Filter `json:"filters"`

	// Plots enables the xplot-format sojourn/queue-length time series
	// written by netobj.Link. Off by default, since a full run's dot
	// count grows with simulated duration.
	Plots bool `json:"plots"`
}

// LoadConfig parses a metrics Config from JSON bytes.
func LoadConfig(data []byte) (*Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, simerr.Wrap(simerr.ConfigError, err, "metrics: parse config")
	}
	return &c, nil
}
