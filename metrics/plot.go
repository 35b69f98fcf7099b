// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package metrics

import (
	"bufio"
	"fmt"
	"os"
	"text/template"

	"github.com/heistp/nddsim/clock"
)

// an optional rendered plot: an xplot format time series writer.
const plotHeader = `double double
title
{{.Title}}
{{if .XLabel -}}
xlabel
{{.XLabel}}
{{end -}}
{{if .YLabel -}}
ylabel
{{.YLabel}}
{{end -}}
invisible 0 0
`

// Color selects a plotted point's rendered color.
type Color int

const (
	ColorWhite Color = iota
	ColorYellow
	ColorRed
)

// Plot is an xplot-format time series file, written incrementally as
// points are produced.
type Plot struct {
	Title      string
	XLabel     string
	YLabel     string
	Decimation clock.Time

	file   *os.File
	writer *bufio.Writer
	prior  map[Color]clock.Time
}

// Open creates the plot file at path and writes its header.
func (p *Plot) Open(path string) (err error) {
	t, err := template.New("plotHeader").Parse(plotHeader)
	if err != nil {
		return err
	}
	if p.file, err = os.Create(path); err != nil {
		return err
	}
	p.writer = bufio.NewWriter(p.file)
	p.prior = make(map[Color]clock.Time)
	return t.Execute(p.writer, p)
}

// Dot plots a point at (now, y) in the given color, subject to decimation.
func (p *Plot) Dot(now clock.Time, y any, c Color) {
	if p.decimate(now, c) {
		return
	}
	fmt.Fprintf(p.writer, "dot %s %v %d\n", now, y, c)
}

// PlotX plots a point at (now, y) as an x-marker, subject to decimation.
func (p *Plot) PlotX(now clock.Time, y any, c Color) {
	if p.decimate(now, c) {
		return
	}
	fmt.Fprintf(p.writer, "x %s %v %d\n", now, y, c)
}

func (p *Plot) decimate(now clock.Time, c Color) bool {
	if prior, ok := p.prior[c]; ok && now-prior <= p.Decimation {
		return true
	}
	p.prior[c] = now
	return false
}

// Close finalizes and flushes the plot file.
func (p *Plot) Close() error {
	fmt.Fprintf(p.writer, "go\n")
	if err := p.writer.Flush(); err != nil {
		return err
	}
	return p.file.Close()
}
