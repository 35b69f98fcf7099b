// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

// Package xlog is the simulator's structured logger. It wraps a
// now/object-id logging convention around logrus, attaching a per-run
// correlation id (via rs/xid) to every entry so log lines from
// concurrent simulation runs in the same process can be told apart.
package xlog

import (
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/heistp/nddsim/clock"
)

// Logger wraps a logrus.Logger with the simulation's run id.
type Logger struct {
	l     *logrus.Logger
	runID xid.ID
}

// New returns a new Logger writing to logrus's default handler.
func New() *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})
	return &Logger{l, xid.New()}
}

// RunID returns the correlation id attached to every line this Logger
// emits, letting log lines from concurrent simulation runs in the same
// process be told apart.
func (lg *Logger) RunID() string {
	return lg.runID.String()
}

// Logf emits a message at Info level, with now and id attached as
// structured fields alongside the run id.
func (lg *Logger) Logf(now clock.Time, id clock.NetObjId, format string, a ...any) {
	lg.l.WithFields(logrus.Fields{
		"run":  lg.runID.String(),
		"now":  now.String(),
		"id":   id,
	}).Infof(format, a...)
}

// Warnf emits a message at Warn level.
func (lg *Logger) Warnf(now clock.Time, id clock.NetObjId, format string, a ...any) {
	lg.l.WithFields(logrus.Fields{
		"run": lg.runID.String(),
		"now": now.String(),
		"id":  id,
	}).Warnf(format, a...)
}

// Errorf emits a message at Error level, used just before a run aborts.
func (lg *Logger) Errorf(now clock.Time, id clock.NetObjId, format string, a ...any) {
	lg.l.WithFields(logrus.Fields{
		"run": lg.runID.String(),
		"now": now.String(),
		"id":  id,
	}).Errorf(format, a...)
}
