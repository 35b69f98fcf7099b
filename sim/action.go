// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package sim

import "github.com/heistp/nddsim/clock"

// ActionKind tags an Action as carrying a Packet or an opaque event uid.
type ActionKind int

const (
	ActionPush ActionKind = iota
	ActionEvent
)

func (k ActionKind) String() string {
	switch k {
	case ActionPush:
		return "push"
	case ActionEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Action is a scheduled entry emitted by a NetObj: a packet to push, or a
// local timer to fire, destined for Target at time At.
type Action struct {
	At     clock.Time
	Target clock.NetObjId
	Kind   ActionKind
	Pkt    Packet
	UID    uint64
}

// PushAt returns an Action that delivers pkt to target at time at.
func PushAt(at clock.Time, target clock.NetObjId, pkt Packet) Action {
	return Action{At: at, Target: target, Kind: ActionPush, Pkt: pkt}
}

// EventAt returns an Action that fires a timer tagged uid on target at
// time at. uid is a local tag chosen by the emitter and has no meaning to
// the scheduler.
func EventAt(at clock.Time, target clock.NetObjId, uid uint64) Action {
	return Action{At: at, Target: target, Kind: ActionEvent, UID: uid}
}
