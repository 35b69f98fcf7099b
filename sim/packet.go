// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package sim

import (
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/units"
)

// PacketType discriminates the two packet shapes the simulator moves:
// Data segments and the Acks they provoke.
type PacketType int

const (
	Data PacketType = iota
	Ack
)

func (t PacketType) String() string {
	if t == Data {
		return "Data"
	}
	return "Ack"
}

// Packet is an immutable value record: queues hold copies of it, and no
// object mutates a Packet after construction. Only the fields relevant to
// Type are meaningful.
type Packet struct {
	UID      clock.PktId
	SentTime clock.Time
	Size     units.Bytes
	Src      clock.Addr
	Dest     clock.Addr
	Type     PacketType

	// Data fields
	SeqNum clock.SeqNum

	// Ack fields
	AckOrigSentTime clock.Time
	AckUID          clock.PktId
	AckSeq          clock.SeqNum
}
