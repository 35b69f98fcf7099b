// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package netobj

import (
	"testing"

	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/sim"
)

// fakeIDs is a trivial PktIDSource for tests.
type fakeIDs struct{ next clock.PktId }

func (f *fakeIDs) NextPktId() clock.PktId {
	id := f.next
	f.next++
	return id
}

// TestAckerGeneratesCumulativeAck checks the round-trip property:
// Acker(Data{seq}) = Ack{ack_seq=seq+1}, with the fixed data/ack sizes.
func TestAckerGeneratesCumulativeAck(t *testing.T) {
	a := NewAcker(5, clock.NetObjId(2), &fakeIDs{})
	data := sim.Packet{
		UID:      1,
		SentTime: 1000,
		Size:     DataSize,
		Src:      9,
		Dest:     5,
		Type:     sim.Data,
		SeqNum:   41,
	}
	acts, err := a.Push(0, 1, 2000, data)
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if len(acts) != 1 || acts[0].Kind != sim.ActionPush {
		t.Fatalf("acts = %+v, want one Push", acts)
	}
	ack := acts[0].Pkt
	if ack.Type != sim.Ack || ack.Size != AckSize {
		t.Fatalf("ack type/size = %v/%v, want Ack/%v", ack.Type, ack.Size, AckSize)
	}
	if ack.Src != 5 || ack.Dest != 9 {
		t.Fatalf("ack src/dest = %v/%v, want 5/9", ack.Src, ack.Dest)
	}
	if ack.AckSeq != 42 {
		t.Fatalf("AckSeq = %d, want 42", ack.AckSeq)
	}
	if ack.AckUID != data.UID || ack.AckOrigSentTime != data.SentTime {
		t.Fatalf("ack did not carry through orig sent time/uid: %+v", ack)
	}
	if acts[0].Target != 2 {
		t.Fatalf("target = %d, want 2", acts[0].Target)
	}
}
