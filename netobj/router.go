// SPDX-License-Identifier: GPL-3.0
// Copyright 2024 Pete Heist

package netobj

import (
	"github.com/heistp/nddsim/clock"
	"github.com/heistp/nddsim/sim"
	"github.com/heistp/nddsim/simerr"
	"github.com/heistp/nddsim/xlog"
)

// Router forwards a packet to the port registered for its destination
// address, or delivers it locally if addressed to the Router itself.
type Router struct {
	Addr   clock.Addr
	routes map[clock.Addr]clock.NetObjId

	delivered uint64
	log       *xlog.Logger
}

// NewRouter returns a Router answering to addr with an empty routing table.
// log may be nil, in which case routing errors are not logged before the
// run aborts.
func NewRouter(addr clock.Addr, log *xlog.Logger) *Router {
	return &Router{Addr: addr, routes: make(map[clock.Addr]clock.NetObjId), log: log}
}

// AddRoute registers port as the next hop for packets destined to dest.
func (r *Router) AddRoute(dest clock.Addr, port clock.NetObjId) {
	r.routes[dest] = port
}

// Push implements sim.NetObj. A packet whose destination has no route
// aborts the simulation with UnroutableDestination, since an unroutable
// packet is a modelling bug, not an expected condition like a link's tail
// drop.
func (r *Router) Push(selfID, fromID clock.NetObjId, now clock.Time, pkt sim.Packet) ([]sim.Action, error) {
	if pkt.Dest == r.Addr {
		r.delivered++
		return nil, nil
	}
	port, ok := r.routes[pkt.Dest]
	if !ok {
		if r.log != nil {
			r.log.Errorf(now, selfID, "router: no route for dest %d, aborting", pkt.Dest)
		}
		return nil, simerr.New(simerr.UnroutableDestination,
			"router: no route for dest %d", pkt.Dest)
	}
	return []sim.Action{sim.PushAt(now, port, pkt)}, nil
}

// Event implements sim.NetObj. A Router has no events of its own.
func (r *Router) Event(selfID, fromID clock.NetObjId, now clock.Time, uid uint64) ([]sim.Action, error) {
	return nil, nil
}
