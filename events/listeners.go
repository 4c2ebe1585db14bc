// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific objects, and removable by the id
// returned from [Listeners.Add].
type Listeners struct {
	funcs  map[Types][]listener
	nextID int
}

type listener struct {
	id  int
	fun func(Event)
}

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if ls.funcs != nil {
		return
	}
	ls.funcs = make(map[Types][]listener)
}

// Add adds a function for given type, returning its id for [Listeners.Remove].
func (ls *Listeners) Add(typ Types, fun func(Event)) int {
	ls.Init()
	ls.nextID++
	ls.funcs[typ] = append(ls.funcs[typ], listener{id: ls.nextID, fun: fun})
	return ls.nextID
}

// Remove removes the function with the given id,
// returning false if there is none.
func (ls *Listeners) Remove(id int) bool {
	for typ, ets := range ls.funcs {
		for i, l := range ets {
			if l.id != id {
				continue
			}
			ets = append(ets[:i:i], ets[i+1:]...)
			if len(ets) == 0 {
				delete(ls.funcs, typ)
			} else {
				ls.funcs[typ] = ets
			}
			return true
		}
	}
	return false
}

// Len returns the number of functions for the given type.
func (ls *Listeners) Len(typ Types) int {
	return len(ls.funcs[typ])
}

// Call calls all functions for given event.
// It goes in registration order and stops when the event is marked
// as Handled, so an earlier listener can consume an event.
// Functions added or removed during the call take effect
// for the next event.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := ls.funcs[ev.Type()]
	for _, l := range ets {
		l.fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}
