// Copyright 2024 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsim

// A Pulse is the binary signal carried on every edge of a network.
//
type Pulse uint8

// Pulse values.
//
const (
	Low Pulse = iota
	High
)

func (p Pulse) String() string {
	if p == Low {
		return "low"
	}
	return "high"
}

// A Signal is a pulse in flight: a pulse value together with the names of the
// sending and receiving modules. Signals are created and consumed entirely
// within one button press.
//
type Signal struct {
	Pulse Pulse
	From  string
	To    string
}
