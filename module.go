// Copyright 2024 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsim

// A Kind selects a module's state machine.
//
type Kind uint8

// Module kinds.
//
const (
	// Broadcast repeats every received pulse unchanged to all destinations.
	Broadcast Kind = iota
	// FlipFlop holds a boolean, initially off. A high pulse is ignored; a low
	// pulse toggles the boolean and emits high when now on, low when now off.
	FlipFlop
	// Conjunction remembers the last pulse received from each of its inputs
	// (low until first observed) and emits low when all of them are high,
	// high otherwise.
	Conjunction
)

func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	}
	return "unknown"
}

// A Def describes one module before wiring: its kind, its name and the
// ordered list of destination names.
//
type Def struct {
	Name  string
	Kind  Kind
	Dests []string
}

// A Module is a named node of a network. Dests preserves definition order so
// that signal traces are reproducible. The mutable state (flip-flop boolean,
// conjunction input memory) is owned by the module and persists across
// button presses.
//
type Module struct {
	Name  string
	Kind  Kind
	Dests []string

	on     bool             // flip-flop state
	inputs map[string]Pulse // conjunction memory, keyed by input module name
}

// transition runs the module's state machine for one incoming signal.
// It returns the outgoing pulse and whether one is emitted at all.
//
func (m *Module) transition(s Signal) (Pulse, bool) {
	switch m.Kind {
	case Broadcast:
		return s.Pulse, true
	case FlipFlop:
		if s.Pulse == High {
			return Low, false
		}
		m.on = !m.on
		if m.on {
			return High, true
		}
		return Low, true
	case Conjunction:
		m.inputs[s.From] = s.Pulse
		for _, p := range m.inputs {
			if p == Low {
				return High, true
			}
		}
		return Low, true
	}
	return Low, false
}

// reset restores the module's power-on state.
//
func (m *Module) reset() {
	m.on = false
	for k := range m.inputs {
		m.inputs[k] = Low
	}
}
