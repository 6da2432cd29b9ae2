package pulsim

import "github.com/pkg/errors"

// Entry is the name of the fixed entry point of every network. A button press
// sends a single low pulse to it.
//
const Entry = "broadcaster"

// button is the sender name on the seed signal of a press.
const button = "button"

// A Graph is the fixed topology of a network: a set of modules keyed by name.
// The topology never changes after construction; only module state does.
//
type Graph struct {
	modules map[string]*Module
	names   []string // definition order
}

// New builds a graph from module definitions.
//
// Construction runs in two passes: all modules and forward edges are created
// first, then every conjunction gets one memory entry (initially low) per
// module pointing at it. Destinations that name no defined module are kept as
// inert sinks, not errors: pulses sent to them vanish.
//
func New(defs []Def) (*Graph, error) {
	g := &Graph{modules: make(map[string]*Module, len(defs))}
	for _, d := range defs {
		if d.Name == "" {
			return nil, errors.New("module with empty name")
		}
		if _, ok := g.modules[d.Name]; ok {
			return nil, errors.New("duplicate module " + d.Name)
		}
		m := &Module{Name: d.Name, Kind: d.Kind, Dests: append([]string(nil), d.Dests...)}
		if d.Kind == Conjunction {
			m.inputs = make(map[string]Pulse)
		}
		g.modules[d.Name] = m
		g.names = append(g.names, d.Name)
	}
	for _, name := range g.names {
		m := g.modules[name]
		for _, d := range m.Dests {
			if t := g.modules[d]; t != nil && t.Kind == Conjunction {
				t.inputs[m.Name] = Low
			}
		}
	}
	return g, nil
}

// Module returns the module with the given name, or nil if the name is
// undefined (a sink).
//
func (g *Graph) Module(name string) *Module {
	return g.modules[name]
}

// Size returns the number of defined modules.
//
func (g *Graph) Size() int { return len(g.modules) }

// Reset restores every module to its power-on state: flip-flops off,
// conjunction memories low. The topology is untouched, so one graph can serve
// several independent simulation runs.
//
func (g *Graph) Reset() {
	for _, m := range g.modules {
		m.reset()
	}
}
