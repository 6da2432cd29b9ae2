// Copyright 2024 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsim

import "github.com/pkg/errors"

// ErrNoCycle is returned when a target module is not fed by exactly one
// conjunction, i.e. the network has no cycle structure to extrapolate from.
//
var ErrNoCycle = errors.New("no cycle structure")

// FindCycleLCM returns the minimal number of button presses before target
// first receives a low pulse, for networks where target is fed by a single
// conjunction whose inputs are independent periodic branches.
//
// Simulating that press count directly is infeasible for the intended
// networks, so the graph is reset and pressed until every input of the
// feeding conjunction has sent it one low pulse; the press indices of those
// first low pulses are combined with a least-common-multiple fold.
//
// This assumes every branch first fires at its true period with zero phase
// offset (firing again at exactly twice the first index, and so on). That
// holds for the intended networks but cannot be derived from the topology;
// use FindCycleLCMChecked to verify it empirically.
//
func (g *Graph) FindCycleLCM(target string) (uint64, error) {
	return g.findCycleLCM(target, false)
}

// FindCycleLCMChecked is FindCycleLCM with the zero-phase assumption checked:
// the simulation keeps running until every watched branch has fired a second
// time, and an error is returned unless each second firing lands at exactly
// twice the press index of the first.
//
func (g *Graph) FindCycleLCMChecked(target string) (uint64, error) {
	return g.findCycleLCM(target, true)
}

func (g *Graph) findCycleLCM(target string, checked bool) (uint64, error) {
	feed, err := g.feeder(target)
	if err != nil {
		return 0, err
	}
	if len(feed.inputs) == 0 {
		return 0, errors.Wrap(ErrNoCycle, "conjunction "+feed.Name+" has no inputs")
	}

	// Watch low pulses into the feeding conjunction on a freshly reset graph,
	// recording the press index at which each input module first sends one.
	g.Reset()
	var (
		first   = make(map[string]uint64, len(feed.inputs))
		second  = make(map[string]uint64, len(feed.inputs))
		pending = len(feed.inputs)
		press   uint64
	)
	for pending > 0 || (checked && len(second) < len(feed.inputs)) {
		press++
		g.Press(func(s Signal) {
			if s.Pulse != Low || s.To != feed.Name {
				return
			}
			if _, ok := feed.inputs[s.From]; !ok {
				return
			}
			if _, ok := first[s.From]; !ok {
				first[s.From] = press
				pending--
				return
			}
			if _, ok := second[s.From]; !ok && checked {
				second[s.From] = press
			}
		})
	}
	if checked {
		for name, f := range first {
			if s := second[name]; s != 2*f {
				return 0, errors.Errorf("branch %s fired at presses %d and %d, want a zero-phase period (%d and %d)",
					name, f, s, f, 2*f)
			}
		}
	}

	answer := uint64(1)
	for _, p := range first {
		answer = lcm(answer, p)
	}
	return answer, nil
}

// feeder resolves the single conjunction module that feeds target.
//
func (g *Graph) feeder(target string) (*Module, error) {
	var feed *Module
	for _, name := range g.names {
		m := g.modules[name]
		for _, d := range m.Dests {
			if d != target {
				continue
			}
			if feed != nil {
				return nil, errors.Wrap(ErrNoCycle, "multiple modules feed "+target)
			}
			feed = m
		}
	}
	switch {
	case feed == nil:
		return nil, errors.Wrap(ErrNoCycle, "nothing feeds "+target)
	case feed.Kind != Conjunction:
		return nil, errors.Wrap(ErrNoCycle, feed.Name+" feeds "+target+" but is a "+feed.Kind.String())
	}
	return feed, nil
}
