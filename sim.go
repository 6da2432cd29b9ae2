// Copyright 2024 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsim

// Press runs one full button press: it seeds a low pulse at the entry module
// and drains the resulting cascade in FIFO order. FIFO order is load-bearing:
// every pulse emitted earlier in the press is delivered before any pulse it
// caused, so modules never observe effects before causes.
//
// If fn is not nil it observes every signal as it is dequeued, before the
// destination module's state machine runs. Signals to undefined destinations
// are still observed, then dropped.
//
func (g *Graph) Press(fn func(Signal)) {
	q := make([]Signal, 0, 64)
	q = append(q, Signal{Pulse: Low, From: button, To: Entry})
	for len(q) > 0 {
		s := q[0]
		q = q[1:]
		if fn != nil {
			fn(s)
		}
		m := g.modules[s.To]
		if m == nil {
			continue
		}
		if p, ok := m.transition(s); ok {
			for _, d := range m.Dests {
				q = append(q, Signal{Pulse: p, From: m.Name, To: d})
			}
		}
	}
}

// PressTimes presses the button exactly n times, starting from the graph's
// current state, and returns the total number of low and high pulses sent.
// The seed pulse of each press counts as a low pulse.
//
func (g *Graph) PressTimes(n int) (low, high uint64) {
	for i := 0; i < n; i++ {
		g.Press(func(s Signal) {
			if s.Pulse == Low {
				low++
			} else {
				high++
			}
		})
	}
	return low, high
}
