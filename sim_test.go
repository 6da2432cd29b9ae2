package pulsim_test

import (
	"testing"

	"github.com/db47h/pulsim"
)

// fan-out network: every module sees every press, no long-lived state
const fanOut = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`

// interference network: flip-flop state carries across presses, full cycle
// of four presses
const interference = `broadcaster -> a
%a -> iv, cn
&iv -> b
%b -> cn
&cn -> output`

func mustParse(t *testing.T, s string) *pulsim.Graph {
	t.Helper()
	g, err := pulsim.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// The first press of the interference network has a fully documented signal
// sequence. It pins down FIFO order: every pulse emitted earlier in a press
// is delivered before any pulse it caused.
func Test_press_order(t *testing.T) {
	g := mustParse(t, interference)

	want := []pulsim.Signal{
		{Pulse: pulsim.Low, From: "button", To: "broadcaster"},
		{Pulse: pulsim.Low, From: "broadcaster", To: "a"},
		{Pulse: pulsim.High, From: "a", To: "iv"},
		{Pulse: pulsim.High, From: "a", To: "cn"},
		{Pulse: pulsim.Low, From: "iv", To: "b"},
		{Pulse: pulsim.High, From: "cn", To: "output"},
		{Pulse: pulsim.High, From: "b", To: "cn"},
		{Pulse: pulsim.Low, From: "cn", To: "output"},
	}
	var got []pulsim.Signal
	g.Press(func(s pulsim.Signal) { got = append(got, s) })

	if len(got) != len(want) {
		t.Fatalf("got %d signals, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("signal %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func Test_pressTimes(t *testing.T) {
	td := []struct {
		name      string
		network   string
		presses   int
		low, high uint64
	}{
		{"fan-out single", fanOut, 1, 8, 4},
		{"fan-out", fanOut, 1000, 8000, 4000},
		{"interference", interference, 1000, 4250, 2750},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			g := mustParse(t, d.network)
			low, high := g.PressTimes(d.presses)
			if low != d.low || high != d.high {
				t.Fatalf("PressTimes(%d) = (%d, %d), want (%d, %d)",
					d.presses, low, high, d.low, d.high)
			}
		})
	}
}

// Two independent runs from freshly built identical graphs must agree.
func Test_pressTimes_deterministic(t *testing.T) {
	l1, h1 := mustParse(t, interference).PressTimes(1000)
	l2, h2 := mustParse(t, interference).PressTimes(1000)
	if l1 != l2 || h1 != h2 {
		t.Fatalf("runs disagree: (%d, %d) vs (%d, %d)", l1, h1, l2, h2)
	}
}

// Pulses to undefined destinations are tallied, then vanish.
func Test_press_sink(t *testing.T) {
	g := mustParse(t, "broadcaster -> nowhere")
	low, high := g.PressTimes(1)
	if low != 2 || high != 0 {
		t.Fatalf("PressTimes(1) = (%d, %d), want (2, 0)", low, high)
	}
}

// Module state persists across presses: the second press of the interference
// network differs from the first.
func Test_press_statePersists(t *testing.T) {
	g := mustParse(t, interference)
	l1, h1 := g.PressTimes(1)
	l2, h2 := g.PressTimes(1)
	if l1 == l2 && h1 == h2 {
		t.Fatalf("presses 1 and 2 both counted (%d, %d); state did not persist", l1, h1)
	}
}
