/*
Package pulsim simulates networks of pulse-processing modules.

A network is a directed graph of named modules. Every edge carries a binary
pulse (low or high), and every module runs a small state machine when a pulse
reaches it: a broadcaster repeats the pulse to all of its destinations, a
flip-flop toggles on low pulses, and a conjunction remembers the last pulse
seen from each of its inputs and emits low only while all of them are high.

A single "button press" seeds one low pulse at the broadcaster and drains the
resulting cascade in strict FIFO order. Module state persists across presses,
which is what makes the interesting networks periodic: the package can count
pulses over repeated presses, or watch for a condition and extrapolate the
press index at which it first occurs from the periods of independent branches.

*/
package pulsim
