package pulsim_test

import (
	"strings"
	"testing"

	"github.com/db47h/pulsim"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := pulsim.Parse(strings.NewReader(`
broadcaster -> a
%a -> iv, cn
&iv -> b
%b -> cn
&cn -> output
`))
	require.NoError(t, err)
	require.Equal(t, 5, g.Size())

	bc := g.Module("broadcaster")
	require.NotNil(t, bc)
	require.Equal(t, pulsim.Broadcast, bc.Kind)
	require.Equal(t, []string{"a"}, bc.Dests)

	a := g.Module("a")
	require.NotNil(t, a)
	require.Equal(t, pulsim.FlipFlop, a.Kind)
	require.Equal(t, []string{"iv", "cn"}, a.Dests, "destination order must follow the definition")

	cn := g.Module("cn")
	require.NotNil(t, cn)
	require.Equal(t, pulsim.Conjunction, cn.Kind)
	require.Equal(t, []string{"output"}, cn.Dests)

	require.Nil(t, g.Module("output"), "undefined destinations stay sinks")
}

func TestParse_errors(t *testing.T) {
	td := []struct {
		name  string
		input string
		want  string
	}{
		{"no prefix", "a -> b", "has no type prefix"},
		{"missing arrow", "%a b", `expected "->"`},
		{"missing name", "% -> b", "expected module name"},
		{"empty destinations", "%a ->", "expected destination name"},
		{"trailing comma", "%a -> b,", "expected destination name"},
		{"bad destination", "%a -> b, !", "expected destination name"},
		{"junk after list", "%a -> b c", "expected comma or end of line"},
		{"duplicate", "%a -> b\n%a -> c", "duplicate module a"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := pulsim.ParseString(d.input)
			require.Error(t, err)
			require.Contains(t, err.Error(), d.want)
		})
	}
}

func TestParse_lineContext(t *testing.T) {
	_, err := pulsim.ParseString("broadcaster -> a\n%a > b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}
