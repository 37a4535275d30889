package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapitalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"wet", "Wet"},
		{"baseFreq", "BaseFreq"},
		{"Q", "Q"},
		{"lowGain", "LowGain"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Capitalize(tc.in), "Capitalize(%q)", tc.in)
	}
}

func TestDerivedNames(t *testing.T) {
	require.Equal(t, "onWetChange", CallbackName("wet"))
	require.Equal(t, "setWet", SetterName("wet"))

	// Only the first character is uppercased; camelCase names keep their tail.
	require.Equal(t, "onBaseFreqChange", CallbackName("baseFreq"))
	require.Equal(t, "setBaseFreq", SetterName("baseFreq"))

	// Single-letter props like the filter's Q stay as-is.
	require.Equal(t, "onQChange", CallbackName("Q"))
	require.Equal(t, "setQ", SetterName("Q"))
}

func TestPropDerivedTypes(t *testing.T) {
	p := Prop{Name: "rate", Type: "number"}
	require.Equal(t, "(rate: number) => void", p.CallbackType())
	require.Equal(t, "(value: number) => void", p.SetterType())
}

func TestPropDefaultOrDash(t *testing.T) {
	require.Equal(t, "-", Prop{Name: "cv", Type: "ModStreamRef"}.DefaultOrDash())
	require.Equal(t, "0.3", Prop{Name: "wet", Type: "number", Default: "0.3"}.DefaultOrDash())
}

func TestPropRenderDesc(t *testing.T) {
	p := Prop{Name: "rate", Description: "LFO rate in Hz", RenderDescription: "Rate of the chorus modulation"}
	require.Equal(t, "Rate of the chorus modulation", p.RenderDesc())

	p.RenderDescription = ""
	require.Equal(t, "LFO rate in Hz", p.RenderDesc())
}
