package dsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soocke/roomview-go/config"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + k.String() + " ")
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	got, err := ParseKind("ROUTER")
	require.NoError(t, err)
	require.Equal(t, KindRouter, got)

	_, err = ParseKind("equalizer")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestBlock_Validate(t *testing.T) {
	_, err := NewBlock(KindDelay, "Delay1")
	require.NoError(t, err)

	_, err = NewBlock(KindDelay, "")
	require.ErrorIs(t, err, ErrInvalidTag)
	_, err = NewBlock(KindDelay, "Delay 1")
	require.ErrorIs(t, err, ErrInvalidTag)
	_, err = NewBlock(Kind(42), "X")
	require.ErrorIs(t, err, ErrUnknownKind)

	require.Equal(t, "generator:Gen1", Block{Kind: KindGenerator, Tag: "Gen1"}.String())
}

func TestDevice_RegisterLookup(t *testing.T) {
	d := NewDevice("tesira")
	_, err := d.Register(KindRouter, "Router1")
	require.NoError(t, err)
	_, err = d.Register(KindCrossover, "Xover1")
	require.NoError(t, err)
	_, err = d.Register(KindRouter, "Router2")
	require.NoError(t, err)

	_, err = d.Register(KindDelay, "Router1")
	require.ErrorIs(t, err, ErrDuplicate)

	b, ok := d.Lookup("Xover1")
	require.True(t, ok)
	require.Equal(t, KindCrossover, b.Kind)
	_, ok = d.Lookup("missing")
	require.False(t, ok)

	require.Equal(t, 3, d.Len())
	require.Equal(t, []Block{
		{Kind: KindRouter, Tag: "Router1"},
		{Kind: KindRouter, Tag: "Router2"},
	}, d.ByKind(KindRouter))
	require.Equal(t, "Router1", d.Blocks()[0].Tag)
}

func TestNewDeviceFromConfig(t *testing.T) {
	d, err := NewDeviceFromConfig(config.DefaultConfig().DSP)
	require.NoError(t, err)
	require.Equal(t, 4, d.Len())
	require.Equal(t, "dsp-1", d.Name())

	_, err = NewDeviceFromConfig(config.DSPConfig{
		Device: "bad",
		Blocks: []config.BlockConfig{{Kind: "mixer", Tag: "M1"}},
	})
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = NewDeviceFromConfig(config.DSPConfig{
		Device: "dup",
		Blocks: []config.BlockConfig{{Kind: "delay", Tag: "D"}, {Kind: "router", Tag: "D"}},
	})
	require.ErrorIs(t, err, ErrDuplicate)
}
