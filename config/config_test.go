package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_JSONWithComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	body := `{
  // room identity
  "room": {
    "name": "Boardroom",
    "destinations": ["Main", "Confidence",],
  },
  /* fusion */
  "fusion": {"room_guid": "3f0c8f8e-6c7a-4f8e-9a55-2b7f3c1d2e4a"},
  "tick_millis": 10,
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Boardroom", cfg.Room.Name)
	require.Equal(t, []string{"Main", "Confidence"}, cfg.Room.Destinations)
	require.Equal(t, "3f0c8f8e-6c7a-4f8e-9a55-2b7f3c1d2e4a", cfg.Fusion.RoomGUID)
	// clamped
	require.Equal(t, DefaultConfig().TickMillis, cfg.TickMillis)
	// untouched sections keep defaults
	require.Equal(t, DefaultConfig().DSP, cfg.DSP)
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.yaml")
	body := `
room:
  name: Huddle
  layouts: [Single]
dsp:
  device: tesira
  blocks:
    - {kind: router, tag: MainRouter}
panel:
  recent_calls: 50
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Huddle", cfg.Room.Name)
	require.Equal(t, []string{"Single"}, cfg.Room.Layouts)
	require.Equal(t, []BlockConfig{{Kind: "router", Tag: "MainRouter"}}, cfg.DSP.Blocks)
	require.Equal(t, 10, cfg.Panel.RecentCalls)
}

func TestLoad_RejectsMalformedGUID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fusion":{"room_guid":"not-a-guid"}}`), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestSave_RoundTripsBothFormats(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	require.True(t, cfg.EnsureRoomGUID())
	require.False(t, cfg.EnsureRoomGUID())
	for _, name := range []string{"out.json", "out.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, cfg.Save(path))
		back, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, cfg, back, name)
	}
}
