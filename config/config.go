package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for one room: its AV inventory, the
// Fusion reporting link, the DSP blocks and the panel simulator.
// Fields may be loaded from a JSON (comments allowed) or YAML file.
type Config struct {
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	Room   RoomConfig   `json:"room" yaml:"room"`
	Fusion FusionConfig `json:"fusion" yaml:"fusion"`
	DSP    DSPConfig    `json:"dsp" yaml:"dsp"`
	Panel  PanelConfig  `json:"panel" yaml:"panel"`

	// Call handling
	DialTimeoutSeconds int `json:"dial_timeout_seconds" yaml:"dial_timeout_seconds"`
	// Presenter tick period (call timers)
	TickMillis int `json:"tick_millis" yaml:"tick_millis"`
}

// RoomConfig describes the room's switchable inventory.
type RoomConfig struct {
	Name         string          `json:"name" yaml:"name"`
	Sources      []string        `json:"sources" yaml:"sources"`
	Destinations []string        `json:"destinations" yaml:"destinations"`
	Layouts      []string        `json:"layouts" yaml:"layouts"`
	Stations     []StationConfig `json:"stations" yaml:"stations"`
}

// StationConfig is one TV tuner preset.
type StationConfig struct {
	Name    string `json:"name" yaml:"name"`
	Channel string `json:"channel" yaml:"channel"`
}

// FusionConfig identifies the room to the Fusion room-status service.
type FusionConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	IPID     int    `json:"ipid" yaml:"ipid"`
	RoomGUID string `json:"room_guid" yaml:"room_guid"`
}

// DSPConfig lists the DSP processing blocks addressed by instance tag.
type DSPConfig struct {
	Device string        `json:"device" yaml:"device"`
	Blocks []BlockConfig `json:"blocks" yaml:"blocks"`
}

// BlockConfig is one DSP block: kind is crossover, delay, generator or router.
type BlockConfig struct {
	Kind string `json:"kind" yaml:"kind"`
	Tag  string `json:"tag" yaml:"tag"`
}

// PanelConfig drives the touch-panel simulator.
type PanelConfig struct {
	Title       string `json:"title" yaml:"title"`
	Width       int    `json:"width" yaml:"width"`
	Height      int    `json:"height" yaml:"height"`
	ShareTitle  string `json:"share_title" yaml:"share_title"`
	RecentCalls int    `json:"recent_calls" yaml:"recent_calls"`
	Dark        bool   `json:"dark" yaml:"dark"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:    false,
		LogLevel: "info",
		Room: RoomConfig{
			Name:         "Conference Room",
			Sources:      []string{"Laptop", "Room PC", "Wireless"},
			Destinations: []string{"Left Display", "Right Display", "Projector"},
			Layouts:      []string{"Single", "Side by Side", "Picture in Picture"},
			Stations: []StationConfig{
				{Name: "News", Channel: "4.1"},
				{Name: "Business", Channel: "7.2"},
				{Name: "Weather", Channel: "11.1"},
			},
		},
		Fusion: FusionConfig{Enabled: true, IPID: 0xF1},
		DSP: DSPConfig{
			Device: "dsp-1",
			Blocks: []BlockConfig{
				{Kind: "crossover", Tag: "Crossover1"},
				{Kind: "delay", Tag: "Delay1"},
				{Kind: "generator", Tag: "Generator1"},
				{Kind: "router", Tag: "Router1"},
			},
		},
		Panel: PanelConfig{
			Title:       "Room Panel",
			Width:       800,
			Height:      480,
			ShareTitle:  "Share",
			RecentCalls: 3,
		},
		DialTimeoutSeconds: 30,
		TickMillis:         1000,
	}
}

// Validate clamps/normalizes values to safe ranges. It returns an error only
// for values that cannot be repaired, such as a malformed room GUID.
func (c *Config) Validate() error {
	def := DefaultConfig()
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
	if strings.TrimSpace(c.Room.Name) == "" {
		c.Room.Name = def.Room.Name
	}
	if c.Fusion.IPID <= 0 || c.Fusion.IPID > 0xFE {
		c.Fusion.IPID = def.Fusion.IPID
	}
	if c.Fusion.RoomGUID != "" {
		if _, err := uuid.Parse(c.Fusion.RoomGUID); err != nil {
			return fmt.Errorf("fusion room_guid %q: %w", c.Fusion.RoomGUID, err)
		}
	}
	if c.DSP.Device == "" {
		c.DSP.Device = def.DSP.Device
	}
	if c.Panel.Width <= 0 {
		c.Panel.Width = def.Panel.Width
	}
	if c.Panel.Height <= 0 {
		c.Panel.Height = def.Panel.Height
	}
	if c.Panel.Title == "" {
		c.Panel.Title = def.Panel.Title
	}
	if c.Panel.ShareTitle == "" {
		c.Panel.ShareTitle = def.Panel.ShareTitle
	}
	if c.Panel.RecentCalls < 0 {
		c.Panel.RecentCalls = 0
	}
	if c.Panel.RecentCalls > 10 {
		c.Panel.RecentCalls = 10
	}
	if c.DialTimeoutSeconds <= 0 {
		c.DialTimeoutSeconds = def.DialTimeoutSeconds
	}
	if c.TickMillis < 50 {
		c.TickMillis = def.TickMillis
	}
	return nil
}

// EnsureRoomGUID assigns a random room GUID when none is configured and
// reports whether it did.
func (c *Config) EnsureRoomGUID() bool {
	if c.Fusion.RoomGUID != "" {
		return false
	}
	c.Fusion.RoomGUID = uuid.NewString()
	return true
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Parse decodes data as YAML when yamlFormat is set, otherwise as JSON with
// comments and trailing commas allowed, on top of DefaultConfig.
func Parse(data []byte, yamlFormat bool) (*Config, error) {
	cfg := DefaultConfig()
	if yamlFormat {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	} else if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load attempts to read configuration from the given path. If the file does not
// exist it returns DefaultConfig(). On decode error it returns defaults with the error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}
	cfg, err := Parse(data, isYAML(path))
	if err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given path, as YAML for .yaml/.yml
// paths and indented JSON otherwise.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
