package dsp

import (
	"fmt"
	"sync"

	"github.com/soocke/roomview-go/config"
)

// Device is the set of blocks registered against one DSP, keyed by
// instance tag. Safe for concurrent use.
type Device struct {
	name string

	mu     sync.RWMutex
	blocks map[string]Block
	order  []string
}

// NewDevice returns an empty device.
func NewDevice(name string) *Device {
	return &Device{name: name, blocks: make(map[string]Block)}
}

// NewDeviceFromConfig registers every configured block, stopping at the
// first invalid or duplicate one.
func NewDeviceFromConfig(cfg config.DSPConfig) (*Device, error) {
	d := NewDevice(cfg.Device)
	for _, bc := range cfg.Blocks {
		kind, err := ParseKind(bc.Kind)
		if err != nil {
			return nil, fmt.Errorf("dsp %s: %w", cfg.Device, err)
		}
		if _, err := d.Register(kind, bc.Tag); err != nil {
			return nil, fmt.Errorf("dsp %s: %w", cfg.Device, err)
		}
	}
	return d, nil
}

func (d *Device) Name() string { return d.name }

// Register adds a block handle. Tags are unique per device.
func (d *Device) Register(kind Kind, tag string) (Block, error) {
	b, err := NewBlock(kind, tag)
	if err != nil {
		return Block{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.blocks[tag]; ok {
		return Block{}, fmt.Errorf("block %q: %w", tag, ErrDuplicate)
	}
	d.blocks[tag] = b
	d.order = append(d.order, tag)
	return b, nil
}

// Lookup returns the block registered under tag.
func (d *Device) Lookup(tag string) (Block, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	b, ok := d.blocks[tag]
	return b, ok
}

// Blocks returns all blocks in registration order.
func (d *Device) Blocks() []Block {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Block, 0, len(d.order))
	for _, tag := range d.order {
		out = append(out, d.blocks[tag])
	}
	return out
}

// ByKind returns the blocks of one kind in registration order.
func (d *Device) ByKind(kind Kind) []Block {
	var out []Block
	for _, b := range d.Blocks() {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Len returns the number of registered blocks.
func (d *Device) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.order)
}
