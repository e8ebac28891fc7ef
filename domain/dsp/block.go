// Package dsp holds typed handles to named processing blocks on an audio DSP.
//
// A Block binds a block kind to the instance tag the DSP knows it by. Every
// kind shares the same handle type; attribute access lives with the device
// transport, not here.
package dsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Kind enumerates the DSP block families the room addresses.
type Kind int

const (
	KindCrossover Kind = iota + 1
	KindDelay
	KindGenerator
	KindRouter
)

func (k Kind) String() string {
	switch k {
	case KindCrossover:
		return "crossover"
	case KindDelay:
		return "delay"
	case KindGenerator:
		return "generator"
	case KindRouter:
		return "router"
	default:
		return "unknown"
	}
}

// Kinds lists every valid Kind in declaration order.
func Kinds() []Kind { return []Kind{KindCrossover, KindDelay, KindGenerator, KindRouter} }

var (
	ErrUnknownKind = errors.New("dsp: unknown block kind")
	ErrInvalidTag  = errors.New("dsp: invalid instance tag")
	ErrDuplicate   = errors.New("dsp: duplicate instance tag")
)

// ParseKind accepts a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Block is a handle to one processing block.
type Block struct {
	Kind Kind
	Tag  string
}

// NewBlock validates kind and tag.
func NewBlock(kind Kind, tag string) (Block, error) {
	b := Block{Kind: kind, Tag: tag}
	return b, b.Validate()
}

// Validate checks the kind is known and the tag is a single non-empty token.
func (b Block) Validate() error {
	if b.Kind < KindCrossover || b.Kind > KindRouter {
		return fmt.Errorf("block %q kind %d: %w", b.Tag, int(b.Kind), ErrUnknownKind)
	}
	if b.Tag == "" || strings.IndexFunc(b.Tag, unicode.IsSpace) >= 0 {
		return fmt.Errorf("block %q: %w", b.Tag, ErrInvalidTag)
	}
	return nil
}

func (b Block) String() string { return b.Kind.String() + ":" + b.Tag }
