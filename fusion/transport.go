package fusion

import (
	"log/slog"
	"sync"

	"github.com/soocke/roomview-go/ui/mvp"
)

// Transport carries join-addressed sigs to and from the Fusion service.
type Transport interface {
	SetDigital(join uint32, v bool)
	SetAnalog(join uint32, v uint16)
	SetSerial(join uint32, v string)
	// OnDigitalInput subscribes fn to rising and falling edges of an input join.
	OnDigitalInput(join uint32, fn func(bool)) mvp.Subscription
}

// Sigs is a point-in-time copy of the output sigs.
type Sigs struct {
	Digital map[uint32]bool
	Analog  map[uint32]uint16
	Serial  map[uint32]string
}

// SigTable is an in-process Transport: outputs land in tables that can be
// inspected, inputs are simulated with Press and SetInput.
// The zero value is not usable; use NewSigTable.
type SigTable struct {
	mu      sync.Mutex
	digital map[uint32]bool
	analog  map[uint32]uint16
	serial  map[uint32]string
	inputs  map[uint32]*mvp.Event[bool]
	writes  uint64
}

func NewSigTable() *SigTable {
	return &SigTable{
		digital: make(map[uint32]bool),
		analog:  make(map[uint32]uint16),
		serial:  make(map[uint32]string),
		inputs:  make(map[uint32]*mvp.Event[bool]),
	}
}

func (s *SigTable) SetDigital(join uint32, v bool) {
	s.mu.Lock()
	s.digital[join] = v
	s.writes++
	s.mu.Unlock()
}

func (s *SigTable) SetAnalog(join uint32, v uint16) {
	s.mu.Lock()
	s.analog[join] = v
	s.writes++
	s.mu.Unlock()
}

func (s *SigTable) SetSerial(join uint32, v string) {
	s.mu.Lock()
	s.serial[join] = v
	s.writes++
	s.mu.Unlock()
}

func (s *SigTable) input(join uint32) *mvp.Event[bool] {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.inputs[join]
	if !ok {
		ev = &mvp.Event[bool]{}
		s.inputs[join] = ev
	}
	return ev
}

func (s *SigTable) OnDigitalInput(join uint32, fn func(bool)) mvp.Subscription {
	return s.input(join).Subscribe(fn)
}

// SetInput raises a digital input edge as Fusion would.
func (s *SigTable) SetInput(join uint32, v bool) { s.input(join).Raise(v) }

// Press simulates a momentary digital input: high then low.
func (s *SigTable) Press(join uint32) {
	s.SetInput(join, true)
	s.SetInput(join, false)
}

// Digital returns an output and whether it has been written.
func (s *SigTable) Digital(join uint32) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.digital[join]
	return v, ok
}

// Analog returns an output and whether it has been written.
func (s *SigTable) Analog(join uint32) (uint16, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.analog[join]
	return v, ok
}

// Serial returns an output and whether it has been written.
func (s *SigTable) Serial(join uint32) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.serial[join]
	return v, ok
}

// Writes counts output writes.
func (s *SigTable) Writes() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *SigTable) Snapshot() Sigs {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Sigs{
		Digital: make(map[uint32]bool, len(s.digital)),
		Analog:  make(map[uint32]uint16, len(s.analog)),
		Serial:  make(map[uint32]string, len(s.serial)),
	}
	for k, v := range s.digital {
		out.Digital[k] = v
	}
	for k, v := range s.analog {
		out.Analog[k] = v
	}
	for k, v := range s.serial {
		out.Serial[k] = v
	}
	return out
}

// LoggingTransport logs every sig at debug level before forwarding it.
type LoggingTransport struct {
	Next   Transport
	Logger *slog.Logger
}

func NewLoggingTransport(next Transport, logger *slog.Logger) *LoggingTransport {
	return &LoggingTransport{Next: next, Logger: logger}
}

func (t *LoggingTransport) SetDigital(join uint32, v bool) {
	t.log("digital out", join, v)
	t.Next.SetDigital(join, v)
}

func (t *LoggingTransport) SetAnalog(join uint32, v uint16) {
	t.log("analog out", join, v)
	t.Next.SetAnalog(join, v)
}

func (t *LoggingTransport) SetSerial(join uint32, v string) {
	t.log("serial out", join, v)
	t.Next.SetSerial(join, v)
}

func (t *LoggingTransport) OnDigitalInput(join uint32, fn func(bool)) mvp.Subscription {
	return t.Next.OnDigitalInput(join, func(v bool) {
		t.log("digital in", join, v)
		fn(v)
	})
}

func (t *LoggingTransport) log(msg string, join uint32, v any) {
	if t.Logger != nil {
		t.Logger.Debug(msg, "join", join, "value", v)
	}
}

var (
	_ Transport = (*SigTable)(nil)
	_ Transport = (*LoggingTransport)(nil)
)
