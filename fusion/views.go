package fusion

import (
	"sync"

	"github.com/soocke/roomview-go/ui/mvp"
)

// View contracts of the Fusion presenters. Setters write output sigs and
// never raise the view's events.

// RoomStatusView reports room identity and power, and carries Fusion's
// remote power requests.
type RoomStatusView interface {
	SetRoomName(name string)
	SetRoomGUID(guid string)
	SetSystemPower(on bool)
	OnPowerOnRequested(fn func()) mvp.Subscription
	OnPowerOffRequested(fn func()) mvp.Subscription
}

// SourceView reports routing and layout.
type SourceView interface {
	SetCurrentSource(name string)
	SetDestinationLabels(labels []string)
	SetDestinationSource(index int, name string) error
	SetLayout(index int, name string)
}

// CallView reports the room call.
type CallView interface {
	SetInCall(in bool)
	SetCallState(label string)
	SetRemoteParty(name string)
	SetCallSeconds(seconds uint16)
}

// DspView reports the DSP device and its blocks.
type DspView interface {
	SetDeviceName(name string)
	SetBlockLabels(labels []string)
	SetBlockLabel(index int, label string) error
}

// ViewFactory builds the Fusion views over one transport. Each view is
// created once.
type ViewFactory struct {
	t Transport

	once   sync.Once
	room   *roomStatusView
	source *sourceView
	call   *callView
	dsp    *dspView
}

func NewViewFactory(t Transport) *ViewFactory { return &ViewFactory{t: t} }

func (f *ViewFactory) init() {
	f.once.Do(func() {
		f.room = &roomStatusView{t: f.t}
		f.source = &sourceView{t: f.t, dests: indexedSerials{what: "destination", base: JoinDestinationBase, max: MaxDestinations}}
		f.call = &callView{t: f.t}
		f.dsp = &dspView{t: f.t, blocks: indexedSerials{what: "block", base: JoinBlockBase, max: MaxBlocks}}
	})
}

func (f *ViewFactory) RoomStatusView() RoomStatusView { f.init(); return f.room }
func (f *ViewFactory) SourceView() SourceView         { f.init(); return f.source }
func (f *ViewFactory) CallView() CallView             { f.init(); return f.call }
func (f *ViewFactory) DspView() DspView               { f.init(); return f.dsp }

type roomStatusView struct{ t Transport }

func (v *roomStatusView) SetRoomName(name string) { v.t.SetSerial(JoinRoomName, name) }
func (v *roomStatusView) SetRoomGUID(guid string) { v.t.SetSerial(JoinRoomGUID, guid) }
func (v *roomStatusView) SetSystemPower(on bool)  { v.t.SetDigital(JoinSystemPower, on) }

func (v *roomStatusView) OnPowerOnRequested(fn func()) mvp.Subscription {
	return v.t.OnDigitalInput(JoinPowerOnRequest, risingEdge(fn))
}

func (v *roomStatusView) OnPowerOffRequested(fn func()) mvp.Subscription {
	return v.t.OnDigitalInput(JoinPowerOffRequest, risingEdge(fn))
}

// risingEdge turns a momentary input into one event per press.
func risingEdge(fn func()) func(bool) {
	return func(high bool) {
		if high {
			fn()
		}
	}
}

// indexedSerials writes a label list onto a consecutive serial join range.
type indexedSerials struct {
	what string
	base uint32
	max  int

	mu sync.Mutex
	n  int
}

func (s *indexedSerials) setLabels(t Transport, labels []string) {
	n := s.resize(t, len(labels))
	for i := 0; i < n; i++ {
		t.SetSerial(s.base+uint32(i), labels[i])
	}
}

// resize addresses the first n joins of the range, clearing joins that fall
// out of it. Joins still in range keep their value.
func (s *indexedSerials) resize(t Transport, n int) int {
	n = min(max(n, 0), s.max)
	s.mu.Lock()
	prev := s.n
	s.n = n
	s.mu.Unlock()
	for i := n; i < prev; i++ {
		t.SetSerial(s.base+uint32(i), "")
	}
	return n
}

func (s *indexedSerials) set(t Transport, index int, v string) error {
	s.mu.Lock()
	n := s.n
	s.mu.Unlock()
	if err := mvp.CheckIndex(s.what, index, n); err != nil {
		return err
	}
	t.SetSerial(s.base+uint32(index), v)
	return nil
}

type sourceView struct {
	t     Transport
	dests indexedSerials
}

func (v *sourceView) SetCurrentSource(name string) { v.t.SetSerial(JoinCurrentSource, name) }

// SetDestinationLabels sizes the destination range; each join carries the
// name of the source routed there, written by SetDestinationSource.
func (v *sourceView) SetDestinationLabels(labels []string) {
	v.dests.resize(v.t, len(labels))
}

func (v *sourceView) SetDestinationSource(index int, name string) error {
	return v.dests.set(v.t, index, name)
}

func (v *sourceView) SetLayout(index int, name string) {
	v.t.SetAnalog(JoinLayout, uint16(index))
	v.t.SetSerial(JoinLayoutName, name)
}

type callView struct{ t Transport }

func (v *callView) SetInCall(in bool)             { v.t.SetDigital(JoinInCall, in) }
func (v *callView) SetCallState(label string)     { v.t.SetSerial(JoinCallState, label) }
func (v *callView) SetRemoteParty(name string)    { v.t.SetSerial(JoinRemoteParty, name) }
func (v *callView) SetCallSeconds(seconds uint16) { v.t.SetAnalog(JoinCallSeconds, seconds) }

type dspView struct {
	t      Transport
	blocks indexedSerials
}

func (v *dspView) SetDeviceName(name string) { v.t.SetSerial(JoinDeviceName, name) }

func (v *dspView) SetBlockLabels(labels []string) {
	v.blocks.setLabels(v.t, labels)
	v.t.SetAnalog(JoinBlockCount, uint16(min(len(labels), MaxBlocks)))
}

func (v *dspView) SetBlockLabel(index int, label string) error {
	return v.blocks.set(v.t, index, label)
}
