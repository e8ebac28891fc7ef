package presenter

import (
	"sync"
	"time"

	"github.com/soocke/roomview-go/domain/conference"
	"github.com/soocke/roomview-go/ui/mvp"
)

// fakeList records labels and per-index selection like a button list.
type fakeList struct {
	mu       sync.Mutex
	labels   []string
	selected map[int]bool
	sets     int
}

func (l *fakeList) setLabels(labels []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.labels = append([]string(nil), labels...)
	l.selected = make(map[int]bool)
	l.sets++
}

func (l *fakeList) setSelected(what string, i int, sel bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := mvp.CheckIndex(what, i, len(l.labels)); err != nil {
		return err
	}
	l.selected[i] = sel
	l.sets++
	return nil
}

func (l *fakeList) isSelected(i int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selected[i]
}

func (l *fakeList) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.labels...)
}

type fakeShareView struct {
	fakeList
	srcs       fakeList
	visibility mvp.Event[bool]
	pressed    mvp.Event[int]
	srcPressed mvp.Event[int]
	share      mvp.Signal

	source  string
	enabled bool
}

func (v *fakeShareView) OnVisibilityChanged(fn func(bool)) mvp.Subscription {
	return v.visibility.Subscribe(fn)
}
func (v *fakeShareView) SetSourceName(name string)       { v.mu.Lock(); v.source = name; v.sets++; v.mu.Unlock() }
func (v *fakeShareView) SetDestinationLabels(l []string) { v.setLabels(l) }
func (v *fakeShareView) SetSourceLabels(l []string)      { v.srcs.setLabels(l) }
func (v *fakeShareView) SetSourceSelected(i int, sel bool) error {
	return v.srcs.setSelected("source", i, sel)
}
func (v *fakeShareView) OnSourcePressed(fn func(int)) mvp.Subscription {
	return v.srcPressed.Subscribe(fn)
}
func (v *fakeShareView) SetDestinationSelected(i int, sel bool) error {
	return v.setSelected("destination", i, sel)
}
func (v *fakeShareView) SetShareEnabled(b bool) { v.mu.Lock(); v.enabled = b; v.sets++; v.mu.Unlock() }
func (v *fakeShareView) OnDestinationPressed(fn func(int)) mvp.Subscription {
	return v.pressed.Subscribe(fn)
}
func (v *fakeShareView) OnShare(fn func()) mvp.Subscription { return v.share.Subscribe(fn) }

func (v *fakeShareView) shareEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}

type fakeLayoutView struct {
	fakeList
	pressed mvp.Event[int]
}

func (v *fakeLayoutView) SetLayoutLabels(l []string) { v.setLabels(l) }
func (v *fakeLayoutView) SetLayoutSelected(i int, sel bool) error {
	return v.setSelected("layout", i, sel)
}
func (v *fakeLayoutView) OnLayoutPressed(fn func(int)) mvp.Subscription {
	return v.pressed.Subscribe(fn)
}

type fakeTvView struct {
	fakeList
	pressed mvp.Event[int]
	station string
}

func (v *fakeTvView) SetPresetLabels(l []string) { v.setLabels(l) }
func (v *fakeTvView) SetPresetSelected(i int, sel bool) error {
	return v.setSelected("preset", i, sel)
}
func (v *fakeTvView) SetStationName(n string) { v.mu.Lock(); v.station = n; v.mu.Unlock() }
func (v *fakeTvView) OnPresetPressed(fn func(int)) mvp.Subscription {
	return v.pressed.Subscribe(fn)
}

func (v *fakeTvView) stationName() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.station
}

type fakeHostView struct {
	mu     sync.Mutex
	title  string
	open   bool
	closer mvp.Signal
}

func (v *fakeHostView) SetTitle(t string) { v.mu.Lock(); v.title = t; v.mu.Unlock() }
func (v *fakeHostView) SetOpen(o bool)    { v.mu.Lock(); v.open = o; v.mu.Unlock() }
func (v *fakeHostView) OnCloseRequested(fn func()) mvp.Subscription {
	return v.closer.Subscribe(fn)
}

func (v *fakeHostView) state() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title, v.open
}

type fakePowerView struct {
	mu       sync.Mutex
	on       bool
	controls bool
	renders  int
	toggle   mvp.Signal
}

func (v *fakePowerView) SetPowerState(on bool) { v.mu.Lock(); v.on = on; v.renders++; v.mu.Unlock() }
func (v *fakePowerView) SetControlsEnabled(b bool) {
	v.mu.Lock()
	v.controls = b
	v.mu.Unlock()
}
func (v *fakePowerView) OnPowerToggle(fn func()) mvp.Subscription { return v.toggle.Subscribe(fn) }

func (v *fakePowerView) state() (on, controls bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.on, v.controls
}

type fakeCallView struct {
	mu       sync.Mutex
	state    string
	remote   string
	duration time.Duration
	hangup   bool
	answer   bool
	onHangup mvp.Signal
	onAnswer mvp.Signal
}

func (v *fakeCallView) SetCallState(s string)  { v.mu.Lock(); v.state = s; v.mu.Unlock() }
func (v *fakeCallView) SetRemoteParty(s string) { v.mu.Lock(); v.remote = s; v.mu.Unlock() }
func (v *fakeCallView) SetCallDuration(d time.Duration) {
	v.mu.Lock()
	v.duration = d
	v.mu.Unlock()
}
func (v *fakeCallView) SetHangupEnabled(b bool)             { v.mu.Lock(); v.hangup = b; v.mu.Unlock() }
func (v *fakeCallView) SetAnswerEnabled(b bool)             { v.mu.Lock(); v.answer = b; v.mu.Unlock() }
func (v *fakeCallView) OnHangup(fn func()) mvp.Subscription { return v.onHangup.Subscribe(fn) }
func (v *fakeCallView) OnAnswer(fn func()) mvp.Subscription { return v.onAnswer.Subscribe(fn) }

func (v *fakeCallView) snapshot() fakeCallView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return fakeCallView{state: v.state, remote: v.remote, duration: v.duration, hangup: v.hangup, answer: v.answer}
}

type fakeItemView struct {
	mu      sync.Mutex
	label   string
	visible bool
}

func (v *fakeItemView) SetLabel(s string)   { v.mu.Lock(); v.label = s; v.mu.Unlock() }
func (v *fakeItemView) SetVisible(b bool)   { v.mu.Lock(); v.visible = b; v.mu.Unlock() }
func (v *fakeItemView) get() (string, bool) { v.mu.Lock(); defer v.mu.Unlock(); return v.label, v.visible }

// fakeViews is a ViewFactory handing out the fakes above.
type fakeViews struct {
	call   *fakeCallView
	items  []*fakeItemView
	layout *fakeLayoutView
	tv     *fakeTvView
	share  *fakeShareView
	host   *fakeHostView
	power  *fakePowerView
}

func newFakeViews() *fakeViews {
	return &fakeViews{
		call:   &fakeCallView{},
		layout: &fakeLayoutView{},
		tv:     &fakeTvView{},
		share:  &fakeShareView{},
		host:   &fakeHostView{},
		power:  &fakePowerView{},
	}
}

func (f *fakeViews) CallStatusView() CallStatusView { return f.call }
func (f *fakeViews) ChildCallViews(n int) []CallItemView {
	out := make([]CallItemView, n)
	for i := range out {
		it := &fakeItemView{}
		f.items = append(f.items, it)
		out[i] = it
	}
	return out
}
func (f *fakeViews) LayoutView() LayoutView       { return f.layout }
func (f *fakeViews) TvPresetsView() TvPresetsView { return f.tv }
func (f *fakeViews) ShareMenuView() ShareMenuView { return f.share }
func (f *fakeViews) PopupHostView() PopupHostView { return f.host }
func (f *fakeViews) PowerView() PowerView         { return f.power }

// fakeCall is a synchronous conference.Source.
type fakeCall struct {
	mu        sync.Mutex
	state     conference.State
	remote    string
	listeners map[int]conference.StateListener
	next      int
	hangups   int
	answers   int
}

func newFakeCall() *fakeCall { return &fakeCall{listeners: make(map[int]conference.StateListener)} }

func (c *fakeCall) Current() conference.State { c.mu.Lock(); defer c.mu.Unlock(); return c.state }
func (c *fakeCall) RemoteParty() string       { c.mu.Lock(); defer c.mu.Unlock(); return c.remote }
func (c *fakeCall) Dial(number string)        { c.set(conference.StateDialing, number) }
func (c *fakeCall) Answer()                   { c.mu.Lock(); c.answers++; c.mu.Unlock(); c.set(conference.StateConnected, c.RemoteParty()) }
func (c *fakeCall) Hangup()                   { c.mu.Lock(); c.hangups++; c.mu.Unlock(); c.set(conference.StateIdle, "") }

func (c *fakeCall) AddListener(l conference.StateListener) (remove func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.next
	c.next++
	c.listeners[id] = l
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *fakeCall) listenerCount() int { c.mu.Lock(); defer c.mu.Unlock(); return len(c.listeners) }

func (c *fakeCall) set(next conference.State, remote string) {
	c.mu.Lock()
	prev := c.state
	c.state, c.remote = next, remote
	ls := make([]conference.StateListener, 0, len(c.listeners))
	for _, l := range c.listeners {
		ls = append(ls, l)
	}
	c.mu.Unlock()
	if prev == next {
		return
	}
	for _, l := range ls {
		l(prev, next)
	}
}

var _ conference.Source = (*fakeCall)(nil)
