package fusion

import (
	"math"
	"time"

	"github.com/soocke/roomview-go/domain/conference"
	"github.com/soocke/roomview-go/domain/dsp"
	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/ui/model"
	"github.com/soocke/roomview-go/ui/mvp"
)

// RoomStatusPresenter reports room identity and power, and applies remote
// power requests.
type RoomStatusPresenter struct {
	*mvp.Base[RoomStatusView]
	room *room.Room
}

func NewRoomStatusPresenter(opts mvp.Options, r *room.Room) *RoomStatusPresenter {
	p := &RoomStatusPresenter{Base: mvp.NewBase[RoomStatusView](opts), room: r}
	p.OnRender(func(v RoomStatusView) {
		v.SetRoomName(r.Name())
		v.SetRoomGUID(r.GUID())
		v.SetSystemPower(r.Powered())
	})
	p.OnAttach(func(v RoomStatusView) []mvp.Subscription {
		return []mvp.Subscription{
			v.OnPowerOnRequested(func() {
				p.logInfo("remote power on")
				r.Start()
			}),
			v.OnPowerOffRequested(func() {
				p.logInfo("remote power off")
				r.Stop()
			}),
		}
	})
	p.OnClose(onRoomChange(r, p, room.ChangePower))
	return p
}

func (p *RoomStatusPresenter) logInfo(msg string) {
	if l := p.Logger(); l != nil {
		l.Info(msg, "room", p.room.Name())
	}
}

// SourcePresenter reports the current source, per-destination routes and
// the active layout.
type SourcePresenter struct {
	*mvp.Base[SourceView]
	room *room.Room
}

func NewSourcePresenter(opts mvp.Options, r *room.Room) *SourcePresenter {
	p := &SourcePresenter{Base: mvp.NewBase[SourceView](opts), room: r}
	p.OnRender(p.render)
	p.OnClose(onRoomChange(r, p, room.ChangeRoute, room.ChangeLayout, room.ChangePower))
	return p
}

func (p *SourcePresenter) render(v SourceView) {
	name := ""
	if s, ok := p.room.CurrentSource(); ok {
		name = s.Name
	}
	v.SetCurrentSource(name)
	dests := p.room.Destinations()
	v.SetDestinationLabels(dests)
	for i := range dests {
		routed := ""
		if s, ok := p.room.RouteOf(i); ok {
			routed = s.Name
		}
		if err := v.SetDestinationSource(i, routed); err != nil {
			// more destinations than the symbol has joins for
			if l := p.Logger(); l != nil {
				l.Warn("destination not reported", "error", err)
			}
			break
		}
	}
	layouts := p.room.Layouts()
	if i := p.room.Layout(); i < len(layouts) {
		v.SetLayout(i, layouts[i])
	}
}

// CallPresenter reports the room call and its running duration.
type CallPresenter struct {
	*mvp.Base[CallView]
	call  conference.Source
	calls *model.CallLog
	now   func() time.Time
}

func NewCallPresenter(opts mvp.Options, call conference.Source, now func() time.Time) *CallPresenter {
	if now == nil {
		now = time.Now
	}
	p := &CallPresenter{Base: mvp.NewBase[CallView](opts), call: call, calls: model.NewCallLog(0), now: now}
	p.OnRender(p.render)
	if call != nil {
		remove := call.AddListener(func(_, next conference.State) {
			p.calls.Observe(next == conference.StateConnected, call.RemoteParty(), p.now())
			p.RefreshAsync()
		})
		p.OnClose(func() error { remove(); return nil })
	}
	return p
}

// Tick advances the call duration while connected.
func (p *CallPresenter) Tick(now time.Time) {
	if p == nil || p.call == nil {
		return
	}
	connected := p.call.Current() == conference.StateConnected
	was := p.calls.Active()
	p.calls.Observe(connected, p.call.RemoteParty(), now)
	if connected || was {
		p.RefreshAsync()
	}
}

func (p *CallPresenter) render(v CallView) {
	state, remote := conference.StateIdle, ""
	if p.call != nil {
		state, remote = p.call.Current(), p.call.RemoteParty()
	}
	v.SetInCall(state == conference.StateConnected)
	v.SetCallState(state.String())
	v.SetRemoteParty(remote)
	cur, _ := p.calls.Current()
	v.SetCallSeconds(uint16(min(cur.Duration/time.Second, math.MaxUint16)))
}

// DspStatusPresenter reports the DSP device's registered blocks.
type DspStatusPresenter struct {
	*mvp.Base[DspView]
	device *dsp.Device
}

func NewDspStatusPresenter(opts mvp.Options, device *dsp.Device) *DspStatusPresenter {
	p := &DspStatusPresenter{Base: mvp.NewBase[DspView](opts), device: device}
	p.OnRender(p.render)
	return p
}

func (p *DspStatusPresenter) render(v DspView) {
	if p.device == nil {
		v.SetDeviceName("")
		v.SetBlockLabels(nil)
		return
	}
	v.SetDeviceName(p.device.Name())
	blocks := p.device.Blocks()
	labels := make([]string, len(blocks))
	for i, b := range blocks {
		labels[i] = b.String()
	}
	v.SetBlockLabels(labels)
}

// onRoomChange refreshes p on the given room changes until the returned
// close hook runs.
func onRoomChange(r *room.Room, p mvp.Presenter, changes ...room.Change) func() error {
	remove := r.AddListener(func(c room.Change) {
		for _, want := range changes {
			if c == want {
				p.RefreshAsync()
				return
			}
		}
	})
	return func() error { remove(); return nil }
}
