package presenter

import (
	"sync"
	"time"

	"github.com/soocke/roomview-go/domain/conference"
	"github.com/soocke/roomview-go/ui/model"
	"github.com/soocke/roomview-go/ui/mvp"
)

// CallStatusPresenter shows the room call's state, remote party and duration,
// plus the remote parties of recent calls on child item views.
type CallStatusPresenter struct {
	*mvp.Base[CallStatusView]
	calls *model.CallLog
	now   func() time.Time

	mu             sync.Mutex
	source         conference.Source
	removeListener func()
	items          []CallItemView
}

// NewCallStatusPresenter presents calls through calls; nil keeps no history.
func NewCallStatusPresenter(opts mvp.Options, calls *model.CallLog, now func() time.Time) *CallStatusPresenter {
	if calls == nil {
		calls = model.NewCallLog(0)
	}
	if now == nil {
		now = time.Now
	}
	p := &CallStatusPresenter{Base: mvp.NewBase[CallStatusView](opts), calls: calls, now: now}
	p.OnRender(p.render)
	p.OnAttach(func(v CallStatusView) []mvp.Subscription {
		return []mvp.Subscription{
			v.OnHangup(func() {
				if src := p.ConferenceSource(); src != nil {
					src.Hangup()
				}
			}),
			v.OnAnswer(func() {
				if src := p.ConferenceSource(); src != nil {
					src.Answer()
				}
			}),
		}
	})
	p.OnClose(func() error {
		p.SetConferenceSource(nil)
		return nil
	})
	return p
}

// SetConferenceSource swaps the call being presented. The previous source's
// listener is removed first.
func (p *CallStatusPresenter) SetConferenceSource(src conference.Source) {
	p.mu.Lock()
	remove := p.removeListener
	p.removeListener = nil
	p.source = src
	p.mu.Unlock()
	if remove != nil {
		remove()
	}
	if src != nil && !p.Closed() {
		// registered outside p.mu: the listener itself takes p.mu
		r := src.AddListener(p.onState)
		p.mu.Lock()
		if p.source == src {
			p.removeListener = r
			r = nil
		}
		p.mu.Unlock()
		if r != nil {
			r()
		}
	}
	p.RefreshAsync()
}

// ConferenceSource returns the call being presented, or nil.
func (p *CallStatusPresenter) ConferenceSource() conference.Source {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

// SetCallItems binds the recent-call rows.
func (p *CallStatusPresenter) SetCallItems(items []CallItemView) {
	p.mu.Lock()
	p.items = append([]CallItemView(nil), items...)
	p.mu.Unlock()
	p.RefreshAsync()
}

// Recent returns the remote parties of finished calls, newest first.
func (p *CallStatusPresenter) Recent() []string {
	recs := p.calls.Recent()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = recentLabel(r)
	}
	return out
}

func (p *CallStatusPresenter) onState(prev, next conference.State) {
	remote := ""
	if src := p.ConferenceSource(); src != nil {
		remote = src.RemoteParty()
	}
	p.calls.Observe(next == conference.StateConnected, remote, p.now())
	p.RefreshAsync()
}

// Tick advances the call timer and refreshes while a call is connected.
func (p *CallStatusPresenter) Tick(now time.Time) {
	if p == nil {
		return
	}
	src := p.ConferenceSource()
	if src == nil {
		return
	}
	connected := src.Current() == conference.StateConnected
	wasActive := p.calls.Active()
	p.calls.Observe(connected, src.RemoteParty(), now)
	if connected || wasActive {
		p.RefreshAsync()
	}
}

func (p *CallStatusPresenter) render(v CallStatusView) {
	state := conference.StateIdle
	remote := ""
	if src := p.ConferenceSource(); src != nil {
		state = src.Current()
		remote = src.RemoteParty()
	}
	v.SetCallState(callStateLabel(state))
	v.SetRemoteParty(remote)
	cur, _ := p.calls.Current()
	v.SetCallDuration(cur.Duration)
	v.SetHangupEnabled(state.Active())
	v.SetAnswerEnabled(state == conference.StateRinging)

	p.mu.Lock()
	items := p.items
	p.mu.Unlock()
	recent := p.Recent()
	for i, item := range items {
		if i < len(recent) {
			item.SetLabel(recent[i])
			item.SetVisible(true)
			continue
		}
		item.SetLabel("")
		item.SetVisible(false)
	}
}

func recentLabel(r model.CallRecord) string {
	if r.Remote == "" {
		return "Unknown"
	}
	return r.Remote
}

func callStateLabel(s conference.State) string {
	switch s {
	case conference.StateDialing:
		return "Dialing"
	case conference.StateRinging:
		return "Incoming Call"
	case conference.StateConnected:
		return "Connected"
	default:
		return "No Call"
	}
}
