package conference

import (
	"log/slog"
	"sync"
	"testing"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type transitionRecorder struct {
	mu  sync.Mutex
	seq []State
}

func (r *transitionRecorder) listener(prev, next State) {
	r.mu.Lock()
	r.seq = append(r.seq, next)
	r.mu.Unlock()
}

func (r *transitionRecorder) states() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.seq...)
}

func TestFSM_OutgoingCallFlow(t *testing.T) {
	f := NewFSM(discardLogger, 0, nil)
	defer f.Close()
	r := &transitionRecorder{}
	f.AddListener(r.listener)

	f.Dial("1234")
	f.Sync()
	if f.Current() != StateDialing || f.RemoteParty() != "1234" {
		t.Fatalf("expected dialing 1234, got %v %q", f.Current(), f.RemoteParty())
	}
	f.Answer() // only valid while ringing
	f.RemoteAnswered()
	f.Sync()
	if f.Current() != StateConnected {
		t.Fatalf("expected connected, got %v", f.Current())
	}
	f.Hangup()
	f.Sync()
	if f.Current() != StateIdle || f.RemoteParty() != "" {
		t.Fatalf("expected idle with no remote, got %v %q", f.Current(), f.RemoteParty())
	}
	want := []State{StateDialing, StateConnected, StateIdle}
	got := r.states()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFSM_IncomingCallFlow(t *testing.T) {
	f := NewFSM(discardLogger, 0, nil)
	defer f.Close()
	f.Incoming("Front Desk")
	f.Dial("999") // ignored while ringing
	f.Sync()
	if f.Current() != StateRinging || f.RemoteParty() != "Front Desk" {
		t.Fatalf("expected ringing from Front Desk, got %v %q", f.Current(), f.RemoteParty())
	}
	f.Answer()
	f.Sync()
	if f.Current() != StateConnected {
		t.Fatalf("expected connected, got %v", f.Current())
	}
}

func TestFSM_DialTimeout(t *testing.T) {
	base := time.Unix(1000, 0)
	f := NewFSM(discardLogger, 5*time.Second, func() time.Time { return base })
	defer f.Close()

	f.Dial("42")
	f.Tick(base.Add(3 * time.Second))
	f.Sync()
	if f.Current() != StateDialing {
		t.Fatalf("timed out too early: %v", f.Current())
	}
	f.Tick(base.Add(6 * time.Second))
	f.Sync()
	if f.Current() != StateIdle {
		t.Fatalf("expected idle after timeout, got %v", f.Current())
	}
}

func TestFSM_RemoveListener(t *testing.T) {
	f := NewFSM(discardLogger, 0, nil)
	defer f.Close()
	r := &transitionRecorder{}
	remove := f.AddListener(r.listener)
	f.Dial("1")
	f.Sync()
	remove()
	remove()
	f.Hangup()
	f.Sync()
	if got := r.states(); len(got) != 1 || got[0] != StateDialing {
		t.Fatalf("listener ran after removal: %v", got)
	}
}

func TestFSM_CloseIsIdempotent(t *testing.T) {
	f := NewFSM(discardLogger, 0, nil)
	f.Close()
	f.Close()
	// Calls after close are dropped rather than panicking.
	f.Dial("1")
	f.Sync()
	remove := f.AddListener(func(State, State) {})
	remove()
	if f.Current() != StateIdle {
		t.Fatalf("state changed after close: %v", f.Current())
	}
}
