package fusion

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soocke/roomview-go/config"
	"github.com/soocke/roomview-go/core"
	"github.com/soocke/roomview-go/domain/conference"
	"github.com/soocke/roomview-go/domain/dsp"
	"github.com/soocke/roomview-go/domain/room"
	"github.com/soocke/roomview-go/ui/mvp"
)

type harness struct {
	room     *room.Room
	call     *conference.FSM
	table    *SigTable
	dispatch *mvp.SerialDispatcher
	core     *core.Core
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Fusion.RoomGUID = "8f14e45f-ceea-467a-9575-1b2a7c0a1d2e"
	device, err := dsp.NewDeviceFromConfig(cfg.DSP)
	require.NoError(t, err)
	call := conference.NewFSM(nil, 30*time.Second, nil)
	d := mvp.NewSerialDispatcher(nil)
	t.Cleanup(func() {
		call.Close()
		_ = d.Close()
	})
	return &harness{
		room:     room.New(cfg.Room, cfg.Fusion.RoomGUID, call, nil),
		call:     call,
		table:    NewSigTable(),
		dispatch: d,
		core:     &core.Core{Config: cfg, Dispatcher: d, DSP: device},
	}
}

func (h *harness) wait(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.dispatch.Wait(ctx))
}

func TestNew_RefreshesEachPresenterExactlyOnce(t *testing.T) {
	h := newHarness(t)
	fi, err := New(h.room, h.table, h.core)
	require.NoError(t, err)
	defer fi.Close()
	h.wait(t)

	require.Len(t, fi.Presenters(), 4)
	for _, p := range fi.Presenters() {
		st := p.Stats()
		require.Equal(t, uint64(1), st.AsyncRequests, p.Name())
		require.Equal(t, uint64(1), st.Refreshes, p.Name())
		require.Equal(t, uint64(1), st.Binds, p.Name())
	}
}

func TestNew_PublishesInitialSigs(t *testing.T) {
	h := newHarness(t)
	fi, err := New(h.room, h.table, h.core)
	require.NoError(t, err)
	defer fi.Close()
	h.wait(t)

	name, ok := h.table.Serial(JoinRoomName)
	require.True(t, ok)
	require.Equal(t, h.room.Name(), name)
	guid, _ := h.table.Serial(JoinRoomGUID)
	require.Equal(t, h.room.GUID(), guid)
	power, ok := h.table.Digital(JoinSystemPower)
	require.True(t, ok)
	require.False(t, power)
	state, _ := h.table.Serial(JoinCallState)
	require.Equal(t, "idle", state)

	count, ok := h.table.Analog(JoinBlockCount)
	require.True(t, ok)
	require.Equal(t, uint16(h.core.DSP.Len()), count)
	first, _ := h.table.Serial(JoinBlockBase)
	require.Equal(t, h.core.DSP.Blocks()[0].String(), first)
}

func TestRemotePowerRequests(t *testing.T) {
	h := newHarness(t)
	fi, err := New(h.room, h.table, h.core)
	require.NoError(t, err)
	defer fi.Close()

	h.table.Press(JoinPowerOnRequest)
	require.True(t, h.room.Powered())
	h.wait(t)
	power, _ := h.table.Digital(JoinSystemPower)
	require.True(t, power)

	h.table.Press(JoinPowerOffRequest)
	require.False(t, h.room.Powered())
	h.wait(t)
	power, _ = h.table.Digital(JoinSystemPower)
	require.False(t, power)
}

func TestRoutesReported(t *testing.T) {
	h := newHarness(t)
	fi, err := New(h.room, h.table, h.core)
	require.NoError(t, err)
	defer fi.Close()

	h.room.Start()
	require.NoError(t, h.room.Route(1, []int{0, 2}))
	h.wait(t)
	cur, _ := h.table.Serial(JoinCurrentSource)
	require.Equal(t, "Room PC", cur)
	d0, _ := h.table.Serial(JoinDestinationBase)
	d1, _ := h.table.Serial(JoinDestinationBase + 1)
	d2, _ := h.table.Serial(JoinDestinationBase + 2)
	require.Equal(t, []string{"Room PC", "", "Room PC"}, []string{d0, d1, d2})
}

func TestCallReported(t *testing.T) {
	h := newHarness(t)
	fi, err := New(h.room, h.table, h.core)
	require.NoError(t, err)
	defer fi.Close()

	h.call.Incoming("Alice")
	h.call.Answer()
	h.call.Sync()
	h.wait(t)
	in, _ := h.table.Digital(JoinInCall)
	require.True(t, in)
	remote, _ := h.table.Serial(JoinRemoteParty)
	require.Equal(t, "Alice", remote)

	fi.Tick(time.Now().Add(5 * time.Second))
	h.wait(t)
	secs, _ := h.table.Analog(JoinCallSeconds)
	require.GreaterOrEqual(t, secs, uint16(4))
}

func TestClose_TwiceIsSafe(t *testing.T) {
	h := newHarness(t)
	fi, err := New(h.room, h.table, h.core)
	require.NoError(t, err)
	h.wait(t)

	require.NoError(t, fi.Close())
	require.NoError(t, fi.Close())
	for _, p := range fi.Presenters() {
		require.Equal(t, uint64(1), p.Stats().Binds, p.Name())
	}

	// closed presenters ignore room changes
	writes := h.table.Writes()
	h.room.Start()
	h.wait(t)
	require.Equal(t, writes, h.table.Writes())
}

func TestClose_ContinuesPastFailures(t *testing.T) {
	h := newHarness(t)
	fi, err := New(h.room, h.table, h.core)
	require.NoError(t, err)
	h.wait(t)

	errA := errors.New("room status teardown")
	errB := errors.New("dsp teardown")
	f := fi.Factory()
	f.RoomStatus.OnClose(func() error { return errA })
	f.Dsp.OnClose(func() error { return errB })

	err = fi.Close()
	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
	require.True(t, f.Source.Closed())
	require.True(t, f.Call.Closed())
	require.True(t, f.Dsp.Closed())
	require.NoError(t, fi.Close())
}

func TestDspView_OutOfRangeIndex(t *testing.T) {
	table := NewSigTable()
	v := NewViewFactory(table).DspView()
	v.SetBlockLabels([]string{"crossover:x1", "delay:d1"})
	require.NoError(t, v.SetBlockLabel(1, "delay:d2"))
	err := v.SetBlockLabel(2, "router:r1")
	require.ErrorIs(t, err, mvp.ErrIndexOutOfRange)
	got, _ := table.Serial(JoinBlockBase + 1)
	require.Equal(t, "delay:d2", got)
	_, written := table.Serial(JoinBlockBase + 2)
	require.False(t, written)
}

func TestSourceView_ShrinkingLabelsClearsJoins(t *testing.T) {
	table := NewSigTable()
	v := NewViewFactory(table).SourceView()
	v.SetDestinationLabels([]string{"a", "b", "c"})
	require.NoError(t, v.SetDestinationSource(2, "Laptop"))
	v.SetDestinationLabels([]string{"a"})
	got, _ := table.Serial(JoinDestinationBase + 2)
	require.Empty(t, got)
	require.ErrorIs(t, v.SetDestinationSource(2, "Laptop"), mvp.ErrIndexOutOfRange)
}

func TestLoggingTransport_Forwards(t *testing.T) {
	table := NewSigTable()
	lt := NewLoggingTransport(table, nil)
	lt.SetSerial(JoinRoomName, "Board Room")
	lt.SetAnalog(JoinLayout, 2)
	presses := 0
	sub := lt.OnDigitalInput(JoinPowerOnRequest, func(high bool) {
		if high {
			presses++
		}
	})
	table.Press(JoinPowerOnRequest)
	require.NoError(t, sub.Close())
	table.Press(JoinPowerOnRequest)

	require.Equal(t, 1, presses)
	snap := table.Snapshot()
	require.Equal(t, "Board Room", snap.Serial[JoinRoomName])
	require.Equal(t, uint16(2), snap.Analog[JoinLayout])
}

// serialLog records every serial write on top of a SigTable.
type serialLog struct {
	*SigTable
	mu     sync.Mutex
	writes map[uint32][]string
}

func (l *serialLog) SetSerial(join uint32, v string) {
	l.mu.Lock()
	l.writes[join] = append(l.writes[join], v)
	l.mu.Unlock()
	l.SigTable.SetSerial(join, v)
}

func (l *serialLog) history(join uint32) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.writes[join]...)
}

func TestSourceView_RelabelKeepsRoutedJoins(t *testing.T) {
	log := &serialLog{SigTable: NewSigTable(), writes: make(map[uint32][]string)}
	v := NewViewFactory(log).SourceView()
	labels := []string{"Left Display", "Right Display", "Projector"}

	v.SetDestinationLabels(labels)
	require.NoError(t, v.SetDestinationSource(0, "Laptop"))
	v.SetDestinationLabels(labels)
	require.NoError(t, v.SetDestinationSource(0, "Laptop"))

	require.Equal(t, []string{"Laptop", "Laptop"}, log.history(JoinDestinationBase))
	require.Empty(t, log.history(JoinDestinationBase+1))
}
