// Package room models the switchable AV state of one meeting room: which
// source feeds which destination, the active layout, the TV tuner station
// and system power.
package room

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/soocke/roomview-go/config"
	"github.com/soocke/roomview-go/domain/conference"
)

// Source is a presentation source.
type Source struct {
	Index int
	Name  string
}

// Station is a TV tuner preset.
type Station struct {
	Name    string
	Channel string
}

// Change identifies what part of the room changed.
type Change int

const (
	ChangePower Change = iota + 1
	ChangeRoute
	ChangeLayout
	ChangeStation
)

func (c Change) String() string {
	switch c {
	case ChangePower:
		return "power"
	case ChangeRoute:
		return "route"
	case ChangeLayout:
		return "layout"
	case ChangeStation:
		return "station"
	default:
		return "unknown"
	}
}

// Listener is notified after each change, outside the room's lock.
type Listener func(Change)

var (
	ErrNoSuchSource      = errors.New("room: no such source")
	ErrNoSuchDestination = errors.New("room: no such destination")
	ErrNoSuchLayout      = errors.New("room: no such layout")
	ErrPoweredOff        = errors.New("room: system is powered off")
)

// Room is safe for concurrent use.
type Room struct {
	name         string
	guid         string
	sources      []Source
	destinations []string
	layouts      []string
	stations     []Station
	conference   conference.Source
	logger       *slog.Logger

	mu        sync.Mutex
	powered   bool
	routes    map[int]int // destination -> source
	layout    int
	station   Station
	lastSrc   int
	listeners map[uint64]Listener
	nextID    uint64
}

// New builds a room from configuration. conf may be nil for rooms without a
// codec.
func New(cfg config.RoomConfig, guid string, conf conference.Source, logger *slog.Logger) *Room {
	r := &Room{
		name:         cfg.Name,
		guid:         guid,
		destinations: append([]string(nil), cfg.Destinations...),
		layouts:      append([]string(nil), cfg.Layouts...),
		conference:   conf,
		logger:       logger,
		routes:       make(map[int]int),
		lastSrc:      -1,
		listeners:    make(map[uint64]Listener),
	}
	for i, s := range cfg.Sources {
		r.sources = append(r.sources, Source{Index: i, Name: s})
	}
	for _, s := range cfg.Stations {
		r.stations = append(r.stations, Station{Name: s.Name, Channel: s.Channel})
	}
	return r
}

func (r *Room) Name() string                  { return r.name }
func (r *Room) GUID() string                  { return r.guid }
func (r *Room) Conference() conference.Source { return r.conference }

// Sources returns a copy of the room's sources.
func (r *Room) Sources() []Source { return append([]Source(nil), r.sources...) }

// Destinations returns a copy of the destination names.
func (r *Room) Destinations() []string { return append([]string(nil), r.destinations...) }

// Layouts returns a copy of the layout names.
func (r *Room) Layouts() []string { return append([]string(nil), r.layouts...) }

// Stations returns a copy of the tuner presets.
func (r *Room) Stations() []Station { return append([]Station(nil), r.stations...) }

// AddListener registers l and returns a function that removes it.
func (r *Room) AddListener(l Listener) (remove func()) {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.listeners[id] = l
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.listeners, id)
		r.mu.Unlock()
	}
}

func (r *Room) notify(c Change) {
	r.mu.Lock()
	ids := make([]uint64, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	ls := make([]Listener, 0, len(ids))
	for _, id := range ids {
		ls = append(ls, r.listeners[id])
	}
	r.mu.Unlock()
	if r.logger != nil {
		r.logger.Debug("room changed", "room", r.name, "change", c.String())
	}
	for _, l := range ls {
		l(c)
	}
}

// Powered reports system power.
func (r *Room) Powered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.powered
}

// Start powers the system on. Idempotent.
func (r *Room) Start() { r.setPower(true) }

// Stop powers the system off, clearing routes and hanging up any call.
// Idempotent.
func (r *Room) Stop() { r.setPower(false) }

func (r *Room) setPower(on bool) {
	r.mu.Lock()
	if r.powered == on {
		r.mu.Unlock()
		return
	}
	r.powered = on
	if !on {
		r.routes = make(map[int]int)
		r.lastSrc = -1
	}
	r.mu.Unlock()
	if !on && r.conference != nil && r.conference.Current().Active() {
		r.conference.Hangup()
	}
	r.notify(ChangePower)
}

// Route sends source to each destination. The system must be powered.
func (r *Room) Route(source int, destinations []int) error {
	if source < 0 || source >= len(r.sources) {
		return fmt.Errorf("source %d: %w", source, ErrNoSuchSource)
	}
	for _, d := range destinations {
		if d < 0 || d >= len(r.destinations) {
			return fmt.Errorf("destination %d: %w", d, ErrNoSuchDestination)
		}
	}
	r.mu.Lock()
	if !r.powered {
		r.mu.Unlock()
		return ErrPoweredOff
	}
	for _, d := range destinations {
		r.routes[d] = source
	}
	r.lastSrc = source
	r.mu.Unlock()
	r.notify(ChangeRoute)
	return nil
}

// RouteOf returns the source routed to destination d.
func (r *Room) RouteOf(d int) (Source, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.routes[d]
	if !ok {
		return Source{}, false
	}
	return r.sources[s], true
}

// CurrentSource returns the most recently routed source.
func (r *Room) CurrentSource() (Source, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastSrc < 0 {
		return Source{}, false
	}
	return r.sources[r.lastSrc], true
}

// SelectLayout activates layout i.
func (r *Room) SelectLayout(i int) error {
	if i < 0 || i >= len(r.layouts) {
		return fmt.Errorf("layout %d: %w", i, ErrNoSuchLayout)
	}
	r.mu.Lock()
	if r.layout == i {
		r.mu.Unlock()
		return nil
	}
	r.layout = i
	r.mu.Unlock()
	r.notify(ChangeLayout)
	return nil
}

// Layout returns the active layout index.
func (r *Room) Layout() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.layout
}

// Tune sets the TV tuner station.
func (r *Room) Tune(s Station) error {
	r.mu.Lock()
	if r.station == s {
		r.mu.Unlock()
		return nil
	}
	r.station = s
	r.mu.Unlock()
	r.notify(ChangeStation)
	return nil
}

// Station returns the tuned station; zero when nothing has been tuned.
func (r *Room) Station() Station {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.station
}
