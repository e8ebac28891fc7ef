package presenter

import (
	"testing"

	"github.com/soocke/roomview-go/config"
	"github.com/soocke/roomview-go/domain/conference"
	"github.com/soocke/roomview-go/domain/room"
)

func newTestRoom(t *testing.T) *room.Room {
	t.Helper()
	return newTestRoomWithCall(t, nil)
}

func newTestRoomWithCall(t *testing.T, call conference.Source) *room.Room {
	t.Helper()
	return room.New(config.DefaultConfig().Room, "", call, nil)
}
