package i

import "github.com/beka-birhanu/robot-coverage/room"

// RoomCatalog looks up predefined rooms by name.
type RoomCatalog interface {
	// ByName returns the named room or room.ErrRoomNotFound.
	ByName(name string) (*room.Room, error)

	// Names lists every room name in sorted order.
	Names() []string
}
