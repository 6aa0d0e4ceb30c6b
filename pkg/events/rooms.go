// Package events delivers realtime session activity to WebSocket clients:
// a transactional persist+NOTIFY publisher, a dedicated LISTEN connection,
// and a connection manager with catchup for reconnecting clients.
package events

import (
	"fmt"
	"strings"
)

// Room name helpers. Rooms map one-to-one onto PostgreSQL NOTIFY channels.
func SessionRoom(sessionID string) string { return "session:" + sessionID }
func StreamRoom(streamID string) string   { return "stream:" + streamID }
func ChannelRoom(channelID string) string { return "channel:" + channelID }

// OutboxWakeupChannel carries transient pings that wake the outbox
// listeners without waiting for their poll interval.
const OutboxWakeupChannel = "outbox_wakeup"

// ValidateRoom rejects subscription requests outside the known room
// namespaces.
func ValidateRoom(room string) error {
	for _, prefix := range []string{"session:", "stream:", "channel:"} {
		if strings.HasPrefix(room, prefix) && len(room) > len(prefix) {
			return nil
		}
	}
	return fmt.Errorf("unknown room %q", room)
}
