package types

// Presence is the externally reported liveness state of a user. It is a weak
// hint of reachability, not a guarantee.
type Presence string

const (
	PresenceOnline      Presence = "online"
	PresenceOffline     Presence = "offline"
	PresenceUnavailable Presence = "unavailable"
)

// Permission names a capability an account may hold in a space or channel.
type Permission uint8

const (
	PermissionUndefined Permission = iota
	PermissionRead
	PermissionWrite
)

func (p Permission) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionWrite:
		return "write"
	default:
		return "undefined"
	}
}
