package keyrecovery

import (
	"context"

	"github.com/parlorchat/parlor/common/types"
)

//go:generate mockgen -typed -package=keyrecovery -destination=./mocks.go -source=./interface.go

// RoomInfo is the membership view of a room used for peer selection and
// space-parent resolution.
type RoomInfo struct {
	ID      types.RoomID
	IsSpace bool
	// SpaceParent is the recorded parent-space link of a channel. Zero when
	// unknown or when the room is itself a space.
	SpaceParent   types.RoomID
	JoinedMembers []types.UserID
}

// SpaceID resolves the space a room belongs to: the room itself when it is a
// top-level space, otherwise its recorded parent link. The boolean is false
// when the link is missing.
func (r *RoomInfo) SpaceID() (types.RoomID, bool) {
	if r.IsSpace {
		return r.ID, true
	}
	if r.SpaceParent == "" {
		return "", false
	}
	return r.SpaceParent, true
}

// RoomProvider exposes room lookup from the host sync layer.
type RoomProvider interface {
	Room(id types.RoomID) (RoomInfo, bool)
}

// PresenceProvider exposes externally reported liveness signals for users.
type PresenceProvider interface {
	Presence(user types.UserID) types.Presence
	CurrentlyActive(user types.UserID) bool
}

// DeviceRegistry exposes the host device list.
type DeviceRegistry interface {
	// StoredDevices returns the known devices of a user.
	StoredDevices(user types.UserID) []types.Device
	// DeviceByIdentityKey resolves a device from its published identity key.
	DeviceByIdentityKey(algorithm types.Algorithm, key types.IdentityKey) (types.Device, bool)
	// DownloadKeys refreshes the device lists for the given users. Safe to
	// call repeatedly; an in-progress download for a user is shared.
	DownloadKeys(ctx context.Context, users []types.UserID) error
}

// IncomingKeyRequest is the minimal well-formed record handed to the
// per-algorithm decryption engine to ask whether the local store would
// already satisfy a request for this session.
type IncomingKeyRequest struct {
	RoomID    types.RoomID
	Algorithm types.Algorithm
	SessionID types.SessionID
	SenderKey types.IdentityKey
}

// ForwardedSession carries the key material of a single forwarded session.
type ForwardedSession struct {
	RoomID     types.RoomID
	Algorithm  types.Algorithm
	SessionID  types.SessionID
	SenderKey  types.IdentityKey
	SessionKey string
}

// SessionStore is the narrow surface of the host crypto library used by the
// coordinator. The store provides its own internal consistency.
type SessionStore interface {
	// HasKeysFor reports whether the local store would satisfy the given
	// request (the satisfaction probe).
	HasKeysFor(ctx context.Context, req IncomingKeyRequest) (bool, error)
	// ImportSession adds a forwarded session to the local store and retries
	// decryption of events pending on it.
	ImportSession(ctx context.Context, session ForwardedSession) error
	// StillFailing reports whether an event is still undecryptable.
	StillFailing(room types.RoomID, event types.EventID) bool
	// DecryptIfNeeded retries decryption of an encrypted timeline event.
	// Idempotent; a repeated call joins the in-flight attempt. The outcome is
	// reported back through the host's decrypted/failure events, not the
	// return value.
	DecryptIfNeeded(ctx context.Context, room types.RoomID, event types.EventID) error
	// AwaitPending blocks until in-progress decrypt attempts for the room
	// have settled.
	AwaitPending(ctx context.Context, room types.RoomID) error
}

// SecureSender sends authenticated, encrypted device-to-device messages.
type SecureSender interface {
	// SendToDevices encrypts and delivers the payload to every listed device.
	SendToDevices(ctx context.Context, devices []types.Device, payload []byte) error
	// EnsureSessions warms up the secure channel for the listed devices.
	EnsureSessions(ctx context.Context, devices []types.Device) error
	// ShareRoomKeys invokes the library's invite-style key-forwarding
	// primitive for the room, targeted at a single device. The receiving side
	// accepts these forwards only while it holds an outstanding request for
	// the sender; see (*Coordinator).acceptedByOutstandingRequest.
	ShareRoomKeys(ctx context.Context, room types.RoomID, target types.Device) error
}

// EntitlementOracle is the external authority answering whether an account
// holds a permission in a space or channel. Evaluation may fail; callers on
// the serving path treat failure as "not entitled".
type EntitlementOracle interface {
	IsEntitled(ctx context.Context, space, channel types.RoomID, account types.AccountAddress, permission types.Permission) (bool, error)
}

// AccountResolver maps a protocol-level user id to its account address.
type AccountResolver interface {
	AccountAddress(user types.UserID) (types.AccountAddress, error)
}
