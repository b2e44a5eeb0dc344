// Package types defines the domain identifiers and small value types shared
// across the client.
package types

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// UserID is the protocol-level identifier of an account on the network.
type UserID string

func (id UserID) String() string { return string(id) }

// AccountAddress is the on-chain address of an account, used for entitlement
// checks. It is resolved from a UserID by the host identity layer.
type AccountAddress string

func (a AccountAddress) String() string { return string(a) }

// DeviceID identifies one device of a user. A secure-channel endpoint is
// always the (UserID, DeviceID) pair.
type DeviceID string

func (id DeviceID) String() string { return string(id) }

// RoomID identifies a room: either a space or a channel inside a space.
type RoomID string

func (id RoomID) String() string { return string(id) }

// SessionID identifies a ratchet session (group key epoch) within a room.
type SessionID string

func (id SessionID) String() string { return string(id) }

// EventID identifies a single timeline event.
type EventID string

func (id EventID) String() string { return string(id) }

// Algorithm names the group-encryption algorithm a session belongs to.
type Algorithm string

func (a Algorithm) String() string { return string(a) }

// IdentityKey is the published curve key of a device, used to address it over
// the secure channel and to resolve an inbound sender back to a device.
type IdentityKey string

func (k IdentityKey) String() string { return string(k) }

// Device is the secure-channel address of a single device.
type Device struct {
	UserID      UserID
	ID          DeviceID
	IdentityKey IdentityKey
}

func (d Device) String() string {
	return fmt.Sprintf("%s/%s", d.UserID, d.ID)
}

func (d *Device) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("user", string(d.UserID))
	encoder.AddString("device", string(d.ID))
	return nil
}
