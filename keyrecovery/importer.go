package keyrecovery

import (
	"context"

	"go.uber.org/zap"

	"github.com/parlorchat/parlor/common/types"
)

// handleForwardedKey imports key material pushed by a peer, but only when we
// actually solicited it. Unsolicited forwards are dropped: accepting them
// would let any room member inject sessions and spoof history.
func (c *Coordinator) handleForwardedKey(ctx context.Context, from types.UserID, senderKey types.IdentityKey, fk *ForwardedKey) {
	if fk.RoomID == "" || fk.Algorithm == "" || fk.SessionID == "" || fk.SessionKey == "" {
		c.logger.Debug("dropping malformed forwarded key", zap.Stringer("from", from))
		return
	}
	device, ok := c.devices.DeviceByIdentityKey(fk.Algorithm, senderKey)
	if !ok {
		c.logger.Warn("forwarded key from unknown device",
			zap.Stringer("from", from),
			zap.Stringer("senderKey", senderKey),
		)
		return
	}
	if device.UserID != from {
		c.logger.Warn("forwarded key sender key belongs to another user",
			zap.Stringer("from", from),
			zap.Stringer("owner", device.UserID),
		)
		return
	}
	if !c.solicited(fk, device) {
		keysRejected.Inc()
		c.logger.Warn("dropping unsolicited forwarded key",
			zap.Stringer("from", from),
			zap.Stringer("room", fk.RoomID),
			zap.Stringer("session", fk.SessionID),
		)
		return
	}
	have, err := c.store.HasKeysFor(ctx, IncomingKeyRequest{
		RoomID:    fk.RoomID,
		Algorithm: fk.Algorithm,
		SessionID: fk.SessionID,
		SenderKey: fk.SenderKey,
	})
	if err == nil && have {
		c.logger.Debug("already hold forwarded session",
			zap.Stringer("room", fk.RoomID),
			zap.Stringer("session", fk.SessionID),
		)
		return
	}
	if err := c.store.ImportSession(ctx, ForwardedSession{
		RoomID:     fk.RoomID,
		Algorithm:  fk.Algorithm,
		SessionID:  fk.SessionID,
		SenderKey:  fk.SenderKey,
		SessionKey: fk.SessionKey,
	}); err != nil {
		c.logger.Warn("failed to import forwarded session",
			zap.Stringer("room", fk.RoomID),
			zap.Stringer("session", fk.SessionID),
			zap.Error(err),
		)
		return
	}
	keysImported.Inc()
	c.logger.Debug("imported forwarded session",
		zap.Stringer("room", fk.RoomID),
		zap.Stringer("session", fk.SessionID),
		zap.Stringer("from", from),
	)
	c.debounce.Trigger()
}

// solicited decides whether a forwarded key answers something we asked for:
// either the session is one our failing events name, or the sending device is
// one we addressed a request for this room to. Invite-style forwards carry
// whole rooms at once, so sessions beyond the requested ones are accepted
// from a requested device; see SecureSender.ShareRoomKeys.
func (c *Coordinator) solicited(fk *ForwardedKey, device types.Device) bool {
	if c.tracker.hasFailingSession(fk.RoomID, fk.SessionID) {
		return true
	}
	return c.acceptedByOutstandingRequest(fk.RoomID, device)
}

func (c *Coordinator) acceptedByOutstandingRequest(room types.RoomID, device types.Device) bool {
	return c.tracker.outstandingRequestTo(room, device.UserID, device.ID)
}
