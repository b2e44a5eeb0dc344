package keyrecovery

import (
	"context"

	"go.uber.org/zap"

	"github.com/parlorchat/parlor/common/types"
)

// entitlementKey identifies one positive entitlement decision in the serving
// cache. Only positive results are cached; denials are always re-evaluated.
type entitlementKey struct {
	space   types.RoomID
	channel types.RoomID
	account types.AccountAddress
}

// handleKeyRequest serves one inbound key request. Every rejection on this
// path is silent toward the requester: an unauthorized or malformed request
// produces no traffic that would leak what we hold.
func (c *Coordinator) handleKeyRequest(ctx context.Context, from types.UserID, senderKey types.IdentityKey, req *KeyRequest) {
	if !c.limiter.Allow() {
		requestsThrottled.Inc()
		c.logger.Debug("throttled inbound key request", zap.Stringer("from", from))
		return
	}
	if req.SpaceID == "" || len(req.Events) == 0 || len(req.Events) > MaxEventsPerRequest {
		c.logger.Debug("dropping malformed key request",
			zap.Stringer("from", from),
			zap.Int("events", len(req.Events)),
		)
		return
	}
	for _, ev := range req.Events {
		if ev.EventID == "" || ev.Algorithm == "" || ev.SessionID == "" {
			c.logger.Debug("dropping malformed key request", zap.Stringer("from", from))
			return
		}
	}

	device, ok := c.requesterDevice(from, req.Events[0].Algorithm, senderKey)
	if !ok {
		return
	}
	if !c.requesterEntitled(ctx, from, req) {
		return
	}

	room := req.RoomID()
	if _, ok := c.rooms.Room(room); !ok {
		c.respond(ctx, device, &KeyResponse{RoomID: room, Kind: RoomNotFound})
		return
	}

	if !c.haveRequestedKeys(ctx, room, req.Events) {
		c.respond(ctx, device, &KeyResponse{RoomID: room, Kind: KeysNotFound})
		return
	}

	if err := c.sender.EnsureSessions(ctx, []types.Device{device}); err != nil {
		c.logger.Warn("failed to establish secure session with requester",
			zap.Object("device", &device),
			zap.Error(err),
		)
		return
	}
	if err := c.sender.ShareRoomKeys(ctx, room, device); err != nil {
		c.logger.Warn("failed to forward room keys",
			zap.Stringer("room", room),
			zap.Object("device", &device),
			zap.Error(err),
		)
		return
	}
	keysServed.Inc()
	c.logger.Debug("forwarded room keys",
		zap.Stringer("room", room),
		zap.Object("device", &device),
	)
	c.respond(ctx, device, &KeyResponse{RoomID: room, Kind: KeysFound})
}

// requesterDevice binds the transport-level sender key to a known device of
// the claimed user. A key that resolves to nothing, or to a device belonging
// to someone else, is treated as hostile.
func (c *Coordinator) requesterDevice(from types.UserID, algorithm types.Algorithm, senderKey types.IdentityKey) (types.Device, bool) {
	device, ok := c.devices.DeviceByIdentityKey(algorithm, senderKey)
	if !ok {
		c.logger.Warn("key request from unknown device",
			zap.Stringer("from", from),
			zap.Stringer("senderKey", senderKey),
		)
		return types.Device{}, false
	}
	if device.UserID != from {
		c.logger.Warn("key request sender key belongs to another user",
			zap.Stringer("from", from),
			zap.Stringer("owner", device.UserID),
		)
		return types.Device{}, false
	}
	return device, true
}

// requesterEntitled checks the requester against the entitlement oracle,
// requiring read permission on the requested scope. Oracle failure counts as
// not entitled on this path.
func (c *Coordinator) requesterEntitled(ctx context.Context, from types.UserID, req *KeyRequest) bool {
	account, err := c.resolver.AccountAddress(from)
	if err != nil {
		c.logger.Debug("cannot resolve requester account",
			zap.Stringer("from", from),
			zap.Error(err),
		)
		return false
	}
	key := entitlementKey{space: req.SpaceID, channel: req.ChannelID, account: account}
	if _, ok := c.entCache.Get(key); ok {
		return true
	}
	entitled, err := c.oracle.IsEntitled(ctx, req.SpaceID, req.ChannelID, account, types.PermissionRead)
	if err != nil {
		c.logger.Warn("entitlement check failed, refusing to serve",
			zap.Stringer("from", from),
			zap.Error(err),
		)
		return false
	}
	if !entitled {
		c.logger.Debug("requester not entitled",
			zap.Stringer("from", from),
			zap.Stringer("space", req.SpaceID),
			zap.Stringer("channel", req.ChannelID),
		)
		return false
	}
	c.entCache.Add(key, struct{}{})
	return true
}

// haveRequestedKeys probes the local store for each requested event and
// reports whether any one of them would be satisfied.
func (c *Coordinator) haveRequestedKeys(ctx context.Context, room types.RoomID, events []RequestedEvent) bool {
	for _, ev := range events {
		have, err := c.store.HasKeysFor(ctx, IncomingKeyRequest{
			RoomID:    room,
			Algorithm: ev.Algorithm,
			SessionID: ev.SessionID,
			SenderKey: ev.SenderKey,
		})
		if err != nil {
			c.logger.Debug("session probe failed",
				zap.Stringer("room", room),
				zap.Stringer("session", ev.SessionID),
				zap.Error(err),
			)
			continue
		}
		if have {
			return true
		}
	}
	return false
}

func (c *Coordinator) respond(ctx context.Context, device types.Device, resp *KeyResponse) {
	payload, err := EncodeMessage(resp)
	if err != nil {
		c.logger.Error("failed to encode key response", zap.Error(err))
		return
	}
	if err := c.sender.SendToDevices(ctx, []types.Device{device}, payload); err != nil {
		c.logger.Warn("failed to send key response",
			zap.Object("device", &device),
			zap.Error(err),
		)
	}
}
