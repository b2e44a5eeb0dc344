package keyrecovery

import (
	"context"

	"go.uber.org/zap"

	"github.com/parlorchat/parlor/common/types"
)

// attemptRequest tries to start one key request for room. It is a no-op when
// the room went idle, lost its failures, or no peer is currently viable.
func (c *Coordinator) attemptRequest(ctx context.Context, room types.RoomID) {
	snap, ok := c.tracker.snapshot(room)
	if !ok {
		return
	}
	info, ok := c.rooms.Room(room)
	if !ok {
		return
	}
	space, channel, err := c.roomScope(room)
	if err != nil {
		return
	}
	// Selection works off stored device lists; refresh them first so a
	// freshly added device is visible to the cooldown bypass.
	if err := c.devices.DownloadKeys(ctx, info.JoinedMembers); err != nil {
		c.logger.Debug("device list refresh failed", zap.Error(err))
	}
	peer, ok := c.selectPeer(snap, info.JoinedMembers, c.clock.Now())
	if !ok {
		c.logger.Debug("no viable peer for key request", zap.Stringer("room", room))
		return
	}

	events := snap.failures
	if len(events) > c.cfg.MaxEventsPerRequest {
		events = events[:c.cfg.MaxEventsPerRequest]
	}
	req := &KeyRequest{SpaceID: space, ChannelID: channel}
	for _, ev := range events {
		req.Events = append(req.Events, RequestedEvent{
			EventID:   ev.EventID,
			Algorithm: ev.Algorithm,
			SessionID: ev.SessionID,
			SenderKey: ev.SenderKey,
		})
	}
	payload, err := EncodeMessage(req)
	if err != nil {
		c.logger.Error("failed to encode key request", zap.Error(err))
		return
	}

	cancel := make(chan struct{})
	if !c.tracker.markRequested(room, peer.user, c.clock.Now(), peer.devices, cancel) {
		return
	}
	c.armTimeout(room, peer.user, cancel)
	requestsStarted.Inc()
	inflightRooms.Set(float64(c.tracker.inflight()))
	c.logger.Debug("requesting keys",
		zap.Stringer("room", room),
		zap.Stringer("peer", peer.user),
		zap.Int("devices", len(peer.devices)),
		zap.Int("events", len(req.Events)),
	)

	if err := c.sender.SendToDevices(ctx, peer.devices, payload); err != nil {
		c.logger.Warn("key request send failed",
			zap.Stringer("room", room),
			zap.Stringer("peer", peer.user),
			zap.Error(err),
		)
		requestsFailed.Inc()
		if c.tracker.clearRequest(room, peer.user, err) {
			inflightRooms.Set(float64(c.tracker.inflight()))
			c.debounce.Trigger()
		}
	}
}

// armTimeout clears the in-flight request if no response arrives in time. The
// cancel channel is closed by whichever path clears the request first, so a
// stale timer can never clobber a newer attempt.
func (c *Coordinator) armTimeout(room types.RoomID, peer types.UserID, cancel chan struct{}) {
	c.timersWG.Add(1)
	go func() {
		defer c.timersWG.Done()
		select {
		case <-cancel:
		case <-c.clock.After(c.cfg.RequestTimeout):
			if c.tracker.clearRequest(room, peer, errRequestTimeout) {
				requestsTimedOut.Inc()
				inflightRooms.Set(float64(c.tracker.inflight()))
				c.logger.Debug("key request timed out",
					zap.Stringer("room", room),
					zap.Stringer("peer", peer),
				)
				c.debounce.Trigger()
			}
		}
	}()
}

// handleKeyResponse settles the in-flight request a response belongs to.
// Responses from anyone but the current in-flight peer are dropped. Before
// clearing, it waits briefly for forwarded keys that are still in transit to
// land, so the follow-up scan sees an up-to-date failure list.
func (c *Coordinator) handleKeyResponse(ctx context.Context, from types.UserID, resp *KeyResponse) {
	if !c.tracker.recordResponse(resp.RoomID, from, resp) {
		c.logger.Debug("dropping key response without matching request",
			zap.Stringer("room", resp.RoomID),
			zap.Stringer("peer", from),
			zap.Stringer("kind", resp.Kind),
		)
		return
	}
	if resp.Kind == KeysFound {
		if err := c.store.AwaitPending(ctx, resp.RoomID); err != nil {
			c.logger.Debug("await pending sessions interrupted", zap.Error(err))
		}
	}
	if c.tracker.clearRequest(resp.RoomID, from, nil) {
		inflightRooms.Set(float64(c.tracker.inflight()))
		c.debounce.Trigger()
	}
}
