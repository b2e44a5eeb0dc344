package keyrecovery

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/parlorchat/parlor/common/types"
)

var (
	errRequestTimeout = errors.New("key request timed out")
	errNoSpace        = errors.New("room has no resolvable space")
)

// runScan is one pass of the recovery loop: drop failures that resolved on
// their own, settle self-entitlement for new rooms, then start requests for
// the most overdue rooms up to the concurrency cap. Scans are serialized by
// the debouncer; runScan itself never blocks on the network beyond sending.
func (c *Coordinator) runScan(ctx context.Context) {
	c.tracker.prune(c.store.StillFailing)
	c.resolveEntitlements(ctx)

	for _, room := range c.tracker.scanCandidates() {
		if c.tracker.inflight() >= c.cfg.MaxConcurrentRooms {
			return
		}
		c.attemptRequest(ctx, room)
	}
}

// resolveEntitlements asks the oracle whether we are entitled to each room we
// have not yet classified. There is no point requesting keys we would not be
// allowed to hold. An oracle failure leaves the room unclassified so a later
// scan retries it.
func (c *Coordinator) resolveEntitlements(ctx context.Context) {
	rooms := c.tracker.roomsMissingEntitlement()
	if len(rooms) == 0 {
		return
	}
	account, err := c.resolver.AccountAddress(c.self)
	if err != nil {
		c.logger.Warn("cannot resolve own account address", zap.Error(err))
		return
	}
	for _, room := range rooms {
		space, channel, err := c.roomScope(room)
		if err != nil {
			// Leave the room unclassified; the space-parent link may still
			// arrive through state sync.
			c.logger.Debug("skipping room without space scope", zap.Stringer("room", room))
			continue
		}
		entitled, err := c.oracle.IsEntitled(ctx, space, channel, account, types.PermissionRead)
		if err != nil {
			c.logger.Warn("self entitlement check failed",
				zap.Stringer("room", room),
				zap.Error(err),
			)
			continue
		}
		c.tracker.setEntitled(room, entitled)
		if !entitled {
			c.logger.Debug("not entitled to room, abandoning recovery", zap.Stringer("room", room))
		}
	}
}

// roomScope resolves the space/channel pair a room is addressed by. A space
// room scopes to itself with an empty channel.
func (c *Coordinator) roomScope(room types.RoomID) (types.RoomID, types.RoomID, error) {
	info, ok := c.rooms.Room(room)
	if !ok {
		return "", "", errNoSpace
	}
	if info.IsSpace {
		return room, "", nil
	}
	space, ok := info.SpaceID()
	if !ok {
		return "", "", errNoSpace
	}
	return space, room, nil
}
