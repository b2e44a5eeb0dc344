package keyrecovery

import (
	"sort"
	"time"

	"github.com/parlorchat/parlor/common/types"
)

// candidate pairs a member with the device list fetched for this selection
// attempt.
type candidate struct {
	user    types.UserID
	devices []types.Device
}

// selectPeer picks the member of a room to ask for keys, or reports that no
// viable peer exists right now.
//
// Only online members with known devices are considered. The first pass takes
// members outside the request cooldown; when it comes up empty, the fallback
// pass admits online members that grew a device the previous requests never
// reached. Authors of the failing events are preferred within a pass.
func (c *Coordinator) selectPeer(snap roomSnapshot, members []types.UserID, now time.Time) (candidate, bool) {
	var pool, fallback []candidate
	for _, user := range members {
		if !c.presence.CurrentlyActive(user) && c.presence.Presence(user) != types.PresenceOnline {
			continue
		}
		devices := c.devices.StoredDevices(user)
		if len(devices) == 0 {
			continue
		}
		if user == c.self && len(devices) < 2 {
			// Recovering from ourselves only makes sense with a second device.
			continue
		}
		cand := candidate{user: user, devices: devices}
		req, contacted := snap.requests[user]
		if !contacted || now.Sub(req.lastContact) >= c.cfg.PeerCooldown {
			pool = append(pool, cand)
		} else if hasUnseenDevice(devices, req.contactedDevices) {
			fallback = append(fallback, cand)
		}
	}
	if len(pool) == 0 {
		pool = fallback
	}
	if len(pool) == 0 {
		return candidate{}, false
	}
	authors := make(map[types.UserID]struct{}, len(snap.failures))
	for _, ev := range snap.failures {
		authors[ev.Sender] = struct{}{}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		_, ai := authors[pool[i].user]
		_, aj := authors[pool[j].user]
		return ai && !aj
	})
	return pool[0], true
}

func hasUnseenDevice(devices []types.Device, contacted map[types.DeviceID]struct{}) bool {
	for _, d := range devices {
		if _, ok := contacted[d.ID]; !ok {
			return true
		}
	}
	return false
}
