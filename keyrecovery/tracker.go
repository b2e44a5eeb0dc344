package keyrecovery

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/maps"

	"github.com/parlorchat/parlor/common/types"
)

// requestRecord is the bookkeeping for all requests ever sent to one peer for
// one room. contactedDevices is the union across retries and never shrinks;
// it is what the device-growth cooldown bypass compares against.
type requestRecord struct {
	timestamp        time.Time
	contactedDevices map[types.DeviceID]struct{}
	err              error
	response         *KeyResponse
}

// roomRecord tracks the recovery state of a single room. A record is created
// lazily on the first decryption failure and lives for the process lifetime.
//
// Invariant: requestingFrom is set iff timerCancel is non-nil; at most one
// peer is in flight per room.
type roomRecord struct {
	failures       []types.FailingEvent
	entitled       *bool
	lastRequestAt  time.Time
	requestingFrom types.UserID
	timerCancel    chan struct{}
	requests       map[types.UserID]*requestRecord
}

// requestSummary is the copy of per-peer bookkeeping handed to the selector
// outside the tracker lock.
type requestSummary struct {
	lastContact      time.Time
	contactedDevices map[types.DeviceID]struct{}
}

// roomSnapshot is the immutable view of a room used by one selection attempt.
type roomSnapshot struct {
	id       types.RoomID
	failures []types.FailingEvent
	requests map[types.UserID]requestSummary
}

// tracker is the arena of per-room recovery state. It is owned by a single
// coordinator instance and all access goes through its mutex.
type tracker struct {
	mu           sync.Mutex
	rooms        map[types.RoomID]*roomRecord
	priorityRoom types.RoomID
}

func newTracker() *tracker {
	return &tracker{rooms: make(map[types.RoomID]*roomRecord)}
}

func (t *tracker) getOrCreate(id types.RoomID) *roomRecord {
	rec, ok := t.rooms[id]
	if !ok {
		rec = &roomRecord{requests: make(map[types.UserID]*requestRecord)}
		t.rooms[id] = rec
	}
	return rec
}

// addFailure registers a failing event, deduplicated by event id. Reports
// whether the event was new.
func (t *tracker) addFailure(room types.RoomID, ev types.FailingEvent) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.getOrCreate(room)
	for i := range rec.failures {
		if rec.failures[i].EventID == ev.EventID {
			return false
		}
	}
	rec.failures = append(rec.failures, ev)
	return true
}

// resolveEvent drops an event from a room's failure list once it decrypted.
func (t *tracker) resolveEvent(room types.RoomID, event types.EventID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rooms[room]
	if !ok {
		return
	}
	kept := rec.failures[:0]
	for _, ev := range rec.failures {
		if ev.EventID != event {
			kept = append(kept, ev)
		}
	}
	rec.failures = kept
}

// prune keeps only the events the predicate still reports as failing.
func (t *tracker) prune(stillFailing func(room types.RoomID, event types.EventID) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, rec := range t.rooms {
		kept := rec.failures[:0]
		for _, ev := range rec.failures {
			if stillFailing(id, ev.EventID) {
				kept = append(kept, ev)
			}
		}
		rec.failures = kept
	}
}

// roomsMissingEntitlement lists rooms whose self-entitlement is unresolved
// and that still carry failures.
func (t *tracker) roomsMissingEntitlement() []types.RoomID {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []types.RoomID
	for id, rec := range t.rooms {
		if rec.entitled == nil && len(rec.failures) > 0 {
			out = append(out, id)
		}
	}
	return out
}

func (t *tracker) setEntitled(room types.RoomID, entitled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.getOrCreate(room)
	rec.entitled = &entitled
}

// inflight counts rooms with a request in flight.
func (t *tracker) inflight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, rec := range t.rooms {
		if rec.requestingFrom != "" {
			n++
		}
	}
	return n
}

func (t *tracker) setPriorityRoom(room types.RoomID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.priorityRoom = room
}

// scanCandidates returns rooms eligible for a request this scan: confirmed
// self-entitled, idle, with a non-empty failure list. The priority room comes
// first if eligible, the rest ascend by lastRequestAt with never-tried rooms
// treated as oldest.
func (t *tracker) scanCandidates() []types.RoomID {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []types.RoomID
	for id, rec := range t.rooms {
		if rec.entitled == nil || !*rec.entitled {
			continue
		}
		if rec.requestingFrom != "" || len(rec.failures) == 0 {
			continue
		}
		out = append(out, id)
	}
	priority := t.priorityRoom
	sort.Slice(out, func(i, j int) bool {
		if out[i] == priority {
			return true
		}
		if out[j] == priority {
			return false
		}
		a, b := t.rooms[out[i]], t.rooms[out[j]]
		if !a.lastRequestAt.Equal(b.lastRequestAt) {
			return a.lastRequestAt.Before(b.lastRequestAt)
		}
		return out[i] < out[j]
	})
	return out
}

// snapshot copies the state one selection attempt needs. The second return is
// false when the room has no failures or is already in flight.
func (t *tracker) snapshot(room types.RoomID) (roomSnapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rooms[room]
	if !ok || len(rec.failures) == 0 || rec.requestingFrom != "" {
		return roomSnapshot{}, false
	}
	snap := roomSnapshot{
		id:       room,
		failures: append([]types.FailingEvent(nil), rec.failures...),
		requests: make(map[types.UserID]requestSummary, len(rec.requests)),
	}
	for peer, req := range rec.requests {
		contacted := make(map[types.DeviceID]struct{}, len(req.contactedDevices))
		maps.Copy(contacted, req.contactedDevices)
		snap.requests[peer] = requestSummary{lastContact: req.timestamp, contactedDevices: contacted}
	}
	return snap, true
}

// markRequested records a new in-flight request to peer. It refuses to stack
// a second in-flight peer onto a room.
func (t *tracker) markRequested(room types.RoomID, peer types.UserID, now time.Time, devices []types.Device, cancel chan struct{}) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec := t.getOrCreate(room)
	if rec.requestingFrom != "" {
		return false
	}
	req, ok := rec.requests[peer]
	if !ok {
		req = &requestRecord{contactedDevices: make(map[types.DeviceID]struct{})}
		rec.requests[peer] = req
	}
	req.timestamp = now
	req.err = nil
	for _, d := range devices {
		req.contactedDevices[d.ID] = struct{}{}
	}
	rec.lastRequestAt = now
	rec.requestingFrom = peer
	rec.timerCancel = cancel
	return true
}

// clearRequest clears the in-flight state for room, but only while the stored
// peer still matches; a stale timer never clobbers a newer attempt. The error,
// if any, is recorded on the peer's request entry either way.
func (t *tracker) clearRequest(room types.RoomID, peer types.UserID, reqErr error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rooms[room]
	if !ok {
		return false
	}
	req, ok := rec.requests[peer]
	if !ok {
		return false
	}
	if reqErr != nil {
		req.err = reqErr
	}
	if rec.requestingFrom != peer {
		return false
	}
	close(rec.timerCancel)
	rec.timerCancel = nil
	rec.requestingFrom = ""
	return true
}

// recordResponse stores a response payload on the matching in-flight request.
// Responses from peers that are not the current in-flight peer are ignored.
func (t *tracker) recordResponse(room types.RoomID, peer types.UserID, resp *KeyResponse) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rooms[room]
	if !ok || rec.requestingFrom != peer {
		return false
	}
	if req, ok := rec.requests[peer]; ok {
		req.response = resp
		return true
	}
	return false
}

// hasFailingSession reports whether any failing event in room was encrypted
// under the given session.
func (t *tracker) hasFailingSession(room types.RoomID, session types.SessionID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rooms[room]
	if !ok {
		return false
	}
	for i := range rec.failures {
		if rec.failures[i].SessionID == session {
			return true
		}
	}
	return false
}

// outstandingRequestTo reports whether a request record (of any age) exists
// for this room that was addressed to this exact device.
func (t *tracker) outstandingRequestTo(room types.RoomID, peer types.UserID, device types.DeviceID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rooms[room]
	if !ok {
		return false
	}
	req, ok := rec.requests[peer]
	if !ok {
		return false
	}
	_, contacted := req.contactedDevices[device]
	return contacted
}

// failureCount is used by logging and tests.
func (t *tracker) failureCount(room types.RoomID) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.rooms[room]
	if !ok {
		return 0
	}
	return len(rec.failures)
}

// sweepTimers clears every in-flight request, cancelling its timeout. Used on
// shutdown.
func (t *tracker) sweepTimers() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, rec := range t.rooms {
		if rec.requestingFrom != "" {
			close(rec.timerCancel)
			rec.timerCancel = nil
			rec.requestingFrom = ""
		}
	}
}
