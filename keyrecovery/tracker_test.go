package keyrecovery

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/parlorchat/parlor/common/types"
)

func TestTrackerDeduplicatesFailures(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	ev := failingEvent("$ev1", "sess1", bobID)
	require.True(t, tr.addFailure(channelID, ev))
	require.False(t, tr.addFailure(channelID, ev))
	require.Equal(t, 1, tr.failureCount(channelID))
}

func TestTrackerGuardedClear(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	tr.addFailure(channelID, failingEvent("$ev1", "sess1", bobID))
	now := time.Unix(1000, 0)
	cancel := make(chan struct{})
	require.True(t, tr.markRequested(channelID, bobID, now, []types.Device{device(bobID, "BOB1", "kb1")}, cancel))
	require.Equal(t, 1, tr.inflight())

	// a clear naming the wrong peer records the error but leaves the
	// in-flight request alone
	require.False(t, tr.clearRequest(channelID, carolID, errors.New("stale")))
	require.Equal(t, 1, tr.inflight())

	require.True(t, tr.clearRequest(channelID, bobID, nil))
	require.Equal(t, 0, tr.inflight())
	select {
	case <-cancel:
	default:
		t.Fatal("cancel channel not closed on clear")
	}

	// clearing twice is a no-op
	require.False(t, tr.clearRequest(channelID, bobID, nil))
}

func TestTrackerRefusesSecondInflight(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	now := time.Unix(1000, 0)
	require.True(t, tr.markRequested(channelID, bobID, now, nil, make(chan struct{})))
	require.False(t, tr.markRequested(channelID, carolID, now, nil, make(chan struct{})))
}

func TestTrackerContactedDevicesNeverShrink(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	tr.addFailure(channelID, failingEvent("$ev1", "sess1", bobID))
	now := time.Unix(1000, 0)

	require.True(t, tr.markRequested(channelID, bobID, now, []types.Device{device(bobID, "BOB1", "kb1")}, make(chan struct{})))
	require.True(t, tr.clearRequest(channelID, bobID, nil))

	// a later request reaching only the new device keeps the old one recorded
	require.True(t, tr.markRequested(channelID, bobID, now.Add(time.Hour), []types.Device{device(bobID, "BOB2", "kb2")}, make(chan struct{})))
	require.True(t, tr.outstandingRequestTo(channelID, bobID, "BOB1"))
	require.True(t, tr.outstandingRequestTo(channelID, bobID, "BOB2"))
	require.False(t, tr.outstandingRequestTo(channelID, bobID, "BOB3"))
	require.False(t, tr.outstandingRequestTo(channelID, carolID, "BOB1"))
}

func TestTrackerScanOrder(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	rooms := []types.RoomID{"!a:parlor", "!b:parlor", "!c:parlor"}
	for _, room := range rooms {
		tr.addFailure(room, failingEvent("$ev-"+string(room), "sess", bobID))
		tr.setEntitled(room, true)
	}

	// never-requested rooms tie; ids break the tie
	require.Equal(t, rooms, tr.scanCandidates())

	// the most recently tried room sorts last
	require.True(t, tr.markRequested("!a:parlor", bobID, time.Unix(2000, 0), nil, make(chan struct{})))
	require.True(t, tr.clearRequest("!a:parlor", bobID, nil))
	require.Equal(t, []types.RoomID{"!b:parlor", "!c:parlor", "!a:parlor"}, tr.scanCandidates())

	// the priority room jumps the queue
	tr.setPriorityRoom("!a:parlor")
	require.Equal(t, []types.RoomID{"!a:parlor", "!b:parlor", "!c:parlor"}, tr.scanCandidates())
}

func TestTrackerScanSkipsIneligibleRooms(t *testing.T) {
	t.Parallel()
	tr := newTracker()

	tr.addFailure("!unchecked:parlor", failingEvent("$e1", "s", bobID))

	tr.addFailure("!denied:parlor", failingEvent("$e2", "s", bobID))
	tr.setEntitled("!denied:parlor", false)

	tr.addFailure("!busy:parlor", failingEvent("$e3", "s", bobID))
	tr.setEntitled("!busy:parlor", true)
	require.True(t, tr.markRequested("!busy:parlor", bobID, time.Unix(1000, 0), nil, make(chan struct{})))

	tr.setEntitled("!empty:parlor", true)

	require.Empty(t, tr.scanCandidates())
}

func TestTrackerRecordResponse(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	tr.addFailure(channelID, failingEvent("$ev1", "sess1", bobID))
	require.False(t, tr.recordResponse(channelID, bobID, &KeyResponse{RoomID: channelID, Kind: KeysFound}))

	require.True(t, tr.markRequested(channelID, bobID, time.Unix(1000, 0), nil, make(chan struct{})))
	require.False(t, tr.recordResponse(channelID, carolID, &KeyResponse{RoomID: channelID, Kind: KeysFound}))
	require.True(t, tr.recordResponse(channelID, bobID, &KeyResponse{RoomID: channelID, Kind: KeysFound}))
}

func TestTrackerFailingSessionLookup(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	tr.addFailure(channelID, failingEvent("$ev1", "sess1", bobID))
	require.True(t, tr.hasFailingSession(channelID, "sess1"))
	require.False(t, tr.hasFailingSession(channelID, "sess2"))
	require.False(t, tr.hasFailingSession("!other:parlor", "sess1"))
}

func TestTrackerSweepTimers(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	tr.addFailure(channelID, failingEvent("$ev1", "sess1", bobID))
	cancel := make(chan struct{})
	require.True(t, tr.markRequested(channelID, bobID, time.Unix(1000, 0), nil, cancel))

	tr.sweepTimers()
	require.Equal(t, 0, tr.inflight())
	select {
	case <-cancel:
	default:
		t.Fatal("cancel channel not closed by sweep")
	}
}

func TestTrackerSnapshotCopies(t *testing.T) {
	t.Parallel()
	tr := newTracker()
	tr.addFailure(channelID, failingEvent("$ev1", "sess1", bobID))
	require.True(t, tr.markRequested(channelID, bobID, time.Unix(1000, 0), []types.Device{device(bobID, "BOB1", "kb1")}, make(chan struct{})))

	// in-flight rooms do not snapshot
	_, ok := tr.snapshot(channelID)
	require.False(t, ok)

	require.True(t, tr.clearRequest(channelID, bobID, nil))
	snap, ok := tr.snapshot(channelID)
	require.True(t, ok)
	require.Len(t, snap.failures, 1)
	require.Contains(t, snap.requests, bobID)

	// mutating the snapshot does not leak back into the tracker
	delete(snap.requests[bobID].contactedDevices, "BOB1")
	require.True(t, tr.outstandingRequestTo(channelID, bobID, "BOB1"))
}
