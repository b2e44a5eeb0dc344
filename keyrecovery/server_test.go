package keyrecovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/parlorchat/parlor/common/types"
)

func validKeyRequest() *KeyRequest {
	return &KeyRequest{
		SpaceID:   spaceID,
		ChannelID: channelID,
		Events: []RequestedEvent{{
			EventID:   "$ev1",
			Algorithm: megolm,
			SessionID: "sess1",
			SenderKey: "curve-author",
		}},
	}
}

// expectRequester wires bob up as a known, entitled requester.
func (tc *testCoordinator) expectRequester(t *testing.T) types.Device {
	t.Helper()
	dev := device(bobID, "BOB1", "kb1")
	tc.mDevices.EXPECT().DeviceByIdentityKey(megolm, types.IdentityKey("kb1")).Return(dev, true).AnyTimes()
	tc.mResolver.EXPECT().AccountAddress(bobID).Return(types.AccountAddress("0xbob"), nil).AnyTimes()
	tc.mOracle.EXPECT().
		IsEntitled(gomock.Any(), spaceID, channelID, types.AccountAddress("0xbob"), types.PermissionRead).
		Return(true, nil).
		AnyTimes()
	return dev
}

func (tc *testCoordinator) captureResponses() <-chan []byte {
	sent := make(chan []byte, 8)
	tc.mSender.EXPECT().
		SendToDevices(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []types.Device, payload []byte) error {
			sent <- payload
			return nil
		}).
		AnyTimes()
	return sent
}

func decodeResponse(t *testing.T, payload []byte) *KeyResponse {
	t.Helper()
	msg, err := DecodeMessage(payload)
	require.NoError(t, err)
	resp, ok := msg.(*KeyResponse)
	require.True(t, ok)
	return resp
}

func TestServeForwardsKeys(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)
	dev := tc.expectRequester(t)
	sent := tc.captureResponses()
	tc.mRooms.EXPECT().Room(channelID).Return(channelInfo(selfID, bobID), true)
	tc.mStore.EXPECT().HasKeysFor(gomock.Any(), IncomingKeyRequest{
		RoomID:    channelID,
		Algorithm: megolm,
		SessionID: "sess1",
		SenderKey: "curve-author",
	}).Return(true, nil)
	tc.mSender.EXPECT().EnsureSessions(gomock.Any(), []types.Device{dev}).Return(nil)
	tc.mSender.EXPECT().ShareRoomKeys(gomock.Any(), channelID, dev).Return(nil)

	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())

	require.Len(t, sent, 1)
	resp := decodeResponse(t, <-sent)
	require.Equal(t, channelID, resp.RoomID)
	require.Equal(t, KeysFound, resp.Kind)
}

func TestServeKeysNotFound(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)
	tc.expectRequester(t)
	sent := tc.captureResponses()
	tc.mRooms.EXPECT().Room(channelID).Return(channelInfo(selfID, bobID), true)
	tc.mStore.EXPECT().HasKeysFor(gomock.Any(), gomock.Any()).Return(false, nil)

	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())

	require.Len(t, sent, 1)
	require.Equal(t, KeysNotFound, decodeResponse(t, <-sent).Kind)
}

func TestServeRoomNotFound(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)
	tc.expectRequester(t)
	sent := tc.captureResponses()
	tc.mRooms.EXPECT().Room(channelID).Return(RoomInfo{}, false)

	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())

	require.Len(t, sent, 1)
	require.Equal(t, RoomNotFound, decodeResponse(t, <-sent).Kind)
}

func TestServeSilentWhenNotEntitled(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)
	dev := device(bobID, "BOB1", "kb1")
	tc.mDevices.EXPECT().DeviceByIdentityKey(megolm, types.IdentityKey("kb1")).Return(dev, true)
	tc.mResolver.EXPECT().AccountAddress(bobID).Return(types.AccountAddress("0xbob"), nil)
	tc.mOracle.EXPECT().
		IsEntitled(gomock.Any(), spaceID, channelID, types.AccountAddress("0xbob"), types.PermissionRead).
		Return(false, nil)

	// no room lookup, no probe, no outbound traffic of any kind
	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())
}

func TestServeSilentWhenOracleFails(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)
	dev := device(bobID, "BOB1", "kb1")
	tc.mDevices.EXPECT().DeviceByIdentityKey(megolm, types.IdentityKey("kb1")).Return(dev, true)
	tc.mResolver.EXPECT().AccountAddress(bobID).Return(types.AccountAddress("0xbob"), nil)
	tc.mOracle.EXPECT().
		IsEntitled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("chain unavailable"))

	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())
}

func TestServeDropsUnknownDevice(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)
	tc.mDevices.EXPECT().DeviceByIdentityKey(megolm, types.IdentityKey("kb1")).Return(types.Device{}, false)

	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())
}

func TestServeDropsSpoofedSender(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)
	// the key resolves to carol's device while the claimed sender is bob
	tc.mDevices.EXPECT().
		DeviceByIdentityKey(megolm, types.IdentityKey("kb1")).
		Return(device(carolID, "CAROL1", "kb1"), true)

	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())
}

func TestServeDropsMalformedRequests(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)

	noEvents := validKeyRequest()
	noEvents.Events = nil
	tc.handleKeyRequest(context.Background(), bobID, "kb1", noEvents)

	noSpace := validKeyRequest()
	noSpace.SpaceID = ""
	tc.handleKeyRequest(context.Background(), bobID, "kb1", noSpace)

	noSession := validKeyRequest()
	noSession.Events[0].SessionID = ""
	tc.handleKeyRequest(context.Background(), bobID, "kb1", noSession)

	tooMany := validKeyRequest()
	for i := 0; i < MaxEventsPerRequest; i++ {
		tooMany.Events = append(tooMany.Events, tooMany.Events[0])
	}
	tc.handleKeyRequest(context.Background(), bobID, "kb1", tooMany)
}

func TestServeRateLimited(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.InboundRequestRate = 0
	cfg.InboundRequestBurst = 0
	tc := newTestCoordinator(t, WithConfig(cfg))

	// the limiter rejects before any other work happens
	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())
}

func TestServeCachesPositiveEntitlement(t *testing.T) {
	t.Parallel()
	tc := newTestCoordinator(t)
	dev := device(bobID, "BOB1", "kb1")
	tc.mDevices.EXPECT().DeviceByIdentityKey(megolm, types.IdentityKey("kb1")).Return(dev, true).Times(2)
	tc.mResolver.EXPECT().AccountAddress(bobID).Return(types.AccountAddress("0xbob"), nil).Times(2)
	tc.mOracle.EXPECT().
		IsEntitled(gomock.Any(), spaceID, channelID, types.AccountAddress("0xbob"), types.PermissionRead).
		Return(true, nil).
		Times(1)
	sent := tc.captureResponses()
	tc.mRooms.EXPECT().Room(channelID).Return(channelInfo(selfID, bobID), true).Times(2)
	tc.mStore.EXPECT().HasKeysFor(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())
	tc.handleKeyRequest(context.Background(), bobID, "kb1", validKeyRequest())
	require.Len(t, sent, 2)
}
