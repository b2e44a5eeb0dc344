package keyrecovery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parlorchat/parlor/codec"
)

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()
	for _, msg := range []Message{
		&KeyRequest{
			SpaceID:   spaceID,
			ChannelID: channelID,
			Events: []RequestedEvent{
				{EventID: "$ev1", Algorithm: megolm, SessionID: "sess1", SenderKey: "curve1"},
				{EventID: "$ev2", Algorithm: megolm, SessionID: "sess2", SenderKey: "curve2"},
			},
		},
		&KeyResponse{RoomID: channelID, Kind: KeysFound},
		&ForwardedKey{
			RoomID:     channelID,
			Algorithm:  megolm,
			SessionID:  "sess1",
			SenderKey:  "curve1",
			SessionKey: "exported-session-material",
		},
	} {
		buf, err := EncodeMessage(msg)
		require.NoError(t, err)
		got, err := DecodeMessage(buf)
		require.NoError(t, err)
		require.Equal(t, msg, got)
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	t.Parallel()
	buf, err := codec.Encode(&envelope{Tag: MessageTag(99), Payload: []byte{1, 2, 3}})
	require.NoError(t, err)
	_, err = DecodeMessage(buf)
	require.ErrorIs(t, err, ErrUnknownTag)
}

func TestDecodeGarbage(t *testing.T) {
	t.Parallel()
	_, err := DecodeMessage([]byte("definitely not an envelope"))
	require.Error(t, err)
}

func TestDecodeOversizedMessage(t *testing.T) {
	t.Parallel()
	_, err := DecodeMessage(make([]byte, MaxMessageSize+1))
	require.ErrorIs(t, err, ErrOversizedMessage)
}

func TestSpaceRequestAddressesSpaceRoom(t *testing.T) {
	t.Parallel()
	req := &KeyRequest{SpaceID: spaceID}
	require.Equal(t, spaceID, req.RoomID())
	req.ChannelID = channelID
	require.Equal(t, channelID, req.RoomID())
}
