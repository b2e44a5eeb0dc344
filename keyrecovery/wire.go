package keyrecovery

import (
	"errors"
	"fmt"

	"github.com/parlorchat/parlor/codec"
	"github.com/parlorchat/parlor/common/types"
)

// MaxEventsPerRequest caps how many failing events are carried in one key
// request message.
const MaxEventsPerRequest = 64

// MaxMessageSize bounds an inbound secure message. The largest legitimate
// payload, a full key request, stays well under this.
const MaxMessageSize = 1 << 16

// ErrOversizedMessage is returned for inbound payloads above MaxMessageSize.
var ErrOversizedMessage = errors.New("message exceeds size limit")

// MessageTag discriminates the secure device-to-device messages this
// subsystem exchanges.
type MessageTag uint32

const (
	TagKeyRequest MessageTag = iota + 1
	TagKeyResponse
	TagForwardedKey
)

func (t MessageTag) String() string {
	switch t {
	case TagKeyRequest:
		return "key_request"
	case TagKeyResponse:
		return "key_response"
	case TagForwardedKey:
		return "forwarded_key"
	default:
		return fmt.Sprintf("tag(%d)", uint32(t))
	}
}

// ErrUnknownTag is returned for envelopes carrying a tag outside the closed
// set of message kinds.
var ErrUnknownTag = errors.New("unknown message tag")

// RequestedEvent is one failing event listed in a key request.
type RequestedEvent struct {
	EventID   types.EventID
	Algorithm types.Algorithm
	SessionID types.SessionID
	SenderKey types.IdentityKey
}

// KeyRequest asks a peer for the sessions needed to decrypt the listed
// events.
type KeyRequest struct {
	SpaceID types.RoomID
	// ChannelID is empty when the request targets the space itself.
	ChannelID types.RoomID
	Events    []RequestedEvent
}

// RoomID returns the room the request is about.
func (r *KeyRequest) RoomID() types.RoomID {
	if r.ChannelID != "" {
		return r.ChannelID
	}
	return r.SpaceID
}

// ResponseKind is the outcome reported by a key response.
type ResponseKind uint32

const (
	RoomNotFound ResponseKind = iota + 1
	KeysNotFound
	KeysFound
)

func (k ResponseKind) String() string {
	switch k {
	case RoomNotFound:
		return "room_not_found"
	case KeysNotFound:
		return "keys_not_found"
	case KeysFound:
		return "keys_found"
	default:
		return fmt.Sprintf("kind(%d)", uint32(k))
	}
}

// KeyResponse reports the outcome of a key request. Key material never rides
// in a response; it arrives separately as a ForwardedKey.
type KeyResponse struct {
	RoomID types.RoomID
	Kind   ResponseKind
}

// ForwardedKey carries the material of one session, pushed over the secure
// channel by a peer that agreed to serve a request.
type ForwardedKey struct {
	RoomID     types.RoomID
	Algorithm  types.Algorithm
	SessionID  types.SessionID
	SenderKey  types.IdentityKey
	SessionKey string
}

// Message is the closed union of payloads this subsystem understands.
type Message interface {
	Tag() MessageTag
}

func (*KeyRequest) Tag() MessageTag   { return TagKeyRequest }
func (*KeyResponse) Tag() MessageTag  { return TagKeyResponse }
func (*ForwardedKey) Tag() MessageTag { return TagForwardedKey }

// envelope is the outer wire frame: a tag plus the encoded payload.
type envelope struct {
	Tag     MessageTag
	Payload []byte
}

// EncodeMessage frames and encodes a message for the secure channel.
func EncodeMessage(msg Message) ([]byte, error) {
	payload, err := codec.Encode(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", msg.Tag(), err)
	}
	return codec.Encode(&envelope{Tag: msg.Tag(), Payload: payload})
}

// DecodeMessage decodes an inbound secure message into its typed payload.
func DecodeMessage(buf []byte) (Message, error) {
	if len(buf) > MaxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrOversizedMessage, len(buf))
	}
	var env envelope
	if err := codec.Decode(buf, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	var msg Message
	switch env.Tag {
	case TagKeyRequest:
		msg = &KeyRequest{}
	case TagKeyResponse:
		msg = &KeyResponse{}
	case TagForwardedKey:
		msg = &ForwardedKey{}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, env.Tag)
	}
	if err := codec.Decode(env.Payload, msg); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", env.Tag, err)
	}
	return msg, nil
}
