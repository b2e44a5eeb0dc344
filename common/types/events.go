package types

import "go.uber.org/zap/zapcore"

// FailingEvent describes a timeline event the local device cannot decrypt
// because it lacks the matching session. The sender is kept so that peer
// selection can prefer the authors of failing events.
type FailingEvent struct {
	EventID   EventID
	Algorithm Algorithm
	SessionID SessionID
	// SenderKey is the identity key of the device that encrypted the event.
	SenderKey IdentityKey
	Sender    UserID
}

func (e *FailingEvent) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("event", string(e.EventID))
	encoder.AddString("session", string(e.SessionID))
	encoder.AddString("sender", string(e.Sender))
	return nil
}
