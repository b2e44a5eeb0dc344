// Package keyrecovery recovers missing decryption sessions from peers. It
// watches the host client for undecryptable events, picks a room member
// likely to hold the missing sessions, asks it over the secure
// device-to-device channel, and imports the keys it forwards back. The same
// coordinator also serves such requests from others, gated on an entitlement
// check.
package keyrecovery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/parlorchat/parlor/common/types"
)

// Config collects the tunables of the coordinator.
type Config struct {
	// MaxConcurrentRooms caps how many rooms may have a key request in
	// flight at once.
	MaxConcurrentRooms int `mapstructure:"max-concurrent-rooms"`
	// RequestTimeout clears an in-flight request that got no response.
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	// ScanInterval is the quiet window that coalesces triggers into one scan.
	ScanInterval time.Duration `mapstructure:"scan-interval"`
	// PeerCooldown is how long a peer is left alone after a request, unless
	// it grows a new device in the meantime.
	PeerCooldown time.Duration `mapstructure:"peer-cooldown"`
	// MaxEventsPerRequest truncates the event list of one request.
	MaxEventsPerRequest int `mapstructure:"max-events-per-request"`
	// QueueDelay paces consecutive inbound messages.
	QueueDelay time.Duration `mapstructure:"queue-delay"`
	// InboundRequestRate and InboundRequestBurst bound how fast we are
	// willing to serve key requests.
	InboundRequestRate  float64 `mapstructure:"inbound-request-rate"`
	InboundRequestBurst int     `mapstructure:"inbound-request-burst"`
	// EntitlementCacheSize bounds the cache of positive serving-side
	// entitlement decisions.
	EntitlementCacheSize int `mapstructure:"entitlement-cache-size"`
}

// DefaultConfig for the key recovery coordinator.
func DefaultConfig() Config {
	return Config{
		MaxConcurrentRooms:   2,
		RequestTimeout:       3 * time.Second,
		ScanInterval:         150 * time.Millisecond,
		PeerCooldown:         5 * time.Minute,
		MaxEventsPerRequest:  MaxEventsPerRequest,
		QueueDelay:           10 * time.Millisecond,
		InboundRequestRate:   5,
		InboundRequestBurst:  10,
		EntitlementCacheSize: 128,
	}
}

// MarshalLogObject implements logging encoder for config.
func (c *Config) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddInt("max concurrent rooms", c.MaxConcurrentRooms)
	encoder.AddDuration("request timeout", c.RequestTimeout)
	encoder.AddDuration("scan interval", c.ScanInterval)
	encoder.AddDuration("peer cooldown", c.PeerCooldown)
	encoder.AddInt("max events per request", c.MaxEventsPerRequest)
	encoder.AddDuration("queue delay", c.QueueDelay)
	encoder.AddFloat64("inbound request rate", c.InboundRequestRate)
	encoder.AddInt("inbound request burst", c.InboundRequestBurst)
	return nil
}

// ErrInsecureTransport is returned for messages that did not arrive over the
// authenticated encrypted channel. Key material and key requests never ride
// in the clear.
var ErrInsecureTransport = errors.New("message did not arrive over secure transport")

// inboundMessage is one decoded secure message queued for processing.
type inboundMessage struct {
	from      types.UserID
	senderKey types.IdentityKey
	msg       Message
}

// Coordinator runs both sides of key recovery for one device.
type Coordinator struct {
	logger *zap.Logger
	cfg    Config
	clock  clockwork.Clock
	self   types.UserID

	rooms    RoomProvider
	presence PresenceProvider
	devices  DeviceRegistry
	store    SessionStore
	sender   SecureSender
	oracle   EntitlementOracle
	resolver AccountResolver

	tracker  *tracker
	debounce *debouncer
	queue    *processingQueue[inboundMessage]
	limiter  *rate.Limiter
	entCache *lru.Cache[entitlementKey, struct{}]

	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	eg       errgroup.Group
	timersWG sync.WaitGroup
}

// Opt for configuring the coordinator.
type Opt func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithConfig overrides the default configuration.
func WithConfig(cfg Config) Opt {
	return func(c *Coordinator) {
		c.cfg = cfg
	}
}

func withClock(clock clockwork.Clock) Opt {
	return func(c *Coordinator) {
		c.clock = clock
	}
}

// New creates a key recovery coordinator for the device owned by self.
func New(
	self types.UserID,
	rooms RoomProvider,
	presence PresenceProvider,
	devices DeviceRegistry,
	store SessionStore,
	sender SecureSender,
	oracle EntitlementOracle,
	resolver AccountResolver,
	opts ...Opt,
) (*Coordinator, error) {
	c := &Coordinator{
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		clock:    clockwork.NewRealClock(),
		self:     self,
		rooms:    rooms,
		presence: presence,
		devices:  devices,
		store:    store,
		sender:   sender,
		oracle:   oracle,
		resolver: resolver,
		tracker:  newTracker(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg.MaxEventsPerRequest > MaxEventsPerRequest {
		return nil, fmt.Errorf("max events per request above wire limit %d", MaxEventsPerRequest)
	}
	cache, err := lru.New[entitlementKey, struct{}](c.cfg.EntitlementCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create entitlement cache: %w", err)
	}
	c.entCache = cache
	c.limiter = rate.NewLimiter(rate.Limit(c.cfg.InboundRequestRate), c.cfg.InboundRequestBurst)
	c.debounce = newDebouncer(c.clock, c.cfg.ScanInterval, c.scan)
	c.queue = newProcessingQueue[inboundMessage](c.clock, c.cfg.QueueDelay, c.dispatch)
	return c, nil
}

// Start launches the inbound worker. Host hooks may be called before Start;
// scans begin once it ran.
func (c *Coordinator) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx != nil {
		return
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.eg.Go(func() error {
		return c.queue.Run(c.ctx)
	})
	c.logger.Info("key recovery started", zap.Inline(&c.cfg))
	c.debounce.Trigger()
}

// Stop shuts the coordinator down and waits for its goroutines.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if c.cancel == nil {
		c.mu.Unlock()
		return
	}
	c.cancel()
	c.mu.Unlock()
	c.debounce.Stop()
	c.tracker.sweepTimers()
	c.timersWG.Wait()
	if err := c.eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Error("key recovery shutdown", zap.Error(err))
	}
	c.logger.Info("key recovery stopped")
}

// scan is the debounced entry point of the recovery loop.
func (c *Coordinator) scan() {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}
	scansRun.Inc()
	c.runScan(ctx)
}

// OnEncryptedEvent reports an encrypted timeline event and triggers an
// opportunistic decrypt. The host sync layer does not always attempt
// decryption itself; DecryptIfNeeded is idempotent, so calling it for every
// encrypted event is safe. The outcome arrives through OnEventDecrypted or
// OnDecryptionFailure. No-op before Start.
func (c *Coordinator) OnEncryptedEvent(room types.RoomID, event types.EventID) {
	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}
	if err := c.store.DecryptIfNeeded(ctx, room, event); err != nil {
		c.logger.Debug("opportunistic decrypt failed",
			zap.Stringer("room", room),
			zap.Stringer("event", event),
			zap.Error(err),
		)
	}
}

// OnDecryptionFailure reports an event the host failed to decrypt.
func (c *Coordinator) OnDecryptionFailure(room types.RoomID, ev types.FailingEvent) {
	if c.tracker.addFailure(room, ev) {
		c.logger.Debug("tracking undecryptable event",
			zap.Stringer("room", room),
			zap.Object("event", &ev),
		)
		c.debounce.Trigger()
	}
}

// OnEventDecrypted reports that a previously failing event decrypted.
func (c *Coordinator) OnEventDecrypted(room types.RoomID, event types.EventID) {
	c.tracker.resolveEvent(room, event)
}

// OnPresenceUpdated hints that a user's liveness changed; a peer that just
// came online may be worth asking.
func (c *Coordinator) OnPresenceUpdated(types.UserID) {
	c.debounce.Trigger()
}

// OnDeviceListUpdated hints that device lists changed; a new device may
// bypass a peer's cooldown.
func (c *Coordinator) OnDeviceListUpdated([]types.UserID) {
	c.debounce.Trigger()
}

// SetPriorityRoom makes the given room jump the scan order, typically the
// room currently on screen.
func (c *Coordinator) SetPriorityRoom(room types.RoomID) {
	c.tracker.setPriorityRoom(room)
	c.debounce.Trigger()
}

// ClearPriorityRoom removes the priority marker.
func (c *Coordinator) ClearPriorityRoom() {
	c.tracker.setPriorityRoom("")
}

// HandleSecureMessage feeds one inbound device-to-device message into the
// coordinator. The secure flag must reflect whether the transport
// authenticated and decrypted the message; anything else is refused.
func (c *Coordinator) HandleSecureMessage(from types.UserID, senderKey types.IdentityKey, secure bool, payload []byte) error {
	if !secure {
		c.logger.Warn("refusing message from insecure transport", zap.Stringer("from", from))
		return ErrInsecureTransport
	}
	msg, err := DecodeMessage(payload)
	if err != nil {
		return fmt.Errorf("from %s: %w", from, err)
	}
	c.queue.Enqueue(inboundMessage{from: from, senderKey: senderKey, msg: msg})
	return nil
}

// dispatch routes one queued message to its handler. Runs on the queue
// worker goroutine.
func (c *Coordinator) dispatch(ctx context.Context, m inboundMessage) {
	switch msg := m.msg.(type) {
	case *KeyRequest:
		c.handleKeyRequest(ctx, m.from, m.senderKey, msg)
	case *KeyResponse:
		c.handleKeyResponse(ctx, m.from, msg)
	case *ForwardedKey:
		c.handleForwardedKey(ctx, m.from, m.senderKey, msg)
	default:
		c.logger.Error("unhandled message kind", zap.Stringer("tag", m.msg.Tag()))
	}
}
