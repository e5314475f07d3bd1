// Package events distributes slashing events inside the node.
package events

import (
	"errors"
	"fmt"
	"sync"

	"github.com/libp2p/go-libp2p/core/event"
	"github.com/libp2p/go-libp2p/p2p/host/eventbus"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-slashindicator/codec"
)

// Subscription is a stream of events of a single type.
type Subscription = event.Subscription

type Opt func(*Reporter)

// WithLogger configures logger for the reporter.
func WithLogger(logger *zap.Logger) Opt {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// WithBufferSize sets the number of events buffered for every subscriber.
func WithBufferSize(size int) Opt {
	return func(r *Reporter) {
		r.bufsize = size
	}
}

// WithHistorySize sets the number of recent slashes kept in memory.
func WithHistorySize(size int) Opt {
	return func(r *Reporter) {
		r.recent = newRing[EventSlash](max(size, 1))
	}
}

// Reporter publishes slashing events on an in-process event bus.
type Reporter struct {
	logger  *zap.Logger
	bufsize int
	bus     event.Bus

	slashEmitter   event.Emitter
	packageEmitter event.Emitter
	paramEmitter   event.Emitter
	compactEmitter event.Emitter

	mu     sync.Mutex
	recent *ring[EventSlash]
}

// New creates a Reporter with emitters for every event type.
func New(opts ...Opt) (*Reporter, error) {
	r := &Reporter{
		logger:  zap.NewNop(),
		bufsize: 64,
		bus:     eventbus.NewBus(),
		recent:  newRing[EventSlash](100),
	}
	for _, opt := range opts {
		opt(r)
	}
	var err error
	if r.slashEmitter, err = r.bus.Emitter(new(EventSlash)); err != nil {
		return nil, fmt.Errorf("slash emitter: %w", err)
	}
	if r.packageEmitter, err = r.bus.Emitter(new(EventSlashPackage)); err != nil {
		return nil, fmt.Errorf("slash package emitter: %w", err)
	}
	if r.paramEmitter, err = r.bus.Emitter(new(EventParamChange)); err != nil {
		return nil, fmt.Errorf("param emitter: %w", err)
	}
	if r.compactEmitter, err = r.bus.Emitter(new(EventCompacted)); err != nil {
		return nil, fmt.Errorf("compaction emitter: %w", err)
	}
	return r, nil
}

// ReportSlash emits ev. Felonies are also relayed as an encoded SlashPackage.
func (r *Reporter) ReportSlash(ev EventSlash) {
	r.mu.Lock()
	r.recent.insert(ev)
	r.mu.Unlock()

	if err := r.slashEmitter.Emit(ev); err != nil {
		r.logger.Error("failed to emit slash", zap.Object("event", &ev), zap.Error(err))
	}
	if ev.Kind == KindMisdemeanor {
		return
	}
	pkg := ev.Package()
	if err := r.packageEmitter.Emit(EventSlashPackage{Payload: codec.MustEncode(&pkg)}); err != nil {
		r.logger.Error("failed to emit slash package", zap.Object("event", &ev), zap.Error(err))
	}
}

// ReportParamChange emits ev.
func (r *Reporter) ReportParamChange(ev EventParamChange) {
	if err := r.paramEmitter.Emit(ev); err != nil {
		r.logger.Error("failed to emit param change", zap.String("key", ev.Key), zap.Error(err))
	}
}

// ReportCompacted emits ev.
func (r *Reporter) ReportCompacted(ev EventCompacted) {
	if err := r.compactEmitter.Emit(ev); err != nil {
		r.logger.Error("failed to emit compaction", zap.Int("removed", ev.Removed), zap.Error(err))
	}
}

// Recent returns the latest slashes, oldest first.
func (r *Reporter) Recent() []EventSlash {
	r.mu.Lock()
	defer r.mu.Unlock()
	rst := make([]EventSlash, 0, r.recent.cap())
	r.recent.iterate(func(ev EventSlash) bool {
		rst = append(rst, ev)
		return true
	})
	return rst
}

// SubscribeSlashes subscribes to EventSlash.
func (r *Reporter) SubscribeSlashes() (Subscription, error) {
	return r.bus.Subscribe(new(EventSlash), eventbus.BufSize(r.bufsize))
}

// SubscribeSlashPackages subscribes to EventSlashPackage.
func (r *Reporter) SubscribeSlashPackages() (Subscription, error) {
	return r.bus.Subscribe(new(EventSlashPackage), eventbus.BufSize(r.bufsize))
}

// SubscribeParamChanges subscribes to EventParamChange.
func (r *Reporter) SubscribeParamChanges() (Subscription, error) {
	return r.bus.Subscribe(new(EventParamChange), eventbus.BufSize(r.bufsize))
}

// SubscribeCompactions subscribes to EventCompacted.
func (r *Reporter) SubscribeCompactions() (Subscription, error) {
	return r.bus.Subscribe(new(EventCompacted), eventbus.BufSize(r.bufsize))
}

// Close closes all emitters. Subscriptions must be closed by their owners.
func (r *Reporter) Close() error {
	return errors.Join(
		r.slashEmitter.Close(),
		r.packageEmitter.Close(),
		r.paramEmitter.Close(),
		r.compactEmitter.Close(),
	)
}
