package audit

import (
	"context"
	"sync"
	"sync/atomic"
)

// Config controls dispatcher buffering behavior.
type Config struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// Stats is a point-in-time view of dispatcher counters.
type Stats struct {
	Delivered  uint64
	Dropped    uint64
	Scrubbed   uint64
	SinkPanics uint64
}

// Dispatcher forwards events to a sink from a single goroutine so that slow
// sinks never run on the caller's path.
type Dispatcher struct {
	sink       Sink
	dropIfFull bool

	queue    chan Event
	stop     chan struct{}
	drainNow chan struct{}
	finished chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool

	// emitMu is held shared by Emit from the stopped check through the
	// enqueue; Close takes it exclusively before the final drain.
	emitMu sync.RWMutex

	delivered  atomic.Uint64
	dropped    atomic.Uint64
	scrubbed   atomic.Uint64
	sinkPanics atomic.Uint64
}

// NewDispatcher starts the delivery goroutine. It returns nil when cfg is
// disabled; a nil Dispatcher accepts and discards events.
func NewDispatcher(cfg Config, sink Sink) *Dispatcher {
	if !cfg.Enabled {
		return nil
	}
	if sink == nil {
		sink = NoOpSink{}
	}

	d := &Dispatcher{
		sink:       sink,
		dropIfFull: cfg.DropIfFull,
		queue:      make(chan Event, max(cfg.BufferSize, 1)),
		stop:       make(chan struct{}),
		drainNow:   make(chan struct{}),
		finished:   make(chan struct{}),
	}
	go d.loop()
	return d
}

func (d *Dispatcher) loop() {
	defer close(d.finished)

	for {
		select {
		case event := <-d.queue:
			d.deliver(event)
		case <-d.drainNow:
			d.drain()
			return
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case event := <-d.queue:
			d.deliver(event)
		default:
			return
		}
	}
}

// deliver isolates the loop from sink panics; a panicking sink loses that
// event only.
func (d *Dispatcher) deliver(event Event) {
	defer func() {
		if recover() != nil {
			d.sinkPanics.Add(1)
		}
	}()
	d.sink.Emit(context.Background(), event)
	d.delivered.Add(1)
}

// Emit scrubs and queues event. With DropIfFull a full buffer drops the event
// and counts it; otherwise Emit blocks until there is room or ctx ends. Events
// emitted after Close are counted as dropped.
func (d *Dispatcher) Emit(ctx context.Context, event Event) {
	if d == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d.emitMu.RLock()
	defer d.emitMu.RUnlock()

	if d.stopped.Load() {
		d.dropped.Add(1)
		return
	}
	if n := Scrub(&event); n > 0 {
		d.scrubbed.Add(uint64(n))
	}

	if d.dropIfFull {
		select {
		case d.queue <- event:
		default:
			d.dropped.Add(1)
		}
		return
	}

	select {
	case d.queue <- event:
	case <-ctx.Done():
		d.dropped.Add(1)
	case <-d.stop:
		d.dropped.Add(1)
	}
}

// Close delivers everything queued before it returns and stops the goroutine.
// Safe to call more than once.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.stopOnce.Do(func() {
		d.stopped.Store(true)
		// Releases blocked emitters; the loop keeps consuming until drainNow.
		close(d.stop)
		d.emitMu.Lock()
		// No Emit is in flight past this point.
		d.emitMu.Unlock()
		close(d.drainNow)
	})
	<-d.finished
}

func (d *Dispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}

func (d *Dispatcher) Stats() Stats {
	if d == nil {
		return Stats{}
	}
	return Stats{
		Delivered:  d.delivered.Load(),
		Dropped:    d.dropped.Load(),
		Scrubbed:   d.scrubbed.Load(),
		SinkPanics: d.sinkPanics.Load(),
	}
}
