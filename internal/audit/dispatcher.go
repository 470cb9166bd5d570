package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Event struct {
	ShopID     uint      `json:"shop_id"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   *uint     `json:"entity_id,omitempty"`
	Metadata   any       `json:"metadata,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sinks  []Sink
	queue  chan Event
	logger *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(logger *slog.Logger, size int, sinks ...Sink) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		sinks:  sinks,
		queue:  make(chan Event, size),
		logger: logger,
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Write(context.Background(), ev); err != nil {
				d.logger.Error("audit.sink_failed", "action", ev.Action, "error", err)
			}
		}
	}
}

// Dispatch never blocks the caller: with a full queue the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit.queue_full", "action", ev.Action)
	}
}

// Close drains queued events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.closeOnce.Do(func() { close(d.queue) })

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
