package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes review audit events to a fixed set of workers using
// consistent hashing on the perfume id, so events for one perfume are
// persisted in submission order.
type Dispatcher struct {
	workers []chan domain.ReviewEvent
	events  ports.ReviewEventRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, events ports.ReviewEventRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ReviewEvent, numWorkers),
		events:  events,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ReviewEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its perfume.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event domain.ReviewEvent) {
	d.workers[d.shardIndex(event.PerfumeID)] <- event
}

// shardIndex maps a perfume id deterministically to a worker index.
func (d *Dispatcher) shardIndex(perfumeID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(perfumeID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ReviewEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.events.InsertEvent(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("perfume_id", event.PerfumeID).
					Int("worker_id", id).
					Msg("review audit write failed")
			}
		}
	}
}
