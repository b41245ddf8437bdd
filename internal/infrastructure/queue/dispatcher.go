package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/chemba/waste-platform/internal/api/metrics"
	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes report audit events to a fixed set of workers using
// consistent hashing on the report id, so events for one report are persisted
// in the order they were enqueued.
type Dispatcher struct {
	workers []chan domain.ReportAuditEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ReportAuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ReportAuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its report.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(ev domain.ReportAuditEvent) {
	d.workers[d.shardIndex(ev.ReportID)] <- ev
}

// shardIndex maps a report id deterministically to a worker index.
func (d *Dispatcher) shardIndex(reportID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(reportID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ReportAuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.InsertAuditEvent(ctx, &ev); err != nil {
				metrics.AuditEventsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("report_id", ev.ReportID).
					Int("worker_id", id).
					Msg("audit event persistence failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues("stored").Inc()
		}
	}
}
