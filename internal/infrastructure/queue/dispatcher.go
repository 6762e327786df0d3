package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
	"github.com/vpclogistics/dispatch-widget/pkg/metrics"
)

const (
	defaultWorkers  = 4
	channelBuffer   = 256
	deliveryTimeout = 5 * time.Second
)

// Dispatcher delivers analytics events to a set of sinks on a fixed pool of
// workers. Events are sharded by session id, so one widget's events are
// delivered in the order they were emitted.
type Dispatcher struct {
	workers []chan domain.AnalyticsEvent
	sinks   []ports.AnalyticsSink
	log     zerolog.Logger
	wg      sync.WaitGroup
}

var _ ports.AnalyticsQueue = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger, sinks ...ports.AnalyticsSink) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AnalyticsEvent, numWorkers),
		sinks:   sinks,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AnalyticsEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel and
// stop once ctx is cancelled; Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() { d.wg.Wait() }

// Enqueue hands event to the worker owning its session. It never blocks:
// when that worker is full the event is dropped and counted.
func (d *Dispatcher) Enqueue(event domain.AnalyticsEvent) {
	idx := d.shardIndex(event.SessionID)
	select {
	case d.workers[idx] <- event:
		metrics.AnalyticsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AnalyticsErrorsTotal.WithLabelValues("queue").Inc()
		d.log.Warn().
			Str("event", event.Name).
			Str("session_id", event.SessionID).
			Int("worker_id", idx).
			Msg("analytics queue full, event dropped")
	}
}

// shardIndex maps a session id deterministically to a worker index.
func (d *Dispatcher) shardIndex(sessionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AnalyticsEvent) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			return
		case event := <-ch:
			metrics.AnalyticsQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.deliver(context.Background(), id, event)
		}
	}
}

// drain delivers whatever is still buffered at shutdown.
func (d *Dispatcher) drain(id int, ch <-chan domain.AnalyticsEvent) {
	for {
		select {
		case event := <-ch:
			d.deliver(context.Background(), id, event)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(parent context.Context, id int, event domain.AnalyticsEvent) {
	ctx, cancel := context.WithTimeout(parent, deliveryTimeout)
	defer cancel()

	start := time.Now()
	for _, sink := range d.sinks {
		if err := sink.Record(ctx, event); err != nil {
			metrics.AnalyticsErrorsTotal.WithLabelValues(sink.Name()).Inc()
			d.log.Error().Err(err).
				Str("sink", sink.Name()).
				Str("event", event.Name).
				Str("session_id", event.SessionID).
				Int("worker_id", id).
				Msg("analytics delivery failed")
		}
	}
	metrics.AnalyticsDeliveryDuration.WithLabelValues(event.Name).Observe(time.Since(start).Seconds())
	metrics.AnalyticsEventsTotal.WithLabelValues(event.Name).Inc()
}
