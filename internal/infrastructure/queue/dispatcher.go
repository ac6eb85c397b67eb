package queue

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/buildservice/build-service/internal/core/domain"
	"github.com/buildservice/build-service/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// AuditDispatcher writes login events to the audit store in the background.
// Events are sharded by email so that each account's trail is written in
// order. Record never blocks: when a shard is full the event is dropped.
type AuditDispatcher struct {
	workers []chan domain.LoginEvent
	repo    ports.LoginEventRepository
	log     zerolog.Logger
	onDrop  func()
	wg      sync.WaitGroup
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. onDrop may be nil.
func NewAuditDispatcher(numWorkers int, repo ports.LoginEventRepository, log zerolog.Logger, onDrop func()) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if onDrop == nil {
		onDrop = func() {}
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.LoginEvent, numWorkers),
		repo:    repo,
		log:     log,
		onDrop:  onDrop,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.LoginEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their queue and stop
// when ctx is cancelled; Wait blocks until they are done.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *AuditDispatcher) Wait() {
	d.wg.Wait()
}

// Record implements ports.LoginAuditor.
func (d *AuditDispatcher) Record(event domain.LoginEvent) {
	select {
	case d.workers[d.shardIndex(event.Email)] <- event:
	default:
		d.onDrop()
		d.log.Warn().Str("email", event.Email).Msg("audit queue full, login event dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(email)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.LoginEvent) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			return
		case event := <-ch:
			d.write(context.Background(), id, event)
		}
	}
}

// drain flushes what is already queued so a graceful shutdown keeps the trail.
func (d *AuditDispatcher) drain(id int, ch <-chan domain.LoginEvent) {
	for {
		select {
		case event := <-ch:
			d.write(context.Background(), id, event)
		default:
			return
		}
	}
}

func (d *AuditDispatcher) write(ctx context.Context, id int, event domain.LoginEvent) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := d.repo.Insert(ctx, &event); err != nil {
		d.log.Error().Err(err).
			Str("event_id", event.ID).
			Int("worker_id", id).
			Msg("login event write failed")
	}
}
