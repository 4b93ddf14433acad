package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/aitax/tax-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes classification jobs to a fixed set of workers using
// consistent hashing on the transaction ID, so repeated jobs for the same
// transaction are processed in order.
type Dispatcher struct {
	workers   []chan ports.ClassificationJob
	processor ports.ClassificationProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ClassificationJob, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ClassificationJob, channelBuffer)
	}
	return d
}

// Bind sets the processor the workers invoke. The bank service both
// enqueues jobs and processes them, so it is attached after construction.
// Must be called before Start.
func (d *Dispatcher) Bind(processor ports.ClassificationProcessor) {
	d.processor = processor
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a job to the worker responsible for its transaction.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.ClassificationJob) {
	d.workers[d.shardIndex(job.TransactionID)] <- job
}

// EnqueueBatch enqueues multiple jobs preserving per-transaction ordering.
func (d *Dispatcher) EnqueueBatch(jobs []ports.ClassificationJob) {
	for _, job := range jobs {
		d.Enqueue(job)
	}
}

func (d *Dispatcher) shardIndex(transactionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(transactionID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ClassificationJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			if err := d.processor.Process(ctx, job); err != nil {
				d.log.Error().Err(err).
					Str("transaction_id", job.TransactionID).
					Int("worker_id", id).
					Msg("classification failed")
			}
		}
	}
}
