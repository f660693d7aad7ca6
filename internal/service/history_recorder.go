package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/logger"
	"github.com/AJLandry1000000000/flower-shop/internal/metrics"
)

// HistoryRecorder accepts order records for storage without blocking the caller.
type HistoryRecorder interface {
	// Enqueue returns false when the record was dropped.
	Enqueue(record *model.OrderRecord) bool
}

// AsyncRecorderConfig holds configuration for the async recorder.
type AsyncRecorderConfig struct {
	// BufferSize is the size of the record channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing records.
	NumWorkers int
	// WriteTimeout bounds a single write to the history store.
	WriteTimeout time.Duration
}

// DefaultAsyncRecorderConfig returns sensible defaults for the async recorder.
func DefaultAsyncRecorderConfig() AsyncRecorderConfig {
	return AsyncRecorderConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// RecorderStats is a snapshot of the recorder counters.
type RecorderStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Errors   int64 `json:"errors"`
}

// AsyncRecorder writes order records through a bounded buffer and a fixed
// worker pool, so a slow history store never holds up an order.
type AsyncRecorder struct {
	history      HistoryService
	recordCh     chan *model.OrderRecord
	wg           sync.WaitGroup
	stopCh       chan struct{}
	stopOnce     sync.Once
	writeTimeout time.Duration

	// stopMu keeps Enqueue from sending once Stop has begun.
	stopMu  sync.RWMutex
	stopped bool

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncRecorder starts the worker pool. It returns nil when history is nil.
func NewAsyncRecorder(history HistoryService, cfg AsyncRecorderConfig) *AsyncRecorder {
	if history == nil {
		return nil
	}
	def := DefaultAsyncRecorderConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	r := &AsyncRecorder{
		history:      history,
		recordCh:     make(chan *model.OrderRecord, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

func (r *AsyncRecorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case record := <-r.recordCh:
			r.write(record)
		case <-r.stopCh:
			// drain what is already buffered
			for {
				select {
				case record := <-r.recordCh:
					r.write(record)
				default:
					return
				}
			}
		}
	}
}

func (r *AsyncRecorder) write(record *model.OrderRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	if err := r.history.Record(ctx, record); err != nil {
		r.errors.Add(1)
		metrics.RecordHistory(metrics.HistoryError)
		log := logger.Logger()
		log.Warn().Err(err).Str("request_id", record.RequestID).Msg("Failed to write order record")
		return
	}
	r.written.Add(1)
	metrics.RecordHistory(metrics.HistoryWritten)
}

// Enqueue hands the record to the workers. It never blocks: when the buffer
// is full, or the recorder is stopped, the record is dropped.
func (r *AsyncRecorder) Enqueue(record *model.OrderRecord) bool {
	if r == nil || record == nil {
		return false
	}
	r.stopMu.RLock()
	defer r.stopMu.RUnlock()
	if r.stopped {
		r.drop()
		return false
	}

	select {
	case r.recordCh <- record:
		r.enqueued.Add(1)
		return true
	default:
		r.drop()
		return false
	}
}

func (r *AsyncRecorder) drop() {
	r.dropped.Add(1)
	metrics.RecordHistory(metrics.HistoryDropped)
}

// Stop waits for buffered records to be written. Safe to call more than once.
func (r *AsyncRecorder) Stop() {
	if r == nil {
		return
	}
	r.stopOnce.Do(func() {
		r.stopMu.Lock()
		r.stopped = true
		close(r.stopCh)
		r.stopMu.Unlock()
		r.wg.Wait()
	})
}

// Stats returns current recorder statistics.
func (r *AsyncRecorder) Stats() RecorderStats {
	return RecorderStats{
		Enqueued: r.enqueued.Load(),
		Dropped:  r.dropped.Load(),
		Written:  r.written.Load(),
		Errors:   r.errors.Load(),
	}
}
