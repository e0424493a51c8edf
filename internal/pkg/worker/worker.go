package worker

import (
	"time"

	"blog_api/pkg/logger"
	"blog_api/pkg/metrics"

	"go.uber.org/zap"
)

// CounterRecomputer recomputes one post's denormalized reaction counters.
type CounterRecomputer interface {
	RecomputePostCounters(postID string) error
}

// RecountTask asks for one post's counters to be recomputed.
type RecountTask struct {
	PostID string
	Retry  int
}

// RecountPool repairs post counters concurrently. It backs the offline
// backfill; request paths recompute synchronously and never go through it.
type RecountPool struct {
	tasks      chan RecountTask
	retryQueue chan RecountTask
	svc        CounterRecomputer
	workerNum  int
	maxRetry   int
	pending    chan struct{} // counting semaphore of unfinished tasks
}

// NewRecountPool creates a pool with workerNum workers and a task buffer
// of bufferSize.
func NewRecountPool(svc CounterRecomputer, workerNum, bufferSize int) *RecountPool {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &RecountPool{
		tasks:      make(chan RecountTask, bufferSize),
		retryQueue: make(chan RecountTask, bufferSize),
		svc:        svc,
		workerNum:  workerNum,
		maxRetry:   3,
		pending:    make(chan struct{}, bufferSize),
	}
}

// Start launches the workers.
func (p *RecountPool) Start() {
	for i := 0; i < p.workerNum; i++ {
		go p.worker(i)
	}
	go p.retryWorker()
	logger.Log.Info("recount pool started", zap.Int("workers", p.workerNum))
}

// AddTask enqueues a post for recounting. Blocks when the buffer is full.
func (p *RecountPool) AddTask(postID string) {
	p.pending <- struct{}{}
	p.tasks <- RecountTask{PostID: postID}
}

// Wait blocks until every enqueued task has finished, including retries.
func (p *RecountPool) Wait() {
	for i := 0; i < cap(p.pending); i++ {
		p.pending <- struct{}{}
	}
	// drain so Wait can be called more than once
	for i := 0; i < cap(p.pending); i++ {
		<-p.pending
	}
}

func (p *RecountPool) worker(id int) {
	for task := range p.tasks {
		err := p.svc.RecomputePostCounters(task.PostID)
		if err == nil {
			metrics.GetGlobalCollector().RecordCounterRecount("ok")
			<-p.pending
			continue
		}

		logger.Log.Warn("recount failed",
			zap.Int("worker", id),
			zap.String("post_id", task.PostID),
			zap.Int("attempt", task.Retry),
			zap.Error(err),
		)

		if task.Retry < p.maxRetry {
			task.Retry++
			select {
			case p.retryQueue <- task:
			default:
				// retry queue full; give up on this post
				metrics.GetGlobalCollector().RecordCounterRecount("dropped")
				<-p.pending
			}
		} else {
			metrics.GetGlobalCollector().RecordCounterRecount("failed")
			logger.Log.Error("recount exceeded max retries", zap.String("post_id", task.PostID))
			<-p.pending
		}
	}
}

func (p *RecountPool) retryWorker() {
	for task := range p.retryQueue {
		time.Sleep(time.Duration(task.Retry) * time.Second)
		p.tasks <- task
	}
}
