// Package reasonerpool runs several independent reasoners concurrently.
// A Memory instance is single-threaded and cooperative (nal.Memory's own
// doc comment); this package never shares one Memory across goroutines —
// instead it gives each submitted job its own Memory and fans the jobs out
// across a bounded worker pool, adapted from the concurrency primitives in
// internal/parallel/pool.go (queue/backpressure/stats shape kept, retargeted
// from goal evaluation to reasoner cycles).
package reasonerpool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gitrdm/nal-go/pkg/nal"
)

// ErrPoolShutdown is returned by Submit once the pool has been shut down.
var ErrPoolShutdown = fmt.Errorf("reasonerpool: pool is shut down")

// Job is one unit of work: build a Memory, run it, report a result. Run
// receives a fresh Memory per call so concurrent jobs never share state.
type Job struct {
	Name   string
	Config nal.Config
	Run    func(m *nal.Memory) JobResult
}

// JobResult is what a Job's Run function reports; the pool fills in Name
// and Duration around it to build the final Result.
type JobResult struct {
	Cycles  int
	Emitted []*nal.Task
	Err     error
}

// Result is what a Job reports back after running.
type Result struct {
	Name     string
	Cycles   int
	Emitted  []*nal.Task
	Duration time.Duration
	Err      error
}

// Pool runs Jobs across a fixed number of worker goroutines, each owning
// its Memory instances exclusively for the duration of a Job.
type Pool struct {
	workers   int
	jobChan   chan Job
	resultsMu sync.Mutex
	results   []Result
	wg        sync.WaitGroup
	shutdown  chan struct{}
	once      sync.Once
	stats     *Stats
}

// Stats accumulates coarse counters across every job the pool has run; it
// is the reasonerpool analogue of internal/parallel's ExecutionStats,
// trimmed to the counters meaningful for a batch of reasoner runs.
type Stats struct {
	submitted  int64
	completed  int64
	failed     int64
	totalCycle int64
}

func (s *Stats) recordSubmitted()        { atomic.AddInt64(&s.submitted, 1) }
func (s *Stats) recordCompleted(n int)   { atomic.AddInt64(&s.completed, 1); atomic.AddInt64(&s.totalCycle, int64(n)) }
func (s *Stats) recordFailed()           { atomic.AddInt64(&s.failed, 1) }

// Snapshot returns a point-in-time copy of the counters.
func (s *Stats) Snapshot() (submitted, completed, failed int, totalCycles int64) {
	return int(atomic.LoadInt64(&s.submitted)), int(atomic.LoadInt64(&s.completed)), int(atomic.LoadInt64(&s.failed)), atomic.LoadInt64(&s.totalCycle)
}

// New creates a Pool with workers goroutines (defaulting to NumCPU when
// workers <= 0) and starts them immediately.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		workers:  workers,
		jobChan:  make(chan Job, workers*4),
		shutdown: make(chan struct{}),
		stats:    &Stats{},
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobChan {
		p.runJob(job)
	}
}

func (p *Pool) runJob(job Job) {
	start := time.Now()
	result := Result{Name: job.Name}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("reasoner job %q panicked: %v", job.Name, r)
				p.stats.recordFailed()
			}
		}()
		m := nal.NewMemory(job.Config)
		jr := job.Run(m)
		result.Cycles = jr.Cycles
		result.Emitted = jr.Emitted
		result.Err = jr.Err
		if result.Err != nil {
			p.stats.recordFailed()
		} else {
			p.stats.recordCompleted(result.Cycles)
		}
	}()

	result.Duration = time.Since(start)
	p.resultsMu.Lock()
	p.results = append(p.results, result)
	p.resultsMu.Unlock()
}

// Submit enqueues a job, blocking until a worker slot is free, ctx is
// cancelled, or the pool has been shut down.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case <-p.shutdown:
		return ErrPoolShutdown
	default:
	}

	p.stats.recordSubmitted()
	select {
	case p.jobChan <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdown:
		return ErrPoolShutdown
	}
}

// Shutdown stops accepting jobs and waits for every in-flight job to
// finish, then returns every collected Result in completion order.
func (p *Pool) Shutdown() []Result {
	p.once.Do(func() {
		close(p.shutdown)
		close(p.jobChan)
		p.wg.Wait()
	})
	p.resultsMu.Lock()
	defer p.resultsMu.Unlock()
	return append([]Result(nil), p.results...)
}

// StatsSnapshot returns the pool's running counters.
func (p *Pool) StatsSnapshot() Stats {
	submitted, completed, failed, totalCycles := p.stats.Snapshot()
	return Stats{submitted: int64(submitted), completed: int64(completed), failed: int64(failed), totalCycle: totalCycles}
}
