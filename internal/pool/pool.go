// Package pool runs units of work on a fixed number of worker goroutines.
package pool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidSize is returned by Build for a non-positive worker count.
	ErrInvalidSize = errors.New("pool: worker count must be positive")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("pool: closed")
)

// Pool is a bounded executor: at most Size jobs run at the same time.
type Pool struct {
	size int
	jobs chan func()
	log  zerolog.Logger

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// Build starts size workers.
func Build(size int, log zerolog.Logger) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	p := &Pool{
		size: size,
		jobs: make(chan func()),
		log:  log.With().Str("component", "pool").Logger(),
	}
	p.wg.Add(size)
	for id := 0; id < size; id++ {
		go p.worker(id)
	}
	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Submit hands job to a worker, blocking until one is free.
func (p *Pool) Submit(job func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}
	p.jobs <- job
	return nil
}

// Close stops accepting jobs and waits for running jobs to return.
// It is safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		p.log.Debug().Int("worker", id).Msg("got a job; executing")
		p.run(id, job)
	}
	p.log.Debug().Int("worker", id).Msg("disconnected; shutting down")
}

// run executes job, recovering a panic so the worker survives it.
func (p *Pool) run(id int, job func()) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Int("worker", id).Interface("panic", r).Msg("job panicked")
		}
	}()
	job()
}
