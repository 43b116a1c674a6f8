package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of background work. It must honor ctx cancellation.
type Job func(ctx context.Context) error

// Result reports the outcome of a submitted job.
type Result struct {
	Name string
	Err  error
}

// Ticket tracks a submitted job. C() delivers exactly one Result;
// Stop() cancels the job's context.
type Ticket struct {
	c      chan Result
	cancel context.CancelFunc
}

func newTicket(c chan Result, cancel context.CancelFunc) *Ticket {
	return &Ticket{c: c, cancel: cancel}
}

func (t *Ticket) C() <-chan Result {
	return t.c
}

func (t *Ticket) Stop() {
	t.cancel()
}

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

type jobRequest struct {
	name string
	job  Job
	c    chan Result
	ctx  context.Context
}

type worker struct {
	done chan any
	wg   *sync.WaitGroup
}

func (w worker) Work(r jobRequest) {
	defer func() {
		if rec := recover(); rec != nil {
			r.c <- Result{Name: r.name, Err: fmt.Errorf("job %q panicked: %v", r.name, rec)}
		}
		w.done <- struct{}{}
		w.wg.Done()
	}()

	r.c <- Result{Name: r.name, Err: r.job(r.ctx)}
}

func newWorker(done chan any, wg *sync.WaitGroup) worker {
	return worker{done: done, wg: wg}
}

// Runner executes named jobs on a fixed pool of workers. Jobs beyond
// the pool size queue in submission order. Periodic jobs registered
// with Every are resubmitted on their interval until Close.
type Runner struct {
	log        *zap.SugaredLogger
	workers    *queue[worker]
	jobQueue   *queue[jobRequest]
	close      chan any
	done       chan any
	submit     chan jobRequest
	mainCtx    context.Context
	mainCancel context.CancelFunc
	wg         sync.WaitGroup
	tickers    sync.WaitGroup
	once       sync.Once
}

func NewRunner(nbWorkers int) *Runner {
	done := make(chan any, nbWorkers)
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		log:        zap.S().Named("jobs"),
		workers:    &queue[worker]{},
		jobQueue:   &queue[jobRequest]{},
		close:      make(chan any),
		done:       done,
		submit:     make(chan jobRequest),
		mainCtx:    ctx,
		mainCancel: cancel,
	}
	for range nbWorkers {
		r.workers.Push(newWorker(done, &r.wg))
	}
	go r.run()
	return r
}

// Submit enqueues a job for execution and returns its Ticket.
func (r *Runner) Submit(name string, job Job) *Ticket {
	c := make(chan Result, 1)
	ctx, cancel := context.WithCancel(r.mainCtx)

	select {
	case <-r.mainCtx.Done():
		// closing, report cancellation instead of queuing
		c <- Result{Name: name, Err: context.Canceled}
	case r.submit <- jobRequest{name, job, c, ctx}:
	}

	return newTicket(c, cancel)
}

// Every resubmits job on the given interval until the runner closes.
// Failures are logged and do not stop the schedule.
func (r *Runner) Every(name string, interval time.Duration, job Job) {
	r.tickers.Add(1)
	go func() {
		defer r.tickers.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.mainCtx.Done():
				return
			case <-ticker.C:
				ticket := r.Submit(name, job)
				select {
				case <-r.mainCtx.Done():
					return
				case res := <-ticket.C():
					if res.Err != nil {
						r.log.Errorw("periodic job failed", "job", name, "error", res.Err)
					}
				}
			}
		}
	}()
}

// Close cancels outstanding jobs, stops periodic schedules and waits
// for in-flight work to drain. Safe to call more than once.
func (r *Runner) Close() {
	r.once.Do(func() {
		r.mainCancel()
		r.tickers.Wait()
		r.close <- struct{}{}
		<-r.done
	})
}

func (r *Runner) run() {
	defer close(r.done)
	for {
		select {
		case req := <-r.submit:
			r.jobQueue.Push(req)
			r.dispatch()
		case <-r.done:
			r.workers.Push(newWorker(r.done, &r.wg))
			r.dispatch()
		case <-r.close:
			r.wg.Wait()
			return
		}
	}
}

// dispatch drains the jobQueue as much as possible
// based on available workers
func (r *Runner) dispatch() {
	for r.workers.Len() > 0 && r.jobQueue.Len() > 0 {
		req := r.jobQueue.Pop()
		worker := r.workers.Pop()
		r.wg.Add(1)
		go worker.Work(req)
	}
}
