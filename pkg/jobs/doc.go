// Package jobs implements a worker pool for named background jobs.
//
// A Runner manages a fixed pool of workers executing jobs concurrently.
// One-shot jobs are submitted via Submit and return a Ticket for the
// result; recurring maintenance (leave accrual, scheduled reconciliation)
// is registered via Every and runs until the Runner closes.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                             Runner                                  │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         │                     │                     │               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │                                     │
//	│                        ┌──────┴──────┐                              │
//	│                        │  dispatch() │                              │
//	│                        └──────┬──────┘                              │
//	│                               │                                     │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                       Job Queue                         │        │
//	│  │  [job1] [job2] [job3] ...                               │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                    Submit(name, job)   Every(name, d, job)          │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Core Components
//
// Runner:
//   - Owns a fixed number of workers, set at construction
//   - Queues jobs in submission order when every worker is busy
//   - Dispatches queued jobs from a single event loop
//   - Shuts down gracefully through Close()
//
// Worker:
//   - Runs one job at a time and rejoins the pool when done
//   - Turns a panicking job into an error Result
//
// Ticket:
//   - Represents a pending result from a submitted job
//   - C() delivers exactly one Result when the job finishes
//   - Stop() cancels the job's context
//
// # Periodic Jobs
//
// Every(name, interval, job) starts a ticker goroutine that resubmits
// the job on each tick and logs failures through zap. The schedule
// stops when the Runner closes; periodic failures never stop the
// schedule.
//
// # Cancellation and Shutdown
//
// Each job gets a context derived from the Runner's main context:
//
//   - ticket.Stop() cancels an individual job
//   - runner.Close() cancels the main context, stops all tickers,
//     waits for in-flight jobs to drain, then returns
//
// Close() is idempotent (uses sync.Once). Submissions after Close
// resolve immediately with context.Canceled.
//
// # Usage Example
//
//	runner := jobs.NewRunner(4)
//	defer runner.Close()
//
//	ticket := runner.Submit("reconcile", func(ctx context.Context) error {
//	    _, err := reconciler.Sync(ctx)
//	    return err
//	})
//	res := <-ticket.C()
//	if res.Err != nil {
//	    log.Errorw("job failed", "job", res.Name, "error", res.Err)
//	}
//
//	runner.Every("leave-accrual", 24*time.Hour, accrueAll)
package jobs
