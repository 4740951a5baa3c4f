package executor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"k8s.io/client-go/util/workqueue"

	"github.com/giantswarm/piceli/internal/journal"
	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/internal/plan"
	"github.com/giantswarm/piceli/internal/transport"
	"github.com/giantswarm/piceli/pkg/logging"
)

// Executor runs one deploy invocation's layered plan against Transport,
// recording every mutation in Journal for rollback.
type Executor struct {
	Transport transport.Transport
	Journal   *journal.Journal
	Options   Options

	// RunID correlates every log line this Executor emits with one deploy
	// invocation, for structured-log grep-ability across a concurrent
	// level's workers.
	RunID string
}

// New builds an Executor with a fresh correlation id and journal.
func New(t transport.Transport, opts Options) *Executor {
	return &Executor{
		Transport: t,
		Journal:   journal.New(),
		Options:   opts,
		RunID:     uuid.NewString(),
	}
}

// runLevel applies every identity in one level concurrently, bounded by
// Options.Parallelism workers pulled from a client-go work queue. It
// returns every apply error encountered; as soon as the first one occurs,
// workers stop starting new work (in-flight work still settles) but the
// queue itself is not torn down until every item has been accounted for,
// matching spec.md §4.5 ("waits for in-flight Actions to settle").
func (e *Executor) runLevel(ctx context.Context, identities []object.Identity, objects map[object.Identity]object.CanonicalObject) []error {
	if len(identities) == 0 {
		return nil
	}

	queue := workqueue.NewTyped[object.Identity]()
	for _, id := range identities {
		queue.Add(id)
	}

	workers := e.Options.Parallelism
	if workers <= 0 || workers > len(identities) {
		workers = len(identities)
	}

	var aborted atomic.Bool
	var mu sync.Mutex
	var failures []error
	completed := 0
	total := len(identities)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				id, shutdown := queue.Get()
				if shutdown {
					return
				}

				var err error
				if !aborted.Load() {
					err = e.applyOne(ctx, id, objects[id])
				}
				queue.Done(id)

				if err != nil {
					aborted.Store(true)
					mu.Lock()
					failures = append(failures, fmt.Errorf("%s: %w", id, err))
					mu.Unlock()
				}

				mu.Lock()
				completed++
				done := completed == total
				mu.Unlock()
				if done {
					queue.ShutDown()
				}
			}
		}()
	}
	wg.Wait()

	return failures
}

// applyOne runs the per-object apply loop of spec.md §4.5: fresh GET,
// journal pre-image, submit the planned Action, then wait for readiness.
func (e *Executor) applyOne(ctx context.Context, id object.Identity, obj object.CanonicalObject) error {
	objCtx := ctx
	if e.Options.PerObjectTimeout > 0 {
		var cancel context.CancelFunc
		objCtx, cancel = context.WithTimeout(ctx, e.Options.PerObjectTimeout)
		defer cancel()
	}

	var live object.Node
	liveExists := true
	getErr := e.retryTransient(func() error {
		var err error
		live, err = e.Transport.Get(objCtx, id)
		return err
	})
	if getErr != nil {
		if _, ok := getErr.(*transport.NotFoundError); ok {
			liveExists = false
		} else {
			return getErr
		}
	}

	desiredFull := obj.Full()
	action, err := plan.Decide(id.Kind, id, liveExists, live, desiredFull)
	if err != nil {
		return err
	}

	if action.Kind == plan.NoAction {
		logging.Deploy(logging.DeployEvent{RunID: e.RunID, Identity: id.String(), Action: action.Kind.String(), Outcome: "no-op"})
		return nil
	}

	entry := journal.Entry{Identity: id, Action: action.Kind}
	if liveExists {
		entry.PreImage = live
		entry.HasPreImage = true
	}
	e.Journal.Append(entry)

	submitErr := e.retryTransient(func() error {
		switch action.Kind {
		case plan.Create:
			return e.Transport.Create(objCtx, id, action.Desired)
		case plan.Patch:
			return e.Transport.Patch(objCtx, id, action.MergePatch)
		case plan.Replace:
			return e.Transport.Replace(objCtx, id, action.Desired)
		default:
			return fmt.Errorf("unexpected action kind %v", action.Kind)
		}
	})
	if submitErr != nil {
		logging.Deploy(logging.DeployEvent{RunID: e.RunID, Identity: id.String(), Action: action.Kind.String(), Outcome: "failed", Error: submitErr.Error()})
		return submitErr
	}

	if err := e.waitForReadiness(objCtx, id); err != nil {
		logging.Deploy(logging.DeployEvent{RunID: e.RunID, Identity: id.String(), Action: action.Kind.String(), Outcome: "not-ready", Error: err.Error()})
		return err
	}

	logging.Deploy(logging.DeployEvent{RunID: e.RunID, Identity: id.String(), Action: action.Kind.String(), Outcome: "applied"})
	return nil
}
