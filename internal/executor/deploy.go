package executor

import (
	"context"

	"github.com/giantswarm/piceli/internal/graph"
	"github.com/giantswarm/piceli/internal/journal"
	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/pkg/logging"
)

// Deploy runs layered.Levels in order, applying each level's objects via
// runLevel. The first level that fails triggers rollback; every other
// level has already completed by construction (strict happens-before
// between levels, spec.md §5), so rollback only ever needs to unwind
// Journal entries recorded so far.
func (e *Executor) Deploy(ctx context.Context, layered graph.Layered) (State, []error) {
	deployCtx := ctx
	if e.Options.DeployTimeout > 0 {
		var cancel context.CancelFunc
		deployCtx, cancel = context.WithTimeout(ctx, e.Options.DeployTimeout)
		defer cancel()
	}

	for _, level := range layered.Levels {
		if failures := e.runLevel(deployCtx, level, layered.Objects); len(failures) > 0 {
			return e.rollback(deployCtx, failures)
		}
	}
	return Completed, nil
}

// rollback replays the journal in reverse and maps the outcome onto the
// deploy state machine's two failure-path terminal states.
func (e *Executor) rollback(ctx context.Context, causes []error) (State, []error) {
	stepFailures := journal.Replay(ctx, e.Journal, e.Transport, e.reportRollbackStep)

	errs := make([]error, 0, len(causes)+len(stepFailures))
	errs = append(errs, causes...)
	if len(stepFailures) > 0 {
		for _, f := range stepFailures {
			errs = append(errs, f)
		}
		return RollbackFailed, errs
	}
	return RolledBack, errs
}

func (e *Executor) reportRollbackStep(identity object.Identity, err error) {
	outcome := "rolled-back"
	errMsg := ""
	if err != nil {
		outcome = "rollback-failed"
		errMsg = err.Error()
	}
	logging.Deploy(logging.DeployEvent{RunID: e.RunID, Identity: identity.String(), Action: "rollback", Outcome: outcome, Error: errMsg})
}
