package journal

import (
	"context"
	"fmt"

	"github.com/giantswarm/piceli/internal/object"
	"github.com/giantswarm/piceli/internal/transport"
)

// StepError reports that one entry's rollback step failed. Replay
// collects these but keeps going (spec.md §4.5: "rollback is best-effort;
// individual rollback failures are reported but do not stop the replay").
type StepError struct {
	Identity object.Identity
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("rollback step for %s failed: %v", e.Identity, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Reporter receives every rollback outcome, success or failure, for
// diagnostic output as replay progresses.
type Reporter func(identity object.Identity, err error)

// Replay walks the journal from newest to oldest: a CREATE entry
// (HasPreImage=false) is undone with Delete; any other entry is undone by
// restoring PreImage via Replace. It returns every StepError encountered,
// continuing past failures rather than stopping early. A nil Reporter is
// permitted.
func Replay(ctx context.Context, j *Journal, t transport.Transport, report Reporter) []*StepError {
	entries := j.Entries()

	var failures []*StepError
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]

		var err error
		if entry.HasPreImage {
			err = t.Replace(ctx, entry.Identity, entry.PreImage)
		} else {
			err = t.Delete(ctx, entry.Identity)
			if _, isNotFound := err.(*transport.NotFoundError); isNotFound {
				err = nil
			}
		}

		if report != nil {
			report(entry.Identity, err)
		}
		if err != nil {
			failures = append(failures, &StepError{Identity: entry.Identity, Err: err})
		}
	}
	return failures
}
