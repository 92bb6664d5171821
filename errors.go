package eventjournal

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrWrongExpectedVersion reports a failed append precondition. The
	// losing writer may retry after re-reading; the adapter never retries
	// internally.
	ErrWrongExpectedVersion = errors.New("wrong expected version")

	// ErrStreamNotFound reports a read of a stream that does not exist or
	// is fully truncated.
	ErrStreamNotFound = errors.New("stream not found")

	// ErrEventNotFound reports a single-event read at a version the stream
	// does not hold.
	ErrEventNotFound = errors.New("event not found")

	// ErrSnapshotPayloadMissing reports a snapshot whose metadata entry
	// exists but whose payload stream does not. The two-step save makes
	// this state reachable; it is surfaced, not reconciled.
	ErrSnapshotPayloadMissing = errors.New("snapshot payload missing")
)

// WriteError aggregates the per-id failures of a multi-id write batch.
// Groups not listed in Failures were appended durably.
type WriteError struct {
	Failures map[string]error
}

func (e *WriteError) Error() string {
	ids := slices.Sorted(maps.Keys(e.Failures))
	var sb strings.Builder
	fmt.Fprintf(&sb, "write batch failed for %d persistence id(s):", len(ids))
	for _, id := range ids {
		fmt.Fprintf(&sb, " %s: %v;", id, e.Failures[id])
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Unwrap exposes the group errors to errors.Is and errors.As.
func (e *WriteError) Unwrap() []error {
	var errs []error
	for _, id := range slices.Sorted(maps.Keys(e.Failures)) {
		errs = append(errs, e.Failures[id])
	}
	return errs
}
