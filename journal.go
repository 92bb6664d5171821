package eventjournal

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Journal records the ordered event history of persistence ids in the
// backing stream store, one stream per id. All methods are safe for
// concurrent use; writes to one id are serialized by the store's conditional
// append, not by the Journal.
type Journal struct {
	conn   *Connection
	codec  Codec
	config *Config
}

func NewJournal(conn *Connection, codec Codec, opts ...Option) *Journal {
	return &Journal{
		conn:   conn,
		codec:  codec,
		config: applyOptions(defaultOptions(), opts...),
	}
}

// WriteBatch appends the events, grouped by persistence id. Each group is
// appended in one conditional call, expecting the version just before the
// group's lowest sequence number; the store assigns contiguous versions
// atomically or fails the group entirely. Groups run in parallel and are
// awaited independently; one group's failure never blocks or rolls back the
// others. On any failure the returned error is a *WriteError listing the
// failed ids. A version mismatch wraps ErrWrongExpectedVersion and is left
// for the caller to retry.
func (j *Journal) WriteBatch(ctx context.Context, events []Event) error {
	if len(events) == 0 {
		return nil
	}

	client, err := j.conn.Get(ctx)
	if err != nil {
		return err
	}

	groups := make(map[string][]Event)
	for _, event := range events {
		groups[event.PersistenceID] = append(groups[event.PersistenceID], event)
	}

	var (
		mux      sync.Mutex
		failures = make(map[string]error)
		g        errgroup.Group
	)
	for persistenceID, group := range groups {
		g.Go(func() error {
			err := j.appendGroup(ctx, client, persistenceID, group)
			if err != nil {
				mux.Lock()
				failures[persistenceID] = err
				mux.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failures) > 0 {
		return &WriteError{Failures: failures}
	}

	return nil
}

func (j *Journal) appendGroup(ctx context.Context, client Client, persistenceID string, group []Event) error {
	slices.SortFunc(group, func(a, b Event) int {
		return cmp.Compare(a.SequenceNr, b.SequenceNr)
	})

	first := group[0].SequenceNr
	if first < 1 {
		return fmt.Errorf("sequence numbers are 1-based, got %d", first)
	}
	for i, event := range group {
		if event.SequenceNr != first+int64(i) {
			return fmt.Errorf("sequence numbers not contiguous: expected %d, got %d", first+int64(i), event.SequenceNr)
		}
	}

	data := make([]EventData, 0, len(group))
	for _, event := range group {
		encoded, err := j.encode(event)
		if err != nil {
			return fmt.Errorf("encode event %d: %w", event.SequenceNr, err)
		}
		data = append(data, encoded)
	}

	_, err := client.AppendToStream(ctx, journalStream(persistenceID), expectedVersionFor(first), data)
	if err != nil {
		return fmt.Errorf("append from sequence %d: %w", first, err)
	}

	j.config.logger.InfofCtx(ctx, "journal: appended %d event(s) to %s from sequence %d", len(group), persistenceID, first)

	return nil
}

func (j *Journal) encode(event Event) (EventData, error) {
	payload, err := j.codec.Encode(event.Payload)
	if err != nil {
		return EventData{}, err
	}

	metadata, err := json.Marshal(EventMetadata{
		EventType: event.Payload.Manifest(),
		Sender:    event.Sender,
		Tags:      event.Tags,
	})
	if err != nil {
		return EventData{}, err
	}

	return EventData{
		EventType: event.Payload.Manifest(),
		Data:      payload,
		Metadata:  metadata,
	}, nil
}

// ReadHighestSequenceNumber resolves the highest known sequence number of a
// persistence id: the tail event's version translated back to a sequence
// number, or the truncate-before marker when the stream reads as not-found
// after full truncation. A never-written id resolves to 0. The from hint is
// accepted for interface compatibility and ignored; the tail read is O(1).
func (j *Journal) ReadHighestSequenceNumber(ctx context.Context, persistenceID string, from int64) (int64, error) {
	_ = from

	client, err := j.conn.Get(ctx)
	if err != nil {
		return 0, err
	}

	slice, err := client.ReadStreamBackward(ctx, journalStream(persistenceID), EndOfStreamPosition, 1)
	switch {
	case errors.Is(err, ErrStreamNotFound):
		meta, _, err := client.StreamMetadata(ctx, journalStream(persistenceID))
		if err != nil {
			return 0, err
		}
		if meta.TruncateBefore != nil {
			// The truncate-before version equals the highest deleted
			// sequence number under the offset rule, so recovery resumes
			// right after the deleted range.
			return *meta.TruncateBefore, nil
		}
		return 0, nil
	case err != nil:
		return 0, err
	}

	if len(slice.Events) == 0 {
		return 0, nil
	}

	return ToSequenceNr(slice.Events[len(slice.Events)-1].EventNumber), nil
}

// DeleteMessagesTo advances the id's truncate-before marker so all events
// with sequence number <= toSequenceNr become invisible. The marker only
// moves forward; a request behind the current marker is a no-op. No events
// are physically removed. All other metadata fields are preserved, and the
// write is conditional on the metadata stream's current version.
func (j *Journal) DeleteMessagesTo(ctx context.Context, persistenceID string, toSequenceNr int64) error {
	if toSequenceNr < 1 {
		return nil
	}

	client, err := j.conn.Get(ctx)
	if err != nil {
		return err
	}

	meta, version, err := client.StreamMetadata(ctx, journalStream(persistenceID))
	if err != nil {
		return err
	}

	// First retained version. Numerically equal to toSequenceNr because
	// versions are sequence numbers shifted down by one.
	truncateBefore := ToStreamVersion(toSequenceNr) + 1
	if meta.TruncateBefore != nil && *meta.TruncateBefore >= truncateBefore {
		return nil
	}

	meta.TruncateBefore = &truncateBefore

	err = client.SetStreamMetadata(ctx, journalStream(persistenceID), version, meta)
	if err != nil {
		return fmt.Errorf("truncate %s to sequence %d: %w", persistenceID, toSequenceNr, err)
	}

	j.config.logger.InfofCtx(ctx, "journal: truncated %s to sequence %d", persistenceID, toSequenceNr)

	return nil
}

// PersistenceIDs lists all known persistence ids from the store's
// stream-of-streams index, excluding system and snapshot streams.
func (j *Journal) PersistenceIDs(ctx context.Context) ([]string, error) {
	client, err := j.conn.Get(ctx)
	if err != nil {
		return nil, err
	}

	var (
		ids  []string
		from int64
	)
	for {
		slice, err := client.ReadStreamForward(ctx, StreamsStream, from, j.config.readBatchSize)
		if errors.Is(err, ErrStreamNotFound) {
			return ids, nil
		}
		if err != nil {
			return nil, err
		}

		for _, record := range slice.Events {
			name := string(record.Data)
			if strings.HasPrefix(name, "$") {
				continue
			}
			if strings.HasPrefix(name, snapshotMetaPrefix) || strings.HasPrefix(name, snapshotPrefix) {
				continue
			}
			ids = append(ids, name)
		}

		if slice.EndOfStream {
			return ids, nil
		}
		from = slice.NextEventNumber
	}
}
