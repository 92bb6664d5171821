package eventjournal

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
)

// Messages replays the events of a persistence id with sequence numbers in
// [first, last], delivering at most limit events in order. The sequence is
// lazy; events are reconstructed as they are pulled. The replay runs on a
// live catch-up subscription and releases it on every exit path, whether the
// range completes, the caller breaks early, or the context is cancelled.
//
// An event whose payload cannot be reconstructed is logged and skipped; a
// single bad event never aborts the rest of the replay.
func (j *Journal) Messages(ctx context.Context, persistenceID string, first, last, limit int64) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		if limit <= 0 || first > last {
			return
		}

		client, err := j.conn.Get(ctx)
		if err != nil {
			yield(Event{}, err)
			return
		}

		from := max(int64(0), ToStreamVersion(first))
		sub, err := client.SubscribeFrom(ctx, journalStream(persistenceID), from)
		if err != nil {
			if errors.Is(err, ErrStreamNotFound) {
				return
			}
			yield(Event{}, err)
			return
		}
		defer sub.Stop()

		var delivered int64
		for {
			select {
			case <-ctx.Done():
				yield(Event{}, ctx.Err())
				return
			case record, ok := <-sub.Events():
				if !ok {
					return
				}

				sequenceNr := ToSequenceNr(record.EventNumber)
				if sequenceNr < first {
					continue
				}
				if sequenceNr > last {
					return
				}

				event, err := j.reconstruct(persistenceID, record)
				if err != nil {
					j.config.logger.ErrorfCtx(ctx, "journal: replay %s: skipping event at sequence %d: %s", persistenceID, sequenceNr, err)
					continue
				}

				if !yield(event, nil) {
					return
				}

				delivered++
				if delivered >= limit || sequenceNr >= last {
					return
				}
			}
		}
	}
}

// ReplayMessages is the callback form of Messages. It completes once the
// range is exhausted, the limit is reached, or the handler returns an
// error.
func (j *Journal) ReplayMessages(ctx context.Context, persistenceID string, first, last, limit int64, onEvent func(Event) error) error {
	for event, err := range j.Messages(ctx, persistenceID, first, last, limit) {
		if err != nil {
			return err
		}
		if err := onEvent(event); err != nil {
			return err
		}
	}

	return nil
}

// reconstruct rebuilds an Event from its recorded form, decoding the payload
// through the manifest registry and the side-channel metadata.
func (j *Journal) reconstruct(persistenceID string, record RecordedEvent) (Event, error) {
	var meta EventMetadata
	if len(record.Metadata) > 0 {
		if err := json.Unmarshal(record.Metadata, &meta); err != nil {
			return Event{}, err
		}
	}

	payload, err := j.codec.Decode(record.EventType, record.Data)
	if err != nil {
		return Event{}, err
	}

	return Event{
		PersistenceID: persistenceID,
		SequenceNr:    ToSequenceNr(record.EventNumber),
		Payload:       payload,
		Sender:        meta.Sender,
		Tags:          meta.Tags,
		Timestamp:     record.Timestamp,
	}, nil
}
