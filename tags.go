package eventjournal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// EventsByTag scans the global log forward from the given position,
// yielding every event whose tag set contains tag, in global order. The scan
// reads fixed-size batches until end-of-log and is O(all events) from the
// start position. Callers that need a resumable subscription persist the
// last GlobalPosition themselves and pass GlobalPosition + 1 next time.
//
// An event whose metadata or payload cannot be decoded is yielded as a
// per-item error; the scan continues with the next event.
func (j *Journal) EventsByTag(ctx context.Context, tag string, from int64) iter.Seq2[TaggedEvent, error] {
	return func(yield func(TaggedEvent, error) bool) {
		client, err := j.conn.Get(ctx)
		if err != nil {
			yield(TaggedEvent{}, err)
			return
		}

		position := max(int64(0), from)
		for {
			if err := ctx.Err(); err != nil {
				yield(TaggedEvent{}, err)
				return
			}

			slice, err := client.ReadStreamForward(ctx, AllStream, position, j.config.readBatchSize)
			if errors.Is(err, ErrStreamNotFound) {
				return
			}
			if err != nil {
				yield(TaggedEvent{}, err)
				return
			}

			for _, record := range slice.Events {
				if len(record.Metadata) == 0 {
					continue
				}

				var meta EventMetadata
				if err := json.Unmarshal(record.Metadata, &meta); err != nil {
					if !yield(TaggedEvent{}, fmt.Errorf("event at position %d: %w", record.GlobalPosition, err)) {
						return
					}
					continue
				}

				if !slices.Contains(meta.Tags, tag) {
					continue
				}

				event, err := j.reconstruct(record.Stream, record)
				if err != nil {
					if !yield(TaggedEvent{}, fmt.Errorf("event at position %d: %w", record.GlobalPosition, err)) {
						return
					}
					continue
				}

				if !yield(TaggedEvent{GlobalPosition: record.GlobalPosition, Tag: tag, Event: event}, nil) {
					return
				}
			}

			if slice.EndOfStream {
				return
			}
			position = slice.NextEventNumber
		}
	}
}
