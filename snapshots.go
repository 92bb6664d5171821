package eventjournal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"
)

// Snapshots saves and retrieves point-in-time states for persistence ids.
//
// Every save appends a SnapshotMetadata record to the id's metadata chain
// before writing the payload to its own version-qualified stream. The chain
// is the index: selection and deletion scan it backward in batches and never
// deserialize payloads. Chain entries are append-only and are not removed by
// deletion; only payload streams are.
type Snapshots struct {
	conn   *Connection
	codec  Codec
	config *Config
}

func NewSnapshots(conn *Connection, codec Codec, opts ...Option) *Snapshots {
	return &Snapshots{
		conn:   conn,
		codec:  codec,
		config: applyOptions(defaultOptions(), opts...),
	}
}

const snapshotMetaEventType = "snapshot-metadata"

// Save records the snapshot: metadata chain entry first, then the payload
// stream, both tolerant of any prior version. The payload is encoded up
// front, so an encode failure writes nothing. If the payload write fails
// after the chain entry was appended, the chain holds a dangling entry;
// Load surfaces that state as ErrSnapshotPayloadMissing rather than
// reconciling it.
func (s *Snapshots) Save(ctx context.Context, snapshot Snapshot) error {
	client, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = time.Now()
	}

	payload, err := s.codec.Encode(snapshot.Payload)
	if err != nil {
		return err
	}

	meta := SnapshotMetadata{
		PersistenceID: snapshot.PersistenceID,
		SequenceNr:    snapshot.SequenceNr,
		Timestamp:     snapshot.Timestamp,
	}
	metadata, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	_, err = client.AppendToStream(ctx, snapshotMetaStream(snapshot.PersistenceID), Any(), []EventData{{
		EventType: snapshotMetaEventType,
		Data:      metadata,
	}})
	if err != nil {
		return fmt.Errorf("append snapshot metadata for %s: %w", snapshot.PersistenceID, err)
	}

	_, err = client.AppendToStream(ctx, snapshotStream(snapshot.PersistenceID, snapshot.SequenceNr), Any(), []EventData{{
		EventType: snapshot.Payload.Manifest(),
		Data:      payload,
		Metadata:  metadata,
	}})
	if err != nil {
		return fmt.Errorf("write snapshot payload for %s at sequence %d: %w", snapshot.PersistenceID, snapshot.SequenceNr, err)
	}

	s.config.logger.InfofCtx(ctx, "snapshots: saved %s at sequence %d", snapshot.PersistenceID, snapshot.SequenceNr)

	return nil
}

// Load returns the newest snapshot satisfying the criteria's upper bounds,
// scanning the metadata chain backward from the tail. The scan stops early
// once entries fall below MinSequenceNr, since no older entry can qualify.
// No qualifying entry means no snapshot, not an error. A qualifying entry
// whose payload stream is gone reports ErrSnapshotPayloadMissing.
func (s *Snapshots) Load(ctx context.Context, persistenceID string, criteria SelectionCriteria) (Snapshot, bool, error) {
	client, err := s.conn.Get(ctx)
	if err != nil {
		return Snapshot{}, false, err
	}

	var selected *SnapshotMetadata
	for meta, err := range s.metadataChain(ctx, client, persistenceID) {
		if err != nil {
			return Snapshot{}, false, err
		}
		if meta.SequenceNr < criteria.MinSequenceNr {
			break
		}
		if criteria.matches(meta) {
			selected = &meta
			break
		}
	}
	if selected == nil {
		return Snapshot{}, false, nil
	}

	slice, err := client.ReadStreamBackward(ctx, snapshotStream(persistenceID, selected.SequenceNr), EndOfStreamPosition, 1)
	if errors.Is(err, ErrStreamNotFound) {
		return Snapshot{}, false, fmt.Errorf("%s at sequence %d: %w", persistenceID, selected.SequenceNr, ErrSnapshotPayloadMissing)
	}
	if err != nil {
		return Snapshot{}, false, err
	}
	if len(slice.Events) == 0 {
		return Snapshot{}, false, fmt.Errorf("%s at sequence %d: %w", persistenceID, selected.SequenceNr, ErrSnapshotPayloadMissing)
	}

	record := slice.Events[0]
	payload, err := s.codec.Decode(record.EventType, record.Data)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("decode snapshot %s at sequence %d: %w", persistenceID, selected.SequenceNr, err)
	}

	return Snapshot{
		PersistenceID: persistenceID,
		Manifest:      record.EventType,
		SequenceNr:    selected.SequenceNr,
		Timestamp:     selected.Timestamp,
		Payload:       payload,
	}, true, nil
}

// Delete removes the payload streams of all snapshots matching the criteria,
// concurrently. Both sequence and timestamp bounds are inclusive on both
// ends. Chain entries stay in place; the chain is append-only.
func (s *Snapshots) Delete(ctx context.Context, persistenceID string, criteria SelectionCriteria) error {
	client, err := s.conn.Get(ctx)
	if err != nil {
		return err
	}

	var sequenceNrs []int64
	for meta, err := range s.metadataChain(ctx, client, persistenceID) {
		if err != nil {
			return err
		}
		if meta.SequenceNr < criteria.MinSequenceNr {
			break
		}
		if criteria.matches(meta) {
			sequenceNrs = append(sequenceNrs, meta.SequenceNr)
		}
	}

	var g errgroup.Group
	g.SetLimit(10)
	for _, sequenceNr := range sequenceNrs {
		g.Go(func() error {
			err := client.DeleteStream(ctx, snapshotStream(persistenceID, sequenceNr), Any())
			if errors.Is(err, ErrStreamNotFound) {
				return nil
			}
			return err
		})
	}

	return g.Wait()
}

// DeleteTo removes the payload streams of all snapshots with sequence number
// up to and including maxSequenceNr.
func (s *Snapshots) DeleteTo(ctx context.Context, persistenceID string, maxSequenceNr int64) error {
	return s.Delete(ctx, persistenceID, SelectionCriteria{MaxSequenceNr: maxSequenceNr})
}

// metadataChain scans the id's metadata chain backward from the tail in
// fixed-size batches, newest entry first. The sequence is lazy and
// restartable; breaking out of it cancels the scan mid-batch. A chain entry
// that fails to decode is yielded as a per-item error and the scan moves on.
func (s *Snapshots) metadataChain(ctx context.Context, client Client, persistenceID string) iter.Seq2[SnapshotMetadata, error] {
	return func(yield func(SnapshotMetadata, error) bool) {
		from := EndOfStreamPosition
		for {
			if err := ctx.Err(); err != nil {
				yield(SnapshotMetadata{}, err)
				return
			}

			slice, err := client.ReadStreamBackward(ctx, snapshotMetaStream(persistenceID), from, s.config.readBatchSize)
			if errors.Is(err, ErrStreamNotFound) {
				return
			}
			if err != nil {
				yield(SnapshotMetadata{}, err)
				return
			}

			for _, record := range slice.Events {
				var meta SnapshotMetadata
				if err := json.Unmarshal(record.Data, &meta); err != nil {
					if !yield(SnapshotMetadata{}, fmt.Errorf("chain entry at version %d: %w", record.EventNumber, err)) {
						return
					}
					continue
				}
				if !yield(meta, nil) {
					return
				}
			}

			if slice.EndOfStream {
				return
			}
			from = slice.NextEventNumber
		}
	}
}
