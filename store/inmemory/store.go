// Package inmemory is an in-process stream store implementing the
// eventjournal.Client seam. It provides versioned streams, a global append
// log, stream metadata with truncate-before visibility, soft deletion and
// live catch-up subscriptions, making the adapter fully exercisable without
// a server.
package inmemory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ravnholt/eventjournal"
	"github.com/ravnholt/eventjournal/internal/uuid"
)

var ErrClosed = errors.New("store closed")

func New() *Store {
	return &Store{
		streams: make(map[string]*stream),
		meta:    make(map[string]*metaRecord),
		subs:    make(map[string][]*subscription),
	}
}

var _ eventjournal.Client = (*Store)(nil)

type Store struct {
	mux     sync.RWMutex
	streams map[string]*stream
	meta    map[string]*metaRecord
	// global is the append log across all streams; the slice index is the
	// global position.
	global []eventjournal.RecordedEvent
	// names records stream creation order, backing the $streams index.
	names  []string
	closed bool

	subsMux sync.RWMutex
	subs    map[string][]*subscription
}

type stream struct {
	name    string
	rows    []eventjournal.RecordedEvent
	deleted bool
}

type metaRecord struct {
	meta    eventjournal.StreamMetadata
	version int64
}

// truncateBefore is the first visible version of the stream, 0 when no
// marker is set.
func (s *Store) truncateBefore(name string) int64 {
	record, ok := s.meta[name]
	if !ok || record.meta.TruncateBefore == nil {
		return 0
	}
	return *record.meta.TruncateBefore
}

func (s *Store) currentVersion(name string) (int64, bool) {
	st, ok := s.streams[name]
	if !ok || st.deleted || len(st.rows) == 0 {
		return 0, false
	}
	return st.rows[len(st.rows)-1].EventNumber, true
}

func checkExpected(expected eventjournal.ExpectedVersion, current int64, exists bool) error {
	switch {
	case expected.IsAny():
		return nil
	case expected.IsNoStream():
		if exists {
			return eventjournal.ErrWrongExpectedVersion
		}
		return nil
	default:
		if !exists || current != expected.Value() {
			return eventjournal.ErrWrongExpectedVersion
		}
		return nil
	}
}

func (s *Store) AppendToStream(ctx context.Context, name string, expected eventjournal.ExpectedVersion, events []eventjournal.EventData) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mux.Lock()
	if s.closed {
		s.mux.Unlock()
		return 0, ErrClosed
	}

	current, exists := s.currentVersion(name)
	if err := checkExpected(expected, current, exists); err != nil {
		s.mux.Unlock()
		return 0, err
	}

	if len(events) == 0 {
		s.mux.Unlock()
		return current, nil
	}

	st, ok := s.streams[name]
	if !ok || st.deleted {
		st = &stream{name: name}
		s.streams[name] = st
		s.names = append(s.names, name)
	}

	next := int64(len(st.rows))
	now := time.Now()
	ids := uuid.V7At(now, len(events))
	appended := make([]eventjournal.RecordedEvent, 0, len(events))
	for i, event := range events {
		record := eventjournal.RecordedEvent{
			EventID:        ids[i],
			Stream:         name,
			EventNumber:    next + int64(i),
			GlobalPosition: int64(len(s.global)),
			EventType:      event.EventType,
			Data:           event.Data,
			Metadata:       event.Metadata,
			Timestamp:      now,
		}
		st.rows = append(st.rows, record)
		s.global = append(s.global, record)
		appended = append(appended, record)
	}

	// Notify before releasing the lock so two appends cannot reach the
	// subscriptions out of order. push never blocks.
	s.notify(name, appended)
	s.mux.Unlock()

	return next + int64(len(events)) - 1, nil
}

func (s *Store) ReadStreamForward(ctx context.Context, name string, from int64, count int) (eventjournal.Slice, error) {
	if err := ctx.Err(); err != nil {
		return eventjournal.Slice{}, err
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	if s.closed {
		return eventjournal.Slice{}, ErrClosed
	}

	switch name {
	case eventjournal.AllStream:
		return s.readAllForward(from, count), nil
	case eventjournal.StreamsStream:
		return s.readStreamsForward(from, count), nil
	}

	rows, err := s.visibleRows(name)
	if err != nil {
		return eventjournal.Slice{}, err
	}

	first := rows[0].EventNumber
	last := rows[len(rows)-1].EventNumber
	from = max(from, first)

	var events []eventjournal.RecordedEvent
	for _, row := range rows {
		if row.EventNumber < from {
			continue
		}
		if len(events) == count {
			break
		}
		events = append(events, row)
	}

	next := from + int64(len(events))
	return eventjournal.Slice{
		Events:          events,
		NextEventNumber: next,
		LastEventNumber: last,
		EndOfStream:     next > last,
	}, nil
}

func (s *Store) ReadStreamBackward(ctx context.Context, name string, from int64, count int) (eventjournal.Slice, error) {
	if err := ctx.Err(); err != nil {
		return eventjournal.Slice{}, err
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	if s.closed {
		return eventjournal.Slice{}, ErrClosed
	}

	rows, err := s.visibleRows(name)
	if err != nil {
		return eventjournal.Slice{}, err
	}

	first := rows[0].EventNumber
	last := rows[len(rows)-1].EventNumber
	if from == eventjournal.EndOfStreamPosition || from > last {
		from = last
	}

	var events []eventjournal.RecordedEvent
	for version := from; version >= first && len(events) < count; version-- {
		events = append(events, rows[version-first])
	}

	next := from - int64(len(events))
	return eventjournal.Slice{
		Events:          events,
		NextEventNumber: next,
		LastEventNumber: last,
		EndOfStream:     next < first,
	}, nil
}

func (s *Store) ReadEvent(ctx context.Context, name string, version int64) (eventjournal.RecordedEvent, error) {
	if err := ctx.Err(); err != nil {
		return eventjournal.RecordedEvent{}, err
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	if s.closed {
		return eventjournal.RecordedEvent{}, ErrClosed
	}

	rows, err := s.visibleRows(name)
	if err != nil {
		return eventjournal.RecordedEvent{}, err
	}

	first := rows[0].EventNumber
	if version < first || version > rows[len(rows)-1].EventNumber {
		return eventjournal.RecordedEvent{}, eventjournal.ErrEventNotFound
	}

	return rows[version-first], nil
}

// visibleRows returns the stream's rows at or after its truncate-before
// marker. A missing, deleted or fully truncated stream reads as not-found.
func (s *Store) visibleRows(name string) ([]eventjournal.RecordedEvent, error) {
	st, ok := s.streams[name]
	if !ok || st.deleted {
		return nil, eventjournal.ErrStreamNotFound
	}

	tb := s.truncateBefore(name)
	if tb >= int64(len(st.rows)) {
		return nil, eventjournal.ErrStreamNotFound
	}

	return st.rows[tb:], nil
}

func (s *Store) readAllForward(from int64, count int) eventjournal.Slice {
	last := int64(len(s.global)) - 1
	from = max(from, 0)

	// next tracks the last scanned position, not from+count; a batch that
	// fills early must not skip filtered positions.
	next := from
	var events []eventjournal.RecordedEvent
	for position := from; position <= last; position++ {
		if len(events) == count {
			break
		}
		next = position + 1

		record := s.global[position]
		st, ok := s.streams[record.Stream]
		if !ok || st.deleted || record.EventNumber < s.truncateBefore(record.Stream) {
			continue
		}
		events = append(events, record)
	}

	return eventjournal.Slice{
		Events:          events,
		NextEventNumber: next,
		LastEventNumber: last,
		EndOfStream:     next > last,
	}
}

func (s *Store) readStreamsForward(from int64, count int) eventjournal.Slice {
	last := int64(len(s.names)) - 1
	from = max(from, 0)

	var events []eventjournal.RecordedEvent
	for position := from; position <= last && len(events) < count; position++ {
		events = append(events, eventjournal.RecordedEvent{
			Stream:      eventjournal.StreamsStream,
			EventNumber: position,
			EventType:   "$stream-created",
			Data:        []byte(s.names[position]),
		})
	}

	next := from + int64(len(events))
	return eventjournal.Slice{
		Events:          events,
		NextEventNumber: next,
		LastEventNumber: last,
		EndOfStream:     next > last,
	}
}

func (s *Store) StreamMetadata(ctx context.Context, name string) (eventjournal.StreamMetadata, eventjournal.ExpectedVersion, error) {
	if err := ctx.Err(); err != nil {
		return eventjournal.StreamMetadata{}, eventjournal.NoStream(), err
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	if s.closed {
		return eventjournal.StreamMetadata{}, eventjournal.NoStream(), ErrClosed
	}

	record, ok := s.meta[name]
	if !ok {
		return eventjournal.StreamMetadata{}, eventjournal.NoStream(), nil
	}

	return record.meta, eventjournal.Exact(record.version), nil
}

func (s *Store) SetStreamMetadata(ctx context.Context, name string, expected eventjournal.ExpectedVersion, meta eventjournal.StreamMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if s.closed {
		return ErrClosed
	}

	record, exists := s.meta[name]
	var current int64
	if exists {
		current = record.version
	}
	if err := checkExpected(expected, current, exists); err != nil {
		return err
	}

	if !exists {
		s.meta[name] = &metaRecord{meta: meta}
		return nil
	}

	record.meta = meta
	record.version++
	return nil
}

func (s *Store) DeleteStream(ctx context.Context, name string, expected eventjournal.ExpectedVersion) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if s.closed {
		return ErrClosed
	}

	st, ok := s.streams[name]
	if !ok || st.deleted {
		return eventjournal.ErrStreamNotFound
	}

	current, exists := s.currentVersion(name)
	if err := checkExpected(expected, current, exists); err != nil {
		return err
	}

	st.deleted = true
	return nil
}

func (s *Store) Close() error {
	s.mux.Lock()
	s.closed = true
	s.mux.Unlock()

	// Swap the registry out before stopping, since Stop deregisters and
	// must not find the lock held.
	s.subsMux.Lock()
	subs := s.subs
	s.subs = make(map[string][]*subscription)
	s.subsMux.Unlock()

	for _, list := range subs {
		for _, sub := range list {
			sub.Stop()
		}
	}

	return nil
}
