package eventjournal

import (
	"context"
	"encoding/json"
	"time"
)

// AllStream is the store's global append log, ordering events across every
// stream by global position.
const AllStream = "$all"

// StreamsStream is the store's stream-of-streams index, holding one entry per
// created stream.
const StreamsStream = "$streams"

// EventData is an event handed to the store for appending.
type EventData struct {
	// EventType is the manifest of the payload.
	EventType string
	// Data is the encoded payload.
	Data []byte
	// Metadata is encoded side-channel data stored next to the payload.
	Metadata []byte
}

// RecordedEvent is an event as read back from the store.
type RecordedEvent struct {
	// EventID is the store assigned id, a sortable uuid v7.
	EventID string
	// Stream the event was appended to.
	Stream string
	// EventNumber is the 0-based version within the stream.
	EventNumber int64
	// GlobalPosition orders the event in the global log.
	GlobalPosition int64
	EventType      string
	Data           []byte
	Metadata       []byte
	// Timestamp is the time the store recorded the event.
	Timestamp time.Time
}

// Slice is one batch from a ranged stream read.
type Slice struct {
	Events []RecordedEvent
	// NextEventNumber is where a follow-up read in the same direction
	// should start.
	NextEventNumber int64
	// LastEventNumber is the version of the stream's tail event.
	LastEventNumber int64
	// EndOfStream reports that no further events exist in the read direction.
	EndOfStream bool
}

// StreamMetadata is the per-stream control record. Nil pointer fields are
// unset and must be preserved as-is when writing the record back.
type StreamMetadata struct {
	MaxCount       *int64          `json:"maxCount,omitempty"`
	MaxAge         *time.Duration  `json:"maxAge,omitempty"`
	TruncateBefore *int64          `json:"truncateBefore,omitempty"`
	CacheControl   *time.Duration  `json:"cacheControl,omitempty"`
	ACL            json.RawMessage `json:"acl,omitempty"`
}

// Subscription is a live, catch-up feed of one stream. Events are delivered
// on the channel in stream order, starting at the requested version. Stop
// releases the subscription and closes the channel; it is safe to call more
// than once.
type Subscription interface {
	Events() <-chan RecordedEvent
	Stop()
}

// Client is the adapter's seam to the backing stream store. The store is an
// opaque, at-least-once-durable append service; reconnection and transport
// concerns live behind this interface.
type Client interface {
	// AppendToStream conditionally appends the batch to the stream. All
	// events are assigned contiguous versions atomically, or the append
	// fails entirely with no stream mutation. A failed precondition is
	// reported as ErrWrongExpectedVersion.
	AppendToStream(ctx context.Context, stream string, expected ExpectedVersion, events []EventData) (nextVersion int64, err error)

	// ReadStreamForward reads up to count events starting at version from.
	// Missing or fully truncated streams report ErrStreamNotFound.
	ReadStreamForward(ctx context.Context, stream string, from int64, count int) (Slice, error)

	// ReadStreamBackward reads up to count events from version from towards
	// the start of the stream. EndOfStream marks the oldest visible event
	// was reached. from = EndOfStreamPosition starts at the tail.
	ReadStreamBackward(ctx context.Context, stream string, from int64, count int) (Slice, error)

	// ReadEvent reads the single event at the given version.
	ReadEvent(ctx context.Context, stream string, version int64) (RecordedEvent, error)

	// SubscribeFrom opens a live catch-up subscription delivering all events
	// with version >= from, then tailing the stream.
	SubscribeFrom(ctx context.Context, stream string, from int64) (Subscription, error)

	// StreamMetadata reads the stream's control record and the version of
	// the metadata stream itself, for optimistic writes via SetStreamMetadata.
	StreamMetadata(ctx context.Context, stream string) (StreamMetadata, ExpectedVersion, error)

	// SetStreamMetadata writes the control record under the given expected
	// metadata version.
	SetStreamMetadata(ctx context.Context, stream string, expected ExpectedVersion, meta StreamMetadata) error

	// DeleteStream soft deletes the whole stream.
	DeleteStream(ctx context.Context, stream string, expected ExpectedVersion) error

	// Close tears the connection down. The client is unusable afterwards.
	Close() error
}

// EndOfStreamPosition selects the tail of a stream on backward reads.
const EndOfStreamPosition int64 = -1
