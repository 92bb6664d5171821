package eventjournal

import (
	"math"
	"slices"
	"time"
)

// Payload is the application specific data model carried by an Event or a
// Snapshot. The Manifest identifies the registered decoder used to
// reconstruct it on read.
type Payload interface {
	Manifest() string
}

// Event is one entry in the ordered history of a persistence id.
// It is immutable once appended.
type Event struct {
	// PersistenceID is the id of the history the event belongs to.
	PersistenceID string
	// SequenceNr is the 1-based, caller-assigned position within the history.
	SequenceNr int64
	// Payload is the actual content of the event.
	Payload Payload
	// Sender is an opaque reference to the origin of the event.
	Sender string
	// Tags are labels enabling cross-history queries via the global log.
	Tags []string
	// Timestamp is the time the event was recorded.
	Timestamp time.Time
}

// HasTag reports whether the event carries the given tag.
func (e Event) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// EventMetadata is stored alongside the payload bytes so an event can be
// reconstructed without knowing its type up front.
type EventMetadata struct {
	EventType string   `json:"eventType"`
	Sender    string   `json:"sender,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// TaggedEvent is an event found by a tag scan of the global log.
type TaggedEvent struct {
	// GlobalPosition orders the event across all histories. Callers resuming
	// a scan should start from GlobalPosition + 1.
	GlobalPosition int64
	Tag            string
	Event          Event
}

// SnapshotMetadata describes a saved snapshot. It is appended to the
// persistence id's metadata chain before the payload is written, so snapshot
// selection never touches payloads.
type SnapshotMetadata struct {
	PersistenceID string    `json:"persistenceId"`
	SequenceNr    int64     `json:"sequenceNr"`
	Timestamp     time.Time `json:"timestamp"`
}

// Snapshot is a point-in-time state substituting for a full replay up to its
// sequence number.
type Snapshot struct {
	PersistenceID string
	Manifest      string
	SequenceNr    int64
	Timestamp     time.Time
	Payload       Payload
}

// SelectionCriteria bounds snapshot selection and deletion.
// A zero MaxSequenceNr or MaxTimestamp means unbounded. All bounds are
// inclusive on both ends, for sequence numbers and timestamps alike.
type SelectionCriteria struct {
	MaxSequenceNr int64
	MaxTimestamp  time.Time
	MinSequenceNr int64
	MinTimestamp  time.Time
}

// Latest selects the most recent snapshot regardless of age.
func Latest() SelectionCriteria {
	return SelectionCriteria{}
}

func (c SelectionCriteria) maxSequenceNr() int64 {
	if c.MaxSequenceNr == 0 {
		return math.MaxInt64
	}
	return c.MaxSequenceNr
}

func (c SelectionCriteria) matchesMax(meta SnapshotMetadata) bool {
	if meta.SequenceNr > c.maxSequenceNr() {
		return false
	}
	if !c.MaxTimestamp.IsZero() && meta.Timestamp.After(c.MaxTimestamp) {
		return false
	}
	return true
}

func (c SelectionCriteria) matchesMin(meta SnapshotMetadata) bool {
	if meta.SequenceNr < c.MinSequenceNr {
		return false
	}
	if !c.MinTimestamp.IsZero() && meta.Timestamp.Before(c.MinTimestamp) {
		return false
	}
	return true
}

func (c SelectionCriteria) matches(meta SnapshotMetadata) bool {
	return c.matchesMax(meta) && c.matchesMin(meta)
}
