package eventjournal

import "fmt"

// Stream layout: one primary stream per persistence id, a metadata chain per
// id under snapshotMetaPrefix, and one versioned stream per saved snapshot
// under snapshotPrefix.
const (
	snapshotMetaPrefix = "snapshots-"
	snapshotPrefix     = "snapshot-"
)

func journalStream(persistenceID string) string {
	return persistenceID
}

func snapshotMetaStream(persistenceID string) string {
	return snapshotMetaPrefix + persistenceID
}

func snapshotStream(persistenceID string, sequenceNr int64) string {
	return fmt.Sprintf("%s%s-%d", snapshotPrefix, persistenceID, sequenceNr)
}

// ToStreamVersion maps a 1-based sequence number to the store's 0-based
// stream version. The same offset applies everywhere; appends, reads,
// subscriptions and truncation markers all go through this pair.
func ToStreamVersion(sequenceNr int64) int64 {
	return sequenceNr - 1
}

// ToSequenceNr maps a 0-based stream version back to a 1-based sequence
// number. Inverse of ToStreamVersion.
func ToSequenceNr(version int64) int64 {
	return version + 1
}

// expectedVersionFor computes the append precondition for a batch whose
// first event has the given sequence number: the version of the event
// preceding the batch, or NoStream for a fresh history.
func expectedVersionFor(firstSequenceNr int64) ExpectedVersion {
	if firstSequenceNr <= 1 {
		return NoStream()
	}
	return Exact(ToStreamVersion(firstSequenceNr - 1))
}
