package eventjournal

import "fmt"

// ExpectedVersion is the optimistic concurrency precondition on an append.
// It declares what the writer believes the stream's current version to be.
type ExpectedVersion struct {
	value int64
}

const (
	expectedVersionAny      = -1
	expectedVersionNoStream = -2
)

// Any skips the version check. Used where any prior state is acceptable,
// such as the snapshot metadata chain.
func Any() ExpectedVersion {
	return ExpectedVersion{value: expectedVersionAny}
}

// NoStream requires that the stream does not exist yet.
func NoStream() ExpectedVersion {
	return ExpectedVersion{value: expectedVersionNoStream}
}

// Exact requires the stream's current version to be exactly version.
// The version must be non-negative.
func Exact(version int64) ExpectedVersion {
	if version < 0 {
		panic(fmt.Sprintf("exact version must be non-negative, got %d", version))
	}
	return ExpectedVersion{value: version}
}

func (ev ExpectedVersion) IsAny() bool {
	return ev.value == expectedVersionAny
}

func (ev ExpectedVersion) IsNoStream() bool {
	return ev.value == expectedVersionNoStream
}

func (ev ExpectedVersion) IsExact() bool {
	return ev.value >= 0
}

// Value returns the exact version, or 0 for Any and NoStream.
func (ev ExpectedVersion) Value() int64 {
	if ev.value >= 0 {
		return ev.value
	}
	return 0
}

func (ev ExpectedVersion) String() string {
	switch {
	case ev.IsAny():
		return "Any"
	case ev.IsNoStream():
		return "NoStream"
	default:
		return fmt.Sprintf("Exact(%d)", ev.value)
	}
}
