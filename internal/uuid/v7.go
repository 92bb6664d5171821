package uuid

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
)

// V7 returns a new uuid v7 as a string.
func V7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// V7AtTime returns a uuid v7 with the given time as its timestamp.
func V7AtTime(t time.Time) string {
	gen := uuid.NewGenWithOptions(uuid.WithEpochFunc(func() time.Time {
		return t
	}))

	return uuid.Must(gen.NewV7()).String()
}

// V7At returns count uuid v7 with the given time as timestamp, in sorted
// order.
func V7At(t time.Time, count int) []string {
	gen := uuid.NewGenWithOptions(uuid.WithEpochFunc(func() time.Time {
		return t
	}))

	ids := make([]string, count)
	for i := range count {
		ids[i] = uuid.Must(gen.NewV7()).String()
	}

	slices.Sort(ids)

	return ids
}
