package uuid

import (
	"fmt"
	"time"
)

// RealTimestamp returns the instant encoded in a time-based UUID. Versions 1
// and 6 yield their 100ns tick count truncated to the millisecond; version 7
// yields its Unix millisecond field. Any other version fails with
// ErrUnsupportedVersion. The result is in UTC.
func RealTimestamp(u UUID) (time.Time, error) {
	switch v := u.Version(); v {
	case VersionTimeBased:
		return TimeFromTicks(v1Ticks(u)), nil
	case VersionTimeReordered:
		return TimeFromTicks(v6Ticks(u)), nil
	case VersionTimeSorted:
		return time.UnixMilli(int64(v7Millis(u))).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %s is not a time-based UUID", ErrUnsupportedVersion, u)
	}
}

// Time is RealTimestamp as a method.
func (u UUID) Time() (time.Time, error) {
	return RealTimestamp(u)
}

// Ticks returns the raw 60-bit timestamp of a version 1 or 6 UUID: 100ns
// intervals since 1582-10-15T00:00:00Z.
func (u UUID) Ticks() (uint64, error) {
	switch u.Version() {
	case VersionTimeBased:
		return v1Ticks(u), nil
	case VersionTimeReordered:
		return v6Ticks(u), nil
	default:
		return 0, fmt.Errorf("%w: %s has no Gregorian timestamp", ErrUnsupportedVersion, u)
	}
}

// TimeFromTicks converts 100ns intervals since 1582-10-15T00:00:00Z to an
// instant, truncated to the millisecond, in UTC.
func TimeFromTicks(ticks uint64) time.Time {
	ms := int64(ticks/ticksPerMilli) - gregorianOffsetMillis
	return time.UnixMilli(ms).UTC()
}
