package types

import "time"

// TimestampLayout renders times as DD/MM/YYYY hh:mm AM/PM
const TimestampLayout = "02/01/2006 03:04 PM"

// Clock returns the current time; sessions take one so tests can pin it
type Clock func() time.Time

// Stamp formats t with TimestampLayout
func Stamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
