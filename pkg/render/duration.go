package render

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d in the constant time span format
// [-][d.]hh:mm:ss[.fffffff] with 100ns precision.
func FormatDuration(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}

	ticks := int64(d / 100)
	const (
		ticksPerSecond = int64(time.Second / 100)
		ticksPerMinute = 60 * ticksPerSecond
		ticksPerHour   = 60 * ticksPerMinute
		ticksPerDay    = 24 * ticksPerHour
	)

	days := ticks / ticksPerDay
	ticks %= ticksPerDay
	hours := ticks / ticksPerHour
	ticks %= ticksPerHour
	minutes := ticks / ticksPerMinute
	ticks %= ticksPerMinute
	seconds := ticks / ticksPerSecond
	fraction := ticks % ticksPerSecond

	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)
	if fraction > 0 {
		fmt.Fprintf(&b, ".%07d", fraction)
	}
	return b.String()
}
