package accrual

import (
	"fmt"
	"time"
)

// FormatClock renders d as MM:SS. Minutes are unbounded and fractional
// seconds are dropped; negative durations render as 00:00.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
