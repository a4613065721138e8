// File: services/routine/clock.go
package routine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Period is the 12-hour clock half: AM or PM.
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// Clock is a wall-clock instant with no date component: hour 1-12,
// minute 0-59, AM/PM. The wire form is "HH:MM AM" with both fields
// zero-padded.
type Clock struct {
	Hour   int
	Minute int
	Period Period
}

// clockPattern matches the persisted clock form. Hour may arrive without the
// leading zero; minutes are always two digits.
var clockPattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):([0-5][0-9]) (AM|PM)$`)

// ParseClock builds a Clock from raw form fields. Both fields are required;
// hour must be 1-12 and minute 0-59.
func ParseClock(hourStr, minuteStr string, period Period) (Clock, error) {
	if period != AM && period != PM {
		return Clock{}, fmt.Errorf("period must be AM or PM")
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return Clock{}, fmt.Errorf("hour must be 1-12")
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("minute must be 00-59")
	}
	return Clock{Hour: hour, Minute: minute, Period: period}, nil
}

// ParseClockString parses the persisted "HH:MM AM" form.
func ParseClockString(s string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, fmt.Errorf("invalid clock %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return Clock{Hour: hour, Minute: minute, Period: Period(m[3])}, nil
}

// String renders the canonical zero-padded form, e.g. "09:00 AM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d %s", c.Hour, c.Minute, c.Period)
}

// Minutes maps the clock to a minute of day in [0,1439]. 12 AM is 0 and
// 12 PM is 720.
func (c Clock) Minutes() int {
	hour := c.Hour
	if hour == 12 {
		hour = 0
	}
	if c.Period == PM {
		hour += 12
	}
	return hour*60 + c.Minute
}

// IsOvernight reports whether a start/end period pair wraps past midnight:
// true iff the range starts PM and ends AM.
func IsOvernight(start, end Period) bool {
	return start == PM && end == AM
}

// timeToMinutes converts a persisted clock string to its minute of day,
// returning -1 when the string does not parse. Stored strings are re-parsed
// on every evaluation, so a malformed entry degrades to the sentinel instead
// of failing hard.
func timeToMinutes(s string) int {
	c, err := ParseClockString(s)
	if err != nil {
		return -1
	}
	return c.Minutes()
}

// periodOf extracts the period of a persisted clock string. Anything not
// ending in AM is treated as PM, matching how the strings are produced.
func periodOf(s string) Period {
	if strings.HasSuffix(s, string(AM)) {
		return AM
	}
	return PM
}

// rangeParts splits a persisted "<from> - <to>" range into its halves.
func rangeParts(timeStr string) (from, to string, ok bool) {
	parts := strings.SplitN(timeStr, " - ", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// rangeMinutes resolves a persisted range to start/end minutes and its
// overnight flag. ok is false when either half is malformed.
func rangeMinutes(timeStr string) (start, end int, overnight bool, ok bool) {
	from, to, ok := rangeParts(timeStr)
	if !ok {
		return 0, 0, false, false
	}
	start = timeToMinutes(from)
	end = timeToMinutes(to)
	if start == -1 || end == -1 {
		return 0, 0, false, false
	}
	return start, end, IsOvernight(periodOf(from), periodOf(to)), true
}

// durationMinutes computes the span of a from/to pair in minutes, adding a
// full day when the pair is overnight. A malformed pair yields -1, which
// callers must treat as a validation failure.
func durationMinutes(fromStr, toStr string) int {
	fromMins := timeToMinutes(fromStr)
	toMins := timeToMinutes(toStr)
	if fromMins == -1 || toMins == -1 {
		return -1
	}
	if IsOvernight(periodOf(fromStr), periodOf(toStr)) {
		toMins += 1440
	}
	return toMins - fromMins
}

// startMinutes gives a task's sort key: the start minute of its stored
// range, or -1 when unparseable (malformed entries sort first).
func startMinutes(timeStr string) int {
	from, _, ok := rangeParts(timeStr)
	if !ok {
		return -1
	}
	return timeToMinutes(from)
}

// minutesToClock maps a minute of day back to a 12-hour clock. The value is
// taken modulo a day so the 1440 day bound renders as "12:00 AM".
func minutesToClock(m int) Clock {
	m = ((m % 1440) + 1440) % 1440
	h24 := m / 60
	minute := m % 60
	period := AM
	if h24 >= 12 {
		period = PM
	}
	hour := h24 % 12
	if hour == 0 {
		hour = 12
	}
	return Clock{Hour: hour, Minute: minute, Period: period}
}
