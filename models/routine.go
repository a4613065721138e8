// models/routine.go
package models

import "fmt"

// Day is one of the seven fixed weekday keys of a routine. The product week
// runs Saturday through Friday; the ordering is a fixed cycle, not tied to
// any calendar date.
type Day string

const (
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
)

// DaysOfWeek lists every day bucket in product order.
var DaysOfWeek = [7]Day{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// ParseDay validates a day key coming in over the API.
func ParseDay(s string) (Day, error) {
	for _, d := range DaysOfWeek {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day %q", s)
}

// Short returns the three-letter form used in conflict messages ("sat", "mon").
func (d Day) Short() string {
	if len(d) < 3 {
		return string(d)
	}
	return string(d)[:3]
}

// Task is a single named time block on one day. Time is the persisted wire
// form, e.g. "09:00 AM - 10:00 AM"; all arithmetic converts it to minutes of
// day at the boundary.
type Task struct {
	Name string `bson:"name" json:"name"`
	Time string `bson:"time" json:"time"`
}

// WeekRoutine is the full day -> task-list map for one user's week. Buckets
// are kept sorted by ascending start minute.
type WeekRoutine struct {
	Saturday  []Task `bson:"saturday" json:"saturday"`
	Sunday    []Task `bson:"sunday" json:"sunday"`
	Monday    []Task `bson:"monday" json:"monday"`
	Tuesday   []Task `bson:"tuesday" json:"tuesday"`
	Wednesday []Task `bson:"wednesday" json:"wednesday"`
	Thursday  []Task `bson:"thursday" json:"thursday"`
	Friday    []Task `bson:"friday" json:"friday"`
}

// Tasks returns the bucket for the given day.
func (w *WeekRoutine) Tasks(d Day) []Task {
	switch d {
	case Saturday:
		return w.Saturday
	case Sunday:
		return w.Sunday
	case Monday:
		return w.Monday
	case Tuesday:
		return w.Tuesday
	case Wednesday:
		return w.Wednesday
	case Thursday:
		return w.Thursday
	case Friday:
		return w.Friday
	}
	return nil
}

// SetTasks replaces the bucket for the given day.
func (w *WeekRoutine) SetTasks(d Day, tasks []Task) {
	switch d {
	case Saturday:
		w.Saturday = tasks
	case Sunday:
		w.Sunday = tasks
	case Monday:
		w.Monday = tasks
	case Tuesday:
		w.Tuesday = tasks
	case Wednesday:
		w.Wednesday = tasks
	case Thursday:
		w.Thursday = tasks
	case Friday:
		w.Friday = tasks
	}
}

// Clone returns a deep copy so mutators can work copy-in/copy-out without
// sharing bucket backing arrays with the caller's value.
func (w WeekRoutine) Clone() WeekRoutine {
	out := WeekRoutine{}
	for _, d := range DaysOfWeek {
		src := w.Tasks(d)
		if src == nil {
			continue
		}
		dst := make([]Task, len(src))
		copy(dst, src)
		out.SetTasks(d, dst)
	}
	return out
}
