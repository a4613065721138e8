// File: services/routine/validator.go
package routine

import (
	"strconv"
	"strings"

	"routinely/models"
)

// ValidationError is a user-facing rejection reason. Handlers map it to a
// 422 instead of a server error.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Candidate carries the raw form fields of a task being added or edited.
// Hours arrive unpadded ("9"); formatting normalizes them on commit.
type Candidate struct {
	Name       string `json:"name"`
	FromHour   string `json:"fromHour"`
	FromMinute string `json:"fromMinute"`
	FromPeriod Period `json:"fromPeriod"`
	ToHour     string `json:"toHour"`
	ToMinute   string `json:"toMinute"`
	ToPeriod   Period `json:"toPeriod"`
}

// EditTarget identifies the task a candidate replaces, so conflict checks
// exclude it instead of flagging a self-collision.
type EditTarget struct {
	Day   models.Day
	Index int
}

// padTime left-pads a one-digit field, mirroring how the clock strings are
// normalized for storage.
func padTime(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func (c Candidate) fromString() string {
	return padTime(c.FromHour) + ":" + padTime(c.FromMinute) + " " + string(c.FromPeriod)
}

func (c Candidate) toString() string {
	return padTime(c.ToHour) + ":" + padTime(c.ToMinute) + " " + string(c.ToPeriod)
}

// TimeString renders the candidate's persisted range form.
func (c Candidate) TimeString() string {
	return c.fromString() + " - " + c.toString()
}

// Task builds the committed task value: trimmed name, normalized range.
func (c Candidate) Task() models.Task {
	return models.Task{Name: strings.TrimSpace(c.Name), Time: c.TimeString()}
}

func validHour(h string) bool {
	if h == "" {
		return false
	}
	n, err := strconv.Atoi(h)
	return err == nil && n >= 1 && n <= 12
}

func validMinute(m string) bool {
	if m == "" {
		return false
	}
	n, err := strconv.Atoi(m)
	return err == nil && n >= 0 && n <= 59
}

// checkTimes runs the day-independent rules (field bounds, format, midnight
// crossing, duration bounds, overnight ban) and yields the candidate's
// normalized minutes for the conflict checks that follow.
func (c Candidate) checkTimes() (fromMins, toMins int, err error) {
	if !validHour(c.FromHour) {
		return 0, 0, ValidationError("Start hour must be 1–12")
	}
	if !validMinute(c.FromMinute) {
		return 0, 0, ValidationError("Start minutes must be 00–59")
	}
	if !validHour(c.ToHour) {
		return 0, 0, ValidationError("End hour must be 1–12")
	}
	if !validMinute(c.ToMinute) {
		return 0, 0, ValidationError("End minutes must be 00–59")
	}

	fromStr, toStr := c.fromString(), c.toString()
	fromMins = timeToMinutes(fromStr)
	toMins = timeToMinutes(toStr)
	if fromMins == -1 || toMins == -1 {
		return 0, 0, ValidationError("Invalid time format")
	}

	overnight := IsOvernight(c.FromPeriod, c.ToPeriod)

	// A same-day range whose end is not after its start would wrap into the
	// next day.
	if !overnight && fromMins >= toMins {
		return 0, 0, ValidationError("Tasks cannot cross midnight into the next day")
	}

	duration := durationMinutes(fromStr, toStr)
	if duration > 1439 {
		return 0, 0, ValidationError("Task cannot exceed 23 hours 59 minutes")
	}
	if duration < 5 {
		return 0, 0, ValidationError("Task must be at least 5 minutes long")
	}

	// Overnight tasks are disallowed outright, regardless of duration.
	if overnight {
		return 0, 0, ValidationError("Tasks cannot cross midnight into the next day")
	}

	return fromMins, toMins, nil
}

// conflictsWith reports whether the candidate's minutes overlap an existing
// stored task. Malformed stored entries are skipped rather than crashing the
// check.
func conflictsWith(task models.Task, fromMins, toMins int) bool {
	eStart, eEnd, eOvernight, ok := rangeMinutes(task.Time)
	if !ok {
		return false
	}
	return Overlaps(fromMins, toMins, eStart, eEnd, false, eOvernight)
}

// ValidateTask runs the full rule pipeline for a single day. editing, when
// non-nil, is the index of the task being replaced in that day's bucket. A
// blank name means there is nothing to validate yet and returns no error;
// callers must not commit such a candidate.
func ValidateTask(week models.WeekRoutine, day models.Day, cand Candidate, editing *int) error {
	name := strings.TrimSpace(cand.Name)
	if name == "" {
		return nil
	}

	fromMins, toMins, err := cand.checkTimes()
	if err != nil {
		return err
	}

	tasks := week.Tasks(day)

	for idx, task := range tasks {
		if editing != nil && idx == *editing {
			continue
		}
		if strings.EqualFold(task.Name, name) {
			return ValidationError("A task with this name already exists on this day")
		}
	}

	for idx, task := range tasks {
		if editing != nil && idx == *editing {
			continue
		}
		if conflictsWith(task, fromMins, toMins) {
			return ValidationError("Time overlaps with an existing task on this day")
		}
	}

	return nil
}

// ValidateTaskForDays runs the pipeline against an explicit set of target
// days, enumerating every conflicting day in the rejection message. The
// exclusion rules keep the product's observed asymmetry: the duplicate-name
// check skips entries matching the edited task's original name
// (case-insensitively), while the overlap check skips only the exact
// (day, index) position being replaced.
func ValidateTaskForDays(week models.WeekRoutine, days []models.Day, cand Candidate, editing *EditTarget) error {
	name := strings.TrimSpace(cand.Name)
	if name == "" {
		return nil
	}

	fromMins, toMins, err := cand.checkTimes()
	if err != nil {
		return err
	}

	var originalName string
	if editing != nil {
		bucket := week.Tasks(editing.Day)
		if editing.Index >= 0 && editing.Index < len(bucket) {
			originalName = bucket[editing.Index].Name
		}
	}

	var duplicateDays []string
	for _, day := range days {
		for _, task := range week.Tasks(day) {
			if originalName != "" && strings.EqualFold(task.Name, originalName) {
				continue
			}
			if strings.EqualFold(task.Name, name) {
				duplicateDays = append(duplicateDays, day.Short())
				break
			}
		}
	}
	if len(duplicateDays) > 0 {
		return ValidationError("A task with this name already exists on " + strings.Join(duplicateDays, ", "))
	}

	var overlapDays []string
	for _, day := range days {
		for idx, task := range week.Tasks(day) {
			if editing != nil && day == editing.Day && idx == editing.Index {
				continue
			}
			if conflictsWith(task, fromMins, toMins) {
				overlapDays = append(overlapDays, day.Short())
				break
			}
		}
	}
	if len(overlapDays) > 0 {
		return ValidationError("Time overlaps on " + strings.Join(overlapDays, ", "))
	}

	return nil
}
