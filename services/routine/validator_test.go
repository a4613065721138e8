package routine

import (
	"testing"

	"routinely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cand(name, fromHour, fromMinute string, fromPeriod Period, toHour, toMinute string, toPeriod Period) Candidate {
	return Candidate{
		Name:       name,
		FromHour:   fromHour,
		FromMinute: fromMinute,
		FromPeriod: fromPeriod,
		ToHour:     toHour,
		ToMinute:   toMinute,
		ToPeriod:   toPeriod,
	}
}

func TestCandidateTask(t *testing.T) {
	c := cand("  Morning Run  ", "9", "00", AM, "10", "30", AM)
	task := c.Task()
	assert.Equal(t, "Morning Run", task.Name)
	assert.Equal(t, "09:00 AM - 10:30 AM", task.Time)
}

func TestValidateTaskFieldRules(t *testing.T) {
	empty := models.WeekRoutine{}

	tests := []struct {
		name    string
		cand    Candidate
		wantMsg string
	}{
		{
			name:    "start hour out of range",
			cand:    cand("Run", "13", "00", AM, "2", "00", PM),
			wantMsg: "Start hour must be 1–12",
		},
		{
			name:    "start hour empty",
			cand:    cand("Run", "", "00", AM, "2", "00", PM),
			wantMsg: "Start hour must be 1–12",
		},
		{
			name:    "start minutes out of range",
			cand:    cand("Run", "9", "60", AM, "10", "00", AM),
			wantMsg: "Start minutes must be 00–59",
		},
		{
			name:    "end hour out of range",
			cand:    cand("Run", "9", "00", AM, "0", "00", AM),
			wantMsg: "End hour must be 1–12",
		},
		{
			name:    "end minutes out of range",
			cand:    cand("Run", "9", "00", AM, "10", "99", AM),
			wantMsg: "End minutes must be 00–59",
		},
		{
			name:    "bad period fails format",
			cand:    cand("Run", "9", "00", Period("XX"), "10", "00", AM),
			wantMsg: "Invalid time format",
		},
		{
			name:    "end not after start",
			cand:    cand("Run", "10", "00", AM, "9", "00", AM),
			wantMsg: "Tasks cannot cross midnight into the next day",
		},
		{
			name:    "zero length",
			cand:    cand("Run", "9", "00", AM, "9", "00", AM),
			wantMsg: "Tasks cannot cross midnight into the next day",
		},
		{
			name:    "too short",
			cand:    cand("Run", "9", "00", AM, "9", "04", AM),
			wantMsg: "Task must be at least 5 minutes long",
		},
		{
			name:    "overnight banned",
			cand:    cand("Night shift", "11", "00", PM, "1", "00", AM),
			wantMsg: "Tasks cannot cross midnight into the next day",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTask(empty, models.Monday, tc.cand, nil)
			require.Error(t, err)
			assert.EqualError(t, err, tc.wantMsg)
			var verr ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateTaskBlankNamePasses(t *testing.T) {
	// A blank name means there is nothing to validate yet, even when the
	// time fields are nonsense.
	err := ValidateTask(models.WeekRoutine{}, models.Monday, cand("   ", "99", "99", AM, "99", "99", AM), nil)
	assert.NoError(t, err)
}

func TestValidateTaskExactMinimumDuration(t *testing.T) {
	err := ValidateTask(models.WeekRoutine{}, models.Monday, cand("Stretch", "9", "00", AM, "9", "05", AM), nil)
	assert.NoError(t, err)
}

func TestValidateTaskMaximumDuration(t *testing.T) {
	err := ValidateTask(models.WeekRoutine{}, models.Monday, cand("All day", "12", "00", AM, "11", "59", PM), nil)
	assert.NoError(t, err)
}

func TestValidateTaskDuplicateName(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
	}

	err := ValidateTask(week, models.Monday, cand("gym", "8", "00", PM, "9", "00", PM), nil)
	assert.EqualError(t, err, "A task with this name already exists on this day")

	// Same name on a different day is fine.
	err = ValidateTask(week, models.Tuesday, cand("Gym", "8", "00", PM, "9", "00", PM), nil)
	assert.NoError(t, err)
}

func TestValidateTaskOverlap(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{{Name: "Gym", Time: "09:00 AM - 10:30 AM"}},
	}

	err := ValidateTask(week, models.Monday, cand("Breakfast", "10", "00", AM, "11", "00", AM), nil)
	assert.EqualError(t, err, "Time overlaps with an existing task on this day")

	// Back-to-back is allowed.
	err = ValidateTask(week, models.Monday, cand("Breakfast", "10", "30", AM, "11", "00", AM), nil)
	assert.NoError(t, err)
}

func TestValidateTaskDuplicateBeatsOverlap(t *testing.T) {
	// When both rules would fire, the duplicate-name message wins.
	week := models.WeekRoutine{
		Monday: []models.Task{{Name: "Gym", Time: "09:00 AM - 10:30 AM"}},
	}
	err := ValidateTask(week, models.Monday, cand("Gym", "9", "30", AM, "10", "00", AM), nil)
	assert.EqualError(t, err, "A task with this name already exists on this day")
}

func TestValidateTaskEditingExcludesSelf(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{
			{Name: "Gym", Time: "09:00 AM - 10:30 AM"},
			{Name: "Lunch", Time: "12:00 PM - 01:00 PM"},
		},
	}

	// Editing index 0 may keep its own name and overlap its own slot.
	editing := 0
	err := ValidateTask(week, models.Monday, cand("Gym", "9", "00", AM, "10", "00", AM), &editing)
	assert.NoError(t, err)

	// It still may not collide with the other task.
	err = ValidateTask(week, models.Monday, cand("Gym", "12", "30", PM, "1", "30", PM), &editing)
	assert.EqualError(t, err, "Time overlaps with an existing task on this day")

	err = ValidateTask(week, models.Monday, cand("lunch", "9", "00", AM, "10", "00", AM), &editing)
	assert.EqualError(t, err, "A task with this name already exists on this day")
}

func TestValidateTaskSkipsMalformedStored(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{{Name: "Broken", Time: "not a range"}},
	}
	err := ValidateTask(week, models.Monday, cand("Run", "9", "00", AM, "10", "00", AM), nil)
	assert.NoError(t, err)
}

func TestValidateTaskForDaysEnumeratesConflicts(t *testing.T) {
	week := models.WeekRoutine{
		Saturday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Monday:   []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Friday:   []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
	}

	days := []models.Day{models.Saturday, models.Sunday, models.Monday, models.Friday}
	err := ValidateTaskForDays(week, days, cand("gym", "8", "00", PM, "9", "00", PM), nil)
	assert.EqualError(t, err, "A task with this name already exists on sat, mon, fri")
}

func TestValidateTaskForDaysEnumeratesOverlaps(t *testing.T) {
	week := models.WeekRoutine{
		Sunday:  []models.Task{{Name: "Brunch", Time: "10:00 AM - 11:00 AM"}},
		Tuesday: []models.Task{{Name: "Standup", Time: "10:15 AM - 10:45 AM"}},
	}

	days := []models.Day{models.Sunday, models.Monday, models.Tuesday}
	err := ValidateTaskForDays(week, days, cand("Focus", "10", "00", AM, "11", "00", AM), nil)
	assert.EqualError(t, err, "Time overlaps on sun, tue")
}

func TestValidateTaskForDaysEditExclusions(t *testing.T) {
	week := models.WeekRoutine{
		Monday:  []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Tuesday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
	}

	target := EditTarget{Day: models.Monday, Index: 0}
	days := models.DaysOfWeek[:]

	// Keeping the name is allowed everywhere: entries matching the original
	// name are excluded from the duplicate check on every day.
	err := ValidateTaskForDays(week, days, cand("Gym", "6", "00", AM, "7", "00", AM), &target)
	assert.EqualError(t, err, "Time overlaps on tue")

	// Moving the slot clears the overlap on the edited position only.
	err = ValidateTaskForDays(week, days, cand("Gym", "8", "00", PM, "9", "00", PM), &target)
	assert.NoError(t, err)
}

func TestValidateTaskForDaysBlankName(t *testing.T) {
	err := ValidateTaskForDays(models.WeekRoutine{}, models.DaysOfWeek[:], cand("", "9", "00", AM, "10", "00", AM), nil)
	assert.NoError(t, err)
}
