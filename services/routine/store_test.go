package routine

import (
	"testing"

	"routinely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name)
	}
	return out
}

func TestAddTaskSortsByStart(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{
			{Name: "Lunch", Time: "12:00 PM - 01:00 PM"},
		},
	}

	updated := AddTask(week, models.Monday, models.Task{Name: "Gym", Time: "06:00 AM - 07:00 AM"})
	assert.Equal(t, []string{"Gym", "Lunch"}, names(updated.Monday))

	// The input week is untouched.
	assert.Equal(t, []string{"Lunch"}, names(week.Monday))
}

func TestEditTask(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{
			{Name: "Gym", Time: "06:00 AM - 07:00 AM"},
			{Name: "Lunch", Time: "12:00 PM - 01:00 PM"},
		},
	}

	updated, err := EditTask(week, models.Monday, 0, models.Task{Name: "Evening Gym", Time: "08:00 PM - 09:00 PM"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lunch", "Evening Gym"}, names(updated.Monday))

	_, err = EditTask(week, models.Monday, 5, models.Task{Name: "X", Time: "08:00 PM - 09:00 PM"})
	assert.Error(t, err)
	_, err = EditTask(week, models.Tuesday, 0, models.Task{Name: "X", Time: "08:00 PM - 09:00 PM"})
	assert.Error(t, err)
}

func TestRemoveTask(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{
			{Name: "Gym", Time: "06:00 AM - 07:00 AM"},
			{Name: "Lunch", Time: "12:00 PM - 01:00 PM"},
		},
	}

	updated, err := RemoveTask(week, models.Monday, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lunch"}, names(updated.Monday))

	_, err = RemoveTask(week, models.Monday, 2)
	assert.Error(t, err)
	_, err = RemoveTask(week, models.Monday, -1)
	assert.Error(t, err)
}

func TestAddTaskToDays(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{{Name: "Lunch", Time: "12:00 PM - 01:00 PM"}},
	}

	task := models.Task{Name: "Gym", Time: "06:00 AM - 07:00 AM"}
	updated := AddTaskToDays(week, []models.Day{models.Monday, models.Wednesday}, task)

	assert.Equal(t, []string{"Gym", "Lunch"}, names(updated.Monday))
	assert.Equal(t, []string{"Gym"}, names(updated.Wednesday))
	assert.Empty(t, updated.Tuesday)
}

func TestEditTaskEveryDayTouchesOnlyMatchingDays(t *testing.T) {
	week := models.WeekRoutine{
		Monday:    []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Tuesday:   []models.Task{{Name: "gym", Time: "06:00 AM - 07:00 AM"}},
		Wednesday: []models.Task{{Name: "Lunch", Time: "12:00 PM - 01:00 PM"}},
	}

	replacement := models.Task{Name: "Morning Gym", Time: "05:30 AM - 06:30 AM"}
	updated := EditTaskEveryDay(week, "Gym", replacement)

	assert.Equal(t, []string{"Morning Gym"}, names(updated.Monday))
	// Case differs, so the Tuesday entry is a different task and stays.
	assert.Equal(t, []string{"gym"}, names(updated.Tuesday))
	// Days without a match gain nothing.
	assert.Equal(t, []string{"Lunch"}, names(updated.Wednesday))
	assert.Empty(t, updated.Thursday)
}

func TestEditTaskEveryDayKeepsBucketSorted(t *testing.T) {
	week := models.WeekRoutine{
		Monday: []models.Task{
			{Name: "Gym", Time: "06:00 AM - 07:00 AM"},
			{Name: "Lunch", Time: "12:00 PM - 01:00 PM"},
		},
	}

	updated := EditTaskEveryDay(week, "Gym", models.Task{Name: "Dinner", Time: "07:00 PM - 08:00 PM"})
	assert.Equal(t, []string{"Lunch", "Dinner"}, names(updated.Monday))
}

func TestRemoveTaskEveryDay(t *testing.T) {
	week := models.WeekRoutine{
		Saturday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Monday: []models.Task{
			{Name: "Gym", Time: "06:00 AM - 07:00 AM"},
			{Name: "Lunch", Time: "12:00 PM - 01:00 PM"},
		},
		Tuesday: []models.Task{{Name: "gym", Time: "06:00 AM - 07:00 AM"}},
	}

	updated := RemoveTaskEveryDay(week, "Gym")

	assert.Empty(t, updated.Saturday)
	assert.Equal(t, []string{"Lunch"}, names(updated.Monday))
	// Case-sensitive: "gym" survives.
	assert.Equal(t, []string{"gym"}, names(updated.Tuesday))
}

func TestSortTasksMalformedFirst(t *testing.T) {
	week := models.WeekRoutine{}
	week = AddTask(week, models.Monday, models.Task{Name: "Gym", Time: "06:00 AM - 07:00 AM"})
	week = AddTask(week, models.Monday, models.Task{Name: "Broken", Time: "not a range"})

	assert.Equal(t, []string{"Broken", "Gym"}, names(week.Monday))
}
