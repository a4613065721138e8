// File: services/routine/store.go
package routine

import (
	"fmt"
	"sort"

	"routinely/models"
)

// The mutators below are pure: they take a week value, return an updated
// copy, and re-sort every bucket they touch. They assume the candidate has
// already passed validation; out-of-range positions are rejected as misuse
// rather than corrupting the week.

// sortTasks orders a bucket by ascending start minute. The sort is stable,
// so re-sorting a sorted bucket is a no-op.
func sortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return startMinutes(tasks[i].Time) < startMinutes(tasks[j].Time)
	})
}

// AddTask appends a task to one day and re-sorts that bucket.
func AddTask(week models.WeekRoutine, day models.Day, task models.Task) models.WeekRoutine {
	w := week.Clone()
	bucket := append(w.Tasks(day), task)
	sortTasks(bucket)
	w.SetTasks(day, bucket)
	return w
}

// EditTask replaces the task at index on one day and re-sorts that bucket.
func EditTask(week models.WeekRoutine, day models.Day, index int, task models.Task) (models.WeekRoutine, error) {
	w := week.Clone()
	bucket := w.Tasks(day)
	if index < 0 || index >= len(bucket) {
		return week, fmt.Errorf("no task at index %d on %s", index, day)
	}
	bucket[index] = task
	sortTasks(bucket)
	w.SetTasks(day, bucket)
	return w, nil
}

// RemoveTask deletes the task at index on one day.
func RemoveTask(week models.WeekRoutine, day models.Day, index int) (models.WeekRoutine, error) {
	w := week.Clone()
	bucket := w.Tasks(day)
	if index < 0 || index >= len(bucket) {
		return week, fmt.Errorf("no task at index %d on %s", index, day)
	}
	w.SetTasks(day, append(bucket[:index], bucket[index+1:]...))
	return w, nil
}

// AddTaskToDays appends the same task to each listed day, re-sorting each
// affected bucket independently.
func AddTaskToDays(week models.WeekRoutine, days []models.Day, task models.Task) models.WeekRoutine {
	w := week.Clone()
	for _, day := range days {
		bucket := append(w.Tasks(day), task)
		sortTasks(bucket)
		w.SetTasks(day, bucket)
	}
	return w
}

// EditTaskEveryDay replaces the task named originalName on every day that
// holds one with the new task. The match is case-sensitive and exact, so
// propagation never follows a fuzzy match; days without the name stay
// untouched.
func EditTaskEveryDay(week models.WeekRoutine, originalName string, task models.Task) models.WeekRoutine {
	w := week.Clone()
	for _, day := range models.DaysOfWeek {
		bucket := w.Tasks(day)
		matched := false
		kept := make([]models.Task, 0, len(bucket))
		for _, t := range bucket {
			if t.Name == originalName {
				matched = true
				continue
			}
			kept = append(kept, t)
		}
		if !matched {
			continue
		}
		kept = append(kept, task)
		sortTasks(kept)
		w.SetTasks(day, kept)
	}
	return w
}

// RemoveTaskEveryDay filters the named task out of every day bucket,
// matching case-sensitively; days without a match are untouched.
func RemoveTaskEveryDay(week models.WeekRoutine, name string) models.WeekRoutine {
	w := week.Clone()
	for _, day := range models.DaysOfWeek {
		bucket := w.Tasks(day)
		kept := make([]models.Task, 0, len(bucket))
		for _, t := range bucket {
			if t.Name == name {
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == len(bucket) {
			continue
		}
		w.SetTasks(day, kept)
	}
	return w
}
