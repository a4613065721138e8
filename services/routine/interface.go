// File: services/routine/interface.go
package routine

import (
	userRepo "routinely/database/repository/user"
	"routinely/models"

	"github.com/go-redis/redis/v8"
)

// RoutineService defines business logic for weekly routine operations. Every
// mutation runs the validation pipeline, commits the updated week to the
// user document and returns the new week.
type RoutineService interface {
	// Week returns the user's full routine.
	Week(userID string) (models.WeekRoutine, error)
	// AddTask validates and adds a task to one day.
	AddTask(userID string, day models.Day, cand Candidate) (models.WeekRoutine, error)
	// AddTaskToDays validates against every target day and adds the task to
	// each; the whole operation applies or none of it does.
	AddTaskToDays(userID string, days []models.Day, cand Candidate) (models.WeekRoutine, error)
	// AddTaskEveryDay adds the task to all seven days.
	AddTaskEveryDay(userID string, cand Candidate) (models.WeekRoutine, error)
	// EditTask validates and replaces the task at index on one day.
	EditTask(userID string, day models.Day, index int, cand Candidate) (models.WeekRoutine, error)
	// EditTaskEveryDay replaces the task at (day, index) on every day that
	// holds a task with the same (exact) name.
	EditTaskEveryDay(userID string, day models.Day, index int, cand Candidate) (models.WeekRoutine, error)
	// RemoveTask deletes the task at index on one day.
	RemoveTask(userID string, day models.Day, index int) (models.WeekRoutine, error)
	// RemoveTaskEveryDay deletes every task with the exact name across the week.
	RemoveTaskEveryDay(userID string, name string) (models.WeekRoutine, error)
	// Timeline projects one day onto task/free-time blocks for rendering.
	Timeline(userID string, day models.Day) ([]Block, error)
}

// DefaultRoutineService is the production implementation. Cache is optional;
// when nil (or unreachable) reads fall through to the repository.
type DefaultRoutineService struct {
	Repo  userRepo.UserRepository
	Cache *redis.Client
}
