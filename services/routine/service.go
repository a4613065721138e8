// File: services/routine/service.go
package routine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"routinely/models"
	"routinely/utils"

	"go.uber.org/zap"
)

const cacheTimeout = 2 * time.Second

func (s *DefaultRoutineService) cacheKey(userID string) string {
	return utils.RoutineCachePrefix + userID
}

func (s *DefaultRoutineService) cachedWeek(userID string) (models.WeekRoutine, bool) {
	if s.Cache == nil {
		return models.WeekRoutine{}, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	raw, err := s.Cache.Get(ctx, s.cacheKey(userID)).Result()
	if err != nil {
		return models.WeekRoutine{}, false
	}
	var week models.WeekRoutine
	if err := json.Unmarshal([]byte(raw), &week); err != nil {
		return models.WeekRoutine{}, false
	}
	return week, true
}

func (s *DefaultRoutineService) storeCache(userID string, week models.WeekRoutine) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(week)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()
	if err := s.Cache.Set(ctx, s.cacheKey(userID), raw, utils.RoutineCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache routine", zap.String("userID", userID), zap.Error(err))
	}
}

// Week returns the user's routine, preferring the cache.
func (s *DefaultRoutineService) Week(userID string) (models.WeekRoutine, error) {
	if week, ok := s.cachedWeek(userID); ok {
		return week, nil
	}
	week, err := s.Repo.GetRoutine(userID)
	if err != nil {
		return models.WeekRoutine{}, fmt.Errorf("failed to load routine: %w", err)
	}
	s.storeCache(userID, week)
	return week, nil
}

// load fetches the authoritative week for a mutation. Mutations always read
// the repository so a stale cache can never be validated against.
func (s *DefaultRoutineService) load(userID string) (models.WeekRoutine, error) {
	week, err := s.Repo.GetRoutine(userID)
	if err != nil {
		return models.WeekRoutine{}, fmt.Errorf("failed to load routine: %w", err)
	}
	return week, nil
}

// commit persists the updated week wholesale and refreshes the cache.
func (s *DefaultRoutineService) commit(userID string, week models.WeekRoutine) (models.WeekRoutine, error) {
	if err := s.Repo.UpdateRoutine(userID, week); err != nil {
		return models.WeekRoutine{}, err
	}
	s.storeCache(userID, week)
	return week, nil
}

// requireName rejects candidates the validator would silently pass over.
// A blank name means "nothing to validate yet" to the pipeline, but it is
// never committable.
func requireName(cand Candidate) error {
	if strings.TrimSpace(cand.Name) == "" {
		return ValidationError("Task name is required")
	}
	return nil
}

func (s *DefaultRoutineService) AddTask(userID string, day models.Day, cand Candidate) (models.WeekRoutine, error) {
	if err := requireName(cand); err != nil {
		return models.WeekRoutine{}, err
	}
	week, err := s.load(userID)
	if err != nil {
		return models.WeekRoutine{}, err
	}
	if err := ValidateTask(week, day, cand, nil); err != nil {
		return models.WeekRoutine{}, err
	}
	return s.commit(userID, AddTask(week, day, cand.Task()))
}

func (s *DefaultRoutineService) AddTaskToDays(userID string, days []models.Day, cand Candidate) (models.WeekRoutine, error) {
	if err := requireName(cand); err != nil {
		return models.WeekRoutine{}, err
	}
	if len(days) == 0 {
		return models.WeekRoutine{}, ValidationError("At least one day is required")
	}
	week, err := s.load(userID)
	if err != nil {
		return models.WeekRoutine{}, err
	}
	if err := ValidateTaskForDays(week, days, cand, nil); err != nil {
		return models.WeekRoutine{}, err
	}
	return s.commit(userID, AddTaskToDays(week, days, cand.Task()))
}

func (s *DefaultRoutineService) AddTaskEveryDay(userID string, cand Candidate) (models.WeekRoutine, error) {
	return s.AddTaskToDays(userID, models.DaysOfWeek[:], cand)
}

func (s *DefaultRoutineService) EditTask(userID string, day models.Day, index int, cand Candidate) (models.WeekRoutine, error) {
	if err := requireName(cand); err != nil {
		return models.WeekRoutine{}, err
	}
	week, err := s.load(userID)
	if err != nil {
		return models.WeekRoutine{}, err
	}
	if index < 0 || index >= len(week.Tasks(day)) {
		return models.WeekRoutine{}, ValidationError("No such task to edit")
	}
	if err := ValidateTask(week, day, cand, &index); err != nil {
		return models.WeekRoutine{}, err
	}
	updated, err := EditTask(week, day, index, cand.Task())
	if err != nil {
		return models.WeekRoutine{}, err
	}
	return s.commit(userID, updated)
}

func (s *DefaultRoutineService) EditTaskEveryDay(userID string, day models.Day, index int, cand Candidate) (models.WeekRoutine, error) {
	if err := requireName(cand); err != nil {
		return models.WeekRoutine{}, err
	}
	week, err := s.load(userID)
	if err != nil {
		return models.WeekRoutine{}, err
	}
	bucket := week.Tasks(day)
	if index < 0 || index >= len(bucket) {
		return models.WeekRoutine{}, ValidationError("No such task to edit")
	}
	originalName := bucket[index].Name

	target := EditTarget{Day: day, Index: index}
	if err := ValidateTaskForDays(week, models.DaysOfWeek[:], cand, &target); err != nil {
		return models.WeekRoutine{}, err
	}
	return s.commit(userID, EditTaskEveryDay(week, originalName, cand.Task()))
}

func (s *DefaultRoutineService) RemoveTask(userID string, day models.Day, index int) (models.WeekRoutine, error) {
	week, err := s.load(userID)
	if err != nil {
		return models.WeekRoutine{}, err
	}
	updated, err := RemoveTask(week, day, index)
	if err != nil {
		return models.WeekRoutine{}, ValidationError("No such task to remove")
	}
	return s.commit(userID, updated)
}

func (s *DefaultRoutineService) RemoveTaskEveryDay(userID string, name string) (models.WeekRoutine, error) {
	if name == "" {
		return models.WeekRoutine{}, ValidationError("Task name is required")
	}
	week, err := s.load(userID)
	if err != nil {
		return models.WeekRoutine{}, err
	}
	return s.commit(userID, RemoveTaskEveryDay(week, name))
}

func (s *DefaultRoutineService) Timeline(userID string, day models.Day) ([]Block, error) {
	week, err := s.Week(userID)
	if err != nil {
		return nil, err
	}
	return DayTimeline(week.Tasks(day)), nil
}
