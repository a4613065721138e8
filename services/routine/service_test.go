package routine

import (
	"errors"
	"testing"
	"time"

	"routinely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo keeps a single user's week in memory and records whether a
// commit happened.
type fakeUserRepo struct {
	week      models.WeekRoutine
	updateErr error
	updates   int
}

func (f *fakeUserRepo) Create(*models.User) error                  { return nil }
func (f *fakeUserRepo) Update(*models.User) error                  { return nil }
func (f *fakeUserRepo) UpdateWithDocument(string, bson.M) error    { return nil }
func (f *fakeUserRepo) Delete(string) error                        { return nil }
func (f *fakeUserRepo) GetByID(string) (*models.User, error)       { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error)    { return nil, nil }
func (f *fakeUserRepo) AppendHistory(string, models.ChatRecord) error { return nil }
func (f *fakeUserRepo) ExpireSubscriptions(time.Time) (int64, error)  { return 0, nil }

func (f *fakeUserRepo) GetByIDWithProjection(string, bson.M) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByEmailWithProjection(string, bson.M) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetRoutine(string) (models.WeekRoutine, error) {
	return f.week.Clone(), nil
}

func (f *fakeUserRepo) UpdateRoutine(_ string, week models.WeekRoutine) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.week = week
	f.updates++
	return nil
}

func newTestService(week models.WeekRoutine) (*DefaultRoutineService, *fakeUserRepo) {
	repo := &fakeUserRepo{week: week}
	return &DefaultRoutineService{Repo: repo}, repo
}

func TestServiceAddTaskCommits(t *testing.T) {
	svc, repo := newTestService(models.WeekRoutine{})

	week, err := svc.AddTask("u1", models.Monday, cand("Gym", "6", "00", AM, "7", "00", AM))
	require.NoError(t, err)
	require.Len(t, week.Monday, 1)
	assert.Equal(t, "Gym", week.Monday[0].Name)
	assert.Equal(t, "06:00 AM - 07:00 AM", week.Monday[0].Time)
	assert.Equal(t, 1, repo.updates)
}

func TestServiceAddTaskValidationFailureDoesNotCommit(t *testing.T) {
	svc, repo := newTestService(models.WeekRoutine{
		Monday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
	})

	_, err := svc.AddTask("u1", models.Monday, cand("Gym", "8", "00", PM, "9", "00", PM))
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, repo.updates)
}

func TestServiceAddTaskRequiresName(t *testing.T) {
	svc, repo := newTestService(models.WeekRoutine{})

	_, err := svc.AddTask("u1", models.Monday, cand("  ", "6", "00", AM, "7", "00", AM))
	assert.EqualError(t, err, "Task name is required")
	assert.Equal(t, 0, repo.updates)
}

func TestServiceAddTaskToDaysRequiresDays(t *testing.T) {
	svc, _ := newTestService(models.WeekRoutine{})

	_, err := svc.AddTaskToDays("u1", nil, cand("Gym", "6", "00", AM, "7", "00", AM))
	assert.EqualError(t, err, "At least one day is required")
}

func TestServiceAddTaskToDaysRejectsWholeCallOnOneConflict(t *testing.T) {
	svc, repo := newTestService(models.WeekRoutine{
		Tuesday: []models.Task{{Name: "Standup", Time: "09:00 AM - 09:15 AM"}},
	})

	_, err := svc.AddTaskToDays("u1", []models.Day{models.Monday, models.Tuesday},
		cand("Standup", "9", "00", AM, "9", "15", AM))
	assert.EqualError(t, err, "A task with this name already exists on tue")

	// Monday gained nothing either.
	assert.Empty(t, repo.week.Monday)
	assert.Equal(t, 0, repo.updates)
}

func TestServiceAddTaskEveryDay(t *testing.T) {
	svc, _ := newTestService(models.WeekRoutine{})

	week, err := svc.AddTaskEveryDay("u1", cand("Sleep prep", "10", "00", PM, "11", "00", PM))
	require.NoError(t, err)
	for _, day := range models.DaysOfWeek {
		assert.Len(t, week.Tasks(day), 1, "day %s", day)
	}
}

func TestServiceEditTaskBoundsChecked(t *testing.T) {
	svc, _ := newTestService(models.WeekRoutine{})

	_, err := svc.EditTask("u1", models.Monday, 0, cand("Gym", "6", "00", AM, "7", "00", AM))
	assert.EqualError(t, err, "No such task to edit")
}

func TestServiceEditTaskEveryDayPropagates(t *testing.T) {
	svc, _ := newTestService(models.WeekRoutine{
		Monday:  []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Friday:  []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Tuesday: []models.Task{{Name: "Lunch", Time: "12:00 PM - 01:00 PM"}},
	})

	// The new slot must clear the same-named tasks on the other days too:
	// only the edited (day, index) position is excluded from the overlap
	// check.
	week, err := svc.EditTaskEveryDay("u1", models.Monday, 0, cand("Gym", "8", "00", PM, "9", "00", PM))
	require.NoError(t, err)
	assert.Equal(t, "08:00 PM - 09:00 PM", week.Monday[0].Time)
	assert.Equal(t, "08:00 PM - 09:00 PM", week.Friday[0].Time)
	assert.Equal(t, "Lunch", week.Tuesday[0].Name)
	assert.Len(t, week.Tuesday, 1)
}

func TestServiceEditTaskEveryDayRejectsOverlapOnOtherDays(t *testing.T) {
	svc, repo := newTestService(models.WeekRoutine{
		Monday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Friday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
	})

	// 05:30–06:30 collides with Friday's own "Gym", which is not the edited
	// position, so the whole edit is rejected.
	_, err := svc.EditTaskEveryDay("u1", models.Monday, 0, cand("Gym", "5", "30", AM, "6", "30", AM))
	assert.EqualError(t, err, "Time overlaps on fri")
	assert.Equal(t, 0, repo.updates)
}

func TestServiceRemoveTask(t *testing.T) {
	svc, _ := newTestService(models.WeekRoutine{
		Monday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
	})

	week, err := svc.RemoveTask("u1", models.Monday, 0)
	require.NoError(t, err)
	assert.Empty(t, week.Monday)

	_, err = svc.RemoveTask("u1", models.Monday, 0)
	assert.EqualError(t, err, "No such task to remove")
}

func TestServiceRemoveTaskEveryDay(t *testing.T) {
	svc, _ := newTestService(models.WeekRoutine{
		Monday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
		Friday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
	})

	week, err := svc.RemoveTaskEveryDay("u1", "Gym")
	require.NoError(t, err)
	assert.Empty(t, week.Monday)
	assert.Empty(t, week.Friday)

	_, err = svc.RemoveTaskEveryDay("u1", "")
	assert.EqualError(t, err, "Task name is required")
}

func TestServiceCommitErrorSurfaces(t *testing.T) {
	svc, repo := newTestService(models.WeekRoutine{})
	repo.updateErr = errors.New("write failed")

	_, err := svc.AddTask("u1", models.Monday, cand("Gym", "6", "00", AM, "7", "00", AM))
	assert.Error(t, err)
}

func TestServiceTimeline(t *testing.T) {
	svc, _ := newTestService(models.WeekRoutine{
		Monday: []models.Task{{Name: "Gym", Time: "06:00 AM - 07:00 AM"}},
	})

	blocks, err := svc.Timeline("u1", models.Monday)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, "Gym", blocks[1].Name)
}
