package routine

import (
	"testing"

	"routinely/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTimelineEmptyDay(t *testing.T) {
	blocks := DayTimeline(nil)
	require.Len(t, blocks, 1)
	assert.Equal(t, Block{
		Name:  "Free time",
		Start: 0,
		End:   1440,
		Label: "12:00 AM - 12:00 AM",
		Free:  true,
	}, blocks[0])
}

func TestDayTimelineFillsGaps(t *testing.T) {
	tasks := []models.Task{
		{Name: "Gym", Time: "06:00 AM - 07:00 AM"},
		{Name: "Lunch", Time: "12:00 PM - 01:00 PM"},
	}

	blocks := DayTimeline(tasks)
	require.Len(t, blocks, 5)

	assert.True(t, blocks[0].Free)
	assert.Equal(t, 0, blocks[0].Start)
	assert.Equal(t, 360, blocks[0].End)

	assert.Equal(t, "Gym", blocks[1].Name)
	assert.Equal(t, 360, blocks[1].Start)
	assert.Equal(t, 420, blocks[1].End)
	assert.Equal(t, "06:00 AM - 07:00 AM", blocks[1].Label)
	assert.False(t, blocks[1].Free)

	assert.True(t, blocks[2].Free)
	assert.Equal(t, 420, blocks[2].Start)
	assert.Equal(t, 720, blocks[2].End)
	assert.Equal(t, "07:00 AM - 12:00 PM", blocks[2].Label)

	assert.Equal(t, "Lunch", blocks[3].Name)

	assert.True(t, blocks[4].Free)
	assert.Equal(t, 780, blocks[4].Start)
	assert.Equal(t, 1440, blocks[4].End)
}

func TestDayTimelineAdjacentTasksNoFiller(t *testing.T) {
	tasks := []models.Task{
		{Name: "Gym", Time: "06:00 AM - 07:00 AM"},
		{Name: "Shower", Time: "07:00 AM - 07:30 AM"},
	}

	blocks := DayTimeline(tasks)
	require.Len(t, blocks, 4)
	assert.True(t, blocks[0].Free)
	assert.Equal(t, 360, blocks[0].End)
	assert.Equal(t, "Gym", blocks[1].Name)
	assert.Equal(t, "Shower", blocks[2].Name)
	assert.Equal(t, 420, blocks[2].Start)
	assert.True(t, blocks[3].Free)
	assert.Equal(t, 450, blocks[3].Start)
}

func TestDayTimelineSkipsMalformed(t *testing.T) {
	tasks := []models.Task{
		{Name: "Broken", Time: "garbage"},
		{Name: "Gym", Time: "06:00 AM - 07:00 AM"},
	}

	blocks := DayTimeline(tasks)
	require.Len(t, blocks, 3)
	assert.Equal(t, "Gym", blocks[1].Name)
}

func TestDayTimelineClipsOvernightEntry(t *testing.T) {
	// Legacy data may still carry an overnight range; it is clipped at the
	// day bound instead of wrapping.
	tasks := []models.Task{
		{Name: "Night shift", Time: "10:00 PM - 02:00 AM"},
	}

	blocks := DayTimeline(tasks)
	require.Len(t, blocks, 2)
	assert.True(t, blocks[0].Free)
	assert.Equal(t, 1320, blocks[0].End)
	assert.Equal(t, "Night shift", blocks[1].Name)
	assert.Equal(t, 1320, blocks[1].Start)
	assert.Equal(t, 1440, blocks[1].End)
}

func TestDayTimelineTaskEndingAtMidnight(t *testing.T) {
	tasks := []models.Task{
		{Name: "Wind down", Time: "11:00 PM - 11:59 PM"},
	}

	blocks := DayTimeline(tasks)
	require.Len(t, blocks, 3)
	assert.Equal(t, 1439, blocks[1].End)
	assert.Equal(t, 1439, blocks[2].Start)
	assert.Equal(t, 1440, blocks[2].End)
}
